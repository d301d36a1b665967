// Package raster draws plot.Canvas calls into an RGB565 hal.Framebuffer.
//
// Display and Region adapt the framebuffer to the tinygo drivers.Displayer interface so
// that tinyfont and tinyterm can render into it. Canvas layers device scaling, clipping,
// wide lines and aligned text on top.
package raster
