// Package plot renders a single-variable function onto an immediate-mode 2D canvas.
//
// A render pass clears the surface, draws the zero axes with ten ticks per axis and then
// samples the expression once per logical pixel column, building a polyline that is broken
// wherever evaluation fails or yields a non-finite value. Drawing goes through the Canvas
// interface; graph/raster provides a framebuffer implementation and Recorder a recording one.
package plot
