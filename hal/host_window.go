//go:build cgo

package hal

import (
	"image"

	"mathgraph/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	// Width and Height are the initial window size in logical pixels.
	Width  int
	Height int
	// Zoom multiplies the monitor's device scale factor. Values <= 0 mean 1.
	Zoom float64
}

// RunWindow starts a resizable desktop window that displays the framebuffer and forwards
// keyboard input. It blocks until the window closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}
	dsf := ebiten.Monitor().DeviceScaleFactor()
	h := newHostHAL(int(float64(cfg.Width)*dsf), int(float64(cfg.Height)*dsf), dsf*cfg.Zoom)
	step := newApp(h)

	g := &hostGame{h: h, step: step, zoom: cfg.Zoom}
	ebiten.SetWindowTitle("mathgraph (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	zoom    float64
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	var w, h int
	g.scratch, w, h = g.h.fb.snapshotRGB565(g.scratch)
	if w == 0 || h == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := RGB888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout renders at device resolution: the framebuffer follows the window size times the
// monitor's scale factor, and the app draws in logical pixels on top of that.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	dsf := ebiten.Monitor().DeviceScaleFactor()
	w := int(float64(outsideWidth) * dsf)
	h := int(float64(outsideHeight) * dsf)
	g.h.setScale(dsf * g.zoom)
	g.h.fb.Resize(w, h)
	return w, h
}
