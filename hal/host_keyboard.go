//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Held keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

var hostKeys = []struct {
	key    ebiten.Key
	code   KeyCode
	repeat bool
}{
	{ebiten.KeyArrowUp, KeyUp, true},
	{ebiten.KeyArrowDown, KeyDown, true},
	{ebiten.KeyArrowLeft, KeyLeft, true},
	{ebiten.KeyArrowRight, KeyRight, true},
	{ebiten.KeyEnter, KeyEnter, false},
	{ebiten.KeyNumpadEnter, KeyEnter, false},
	{ebiten.KeyEscape, KeyEscape, false},
	{ebiten.KeyBackspace, KeyBackspace, true},
	{ebiten.KeyTab, KeyTab, false},
	{ebiten.KeyDelete, KeyDelete, true},
	{ebiten.KeyHome, KeyHome, false},
	{ebiten.KeyEnd, KeyEnd, false},
	{ebiten.KeyF1, KeyF1, false},
	{ebiten.KeyF2, KeyF2, false},
	{ebiten.KeyF3, KeyF3, false},
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	for _, hk := range hostKeys {
		switch {
		case inpututil.IsKeyJustPressed(hk.key):
			k.emit(KeyEvent{Code: hk.code, Press: true})
		case inpututil.IsKeyJustReleased(hk.key):
			k.emit(KeyEvent{Code: hk.code, Press: false})
		case hk.repeat:
			d := inpututil.KeyPressDuration(hk.key)
			if d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
				k.emit(KeyEvent{Code: hk.code, Press: true})
			}
		}
	}
}
