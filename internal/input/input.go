// Package input snapshots the edge-triggered input of one frame so game
// logic never talks to ebiten directly.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Frame is the input that arrived since the previous tick.
type Frame struct {
	// Clicked is set on the tick the left button went down; X and Y are the
	// cursor position at that moment.
	Clicked bool
	X, Y    float64

	QuitToMenu bool // Q
	QuitApp    bool // Escape

	// Hotkey is the first other letter pressed this tick, e.g. "P".
	Hotkey string
}

// Click builds a frame with a single left click.
func Click(x, y float64) Frame {
	return Frame{Clicked: true, X: x, Y: y}
}

// hotkeys are the letters a menu can bind; Q is reserved for quit-to-menu.
var hotkeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyA, "A"}, {ebiten.KeyB, "B"}, {ebiten.KeyC, "C"}, {ebiten.KeyD, "D"},
	{ebiten.KeyE, "E"}, {ebiten.KeyF, "F"}, {ebiten.KeyG, "G"}, {ebiten.KeyH, "H"},
	{ebiten.KeyI, "I"}, {ebiten.KeyJ, "J"}, {ebiten.KeyK, "K"}, {ebiten.KeyL, "L"},
	{ebiten.KeyM, "M"}, {ebiten.KeyN, "N"}, {ebiten.KeyO, "O"}, {ebiten.KeyP, "P"},
	{ebiten.KeyR, "R"}, {ebiten.KeyS, "S"}, {ebiten.KeyT, "T"}, {ebiten.KeyU, "U"},
	{ebiten.KeyV, "V"}, {ebiten.KeyW, "W"}, {ebiten.KeyX, "X"}, {ebiten.KeyY, "Y"},
	{ebiten.KeyZ, "Z"},
}

type Poller interface {
	Poll() Frame
}

// Ebiten polls the live keyboard and mouse.
type Ebiten struct{}

func (Ebiten) Poll() Frame {
	var f Frame
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		f.Clicked = true
		f.X, f.Y = float64(x), float64(y)
	}
	f.QuitToMenu = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	f.QuitApp = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	for _, hk := range hotkeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			f.Hotkey = hk.name
			break
		}
	}
	return f
}

// Script replays canned frames, then reports idle frames. Used to drive the
// game without a window.
type Script struct {
	Frames []Frame
}

func (s *Script) Poll() Frame {
	if len(s.Frames) == 0 {
		return Frame{}
	}
	f := s.Frames[0]
	s.Frames = s.Frames[1:]
	return f
}
