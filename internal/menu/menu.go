// Package menu holds the difficulty selection screen: a fixed column of
// buttons and the hit test that maps a click to a difficulty.
package menu

import (
	"fmt"
	"image/color"

	"whacamole/internal/input"
)

// Difficulty is the level a button selects.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

const (
	ButtonW = 200.0
	ButtonH = 60.0
)

type Button struct {
	Label      string
	Difficulty Difficulty
	X, Y, W, H float64
	Color      color.RGBA
}

// Contains is inclusive on all four edges.
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Screen is the static menu layout for a given screen width.
type Screen struct {
	Width   float64
	Buttons []Button
}

func NewScreen(screenWidth float64) *Screen {
	x := screenWidth/2 - ButtonW/2
	return &Screen{
		Width: screenWidth,
		Buttons: []Button{
			{Label: "Easy (1)", Difficulty: Easy, X: x, Y: 250, W: ButtonW, H: ButtonH, Color: color.RGBA{0x00, 0xe4, 0x30, 0xff}},
			{Label: "Medium (2)", Difficulty: Medium, X: x, Y: 330, W: ButtonW, H: ButtonH, Color: color.RGBA{0xff, 0xa1, 0x00, 0xff}},
			{Label: "Hard (3)", Difficulty: Hard, X: x, Y: 410, W: ButtonW, H: ButtonH, Color: color.RGBA{0xe6, 0x29, 0x37, 0xff}},
		},
	}
}

// Present returns the difficulty whose button was clicked this frame.
func (s *Screen) Present(f input.Frame) (Difficulty, bool) {
	if !f.Clicked {
		return 0, false
	}
	return s.ButtonAt(f.X, f.Y)
}

// ButtonAt checks buttons top to bottom.
func (s *Screen) ButtonAt(x, y float64) (Difficulty, bool) {
	for _, b := range s.Buttons {
		if b.Contains(x, y) {
			return b.Difficulty, true
		}
	}
	return 0, false
}
