package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"whacamole/internal/menu"
)

func drawMenu(dst *ebiten.Image, s *menu.Screen, hints []string, notice string) {
	dst.Fill(colorLightGray)
	cx := s.Width / 2

	centered(dst, "WHAC-A-MOLE", cx, 100, 60, colorBlack)
	centered(dst, "Select Difficulty:", cx, 200, 40, colorDarkGray)

	for _, b := range s.Buttons {
		fillRect(dst, b.X, b.Y, b.W, b.H, b.Color)
		strokeRect(dst, b.X, b.Y, b.W, b.H, 3, colorBlack)
		centered(dst, b.Label, b.X+b.W/2, b.Y+b.H/2+13, 26, colorWhite)
	}

	centered(dst, "Click a button to start!", cx, 520, 25, colorDarkGray)
	y := 555.0
	for _, h := range hints {
		centered(dst, h, cx, y, 20, colorDarkGray)
		y += 26
	}
	if notice != "" {
		centered(dst, notice, cx, y+10, 25, colorRed)
	}
	drawFooter(dst)
}

func centered(dst *ebiten.Image, s string, cx, y, size float64, c color.Color) {
	drawText(dst, s, cx-textWidth(s, size)/2, y, size, c)
}
