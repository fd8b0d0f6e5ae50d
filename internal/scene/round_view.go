package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"whacamole/internal/assets"
	"whacamole/internal/round"
	"whacamole/internal/target"
)

func drawRound(dst *ebiten.Image, r *round.Round, tex *assets.Textures, now float64) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	drawImageFit(dst, tex.Background, 0, 0, w, h)
	for _, t := range r.Targets() {
		drawTarget(dst, t, tex)
	}

	drawText(dst, fmt.Sprintf("Score: %d", r.Score()), 20, 40, 40, colorWhite)
	if r.Timed() {
		remaining := "0"
		if !r.Over() {
			remaining = fmt.Sprintf("%.0f", r.Remaining(now))
		}
		drawText(dst, "Time: "+remaining, 20, 80, 40, colorWhite)
	}

	if r.MessageVisible(now) {
		drawText(dst, r.Message(), 20, h-80, 30, colorDarkGreen)
	}
	if r.Over() {
		drawText(dst, fmt.Sprintf("Game Over! Final Score: %d", r.Score()), 20, h-80, 30, colorRed)
	}
	drawFooter(dst)
}

func drawTarget(dst *ebiten.Image, t *target.Target, tex *assets.Textures) {
	if t.Shape.IsCircle() {
		// hole first, mole on top when it is up
		r := t.Shape.Radius
		fillCircle(dst, t.Pos.X, t.Pos.Y, r, colorBrown)
		strokeCircle(dst, t.Pos.X, t.Pos.Y, r, 3, colorBlack)
		if t.Visible {
			fillCircle(dst, t.Pos.X, t.Pos.Y-10, r*0.8, colorDarkBrown)
			fillCircle(dst, t.Pos.X-12, t.Pos.Y-18, 4, colorWhite)
			fillCircle(dst, t.Pos.X+12, t.Pos.Y-18, 4, colorWhite)
		}
		return
	}
	if !t.Visible {
		return
	}
	w, h := 2*t.Shape.HalfW, 2*t.Shape.HalfH
	drawImageFit(dst, tex.ForVariant(t.Variant), t.Pos.X-t.Shape.HalfW, t.Pos.Y-t.Shape.HalfH, w, h)
	if t.Variant == target.Armored {
		for i := 0; i < t.Health; i++ {
			fillRect(dst, t.Pos.X-t.Shape.HalfW+float64(i)*14, t.Pos.Y-t.Shape.HalfH-14, 10, 8, colorDarkGray)
		}
	}
}
