package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBlack     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorWhite     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorLightGray = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	colorDarkGray  = color.RGBA{0x50, 0x50, 0x50, 0xff}
	colorDarkGreen = color.RGBA{0x00, 0x75, 0x2c, 0xff}
	colorRed       = color.RGBA{0xe6, 0x29, 0x37, 0xff}
	colorBrown     = color.RGBA{0x7f, 0x6a, 0x4f, 0xff}
	colorDarkBrown = color.RGBA{0x4c, 0x3f, 0x2f, 0xff}
)

var face = basicfont.Face7x13

const faceHeight = 13.0

// drawText draws s with its baseline starting at (x, y), scaled so the
// bitmap font is roughly size pixels tall.
func drawText(dst *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	scale := size / faceHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}

func textWidth(s string, size float64) float64 {
	return float64(text.BoundString(face, s).Dx()) * size / faceHeight
}

// drawImageFit stretches img over the w x h rectangle at (x, y).
func drawImageFit(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

func strokeCircle(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func drawFooter(dst *ebiten.Image) {
	h := float64(dst.Bounds().Dy())
	drawText(dst, "Press Q to return to menu, ESC to quit.", 20, h-20, 20, colorDarkGray)
}
