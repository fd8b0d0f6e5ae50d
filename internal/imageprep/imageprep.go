// Package imageprep turns raw sprite art into game-ready textures: it keys
// out white or blue-screen backgrounds, crops and downsizes images.
package imageprep

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const (
	DefaultWhiteThreshold = 150
	DefaultWhiteTolerance = 50

	// BlueScreenSize is the side of the renders the blue-screen pass accepts.
	BlueScreenSize = 1024
	// SpriteSize is the side of a finished sprite.
	SpriteSize = 256
	// CropSize is the side of the top-left crop.
	CropSize = 300
)

// ToNRGBA returns img as a fresh non-premultiplied RGBA copy anchored at 0,0.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// IsWhite reports whether a pixel is a bright, unsaturated grey: the mean of
// its channels exceeds threshold and no two channels differ by tolerance or
// more.
func IsWhite(c color.NRGBA, threshold, tolerance int) bool {
	r, g, b := int(c.R), int(c.G), int(c.B)
	avg := float64(r+g+b) / 3
	return avg > float64(threshold) &&
		absInt(r-g) < tolerance &&
		absInt(g-b) < tolerance &&
		absInt(r-b) < tolerance
}

// RemoveWhite makes near-white pixels fully transparent and returns the
// result with the number of pixels cleared. Colour channels are kept.
func RemoveWhite(img image.Image, threshold, tolerance int) (*image.NRGBA, int) {
	return keyOut(img, func(c color.NRGBA) bool { return IsWhite(c, threshold, tolerance) })
}

// KeyRange selects blue-screen pixels by hue (degrees) and saturation.
type KeyRange struct {
	HueMin, HueMax float64
	SatMin         float64
}

// DefaultBlueKey matches a typical studio blue screen.
var DefaultBlueKey = KeyRange{HueMin: 200, HueMax: 260, SatMin: 0.3}

func (k KeyRange) Matches(c color.NRGBA) bool {
	h, s, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	return h >= k.HueMin && h <= k.HueMax && s >= k.SatMin
}

// RemoveBlueScreen makes pixels inside the key range transparent.
func RemoveBlueScreen(img image.Image, k KeyRange) (*image.NRGBA, int) {
	return keyOut(img, k.Matches)
}

func keyOut(img image.Image, match func(color.NRGBA) bool) (*image.NRGBA, int) {
	dst := ToNRGBA(img)
	cleared := 0
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			if match(c) {
				c.A = 0
				dst.SetNRGBA(x, y, c)
				cleared++
			}
		}
	}
	return dst, cleared
}

// Resize scales img to w x h with Catmull-Rom resampling.
func Resize(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// CropTopLeft keeps the w x h region at the image origin, or less if the
// image is smaller.
func CropTopLeft(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	r := image.Rect(b.Min.X, b.Min.Y, b.Min.X+w, b.Min.Y+h).Intersect(b)
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
