// Package assets loads the game's textures once at startup. Loaded images
// are shared by pointer between rounds and never modified afterwards.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"whacamole/internal/target"
)

// Texture file names, relative to the asset directory.
const (
	BackgroundFile = "images/background.png"
	MoleFile       = "images/mole.png"
	HelmetMoleFile = "images/helmet_mole.png"
	CatFile        = "images/cat.png"
)

// Textures is the fixed set of images a round draws with.
type Textures struct {
	Background *ebiten.Image
	Mole       *ebiten.Image
	HelmetMole *ebiten.Image
	Cat        *ebiten.Image
}

// ForVariant picks the sprite for a visible target.
func (t *Textures) ForVariant(v target.Variant) *ebiten.Image {
	switch v {
	case target.Armored:
		return t.HelmetMole
	case target.Decoy:
		return t.Cat
	}
	return t.Mole
}

// Loader reads images from a directory and caches them by relative path.
// It is meant to be used from the game goroutine only.
type Loader struct {
	dir   string
	cache map[string]*ebiten.Image
	log   zerolog.Logger
}

func NewLoader(dir string, logger zerolog.Logger) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*ebiten.Image),
		log:   logger,
	}
}

// LoadImage returns the cached image for name, reading it on first use.
func (l *Loader) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}
	src, err := DecodeFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	l.cache[name] = img
	b := src.Bounds()
	l.log.Info().Str("asset", name).Int("w", b.Dx()).Int("h", b.Dy()).Msg("loaded image")
	return img, nil
}

// LoadTextures loads every texture a round needs. Any failure is returned
// as is; there is no fallback art.
func (l *Loader) LoadTextures() (*Textures, error) {
	var t Textures
	for _, e := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{BackgroundFile, &t.Background},
		{MoleFile, &t.Mole},
		{HelmetMoleFile, &t.HelmetMole},
		{CatFile, &t.Cat},
	} {
		img, err := l.LoadImage(e.name)
		if err != nil {
			return nil, err
		}
		*e.dst = img
	}
	return &t, nil
}

// DecodeFile opens and decodes a PNG or JPEG file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode decodes an image stream; name is only used in errors.
func Decode(r io.Reader, name string) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}

// Missing lists the texture files absent from dir, so startup can report
// all of them at once.
func Missing(dir string) []string {
	var out []string
	for _, name := range []string{BackgroundFile, MoleFile, HelmetMoleFile, CatFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			out = append(out, name)
		}
	}
	return out
}
