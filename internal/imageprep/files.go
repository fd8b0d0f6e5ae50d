package imageprep

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Processor runs the preparation passes over one directory of images.
// Originals are never overwritten except by the in-place passes
// (ConvertFormats and RemoveWhiteBackgrounds).
type Processor struct {
	Dir string
	Log zerolog.Logger
}

// Load decodes a PNG or JPEG file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img by the file extension: .jpg/.jpeg as JPEG, anything
// else as PNG.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WithSuffix turns "dir/mole.jpg" into "dir/mole_<suffix><ext>".
func WithSuffix(path, suffix, ext string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "_" + suffix + ext
}

func (p *Processor) list(exts ...string) ([]string, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.Dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range exts {
			if ext == want {
				out = append(out, filepath.Join(p.Dir, e.Name()))
				break
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// ConvertFormats writes a PNG next to every JPEG and rewrites any PNG that
// is not already 8-bit RGBA.
func (p *Processor) ConvertFormats() error {
	jpgs, err := p.list(".jpg", ".jpeg")
	if err != nil {
		return err
	}
	for _, path := range jpgs {
		img, err := Load(path)
		if err != nil {
			return err
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		if err := Save(out, ToNRGBA(img)); err != nil {
			return err
		}
		p.Log.Info().Str("from", filepath.Base(path)).Str("to", filepath.Base(out)).Msg("converted to png")
	}

	pngs, err := p.list(".png")
	if err != nil {
		return err
	}
	for _, path := range pngs {
		img, err := Load(path)
		if err != nil {
			return err
		}
		switch img.(type) {
		case *image.NRGBA, *image.RGBA:
			continue
		}
		if err := Save(path, ToNRGBA(img)); err != nil {
			return err
		}
		p.Log.Info().Str("file", filepath.Base(path)).Msg("converted to rgba")
	}
	return nil
}

// RemoveWhiteBackgrounds keys out white in place for the named files.
// Missing files are logged and skipped.
func (p *Processor) RemoveWhiteBackgrounds(names []string, threshold, tolerance int) error {
	for _, name := range names {
		path := filepath.Join(p.Dir, name)
		if _, err := os.Stat(path); err != nil {
			p.Log.Warn().Str("file", name).Msg("not found, skipping")
			continue
		}
		img, err := Load(path)
		if err != nil {
			return err
		}
		out, cleared := RemoveWhite(img, threshold, tolerance)
		if err := Save(path, out); err != nil {
			return err
		}
		p.Log.Info().Str("file", name).Int("cleared", cleared).Msg("white background removed")
	}
	return nil
}

// RemoveBlueScreens keys out the blue screen of every BlueScreenSize
// square image and writes a SpriteSize "_processed.png" copy. It returns
// how many files were processed and skipped.
func (p *Processor) RemoveBlueScreens(k KeyRange) (processed, skipped int, err error) {
	files, err := p.list(".png", ".jpg", ".jpeg")
	if err != nil {
		return 0, 0, err
	}
	for _, path := range files {
		if strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), "_processed") {
			continue
		}
		img, err := Load(path)
		if err != nil {
			return processed, skipped, err
		}
		if b := img.Bounds(); b.Dx() != BlueScreenSize || b.Dy() != BlueScreenSize {
			p.Log.Debug().Str("file", filepath.Base(path)).Int("w", b.Dx()).Int("h", b.Dy()).Msg("not a blue-screen render, skipping")
			skipped++
			continue
		}
		keyed, cleared := RemoveBlueScreen(img, k)
		out := WithSuffix(path, "processed", ".png")
		if err := Save(out, Resize(keyed, SpriteSize, SpriteSize)); err != nil {
			return processed, skipped, err
		}
		p.Log.Info().Str("file", filepath.Base(out)).Int("cleared", cleared).Msg("blue screen removed")
		processed++
	}
	return processed, skipped, nil
}

// CropAll writes a "_cropped" copy of the top-left CropSize square of every
// image.
func (p *Processor) CropAll() (int, error) {
	files, err := p.list(".png", ".jpg", ".jpeg")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, path := range files {
		if strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), "_cropped") {
			continue
		}
		img, err := Load(path)
		if err != nil {
			p.Log.Error().Err(err).Msg("skipping")
			continue
		}
		out := WithSuffix(path, "cropped", filepath.Ext(path))
		if err := Save(out, CropTopLeft(img, CropSize, CropSize)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
