package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"whacamole/internal/target"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 0x80, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mole.png")
	writePNG(t, path, 4, 3)

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := DecodeFile(filepath.Join(dir, "nope.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = DecodeFile(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to decode") {
		t.Errorf("corrupt file error = %v", err)
	}
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, BackgroundFile), 2, 2)
	writePNG(t, filepath.Join(dir, CatFile), 2, 2)

	got := Missing(dir)
	want := []string{MoleFile, HelmetMoleFile}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missing = %v, want %v", got, want)
	}
}

func TestLoadTextures(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{BackgroundFile, MoleFile, HelmetMoleFile, CatFile} {
		writePNG(t, filepath.Join(dir, name), 8, 8)
	}
	l := NewLoader(dir, zerolog.Nop())

	tex, err := l.LoadTextures()
	if err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}
	if tex.Background == nil || tex.Mole == nil || tex.HelmetMole == nil || tex.Cat == nil {
		t.Fatalf("textures not populated: %+v", tex)
	}

	again, err := l.LoadImage(MoleFile)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if again != tex.Mole {
		t.Error("second load did not come from the cache")
	}
}

func TestLoadTexturesFailsOnMissingAsset(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, BackgroundFile), 8, 8)

	_, err := NewLoader(dir, zerolog.Nop()).LoadTextures()
	if err == nil || !strings.Contains(err.Error(), "mole.png") {
		t.Errorf("error = %v, want one naming mole.png", err)
	}
}

func TestForVariant(t *testing.T) {
	tex := &Textures{
		Mole:       ebiten.NewImage(1, 1),
		HelmetMole: ebiten.NewImage(1, 1),
		Cat:        ebiten.NewImage(1, 1),
	}
	tests := []struct {
		v    target.Variant
		want *ebiten.Image
	}{
		{target.Normal, tex.Mole},
		{target.Armored, tex.HelmetMole},
		{target.Decoy, tex.Cat},
	}
	for _, tt := range tests {
		if got := tex.ForVariant(tt.v); got != tt.want {
			t.Errorf("ForVariant(%v) picked the wrong image", tt.v)
		}
	}
}
