package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Faultbox/gamestack/internal/config"
	"github.com/Faultbox/gamestack/internal/graphics"
	"golang.org/x/image/font/gofont/gomono"
)

func testImage(w, h int) *graphics.Image {
	return graphics.NewImage(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func testFont(t *testing.T) *graphics.Font {
	t.Helper()
	f, err := graphics.DefaultFont(12)
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	return f
}

func TestImageNotFound(t *testing.T) {
	tbl := NewTable()

	_, err := tbl.Image("x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Image(x) error = %v, want ErrNotFound", err)
	}
}

func TestKindsAreSeparate(t *testing.T) {
	tbl := NewTable()
	tbl.AddFont("x", testFont(t))
	tbl.AddImage("y", testImage(1, 1))

	if _, err := tbl.Image("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Image(x) with only a font named x: err = %v, want ErrNotFound", err)
	}
	if _, err := tbl.Font("y"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Font(y) with only an image named y: err = %v, want ErrNotFound", err)
	}
}

func TestAddImageOverwrites(t *testing.T) {
	tbl := NewTable()
	img1 := testImage(1, 1)
	img2 := testImage(2, 2)

	tbl.AddImage("x", img1)
	got, err := tbl.Image("x")
	if err != nil {
		t.Fatalf("Image(x): %v", err)
	}
	if got != img1 {
		t.Error("Image(x) did not return the added image")
	}

	tbl.AddImage("x", img2)
	got, err = tbl.Image("x")
	if err != nil {
		t.Fatalf("Image(x): %v", err)
	}
	if got != img2 {
		t.Error("second AddImage did not replace the first")
	}
}

func TestAddFontOverwrites(t *testing.T) {
	tbl := NewTable()
	f1 := testFont(t)
	f2 := testFont(t)

	tbl.AddFont("ui", f1)
	tbl.AddFont("ui", f2)
	got, err := tbl.Font("ui")
	if err != nil {
		t.Fatalf("Font(ui): %v", err)
	}
	if got != f2 {
		t.Error("second AddFont did not replace the first")
	}
	if !f1.Closed() {
		t.Error("replaced font was not closed")
	}
	if f2.Closed() {
		t.Error("stored font was closed")
	}

	// Re-adding the stored font must not close it.
	tbl.AddFont("ui", f2)
	if f2.Closed() {
		t.Error("re-adding the same font closed it")
	}

	tbl.Close()
	if !f2.Closed() {
		t.Error("Close left the stored font open")
	}
}

func TestNames(t *testing.T) {
	tbl := NewTable()
	tbl.AddImage("b", testImage(1, 1))
	tbl.AddImage("a", testImage(1, 1))
	tbl.AddFont("z", testFont(t))

	if got, want := tbl.ImageNames(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ImageNames = %v, want %v", got, want)
	}
	if got, want := tbl.FontNames(), []string{"z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FontNames = %v, want %v", got, want)
	}

	tbl.Close()
	if len(tbl.ImageNames()) != 0 || len(tbl.FontNames()) != 0 {
		t.Error("Close should empty the table")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	imgPath := filepath.Join(dir, "logo.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 3))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(imgPath, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	fontPath := filepath.Join(dir, "mono.ttf")
	if err := os.WriteFile(fontPath, gomono.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default().Assets
	cfg.Images["logo"] = imgPath
	cfg.Fonts["mono"] = config.FontConfig{Path: fontPath}

	tbl, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer tbl.Close()

	logo, err := tbl.Image("logo")
	if err != nil {
		t.Fatalf("Image(logo): %v", err)
	}
	if w, h := logo.Size(); w != 4 || h != 3 {
		t.Errorf("logo size = %dx%d, want 4x3", w, h)
	}

	mono, err := tbl.Font("mono")
	if err != nil {
		t.Fatalf("Font(mono): %v", err)
	}
	if mono.Size() != cfg.DefaultFontSize {
		t.Errorf("mono size = %g, want default %g", mono.Size(), cfg.DefaultFontSize)
	}

	if _, err := tbl.Font(DefaultFontName); err != nil {
		t.Errorf("built-in font missing: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := config.Default().Assets
	cfg.Images["ghost"] = filepath.Join(t.TempDir(), "ghost.png")

	if _, err := Load(cfg); err == nil {
		t.Fatal("expected error for missing image file")
	}
}
