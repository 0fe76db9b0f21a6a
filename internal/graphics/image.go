// Package graphics holds the backend-independent drawing resources (images,
// fonts, colors) and the Canvas interface states draw through.
package graphics

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image is an immutable RGBA bitmap. Backends upload it on first draw and key
// their texture cache on the pointer.
type Image struct {
	pix *image.RGBA
}

// NewImage copies src into a new Image with its origin at (0, 0).
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{pix: dst}
}

// DecodeImage decodes any registered format (png, jpeg, gif, bmp, webp).
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return &Image{pix: rgba}, nil
	}
	return NewImage(src), nil
}

// LoadImage reads and decodes an image file. Files ending in .tga go through
// DecodeTGA.
func LoadImage(path string) (*Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		pix, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &Image{pix: pix}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Size returns the width and height in pixels.
func (i *Image) Size() (int, int) {
	b := i.pix.Bounds()
	return b.Dx(), b.Dy()
}

// RGBA returns the pixel data. Callers must not modify it.
func (i *Image) RGBA() *image.RGBA {
	return i.pix
}

// Scaled returns a copy resampled to w x h with bilinear filtering.
func (i *Image) Scaled(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("scaled size must be positive")
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), i.pix, i.pix.Bounds(), draw.Src, nil)
	return &Image{pix: dst}, nil
}
