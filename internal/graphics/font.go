package graphics

import (
	"fmt"
	"image"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font is a TrueType/OpenType face at a fixed point size.
type Font struct {
	face font.Face
	size float64
}

// ParseFont builds a face from TTF/OTF bytes at the given size (72 DPI, so
// one point is one pixel).
func ParseFont(data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %g must be positive", size)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return &Font{face: face, size: size}, nil
}

// LoadFont reads a font file.
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(data, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// DefaultFont returns Go Regular at the given size.
func DefaultFont(size float64) (*Font, error) {
	return ParseFont(goregular.TTF, size)
}

// Size returns the point size.
func (f *Font) Size() float64 {
	return f.size
}

// LineHeight returns the distance between baselines in pixels.
func (f *Font) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

// Measure returns the pixel size of text. Lines are split on '\n'.
func (f *Font) Measure(text string) (int, int) {
	lines := strings.Split(text, "\n")
	var w fixed.Int26_6
	for _, line := range lines {
		if lw := font.MeasureString(f.face, line); lw > w {
			w = lw
		}
	}
	m := f.face.Metrics()
	h := m.Height.Mul(fixed.I(len(lines)-1)) + m.Ascent + m.Descent
	return w.Ceil(), h.Ceil()
}

// Rasterize renders text in color c onto a transparent image sized by Measure.
func (f *Font) Rasterize(text string, c Color) *Image {
	w, h := f.Measure(text)
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	m := f.face.Metrics()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: f.face,
	}
	baseline := m.Ascent
	for _, line := range strings.Split(text, "\n") {
		d.Dot = fixed.Point26_6{X: 0, Y: baseline}
		d.DrawString(line)
		baseline += m.Height
	}
	return &Image{pix: dst}
}

// Close releases the face. It is safe to call more than once.
func (f *Font) Close() {
	if f.face != nil {
		_ = f.face.Close()
		f.face = nil
	}
}

// Closed reports whether Close has been called. A closed font cannot be
// measured or drawn.
func (f *Font) Closed() bool {
	return f.face == nil
}
