package graphics

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

const (
	tgaTypeUncompressed = 2
	tgaTypeRLE          = 10
	tgaHeaderSize       = 18
)

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed (type 2) or RLE (type 10) true-color TGA.
// TGA has no magic number, so it is not registered with image.Decode;
// LoadImage picks it by file extension.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		bpp:         bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if imageType == tgaTypeUncompressed {
		err = d.decodeRaw()
	} else {
		err = d.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img           *image.RGBA
	src           []byte
	pos           int
	width, height int
	bpp           int
	topToBottom   bool
}

// pixel reads one BGR(A) pixel at the cursor.
func (d *tgaDecoder) pixel() (color.RGBA, bool) {
	if d.pos+d.bpp > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

// set writes the n-th pixel in file order, flipping rows for bottom-up files.
func (d *tgaDecoder) set(n int, c color.RGBA) {
	x, y := n%d.width, n/d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRaw() error {
	total := d.width * d.height
	if len(d.src) < total*d.bpp {
		return errTGATruncated
	}
	for n := 0; n < total; n++ {
		c, _ := d.pixel()
		d.set(n, c)
	}
	return nil
}

// decodeRLE stops quietly at the end of the data; missing pixels stay transparent.
func (d *tgaDecoder) decodeRLE() error {
	total := d.width * d.height
	n := 0
	for n < total && d.pos < len(d.src) {
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := d.pixel()
			if !ok {
				return nil
			}
			for i := 0; i < count && n < total; i++ {
				d.set(n, c)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			c, ok := d.pixel()
			if !ok {
				return nil
			}
			d.set(n, c)
			n++
		}
	}
	return nil
}
