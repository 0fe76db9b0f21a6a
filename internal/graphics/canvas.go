package graphics

// Canvas is the drawing surface handed to states through the loop context.
// Coordinates are window pixels with the origin at the top left.
type Canvas interface {
	Clear(c Color)
	DrawImage(img *Image, x, y float32)
	DrawRect(x, y, w, h float32, c Color)
	DrawText(f *Font, text string, x, y float32, c Color) error
	Present() error
}
