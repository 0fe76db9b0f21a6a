// Package demo is a small game built on the event loop. It shows every
// transition kind: the menu pushes play, play pushes pause and the quit
// prompt, Tab swaps play for a fresh round, and popping the menu ends the
// program.
package demo

import (
	"errors"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/event"
	"github.com/Faultbox/gamestack/internal/graphics"
)

// Asset names the demo looks up.
const (
	FontName = assets.DefaultFontName
	LogoName = "logo"
)

var (
	background = graphics.RGB(20, 23, 31)
	overlay    = graphics.Black.WithAlpha(0.6)
	textColor  = graphics.White
	accent     = graphics.RGB(242, 166, 51)
)

// drawText draws a line with the default font. A missing font is not an
// error: the demo still runs with only rectangles.
func drawText(ctx *event.Context, table *assets.Table, text string, x, y float32, c graphics.Color) error {
	f, err := table.Font(FontName)
	if errors.Is(err, assets.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return ctx.Graphics.DrawText(f, text, x, y, c)
}

// drawOverlay dims the frame and draws a prompt on top.
func drawOverlay(ctx *event.Context, table *assets.Table, lines ...string) error {
	ctx.Graphics.Clear(background)
	ctx.Graphics.DrawRect(0, 0, 4096, 4096, overlay)
	y := float32(120)
	for i, line := range lines {
		c := textColor
		if i == 0 {
			c = accent
		}
		if err := drawText(ctx, table, line, 60, y, c); err != nil {
			return err
		}
		y += 36
	}
	return ctx.Graphics.Present()
}

