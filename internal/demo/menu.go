package demo

import (
	"errors"
	"time"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/event"
	"github.com/Faultbox/gamestack/internal/logger"
)

// Menu is the bottom state. Return starts a round; popping it ends the game.
type Menu struct {
	event.DefaultHandler

	width, height int
	start         bool
}

// NewMenu creates the menu for a play field of the given size.
func NewMenu(width, height int) *Menu {
	return &Menu{width: width, height: height}
}

func (m *Menu) Update(_ *event.Context, _ *assets.Table, _ time.Duration) (event.Transition, error) {
	if m.start {
		m.start = false
		logger.Info("starting round")
		return event.Push(NewPlay(m.width, m.height)), nil
	}
	return event.None(), nil
}

func (m *Menu) Draw(ctx *event.Context, table *assets.Table) error {
	ctx.Graphics.Clear(background)

	y := float32(40)
	logo, err := table.Image(LogoName)
	switch {
	case err == nil:
		w, h := logo.Size()
		ctx.Graphics.DrawImage(logo, float32(m.width-w)/2, y)
		y += float32(h) + 20
	case !errors.Is(err, assets.ErrNotFound):
		return err
	}

	if err := drawText(ctx, table, "gamestack", 40, y, accent); err != nil {
		return err
	}
	if err := drawText(ctx, table, "Return: play   Esc: quit", 40, y+40, textColor); err != nil {
		return err
	}
	return ctx.Graphics.Present()
}

func (m *Menu) KeyDown(key event.Keycode, _ event.Mod, repeat bool) {
	if key == event.KeyReturn && !repeat {
		m.start = true
	}
}

func (m *Menu) ControllerButtonDown(button event.Button, _ int32) {
	if button == event.ButtonA || button == event.ButtonStart {
		m.start = true
	}
}
