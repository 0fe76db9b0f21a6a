package demo

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/event"
	"github.com/Faultbox/gamestack/internal/logger"
	"github.com/Faultbox/gamestack/pkg/math"
)

const (
	playerSize  = 32
	playerSpeed = 240.0 // pixels per second
	stickDead   = 8000
)

// Play moves a square around the field.
type Play struct {
	event.DefaultHandler

	width, height int
	field         math.Rect
	pos           math.Vec2

	// Held direction keys and the left stick, each axis in [-1, 1].
	keys  math.Vec2
	stick math.Vec2

	next event.Transition
	log  *zap.Logger
}

// NewPlay starts a round with the square centred in a field of the given size.
func NewPlay(width, height int) *Play {
	return &Play{
		width:  width,
		height: height,
		field:  math.Rect{W: float32(width - playerSize), H: float32(height - playerSize)},
		pos:    math.Vec2{X: float32(width-playerSize) / 2, Y: float32(height-playerSize) / 2},
		log:    logger.Named("play"),
	}
}

// Position returns the top-left corner of the square.
func (p *Play) Position() math.Vec2 {
	return p.pos
}

func (p *Play) Update(_ *event.Context, _ *assets.Table, dt time.Duration) (event.Transition, error) {
	dir := p.keys.Add(p.stick).Limit(1)
	step := float32(playerSpeed * dt.Seconds())
	p.pos = p.field.Clamp(p.pos.Add(dir.Scale(step)))

	t := p.next
	p.next = event.None()
	return t, nil
}

func (p *Play) Draw(ctx *event.Context, table *assets.Table) error {
	ctx.Graphics.Clear(background)
	ctx.Graphics.DrawRect(p.pos.X, p.pos.Y, playerSize, playerSize, accent)

	hud := fmt.Sprintf("x=%.0f y=%.0f   P: pause   Tab: restart   Backspace: menu", p.pos.X, p.pos.Y)
	if err := drawText(ctx, table, hud, 10, 10, textColor); err != nil {
		return err
	}
	return ctx.Graphics.Present()
}

func (p *Play) KeyDown(key event.Keycode, _ event.Mod, repeat bool) {
	switch key {
	case event.KeyLeft:
		p.keys.X = -1
	case event.KeyRight:
		p.keys.X = 1
	case event.KeyUp:
		p.keys.Y = -1
	case event.KeyDown:
		p.keys.Y = 1
	}
	if repeat {
		return
	}
	switch key {
	case event.KeyP:
		p.schedule(event.Push(NewPause()))
	case event.KeyTab:
		p.schedule(event.Swap(NewPlay(p.width, p.height)))
	case event.KeyBackspace:
		p.schedule(event.Pop())
	}
}

func (p *Play) KeyUp(key event.Keycode, _ event.Mod, _ bool) {
	switch key {
	case event.KeyLeft, event.KeyRight:
		p.keys.X = 0
	case event.KeyUp, event.KeyDown:
		p.keys.Y = 0
	}
}

func (p *Play) ControllerButtonDown(button event.Button, _ int32) {
	switch button {
	case event.ButtonStart:
		p.schedule(event.Push(NewPause()))
	case event.ButtonBack:
		p.schedule(event.Pop())
	}
}

func (p *Play) ControllerAxis(axis event.Axis, value int16, _ int32) {
	var v float32
	if value > stickDead || value < -stickDead {
		v = float32(value) / 32767
	}
	switch axis {
	case event.AxisLeftX:
		p.stick.X = v
	case event.AxisLeftY:
		p.stick.Y = v
	}
}

// Focus pauses the round when the window loses focus.
func (p *Play) Focus(gained bool) {
	if !gained {
		p.keys = math.Vec2{}
		p.schedule(event.Push(NewPause()))
	}
}

// QuitRequested cancels the close request and asks for confirmation instead.
// Closing again while the prompt is up goes through.
func (p *Play) QuitRequested() bool {
	p.log.Info("quit requested, asking for confirmation")
	p.schedule(event.Push(NewConfirmQuit()))
	return true
}

func (p *Play) Release() {
	p.log.Debug("round ended", zap.Float32("x", p.pos.X), zap.Float32("y", p.pos.Y))
}

// schedule keeps the first transition requested in a frame.
func (p *Play) schedule(t event.Transition) {
	if p.next.Kind() == event.TransitionNone {
		p.next = t
	}
}

var _ event.Releaser = (*Play)(nil)
