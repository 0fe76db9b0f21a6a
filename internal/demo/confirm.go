package demo

import (
	"time"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/event"
	"github.com/Faultbox/gamestack/internal/logger"
)

type answer int

const (
	unanswered answer = iota
	answerYes
	answerNo
)

// ConfirmQuit asks before leaving the game. Yes stops the loop through
// Context.Quit; no returns to the round.
type ConfirmQuit struct {
	event.DefaultHandler
	answer answer
}

// NewConfirmQuit creates an unanswered quit prompt.
func NewConfirmQuit() *ConfirmQuit {
	return &ConfirmQuit{}
}

func (c *ConfirmQuit) Update(ctx *event.Context, _ *assets.Table, _ time.Duration) (event.Transition, error) {
	a := c.answer
	c.answer = unanswered
	switch a {
	case answerYes:
		logger.Info("quit confirmed")
		ctx.Quit()
	case answerNo:
		return event.Pop(), nil
	}
	return event.None(), nil
}

func (c *ConfirmQuit) Draw(ctx *event.Context, table *assets.Table) error {
	return drawOverlay(ctx, table, "Quit the game?", "Y: yes   N: no")
}

func (c *ConfirmQuit) KeyDown(key event.Keycode, _ event.Mod, _ bool) {
	switch key {
	case event.KeyY:
		c.answer = answerYes
	case event.KeyN:
		c.answer = answerNo
	}
}

func (c *ConfirmQuit) ControllerButtonDown(button event.Button, _ int32) {
	switch button {
	case event.ButtonA:
		c.answer = answerYes
	case event.ButtonB:
		c.answer = answerNo
	}
}
