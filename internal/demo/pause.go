package demo

import (
	"time"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/event"
)

// Pause sits on top of a round until P (or Start) is pressed again.
type Pause struct {
	event.DefaultHandler
	resume bool
}

// NewPause creates a pause screen that pops itself on P or Start.
func NewPause() *Pause {
	return &Pause{}
}

func (p *Pause) Update(*event.Context, *assets.Table, time.Duration) (event.Transition, error) {
	if p.resume {
		p.resume = false
		return event.Pop(), nil
	}
	return event.None(), nil
}

func (p *Pause) Draw(ctx *event.Context, table *assets.Table) error {
	return drawOverlay(ctx, table, "Paused", "P: resume")
}

func (p *Pause) KeyDown(key event.Keycode, _ event.Mod, repeat bool) {
	if key == event.KeyP && !repeat {
		p.resume = true
	}
}

func (p *Pause) ControllerButtonDown(button event.Button, _ int32) {
	if button == event.ButtonStart {
		p.resume = true
	}
}
