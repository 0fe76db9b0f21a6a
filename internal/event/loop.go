// Package event runs the game main loop. It pumps platform events into the
// active state, drives update/draw from the timer, and switches states through
// a stack of handlers mutated by Transition values.
package event

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/graphics"
	"github.com/Faultbox/gamestack/internal/logger"
)

// Source drains pending platform events. Poll must not block.
type Source interface {
	Poll() []Event
}

// Timer is the clock the loop advances once per iteration.
type Timer interface {
	Tick()
	Delta() time.Duration
}

// Context carries the collaborators a handler can reach during a call.
type Context struct {
	Graphics graphics.Canvas
	Events   Source
	Timer    Timer

	quit bool
}

// Quit asks the loop to stop once the current iteration finishes. It does not
// go through QuitRequested.
func (c *Context) Quit() {
	c.quit = true
}

// HandlerError wraps a failure returned by a handler's Update or Draw.
type HandlerError struct {
	Op      string
	Handler string
	Err     error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Handler, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Loop is the main loop state machine. It is RUNNING while its stack holds a
// handler, until a quit, an Escape key press, an empty stack or a handler
// error stops it. A stopped loop stays stopped.
type Loop struct {
	ctx     *Context
	assets  *assets.Table
	stack   *Stack
	stopped bool
	log     *zap.Logger
}

// NewLoop prepares a loop over the given handlers, bottom first. ctx must
// have Events and Timer set.
func NewLoop(ctx *Context, table *assets.Table, initial ...Handler) *Loop {
	if table == nil {
		table = assets.NewTable()
	}
	return &Loop{
		ctx:    ctx,
		assets: table,
		stack:  NewStack(initial...),
		log:    logger.Named("loop"),
	}
}

// Running reports whether the loop will execute another iteration.
func (l *Loop) Running() bool {
	return !l.stopped && l.stack.Len() > 0
}

// Stack exposes the state stack.
func (l *Loop) Stack() *Stack {
	return l.stack
}

// Step runs one iteration. It returns false once the loop has stopped.
func (l *Loop) Step() (bool, error) {
	if !l.Running() {
		return false, nil
	}

	l.ctx.Timer.Tick()

	for _, e := range l.ctx.Events.Poll() {
		if !l.dispatch(e) {
			l.stop("quit")
			return false, nil
		}
	}

	dt := l.ctx.Timer.Delta()

	top := l.stack.Top()
	t, err := top.Update(l.ctx, l.assets, dt)
	if err != nil {
		l.stop("update failed")
		return false, &HandlerError{Op: "update", Handler: handlerName(top), Err: err}
	}
	if err := l.stack.Apply(t); err != nil {
		if errors.Is(err, ErrStackEmpty) {
			l.stop("stack empty")
			return false, nil
		}
		l.stop("transition failed")
		return false, &HandlerError{Op: "update", Handler: handlerName(top), Err: err}
	}
	if t.kind != TransitionNone {
		l.log.Debug("transition applied",
			zap.Stringer("transition", t),
			zap.Int("depth", l.stack.Len()),
		)
	}

	top = l.stack.Top()
	if err := top.Draw(l.ctx, l.assets); err != nil {
		l.stop("draw failed")
		return false, &HandlerError{Op: "draw", Handler: handlerName(top), Err: err}
	}

	if l.ctx.quit {
		l.stop("quit requested by state")
		return false, nil
	}
	return true, nil
}

// Run steps until the loop stops, then releases every handler still on the
// stack. A handler error is returned as *HandlerError.
func (l *Loop) Run() error {
	defer l.stack.Clear()

	l.log.Info("starting main loop", zap.Int("depth", l.stack.Len()))
	for {
		ok, err := l.Step()
		if err != nil {
			l.log.Error("main loop aborted", zap.Error(err))
			return err
		}
		if !ok {
			return nil
		}
	}
}

// dispatch routes one event to the active handler. It returns false when the
// event stops the loop.
func (l *Loop) dispatch(e Event) bool {
	h := l.stack.Top()

	switch e.Kind {
	case KindQuit:
		return h.QuitRequested()
	case KindKeyDown:
		if e.Key == KeyEscape {
			l.log.Debug("escape pressed")
			return false
		}
		h.KeyDown(e.Key, e.Mod, e.Repeat)
	case KindKeyUp:
		h.KeyUp(e.Key, e.Mod, e.Repeat)
	case KindMouseButtonDown:
		h.MouseButtonDown(e.MouseButton, e.X, e.Y)
	case KindMouseButtonUp:
		h.MouseButtonUp(e.MouseButton, e.X, e.Y)
	case KindMouseMotion:
		h.MouseMotion(e.MouseState, e.X, e.Y, e.XRel, e.YRel)
	case KindMouseWheel:
		h.MouseWheel(e.X, e.Y)
	case KindControllerButtonDown:
		h.ControllerButtonDown(e.Button, e.InstanceID)
	case KindControllerButtonUp:
		h.ControllerButtonUp(e.Button, e.InstanceID)
	case KindControllerAxisMotion:
		h.ControllerAxis(e.Axis, e.AxisValue, e.InstanceID)
	case KindFocusGained:
		h.Focus(true)
	case KindFocusLost:
		h.Focus(false)
	}
	return true
}

// stop also drops a pending Context.Quit so the next loop sharing ctx
// starts clean.
func (l *Loop) stop(reason string) {
	l.stopped = true
	l.ctx.quit = false
	l.log.Info("main loop stopped", zap.String("reason", reason))
}

// Run drives a loop starting from initial until it stops.
func Run(ctx *Context, table *assets.Table, initial Handler) error {
	if initial == nil {
		return fmt.Errorf("run: %w", ErrNilHandler)
	}
	return NewLoop(ctx, table, initial).Run()
}
