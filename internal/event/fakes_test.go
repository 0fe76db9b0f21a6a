package event

import (
	"fmt"
	"time"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/graphics"
)

// journal is shared by handlers so tests can check the order of calls across
// several states.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// recorder is a scripted handler. Each Update pops the next queued
// transition, or returns None when the queue is empty.
type recorder struct {
	DefaultHandler

	name    string
	log     *journal
	next    []Transition
	cancel  bool // QuitRequested result
	upErr   error
	drawErr error

	updates   int
	draws     int
	keys      []Keycode
	released  int
	lastDelta time.Duration
}

func newRecorder(name string, log *journal) *recorder {
	return &recorder{name: name, log: log}
}

func (r *recorder) Update(ctx *Context, _ *assets.Table, dt time.Duration) (Transition, error) {
	r.updates++
	r.lastDelta = dt
	r.log.add("%s.update", r.name)
	if r.upErr != nil {
		return None(), r.upErr
	}
	if len(r.next) == 0 {
		return None(), nil
	}
	t := r.next[0]
	r.next = r.next[1:]
	return t, nil
}

func (r *recorder) Draw(*Context, *assets.Table) error {
	r.draws++
	r.log.add("%s.draw", r.name)
	return r.drawErr
}

func (r *recorder) KeyDown(key Keycode, mod Mod, repeat bool) {
	r.keys = append(r.keys, key)
	r.log.add("%s.keydown(%d)", r.name, key)
}

func (r *recorder) MouseButtonDown(b MouseButton, x, y int32) {
	r.log.add("%s.mousedown(%d,%d,%d)", r.name, b, x, y)
}

func (r *recorder) MouseButtonUp(b MouseButton, x, y int32) {
	r.log.add("%s.mouseup(%d,%d,%d)", r.name, b, x, y)
}

func (r *recorder) MouseMotion(s MouseState, x, y, xrel, yrel int32) {
	r.log.add("%s.motion(%d,%d,%d,%d,%d)", r.name, s, x, y, xrel, yrel)
}

func (r *recorder) MouseWheel(x, y int32) {
	r.log.add("%s.wheel(%d,%d)", r.name, x, y)
}

func (r *recorder) KeyUp(key Keycode, mod Mod, repeat bool) {
	r.log.add("%s.keyup(%d,%d,%t)", r.name, key, mod, repeat)
}

func (r *recorder) ControllerButtonDown(b Button, id int32) {
	r.log.add("%s.padDown(%d,%d)", r.name, b, id)
}

func (r *recorder) ControllerButtonUp(b Button, id int32) {
	r.log.add("%s.padUp(%d,%d)", r.name, b, id)
}

func (r *recorder) ControllerAxis(a Axis, v int16, id int32) {
	r.log.add("%s.axis(%d,%d,%d)", r.name, a, v, id)
}

func (r *recorder) Focus(gained bool) {
	r.log.add("%s.focus(%t)", r.name, gained)
}

func (r *recorder) QuitRequested() bool {
	r.log.add("%s.quit", r.name)
	return r.cancel
}

func (r *recorder) Release() {
	r.released++
	r.log.add("%s.release", r.name)
}

// script is an event source that hands out one batch per Poll.
type script struct {
	batches [][]Event
	polls   int
}

func (s *script) Poll() []Event {
	s.polls++
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

// stepTimer advances by a fixed step on every Tick.
type stepTimer struct {
	step  time.Duration
	ticks int
}

func (t *stepTimer) Tick() { t.ticks++ }
func (t *stepTimer) Delta() time.Duration { return t.step }

// nullCanvas satisfies graphics.Canvas and draws nothing.
type nullCanvas struct{}

func (nullCanvas) Clear(graphics.Color) {}
func (nullCanvas) DrawImage(*graphics.Image, float32, float32) {}
func (nullCanvas) DrawRect(float32, float32, float32, float32, graphics.Color) {}
func (nullCanvas) DrawText(*graphics.Font, string, float32, float32, graphics.Color) error { return nil }
func (nullCanvas) Present() error { return nil }

func newTestContext(batches ...[]Event) (*Context, *script, *stepTimer) {
	src := &script{batches: batches}
	tm := &stepTimer{step: 16 * time.Millisecond}
	return &Context{Graphics: nullCanvas{}, Events: src, Timer: tm}, src, tm
}
