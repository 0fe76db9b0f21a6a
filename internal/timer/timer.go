// Package timer measures frame time for the main loop and paces frames when
// a rate limit is set.
package timer

import "time"

// Config controls pacing and smoothing.
type Config struct {
	FPSLimit  int           // 0 = unlimited
	MaxDelta  time.Duration // 0 = no clamp
	FPSWindow int           // samples averaged by FPS; 0 = 60
}

// Timer tracks ticks. It is not safe for concurrent use; the loop owns it.
type Timer struct {
	cfg   Config
	now   func() time.Time
	sleep func(time.Duration)

	start time.Time
	last  time.Time
	delta time.Duration
	ticks uint64

	samples []time.Duration
	next    int
	filled  int
}

// New creates a timer using the wall clock.
func New(cfg Config) *Timer {
	return NewWithClock(cfg, time.Now, time.Sleep)
}

// NewWithClock creates a timer with injected time source and sleep, for tests.
func NewWithClock(cfg Config, now func() time.Time, sleep func(time.Duration)) *Timer {
	if cfg.FPSWindow <= 0 {
		cfg.FPSWindow = 60
	}
	t := &Timer{
		cfg:     cfg,
		now:     now,
		sleep:   sleep,
		samples: make([]time.Duration, cfg.FPSWindow),
	}
	t.start = now()
	t.last = t.start
	return t
}

// Tick advances one frame. With a frame limit it first sleeps off whatever
// is left of the frame budget since the previous tick.
func (t *Timer) Tick() {
	if t.cfg.FPSLimit > 0 {
		budget := time.Second / time.Duration(t.cfg.FPSLimit)
		if spent := t.now().Sub(t.last); spent < budget {
			t.sleep(budget - spent)
		}
	}

	now := t.now()
	d := now.Sub(t.last)
	t.last = now
	if d < 0 {
		d = 0
	}
	if t.cfg.MaxDelta > 0 && d > t.cfg.MaxDelta {
		d = t.cfg.MaxDelta
	}
	t.delta = d
	t.ticks++

	t.samples[t.next] = d
	t.next = (t.next + 1) % len(t.samples)
	if t.filled < len(t.samples) {
		t.filled++
	}
}

// Delta returns the time between the last two ticks.
func (t *Timer) Delta() time.Duration {
	return t.delta
}

// Ticks returns how many times Tick was called.
func (t *Timer) Ticks() uint64 {
	return t.ticks
}

// Elapsed returns the time since the timer was created.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// FPS returns the average frame rate over the sample window.
func (t *Timer) FPS() float64 {
	if t.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.samples[:t.filled] {
		sum += d
	}
	if sum <= 0 {
		return 0
	}
	return float64(t.filled) / sum.Seconds()
}
