package main

import (
	"fmt"
	"time"

	"github.com/Faultbox/gamestack/internal/event"
)

type titler interface {
	SetTitle(title string)
}

type fpsCounter interface {
	FPS() float64
}

// titleSource wraps the event source and refreshes the window title with
// the frame rate once per interval.
type titleSource struct {
	event.Source

	base     string
	win      titler
	fps      fpsCounter
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

func newTitleSource(src event.Source, win titler, fps fpsCounter, base string) *titleSource {
	return &titleSource{
		Source:   src,
		base:     base,
		win:      win,
		fps:      fps,
		interval: time.Second,
		now:      time.Now,
	}
}

func (s *titleSource) Poll() []event.Event {
	if now := s.now(); now.Sub(s.last) >= s.interval {
		s.last = now
		s.win.SetTitle(fmt.Sprintf("%s - %.0f fps", s.base, s.fps.FPS()))
	}
	return s.Source.Poll()
}
