package event

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gamestack/internal/logger"
)

var (
	// ErrStackEmpty reports that the last handler was popped. It is the
	// loop's normal end condition, not a fault.
	ErrStackEmpty = errors.New("state stack is empty")

	// ErrNilHandler is returned when Push or Swap carries no handler.
	ErrNilHandler = errors.New("transition has nil handler")
)

// Stack owns the active handlers. The last element is the active state and
// the only one that receives calls.
type Stack struct {
	handlers []Handler
}

// NewStack returns a stack holding the given handlers, bottom first.
func NewStack(initial ...Handler) *Stack {
	s := &Stack{}
	for _, h := range initial {
		if h != nil {
			s.handlers = append(s.handlers, h)
		}
	}
	return s
}

// Len returns the number of resident handlers.
func (s *Stack) Len() int {
	return len(s.handlers)
}

// Top returns the active handler, or nil if the stack is empty.
func (s *Stack) Top() Handler {
	if len(s.handlers) == 0 {
		return nil
	}
	return s.handlers[len(s.handlers)-1]
}

// Apply mutates the stack as t describes. It returns ErrStackEmpty when the
// stack ends up with no handlers.
func (s *Stack) Apply(t Transition) error {
	switch t.kind {
	case TransitionNone:
		return nil

	case TransitionPush:
		if t.next == nil {
			return fmt.Errorf("push: %w", ErrNilHandler)
		}
		s.handlers = append(s.handlers, t.next)
		logger.Debug("state pushed",
			zap.String("state", handlerName(t.next)),
			zap.Int("depth", len(s.handlers)),
		)
		return nil

	case TransitionSwap:
		if t.next == nil {
			return fmt.Errorf("swap: %w", ErrNilHandler)
		}
		// The outgoing state is released before the new one becomes reachable.
		if len(s.handlers) > 0 {
			s.releaseTop()
		}
		s.handlers = append(s.handlers, t.next)
		logger.Debug("state swapped",
			zap.String("state", handlerName(t.next)),
			zap.Int("depth", len(s.handlers)),
		)
		return nil

	case TransitionPop:
		if len(s.handlers) == 0 {
			return ErrStackEmpty
		}
		s.releaseTop()
		logger.Debug("state popped", zap.Int("depth", len(s.handlers)))
		if len(s.handlers) == 0 {
			return ErrStackEmpty
		}
		return nil

	default:
		return fmt.Errorf("unknown transition %s", t.kind)
	}
}

// Clear releases every handler, top first.
func (s *Stack) Clear() {
	for len(s.handlers) > 0 {
		s.releaseTop()
	}
}

func (s *Stack) releaseTop() {
	last := len(s.handlers) - 1
	h := s.handlers[last]
	s.handlers[last] = nil
	s.handlers = s.handlers[:last]
	if r, ok := h.(Releaser); ok {
		r.Release()
	}
}
