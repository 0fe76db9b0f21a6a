package event

import "fmt"

// TransitionKind tags a Transition.
type TransitionKind int

const (
	// TransitionNone leaves the stack unchanged.
	TransitionNone TransitionKind = iota
	// TransitionPush puts a new handler on top; the old top stays beneath it.
	TransitionPush
	// TransitionSwap releases the top and replaces it in place.
	TransitionSwap
	// TransitionPop releases the top and returns control to the one beneath.
	TransitionPop
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionNone:
		return "none"
	case TransitionPush:
		return "push"
	case TransitionSwap:
		return "swap"
	case TransitionPop:
		return "pop"
	default:
		return fmt.Sprintf("transition(%d)", int(k))
	}
}

// Transition tells the stack how to change after an update. The zero value is None.
type Transition struct {
	kind TransitionKind
	next Handler
}

// None keeps the current state.
func None() Transition {
	return Transition{}
}

// Push hands control to h, keeping the current state beneath it.
func Push(h Handler) Transition {
	return Transition{kind: TransitionPush, next: h}
}

// Swap replaces the current state with h.
func Swap(h Handler) Transition {
	return Transition{kind: TransitionSwap, next: h}
}

// Pop drops the current state.
func Pop() Transition {
	return Transition{kind: TransitionPop}
}

// Kind returns the transition tag.
func (t Transition) Kind() TransitionKind {
	return t.kind
}

// Handler returns the incoming handler for Push and Swap, nil otherwise.
func (t Transition) Handler() Handler {
	return t.next
}

func (t Transition) String() string {
	if t.next != nil {
		return fmt.Sprintf("%s(%s)", t.kind, handlerName(t.next))
	}
	return t.kind.String()
}

func handlerName(h Handler) string {
	return fmt.Sprintf("%T", h)
}
