package machine

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

type State interface {
	~string
}

// Allowable maps a from state to the states it may move to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine tracks the current state of a single recomputation loop
type StateMachine[S State] struct {
	mu          sync.RWMutex
	current     S
	transitions []Allowable[S]
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](initial S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: initial, transitions: transitions}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Current returns the state the machine is in
func (m *StateMachine[S]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition moves to s or returns ErrInvalidTransition and stays put
func (m *StateMachine[S]) Transition(s S) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(s); err != nil {
		return fmt.Errorf("%w: %s -> %s", err, m.current, s)
	}
	m.current = s
	return nil
}

func (m *StateMachine[S]) check(s S) error {
	for _, transition := range m.transitions {
		if transition.from != m.current {
			continue
		}

		if slices.Contains(transition.to, s) {
			return nil
		}
	}

	return ErrInvalidTransition
}
