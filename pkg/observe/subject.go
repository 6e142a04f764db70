package observe

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type subscription[T any] struct {
	next   func(T)
	fail   func(error)
	closed atomic.Bool
}

// Subject holds a current value and broadcasts every new value to its
// subscribers. Subscribers receive the current value when they subscribe.
// Deliveries are serialized, a callback must not call Next or Subscribe on
// the subject that is calling it.
type Subject[T any] struct {
	mu       sync.RWMutex
	emit     sync.Mutex
	value    T
	hasValue bool
	err      error
	subs     map[string]*subscription[T]
}

// New returns a subject without a current value
func New[T any]() *Subject[T] {
	return &Subject[T]{subs: make(map[string]*subscription[T])}
}

// NewBehavior returns a subject seeded with initial
func NewBehavior[T any](initial T) *Subject[T] {
	s := New[T]()
	s.value = initial
	s.hasValue = true
	return s
}

// Next replaces the current value and delivers it. It is a no-op once the
// subject has failed.
func (s *Subject[T]) Next(v T) {
	s.emit.Lock()
	defer s.emit.Unlock()

	s.mu.Lock()
	if s.err != nil {
		s.mu.Unlock()
		return
	}
	s.value = v
	s.hasValue = true
	subs := s.snapshot()
	s.mu.Unlock()

	for _, sub := range subs {
		if !sub.closed.Load() && sub.next != nil {
			sub.next(v)
		}
	}
}

// Error terminates the subject. Every subscriber is notified once and dropped.
func (s *Subject[T]) Error(err error) {
	s.emit.Lock()
	defer s.emit.Unlock()

	s.mu.Lock()
	if s.err != nil {
		s.mu.Unlock()
		return
	}
	s.err = err
	subs := s.snapshot()
	s.subs = make(map[string]*subscription[T])
	s.mu.Unlock()

	for _, sub := range subs {
		if !sub.closed.Load() && sub.fail != nil {
			sub.fail(err)
		}
	}
}

// Value returns the current value and whether one was ever set
func (s *Subject[T]) Value() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.hasValue
}

// Subscribe registers callbacks and replays the current value, or the
// terminal error, right away. The returned func revokes the subscription and
// is safe to call more than once.
func (s *Subject[T]) Subscribe(next func(T), fail func(error)) func() {
	s.emit.Lock()
	defer s.emit.Unlock()

	sub := &subscription[T]{next: next, fail: fail}
	id := uuid.NewString()

	s.mu.Lock()
	err := s.err
	value, hasValue := s.value, s.hasValue
	if err == nil {
		s.subs[id] = sub
	}
	s.mu.Unlock()

	switch {
	case err != nil:
		if fail != nil {
			fail(err)
		}
		return func() {}
	case hasValue && next != nil:
		next(value)
	}

	return func() {
		sub.closed.Store(true)
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Subject[T]) snapshot() []*subscription[T] {
	subs := make([]*subscription[T], 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	return subs
}
