// ABOUTME: Bounded root stack tracking objects directly reachable by the host
// ABOUTME: The sole entry point for the collector's mark phase

package heap

import "errors"

var (
	// ErrStackOverflow is returned when pushing onto a full root stack
	ErrStackOverflow = errors.New("root stack overflow")

	// ErrStackUnderflow is returned when popping an empty root stack, or
	// when combining a pair with fewer than two roots available
	ErrStackUnderflow = errors.New("root stack underflow")
)

// RootStack is an ordered, bounded list of objects the host currently
// considers reachable. It does not own the objects it references; object
// memory belongs to the heap's registry chain.
type RootStack struct {
	refs []*Object
	cap  int
}

// NewRootStack creates an empty stack with a fixed capacity
func NewRootStack(capacity int) *RootStack {
	return &RootStack{
		refs: make([]*Object, 0, capacity),
		cap:  capacity,
	}
}

// Push appends obj; fails with ErrStackOverflow at capacity
func (s *RootStack) Push(obj *Object) error {
	if len(s.refs) == s.cap {
		return ErrStackOverflow
	}
	s.refs = append(s.refs, obj)
	return nil
}

// Pop removes and returns the most recently pushed object
func (s *RootStack) Pop() (*Object, error) {
	if len(s.refs) == 0 {
		return nil, ErrStackUnderflow
	}
	top := s.refs[len(s.refs)-1]
	// Drop the reference so the backing array does not retain it
	s.refs[len(s.refs)-1] = nil
	s.refs = s.refs[:len(s.refs)-1]
	return top, nil
}

// Clear drops every entry without touching the objects; anything reachable
// only through the stack becomes garbage at the next collection
func (s *RootStack) Clear() {
	for i := range s.refs {
		s.refs[i] = nil
	}
	s.refs = s.refs[:0]
}

// Len returns the number of entries
func (s *RootStack) Len() int { return len(s.refs) }

// Cap returns the fixed capacity
func (s *RootStack) Cap() int { return s.cap }

// ForEach visits entries from bottom to top
func (s *RootStack) ForEach(fn func(*Object)) {
	for _, obj := range s.refs {
		fn(obj)
	}
}
