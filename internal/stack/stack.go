// Package stack implements a fixed-capacity LIFO.
package stack

import "errors"

var (
	// ErrOverflow is returned by Push when the stack is at capacity.
	ErrOverflow = errors.New("stack overflow")

	// ErrUnderflow is returned by Pop when the stack is empty.
	ErrUnderflow = errors.New("stack underflow")
)

// Stack is a LIFO whose capacity is fixed when it is created; it never grows
// past that capacity.
type Stack[T any] struct {
	data     []T
	capacity int
}

// New creates an empty stack that can hold up to capacity values.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{capacity: capacity}
}

// Push appends v unless the stack is full.
func (s *Stack[T]) Push(v T) error {
	if len(s.data) >= s.capacity {
		return ErrOverflow
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the most recently pushed value.
func (s *Stack[T]) Pop() (v T, err error) {
	i := len(s.data) - 1
	if i < 0 {
		return v, ErrUnderflow
	}
	v = s.data[i]
	s.data = s.data[:i]
	return v, nil
}

// Clear empties the stack.
func (s *Stack[T]) Clear() { s.data = s.data[:0] }

// Data returns the live contents, bottom to top. Callers must not modify it.
func (s *Stack[T]) Data() []T { return s.data }

func (s *Stack[T]) Len() int { return len(s.data) }
func (s *Stack[T]) Cap() int { return s.capacity }
