package godeco

import "fmt"

type (
	// Leaf terminates a chain with a value fixed at construction.
	Leaf[T any] struct {
		value T
	}

	terminal[T any] interface {
		leaf() *Leaf[T]
	}
)

func NewLeaf[T any](value T) *Leaf[T] {
	return &Leaf[T]{value: value}
}

func (l *Leaf[T]) Operation() T {
	return l.value
}

func (l *Leaf[T]) leaf() *Leaf[T] {
	return l
}

func (l *Leaf[T]) String() string {
	return fmt.Sprintf("Leaf(%v)", l.value)
}
