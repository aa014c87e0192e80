package godeco

import (
	"errors"
	"fmt"
	"sync"

	"github.com/a-peyrard/godeco/option"
)

var (
	// ErrNoInner is returned when a strict decorator is given no inner component.
	ErrNoInner = errors.New("no inner component")
	// ErrCycle is returned when re-pointing a decorator would make it reach itself.
	ErrCycle = errors.New("chain would contain a cycle")
)

type (
	// Step combines the result of the inner component with the contribution of a layer.
	// It must be a pure function of its input and of the layer's own parameters.
	Step[T any] func(inner T) T

	// Decorator wraps exactly one inner Component.
	//
	// Operation is evaluated in two explicit steps: Forward computes the inner
	// result, then the decorator's Step is applied to it. A nil Step forwards
	// unchanged. When no inner component is bound, Forward yields the zero value
	// of T ("" for text, 0 for numbers) instead of failing.
	//
	// The inner reference is guarded by a read/write lock, re-pointing nodes that
	// belong to the same chain from several goroutines must still be serialized by
	// the caller.
	Decorator[T any] struct {
		mu    sync.RWMutex
		inner Component[T]

		step   Step[T]
		name   string
		strict bool
	}

	Options struct {
		named string
	}

	decorated[T any] interface {
		decorator() *Decorator[T]
	}
)

func Named(name string) option.Option[Options] {
	return func(opts *Options) {
		opts.named = name
	}
}

// NewDecorator creates a tolerant decorator, inner may be nil.
func NewDecorator[T any](inner Component[T], step Step[T], opts ...option.Option[Options]) *Decorator[T] {
	options := option.Build(&Options{}, opts...)
	if isAbsent(inner) {
		inner = nil
	}

	return &Decorator[T]{
		inner: inner,
		step:  step,
		name:  options.named,
	}
}

// Wrap creates a strict decorator: it fails fast when inner is absent and
// refuses to be re-pointed to an absent component later on.
func Wrap[T any](inner Component[T], step Step[T], opts ...option.Option[Options]) (*Decorator[T], error) {
	d := NewDecorator(inner, step, opts...)
	if d.inner == nil {
		return nil, fmt.Errorf("failed to wrap %s:\n\t%w", d, ErrNoInner)
	}
	d.strict = true
	return d, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap[T any](inner Component[T], step Step[T], opts ...option.Option[Options]) *Decorator[T] {
	d, err := Wrap(inner, step, opts...)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Forward returns the inner result unchanged, or the zero value of T if no inner is bound.
func (d *Decorator[T]) Forward() T {
	inner := d.Inner()
	if inner == nil {
		var neutral T
		return neutral
	}
	return inner.Operation()
}

func (d *Decorator[T]) Operation() T {
	result := d.Forward()
	if d.step == nil {
		return result
	}
	return d.step(result)
}

func (d *Decorator[T]) Inner() Component[T] {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner
}

// SetInner re-points the decorator. The next Operation reflects the new inner
// component; results already returned are not affected.
func (d *Decorator[T]) SetInner(inner Component[T]) error {
	if isAbsent(inner) {
		if d.strict {
			return fmt.Errorf("failed to re-point %s:\n\t%w", d, ErrNoInner)
		}
		inner = nil
	} else if Contains(inner, Component[T](d)) {
		return fmt.Errorf("failed to re-point %s:\n\t%w", d, ErrCycle)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inner = inner
	return nil
}

func (d *Decorator[T]) Name() string {
	return d.name
}

func (d *Decorator[T]) decorator() *Decorator[T] {
	return d
}

func (d *Decorator[T]) String() string {
	if d.name == "" {
		return "Decorator(anonymous)"
	}
	return fmt.Sprintf("Decorator(%s)", d.name)
}
