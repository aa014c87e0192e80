// Package godeco composes behaviors around a base value by wrapping it in
// layers. Each layer holds exactly one inner component, asks it for its result
// and combines that result with its own contribution on the way back up.
package godeco

import "reflect"

type (
	// Component is the capability every node of a chain exposes, leaf or decorator.
	// Operation must be total.
	Component[T any] interface {
		Operation() T
	}

	// ComponentFunc adapts a plain function into a Component.
	ComponentFunc[T any] func() T

	// Kind tags the variant of a chain node.
	Kind int
)

const (
	KindAbsent Kind = iota
	KindLeaf
	KindDecorator
	// KindExternal is any Component implemented outside of this package's
	// leaf and decorator types. It terminates a chain.
	KindExternal
)

func (f ComponentFunc[T]) Operation() T {
	return f()
}

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindLeaf:
		return "leaf"
	case KindDecorator:
		return "decorator"
	case KindExternal:
		return "external"
	}
	return "unknown"
}

// KindOf returns the variant of the given node.
func KindOf[T any](c Component[T]) Kind {
	if isAbsent(c) {
		return KindAbsent
	}
	switch c.(type) {
	case decorated[T]:
		return KindDecorator
	case terminal[T]:
		return KindLeaf
	default:
		return KindExternal
	}
}

// isAbsent reports whether c is nil, including typed nil pointers and funcs.
func isAbsent[T any](c Component[T]) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
