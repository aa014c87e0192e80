// Package option implements the variadic functional options used by the
// chain constructors.
package option

// Option mutates an options struct of type T.
type Option[T any] func(opts *T)

// Build applies the options, in order, on top of the given defaults and returns them.
func Build[T any](defaults *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt != nil {
			opt(defaults)
		}
	}
	return defaults
}

// Combine merges several options into one, applied left to right.
func Combine[T any](opts ...Option[T]) Option[T] {
	return func(target *T) {
		Build(target, opts...)
	}
}
