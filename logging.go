package godeco

import (
	"github.com/a-peyrard/godeco/option"
	"github.com/rs/zerolog"
)

// Logged inserts a transparent layer that logs, at debug level, every value
// flowing out of inner. A nil logger disables the output.
func Logged[T any](inner Component[T], logger *zerolog.Logger, opts ...option.Option[Options]) *Decorator[T] {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	d := NewDecorator[T](inner, nil, opts...)
	d.step = func(value T) T {
		logger.Debug().
			Str("layer", d.String()).
			Int("depth", Depth[T](d)).
			Interface("value", value).
			Msg("layer evaluated")
		return value
	}
	return d
}
