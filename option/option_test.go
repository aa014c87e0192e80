package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type layerOptions struct {
	Name  string
	Label string
	Clamp bool
}

func withName(name string) Option[layerOptions] {
	return func(opts *layerOptions) {
		opts.Name = name
	}
}

func withLabel(label string) Option[layerOptions] {
	return func(opts *layerOptions) {
		opts.Label = label
	}
}

func withClamp() Option[layerOptions] {
	return func(opts *layerOptions) {
		opts.Clamp = true
	}
}

func TestBuild(t *testing.T) {
	t.Run("it should keep defaults when no option is given", func(t *testing.T) {
		// GIVEN
		defaults := &layerOptions{Name: "base", Label: "Mocha"}

		// WHEN
		result := Build(defaults)

		// THEN
		assert.Same(t, defaults, result)
		assert.Equal(t, "base", result.Name)
		assert.Equal(t, "Mocha", result.Label)
		assert.False(t, result.Clamp)
	})

	t.Run("it should apply options in order, last one wins", func(t *testing.T) {
		// GIVEN
		defaults := &layerOptions{}

		// WHEN
		result := Build(defaults, withName("first"), withClamp(), withName("second"))

		// THEN
		assert.Equal(t, "second", result.Name)
		assert.True(t, result.Clamp)
	})

	t.Run("it should skip nil options", func(t *testing.T) {
		// GIVEN
		defaults := &layerOptions{}

		// WHEN
		result := Build(defaults, nil, withLabel("Soy"))

		// THEN
		assert.Equal(t, "Soy", result.Label)
	})
}

func TestCombine(t *testing.T) {
	t.Run("it should apply every combined option", func(t *testing.T) {
		// GIVEN
		combined := Combine(withName("whip"), withLabel("Whip"))

		// WHEN
		result := Build(&layerOptions{}, combined, withClamp())

		// THEN
		assert.Equal(t, "whip", result.Name)
		assert.Equal(t, "Whip", result.Label)
		assert.True(t, result.Clamp)
	})
}
