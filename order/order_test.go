package order

import (
	"testing"

	"github.com/a-peyrard/godeco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	t.Run("it should return its starting total", func(t *testing.T) {
		// GIVEN
		base := NewBase(100)

		// THEN
		assert.Equal(t, 100.0, base.Total())
		assert.Equal(t, 0, godeco.Depth[float64](base))
		assert.Equal(t, "BaseOrder(100)", base.String())
	})
}

func TestDiscounts(t *testing.T) {
	t.Run("it should take a percentage off", func(t *testing.T) {
		// WHEN
		d, err := Percentage(NewBase(100), 10)

		// THEN
		require.NoError(t, err)
		assert.InDelta(t, 90.0, d.Total(), 1e-9)
		assert.Equal(t, PercentageKind, d.Kind())
		assert.Equal(t, 10.0, d.Value())
		assert.Equal(t, "percentage(10)", d.Name())
	})

	t.Run("it should subtract a fixed amount", func(t *testing.T) {
		// WHEN
		d, err := FixedAmount(NewBase(100), 20)

		// THEN
		require.NoError(t, err)
		assert.InDelta(t, 80.0, d.Total(), 1e-9)
		assert.Equal(t, FixedAmountKind, d.Kind())
	})

	t.Run("it should apply the percentage on the already discounted total", func(t *testing.T) {
		// GIVEN
		base := NewBase(100)

		// WHEN
		fixedThenPercentage := MustPercentage(MustFixedAmount(base, 20), 10)
		percentageThenFixed := MustFixedAmount(MustPercentage(base, 10), 20)

		// THEN
		assert.InDelta(t, 72.0, fixedThenPercentage.Total(), 1e-9)
		assert.InDelta(t, 70.0, percentageThenFixed.Total(), 1e-9)
		assert.NotEqual(t, fixedThenPercentage.Total(), percentageThenFixed.Total())
		assert.Equal(t, 2, godeco.Depth[float64](fixedThenPercentage))
	})

	t.Run("it should stack a fixed amount and a percentage discount", func(t *testing.T) {
		// WHEN
		d := MustPercentage(MustFixedAmount(NewBase(100), 20), 15)

		// THEN
		assert.InDelta(t, 68.0, d.Total(), 1e-9)
	})

	t.Run("it should let out of range parameters propagate", func(t *testing.T) {
		// GIVEN
		base := NewBase(100)

		// THEN
		assert.InDelta(t, -50.0, MustPercentage(base, 150).Total(), 1e-9)
		assert.InDelta(t, 110.0, MustPercentage(base, -10).Total(), 1e-9)
		assert.InDelta(t, -20.0, MustFixedAmount(base, 120).Total(), 1e-9)
		assert.InDelta(t, 105.0, MustFixedAmount(base, -5).Total(), 1e-9)
	})

	t.Run("it should floor at zero when asked to", func(t *testing.T) {
		// GIVEN
		base := NewBase(100)

		// WHEN
		fixed := MustFixedAmount(base, 120, ClampAtZero())
		percentage := MustPercentage(base, 150, ClampAtZero(), Named("too-generous"))

		// THEN
		assert.Equal(t, 0.0, fixed.Total())
		assert.True(t, fixed.Clamped())
		assert.Equal(t, 0.0, percentage.Total())
		assert.Equal(t, "too-generous", percentage.Name())
		assert.InDelta(t, 30.0, MustFixedAmount(base, 70, ClampAtZero()).Total(), 1e-9)
	})

	t.Run("it should fail fast without an order", func(t *testing.T) {
		// GIVEN
		var base *Base

		// WHEN
		_, errPercentage := Percentage(nil, 10)
		_, errFixed := FixedAmount(base, 10)

		// THEN
		require.ErrorIs(t, errPercentage, ErrNoOrder)
		require.ErrorIs(t, errFixed, ErrNoOrder)
		assert.Contains(t, errPercentage.Error(), "percentage")
		assert.Panics(t, func() { MustFixedAmount(nil, 1) })
	})
}

func TestSteps(t *testing.T) {
	t.Run("it should be pure functions of their parameter and inner total", func(t *testing.T) {
		assert.InDelta(t, 72.0, PercentageStep(10)(80), 1e-9)
		assert.InDelta(t, 60.0, FixedAmountStep(20)(80), 1e-9)
		assert.Equal(t, PercentageStep(10)(80), PercentageStep(10)(80))
	})
}

func TestDiscountSetInner(t *testing.T) {
	t.Run("it should use the new order from the next evaluation", func(t *testing.T) {
		// GIVEN
		d := MustPercentage(NewBase(100), 10)
		before := d.Total()

		// WHEN
		err := d.SetInner(NewBase(200))

		// THEN
		require.NoError(t, err)
		assert.InDelta(t, 90.0, before, 1e-9)
		assert.InDelta(t, 180.0, d.Total(), 1e-9)
	})

	t.Run("it should refuse nothing and cycles", func(t *testing.T) {
		// GIVEN
		inner := MustFixedAmount(NewBase(100), 20)
		outer := MustPercentage(inner, 10)

		// WHEN
		errNil := inner.SetInner(nil)
		errCycle := inner.SetInner(outer)

		// THEN
		require.ErrorIs(t, errNil, ErrNoOrder)
		require.ErrorIs(t, errCycle, godeco.ErrCycle)
		assert.InDelta(t, 72.0, outer.Total(), 1e-9)
	})
}
