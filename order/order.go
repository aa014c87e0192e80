// Package order applies discounts to an order total by stacking decorators.
//
// Discounts compose in wrapping order: each one is computed against the total
// produced by the chain beneath it, never against the base total.
// Parameters are not bounded, a percentage above 100 or an amount larger than
// the total simply yields a negative total, unless ClampAtZero is requested.
package order

import (
	"fmt"

	"github.com/a-peyrard/godeco"
)

type (
	Order interface {
		godeco.Component[float64]
		Total() float64
	}

	// Base is an order with a fixed starting total.
	Base struct {
		*godeco.Leaf[float64]
	}
)

var (
	_ Order = (*Base)(nil)
	_ Order = (*Discount)(nil)
)

func NewBase(total float64) *Base {
	return &Base{Leaf: godeco.NewLeaf(total)}
}

func (b *Base) Total() float64 {
	return b.Operation()
}

func (b *Base) String() string {
	return fmt.Sprintf("BaseOrder(%g)", b.Total())
}
