// Package beverage prices drinks by wrapping a coffee in condiments. Every layer
// contributes to both the cost and the description of the serving.
package beverage

import (
	"fmt"

	"github.com/a-peyrard/godeco"
)

const (
	UnknownDescription = "Unknown Beverage"
	// Separator is put between the description of a beverage and each condiment label.
	Separator = ", "
)

type (
	// Serving is what a beverage chain evaluates to.
	Serving struct {
		Description string
		Cost        float64
	}

	Beverage interface {
		godeco.Component[Serving]
		Cost() float64
		Description() string
	}

	// Coffee is the terminal beverage of a chain.
	Coffee struct {
		*godeco.Leaf[Serving]
	}
)

var (
	_ Beverage = (*Coffee)(nil)
	_ Beverage = (*CondimentDecorator)(nil)
)

// NewCoffee creates a coffee with a fixed description and cost. An empty
// description is rendered as UnknownDescription.
func NewCoffee(description string, cost float64) *Coffee {
	if description == "" {
		description = UnknownDescription
	}
	return &Coffee{
		Leaf: godeco.NewLeaf(Serving{Description: description, Cost: cost}),
	}
}

func Espresso() *Coffee {
	return NewCoffee("Espresso", 1.99)
}

func HouseBlend() *Coffee {
	return NewCoffee("House Blend Coffee", .89)
}

func DarkRoast() *Coffee {
	return NewCoffee("Dark Roast Coffee", .99)
}

func (c *Coffee) Cost() float64 {
	return c.Operation().Cost
}

func (c *Coffee) Description() string {
	return c.Operation().Description
}

func (c *Coffee) String() string {
	return fmt.Sprintf("Coffee(%s)", c.Description())
}

// Format renders a beverage as "<description> <currency><cost>".
func Format(b Beverage, currency string, precision int) string {
	serving := b.Operation()
	return fmt.Sprintf("%s %s%.*f", serving.Description, currency, precision, serving.Cost)
}
