package beverage

import (
	"errors"
	"fmt"

	"github.com/a-peyrard/godeco"
	"github.com/a-peyrard/godeco/text"
)

var (
	ErrNoBeverage        = errors.New("no beverage to add the condiment to")
	ErrUnknownCondiment  = errors.New("unknown condiment")
	condimentDefinitions = map[Condiment]struct {
		label     string
		surcharge float64
	}{
		Mocha: {label: "Mocha", surcharge: .20},
		Soy:   {label: "Soy", surcharge: .15},
		Whip:  {label: "Whip", surcharge: .10},
	}
)

type (
	// Condiment is one of the closed set of toppings a beverage can be wrapped in.
	Condiment int

	// CondimentDecorator adds a condiment on top of a beverage.
	CondimentDecorator struct {
		*godeco.Decorator[Serving]
		condiment Condiment
	}
)

const (
	Mocha Condiment = iota + 1
	Soy
	Whip
)

func (c Condiment) Valid() bool {
	_, found := condimentDefinitions[c]
	return found
}

func (c Condiment) Label() string {
	return condimentDefinitions[c].label
}

func (c Condiment) Surcharge() float64 {
	return condimentDefinitions[c].surcharge
}

func (c Condiment) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Condiment(%d)", int(c))
	}
	return c.Label()
}

// Step adds the surcharge to the inner cost and appends the label to the inner description.
func (c Condiment) Step() godeco.Step[Serving] {
	surcharge := c.Surcharge()
	describe := text.Append(Separator, c.Label())
	return func(inner Serving) Serving {
		return Serving{
			Description: describe(inner.Description),
			Cost:        inner.Cost + surcharge,
		}
	}
}

// Add wraps b in the given condiment. b is mandatory.
func Add(b Beverage, c Condiment) (*CondimentDecorator, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("failed to add %s:\n\t%w", c, ErrUnknownCondiment)
	}

	d, err := godeco.Wrap[Serving](b, c.Step(), godeco.Named(c.Label()))
	if err != nil {
		if errors.Is(err, godeco.ErrNoInner) {
			return nil, fmt.Errorf("failed to add %s:\n\t%w", c, ErrNoBeverage)
		}
		return nil, err
	}

	return &CondimentDecorator{
		Decorator: d,
		condiment: c,
	}, nil
}

// MustAdd is like Add but panics on error.
func MustAdd(b Beverage, c Condiment) *CondimentDecorator {
	d, err := Add(b, c)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// With wraps b in every condiment, in order: the first condiment is the
// innermost layer and its label comes first in the description.
func With(b Beverage, condiments ...Condiment) (Beverage, error) {
	current := b
	for i, c := range condiments {
		wrapped, err := Add(current, c)
		if err != nil {
			return nil, fmt.Errorf("failed to apply condiment #%d:\n\t%w", i, err)
		}
		current = wrapped
	}
	if current == nil {
		return nil, ErrNoBeverage
	}
	return current, nil
}

func (d *CondimentDecorator) Condiment() Condiment {
	return d.condiment
}

func (d *CondimentDecorator) Cost() float64 {
	return d.Operation().Cost
}

func (d *CondimentDecorator) Description() string {
	return d.Operation().Description
}

// SetInner re-points the condiment to another beverage, which is mandatory.
func (d *CondimentDecorator) SetInner(b Beverage) error {
	if err := d.Decorator.SetInner(b); err != nil {
		if errors.Is(err, godeco.ErrNoInner) {
			return fmt.Errorf("failed to re-point %s:\n\t%w", d.condiment, ErrNoBeverage)
		}
		return err
	}
	return nil
}
