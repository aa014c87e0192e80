package order

import (
	"errors"
	"fmt"

	"github.com/a-peyrard/godeco"
	"github.com/a-peyrard/godeco/option"
)

var ErrNoOrder = errors.New("no order to discount")

type (
	DiscountKind int

	// Discount reduces the total of the order it wraps.
	Discount struct {
		*godeco.Decorator[float64]
		kind  DiscountKind
		value float64
		clamp bool
	}

	DiscountOptions struct {
		named string
		clamp bool
	}
)

const (
	PercentageKind DiscountKind = iota + 1
	FixedAmountKind
)

func (k DiscountKind) String() string {
	switch k {
	case PercentageKind:
		return "percentage"
	case FixedAmountKind:
		return "fixed-amount"
	}
	return fmt.Sprintf("DiscountKind(%d)", int(k))
}

// ClampAtZero floors the discounted total at zero.
func ClampAtZero() option.Option[DiscountOptions] {
	return func(opts *DiscountOptions) {
		opts.clamp = true
	}
}

func Named(name string) option.Option[DiscountOptions] {
	return func(opts *DiscountOptions) {
		opts.named = name
	}
}

// PercentageStep takes percentage percent off the inner total.
func PercentageStep(percentage float64) godeco.Step[float64] {
	return func(inner float64) float64 {
		return inner - inner*(percentage/100)
	}
}

// FixedAmountStep subtracts amount from the inner total.
func FixedAmountStep(amount float64) godeco.Step[float64] {
	return func(inner float64) float64 {
		return inner - amount
	}
}

// Percentage wraps o in a discount of percentage percent of its total.
func Percentage(o Order, percentage float64, opts ...option.Option[DiscountOptions]) (*Discount, error) {
	return newDiscount(o, PercentageKind, percentage, PercentageStep(percentage), opts...)
}

// FixedAmount wraps o in a discount of a fixed amount.
func FixedAmount(o Order, amount float64, opts ...option.Option[DiscountOptions]) (*Discount, error) {
	return newDiscount(o, FixedAmountKind, amount, FixedAmountStep(amount), opts...)
}

func MustPercentage(o Order, percentage float64, opts ...option.Option[DiscountOptions]) *Discount {
	return must(Percentage(o, percentage, opts...))
}

func MustFixedAmount(o Order, amount float64, opts ...option.Option[DiscountOptions]) *Discount {
	return must(FixedAmount(o, amount, opts...))
}

func must(d *Discount, err error) *Discount {
	if err != nil {
		panic(err.Error())
	}
	return d
}

func newDiscount(
	o Order,
	kind DiscountKind,
	value float64,
	step godeco.Step[float64],
	opts ...option.Option[DiscountOptions],
) (*Discount, error) {
	options := option.Build(
		&DiscountOptions{
			named: fmt.Sprintf("%s(%g)", kind, value),
		},
		opts...,
	)
	if options.clamp {
		step = clamped(step)
	}

	d, err := godeco.Wrap[float64](o, step, godeco.Named(options.named))
	if err != nil {
		if errors.Is(err, godeco.ErrNoInner) {
			return nil, fmt.Errorf("failed to create %s discount:\n\t%w", kind, ErrNoOrder)
		}
		return nil, err
	}

	return &Discount{
		Decorator: d,
		kind:      kind,
		value:     value,
		clamp:     options.clamp,
	}, nil
}

func clamped(step godeco.Step[float64]) godeco.Step[float64] {
	return func(inner float64) float64 {
		return max(step(inner), 0)
	}
}

func (d *Discount) Total() float64 {
	return d.Operation()
}

func (d *Discount) Kind() DiscountKind {
	return d.kind
}

func (d *Discount) Value() float64 {
	return d.value
}

func (d *Discount) Clamped() bool {
	return d.clamp
}

// SetInner re-points the discount to another order, which is mandatory.
func (d *Discount) SetInner(o Order) error {
	if err := d.Decorator.SetInner(o); err != nil {
		if errors.Is(err, godeco.ErrNoInner) {
			return fmt.Errorf("failed to re-point %s:\n\t%w", d, ErrNoOrder)
		}
		return err
	}
	return nil
}
