package main

import (
	"fmt"
	"io"

	"github.com/a-peyrard/godeco"
	"github.com/a-peyrard/godeco/beverage"
	"github.com/a-peyrard/godeco/order"
	"github.com/a-peyrard/godeco/text"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var heading = color.New(color.FgCyan, color.Bold)

type discountLine struct {
	label string
	order order.Order
}

func run(w io.Writer, settings *Settings, logger *zerolog.Logger) error {
	if err := printBeverages(w, settings); err != nil {
		return fmt.Errorf("failed to print beverages:\n\t%w", err)
	}
	printComponents(w)
	if err := printDiscounts(w, settings, logger); err != nil {
		return fmt.Errorf("failed to print discounts:\n\t%w", err)
	}
	return nil
}

func printBeverages(w io.Writer, settings *Settings) error {
	darkRoast, err := beverage.With(beverage.DarkRoast(), beverage.Mocha, beverage.Mocha, beverage.Whip)
	if err != nil {
		return err
	}
	houseBlend, err := beverage.With(beverage.HouseBlend(), beverage.Soy, beverage.Mocha, beverage.Whip)
	if err != nil {
		return err
	}

	heading.Fprintln(w, "== Beverages")
	lines := lo.Map([]beverage.Beverage{beverage.Espresso(), darkRoast, houseBlend}, func(b beverage.Beverage, _ int) string {
		return beverage.Format(b, settings.Currency, settings.Precision)
	})
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

func printComponents(w io.Writer) {
	heading.Fprintln(w, "== Components")

	simple := text.NewConcreteComponent()
	fmt.Fprintln(w, "Client: I get a simple component:")
	fmt.Fprintf(w, "Result: %s\n", simple.Operation())

	decorated := text.NewConcreteDecoratorA(simple)
	fmt.Fprintln(w, "Client: Now I've got a decorated component:")
	fmt.Fprintf(w, "Result: %s\n", decorated.Operation())
}

func printDiscounts(w io.Writer, settings *Settings, logger *zerolog.Logger) error {
	base := order.NewBase(100)

	percentage, err := order.Percentage(base, 10)
	if err != nil {
		return err
	}
	fixed, err := order.FixedAmount(base, 20)
	if err != nil {
		return err
	}
	fixedFirst, err := order.FixedAmount(base, 20)
	if err != nil {
		return err
	}
	combined, err := order.Percentage(fixedFirst, 15)
	if err != nil {
		return err
	}

	lines := []discountLine{
		{label: "10% discount", order: percentage},
		{label: "$20 discount", order: fixed},
		{label: "$20 fixed amount discount and 15% percentage discount", order: combined},
	}

	heading.Fprintln(w, "== Discounts")
	for _, line := range lines {
		total := line.order.Total()
		if logger.GetLevel() <= zerolog.DebugLevel {
			total = godeco.Logged[float64](line.order, logger, godeco.Named(line.label)).Operation()
		}
		fmt.Fprintf(w, "Total after applying %s: %s%.*f\n", line.label, settings.Currency, settings.Precision, total)
	}
	return nil
}
