// Package text is the string specialization of the chain: a fixed leaf and a
// decorator enclosing whatever its inner component renders.
package text

import (
	"github.com/a-peyrard/godeco"
	"github.com/a-peyrard/godeco/option"
)

const ConcreteComponentText = "ConcreteComponent"

// NewConcreteComponent returns the leaf rendering "ConcreteComponent".
func NewConcreteComponent() *godeco.Leaf[string] {
	return godeco.NewLeaf(ConcreteComponentText)
}

// NewConcreteDecoratorA wraps inner as "ConcreteDecoratorA(<inner>)". Inner may be
// nil, in which case the forwarded part is empty.
func NewConcreteDecoratorA(inner godeco.Component[string], opts ...option.Option[godeco.Options]) *godeco.Decorator[string] {
	return godeco.NewDecorator(
		inner,
		Enclose("ConcreteDecoratorA(", ")"),
		godeco.Named("ConcreteDecoratorA"),
		option.Combine(opts...),
	)
}

// Enclose surrounds the inner text with a prefix and a suffix.
func Enclose(prefix, suffix string) godeco.Step[string] {
	return func(inner string) string {
		return prefix + inner + suffix
	}
}

// Append adds label after the inner text, separated by sep. An empty inner text
// yields the label alone.
func Append(sep, label string) godeco.Step[string] {
	return func(inner string) string {
		if inner == "" {
			return label
		}
		return inner + sep + label
	}
}
