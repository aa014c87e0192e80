package godeco

import "reflect"

// Layers lists the nodes of the chain, outermost first. The last element is the
// terminal node, unless the innermost decorator has no inner component bound.
func Layers[T any](c Component[T]) []Component[T] {
	var layers []Component[T]
	for current := c; !isAbsent(current); {
		layers = append(layers, current)
		d, ok := current.(decorated[T])
		if !ok {
			break
		}
		current = d.decorator().Inner()
	}
	return layers
}

// Depth returns the number of decorators in the chain. A bare leaf has depth 0.
func Depth[T any](c Component[T]) int {
	depth := 0
	for _, layer := range Layers(c) {
		if KindOf(layer) == KindDecorator {
			depth++
		}
	}
	return depth
}

// Terminal returns the node ending the chain, or nil when the innermost
// decorator has nothing bound.
func Terminal[T any](c Component[T]) Component[T] {
	layers := Layers(c)
	if len(layers) == 0 {
		return nil
	}
	last := layers[len(layers)-1]
	if KindOf(last) == KindDecorator {
		return nil
	}
	return last
}

// Contains reports whether node is one of the layers of chain. Decorators are
// matched by identity, even when embedded in a specialized type.
func Contains[T any](chain Component[T], node Component[T]) bool {
	if isAbsent(node) {
		return false
	}
	target, targetIsDecorator := node.(decorated[T])
	for _, layer := range Layers(chain) {
		if targetIsDecorator {
			if d, ok := layer.(decorated[T]); ok && d.decorator() == target.decorator() {
				return true
			}
			continue
		}
		if sameNode(layer, node) {
			return true
		}
	}
	return false
}

func sameNode[T any](a, b Component[T]) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}
