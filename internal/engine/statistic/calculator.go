// Package statistic provides a named accumulator used to build derived
// statistics out of independent components.
package statistic

import "slices"

// Func computes one component of a statistic for the receiver
type Func[T any] func(receiver T, args ...string) int

// Term is the value of one named component
type Term struct {
	Name  string
	Value int
}

type component[T any] struct {
	fn   Func[T]
	args []string
}

// Calculator sums named components evaluated against a fixed receiver.
// Components are evaluated in insertion order.
type Calculator[T any] struct {
	receiver   T
	order      []string
	components map[string]component[T]
}

// New creates an empty calculator bound to receiver
func New[T any](receiver T) *Calculator[T] {
	return &Calculator[T]{
		receiver:   receiver,
		components: make(map[string]component[T]),
	}
}

// SetComponent inserts or replaces a component. Replacing drops the
// previously bound arguments.
func (c *Calculator[T]) SetComponent(name string, fn Func[T], args ...string) *Calculator[T] {
	if _, exists := c.components[name]; !exists {
		c.order = append(c.order, name)
	}
	c.components[name] = component[T]{fn: fn, args: slices.Clone(args)}
	return c
}

// RemoveComponent deletes a component; unknown names are ignored
func (c *Calculator[T]) RemoveComponent(name string) *Calculator[T] {
	if _, exists := c.components[name]; !exists {
		return c
	}
	delete(c.components, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
	return c
}

// Has reports whether a component is registered under name
func (c *Calculator[T]) Has(name string) bool {
	_, ok := c.components[name]
	return ok
}

// Components returns the registered names in insertion order
func (c *Calculator[T]) Components() []string {
	return slices.Clone(c.order)
}

// Terms evaluates every component
func (c *Calculator[T]) Terms() []Term {
	terms := make([]Term, 0, len(c.order))
	for _, name := range c.order {
		comp := c.components[name]
		terms = append(terms, Term{Name: name, Value: comp.fn(c.receiver, comp.args...)})
	}
	return terms
}

// Calculate sums every component. An empty calculator yields 0.
func (c *Calculator[T]) Calculate() int {
	total := 0
	for _, term := range c.Terms() {
		total += term.Value
	}
	return total
}

// CalculateDiscrepancy returns expected minus the calculated total
func (c *Calculator[T]) CalculateDiscrepancy(expected int) int {
	return expected - c.Calculate()
}
