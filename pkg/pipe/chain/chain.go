package chain

import (
	"github.com/ib-77/rpipe/pkg/pipe"
)

// Chain accumulates components, children and a fallback. Every method
// returns a new Chain, so a partially built chain can be reused as a prefix.
type Chain struct {
	components []pipe.Unit
	children   []pipe.Unit
	fallback   pipe.Unit
}

// Start creates a new chain from components
func Start(components ...pipe.Unit) *Chain {
	return &Chain{
		components: append([]pipe.Unit(nil), components...),
	}
}

// From creates a new chain from existing props
func From(props pipe.Props) *Chain {
	return &Chain{
		components: append([]pipe.Unit(nil), props.Components...),
		children:   append([]pipe.Unit(nil), props.Children...),
		fallback:   props.Fallback,
	}
}

// Then appends a component
func (c *Chain) Then(component pipe.Unit) *Chain {
	next := c.clone()
	next.components = append(next.components, component)
	return next
}

// Children appends children, which always follow the components
func (c *Chain) Children(children ...pipe.Unit) *Chain {
	next := c.clone()
	next.children = append(next.children, children...)
	return next
}

// Fallback sets the terminal unit for Piping
func (c *Chain) Fallback(fallback pipe.Unit) *Chain {
	next := c.clone()
	next.fallback = fallback
	return next
}

// Props returns the accumulated props
func (c *Chain) Props() pipe.Props {
	return pipe.Props{
		Components: append([]pipe.Unit(nil), c.components...),
		Children:   append([]pipe.Unit(nil), c.children...),
		Fallback:   c.fallback,
	}
}

// Len is the length of the unit sequence
func (c *Chain) Len() int {
	return len(c.components) + len(c.children)
}

// Pipeline finishes into a chain-inheriting pipe.Pipeline
func (c *Chain) Pipeline() pipe.Unit {
	return pipe.Pipeline(c.Props())
}

// Piping finishes into an isolated pipe.Piping
func (c *Chain) Piping() pipe.Unit {
	return pipe.Piping(c.Props())
}

func (c *Chain) clone() *Chain {
	return &Chain{
		components: append([]pipe.Unit(nil), c.components...),
		children:   append([]pipe.Unit(nil), c.children...),
		fallback:   c.fallback,
	}
}
