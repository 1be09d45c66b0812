package pipe

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Variant tells which builder produced a Chain.
type Variant string

const (
	VariantPipeline Variant = "pipeline"
	VariantPiping   Variant = "piping"
)

// Chain is the continuation handed out by the builders: the units from
// position onwards followed by the terminal. Advancing a chain copies the
// header and shares the read-only unit slice.
type Chain struct {
	id       uuid.UUID
	variant  Variant
	units    []Unit
	pos      int
	terminal Unit
}

func newChain(ctx context.Context, variant Variant, units []Unit, terminal Unit) *Chain {
	c := &Chain{
		id:       uuid.New(),
		variant:  variant,
		units:    units,
		terminal: terminal,
	}

	RecorderFrom(ctx).IncChainBuilt(variant)
	RecorderFrom(ctx).ObserveChainLength(variant, len(units))
	LoggerFrom(ctx).Debug("chain built",
		"chain_id", c.id,
		"variant", variant,
		"units", len(units),
		"terminal", !IsEmpty(terminal))

	return c
}

// ID is shared by every position of one built chain.
func (c *Chain) ID() uuid.UUID {
	return c.id
}

func (c *Chain) Variant() Variant {
	return c.variant
}

// Position is the index of the unit this chain renders next.
func (c *Chain) Position() int {
	return c.pos
}

// Remaining is the number of units left before the terminal.
func (c *Chain) Remaining() int {
	return len(c.units) - c.pos
}

func (c *Chain) Terminal() Unit {
	return c.terminal
}

// Render renders the unit at the current position with the channel bound to
// the following position. Past the last unit it renders the terminal with the
// channel bound to Nop, so a Pipe inside the terminal renders nothing.
func (c *Chain) Render(ctx context.Context, w io.Writer) error {
	if c.pos >= len(c.units) {
		if IsEmpty(c.terminal) {
			return nil
		}
		return c.terminal.Render(WithPipe(ctx, Nop), w)
	}

	LoggerFrom(ctx).Debug("rendering unit",
		"chain_id", c.id,
		"variant", c.variant,
		"position", c.pos)

	return Render(WithPipe(ctx, c.next()), c.units[c.pos], w)
}

func (c *Chain) next() *Chain {
	return &Chain{
		id:       c.id,
		variant:  c.variant,
		units:    c.units,
		pos:      c.pos + 1,
		terminal: c.terminal,
	}
}

func (c *Chain) outcome() ResolveOutcome {
	switch {
	case c.Remaining() > 0:
		return ResolvedContinuation
	case !IsEmpty(c.terminal):
		return ResolvedTerminal
	default:
		return ResolvedEmpty
	}
}
