package pipe

import (
	"context"
	"io"
)

// Props is the input of Pipeline and Piping. Components come first in the
// sequence, Children are appended after them. Fallback is used by Piping
// only.
type Props struct {
	Components []Unit
	Children   []Unit
	Fallback   Unit
}

func (p Props) sequence() []Unit {
	seq := make([]Unit, 0, len(p.Components)+len(p.Children))
	seq = append(seq, p.Components...)
	return append(seq, p.Children...)
}

// Pipe renders the continuation bound in the context. Outside any pipeline
// it renders nothing, or fails with ErrNoContinuation in strict mode.
var Pipe Unit = UnitFunc(resolve)

func resolve(ctx context.Context, w io.Writer) error {
	next, ok := lookupPipe(ctx)
	if !ok {
		RecorderFrom(ctx).IncPipeResolved(ResolvedUnbound)
		if IsStrict(ctx, false) {
			return ErrNoContinuation
		}
		LoggerFrom(ctx).Debug("pipe rendered outside any pipeline")
		return nil
	}

	RecorderFrom(ctx).IncPipeResolved(outcomeOf(next))
	return next.Render(ctx, w)
}

func outcomeOf(next Unit) ResolveOutcome {
	if c, ok := next.(*Chain); ok {
		return c.outcome()
	}
	if IsEmpty(next) {
		return ResolvedEmpty
	}
	return ResolvedContinuation
}

// Pipeline renders the units in order, each one reaching the next through
// Pipe. The last unit's Pipe renders the continuation that was visible where
// the Pipeline itself was rendered, so pipelines nest transparently.
// An empty Pipeline renders nothing and binds nothing. p.Fallback is ignored;
// use Piping for a chain that ends in a fallback.
func Pipeline(p Props) Unit {
	seq := p.sequence()
	return UnitFunc(func(ctx context.Context, w io.Writer) error {
		if len(seq) == 0 {
			return nil
		}
		return newChain(ctx, VariantPipeline, seq, UsePipe(ctx)).Render(ctx, w)
	})
}

// Piping is like Pipeline but isolated: the last unit's Pipe renders
// p.Fallback (or nothing), never the enclosing pipeline's continuation.
func Piping(p Props) Unit {
	return CreatePipeline(p.sequence(), p.Fallback)
}

// CreatePipeline builds an isolated chain over seq ending in fallback.
// An empty seq renders fallback directly.
func CreatePipeline(seq []Unit, fallback Unit) Unit {
	units := append([]Unit(nil), seq...)
	return UnitFunc(func(ctx context.Context, w io.Writer) error {
		return newChain(ctx, VariantPiping, units, fallback).Render(ctx, w)
	})
}
