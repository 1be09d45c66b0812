package pipe

import (
	"context"
	"io"
)

type binding struct {
	next Unit
}

// WithPipe binds next as the continuation for everything rendered with the
// returned context. It shadows any outer binding. A nil next binds Nop.
func WithPipe(ctx context.Context, next Unit) context.Context {
	if IsNil(next) {
		next = Nop
	}
	return context.WithValue(ctx, PipeOptionKey, binding{next: next})
}

// UsePipe returns the continuation visible from ctx, or Nop when none is bound.
func UsePipe(ctx context.Context) Unit {
	if next, ok := lookupPipe(ctx); ok {
		return next
	}
	return Nop
}

func lookupPipe(ctx context.Context) (Unit, bool) {
	b, ok := ctx.Value(PipeOptionKey).(binding)
	if !ok {
		return nil, false
	}
	return b.next, true
}

// PipeProvider renders children with component bound as the continuation.
func PipeProvider(component, children Unit) Unit {
	return UnitFunc(func(ctx context.Context, w io.Writer) error {
		return Render(WithPipe(ctx, component), children, w)
	})
}
