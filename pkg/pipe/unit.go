package pipe

import (
	"context"
	"io"
)

// Unit is anything the host can render.
type Unit interface {
	Render(ctx context.Context, w io.Writer) error
}

// UnitFunc adapts a function to Unit.
type UnitFunc func(ctx context.Context, w io.Writer) error

func (f UnitFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

type nopUnit struct{}

func (nopUnit) Render(context.Context, io.Writer) error { return nil }

// Nop renders nothing. It is the continuation seen outside any pipeline.
var Nop Unit = nopUnit{}

// Render renders u into w. A nil unit renders nothing.
func Render(ctx context.Context, u Unit, w io.Writer) error {
	if IsNil(u) {
		return nil
	}
	return u.Render(ctx, w)
}

// IsEmpty reports whether u renders nothing by construction.
func IsEmpty(u Unit) bool {
	if IsNil(u) {
		return true
	}
	_, ok := u.(nopUnit)
	return ok
}
