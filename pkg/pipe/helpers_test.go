package pipe

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
)

func text(s string) Unit {
	return UnitFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// wrap renders <name>Pipe</name>.
func wrap(name string) Unit {
	return UnitFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+name+">"); err != nil {
			return err
		}
		if err := Pipe.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+name+">")
		return err
	})
}

func seq(units ...Unit) Unit {
	return UnitFunc(func(ctx context.Context, w io.Writer) error {
		for _, u := range units {
			if err := Render(ctx, u, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func render(t *testing.T, ctx context.Context, u Unit) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(ctx, u, &buf); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return buf.String()
}

type countingRecorder struct {
	mu       sync.Mutex
	built    map[Variant]int
	lengths  []int
	resolved map[ResolveOutcome]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		built:    map[Variant]int{},
		resolved: map[ResolveOutcome]int{},
	}
}

func (r *countingRecorder) IncChainBuilt(variant Variant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.built[variant]++
}

func (r *countingRecorder) ObserveChainLength(_ Variant, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lengths = append(r.lengths, n)
}

func (r *countingRecorder) IncPipeResolved(outcome ResolveOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved[outcome]++
}
