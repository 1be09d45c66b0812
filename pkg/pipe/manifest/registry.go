package manifest

import (
	"fmt"
	"sync"

	"github.com/ib-77/rpipe/pkg/pipe"
	"github.com/mitchellh/mapstructure"
)

// Node is a spec with its nested specs already built.
type Node struct {
	Kind     string
	Props    map[string]any
	Units    []pipe.Unit
	Children []pipe.Unit
	Fallback pipe.Unit
}

// DecodeProps decodes n.Props into out, rejecting unknown keys.
func (n Node) DecodeProps(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(n.Props); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidProps, n.Kind, err)
	}
	return nil
}

type Factory func(n Node) (pipe.Unit, error)

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry with the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	for kind, f := range builtins() {
		r.factories[kind] = f
	}
	return r
}

// Register adds a kind. The kind must be non-empty and f non-nil.
func (r *Registry) Register(kind string, f Factory) error {
	if kind == "" {
		return fmt.Errorf("%w: empty kind", ErrInvalidKind)
	}
	if f == nil {
		return fmt.Errorf("%w: nil factory for %q", ErrInvalidKind, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	r.factories[kind] = f
	return nil
}

func (r *Registry) lookup(kind string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[kind]
	return f, ok
}

// Build turns spec into a unit, building nested specs first.
func (r *Registry) Build(spec Spec) (pipe.Unit, error) {
	f, ok := r.lookup(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}

	units, err := r.buildAll("units", spec.Units)
	if err != nil {
		return nil, err
	}
	children, err := r.buildAll("children", spec.Children)
	if err != nil {
		return nil, err
	}

	var fallback pipe.Unit
	if spec.Fallback != nil {
		if fallback, err = r.Build(*spec.Fallback); err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
	}

	return f(Node{
		Kind:     spec.Kind,
		Props:    spec.Props,
		Units:    units,
		Children: children,
		Fallback: fallback,
	})
}

func (r *Registry) buildAll(field string, specs []Spec) ([]pipe.Unit, error) {
	units := make([]pipe.Unit, 0, len(specs))
	for i, s := range specs {
		u, err := r.Build(s)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		units = append(units, u)
	}
	return units, nil
}
