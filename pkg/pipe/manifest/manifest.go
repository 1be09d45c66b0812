package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ib-77/rpipe/pkg/pipe"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind   = errors.New("manifest: unknown kind")
	ErrInvalidProps  = errors.New("manifest: invalid props")
	ErrDuplicateKind = errors.New("manifest: kind already registered")
	ErrInvalidKind   = errors.New("manifest: invalid kind registration")
	ErrPageNotFound  = errors.New("manifest: page not found")
	ErrEmptyDocument = errors.New("manifest: document has no pages")
)

// Spec describes one unit. Units are the components of a pipeline or
// piping, Children follow them (or are the content of an element).
type Spec struct {
	Kind     string         `yaml:"kind"`
	Props    map[string]any `yaml:"props,omitempty"`
	Units    []Spec         `yaml:"units,omitempty"`
	Children []Spec         `yaml:"children,omitempty"`
	Fallback *Spec          `yaml:"fallback,omitempty"`
}

type Document struct {
	Pages map[string]Spec `yaml:"pages"`
}

// Load decodes a document. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if len(doc.Pages) == 0 {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Site is a compiled document.
type Site struct {
	pages map[string]pipe.Unit
	names []string
}

// Compile builds every page of doc with r.
func (r *Registry) Compile(doc *Document) (*Site, error) {
	site := &Site{pages: make(map[string]pipe.Unit, len(doc.Pages))}
	for name, spec := range doc.Pages {
		u, err := r.Build(spec)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", name, err)
		}
		site.pages[name] = u
		site.names = append(site.names, name)
	}
	sort.Strings(site.names)
	return site, nil
}

func (s *Site) Page(name string) (pipe.Unit, error) {
	u, ok := s.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	return u, nil
}

// Names returns the page names in sorted order.
func (s *Site) Names() []string {
	return append([]string(nil), s.names...)
}
