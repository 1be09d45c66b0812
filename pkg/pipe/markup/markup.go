package markup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/ib-77/rpipe/pkg/pipe"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	ErrInvalidTag  = errors.New("markup: invalid tag name")
	ErrInvalidAttr = errors.New("markup: invalid attribute name")
)

// Attrs are rendered sorted by name so output is deterministic.
type Attrs map[string]string

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// IsVoid reports whether tag is an HTML void element.
func IsVoid(tag string) bool {
	return voidElements[atom.Lookup([]byte(strings.ToLower(tag)))]
}

// Element renders <tag attrs>children</tag>. Void elements render no children
// and no closing tag.
func Element(tag string, attrs Attrs, children ...pipe.Unit) pipe.Unit {
	return pipe.UnitFunc(func(ctx context.Context, w io.Writer) error {
		if !validTag(tag) {
			return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}

		rendered, err := renderAttrs(attrs)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<"+tag+rendered+">"); err != nil {
			return err
		}
		if IsVoid(tag) {
			return nil
		}

		for _, child := range children {
			if err := pipe.Render(ctx, child, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders s with HTML escaping.
func Text(s string) pipe.Unit {
	return pipe.UnitFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html.EscapeString(s))
		return err
	})
}

// Raw renders s unescaped.
func Raw(s string) pipe.Unit {
	return pipe.UnitFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// Fragment renders children one after another.
func Fragment(children ...pipe.Unit) pipe.Unit {
	return pipe.UnitFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if err := pipe.Render(ctx, child, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// RenderString renders u into a string.
func RenderString(ctx context.Context, u pipe.Unit) (string, error) {
	var buf bytes.Buffer
	if err := pipe.Render(ctx, u, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderAttrs(attrs Attrs) (string, error) {
	if len(attrs) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		if !validAttr(name) {
			return "", fmt.Errorf("%w: %q", ErrInvalidAttr, name)
		}
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attrs[name]))
		sb.WriteString(`"`)
	}
	return sb.String(), nil
}

// validAttr rejects names that would end the attribute early or start
// another one.
func validAttr(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(`"'>/=<`, r) {
			return false
		}
	}
	return true
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
