package manifest

import (
	"context"
	"fmt"
	"io"

	"github.com/ib-77/rpipe/pkg/pipe"
	"github.com/ib-77/rpipe/pkg/pipe/markup"
)

type textProps struct {
	Text string `mapstructure:"text"`
}

type rawProps struct {
	HTML string `mapstructure:"html"`
}

type markdownProps struct {
	Source string `mapstructure:"source"`
}

type elementProps struct {
	Tag   string            `mapstructure:"tag"`
	Attrs map[string]string `mapstructure:"attrs"`
}

type guardProps struct {
	Allow bool `mapstructure:"allow"`
}

func builtins() map[string]Factory {
	return map[string]Factory{
		"text":     buildText,
		"raw":      buildRaw,
		"markdown": buildMarkdown,
		"element":  buildElement,
		"fragment": buildFragment,
		"pipe":     buildPipe,
		"guard":    buildGuard,
		"provider": buildProvider,
		"pipeline": buildPipeline,
		"piping":   buildPiping,
	}
}

// leaf rejects nested specs on kinds that cannot render them.
func (n Node) leaf() error {
	if len(n.Units) > 0 || len(n.Children) > 0 || n.Fallback != nil {
		return fmt.Errorf("%w: %s: units, children and fallback are not supported", ErrInvalidProps, n.Kind)
	}
	return nil
}

func buildText(n Node) (pipe.Unit, error) {
	if err := n.leaf(); err != nil {
		return nil, err
	}
	var p textProps
	if err := n.DecodeProps(&p); err != nil {
		return nil, err
	}
	return markup.Text(p.Text), nil
}

func buildRaw(n Node) (pipe.Unit, error) {
	if err := n.leaf(); err != nil {
		return nil, err
	}
	var p rawProps
	if err := n.DecodeProps(&p); err != nil {
		return nil, err
	}
	return markup.Raw(p.HTML), nil
}

func buildMarkdown(n Node) (pipe.Unit, error) {
	if err := n.leaf(); err != nil {
		return nil, err
	}
	var p markdownProps
	if err := n.DecodeProps(&p); err != nil {
		return nil, err
	}
	return markup.Markdown(p.Source), nil
}

func buildElement(n Node) (pipe.Unit, error) {
	var p elementProps
	if err := n.DecodeProps(&p); err != nil {
		return nil, err
	}
	if p.Tag == "" {
		return nil, fmt.Errorf("%w: element: tag is required", ErrInvalidProps)
	}
	return markup.Element(p.Tag, markup.Attrs(p.Attrs), n.Children...), nil
}

func buildFragment(n Node) (pipe.Unit, error) {
	return markup.Fragment(n.Children...), nil
}

func buildPipe(n Node) (pipe.Unit, error) {
	if err := n.leaf(); err != nil {
		return nil, err
	}
	if len(n.Props) > 0 {
		return nil, fmt.Errorf("%w: pipe: takes no props", ErrInvalidProps)
	}
	return pipe.Pipe, nil
}

// buildGuard continues the pipeline when allowed, otherwise renders its
// children in place of the rest of the chain.
func buildGuard(n Node) (pipe.Unit, error) {
	var p guardProps
	if err := n.DecodeProps(&p); err != nil {
		return nil, err
	}
	denied := markup.Fragment(n.Children...)
	return pipe.UnitFunc(func(ctx context.Context, w io.Writer) error {
		if p.Allow {
			return pipe.Pipe.Render(ctx, w)
		}
		return denied.Render(ctx, w)
	}), nil
}

// buildProvider binds its single unit as the continuation for its children.
func buildProvider(n Node) (pipe.Unit, error) {
	if len(n.Units) != 1 {
		return nil, fmt.Errorf("%w: provider: expected exactly one unit, got %d", ErrInvalidProps, len(n.Units))
	}
	return pipe.PipeProvider(n.Units[0], markup.Fragment(n.Children...)), nil
}

func buildPipeline(n Node) (pipe.Unit, error) {
	if n.Fallback != nil {
		return nil, fmt.Errorf("%w: pipeline: fallback is only supported by piping", ErrInvalidProps)
	}
	return pipe.Pipeline(pipe.Props{Components: n.Units, Children: n.Children}), nil
}

func buildPiping(n Node) (pipe.Unit, error) {
	return pipe.Piping(pipe.Props{Components: n.Units, Children: n.Children, Fallback: n.Fallback}), nil
}
