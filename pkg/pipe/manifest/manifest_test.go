package manifest

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ib-77/rpipe/pkg/pipe"
	"github.com/ib-77/rpipe/pkg/pipe/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteYAML = `
pages:
  home:
    kind: pipeline
    units:
      - kind: element
        props:
          tag: main
          attrs: {class: layout}
        children: [{kind: pipe}]
      - kind: guard
        props: {allow: true}
        children:
          - kind: text
            props: {text: denied}
      - kind: text
        props: {text: "Hello & welcome"}
  locked:
    kind: pipeline
    units:
      - kind: element
        props: {tag: main}
        children: [{kind: pipe}]
      - kind: guard
        props: {allow: false}
        children:
          - kind: text
            props: {text: denied}
      - kind: text
        props: {text: secret}
  nested:
    kind: pipeline
    units:
      - kind: element
        props: {tag: body}
        children: [{kind: pipe}]
      - kind: pipeline
        units:
          - kind: element
            props: {tag: section}
            children: [{kind: pipe}]
      - kind: text
        props: {text: tail}
  isolated:
    kind: pipeline
    units:
      - kind: element
        props: {tag: body}
        children: [{kind: pipe}]
      - kind: piping
        units:
          - kind: element
            props: {tag: section}
            children: [{kind: pipe}]
        fallback:
          kind: text
          props: {text: fallback}
      - kind: text
        props: {text: tail}
`

func compile(t *testing.T, src string) *Site {
	t.Helper()
	doc, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	site, err := NewRegistry().Compile(doc)
	require.NoError(t, err)
	return site
}

func renderPage(t *testing.T, site *Site, name string) string {
	t.Helper()
	page, err := site.Page(name)
	require.NoError(t, err)
	out, err := markup.RenderString(context.Background(), page)
	require.NoError(t, err)
	return out
}

func TestCompile_Pages(t *testing.T) {
	t.Parallel()

	site := compile(t, siteYAML)

	assert.Equal(t, []string{"home", "isolated", "locked", "nested"}, site.Names())
	assert.Equal(t, `<main class="layout">Hello &amp; welcome</main>`, renderPage(t, site, "home"))
	assert.Equal(t, `<main>denied</main>`, renderPage(t, site, "locked"))
	assert.Equal(t, `<body><section>tail</section></body>`, renderPage(t, site, "nested"))
	assert.Equal(t, `<body><section>fallback</section></body>`, renderPage(t, site, "isolated"))
}

func TestSite_PageNotFound(t *testing.T) {
	t.Parallel()

	_, err := compile(t, siteYAML).Page("missing")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Load(strings.NewReader("pages: {}"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Load(strings.NewReader("pagez: {}"))
	assert.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		spec Spec
		want error
	}{
		"unknown kind": {
			spec: Spec{Kind: "carousel"},
			want: ErrUnknownKind,
		},
		"nested unknown kind": {
			spec: Spec{Kind: "pipeline", Units: []Spec{{Kind: "pipe"}, {Kind: "nope"}}},
			want: ErrUnknownKind,
		},
		"unused prop": {
			spec: Spec{Kind: "text", Props: map[string]any{"txt": "typo"}},
			want: ErrInvalidProps,
		},
		"missing tag": {
			spec: Spec{Kind: "element"},
			want: ErrInvalidProps,
		},
		"provider without unit": {
			spec: Spec{Kind: "provider"},
			want: ErrInvalidProps,
		},
		"text with children": {
			spec: Spec{Kind: "text", Children: []Spec{{Kind: "pipe"}}},
			want: ErrInvalidProps,
		},
		"raw with units": {
			spec: Spec{Kind: "raw", Units: []Spec{{Kind: "pipe"}}},
			want: ErrInvalidProps,
		},
		"markdown with fallback": {
			spec: Spec{Kind: "markdown", Fallback: &Spec{Kind: "text"}},
			want: ErrInvalidProps,
		},
		"pipe with props": {
			spec: Spec{Kind: "pipe", Props: map[string]any{"to": "next"}},
			want: ErrInvalidProps,
		},
		"pipe with children": {
			spec: Spec{Kind: "pipe", Children: []Spec{{Kind: "text"}}},
			want: ErrInvalidProps,
		},
		"pipeline with fallback": {
			spec: Spec{Kind: "pipeline", Fallback: &Spec{Kind: "text"}},
			want: ErrInvalidProps,
		},
	}

	r := NewRegistry()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := r.Build(tc.spec)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_Provider(t *testing.T) {
	t.Parallel()

	u, err := NewRegistry().Build(Spec{
		Kind:     "provider",
		Units:    []Spec{{Kind: "text", Props: map[string]any{"text": "bound"}}},
		Children: []Spec{{Kind: "pipe"}, {Kind: "pipe"}},
	})
	require.NoError(t, err)

	out, err := markup.RenderString(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "boundbound", out)
}

func TestBuild_Markdown(t *testing.T) {
	t.Parallel()

	u, err := NewRegistry().Build(Spec{Kind: "markdown", Props: map[string]any{"source": "**hi**"}})
	require.NoError(t, err)

	out, err := markup.RenderString(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hi</strong></p>\n", out)
}

func TestRegister_CustomKind(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	err := r.Register("shout", func(n Node) (pipe.Unit, error) {
		var p struct {
			Word string `mapstructure:"word"`
		}
		if err := n.DecodeProps(&p); err != nil {
			return nil, err
		}
		return pipe.UnitFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, strings.ToUpper(p.Word))
			return err
		}), nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, r.Register("shout", nil), ErrDuplicateKind)
	assert.ErrorIs(t, r.Register("text", nil), ErrDuplicateKind)

	u, err := r.Build(Spec{Kind: "shout", Props: map[string]any{"word": "hey"}})
	require.NoError(t, err)
	out, err := markup.RenderString(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "HEY", out)
}

func TestRegister_Invalid(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.ErrorIs(t, r.Register("widget", nil), ErrInvalidKind)
	assert.ErrorIs(t, r.Register("", func(Node) (pipe.Unit, error) { return pipe.Nop, nil }), ErrInvalidKind)

	_, err := r.Build(Spec{Kind: "widget"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Pages, 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
