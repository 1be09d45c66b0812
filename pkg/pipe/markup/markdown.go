package markup

import (
	"context"
	"io"

	"github.com/ib-77/rpipe/pkg/pipe"
	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// Markdown renders src as HTML. Raw HTML in src is omitted.
func Markdown(src string) pipe.Unit {
	source := []byte(src)
	return pipe.UnitFunc(func(_ context.Context, w io.Writer) error {
		return md.Convert(source, w)
	})
}
