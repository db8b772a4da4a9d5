package components

import (
	"bytes"

	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
)

// md renders without the html.WithUnsafe option, so raw HTML in model
// output is dropped rather than passed through.
var md = goldmark.New()

// Markdown renders model text as HTML, falling back to plain text when
// conversion fails.
func Markdown(source string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return g.Text(source)
	}
	return g.Raw(buf.String())
}
