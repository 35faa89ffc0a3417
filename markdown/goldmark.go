package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Goldmark converts Markdown with the goldmark engine (CommonMark + GFM).
type Goldmark struct {
	engine goldmark.Markdown
}

// NewGoldmark builds a goldmark converter. The engine is built once and
// shared; goldmark.Markdown is safe for concurrent Convert calls.
func NewGoldmark(opts Options) *Goldmark {
	rendererOptions := []renderer.Option{
		html.WithXHTML(),
	}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	return &Goldmark{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
				extension.Footnote,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// Convert renders src to HTML. Raw HTML blocks are omitted from the output.
func (g *Goldmark) Convert(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := g.engine.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return buf.String(), nil
}
