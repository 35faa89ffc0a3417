package markdown

import (
	"github.com/russross/blackfriday/v2"
)

// Blackfriday converts Markdown with the blackfriday v2 engine.
type Blackfriday struct {
	extensions blackfriday.Extensions
	flags      blackfriday.HTMLFlags
}

// NewBlackfriday builds a blackfriday converter.
func NewBlackfriday(opts Options) *Blackfriday {
	ext := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Footnotes
	if opts.HardWraps {
		ext |= blackfriday.HardLineBreak
	}
	return &Blackfriday{
		extensions: ext,
		flags:      blackfriday.CommonHTMLFlags | blackfriday.SkipHTML | blackfriday.Safelink,
	}
}

// Convert renders src to HTML. A fresh renderer is used per call because
// blackfriday renderers keep per-document state (heading IDs, footnotes).
func (b *Blackfriday) Convert(src []byte) (string, error) {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: b.flags,
	})
	out := blackfriday.Run(src,
		blackfriday.WithExtensions(b.extensions),
		blackfriday.WithRenderer(r),
	)
	return string(out), nil
}
