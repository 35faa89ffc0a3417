// Package markdown converts post bodies from Markdown to HTML.
//
// Conversion is pluggable: callers depend on Converter and pick an engine by
// name through New. Raw HTML embedded in the source is never passed through,
// so the output is safe to place directly into a page.
package markdown

import (
	"fmt"
	"sort"
	"strings"
)

// Engine names accepted by New.
const (
	EngineGoldmark    = "goldmark"
	EngineBlackfriday = "blackfriday"
)

// Converter renders Markdown source into an HTML fragment.
// Implementations must be safe for concurrent use.
type Converter interface {
	Convert(src []byte) (string, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(src []byte) (string, error)

// Convert calls f(src).
func (f ConverterFunc) Convert(src []byte) (string, error) {
	return f(src)
}

// Options tunes the engines. The zero value is the default configuration.
type Options struct {
	// HardWraps renders single newlines inside a paragraph as <br>.
	HardWraps bool
}

var engines = map[string]func(Options) Converter{
	EngineGoldmark:    func(o Options) Converter { return NewGoldmark(o) },
	EngineBlackfriday: func(o Options) Converter { return NewBlackfriday(o) },
}

// New returns the converter registered under engine. An empty engine name
// selects goldmark.
func New(engine string, opts Options) (Converter, error) {
	key := strings.ToLower(strings.TrimSpace(engine))
	if key == "" {
		key = EngineGoldmark
	}
	build, ok := engines[key]
	if !ok {
		return nil, fmt.Errorf("markdown: unknown engine %q (want one of %s)", engine, strings.Join(Engines(), ", "))
	}
	return build(opts), nil
}

// Engines lists the registered engine names in sorted order.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEngine reports whether engine names a registered converter.
func IsEngine(engine string) bool {
	key := strings.ToLower(strings.TrimSpace(engine))
	if key == "" {
		return true
	}
	_, ok := engines[key]
	return ok
}
