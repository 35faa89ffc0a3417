// Package views is the default terminal-themed look of the blog: a black
// screen, green phosphor text and radio-station vocabulary.
//
// Pages are html/template files embedded in the binary and exposed as templ
// components through blog.ViewFuncs, so a site can swap any of them for its
// own templ components.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/ta2edh/blog"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome     = "home"
	pagePost     = "post"
	pageNotFound = "notfound"
	pageError    = "error"
)

var pages = mustParse()

// pageData is the root value every page template executes against.
type pageData struct {
	Meta blog.PageMeta
	Site blog.SiteConfig
	Year int
	Back bool // show the "back to base" link in the header
	Page any
}

// New returns the default view set.
func New() blog.ViewFuncs {
	return blog.ViewFuncs{
		Home: func(p blog.HomePage) templ.Component {
			return page(pageHome, pageData{Meta: p.Meta, Site: p.Site, Page: p})
		},
		Post: func(p blog.PostPage) templ.Component {
			return page(pagePost, pageData{Meta: p.Meta, Site: p.Site, Back: true, Page: p})
		},
		NotFound: func(p blog.ErrorPage) templ.Component {
			return page(pageNotFound, pageData{Meta: p.Meta, Site: p.Site, Back: true, Page: p})
		},
		ServerError: func(p blog.ErrorPage) templ.Component {
			return page(pageError, pageData{Meta: p.Meta, Site: p.Site, Back: true, Page: p})
		},
	}
}

func page(name string, data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		data.Year = time.Now().Year()
		return pages[name].ExecuteTemplate(w, "layout", data)
	})
}

// mustParse builds one template set per page. Every page defines its own
// "content" block on top of the shared layout and partials.
func mustParse() map[string]*template.Template {
	base := template.Must(template.New("base").Funcs(funcMap()).
		ParseFS(templateFS, "templates/layout.html", "templates/partials.html"))

	out := make(map[string]*template.Template, 4)
	for _, name := range []string{pageHome, pagePost, pageNotFound, pageError} {
		t := template.Must(base.Clone())
		out[name] = template.Must(t.ParseFS(templateFS, "templates/"+name+".html"))
	}
	return out
}
