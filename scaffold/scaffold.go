// Package scaffold creates new post files from embedded templates for the
// blog CLI.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/ta2edh/blog/content"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed templates/*.tmpl
var Templates embed.FS

// ErrExists is returned by NewPost when the target file is already present.
var ErrExists = errors.New("post already exists")

var postTemplate = template.Must(template.New("post.md.tmpl").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	ParseFS(Templates, "templates/post.md.tmpl"))

// Post is the data a new post file is rendered from.
type Post struct {
	Title    string
	Slug     string // derived from Title when empty
	Date     string // today when empty
	Excerpt  string
	Author   string
	Callsign string
	Tags     []string
}

// Slug derives a URL-safe slug from title.
func Slug(title string) (string, error) {
	s, err := slug.Normalize(title)
	if err != nil {
		return "", fmt.Errorf("slug for %q: %w", title, err)
	}
	if s == "" {
		return "", fmt.Errorf("slug for %q: title has no usable characters", title)
	}
	return s, nil
}

func (p *Post) normalize() error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Slug == "" {
		s, err := Slug(p.Title)
		if err != nil {
			return err
		}
		p.Slug = s
	}
	if !content.ValidSlug(p.Slug) {
		return fmt.Errorf("invalid slug %q: must not contain path separators", p.Slug)
	}
	if p.Date == "" {
		p.Date = time.Now().Format("2006-01-02")
	}
	if _, err := content.ParseDate(p.Date); err != nil {
		return err
	}
	return nil
}

// Render writes the front-matter skeleton for p.
func Render(w io.Writer, p Post) error {
	if err := p.normalize(); err != nil {
		return err
	}
	return postTemplate.Execute(w, p)
}

// NewPost writes <dir>/<slug>.md for p and returns its path. The directory
// is created if needed; an existing file is never overwritten.
func NewPost(dir string, p Post) (string, error) {
	if err := p.normalize(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, p.Slug+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, fmt.Errorf("%s: %w", path, ErrExists)
		}
		return "", err
	}

	if err := postTemplate.Execute(f, p); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return path, f.Close()
}
