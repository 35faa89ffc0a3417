package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ta2edh/blog/logging"
	"github.com/ta2edh/blog/markdown"
)

var errInvalidSlug = errors.New("invalid slug")

// Loader turns a single <slug>.md file into a Post.
type Loader struct {
	dir    string
	conv   markdown.Converter
	logger logging.Logger
}

// NewLoader returns a loader reading from dir. A nil conv selects goldmark.
func NewLoader(dir string, conv markdown.Converter, logger logging.Logger) *Loader {
	if conv == nil {
		conv = markdown.NewGoldmark(markdown.Options{})
	}
	return &Loader{
		dir:    filepath.Clean(dir),
		conv:   conv,
		logger: logging.OrNoOp(logger),
	}
}

// Dir returns the content directory the loader reads from.
func (l *Loader) Dir() string {
	return l.dir
}

// Load reads and renders the post stored in <dir>/<slug>.md.
//
// Any non-nil error means the post is absent. IsNotFound distinguishes a
// missing or unreadable file from a malformed one (IsMalformed). Load has no
// side effects.
func (l *Loader) Load(ctx context.Context, slug string) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}

	path, err := l.path(slug)
	if err != nil {
		return Post{}, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return Post{}, notFound(err, fmt.Sprintf("read post %q", slug))
	}

	post, err := l.parse(slug, src)
	if err != nil {
		return Post{}, err
	}
	l.logger.Debug("post loaded", "slug", slug, "bytes", len(src))
	return post, nil
}

func (l *Loader) parse(slug string, src []byte) (Post, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return Post{}, malformed(err, fmt.Sprintf("parse front-matter of %q", slug))
	}
	if err := meta.Validate(); err != nil {
		return Post{}, malformed(err, fmt.Sprintf("invalid front-matter in %q", slug))
	}
	published, err := ParseDate(meta.Date)
	if err != nil {
		return Post{}, malformed(err, fmt.Sprintf("invalid date in %q", slug))
	}

	html, err := l.conv.Convert(body)
	if err != nil {
		return Post{}, malformed(err, fmt.Sprintf("render body of %q", slug))
	}

	return Post{
		Slug:        slug,
		Title:       meta.Title,
		Date:        meta.Date,
		Excerpt:     meta.Excerpt,
		Content:     html,
		Author:      meta.Author,
		Tags:        meta.Tags,
		publishedAt: published,
	}, nil
}

// ValidSlug reports whether slug names a file directly inside the content
// directory: not empty, not "." or "..", and free of path separators.
func ValidSlug(slug string) bool {
	return slug != "" && slug != "." && slug != ".." &&
		!strings.ContainsAny(slug, `/\`) && !strings.ContainsRune(slug, 0)
}

// path resolves slug to a file inside the content directory. Slugs that
// would escape the directory are reported as not found.
func (l *Loader) path(slug string) (string, error) {
	if !ValidSlug(slug) {
		return "", notFound(errInvalidSlug, fmt.Sprintf("resolve post %q", slug))
	}
	return filepath.Join(l.dir, slug+Extension), nil
}
