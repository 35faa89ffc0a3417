package content

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ta2edh/blog/logging"
)

// StoreConfig configures a Store.
type StoreConfig struct {
	// Loader renders individual posts. Required.
	Loader *Loader
	// Workers bounds concurrent file loads. Zero means runtime.NumCPU().
	Workers int
	Logger  logging.Logger
}

// Store enumerates the content directory and aggregates posts.
type Store struct {
	dir     string
	loader  *Loader
	workers int
	logger  logging.Logger
}

// Failure records why a post file was left out of a listing.
type Failure struct {
	Slug string
	Err  error
}

// Report is the result of Check: every post that loaded plus every file
// that did not.
type Report struct {
	Posts    []Post
	Failures []Failure
}

// NewStore returns a store over the loader's content directory.
func NewStore(cfg StoreConfig) *Store {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Store{
		dir:     cfg.Loader.Dir(),
		loader:  cfg.Loader,
		workers: workers,
		logger:  logging.OrNoOp(cfg.Logger),
	}
}

// Dir returns the content directory.
func (s *Store) Dir() string {
	return s.dir
}

// List returns every post that loads, newest first. Posts sharing a date
// are ordered by slug. Files that fail to load are logged and skipped.
//
// The content directory is created when missing, so a fresh setup yields an
// empty listing. The only errors returned are a directory that cannot be
// created or read, and context cancellation.
func (s *Store) List(ctx context.Context) ([]Post, error) {
	report, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range report.Failures {
		s.logger.Warn("post skipped", "slug", f.Slug, "error", f.Err)
	}
	return report.Posts, nil
}

// Get loads a single post by slug.
func (s *Store) Get(ctx context.Context, slug string) (Post, error) {
	return s.loader.Load(ctx, slug)
}

// Check loads every post like List but keeps the failures.
func (s *Store) Check(ctx context.Context) (Report, error) {
	return s.collect(ctx)
}

// Slugs lists the slugs of every *.md entry in the content directory,
// creating the directory first when it does not exist.
func (s *Store) Slugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, dirUnavailable(err, fmt.Sprintf("create content directory %s", s.dir))
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, dirUnavailable(err, fmt.Sprintf("read content directory %s", s.dir))
	}

	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, Extension) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, Extension))
	}
	return slugs, nil
}

func (s *Store) collect(ctx context.Context) (Report, error) {
	slugs, err := s.Slugs(ctx)
	if err != nil {
		return Report{}, err
	}

	type outcome struct {
		post Post
		err  error
	}
	outcomes := make([]outcome, len(slugs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, slug := range slugs {
		g.Go(func() error {
			post, err := s.loader.Load(ctx, slug)
			outcomes[i] = outcome{post: post, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{Posts: make([]Post, 0, len(slugs))}
	for i, o := range outcomes {
		if o.err != nil {
			report.Failures = append(report.Failures, Failure{Slug: slugs[i], Err: o.err})
			continue
		}
		report.Posts = append(report.Posts, o.post)
	}
	SortPosts(report.Posts)
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Slug < report.Failures[j].Slug
	})

	s.logger.Debug("posts listed", "dir", s.dir, "loaded", len(report.Posts), "skipped", len(report.Failures))
	return report, nil
}

// SortPosts orders posts newest first, breaking ties by slug ascending.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].publishedAt, posts[j].publishedAt
		if !a.Equal(b) {
			return a.After(b)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// WithTag returns the posts carrying tag (case-insensitive). An empty tag
// returns posts unchanged.
func WithTag(posts []Post, tag string) []Post {
	if normalizeTag(tag) == "" {
		return posts
	}
	var filtered []Post
	for _, p := range posts {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Tags returns the sorted, lower-cased set of tags used by posts.
func Tags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			if tag := normalizeTag(t); tag != "" {
				set[tag] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
