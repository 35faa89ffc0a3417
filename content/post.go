// Package content loads blog posts from a directory of Markdown files.
//
// A post is a file named <slug>.md holding a front-matter header (title,
// date, excerpt, author, tags) followed by a Markdown body. Loader turns one
// file into one Post; Store enumerates the directory and returns every post
// that loads, newest first. Nothing is cached: each call reads the files
// again.
package content

import (
	"strings"
	"time"
)

// Extension is the filename suffix of post files.
const Extension = ".md"

// Author describes who wrote a post.
type Author struct {
	Name     string `yaml:"name" toml:"name" json:"name"`
	Callsign string `yaml:"callsign" toml:"callsign" json:"callsign,omitempty"`
}

// Post is a fully loaded blog post. Content holds rendered HTML.
type Post struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Author  *Author  `json:"author,omitempty"`
	Tags    []string `json:"tags,omitempty"`

	publishedAt time.Time
}

// PublishedAt returns Date parsed as a time. It is the zero time for posts
// that were not produced by a Loader.
func (p Post) PublishedAt() time.Time {
	return p.publishedAt
}

// HasTag reports whether the post carries tag, ignoring case and
// surrounding whitespace.
func (p Post) HasTag(tag string) bool {
	want := normalizeTag(tag)
	if want == "" {
		return false
	}
	for _, t := range p.Tags {
		if normalizeTag(t) == want {
			return true
		}
	}
	return false
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
