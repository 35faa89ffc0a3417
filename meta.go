package blog

import (
	"strings"

	"github.com/ta2edh/blog/content"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title         string
	OGTitle       string // og:title when it differs from Title
	Description   string
	URL           string // canonical + og:url
	OGType        string // "website" or "article"
	PublishedTime string // article:published_time
	Tags          []string
	JSONLD        string
}

// HomePage is everything the index view needs.
type HomePage struct {
	Meta      PageMeta
	Site      SiteConfig
	Posts     []content.Post
	Tags      []string
	ActiveTag string
}

// PostPage is everything the post detail view needs.
type PostPage struct {
	Meta    PageMeta
	Site    SiteConfig
	Post    content.Post
	Related []content.Post
}

// ErrorPage is passed to the not-found and server-error views.
type ErrorPage struct {
	Meta PageMeta
	Site SiteConfig
}

// HomeMeta describes the index page, optionally filtered by tag.
func HomeMeta(cfg SiteConfig, activeTag string) PageMeta {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         BuildURL(cfg.URL),
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(cfg),
	}
	if tag := strings.TrimSpace(activeTag); tag != "" {
		meta.Title = "#" + tag + " | " + cfg.Name
		meta.URL = BuildURL(cfg.URL) + "?tag=" + QueryEscape(tag)
	}
	return meta
}

// PostMeta describes a post detail page.
func PostMeta(cfg SiteConfig, post content.Post) PageMeta {
	return PageMeta{
		Title:         post.Title + " | " + cfg.Name,
		OGTitle:       post.Title,
		Description:   post.Excerpt,
		URL:           PostURL(cfg, post.Slug),
		OGType:        "article",
		PublishedTime: post.Date,
		Tags:          post.Tags,
		JSONLD:        BlogPostingJsonLD(post, cfg),
	}
}

// PostNotFoundMeta describes the page shown for a slug with no valid post.
func PostNotFoundMeta(cfg SiteConfig) PageMeta {
	return PageMeta{
		Title:       "Post Not Found",
		Description: cfg.Description,
		OGType:      "website",
	}
}

// ErrorMeta describes a generic error page.
func ErrorMeta(cfg SiteConfig, title string) PageMeta {
	return PageMeta{
		Title:       title + " | " + cfg.Name,
		Description: cfg.Description,
		OGType:      "website",
	}
}
