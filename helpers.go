package blog

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/ta2edh/blog/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PostURL returns the canonical URL of the post with the given slug.
func PostURL(cfg SiteConfig, slug string) string {
	return BuildURL(cfg.URL, "posts", slug)
}

// FilterRelatedPosts finds posts that share at least one tag with current.
func FilterRelatedPosts(current content.Post, posts []content.Post) []content.Post {
	var related []content.Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range current.Tags {
			if p.HasTag(t) {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// QueryEscape escapes a string for use in a URL query.
func QueryEscape(s string) string {
	return url.QueryEscape(s)
}

// AuthorLine formats an author as "Name (CALLSIGN)".
func AuthorLine(a *content.Author) string {
	if a == nil {
		return ""
	}
	if a.Callsign == "" {
		return a.Name
	}
	if a.Name == "" {
		return a.Callsign
	}
	return a.Name + " (" + a.Callsign + ")"
}

func person(name, callsign string) map[string]string {
	p := map[string]string{
		"@type": "Person",
		"name":  name,
	}
	if callsign != "" {
		p["alternateName"] = callsign
	}
	return p
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = person(cfg.Author, cfg.Callsign)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema. The
// post author wins over the site author.
func BlogPostingJsonLD(post content.Post, cfg SiteConfig) string {
	postURL := PostURL(cfg, post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	switch {
	case post.Author != nil && post.Author.Name != "":
		data["author"] = person(post.Author.Name, post.Author.Callsign)
	case cfg.Author != "":
		data["author"] = person(cfg.Author, cfg.Callsign)
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
