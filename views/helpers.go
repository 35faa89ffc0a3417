package views

import (
	"html/template"
	"net/url"
	"strings"

	"github.com/ta2edh/blog"
	"github.com/ta2edh/blog/content"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": FormatDate,
		"authorLine": blog.AuthorLine,
		"postURL":    PostPath,
		"tagURL":     TagPath,
		"firstTags":  FirstTags,
		"moreTags":   MoreTags,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"siteHost":   SiteHost,
		"safeHTML":   safeHTML,
		"jsonld":     jsonLD,
	}
}

// FormatDate renders a post date as "January 2, 2006". Unparseable input is
// returned unchanged.
func FormatDate(date string) string {
	t, err := content.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// PostPath is the site-relative link to a post.
func PostPath(slug string) string {
	return "/posts/" + url.PathEscape(slug) + "/"
}

// TagPath is the site-relative link to the index filtered by tag.
func TagPath(tag string) string {
	return "/?tag=" + url.QueryEscape(strings.ToLower(strings.TrimSpace(tag)))
}

// FirstTags returns at most n tags.
func FirstTags(tags []string, n int) []string {
	if len(tags) <= n {
		return tags
	}
	return tags[:n]
}

// MoreTags returns how many tags FirstTags left out.
func MoreTags(tags []string, n int) int {
	if len(tags) <= n {
		return 0
	}
	return len(tags) - n
}

// SiteHost returns the host part of a site URL for display.
func SiteHost(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" {
		return siteURL
	}
	return u.Host
}

// safeHTML marks converter output as trusted. Both markdown engines drop raw
// HTML from the source.
func safeHTML(s string) template.HTML {
	return template.HTML(s)
}

func jsonLD(s string) template.JS {
	return template.JS(s)
}
