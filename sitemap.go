package blog

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ta2edh/blog/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func buildSitemap(cfg SiteConfig, posts []content.Post) sitemapURLSet {
	urls := make([]sitemapURL, 0, len(posts)+1)
	home := sitemapURL{Loc: BuildURL(cfg.URL)}
	if len(posts) > 0 {
		home.LastMod = posts[0].PublishedAt().Format("2006-01-02")
	}
	urls = append(urls, home)
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     PostURL(cfg, p.Slug),
			LastMod: p.PublishedAt().Format("2006-01-02"),
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, posts []content.Post) error {
	sitemap := buildSitemap(a.Config, posts)
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
