package blog

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ta2edh/blog/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

// buildRSS assembles the feed for posts, which are expected newest first.
func buildRSS(cfg SiteConfig, posts []content.Post) rssXML {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := PostURL(cfg, p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			Author:      AuthorLine(p.Author),
			Categories:  p.Tags,
			PubDate:     p.PublishedAt().Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	channel := rssChannel{
		Title:       cfg.Name,
		Link:        BuildURL(cfg.URL),
		Description: cfg.Description,
		Items:       items,
	}
	if len(posts) > 0 {
		channel.LastBuildDate = posts[0].PublishedAt().Format(time.RFC1123Z)
	}
	return rssXML{Version: "2.0", Channel: channel}
}

func (a *App) renderRSS(c echo.Context, posts []content.Post) error {
	feed := buildRSS(a.Config, posts)
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(feed)
}
