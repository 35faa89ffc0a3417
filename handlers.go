package blog

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ta2edh/blog/content"
)

func (a *App) handleHome(c echo.Context) error {
	all, err := a.Store.List(c.Request().Context())
	if err != nil {
		return err
	}
	tag := strings.TrimSpace(c.QueryParam("tag"))
	return Render(c, a.Views.Home(HomePage{
		Meta:      HomeMeta(a.Config, tag),
		Site:      a.Config,
		Posts:     content.WithTag(all, tag),
		Tags:      content.Tags(all),
		ActiveTag: tag,
	}))
}

func (a *App) handlePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	post, err := a.Store.Get(ctx, slug)
	if err != nil {
		if content.IsMalformed(err) {
			a.log.Warn("post unavailable", "slug", slug, "error", err)
		}
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(ErrorPage{
			Meta: PostNotFoundMeta(a.Config),
			Site: a.Config,
		}))
	}
	posts, err := a.Store.List(ctx)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(PostPage{
		Meta:    PostMeta(a.Config, post),
		Site:    a.Config,
		Post:    post,
		Related: FilterRelatedPosts(post, posts),
	}))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handlePostsRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	if path, ok := a.staticFile("favicon.svg"); ok {
		return c.File(path)
	}
	data, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleRobots(c echo.Context) error {
	if path, ok := a.staticFile("robots.txt"); ok {
		return c.File(path)
	}
	robots := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %ssitemap.xml\n", BuildURL(a.Config.URL))
	return c.String(http.StatusOK, robots)
}

// staticFile reports whether name exists in the user's static dir.
func (a *App) staticFile(name string) (string, bool) {
	path := filepath.Join(a.staticDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(ErrorPage{
			Meta: ErrorMeta(a.Config, "Not Found"),
			Site: a.Config,
		}))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		fields := map[string]any{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
		}
		if content.IsDirUnavailable(err) {
			fields["content_dir"] = a.Store.Dir()
		}
		a.log.WithFields(fields).Error("server error", "error", err)
		_ = RenderStatus(c, code, a.Views.ServerError(ErrorPage{
			Meta: ErrorMeta(a.Config, "Server Error"),
			Site: a.Config,
		}))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
