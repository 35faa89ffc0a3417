// Package blog serves a directory of Markdown posts as a website, built with
// Go, Echo, and templ.
//
// Users provide their own templ components via the ViewFuncs struct, and blog
// handles the handler logic, middleware, feeds, and loading posts from disk
// on every request.
package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/ta2edh/blog/content"
	"github.com/ta2edh/blog/logging"
	"github.com/ta2edh/blog/markdown"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home        func(page HomePage) templ.Component
	Post        func(page PostPage) templ.Component
	NotFound    func(page ErrorPage) templ.Component
	ServerError func(page ErrorPage) templ.Component
}

func (v ViewFuncs) validate() error {
	switch {
	case v.Home == nil:
		return errors.New("Home view is required")
	case v.Post == nil:
		return errors.New("Post view is required")
	case v.NotFound == nil:
		return errors.New("NotFound view is required")
	case v.ServerError == nil:
		return errors.New("ServerError view is required")
	}
	return nil
}

// App is the central blog application. It wires together the post store,
// handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *content.Store
	Views  ViewFuncs

	log          logging.Logger
	customRoutes []func(*App)
	staticDir    string
	ready        bool
}

// New creates a new blog App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		log:       logging.NoOp(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup validates the configuration, builds the post store when none was
// supplied, and installs middleware and routes. It is called by Start and
// may be called directly to serve the App through httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("blog: invalid config: %w", err)
	}
	if err := a.Views.validate(); err != nil {
		return fmt.Errorf("blog: %w", err)
	}

	if a.Store == nil {
		store, err := NewStore(a.Config, a.log)
		if err != nil {
			return err
		}
		a.Store = store
	}

	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start sets the app up and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}

	a.log.Info("serving blog", "addr", a.Config.Addr, "content_dir", a.Store.Dir(), "engine", a.Config.MarkdownEngine)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// NewStore builds the post store described by cfg, using the configured
// markdown engine.
func NewStore(cfg SiteConfig, logger logging.Logger) (*content.Store, error) {
	cfg.setDefaults()
	conv, err := markdown.New(cfg.MarkdownEngine, markdown.Options{HardWraps: cfg.HardWraps})
	if err != nil {
		return nil, fmt.Errorf("blog: %w", err)
	}
	loader := content.NewLoader(cfg.ContentDir, conv, logger)
	return content.NewStore(content.StoreConfig{
		Loader:  loader,
		Workers: cfg.LoadWorkers,
		Logger:  logger,
	}), nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework theme, falling through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/terminal.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/posts", handlePostsRedirect)
	e.GET("/posts/", handlePostsRedirect)
	e.GET("/", a.handleHome)
	e.GET("/posts/:slug/", a.handlePost)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
