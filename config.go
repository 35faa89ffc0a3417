package blog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/ta2edh/blog/content"
	"github.com/ta2edh/blog/logging"
	"github.com/ta2edh/blog/markdown"
)

// DefaultConfigFile is read by LoadConfig when no path is given.
const DefaultConfigFile = "blog.toml"

// SiteConfig holds all configuration for a blog site.
type SiteConfig struct {
	Name        string `toml:"name"`        // Site name (default "Blog")
	URL         string `toml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `toml:"description"` // Site description for RSS and meta tags
	Author      string `toml:"author"`      // Author name for JSON-LD and the footer
	Callsign    string `toml:"callsign"`    // Optional station callsign shown next to the author
	About       string `toml:"about"`       // Text of the "about this station" block
	SourceURL   string `toml:"source_url"`  // Optional link to the site's source

	Addr           string `toml:"addr"`            // Listen address (default ":3000")
	ContentDir     string `toml:"content_dir"`     // Markdown directory (default "_posts")
	MarkdownEngine string `toml:"markdown_engine"` // goldmark or blackfriday (default goldmark)
	HardWraps      bool   `toml:"hard_wraps"`      // Render soft line breaks as <br>
	LoadWorkers    int    `toml:"load_workers"`    // Concurrent post loads, 0 means one per CPU

	LogLevel  string `toml:"log_level"`  // trace, debug, info, warn, error (default info)
	LogFormat string `toml:"log_format"` // console, json, pretty (default console)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "_posts"
	}
	if c.MarkdownEngine == "" {
		c.MarkdownEngine = markdown.EngineGoldmark
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

// Validate reports configuration values the app cannot run with.
func (c SiteConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.URL, validation.Required, is.URL),
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.MarkdownEngine, validation.By(knownEngine)),
		validation.Field(&c.LoadWorkers, validation.Min(0)),
		validation.Field(&c.LogLevel, validation.By(knownLevel)),
		validation.Field(&c.LogFormat, validation.By(knownFormat)),
	)
}

// LogConfig returns the logging settings carried by the site config.
func (c SiteConfig) LogConfig() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// LoadConfig builds a SiteConfig from, in increasing precedence, defaults,
// the TOML file at path and environment variables. A .env file in the
// working directory is loaded first. Missing files are not an error.
func LoadConfig(path string) (SiteConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return SiteConfig{}, fmt.Errorf("blog: load .env: %w", err)
	}

	var cfg SiteConfig
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := readConfigFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return SiteConfig{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func readConfigFile(path string, cfg *SiteConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("blog: read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("blog: parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *SiteConfig) error {
	cfg.Name = EnvOr("SITE_NAME", cfg.Name)
	cfg.URL = EnvOr("SITE_URL", cfg.URL)
	cfg.Description = EnvOr("SITE_DESCRIPTION", cfg.Description)
	cfg.Author = EnvOr("SITE_AUTHOR", cfg.Author)
	cfg.Callsign = EnvOr("SITE_CALLSIGN", cfg.Callsign)
	cfg.About = EnvOr("SITE_ABOUT", cfg.About)
	cfg.SourceURL = EnvOr("SITE_SOURCE_URL", cfg.SourceURL)
	cfg.Addr = EnvOr("ADDR", cfg.Addr)
	cfg.ContentDir = EnvOr("CONTENT_DIR", cfg.ContentDir)
	cfg.MarkdownEngine = EnvOr("MARKDOWN_ENGINE", cfg.MarkdownEngine)
	cfg.LogLevel = EnvOr("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = EnvOr("LOG_FORMAT", cfg.LogFormat)

	if v := os.Getenv("HARD_WRAPS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("blog: HARD_WRAPS: %w", err)
		}
		cfg.HardWraps = b
	}
	if v := os.Getenv("LOAD_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("blog: LOAD_WORKERS: %w", err)
		}
		cfg.LoadWorkers = n
	}
	return nil
}

func knownEngine(value any) error {
	s, _ := value.(string)
	if s != "" && !markdown.IsEngine(s) {
		return fmt.Errorf("must be one of %v", markdown.Engines())
	}
	return nil
}

func knownLevel(value any) error {
	s, _ := value.(string)
	if !logging.KnownLevel(s) {
		return errors.New("must be one of trace, debug, info, warn, error")
	}
	return nil
}

func knownFormat(value any) error {
	s, _ := value.(string)
	if !logging.KnownFormat(s) {
		return errors.New("must be one of console, json, pretty")
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are in place.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger routes request and error logs through logger.
func WithLogger(logger logging.Logger) Option {
	return func(a *App) {
		a.log = logging.OrNoOp(logger)
	}
}

// WithStore serves posts from an existing store instead of building one
// from the config.
func WithStore(store *content.Store) Option {
	return func(a *App) {
		a.Store = store
	}
}
