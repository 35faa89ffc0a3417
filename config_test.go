package blog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blog.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	assert.Equal(t, "Blog", cfg.Name)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "_posts", cfg.ContentDir)
	assert.Equal(t, "goldmark", cfg.MarkdownEngine)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
name = "TA2EDH Blog"
url = "https://blog.example.com"
callsign = "TA2EDH"
content_dir = "posts"
markdown_engine = "blackfriday"
hard_wraps = true
load_workers = 2
`)
	t.Setenv("SITE_NAME", "From Env")
	t.Setenv("LOAD_WORKERS", "8")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "From Env", cfg.Name, "environment wins over the file")
	assert.Equal(t, "https://blog.example.com", cfg.URL)
	assert.Equal(t, "TA2EDH", cfg.Callsign)
	assert.Equal(t, "posts", cfg.ContentDir)
	assert.Equal(t, "blackfriday", cfg.MarkdownEngine)
	assert.True(t, cfg.HardWraps)
	assert.Equal(t, 8, cfg.LoadWorkers)
	assert.Equal(t, ":3000", cfg.Addr, "defaults fill the gaps")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "an explicit config path must exist")

	_, err = LoadConfig(writeConfig(t, "name = \n"))
	assert.Error(t, err)

	t.Setenv("LOAD_WORKERS", "many")
	_, err = LoadConfig(writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOAD_WORKERS")
}

func TestValidate(t *testing.T) {
	valid := SiteConfig{}
	valid.setDefaults()

	tests := []struct {
		name   string
		mutate func(*SiteConfig)
		field  string
	}{
		{"bad url", func(c *SiteConfig) { c.URL = "not a url" }, "URL"},
		{"unknown engine", func(c *SiteConfig) { c.MarkdownEngine = "commonmark" }, "MarkdownEngine"},
		{"negative workers", func(c *SiteConfig) { c.LoadWorkers = -1 }, "LoadWorkers"},
		{"unknown level", func(c *SiteConfig) { c.LogLevel = "loud" }, "LogLevel"},
		{"unknown format", func(c *SiteConfig) { c.LogFormat = "xml" }, "LogFormat"},
		{"empty content dir", func(c *SiteConfig) { c.ContentDir = "" }, "ContentDir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.field), "error %q should name %s", err, tt.field)
		})
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("BLOG_TEST_KEY", "set")
	assert.Equal(t, "set", EnvOr("BLOG_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", EnvOr("BLOG_TEST_UNSET_KEY", "fallback"))
}
