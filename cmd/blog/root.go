package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ta2edh/blog"
	"github.com/ta2edh/blog/content"
	"github.com/ta2edh/blog/logging"
)

// errSilent marks failures the command has already reported.
var errSilent = errors.New("silent failure")

// cli holds the state shared by every subcommand.
type cli struct {
	configPath string
	contentDir string
	logLevel   string

	cfg  blog.SiteConfig
	logs *logging.Provider
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "blog",
		Short: "A Markdown blog with a terminal look",
		Long: `blog reads a directory of Markdown posts with front-matter, renders them
to HTML and serves them as a website with an RSS feed and sitemap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default is ./"+blog.DefaultConfigFile+" when present)")
	flags.StringVar(&c.contentDir, "content", "", "directory of Markdown posts (overrides config)")
	flags.StringVar(&c.logLevel, "log-level", "", "trace, debug, info, warn or error (overrides config)")

	cmd.AddCommand(
		newServeCmd(c),
		newListCmd(c),
		newShowCmd(c),
		newNewCmd(c),
		newCheckCmd(c),
		newVersionCmd(),
	)
	return cmd
}

func (c *cli) load() error {
	cfg, err := blog.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.contentDir != "" {
		cfg.ContentDir = c.contentDir
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logs, err := logging.NewProvider(cfg.LogConfig())
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logs = logs
	return nil
}

func (c *cli) store() (*content.Store, error) {
	return blog.NewStore(c.cfg, c.logs.GetLogger(logging.ModuleContent))
}
