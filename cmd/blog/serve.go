package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ta2edh/blog"
	"github.com/ta2edh/blog/logging"
	"github.com/ta2edh/blog/views"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var (
		addr      string
		staticDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog over HTTP",
		Long: `serve starts the web server. Posts are read from the content directory on
every request, so edits show up on the next page load.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				c.cfg.Addr = addr
			}
			store, err := c.store()
			if err != nil {
				return err
			}

			app := blog.New(c.cfg, views.New(),
				blog.WithStore(store),
				blog.WithStaticDir(staticDir),
				blog.WithLogger(c.logs.GetLogger(logging.ModuleHTTP)),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, app, c.logs.GetLogger(logging.ModuleCLI))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&staticDir, "static", "public", "directory of user static assets")
	return cmd
}

// serve runs app until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, app *blog.App, log logging.Logger) error {
	if err := app.Setup(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return <-errCh
}
