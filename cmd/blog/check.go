package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ta2edh/blog/content"
	"github.com/ta2edh/blog/logging"
)

const watchDebounce = 300 * time.Millisecond

func newCheckCmd(c *cli) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report posts that fail to load and why",
		Long: `check loads every post in the content directory and reports the ones that
would be left out of the site. It exits non-zero when any post fails. With
--watch it re-runs whenever a file in the content directory changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.store()
			if err != nil {
				return err
			}
			if watch {
				return watchContent(cmd.Context(), cmd.OutOrStdout(), store, c.logs.GetLogger(logging.ModuleCLI))
			}

			report, err := store.Check(cmd.Context())
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			if len(report.Failures) > 0 {
				return errSilent
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run on content changes until interrupted")
	return cmd
}

func printReport(w io.Writer, report content.Report) {
	for _, p := range report.Posts {
		fmt.Fprintf(w, "ok    %s\n", p.Slug)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(w, "FAIL  %s: %v\n", f.Slug, f.Err)
	}
	fmt.Fprintf(w, "%d posts, %d failures\n", len(report.Posts), len(report.Failures))
}

// watchContent prints a report now and after every burst of changes to the
// content directory, until ctx is done.
func watchContent(ctx context.Context, out io.Writer, store *content.Store, log logging.Logger) error {
	run := func() {
		report, err := store.Check(ctx)
		if err != nil {
			log.Error("check failed", "error", err)
			return
		}
		printReport(out, report)
	}
	run()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(store.Dir()); err != nil {
		return fmt.Errorf("watch %s: %w", store.Dir(), err)
	}
	log.Info("watching for changes", "dir", store.Dir())

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			log.Debug("change detected", "file", event.Name, "op", event.Op.String())
			pending = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		case <-pending:
			pending = nil
			fmt.Fprintln(out, "---")
			run()
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(filepath.Base(event.Name), content.Extension) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
