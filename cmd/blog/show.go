package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ta2edh/blog"
	"github.com/ta2edh/blog/content"
)

func newShowCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one post's metadata and rendered HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.store()
			if err != nil {
				return err
			}
			slug := args[0]
			post, err := store.Get(cmd.Context(), slug)
			switch {
			case content.IsMalformed(err):
				return fmt.Errorf("post %q is malformed: %w", slug, err)
			case err != nil:
				return fmt.Errorf("post %q not found", slug)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(post)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:   %s\n", post.Title)
			fmt.Fprintf(out, "Date:    %s\n", post.Date)
			fmt.Fprintf(out, "URL:     %s\n", blog.PostURL(c.cfg, post.Slug))
			if post.Author != nil {
				fmt.Fprintf(out, "Author:  %s\n", blog.AuthorLine(post.Author))
			}
			if len(post.Tags) > 0 {
				fmt.Fprintf(out, "Tags:    %s\n", strings.Join(post.Tags, ", "))
			}
			if post.Excerpt != "" {
				fmt.Fprintf(out, "Excerpt: %s\n", post.Excerpt)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, post.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the post as JSON")
	return cmd
}
