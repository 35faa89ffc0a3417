package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ta2edh/blog/content"
)

func newListCmd(c *cli) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List valid posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.store()
			if err != nil {
				return err
			}
			posts, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			posts = content.WithTag(posts, tag)

			if len(posts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No posts found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSLUG\tTITLE\tTAGS")
			for _, p := range posts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Date, p.Slug, p.Title, strings.Join(p.Tags, ", "))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only list posts with this tag")
	return cmd
}
