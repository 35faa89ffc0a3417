package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ta2edh/blog/scaffold"
)

func newNewCmd(c *cli) *cobra.Command {
	var p scaffold.Post

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new post from the front-matter template",
		Long: `new writes <slug>.md into the content directory. The slug is derived from
the title unless --slug is given. Existing files are never overwritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Title = strings.Join(args, " ")
			if p.Author == "" {
				p.Author = c.cfg.Author
			}
			if p.Callsign == "" {
				p.Callsign = c.cfg.Callsign
			}

			path, err := scaffold.NewPost(c.cfg.ContentDir, p)
			if errors.Is(err, scaffold.ErrExists) {
				return errors.New("refusing to overwrite " + path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&p.Slug, "slug", "", "file name stem (default derived from the title)")
	flags.StringVar(&p.Date, "date", "", "publication date (default today)")
	flags.StringVar(&p.Excerpt, "excerpt", "", "short summary shown on the index")
	flags.StringVar(&p.Author, "author", "", "author name (default from config)")
	flags.StringVar(&p.Callsign, "callsign", "", "author callsign (default from config)")
	flags.StringSliceVar(&p.Tags, "tag", nil, "tag to add, repeatable")
	return cmd
}
