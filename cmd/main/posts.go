package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
	sharedUtils "github.com/frankmeza/frankmeza-ai-blog/pkg/shared_utils"
)

const maxTitleWidth = 60

func newPostsCmd(app *app) *cobra.Command {
	var (
		asJSON   bool
		featured bool
		query    blogposts.Query
	)

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List published posts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.catalog()
			if err != nil {
				return err
			}

			query.Featured = featured
			posts, err := catalog.Posts(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(app.stdout, posts)
			}

			w := tabwriter.NewWriter(app.stdout, 0, 4, 2, ' ', 0)
			for _, post := range posts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", post.PublishedAt.Format("2006-01-02"), post.Slug, post.ReadTime, sharedUtils.TruncateText(post.Title, maxTitleWidth))
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print posts as JSON")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured posts")
	cmd.Flags().StringVar(&query.Search, "search", "", "case-insensitive text search")
	cmd.Flags().StringVar(&query.Tag, "tag", "", "only posts with this tag")

	return cmd
}
