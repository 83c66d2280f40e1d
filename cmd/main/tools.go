package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	blogtools "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_tools"
)

// toolCmd builds a one-shot tool command. run returns the raw result for
// --json and its plain text rendering.
func toolCmd(app *app, use, short string, run func(ctx context.Context, tools *blogtools.Tools, text string) (any, string, error)) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.input(args)
			if err != nil {
				return err
			}

			generator, err := app.generator(cmd.Context())
			if err != nil {
				return err
			}

			tools := blogtools.NewTools(blogtools.ToolsArgs{
				Generator: generator,
				Logger:    app.logger,
			})

			result, plain, err := run(cmd.Context(), tools, text)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(app.stdout, result)
			}

			_, err = fmt.Fprintln(app.stdout, plain)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")

	return cmd
}

func newSummarizeCmd(app *app) *cobra.Command {
	return toolCmd(app, "summarize [text]", "Summarize text from args or stdin",
		func(ctx context.Context, tools *blogtools.Tools, text string) (any, string, error) {
			result, err := tools.Summarize(ctx, text)
			return result, result.Summary, err
		})
}

func newTagsCmd(app *app) *cobra.Command {
	return toolCmd(app, "tags [text]", "Suggest SEO tags for text",
		func(ctx context.Context, tools *blogtools.Tools, text string) (any, string, error) {
			result, err := tools.GenerateTags(ctx, text)
			return result, strings.Join(result.Tags, ", "), err
		})
}

func newTitlesCmd(app *app) *cobra.Command {
	return toolCmd(app, "titles [title]", "Suggest better versions of a title",
		func(ctx context.Context, tools *blogtools.Tools, text string) (any, string, error) {
			result, err := tools.OptimizeTitle(ctx, text)

			lines := make([]string, 0, len(result.Suggestions))
			for _, suggestion := range result.Suggestions {
				lines = append(lines, fmt.Sprintf("%3d  %-10s %s", suggestion.Score, suggestion.Type, suggestion.Title))
			}

			return result, strings.Join(lines, "\n"), err
		})
}

func newRewriteCmd(app *app) *cobra.Command {
	var mode string

	cmd := toolCmd(app, "rewrite [text]", "Rewrite text in another style",
		func(ctx context.Context, tools *blogtools.Tools, text string) (any, string, error) {
			result, err := tools.Rewrite(ctx, text, blogtools.RewriteMode(mode))
			return result, result.Text, err
		})

	cmd.Flags().StringVar(&mode, "mode", string(blogtools.RewriteSimplify), "simplify, professional, creative or concise")

	return cmd
}

func newSEOCmd(app *app) *cobra.Command {
	var keyword string

	cmd := toolCmd(app, "seo [content]", "Write an SEO title and meta description",
		func(ctx context.Context, tools *blogtools.Tools, text string) (any, string, error) {
			result, err := tools.GenerateSEOMeta(ctx, keyword, text)
			return result, fmt.Sprintf("Title: %s\nDescription: %s", result.Title, result.Description), err
		})

	cmd.Flags().StringVar(&keyword, "keyword", "", "target keyword")

	return cmd
}

func newIdeasCmd(app *app) *cobra.Command {
	var contentType, tone string

	cmd := toolCmd(app, "ideas [topic]", "Brainstorm content ideas for a topic",
		func(ctx context.Context, tools *blogtools.Tools, text string) (any, string, error) {
			result, err := tools.GenerateIdeas(ctx, blogtools.IdeaRequest{
				ContentType: blogtools.ContentType(contentType),
				Tone:        blogtools.Tone(tone),
				Topic:       text,
			})
			return result, result.Ideas, err
		})

	cmd.Flags().StringVar(&contentType, "type", string(blogtools.ContentBlog), "blog, twitter, linkedin or instagram")
	cmd.Flags().StringVar(&tone, "tone", string(blogtools.ToneProfessional), "professional, casual, witty or inspirational")

	return cmd
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
