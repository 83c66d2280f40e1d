package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	blogai "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_ai"
	blogconfig "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_config"
	bloggithub "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_github"
	bloglogger "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_logger"
	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
)

// app carries what every command needs once config has been loaded
type app struct {
	cfg        *blogconfig.Config
	configPath string
	dryRun     bool
	logger     *zap.Logger
	stdin      io.Reader
	stdout     io.Writer
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	app := &app{stdin: stdin, stdout: stdout}

	cmd := &cobra.Command{
		Use:           "aiblog",
		Short:         "AI-assisted blog API and writing tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&app.configPath, "config", "", "path to a YAML config file (default $"+blogconfig.ConfigPathEnv+")")
	cmd.PersistentFlags().BoolVar(&app.dryRun, "dry-run", false, "echo prompts instead of calling the AI provider")

	cmd.AddCommand(
		newServeCmd(app),
		newPostsCmd(app),
		newSummarizeCmd(app),
		newTagsCmd(app),
		newTitlesCmd(app),
		newRewriteCmd(app),
		newSEOCmd(app),
		newIdeasCmd(app),
	)

	return cmd
}

func (app *app) load() error {
	cfg, err := blogconfig.Load(app.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := bloglogger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	app.cfg = cfg
	app.logger = logger

	return nil
}

// generator returns the configured provider, or a prompt echo in dry-run mode
func (app *app) generator(ctx context.Context) (blogai.Generator, error) {
	if app.dryRun {
		return blogai.GeneratorFunc(func(_ context.Context, request blogai.GenerateRequest) (string, error) {
			return request.Prompt, nil
		}), nil
	}

	settings := app.cfg.AI
	generator, err := blogai.NewGenerator(ctx, blogai.Settings{
		APIKey:    settings.APIKey,
		BaseURL:   settings.BaseURL,
		MaxTokens: settings.MaxTokens,
		Model:     settings.Model,
		Provider:  settings.Provider,
		Timeout:   settings.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s generator: %w", settings.Provider, err)
	}

	return generator, nil
}

func (app *app) source() (blogposts.Source, error) {
	content := app.cfg.Content

	if content.Source == blogconfig.SourceDir {
		return &blogposts.DirSource{Root: content.Dir}, nil
	}

	client := bloggithub.NewClient(content.Token)
	if content.APIBaseURL != "" {
		var err error
		client, err = client.WithBaseURL(content.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("configuring github client: %w", err)
		}
	}

	return &blogposts.GithubSource{
		Dir:    content.Dir,
		Owner:  content.Owner,
		Reader: client,
		Ref:    content.Ref,
		Repo:   content.Repo,
	}, nil
}

func (app *app) catalog() (*blogposts.Catalog, error) {
	source, err := app.source()
	if err != nil {
		return nil, err
	}

	return blogposts.NewCatalog(source, app.cfg.Content.CacheTTL, app.logger), nil
}

// input joins the positional args, falling back to stdin when there are none
func (app *app) input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	raw, err := io.ReadAll(app.stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return string(raw), nil
}
