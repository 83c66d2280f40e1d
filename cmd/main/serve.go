package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	blogapi "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_api"
	blogconfig "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_config"
	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
	blogtools "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_tools"
)

func newServeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the blog HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), app)
		},
	}
}

func runServe(ctx context.Context, app *app) error {
	cfg := app.cfg
	logger := app.logger

	store, err := blogstore.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	generator, err := app.generator(ctx)
	if err != nil {
		return err
	}

	catalog, err := app.catalog()
	if err != nil {
		return err
	}

	tools := blogtools.NewTools(blogtools.ToolsArgs{
		Generator: generator,
		Logger:    logger,
		Posts:     catalog,
		Store:     store,
	})

	chat := blogtools.NewChat(blogtools.ChatArgs{
		Generator:    generator,
		HistoryLimit: cfg.Chat.HistoryLimit,
		Logger:       logger,
		Persona:      cfg.Chat.Persona,
		Store:        store,
	})

	if cfg.Logger.LogLevel != blogconfig.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := blogapi.NewRouter(blogapi.Services{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Chat:           chat,
		ContentDir:     cfg.Content.Dir,
		Logger:         logger,
		Posts:          catalog,
		Store:          store,
		Tools:          tools,
		WebhookSecret:  cfg.Content.WebhookSecret,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("blog api starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("provider", generator.Name()),
			zap.String("content_source", cfg.Content.Source),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
