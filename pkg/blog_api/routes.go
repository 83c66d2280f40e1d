package blogapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services is everything the HTTP layer needs to serve the blog
type Services struct {
	AllowedOrigins []string
	Chat           ChatService
	ContentDir     string
	Logger         *zap.Logger
	Posts          PostService
	Store          VisitorStore
	Tools          ToolService
	WebhookSecret  string
}

// NewRouter builds a gin engine with the blog middleware and routes
func NewRouter(services Services) *gin.Engine {
	if services.Logger == nil {
		services.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(services.Logger))
	r.Use(CORS(services.AllowedOrigins))
	r.Use(VisitorID())

	SetupRoutes(r, services)

	return r
}

// SetupRoutes registers the blog API on r. Handlers pass the gin context to
// services, so it falls back to the request context for cancellation.
func SetupRoutes(r *gin.Engine, services Services) {
	if services.Logger == nil {
		services.Logger = zap.NewNop()
	}

	r.ContextWithFallback = true

	postHandler := NewPostHandler(services.Posts, services.Store, services.Tools, services.Logger)
	toolHandler := NewToolHandler(services.Tools, services.Logger)
	chatHandler := NewChatHandler(services.Chat, services.Logger)
	siteHandler := NewSiteHandler(SiteHandlerArgs{
		ContentDir:    services.ContentDir,
		Logger:        services.Logger,
		Posts:         services.Posts,
		Store:         services.Store,
		WebhookSecret: services.WebhookSecret,
	})

	r.GET("/health", siteHandler.Health)
	r.POST("/webhooks/github", siteHandler.Webhook)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/posts", postHandler.List)
		v1.GET("/posts/:slug", postHandler.Get)
		v1.POST("/posts/:slug/summary", postHandler.Summary)
		v1.GET("/posts/:slug/actions", postHandler.Actions)
		v1.POST("/posts/:slug/like", postHandler.Like)
		v1.POST("/posts/:slug/save", postHandler.Save)
		v1.GET("/saved", postHandler.Saved)
		v1.GET("/tags", postHandler.Tags)

		tools := v1.Group("/tools")
		tools.POST("/summarize", toolHandler.Summarize)
		tools.POST("/tags", toolHandler.Tags)
		tools.POST("/titles", toolHandler.Titles)
		tools.POST("/rewrite", toolHandler.Rewrite)
		tools.POST("/seo-meta", toolHandler.SEOMeta)
		tools.POST("/ideas", toolHandler.Ideas)

		v1.GET("/ideas", toolHandler.ListIdeas)
		v1.POST("/ideas", toolHandler.SaveIdea)
		v1.DELETE("/ideas/:id", toolHandler.DeleteIdea)

		v1.GET("/chat", chatHandler.History)
		v1.POST("/chat", chatHandler.Send)
		v1.DELETE("/chat", chatHandler.Clear)

		v1.POST("/newsletter", siteHandler.Subscribe)
	}
}
