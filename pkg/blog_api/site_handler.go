package blogapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bloggithub "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_github"
)

// SiteHandler covers health, newsletter signups and the content webhook
type SiteHandler interface {
	Health(ctx *gin.Context)
	Subscribe(ctx *gin.Context)
	Webhook(ctx *gin.Context)
}

type SiteHandlerArgs struct {
	ContentDir    string
	Logger        *zap.Logger
	Posts         PostService
	Store         VisitorStore
	WebhookSecret string
}

type siteHandler struct {
	contentDir    string
	logger        *zap.Logger
	posts         PostService
	store         VisitorStore
	webhookSecret string
}

func NewSiteHandler(args SiteHandlerArgs) SiteHandler {
	return &siteHandler{
		contentDir:    args.ContentDir,
		logger:        args.Logger,
		posts:         args.Posts,
		store:         args.Store,
		webhookSecret: args.WebhookSecret,
	}
}

func (handler *siteHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Subscribe handles POST /newsletter. Repeat signups succeed and report
// already_subscribed.
func (handler *siteHandler) Subscribe(ctx *gin.Context) {
	var request NewsletterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	created, err := handler.store.Subscribe(ctx, request.Email)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewsletterResponse{AlreadySubscribed: !created, Subscribed: true})
}

// Webhook handles GitHub push deliveries and drops the post cache when the
// push touches the content directory
func (handler *siteHandler) Webhook(ctx *gin.Context) {
	event, err := bloggithub.ParsePushEvent(ctx.Request, handler.webhookSecret)
	if err != nil {
		if errors.Is(err, bloggithub.ErrIgnoredEvent) {
			ctx.JSON(http.StatusOK, WebhookResponse{Ignored: true})
			return
		}

		if errors.Is(err, bloggithub.ErrNoWebhookSecret) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "webhook not configured"})
			return
		}

		handler.logger.Warn("rejected webhook delivery", zap.Error(err))
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid webhook delivery"})
		return
	}

	if !event.Touches(handler.contentDir) {
		ctx.JSON(http.StatusOK, WebhookResponse{Ignored: true})
		return
	}

	handler.posts.Invalidate()
	handler.logger.Info("post cache invalidated",
		zap.String("repository", event.Repository),
		zap.String("ref", event.Ref),
		zap.Int("paths", len(event.Paths)),
	)

	ctx.JSON(http.StatusAccepted, WebhookResponse{Invalidated: true})
}
