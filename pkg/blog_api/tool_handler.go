package blogapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	blogtools "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_tools"
)

// ToolHandler exposes the AI writing tools over HTTP. A failed generation
// still answers 200 with the tool's fallback text and fallback set to true.
type ToolHandler interface {
	DeleteIdea(ctx *gin.Context)
	Ideas(ctx *gin.Context)
	ListIdeas(ctx *gin.Context)
	Rewrite(ctx *gin.Context)
	SaveIdea(ctx *gin.Context)
	SEOMeta(ctx *gin.Context)
	Summarize(ctx *gin.Context)
	Tags(ctx *gin.Context)
	Titles(ctx *gin.Context)
}

type toolHandler struct {
	logger *zap.Logger
	tools  ToolService
}

func NewToolHandler(tools ToolService, logger *zap.Logger) ToolHandler {
	return &toolHandler{
		logger: logger,
		tools:  tools,
	}
}

func (handler *toolHandler) Summarize(ctx *gin.Context) {
	var request SummarizeRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := handler.tools.Summarize(ctx, request.Content)
	handler.reply(ctx, result, err)
}

func (handler *toolHandler) Tags(ctx *gin.Context) {
	var request TagsRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := handler.tools.GenerateTags(ctx, request.Content)
	handler.reply(ctx, result, err)
}

func (handler *toolHandler) Titles(ctx *gin.Context) {
	var request TitlesRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := handler.tools.OptimizeTitle(ctx, request.Title)
	handler.reply(ctx, result, err)
}

func (handler *toolHandler) Rewrite(ctx *gin.Context) {
	var request RewriteRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := handler.tools.Rewrite(ctx, request.Text, blogtools.RewriteMode(request.Mode))
	handler.reply(ctx, result, err)
}

func (handler *toolHandler) SEOMeta(ctx *gin.Context) {
	var request SEOMetaRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := handler.tools.GenerateSEOMeta(ctx, request.Keyword, request.Content)
	handler.reply(ctx, result, err)
}

func (handler *toolHandler) Ideas(ctx *gin.Context) {
	var request IdeasRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := handler.tools.GenerateIdeas(ctx, request.toIdeaRequest())
	handler.reply(ctx, result, err)
}

// ListIdeas handles GET /ideas for the calling visitor, newest first
func (handler *toolHandler) ListIdeas(ctx *gin.Context) {
	ideas, err := handler.tools.ListIdeas(ctx, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, IdeasResponse{Ideas: ideas})
}

func (handler *toolHandler) SaveIdea(ctx *gin.Context) {
	var request SaveIdeaRequest
	if !bindJSON(ctx, &request) {
		return
	}

	idea, err := handler.tools.SaveIdea(ctx, visitorID(ctx), request.toIdeaRequest(), request.Content)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, idea)
}

func (handler *toolHandler) DeleteIdea(ctx *gin.Context) {
	if err := handler.tools.DeleteIdea(ctx, visitorID(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (handler *toolHandler) reply(ctx *gin.Context, result any, err error) {
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (request IdeasRequest) toIdeaRequest() blogtools.IdeaRequest {
	return blogtools.IdeaRequest{
		ContentType: blogtools.ContentType(request.ContentType),
		Tone:        blogtools.Tone(request.Tone),
		Topic:       request.Topic,
	}
}
