package blogapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
	blogtools "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_tools"
)

// bindJSON decodes and validates a request body, replying 400 on failure
func bindJSON(ctx *gin.Context, request interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return false
	}

	return true
}

// writeError maps service errors onto status codes
func writeError(ctx *gin.Context, logger *zap.Logger, err error) {
	var inputErr *blogtools.InputError

	switch {
	case errors.As(err, &inputErr):
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: inputErr.Message})

	case errors.Is(err, blogposts.ErrPostNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "post not found"})

	case errors.Is(err, blogstore.ErrNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "not found"})

	default:
		logger.Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	}
}
