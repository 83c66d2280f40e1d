package blogapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the floating site assistant
type ChatHandler interface {
	Clear(ctx *gin.Context)
	History(ctx *gin.Context)
	Send(ctx *gin.Context)
}

type chatHandler struct {
	chat   ChatService
	logger *zap.Logger
}

func NewChatHandler(chat ChatService, logger *zap.Logger) ChatHandler {
	return &chatHandler{
		chat:   chat,
		logger: logger,
	}
}

func (handler *chatHandler) History(ctx *gin.Context) {
	messages, err := handler.chat.History(ctx, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, ChatHistoryResponse{Messages: messages})
}

func (handler *chatHandler) Send(ctx *gin.Context) {
	var request ChatRequest
	if !bindJSON(ctx, &request) {
		return
	}

	reply, err := handler.chat.Send(ctx, visitorID(ctx), request.Message)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, reply)
}

func (handler *chatHandler) Clear(ctx *gin.Context) {
	if err := handler.chat.Clear(ctx, visitorID(ctx)); err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
