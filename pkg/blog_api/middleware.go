package blogapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	VisitorHeader = "X-Visitor-ID"

	maxVisitorIDLength = 128
	visitorContextKey  = "visitorID"
)

// VisitorID identifies the caller by the X-Visitor-ID header, minting a new
// id when the header is missing or unusable. The id is echoed back.
func VisitorID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		visitorID := ctx.GetHeader(VisitorHeader)
		if visitorID == "" || len(visitorID) > maxVisitorIDLength {
			visitorID = uuid.NewString()
		}

		ctx.Set(visitorContextKey, visitorID)
		ctx.Header(VisitorHeader, visitorID)
		ctx.Next()
	}
}

func visitorID(ctx *gin.Context) string {
	return ctx.GetString(visitorContextKey)
}

// RequestLogger logs one line per request
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// CORS allows the blog front end to call the API from the given origins
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", VisitorHeader},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", VisitorHeader},
		MaxAge:        12 * time.Hour,
	}

	config.AllowAllOrigins = len(allowedOrigins) == 0

	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
		}
	}

	if !config.AllowAllOrigins {
		config.AllowOrigins = allowedOrigins
	}

	return cors.New(config)
}
