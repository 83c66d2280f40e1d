package blogapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
)

// PostHandler serves the catalog and the per-post visitor actions
type PostHandler interface {
	Actions(ctx *gin.Context)
	Get(ctx *gin.Context)
	Like(ctx *gin.Context)
	List(ctx *gin.Context)
	Save(ctx *gin.Context)
	Saved(ctx *gin.Context)
	Summary(ctx *gin.Context)
	Tags(ctx *gin.Context)
}

type postHandler struct {
	logger *zap.Logger
	posts  PostService
	store  VisitorStore
	tools  ToolService
}

func NewPostHandler(posts PostService, store VisitorStore, tools ToolService, logger *zap.Logger) PostHandler {
	return &postHandler{
		logger: logger,
		posts:  posts,
		store:  store,
		tools:  tools,
	}
}

// List handles GET /posts?tag=&q=&featured=
func (handler *postHandler) List(ctx *gin.Context) {
	query := blogposts.Query{
		Search: ctx.Query("q"),
		Tag:    ctx.Query("tag"),
	}

	if raw := ctx.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid featured value %q", raw)})
			return
		}
		query.Featured = featured
	}

	posts, err := handler.posts.Posts(ctx, query)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, PostsResponse{Posts: posts})
}

// Get handles GET /posts/:slug
func (handler *postHandler) Get(ctx *gin.Context) {
	post, err := handler.posts.Post(ctx, ctx.Param("slug"))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Tags handles GET /tags
func (handler *postHandler) Tags(ctx *gin.Context) {
	tags, err := handler.posts.Tags(ctx)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, TagsResponse{Tags: tags})
}

// Summary handles POST /posts/:slug/summary
func (handler *postHandler) Summary(ctx *gin.Context) {
	result, err := handler.tools.SummarizePost(ctx, ctx.Param("slug"))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Actions handles GET /posts/:slug/actions
func (handler *postHandler) Actions(ctx *gin.Context) {
	post, ok := handler.lookup(ctx)
	if !ok {
		return
	}

	likes, err := handler.store.LikeState(ctx, post.ID, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	saved, err := handler.store.IsSaved(ctx, post.ID, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, PostActionsResponse{LikeCount: likes.Count, Liked: likes.Liked, Saved: saved})
}

// Like handles POST /posts/:slug/like
func (handler *postHandler) Like(ctx *gin.Context) {
	post, ok := handler.lookup(ctx)
	if !ok {
		return
	}

	likes, err := handler.store.ToggleLike(ctx, post.ID, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	saved, err := handler.store.IsSaved(ctx, post.ID, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, PostActionsResponse{LikeCount: likes.Count, Liked: likes.Liked, Saved: saved})
}

// Save handles POST /posts/:slug/save
func (handler *postHandler) Save(ctx *gin.Context) {
	post, ok := handler.lookup(ctx)
	if !ok {
		return
	}

	saved, err := handler.store.ToggleSave(ctx, post.ID, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	likes, err := handler.store.LikeState(ctx, post.ID, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, PostActionsResponse{LikeCount: likes.Count, Liked: likes.Liked, Saved: saved})
}

// Saved handles GET /saved. Saved posts that no longer exist are skipped.
func (handler *postHandler) Saved(ctx *gin.Context) {
	ids, err := handler.store.ListSaved(ctx, visitorID(ctx))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	if len(ids) == 0 {
		ctx.JSON(http.StatusOK, PostsResponse{Posts: []*blogposts.Post{}})
		return
	}

	all, err := handler.posts.Posts(ctx, blogposts.Query{})
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	byID := make(map[string]*blogposts.Post, len(all))
	for _, post := range all {
		byID[post.ID] = post
	}

	posts := []*blogposts.Post{}
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			posts = append(posts, post)
		}
	}

	ctx.JSON(http.StatusOK, PostsResponse{Posts: posts})
}

func (handler *postHandler) lookup(ctx *gin.Context) (*blogposts.Post, bool) {
	post, err := handler.posts.Post(ctx, ctx.Param("slug"))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return nil, false
	}

	return post, true
}
