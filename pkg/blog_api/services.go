package blogapi

import (
	"context"

	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
	blogtools "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_tools"
)

// PostService is the read side of the blog catalog
type PostService interface {
	Invalidate()
	Post(ctx context.Context, slug string) (*blogposts.Post, error)
	Posts(ctx context.Context, query blogposts.Query) ([]*blogposts.Post, error)
	Tags(ctx context.Context) ([]string, error)
}

// ToolService runs the AI writing tools
type ToolService interface {
	DeleteIdea(ctx context.Context, visitorID, ideaID string) error
	GenerateIdeas(ctx context.Context, request blogtools.IdeaRequest) (blogtools.IdeasResult, error)
	GenerateSEOMeta(ctx context.Context, keyword, content string) (blogtools.SEOMetaResult, error)
	GenerateTags(ctx context.Context, content string) (blogtools.TagsResult, error)
	ListIdeas(ctx context.Context, visitorID string) ([]blogstore.Idea, error)
	OptimizeTitle(ctx context.Context, title string) (blogtools.TitlesResult, error)
	Rewrite(ctx context.Context, text string, mode blogtools.RewriteMode) (blogtools.RewriteResult, error)
	SaveIdea(ctx context.Context, visitorID string, request blogtools.IdeaRequest, content string) (blogstore.Idea, error)
	Summarize(ctx context.Context, content string) (blogtools.SummaryResult, error)
	SummarizePost(ctx context.Context, slug string) (blogtools.SummaryResult, error)
}

// ChatService is the site assistant
type ChatService interface {
	Clear(ctx context.Context, visitorID string) error
	History(ctx context.Context, visitorID string) ([]blogstore.ChatMessage, error)
	Send(ctx context.Context, visitorID, message string) (blogtools.ChatReply, error)
}

// VisitorStore holds per-visitor likes, saves and newsletter signups
type VisitorStore interface {
	IsSaved(ctx context.Context, postID, visitorID string) (bool, error)
	LikeState(ctx context.Context, postID, visitorID string) (blogstore.LikeState, error)
	ListSaved(ctx context.Context, visitorID string) ([]string, error)
	Subscribe(ctx context.Context, email string) (bool, error)
	ToggleLike(ctx context.Context, postID, visitorID string) (blogstore.LikeState, error)
	ToggleSave(ctx context.Context, postID, visitorID string) (bool, error)
}
