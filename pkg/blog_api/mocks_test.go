package blogapi

import (
	"context"

	"github.com/stretchr/testify/mock"

	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
	blogtools "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_tools"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Invalidate() {
	m.Called()
}

func (m *MockPostService) Post(ctx context.Context, slug string) (*blogposts.Post, error) {
	args := m.Called(ctx, slug)
	if post, ok := args.Get(0).(*blogposts.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) Posts(ctx context.Context, query blogposts.Query) ([]*blogposts.Post, error) {
	args := m.Called(ctx, query)
	if posts, ok := args.Get(0).([]*blogposts.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) Tags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if tags, ok := args.Get(0).([]string); ok {
		return tags, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockToolService struct {
	mock.Mock
}

func (m *MockToolService) DeleteIdea(ctx context.Context, visitorID, ideaID string) error {
	args := m.Called(ctx, visitorID, ideaID)
	return args.Error(0)
}

func (m *MockToolService) GenerateIdeas(ctx context.Context, request blogtools.IdeaRequest) (blogtools.IdeasResult, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(blogtools.IdeasResult), args.Error(1)
}

func (m *MockToolService) GenerateSEOMeta(ctx context.Context, keyword, content string) (blogtools.SEOMetaResult, error) {
	args := m.Called(ctx, keyword, content)
	return args.Get(0).(blogtools.SEOMetaResult), args.Error(1)
}

func (m *MockToolService) GenerateTags(ctx context.Context, content string) (blogtools.TagsResult, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(blogtools.TagsResult), args.Error(1)
}

func (m *MockToolService) ListIdeas(ctx context.Context, visitorID string) ([]blogstore.Idea, error) {
	args := m.Called(ctx, visitorID)
	if ideas, ok := args.Get(0).([]blogstore.Idea); ok {
		return ideas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockToolService) OptimizeTitle(ctx context.Context, title string) (blogtools.TitlesResult, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(blogtools.TitlesResult), args.Error(1)
}

func (m *MockToolService) Rewrite(ctx context.Context, text string, mode blogtools.RewriteMode) (blogtools.RewriteResult, error) {
	args := m.Called(ctx, text, mode)
	return args.Get(0).(blogtools.RewriteResult), args.Error(1)
}

func (m *MockToolService) SaveIdea(ctx context.Context, visitorID string, request blogtools.IdeaRequest, content string) (blogstore.Idea, error) {
	args := m.Called(ctx, visitorID, request, content)
	return args.Get(0).(blogstore.Idea), args.Error(1)
}

func (m *MockToolService) Summarize(ctx context.Context, content string) (blogtools.SummaryResult, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(blogtools.SummaryResult), args.Error(1)
}

func (m *MockToolService) SummarizePost(ctx context.Context, slug string) (blogtools.SummaryResult, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(blogtools.SummaryResult), args.Error(1)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Clear(ctx context.Context, visitorID string) error {
	args := m.Called(ctx, visitorID)
	return args.Error(0)
}

func (m *MockChatService) History(ctx context.Context, visitorID string) ([]blogstore.ChatMessage, error) {
	args := m.Called(ctx, visitorID)
	if messages, ok := args.Get(0).([]blogstore.ChatMessage); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChatService) Send(ctx context.Context, visitorID, message string) (blogtools.ChatReply, error) {
	args := m.Called(ctx, visitorID, message)
	return args.Get(0).(blogtools.ChatReply), args.Error(1)
}

type MockVisitorStore struct {
	mock.Mock
}

func (m *MockVisitorStore) IsSaved(ctx context.Context, postID, visitorID string) (bool, error) {
	args := m.Called(ctx, postID, visitorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVisitorStore) LikeState(ctx context.Context, postID, visitorID string) (blogstore.LikeState, error) {
	args := m.Called(ctx, postID, visitorID)
	return args.Get(0).(blogstore.LikeState), args.Error(1)
}

func (m *MockVisitorStore) ListSaved(ctx context.Context, visitorID string) ([]string, error) {
	args := m.Called(ctx, visitorID)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVisitorStore) Subscribe(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockVisitorStore) ToggleLike(ctx context.Context, postID, visitorID string) (blogstore.LikeState, error) {
	args := m.Called(ctx, postID, visitorID)
	return args.Get(0).(blogstore.LikeState), args.Error(1)
}

func (m *MockVisitorStore) ToggleSave(ctx context.Context, postID, visitorID string) (bool, error) {
	args := m.Called(ctx, postID, visitorID)
	return args.Bool(0), args.Error(1)
}
