package blogapi

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
)

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Message string `json:"message"`
}

func validateStruct(name string, request any) error {
	validate := validator.New()

	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}

	return nil
}

type SummarizeRequest struct {
	Content string `json:"content" validate:"max=50000"`
}

func (request *SummarizeRequest) Validate() error {
	return validateStruct("SummarizeRequest", request)
}

type TagsRequest struct {
	Content string `json:"content" validate:"max=50000"`
}

func (request *TagsRequest) Validate() error {
	return validateStruct("TagsRequest", request)
}

type TitlesRequest struct {
	Title string `json:"title" validate:"max=300"`
}

func (request *TitlesRequest) Validate() error {
	return validateStruct("TitlesRequest", request)
}

type RewriteRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=simplify professional creative concise"`
	Text string `json:"text" validate:"max=20000"`
}

func (request *RewriteRequest) Validate() error {
	return validateStruct("RewriteRequest", request)
}

type SEOMetaRequest struct {
	Content string `json:"content" validate:"max=50000"`
	Keyword string `json:"keyword" validate:"max=200"`
}

func (request *SEOMetaRequest) Validate() error {
	return validateStruct("SEOMetaRequest", request)
}

type IdeasRequest struct {
	ContentType string `json:"contentType" validate:"omitempty,oneof=blog twitter linkedin instagram"`
	Tone        string `json:"tone" validate:"omitempty,oneof=professional casual witty inspirational"`
	Topic       string `json:"topic" validate:"max=500"`
}

func (request *IdeasRequest) Validate() error {
	return validateStruct("IdeasRequest", request)
}

type SaveIdeaRequest struct {
	IdeasRequest
	Content string `json:"content" validate:"max=20000"`
}

func (request *SaveIdeaRequest) Validate() error {
	return validateStruct("SaveIdeaRequest", request)
}

type ChatRequest struct {
	Message string `json:"message" validate:"max=4000"`
}

func (request *ChatRequest) Validate() error {
	return validateStruct("ChatRequest", request)
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

func (request *NewsletterRequest) Validate() error {
	return validateStruct("NewsletterRequest", request)
}

type PostsResponse struct {
	Posts []*blogposts.Post `json:"posts"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

// PostActionsResponse is the visitor's like and save state for a post
type PostActionsResponse struct {
	LikeCount int  `json:"like_count"`
	Liked     bool `json:"liked"`
	Saved     bool `json:"saved"`
}

type IdeasResponse struct {
	Ideas []blogstore.Idea `json:"ideas"`
}

type ChatHistoryResponse struct {
	Messages []blogstore.ChatMessage `json:"messages"`
}

type NewsletterResponse struct {
	AlreadySubscribed bool `json:"already_subscribed"`
	Subscribed        bool `json:"subscribed"`
}

type WebhookResponse struct {
	Ignored     bool `json:"ignored"`
	Invalidated bool `json:"invalidated"`
}
