package blogtools

import (
	"context"
	"strings"
	"time"

	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
)

type ContentType string

const (
	ContentBlog      ContentType = "blog"
	ContentInstagram ContentType = "instagram"
	ContentLinkedIn  ContentType = "linkedin"
	ContentTwitter   ContentType = "twitter"
)

type Tone string

const (
	ToneCasual        Tone = "casual"
	ToneInspirational Tone = "inspirational"
	ToneProfessional  Tone = "professional"
	ToneWitty         Tone = "witty"
)

const (
	msgEmptyTopic      = "Please enter a topic or niche."
	msgIdeasFallback   = "Sorry, I couldn't generate ideas right now. Try again!"
	msgNothingToSave   = "Generate some ideas before saving."
	msgUnknownPlatform = "Please choose a content type: blog, twitter, linkedin, or instagram."
	msgUnknownTone     = "Please choose a tone: professional, casual, witty, or inspirational."
)

// IdeaRequest describes what a batch of content ideas was generated for
type IdeaRequest struct {
	ContentType ContentType `json:"contentType"`
	Tone        Tone        `json:"tone"`
	Topic       string      `json:"topic"`
}

func (request IdeaRequest) normalize() (IdeaRequest, error) {
	request.Topic = strings.TrimSpace(request.Topic)
	if request.Topic == "" {
		return request, inputError(msgEmptyTopic)
	}

	if request.ContentType == "" {
		request.ContentType = ContentBlog
	}

	if request.Tone == "" {
		request.Tone = ToneProfessional
	}

	if _, ok := platformGuides[request.ContentType]; !ok {
		return request, inputError(msgUnknownPlatform)
	}

	if _, ok := toneGuides[request.Tone]; !ok {
		return request, inputError(msgUnknownTone)
	}

	return request, nil
}

type IdeasResult struct {
	IdeaRequest
	Fallback bool   `json:"fallback"`
	Ideas    string `json:"ideas"`
}

// GenerateIdeas brainstorms numbered content ideas for a topic
func (tools *Tools) GenerateIdeas(ctx context.Context, request IdeaRequest) (IdeasResult, error) {
	request, err := request.normalize()
	if err != nil {
		return IdeasResult{}, err
	}

	prompt := buildIdeasPrompt(request.Topic, request.ContentType, request.Tone)

	ideas, err := tools.complete(ctx, prompt, 1500)
	if err != nil {
		tools.logFailure("ideas", err)
		return IdeasResult{IdeaRequest: request, Fallback: true, Ideas: msgIdeasFallback}, nil
	}

	return IdeasResult{IdeaRequest: request, Ideas: ideas}, nil
}

// SaveIdea keeps generated ideas for the visitor. Fallback and validation
// messages are refused.
func (tools *Tools) SaveIdea(ctx context.Context, visitorID string, request IdeaRequest, content string) (blogstore.Idea, error) {
	content = strings.TrimSpace(content)
	if content == "" || strings.HasPrefix(content, "Please") || strings.HasPrefix(content, "Sorry") {
		return blogstore.Idea{}, inputError(msgNothingToSave)
	}

	request, err := request.normalize()
	if err != nil {
		return blogstore.Idea{}, err
	}

	idea := blogstore.Idea{
		Content:     content,
		ContentType: string(request.ContentType),
		CreatedAt:   time.Now().UTC(),
		ID:          tools.newID(),
		Tone:        string(request.Tone),
		Topic:       request.Topic,
		VisitorID:   visitorID,
	}

	if err := tools.store.InsertIdea(ctx, idea); err != nil {
		return blogstore.Idea{}, err
	}

	return idea, nil
}

func (tools *Tools) ListIdeas(ctx context.Context, visitorID string) ([]blogstore.Idea, error) {
	return tools.store.ListIdeas(ctx, visitorID)
}

func (tools *Tools) DeleteIdea(ctx context.Context, visitorID, ideaID string) error {
	return tools.store.DeleteIdea(ctx, visitorID, ideaID)
}
