package blogtools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	blogai "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_ai"
	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
)

const (
	DefaultHistoryLimit = 10

	WelcomeMessage = "Hello! 👋 Welcome to **AI Blog**! I'm here to help you learn about our AI-powered tools and team. What would you like to know?"

	msgChatFallback = "I'm having trouble connecting right now. Please try again shortly! 🙏"
	msgEmptyChat    = "Please type a message."
)

type ChatArgs struct {
	Generator    blogai.Generator
	HistoryLimit int
	Logger       *zap.Logger
	Persona      string
	Store        blogstore.Store
}

// Chat is the site assistant. Each visitor has a persisted conversation and
// the most recent turns are replayed into every prompt.
type Chat struct {
	generator    blogai.Generator
	historyLimit int
	logger       *zap.Logger
	now          func() time.Time
	persona      string
	store        blogstore.Store
}

func NewChat(args ChatArgs) *Chat {
	logger := args.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	persona := strings.TrimSpace(args.Persona)
	if persona == "" {
		persona = strings.TrimSpace(DefaultChatPersona)
	}

	limit := args.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &Chat{
		generator:    args.Generator,
		historyLimit: limit,
		logger:       logger,
		now:          time.Now,
		persona:      persona,
		store:        args.Store,
	}
}

type ChatReply struct {
	Fallback bool                  `json:"fallback"`
	Message  blogstore.ChatMessage `json:"message"`
}

// Send records the visitor's message and returns the assistant's reply
func (chat *Chat) Send(ctx context.Context, visitorID, message string) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, inputError(msgEmptyChat)
	}

	history, err := chat.store.ListChatMessages(ctx, visitorID, chat.historyLimit)
	if err != nil {
		return ChatReply{}, err
	}

	if err := chat.store.InsertChatMessage(ctx, blogstore.ChatMessage{
		Content:   message,
		CreatedAt: chat.now(),
		Role:      blogstore.RoleUser,
		VisitorID: visitorID,
	}); err != nil {
		return ChatReply{}, err
	}

	agent := blogai.NewAgent("AI Blog Website Assistant", chat.instructions(history), chat.generator)
	agent.MaxTokens = 600

	text, err := agent.Run(ctx, message)
	if err == nil && text == "" {
		err = blogai.ErrEmptyResponse
	}

	if err != nil {
		chat.logger.Warn("chat reply failed, using fallback",
			zap.String("provider", chat.generator.Name()),
			zap.Error(err),
		)

		return ChatReply{
			Fallback: true,
			Message:  chat.botMessage(visitorID, msgChatFallback),
		}, nil
	}

	reply := chat.botMessage(visitorID, text)
	if err := chat.store.InsertChatMessage(ctx, reply); err != nil {
		return ChatReply{}, err
	}

	return ChatReply{Message: reply}, nil
}

// History returns the visitor's conversation, or the welcome message when empty
func (chat *Chat) History(ctx context.Context, visitorID string) ([]blogstore.ChatMessage, error) {
	messages, err := chat.store.ListChatMessages(ctx, visitorID, 0)
	if err != nil {
		return nil, err
	}

	if len(messages) == 0 {
		return []blogstore.ChatMessage{chat.botMessage(visitorID, WelcomeMessage)}, nil
	}

	return messages, nil
}

func (chat *Chat) Clear(ctx context.Context, visitorID string) error {
	return chat.store.DeleteChatMessages(ctx, visitorID)
}

func (chat *Chat) botMessage(visitorID, content string) blogstore.ChatMessage {
	return blogstore.ChatMessage{
		Content:   content,
		CreatedAt: chat.now(),
		Role:      blogstore.RoleBot,
		VisitorID: visitorID,
	}
}

func (chat *Chat) instructions(history []blogstore.ChatMessage) string {
	if len(history) == 0 {
		return chat.persona
	}

	var buf strings.Builder
	buf.WriteString(chat.persona)
	buf.WriteString("\n\nCONVERSATION SO FAR:\n")

	for _, message := range history {
		speaker := "User"
		if message.Role == blogstore.RoleBot {
			speaker = "Assistant"
		}

		buf.WriteString(fmt.Sprintf("%s: %s\n", speaker, message.Content))
	}

	return buf.String()
}
