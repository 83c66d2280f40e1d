package blogstore

import (
	"context"
	"errors"
	"time"
)

// MaxIdeasPerVisitor bounds how many saved ideas are kept for one visitor.
const MaxIdeasPerVisitor = 20

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store persists per-visitor blog state that browsers used to keep in
// local storage.
type Store interface {
	// ToggleLike flips the visitor's like on a post and returns the new state.
	ToggleLike(ctx context.Context, postID, visitorID string) (LikeState, error)

	// LikeState returns the visitor's like flag and the post's like count.
	LikeState(ctx context.Context, postID, visitorID string) (LikeState, error)

	// ToggleSave flips the visitor's saved flag on a post and returns it.
	ToggleSave(ctx context.Context, postID, visitorID string) (bool, error)

	// IsSaved reports whether the visitor saved the post.
	IsSaved(ctx context.Context, postID, visitorID string) (bool, error)

	// ListSaved returns the ids of posts the visitor saved, newest first.
	ListSaved(ctx context.Context, visitorID string) ([]string, error)

	// InsertIdea saves a generated idea, keeping only the newest ones.
	InsertIdea(ctx context.Context, idea Idea) error

	// ListIdeas returns the visitor's saved ideas, newest first.
	ListIdeas(ctx context.Context, visitorID string) ([]Idea, error)

	// DeleteIdea removes one of the visitor's saved ideas.
	DeleteIdea(ctx context.Context, visitorID, ideaID string) error

	// InsertChatMessage appends a message to the visitor's chat history.
	InsertChatMessage(ctx context.Context, message ChatMessage) error

	// ListChatMessages returns up to limit of the most recent messages,
	// oldest first. A limit of zero or less returns everything.
	ListChatMessages(ctx context.Context, visitorID string, limit int) ([]ChatMessage, error)

	// DeleteChatMessages clears the visitor's chat history.
	DeleteChatMessages(ctx context.Context, visitorID string) error

	// Subscribe adds an address to the newsletter and reports whether it was new.
	Subscribe(ctx context.Context, email string) (bool, error)

	// Close closes the store.
	Close() error
}

// LikeState is a visitor's view of a post's likes.
type LikeState struct {
	Count int  `json:"like_count"`
	Liked bool `json:"liked"`
}

// Idea is a saved content-idea generation.
type Idea struct {
	Content     string    `json:"content"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	Tone        string    `json:"tone"`
	Topic       string    `json:"topic"`
	VisitorID   string    `json:"-"`
}

// Chat roles
const (
	RoleBot  = "bot"
	RoleUser = "user"
)

// ChatMessage is a persisted chat widget message.
type ChatMessage struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
	Role      string    `json:"type"`
	VisitorID string    `json:"-"`
}
