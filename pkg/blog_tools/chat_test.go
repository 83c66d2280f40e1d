package blogtools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
)

func newTestChat(t *testing.T, rec *recorder, limit int) *Chat {
	t.Helper()

	return NewChat(ChatArgs{
		Generator:    rec.generator(),
		HistoryLimit: limit,
		Persona:      "You are the AI Blog assistant.",
		Store:        newTestStore(t),
	})
}

func TestChat_HistoryStartsWithWelcome(t *testing.T) {
	chat := newTestChat(t, &recorder{}, 0)

	messages, err := chat.History(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, blogstore.RoleBot, messages[0].Role)
	assert.Equal(t, WelcomeMessage, messages[0].Content)
}

func TestChat_SendPersistsAndReplaysHistory(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{reply: "Hello there"}
	chat := newTestChat(t, rec, 0)

	reply, err := chat.Send(ctx, "alice", "  Hi  ")
	require.NoError(t, err)
	assert.False(t, reply.Fallback)
	assert.Equal(t, "Hello there", reply.Message.Content)
	assert.Equal(t, "You are the AI Blog assistant.\n\nUser query: Hi", rec.lastPrompt())

	rec.reply = "We have six tools."
	_, err = chat.Send(ctx, "alice", "What tools?")
	require.NoError(t, err)
	assert.Equal(t,
		"You are the AI Blog assistant.\n\nCONVERSATION SO FAR:\nUser: Hi\nAssistant: Hello there\n\nUser query: What tools?",
		rec.lastPrompt(),
	)

	messages, err := chat.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.Equal(t, blogstore.RoleUser, messages[2].Role)
	assert.Equal(t, "What tools?", messages[2].Content)
	assert.Equal(t, "We have six tools.", messages[3].Content)
}

func TestChat_HistoryLimit(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{reply: "ok"}
	chat := newTestChat(t, rec, 2)

	_, err := chat.Send(ctx, "alice", "first")
	require.NoError(t, err)
	_, err = chat.Send(ctx, "alice", "second")
	require.NoError(t, err)
	_, err = chat.Send(ctx, "alice", "third")
	require.NoError(t, err)

	prompt := rec.lastPrompt()
	assert.NotContains(t, prompt, "User: first")
	assert.Contains(t, prompt, "User: second\nAssistant: ok\n")
}

func TestChat_FallbackIsNotStored(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{err: errBoom}
	chat := newTestChat(t, rec, 0)

	reply, err := chat.Send(ctx, "alice", "Hello?")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
	assert.Equal(t, "I'm having trouble connecting right now. Please try again shortly! 🙏", reply.Message.Content)

	messages, err := chat.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, blogstore.RoleUser, messages[0].Role)
}

func TestChat_BlankMessageAndClear(t *testing.T) {
	ctx := context.Background()
	chat := newTestChat(t, &recorder{reply: "hi"}, 0)

	_, err := chat.Send(ctx, "alice", "   ")
	requireInputError(t, err, "Please type a message.")

	_, err = chat.Send(ctx, "alice", "hello")
	require.NoError(t, err)
	require.NoError(t, chat.Clear(ctx, "alice"))

	messages, err := chat.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, WelcomeMessage, messages[0].Content)
}
