package blogtools

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	blogai "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_ai"
	blogposts "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_posts"
	blogstore "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_store"
)

// InputError carries a message meant for the person using the tool
type InputError struct {
	Message string
}

func (err *InputError) Error() string {
	return err.Message
}

func inputError(message string) error {
	return &InputError{Message: message}
}

// PostLookup finds a published post by slug
type PostLookup interface {
	Post(ctx context.Context, slug string) (*blogposts.Post, error)
}

type ToolsArgs struct {
	Generator blogai.Generator
	Logger    *zap.Logger
	Posts     PostLookup
	Random    *rand.Rand
	Store     blogstore.Store
}

// Tools runs the AI writing widgets. Generator failures are logged and
// replaced by fixed fallback text, they are never returned to callers.
type Tools struct {
	generator blogai.Generator
	logger    *zap.Logger
	newID     func() string
	posts     PostLookup
	store     blogstore.Store

	randomMu sync.Mutex
	random   *rand.Rand
}

func NewTools(args ToolsArgs) *Tools {
	logger := args.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	random := args.Random
	if random == nil {
		random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Tools{
		generator: args.Generator,
		logger:    logger,
		newID:     uuid.NewString,
		posts:     args.Posts,
		random:    random,
		store:     args.Store,
	}
}

func (tools *Tools) agent(name, instructions string, maxTokens int) *blogai.Agent {
	agent := blogai.NewAgent(name, instructions, tools.generator)
	agent.MaxTokens = maxTokens
	return agent
}

// complete sends a fully built prompt without agent framing
func (tools *Tools) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	text, err := tools.generator.Generate(ctx, blogai.GenerateRequest{
		MaxTokens: maxTokens,
		Prompt:    prompt,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (tools *Tools) logFailure(tool string, err error) {
	tools.logger.Warn("generation failed, using fallback",
		zap.String("tool", tool),
		zap.String("provider", tools.generator.Name()),
		zap.Error(err),
	)
}

// intn draws from the shared random source
func (tools *Tools) intn(n int) int {
	tools.randomMu.Lock()
	defer tools.randomMu.Unlock()

	return tools.random.Intn(n)
}
