package blogai

import (
	"context"
	"fmt"
	"strings"
)

// DefaultQueryLabel introduces the user's input after the instructions
const DefaultQueryLabel = "User query"

// Agent pairs a set of instructions with a generator
type Agent struct {
	Generator    Generator
	Instructions string
	MaxTokens    int
	Name         string
	QueryLabel   string
}

// NewAgent creates an agent using the default query label
func NewAgent(name, instructions string, generator Generator) *Agent {
	return &Agent{
		Generator:    generator,
		Instructions: instructions,
		Name:         name,
		QueryLabel:   DefaultQueryLabel,
	}
}

// BuildPrompt joins the instructions and the labelled query
func (agent *Agent) BuildPrompt(query string) string {
	label := agent.QueryLabel
	if label == "" {
		label = DefaultQueryLabel
	}

	return fmt.Sprintf("%s\n\n%s: %s", strings.TrimSpace(agent.Instructions), label, query)
}

// Run sends the query to the generator and returns the trimmed reply
func (agent *Agent) Run(ctx context.Context, query string) (string, error) {
	text, err := agent.Generator.Generate(ctx, GenerateRequest{
		MaxTokens: agent.MaxTokens,
		Prompt:    agent.BuildPrompt(query),
	})

	if err != nil {
		return "", fmt.Errorf("%s: %w", agent.Name, err)
	}

	return strings.TrimSpace(text), nil
}
