package blogtools

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	MinPostSummaryChars = 50

	msgInvalidSummaryInput = "Please provide valid content to summarize."
	msgSummaryFallback     = "Sorry, an error occurred while generating the summary."
)

type SummaryResult struct {
	Fallback bool   `json:"fallback"`
	Summary  string `json:"summary"`
}

// Summarize condenses content into a few lines
func (tools *Tools) Summarize(ctx context.Context, content string) (SummaryResult, error) {
	if strings.TrimSpace(content) == "" {
		return SummaryResult{}, inputError(msgInvalidSummaryInput)
	}

	summary, err := tools.agent("Content Summarizer Agent", summarizerInstructions, 400).Run(ctx, content)
	if err != nil {
		tools.logFailure("summarize", err)
		return SummaryResult{Fallback: true, Summary: msgSummaryFallback}, nil
	}

	return SummaryResult{Summary: summary}, nil
}

// SummarizePost returns the stored AI summary of a post, or generates one
func (tools *Tools) SummarizePost(ctx context.Context, slug string) (SummaryResult, error) {
	post, err := tools.posts.Post(ctx, slug)
	if err != nil {
		return SummaryResult{}, err
	}

	if post.AISummary != "" {
		return SummaryResult{Summary: post.AISummary}, nil
	}

	text := post.PlainText()
	if utf8.RuneCountInString(text) < MinPostSummaryChars {
		return SummaryResult{}, inputError(msgInvalidSummaryInput)
	}

	return tools.Summarize(ctx, text)
}
