package blogtools

import (
	"context"
	"strings"
)

type RewriteMode string

const (
	RewriteConcise      RewriteMode = "concise"
	RewriteCreative     RewriteMode = "creative"
	RewriteProfessional RewriteMode = "professional"
	RewriteSimplify     RewriteMode = "simplify"
)

const (
	msgEmptyRewrite    = "Please enter text to rewrite."
	msgRewriteFallback = "Sorry, I couldn't rewrite this. Try again!"
	msgUnknownMode     = "Please choose a rewrite mode: simplify, professional, creative, or concise."
)

type RewriteResult struct {
	Fallback bool        `json:"fallback"`
	Mode     RewriteMode `json:"mode"`
	Text     string      `json:"text"`
}

// Rewrite restyles text in the requested mode, simplify by default
func (tools *Tools) Rewrite(ctx context.Context, text string, mode RewriteMode) (RewriteResult, error) {
	if strings.TrimSpace(text) == "" {
		return RewriteResult{}, inputError(msgEmptyRewrite)
	}

	if mode == "" {
		mode = RewriteSimplify
	}

	if _, ok := rewriteInstructions[mode]; !ok {
		return RewriteResult{}, inputError(msgUnknownMode)
	}

	rewritten, err := tools.complete(ctx, buildRewritePrompt(mode, text), 1500)
	if err != nil {
		tools.logFailure("rewrite", err)
		return RewriteResult{Fallback: true, Mode: mode, Text: msgRewriteFallback}, nil
	}

	return RewriteResult{Mode: mode, Text: rewritten}, nil
}
