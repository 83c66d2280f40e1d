package blogtools

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	MinTagContentChars = 50

	msgNoTags          = "No relevant tags generated."
	msgShortTagContent = "Please provide more content for tag generation (at least 50 words)."
	msgTagsFallback    = "Sorry, an error occurred while generating tags."
)

var tagNoise = strings.NewReplacer("[", "", "]", "", "'", "")

type TagsResult struct {
	Fallback bool     `json:"fallback"`
	Tags     []string `json:"tags"`
}

// GenerateTags suggests SEO tags for content of at least MinTagContentChars
func (tools *Tools) GenerateTags(ctx context.Context, content string) (TagsResult, error) {
	if strings.TrimSpace(content) == "" || utf8.RuneCountInString(content) < MinTagContentChars {
		return TagsResult{}, inputError(msgShortTagContent)
	}

	raw, err := tools.agent("Tag Generator Agent", taggerInstructions, 200).Run(ctx, content)
	if err != nil {
		tools.logFailure("tags", err)
		return TagsResult{Fallback: true, Tags: []string{msgTagsFallback}}, nil
	}

	return TagsResult{Tags: ParseTags(raw)}, nil
}

// ParseTags splits a comma separated model reply into unique tags
func ParseTags(raw string) []string {
	seen := map[string]bool{}
	tags := []string{}

	for _, part := range strings.Split(tagNoise.Replace(raw), ",") {
		tag := strings.TrimSpace(part)
		key := strings.ToLower(tag)

		if tag == "" || seen[key] {
			continue
		}

		seen[key] = true
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return []string{msgNoTags}
	}

	return tags
}
