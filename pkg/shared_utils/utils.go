package shared

import (
	"fmt"
	"strings"
	"unicode"
)

// WordsPerMinute is the reading speed used for read time estimates
const WordsPerMinute = 200

// TruncateText cuts text to limit runes and marks the cut with "..."
func TruncateText(textString string, limit int) string {
	runes := []rune(textString)
	if len(runes) <= limit {
		return textString
	}

	return string(runes[:limit]) + "..."
}

func IsRuneAlphabetical(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func IsRuneNumerical(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsRuneDashCharacter(r rune) bool {
	return r == '-'
}

// Slugify creates a URL-friendly key from a title
func Slugify(title string) string {
	key := strings.ToLower(strings.TrimSpace(title))
	key = strings.Join(strings.Fields(key), "-")

	var result strings.Builder
	lastDash := false

	for _, r := range key {
		if IsRuneAlphabetical(r) || IsRuneNumerical(r) {
			result.WriteRune(r)
			lastDash = false
			continue
		}

		if IsRuneDashCharacter(r) && !lastDash && result.Len() > 0 {
			result.WriteRune(r)
			lastDash = true
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

// CountWords counts whitespace-separated words
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, unicode.IsSpace))
}

// EstimateReadTime formats a read time such as "5 min read", never below one minute
func EstimateReadTime(text string) string {
	minutes := (CountWords(text) + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}
