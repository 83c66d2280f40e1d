package blogtools

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	blogai "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_ai"
)

type TitleType string

const (
	TitleBenefit   TitleType = "benefit"
	TitleCuriosity TitleType = "curiosity"
	TitleEmotional TitleType = "emotional"
	TitleUrgency   TitleType = "urgency"
)

const (
	MaxTitleSuggestions = 5

	msgEmptyTitle     = "Please enter a title to optimize."
	msgTitlesFallback = "Error generating titles - please try again"
	msgTitlesReason   = "AI-generated optimization suggestion"
	msgUnknownError   = "Unknown error occurred"
)

// scraped titles take their type from this rotation
var titleTypeCycle = []TitleType{TitleEmotional, TitleCuriosity, TitleBenefit, TitleUrgency}

var (
	quotedTitlePattern = regexp.MustCompile(`(?i)"title"\s*:\s*"([^"]+)"`)
	numberedPattern    = regexp.MustCompile(`^\d+\.\s*`)
	titleLabelPattern  = regexp.MustCompile(`(?i)title:`)
	titlePrefixPattern = regexp.MustCompile(`(?i)^"?title"?:\s*`)
	bracketReplacer    = strings.NewReplacer("{", "", "}", "", "[", "", "]", "")
)

type TitleSuggestion struct {
	Reason string    `json:"reason"`
	Score  int       `json:"score"`
	Title  string    `json:"title"`
	Type   TitleType `json:"type"`
}

type TitlesResult struct {
	Fallback    bool              `json:"fallback"`
	Suggestions []TitleSuggestion `json:"suggestions"`
}

// OptimizeTitle asks for up to five scored alternatives to title
func (tools *Tools) OptimizeTitle(ctx context.Context, title string) (TitlesResult, error) {
	if strings.TrimSpace(title) == "" {
		return TitlesResult{}, inputError(msgEmptyTitle)
	}

	agent := tools.agent("Title Optimizer Agent", titleOptimizerInstructions, 800)
	agent.QueryLabel = "User title"

	raw, err := agent.Run(ctx, title)
	if err != nil {
		tools.logFailure("titles", err)
		return TitlesResult{
			Fallback: true,
			Suggestions: []TitleSuggestion{{
				Reason: msgUnknownError,
				Score:  0,
				Title:  msgTitlesFallback,
				Type:   TitleBenefit,
			}},
		}, nil
	}

	return TitlesResult{Suggestions: tools.ParseTitleSuggestions(raw)}, nil
}

// ParseTitleSuggestions reads the model's JSON array, falling back to
// scraping title-looking lines when the JSON is unusable
func (tools *Tools) ParseTitleSuggestions(raw string) []TitleSuggestion {
	if suggestions, ok := parseTitleJSON(raw); ok {
		return suggestions
	}

	scraped := ScrapeTitles(raw)
	suggestions := make([]TitleSuggestion, 0, len(scraped))

	for i, title := range scraped {
		suggestions = append(suggestions, TitleSuggestion{
			Reason: msgTitlesReason,
			Score:  75 + tools.intn(20),
			Title:  title,
			Type:   titleTypeCycle[i%len(titleTypeCycle)],
		})
	}

	return suggestions
}

type rawTitleSuggestion struct {
	Reason string   `json:"reason"`
	Score  *float64 `json:"score"`
	Title  string   `json:"title"`
	Type   string   `json:"type"`
}

var errIncompleteSuggestion = errors.New("incomplete title suggestion")

func validateTitleSuggestions(items []rawTitleSuggestion) error {
	if len(items) == 0 {
		return errIncompleteSuggestion
	}

	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" || item.Score == nil || item.Type == "" || item.Reason == "" {
			return errIncompleteSuggestion
		}
	}

	return nil
}

func parseTitleJSON(raw string) ([]TitleSuggestion, bool) {
	items, err := blogai.ExtractJSON[[]rawTitleSuggestion](blogai.StripCodeFence(raw), validateTitleSuggestions)
	if err != nil {
		return nil, false
	}

	if len(items) > MaxTitleSuggestions {
		items = items[:MaxTitleSuggestions]
	}

	suggestions := make([]TitleSuggestion, 0, len(items))
	for i, item := range items {
		suggestions = append(suggestions, TitleSuggestion{
			Reason: item.Reason,
			Score:  clampScore(*item.Score),
			Title:  strings.TrimSpace(item.Title),
			Type:   titleType(item.Type, i),
		})
	}

	return suggestions, true
}

// titleType keeps a known type and rotates anything else into one
func titleType(raw string, i int) TitleType {
	candidate := TitleType(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range titleTypeCycle {
		if candidate == known {
			return candidate
		}
	}

	return titleTypeCycle[i%len(titleTypeCycle)]
}

func clampScore(score float64) int {
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// ScrapeTitles pulls up to five distinct titles out of free text
func ScrapeTitles(raw string) []string {
	titles := []string{}
	seen := map[string]bool{}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		candidate := cleanTitle(titleCandidate(trimmed))
		if utf8.RuneCountInString(candidate) <= 5 || seen[candidate] {
			continue
		}

		seen[candidate] = true
		titles = append(titles, candidate)
	}

	if len(titles) > MaxTitleSuggestions {
		titles = titles[:MaxTitleSuggestions]
	}

	return titles
}

func titleCandidate(line string) string {
	lower := strings.ToLower(line)

	switch {
	case strings.Contains(lower, `"title"`):
		if match := quotedTitlePattern.FindStringSubmatch(line); match != nil {
			return match[1]
		}
		return ""

	case strings.Contains(lower, "title:"):
		if loc := titleLabelPattern.FindStringIndex(line); loc != nil {
			return line[loc[1]:]
		}
		return ""

	case numberedPattern.MatchString(line):
		return numberedPattern.ReplaceAllString(line, "")

	case utf8.RuneCountInString(line) > 10 && !strings.ContainsAny(line, "{}[]:"):
		return line
	}

	return ""
}

func cleanTitle(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	candidate = strings.TrimSuffix(candidate, ",")
	candidate = strings.Trim(candidate, `"'`)
	candidate = titlePrefixPattern.ReplaceAllString(candidate, "")
	candidate = bracketReplacer.Replace(candidate)
	candidate = strings.TrimSpace(candidate)

	return strings.Trim(candidate, `"'`)
}
