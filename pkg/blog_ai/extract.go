package blogai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Validator checks a value after it has been decoded from model output.
type Validator[T any] func(T) error

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// StripCodeFence replaces the first markdown code fence with its contents.
func StripCodeFence(raw string) string {
	loc := codeFencePattern.FindStringSubmatchIndex(raw)
	if loc == nil {
		return strings.TrimSpace(raw)
	}

	return strings.TrimSpace(raw[:loc[0]] + raw[loc[2]:loc[3]] + raw[loc[1]:])
}

// ExtractJSON decodes the first JSON object or array found in raw model
// output. Code fences, surrounding prose, comments and numbers written as
// ".5" are tolerated. Every failure wraps ErrInvalidOutput.
func ExtractJSON[T any](raw string, validate Validator[T]) (T, error) {
	var zero T

	block := extractJSONBlock(StripCodeFence(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON found in response", ErrInvalidOutput)
	}

	block = normalizeLeadingDecimals(stripComments(block))

	var result T
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validate != nil {
		if err := validate(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// jsonScanner walks text while tracking whether it is inside a JSON string.
type jsonScanner struct {
	escaped  bool
	inString bool
}

// step reports whether c is structural, i.e. outside of any string literal.
func (scanner *jsonScanner) step(c byte) bool {
	switch {
	case scanner.escaped:
		scanner.escaped = false
		return false
	case c == '\\' && scanner.inString:
		scanner.escaped = true
		return false
	case c == '"':
		scanner.inString = !scanner.inString
		return false
	default:
		return !scanner.inString
	}
}

// extractJSONBlock returns the first balanced {...} or [...] block.
func extractJSONBlock(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}

	var scanner jsonScanner
	depth := 0

	for i := start; i < len(s); i++ {
		if !scanner.step(s[i]) {
			continue
		}

		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// stripComments removes // and /* */ comments outside string values.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var scanner jsonScanner

	for i := 0; i < len(s); i++ {
		c := s[i]

		if !scanner.step(c) || c != '/' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		switch s[i+1] {
		case '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
		case '*':
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				i = len(s)
			} else {
				i += end + 3
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// normalizeLeadingDecimals rewrites ".8" as "0.8" outside string values.
func normalizeLeadingDecimals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var scanner jsonScanner

	for i := 0; i < len(s); i++ {
		c := s[i]

		if scanner.step(c) && c == '.' && i+1 < len(s) && isDigit(s[i+1]) && isNumberStart(lastNonSpace(s[:i])) {
			b.WriteByte('0')
		}

		b.WriteByte(c)
	}

	return b.String()
}

func lastNonSpace(s string) byte {
	trimmed := strings.TrimRight(s, " \n\r\t")
	if trimmed == "" {
		return 0
	}

	return trimmed[len(trimmed)-1]
}

func isNumberStart(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
