package blogtools

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxSEODescriptionRunes = 160
	MaxSEOTitleRunes       = 60

	msgEmptyKeyword    = "Please enter a focus keyword."
	msgMissingSEODesc  = "Could not generate description"
	msgMissingSEOTitle = "Could not generate title"
	msgSEOFallback     = "Error generating metadata. Try again."
)

var (
	seoTitlePattern       = regexp.MustCompile(`(?i)TITLE:\s*(.*)`)
	seoDescriptionPattern = regexp.MustCompile(`(?i)DESCRIPTION:\s*(.*)`)
)

type SEOMetaResult struct {
	Description        string `json:"description"`
	DescriptionTooLong bool   `json:"descriptionTooLong"`
	Fallback           bool   `json:"fallback"`
	Title              string `json:"title"`
	TitleTooLong       bool   `json:"titleTooLong"`
}

// GenerateSEOMeta writes a title tag and meta description around keyword
func (tools *Tools) GenerateSEOMeta(ctx context.Context, keyword, content string) (SEOMetaResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return SEOMetaResult{}, inputError(msgEmptyKeyword)
	}

	raw, err := tools.complete(ctx, buildSEOMetaPrompt(keyword, strings.TrimSpace(content)), 300)
	if err != nil {
		tools.logFailure("seo-meta", err)
		return SEOMetaResult{Fallback: true, Title: msgSEOFallback}, nil
	}

	return ParseSEOMeta(raw), nil
}

// ParseSEOMeta reads the TITLE: and DESCRIPTION: lines of a model reply
func ParseSEOMeta(raw string) SEOMetaResult {
	result := SEOMetaResult{
		Description: msgMissingSEODesc,
		Title:       msgMissingSEOTitle,
	}

	if match := seoTitlePattern.FindStringSubmatch(raw); match != nil {
		result.Title = strings.TrimSpace(match[1])
	}

	if match := seoDescriptionPattern.FindStringSubmatch(raw); match != nil {
		result.Description = strings.TrimSpace(match[1])
	}

	result.TitleTooLong = utf8.RuneCountInString(result.Title) > MaxSEOTitleRunes
	result.DescriptionTooLong = utf8.RuneCountInString(result.Description) > MaxSEODescriptionRunes

	return result
}
