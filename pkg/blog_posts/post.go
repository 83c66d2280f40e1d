package blogposts

import (
	"bytes"
	"fmt"
	"html"
	"path"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	sharedUtils "github.com/frankmeza/frankmeza-ai-blog/pkg/shared_utils"
)

const (
	PlaceholderImage = "/placeholder.svg"
	UnknownAuthor    = "Unknown Author"
)

// Author is the display record attached to a post
type Author struct {
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
	Name   string `json:"name"`
}

// Post is a published blog post as served to readers
type Post struct {
	AISummary   string    `json:"aiSummary,omitempty"`
	AITags      []string  `json:"aiTags"`
	Author      Author    `json:"author"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Featured    bool      `json:"featured"`
	HTML        string    `json:"html"`
	ID          string    `json:"id"`
	Image       string    `json:"image"`
	IsDraft     bool      `json:"-"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadTime    string    `json:"readTime"`
	SEOTitle    string    `json:"seoTitle,omitempty"`
	Slug        string    `json:"slug"`
	Tags        []string  `json:"tags"`
	Title       string    `json:"title"`
}

// PlainText returns the rendered post body without markup
func (post *Post) PlainText() string {
	return toPlainText(post.HTML)
}

// frontMatter mirrors the YAML header of a post file. The older bot keys
// (key, summary, created_at) are still accepted.
type frontMatter struct {
	AISummary   string   `yaml:"ai_summary"`
	AITags      []string `yaml:"ai_tags"`
	Author      struct {
		Avatar string `yaml:"avatar"`
		Bio    string `yaml:"bio"`
		Name   string `yaml:"name"`
	} `yaml:"author"`
	CreatedAt   string   `yaml:"created_at"`
	Excerpt     string   `yaml:"excerpt"`
	Featured    bool     `yaml:"featured"`
	ID          string   `yaml:"id"`
	Image       string   `yaml:"image"`
	IsDraft     bool     `yaml:"is_draft"`
	Key         string   `yaml:"key"`
	PublishedAt string   `yaml:"published_at"`
	ReadTime    string   `yaml:"read_time"`
	SEOTitle    string   `yaml:"seo_title"`
	Slug        string   `yaml:"slug"`
	Summary     string   `yaml:"summary"`
	Tags        []string `yaml:"tags"`
	Title       string   `yaml:"title"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var (
	markdown  = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitizer = bluemonday.UGCPolicy()
	stripper  = bluemonday.StrictPolicy()
)

// ParsePost builds a Post from a markdown document with a YAML front matter header
func ParsePost(doc RawDocument) (*Post, error) {
	header, body, err := splitFrontMatter(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Path, err)
	}

	var meta frontMatter
	if header != "" {
		if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
			return nil, fmt.Errorf("%s: parsing front matter: %w", doc.Path, err)
		}
	}

	renderedHTML, err := renderMarkdown(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Path, err)
	}

	post := &Post{
		AISummary: strings.TrimSpace(meta.AISummary),
		AITags:    nonNil(meta.AITags),
		Author: Author{
			Avatar: firstNonEmpty(meta.Author.Avatar, PlaceholderImage),
			Bio:    meta.Author.Bio,
			Name:   firstNonEmpty(meta.Author.Name, UnknownAuthor),
		},
		Content:  body,
		Excerpt:  firstNonEmpty(meta.Excerpt, meta.Summary),
		Featured: meta.Featured,
		HTML:     renderedHTML,
		Image:    firstNonEmpty(meta.Image, PlaceholderImage),
		IsDraft:  meta.IsDraft,
		SEOTitle: meta.SEOTitle,
		Tags:     nonNil(meta.Tags),
		Title:    strings.TrimSpace(meta.Title),
	}

	if post.Title == "" {
		post.Title = titleFromPath(doc.Path)
	}

	post.Slug = firstNonEmpty(meta.Slug, meta.Key, sharedUtils.Slugify(post.Title))
	post.ID = firstNonEmpty(meta.ID, post.Slug)

	published := firstNonEmpty(meta.PublishedAt, meta.CreatedAt)
	if published != "" {
		post.PublishedAt, err = parseDate(published)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", doc.Path, err)
		}
	}

	post.ReadTime = meta.ReadTime
	if post.ReadTime == "" {
		post.ReadTime = sharedUtils.EstimateReadTime(post.PlainText())
	}

	return post, nil
}

func splitFrontMatter(content string) (string, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(content, "---\n") {
		return "", strings.TrimSpace(content), nil
	}

	rest := content[len("---\n"):]
	if strings.HasPrefix(rest, "---\n") {
		return "", strings.TrimSpace(rest[len("---\n"):]), nil
	}

	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", "", fmt.Errorf("unterminated front matter")
	}

	header := rest[:end]
	body := rest[end+len("\n---"):]

	return header, strings.TrimSpace(body), nil
}

func renderMarkdown(body string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

func toPlainText(renderedHTML string) string {
	text := html.UnescapeString(stripper.Sanitize(renderedHTML))
	return strings.Join(strings.Fields(text), " ")
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func titleFromPath(filePath string) string {
	name := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	return strings.TrimSpace(strings.ReplaceAll(name, "-", " "))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
