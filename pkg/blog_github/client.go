package bloggithub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub contents API for reading blog posts
type Client struct {
	github *github.Client
}

// NewClient creates a new GitHub client with the provided token.
// An empty token yields an unauthenticated client for public repositories.
func NewClient(token string) *Client {
	var httpClient *http.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &Client{github: github.NewClient(httpClient)}
}

// WithBaseURL points the client at a different API root, e.g. GitHub Enterprise
func (client *Client) WithBaseURL(rawURL string) (*Client, error) {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}

	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	client.github.BaseURL = baseURL
	return client, nil
}

type ListDirectoryArgs struct {
	Owner string
	Path  string
	Ref   string
	Repo  string
}

// ListDirectory returns the markdown file paths directly under args.Path
func (client *Client) ListDirectory(ctx context.Context, args ListDirectoryArgs) ([]string, error) {
	options := &github.RepositoryContentGetOptions{Ref: args.Ref}

	_, entries, _, err := client.github.Repositories.GetContents(ctx, args.Owner, args.Repo, args.Path, options)
	if err != nil {
		return nil, fmt.Errorf("listing directory: %w", err)
	}

	paths := []string{}
	for _, entry := range entries {
		if entry.GetType() != "file" || !IsMarkdown(entry.GetName()) {
			continue
		}

		paths = append(paths, entry.GetPath())
	}

	sort.Strings(paths)
	return paths, nil
}

type GetFileContentArgs struct {
	Owner string
	Path  string
	Ref   string
	Repo  string
}

// GetFileContent retrieves the content of a file and its blob SHA
func (client *Client) GetFileContent(ctx context.Context, args GetFileContentArgs) (string, string, error) {
	options := &github.RepositoryContentGetOptions{Ref: args.Ref}

	fileContent, _, _, err := client.github.Repositories.GetContents(ctx, args.Owner, args.Repo, args.Path, options)
	if err != nil {
		return "", "", fmt.Errorf("getting file content: %w", err)
	}

	if fileContent == nil {
		return "", "", fmt.Errorf("getting file content: %s is a directory", args.Path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", "", fmt.Errorf("decoding content: %w", err)
	}

	return content, fileContent.GetSHA(), nil
}

// IsMarkdown reports whether name has a markdown extension
func IsMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown", ".mdx":
		return true
	}

	return false
}
