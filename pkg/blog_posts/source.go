package blogposts

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	bloggithub "github.com/frankmeza/frankmeza-ai-blog/pkg/blog_github"
)

// RawDocument is an unparsed post file
type RawDocument struct {
	Content string
	Path    string
	SHA     string
}

// Source lists the raw post documents of the blog
type Source interface {
	List(ctx context.Context) ([]RawDocument, error)
}

// ContentReader is the subset of the GitHub client a GithubSource needs
type ContentReader interface {
	ListDirectory(ctx context.Context, args bloggithub.ListDirectoryArgs) ([]string, error)
	GetFileContent(ctx context.Context, args bloggithub.GetFileContentArgs) (string, string, error)
}

// GithubSource reads posts from a directory of a GitHub repository
type GithubSource struct {
	Dir    string
	Owner  string
	Reader ContentReader
	Ref    string
	Repo   string
}

func (source *GithubSource) List(ctx context.Context) ([]RawDocument, error) {
	paths, err := source.Reader.ListDirectory(ctx, bloggithub.ListDirectoryArgs{
		Owner: source.Owner,
		Path:  source.Dir,
		Ref:   source.Ref,
		Repo:  source.Repo,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]RawDocument, 0, len(paths))
	for _, p := range paths {
		content, sha, err := source.Reader.GetFileContent(ctx, bloggithub.GetFileContentArgs{
			Owner: source.Owner,
			Path:  p,
			Ref:   source.Ref,
			Repo:  source.Repo,
		})
		if err != nil {
			return nil, err
		}

		docs = append(docs, RawDocument{Content: content, Path: p, SHA: sha})
	}

	return docs, nil
}

// DirSource reads posts from a local directory tree
type DirSource struct {
	Root string
}

func (source *DirSource) List(ctx context.Context) ([]RawDocument, error) {
	docs := []RawDocument{}

	err := filepath.WalkDir(source.Root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if entry.IsDir() || !bloggithub.IsMarkdown(entry.Name()) {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}

		docs = append(docs, RawDocument{Content: string(data), Path: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading posts from %s: %w", source.Root, err)
	}

	return docs, nil
}
