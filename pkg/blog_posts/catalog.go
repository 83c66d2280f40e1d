package blogposts

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrPostNotFound is returned when no published post has the requested slug
var ErrPostNotFound = errors.New("post not found")

// Query filters a post listing. Zero values match everything.
type Query struct {
	Featured bool
	Search   string
	Tag      string
}

// Catalog serves published posts from a Source, cached for a fixed TTL
type Catalog struct {
	logger *zap.Logger
	now    func() time.Time
	source Source
	ttl    time.Duration

	mu       sync.Mutex
	loadedAt time.Time
	posts    []*Post
}

func NewCatalog(source Source, ttl time.Duration, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Catalog{
		logger: logger,
		now:    time.Now,
		source: source,
		ttl:    ttl,
	}
}

// Posts returns the published posts matching query, newest first
func (catalog *Catalog) Posts(ctx context.Context, query Query) ([]*Post, error) {
	posts, err := catalog.load(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	tag := strings.TrimSpace(query.Tag)

	matched := []*Post{}
	for _, post := range posts {
		if query.Featured && !post.Featured {
			continue
		}

		if tag != "" && !hasTag(post.Tags, tag) {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(post.Title), search) &&
			!strings.Contains(strings.ToLower(post.Content), search) {
			continue
		}

		matched = append(matched, post)
	}

	return matched, nil
}

// Post returns the published post with the given slug
func (catalog *Catalog) Post(ctx context.Context, slug string) (*Post, error) {
	posts, err := catalog.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.Slug == slug {
			return post, nil
		}
	}

	return nil, ErrPostNotFound
}

// Tags returns every tag used by a published post, sorted
func (catalog *Catalog) Tags(ctx context.Context) ([]string, error) {
	posts, err := catalog.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	tags := []string{}
	for _, post := range posts {
		for _, tag := range post.Tags {
			if tag == "" || seen[tag] {
				continue
			}

			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	sort.Strings(tags)
	return tags, nil
}

// Invalidate drops the cached posts so the next read reloads the source
func (catalog *Catalog) Invalidate() {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	catalog.posts = nil
	catalog.loadedAt = time.Time{}
}

func (catalog *Catalog) load(ctx context.Context) ([]*Post, error) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	if catalog.posts != nil && catalog.now().Sub(catalog.loadedAt) < catalog.ttl {
		return catalog.posts, nil
	}

	docs, err := catalog.source.List(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*Post, 0, len(docs))
	slugs := map[string]bool{}

	for _, doc := range docs {
		post, err := ParsePost(doc)
		if err != nil {
			catalog.logger.Warn("skipping post", zap.String("path", doc.Path), zap.Error(err))
			continue
		}

		if post.IsDraft {
			continue
		}

		if slugs[post.Slug] {
			catalog.logger.Warn("duplicate slug", zap.String("path", doc.Path), zap.String("slug", post.Slug))
			continue
		}

		slugs[post.Slug] = true
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].PublishedAt.After(posts[j].PublishedAt)
		}
		return posts[i].Title < posts[j].Title
	})

	catalog.logger.Debug("loaded posts", zap.Int("count", len(posts)))

	catalog.posts = posts
	catalog.loadedAt = catalog.now()

	return posts, nil
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}

	return false
}
