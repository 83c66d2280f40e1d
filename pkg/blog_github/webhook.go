package bloggithub

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/google/go-github/v57/github"
)

var (
	// ErrIgnoredEvent is returned for valid deliveries that are not pushes
	ErrIgnoredEvent = errors.New("ignored webhook event")
	// ErrNoWebhookSecret is returned when no secret is configured, since
	// unsigned deliveries cannot be trusted
	ErrNoWebhookSecret = errors.New("webhook secret not configured")
)

// PushEvent is the part of a push delivery the blog cares about
type PushEvent struct {
	Paths      []string
	Ref        string
	Repository string
}

// ParsePushEvent validates a webhook delivery and extracts the pushed paths
func ParsePushEvent(r *http.Request, secret string) (PushEvent, error) {
	if secret == "" {
		return PushEvent{}, ErrNoWebhookSecret
	}

	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return PushEvent{}, fmt.Errorf("validating payload: %w", err)
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return PushEvent{}, fmt.Errorf("parsing webhook: %w", err)
	}

	push, ok := event.(*github.PushEvent)
	if !ok {
		return PushEvent{}, fmt.Errorf("%w: %s", ErrIgnoredEvent, github.WebHookType(r))
	}

	seen := map[string]bool{}
	for _, commit := range push.Commits {
		for _, group := range [][]string{commit.Added, commit.Modified, commit.Removed} {
			for _, p := range group {
				seen[p] = true
			}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return PushEvent{
		Paths:      paths,
		Ref:        push.GetRef(),
		Repository: push.GetRepo().GetFullName(),
	}, nil
}

// Touches reports whether the push changed anything under dir.
// A push without commit details is assumed to touch everything.
func (event PushEvent) Touches(dir string) bool {
	dir = strings.TrimPrefix(path.Clean("/"+dir), "/")
	if len(event.Paths) == 0 || dir == "" {
		return true
	}

	prefix := dir + "/"
	for _, p := range event.Paths {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}

	return false
}
