package bloggithub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-token").WithBaseURL(srv.URL)
	require.NoError(t, err)

	return client
}

func TestListDirectory_FiltersMarkdownFiles(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/frank/blog/contents/posts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "main", r.URL.Query().Get("ref"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"type": "file", "name": "b-post.md", "path": "posts/b-post.md"},
			{"type": "file", "name": "a-post.markdown", "path": "posts/a-post.markdown"},
			{"type": "file", "name": "cover.png", "path": "posts/cover.png"},
			{"type": "dir", "name": "drafts.md", "path": "posts/drafts.md"},
		})
	})

	client := newTestClient(t, mux)
	paths, err := client.ListDirectory(context.Background(), ListDirectoryArgs{
		Owner: "frank",
		Path:  "posts",
		Ref:   "main",
		Repo:  "blog",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"posts/a-post.markdown", "posts/b-post.md"}, paths)
}

func TestGetFileContent_DecodesBase64(t *testing.T) {
	body := "---\ntitle: Hello\n---\nBody text"

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/frank/blog/contents/posts/hello.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"type":     "file",
			"name":     "hello.md",
			"path":     "posts/hello.md",
			"sha":      "abc123",
			"encoding": "base64",
			"content":  base64.StdEncoding.EncodeToString([]byte(body)),
		})
	})

	client := newTestClient(t, mux)
	content, sha, err := client.GetFileContent(context.Background(), GetFileContentArgs{
		Owner: "frank",
		Path:  "posts/hello.md",
		Repo:  "blog",
	})

	require.NoError(t, err)
	assert.Equal(t, body, content)
	assert.Equal(t, "abc123", sha)
}

func TestGetFileContent_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/frank/blog/contents/missing.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	})

	client := newTestClient(t, mux)
	_, _, err := client.GetFileContent(context.Background(), GetFileContentArgs{
		Owner: "frank",
		Path:  "missing.md",
		Repo:  "blog",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting file content")
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("post.md"))
	assert.True(t, IsMarkdown("POST.MD"))
	assert.True(t, IsMarkdown("post.mdx"))
	assert.False(t, IsMarkdown("post.txt"))
	assert.False(t, IsMarkdown("README"))
}
