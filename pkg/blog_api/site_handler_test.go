package blogapi

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testWebhookSecret = "hook-secret"

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func (server *testServer) deliver(event, body, signature string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/webhooks/github", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-Hub-Signature-256", signature)

	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	return w
}

func pushPayload(path string) string {
	return `{"ref":"refs/heads/main","repository":{"full_name":"frankmeza/blog"},"commits":[{"added":["` + path + `"]}]}`
}

func TestSiteHandler_Webhook(t *testing.T) {
	t.Run("push to content invalidates the catalog", func(t *testing.T) {
		server := newTestServer(t)
		server.posts.On("Invalidate").Return()
		body := pushPayload("content/posts/new-post.md")

		w := server.deliver("push", body, sign(body))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"ignored":false,"invalidated":true}`, w.Body.String())
	})

	t.Run("push elsewhere is ignored", func(t *testing.T) {
		server := newTestServer(t)
		body := pushPayload("README.md")

		w := server.deliver("push", body, sign(body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ignored":true,"invalidated":false}`, w.Body.String())
		server.posts.AssertNotCalled(t, "Invalidate")
	})

	t.Run("other events are ignored", func(t *testing.T) {
		server := newTestServer(t)
		body := `{"zen":"Keep it logically awesome.","hook_id":1}`

		w := server.deliver("ping", body, sign(body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ignored":true,"invalidated":false}`, w.Body.String())
	})

	t.Run("bad signature is rejected", func(t *testing.T) {
		server := newTestServer(t)
		body := pushPayload("content/posts/new-post.md")

		w := server.deliver("push", body, sign("something else"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		server.posts.AssertNotCalled(t, "Invalidate")
	})
}

func TestSiteHandler_WebhookWithoutSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	posts := new(MockPostService)
	router := NewRouter(Services{ContentDir: "content/posts", Posts: posts})

	body := pushPayload("content/posts/new-post.md")
	req, _ := http.NewRequest("POST", "/webhooks/github", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", "push")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"webhook not configured"}`, w.Body.String())
	posts.AssertNotCalled(t, "Invalidate")
}
