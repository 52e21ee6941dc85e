package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hauts/exhibition/pkg/models"
	"github.com/hauts/exhibition/pkg/repository/mock"
)

func TestAdminRoutesAreGated(t *testing.T) {
	h := newTestRouter(t, mock.NewMocks(), nil)

	// no credentials
	res := doJSON(t, h, http.MethodGet, "/admin/posts", nil)
	defer res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", res.StatusCode)
	}
	if got := res.Header.Get("WWW-Authenticate"); got == "" {
		t.Fatalf("expected challenge header on 401")
	}

	// wrong credentials
	req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	req.Header.Set("Authorization", basicToken("admin", "wrong"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong credentials, got %d", w.Result().StatusCode)
	}

	// valid credentials reach the underlying handler
	body, _ := json.Marshal(map[string]string{"title": "admin post", "content": "body"})
	req = httptest.NewRequest(http.MethodPost, "/admin/posts", bytes.NewBuffer(body))
	req.Header.Set("Authorization", basicToken("admin", "s3cret"))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	res2 := w.Result()
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(res2.Body)
		t.Fatalf("expected 200 with valid credentials, got %d: %s", res2.StatusCode, b)
	}
	var created models.Post
	if err := json.NewDecoder(res2.Body).Decode(&created); err != nil {
		t.Fatalf("decode created post: %v", err)
	}
	if created.Title != "admin post" {
		t.Fatalf("unexpected created post: %#v", created)
	}
}

func TestPublicRoutesBypassGate(t *testing.T) {
	h := newTestRouter(t, mock.NewMocks(), nil)

	for _, path := range []string{"/posts", "/artists", "/chapters", "/speakers", "/events", "/health"} {
		res := doJSON(t, h, http.MethodGet, path, nil)
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200 without credentials, got %d", path, res.StatusCode)
		}
	}
}
