package api_test

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hauts/exhibition/api"
	"github.com/hauts/exhibition/internal/config"
)

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := api.LoggingMiddleware(next)
	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if res.Header.Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header to be set")
	}
	b, _ := io.ReadAll(res.Body)
	if string(b) != "ok" {
		t.Fatalf("unexpected body: %q", string(b))
	}
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := api.CORSMiddleware(next)

	// OPTIONS should return 204 and not call next
	reqOpt := httptest.NewRequest(http.MethodOptions, "/cors", nil)
	wOpt := httptest.NewRecorder()
	handler.ServeHTTP(wOpt, reqOpt)
	resOpt := wOpt.Result()
	defer resOpt.Body.Close()
	if resOpt.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for OPTIONS, got %d", resOpt.StatusCode)
	}
	if got := resOpt.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header set, got %q", got)
	}

	// GET should pass through and set headers
	reqGet := httptest.NewRequest(http.MethodGet, "/cors", nil)
	wGet := httptest.NewRecorder()
	handler.ServeHTTP(wGet, reqGet)
	resGet := wGet.Result()
	defer resGet.Body.Close()
	if resGet.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for GET, got %d", resGet.StatusCode)
	}
	if got := resGet.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "PUT") {
		t.Fatalf("expected Allow-Methods to include PUT, got %q", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	// handler that panics
	pan := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := api.RecoveryMiddleware(pan)
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 from panic recovery, got %d", res.StatusCode)
	}

	// normal handler should pass through
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler2 := api.RecoveryMiddleware(ok)
	w2 := httptest.NewRecorder()
	handler2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w2.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for normal path, got %d", w2.Result().StatusCode)
	}
}

func basicToken(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestBasicAuthMiddleware(t *testing.T) {
	auth := config.AuthConfig{User: "admin", Pass: "s3cret", Realm: "Secure Area"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := api.BasicAuthMiddleware("/admin", auth)(next)

	cases := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{name: "NonAdminBypasses", path: "/posts", wantStatus: http.StatusOK},
		{name: "MissingHeader", path: "/admin/posts", wantStatus: http.StatusUnauthorized, wantBody: "authentication required"},
		{name: "WrongPassword", path: "/admin/posts", authHeader: basicToken("admin", "nope"), wantStatus: http.StatusUnauthorized, wantBody: "authentication failed"},
		{name: "WrongUser", path: "/admin/posts", authHeader: basicToken("nope", "s3cret"), wantStatus: http.StatusUnauthorized, wantBody: "authentication failed"},
		{name: "NotBase64", path: "/admin/posts", authHeader: "Basic %%%", wantStatus: http.StatusUnauthorized, wantBody: "authentication failed"},
		{name: "Valid", path: "/admin/posts", authHeader: basicToken("admin", "s3cret"), wantStatus: http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, c.path, nil)
			if c.authHeader != "" {
				req.Header.Set("Authorization", c.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != c.wantStatus {
				t.Fatalf("%s: want %d got %d", c.name, c.wantStatus, res.StatusCode)
			}
			if c.wantStatus == http.StatusUnauthorized {
				if got := res.Header.Get("WWW-Authenticate"); !strings.Contains(got, `Basic realm="Secure Area"`) {
					t.Fatalf("%s: missing challenge header, got %q", c.name, got)
				}
			}
			if c.wantBody != "" {
				b, _ := io.ReadAll(res.Body)
				if !strings.Contains(string(b), c.wantBody) {
					t.Fatalf("%s: body %q missing %q", c.name, string(b), c.wantBody)
				}
			}
		})
	}
}

func TestBasicAuthMiddleware_EmptyCredentialsRejectEverything(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := api.BasicAuthMiddleware("/admin", config.AuthConfig{Realm: "Secure Area"})(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	req.Header.Set("Authorization", basicToken("", ""))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unconfigured credentials, got %d", w.Result().StatusCode)
	}
}
