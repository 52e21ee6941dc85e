package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hauts/exhibition/internal/config"
)

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)
		logger.Info("request",
			slog.String("id", reqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// BasicAuthMiddleware gates every request whose path starts with prefix
// behind HTTP Basic authentication against the statically configured
// credentials. Other paths pass through untouched. Empty configured
// credentials reject every gated request.
func BasicAuthMiddleware(prefix string, auth config.AuthConfig) mux.MiddlewareFunc {
	challenge := fmt.Sprintf("Basic realm=%q", auth.Realm)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			if r.Header.Get("Authorization") == "" {
				w.Header().Set("WWW-Authenticate", challenge)
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok || !credentialsMatch(auth, user, pass) {
				w.Header().Set("WWW-Authenticate", challenge)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func credentialsMatch(auth config.AuthConfig, user, pass string) bool {
	if auth.User == "" || auth.Pass == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(auth.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(auth.Pass)) == 1
	return userOK && passOK
}
