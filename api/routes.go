package api

import (
	"github.com/gorilla/mux"

	"github.com/hauts/exhibition/internal/config"
	"github.com/hauts/exhibition/internal/content"
	"github.com/hauts/exhibition/pkg/repository"
)

// AdminPrefix is the path prefix gated by Basic authentication.
const AdminPrefix = "/admin"

func SetupRoutes(cfg *config.Config, version, buildTime string, repo repository.PostRepo, sender Sender, catalog *content.Catalog) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(BasicAuthMiddleware(AdminPrefix, cfg.Auth))

	// Create handlers
	systemHandler := &SystemHandler{}
	postsHandler := NewPostsHandler(repo)
	contactHandler := NewContactHandler(sender)
	contentHandler := NewContentHandler(catalog)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Posts CRUD
	r.HandleFunc("/posts", postsHandler.ListPosts).Methods("GET")
	r.HandleFunc("/posts", postsHandler.CreatePost).Methods("POST")
	r.HandleFunc("/posts/{id}", postsHandler.GetPost).Methods("GET")
	r.HandleFunc("/posts/{id}", postsHandler.UpdatePost).Methods("PUT")
	r.HandleFunc("/posts/{id}", postsHandler.DeletePost).Methods("DELETE")

	// Contact relay
	r.HandleFunc("/contact", contactHandler.Submit).Methods("POST")

	// Content catalog (read-only)
	r.HandleFunc("/artists", contentHandler.ListArtists).Methods("GET")
	r.HandleFunc("/artists/{id}", contentHandler.GetArtist).Methods("GET")
	r.HandleFunc("/chapters", contentHandler.ListChapters).Methods("GET")
	r.HandleFunc("/chapters/{id}", contentHandler.GetChapter).Methods("GET")
	r.HandleFunc("/speakers", contentHandler.ListSpeakers).Methods("GET")
	r.HandleFunc("/speakers/{id}", contentHandler.GetSpeaker).Methods("GET")
	r.HandleFunc("/events", contentHandler.ListEvents).Methods("GET")
	r.HandleFunc("/events/{id}", contentHandler.GetEvent).Methods("GET")

	// Admin surface: post management behind the Basic-auth gate
	admin := r.PathPrefix(AdminPrefix).Subrouter()
	admin.HandleFunc("/posts", postsHandler.ListPosts).Methods("GET")
	admin.HandleFunc("/posts", postsHandler.CreatePost).Methods("POST")
	admin.HandleFunc("/posts/{id}", postsHandler.GetPost).Methods("GET")
	admin.HandleFunc("/posts/{id}", postsHandler.UpdatePost).Methods("PUT")
	admin.HandleFunc("/posts/{id}", postsHandler.DeletePost).Methods("DELETE")

	return r
}
