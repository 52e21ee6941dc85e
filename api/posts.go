package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/hauts/exhibition/pkg/models"
	"github.com/hauts/exhibition/pkg/repository"
)

type PostsHandler struct {
	repo     repository.PostRepo
	validate *validator.Validate
}

func NewPostsHandler(repo repository.PostRepo) *PostsHandler {
	return &PostsHandler{
		repo:     repo,
		validate: validator.New(),
	}
}

type postPayload struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *PostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.FindAll(r.Context())
	if err != nil {
		logger.Error("list posts", slog.Any("err", err))
		writeError(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	writeJSON(w, posts, http.StatusOK)
}

func (h *PostsHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, "title and content are required", http.StatusBadRequest)
		return
	}

	created, err := h.repo.Insert(r.Context(), &models.Post{Title: req.Title, Content: req.Content})
	if err != nil {
		logger.Error("create post", slog.Any("err", err))
		writeError(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, created, http.StatusOK)
}

func (h *PostsHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	post, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Post not found", http.StatusNotFound)
			return
		}
		logger.Error("get post", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *PostsHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	var req postPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, "title and content are required", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateByID(r.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Post not found", http.StatusNotFound)
			return
		}
		logger.Error("update post", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *PostsHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Post not found", http.StatusNotFound)
			return
		}
		logger.Error("delete post", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"message": "deleted"}, http.StatusOK)
}

// postID parses the {id} path segment. A malformed id is a client error, not
// a lookup miss.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
