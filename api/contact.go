package api

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/hauts/exhibition/pkg/models"
)

// Sender relays one contact message to the email provider.
type Sender interface {
	Send(ctx context.Context, msg models.ContactMessage) error
}

type ContactHandler struct {
	sender   Sender
	validate *validator.Validate
}

func NewContactHandler(sender Sender) *ContactHandler {
	return &ContactHandler{
		sender:   sender,
		validate: validator.New(),
	}
}

// Submit accepts a contact-form submission and forwards it as a single
// fire-and-forget send. Provider errors stay out of the response body; the
// caller only learns that the send failed.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, map[string]string{"status": "error", "message": "invalid request"}, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(msg); err != nil {
		writeJSON(w, map[string]string{"status": "error", "message": "missing fields"}, http.StatusBadRequest)
		return
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		logger.Error("contact relay", slog.Any("err", err))
		writeJSON(w, map[string]string{"status": "error", "message": "Email not sent"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "OK"}, http.StatusOK)
}
