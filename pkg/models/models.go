package models

import "time"

// Domain models matching the database schema in db/migrations/0001_create_posts.sql

// Post is the only persisted entity: a title/content record with a
// server-assigned id and creation timestamp. CreatedAt marshals as RFC3339,
// which is the serialization the admin UI expects.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" validate:"required"`
	Content   string    `json:"content" db:"content" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ContactMessage is a contact-form submission. It lives only for the duration
// of one request: it is relayed to the email provider and discarded.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}
