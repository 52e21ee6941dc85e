package repository

import (
	"context"
	"errors"

	"github.com/hauts/exhibition/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("not found")

type PostRepo interface {
	// FindAll returns every post ordered by creation time descending.
	FindAll(ctx context.Context) ([]models.Post, error)
	// FindByID returns ErrNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	// Insert persists p and returns the stored post with its assigned id
	// and creation timestamp filled in.
	Insert(ctx context.Context, p *models.Post) (*models.Post, error)
	// UpdateByID overwrites title and content of the matching row and
	// returns the updated post. Returns ErrNotFound when no row matches.
	UpdateByID(ctx context.Context, id int64, title, content string) (*models.Post, error)
	// DeleteByID removes the row permanently. Returns ErrNotFound when no
	// row matches.
	DeleteByID(ctx context.Context, id int64) error
}
