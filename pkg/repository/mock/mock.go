package mock

import (
	"context"
	"sort"
	"time"

	"github.com/hauts/exhibition/pkg/models"
	"github.com/hauts/exhibition/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	PostRepo *mockPostRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		PostRepo: &mockPostRepo{},
	}
}

var _ repository.PostRepo = (*mockPostRepo)(nil)

type mockPostRepo struct {
	Stored []models.Post
	nextID int64

	FindAllErr error
	FindErr    error
	InsertErr  error
	UpdateErr  error
	DeleteErr  error
}

func (m *mockPostRepo) FindAll(ctx context.Context) ([]models.Post, error) {
	if m.FindAllErr != nil {
		return nil, m.FindAllErr
	}
	out := make([]models.Post, len(m.Stored))
	copy(out, m.Stored)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *mockPostRepo) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			p := m.Stored[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockPostRepo) Insert(ctx context.Context, p *models.Post) (*models.Post, error) {
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}
	m.nextID++
	stored := models.Post{
		ID:        m.nextID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: time.Now().UTC(),
	}
	m.Stored = append(m.Stored, stored)
	return &stored, nil
}

func (m *mockPostRepo) UpdateByID(ctx context.Context, id int64, title, content string) (*models.Post, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored[i].Title = title
			m.Stored[i].Content = content
			p := m.Stored[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockPostRepo) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
