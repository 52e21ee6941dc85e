package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hauts/exhibition/pkg/models"
	"github.com/hauts/exhibition/pkg/repository"
)

func (r *SQLiteRepo) FindAll(ctx context.Context) ([]models.Post, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, title, content, created_at FROM posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, title, content, created_at FROM posts WHERE id = ?`, id)
	p, err := scanPost(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteRepo) Insert(ctx context.Context, p *models.Post) (*models.Post, error) {
	if p == nil {
		return nil, fmt.Errorf("post is nil")
	}

	created := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO posts (title, content, created_at) VALUES (?, ?, ?)`, p.Title, p.Content, created)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Post{
		ID:        id,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: time.UnixMilli(created).UTC(),
	}, nil
}

func (r *SQLiteRepo) UpdateByID(ctx context.Context, id int64, title, content string) (*models.Post, error) {
	res, err := r.conn.Exec(ctx, `UPDATE posts SET title = ?, content = ? WHERE id = ?`, title, content, id)
	if err != nil {
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *SQLiteRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// scanPost reads one posts row, converting the stored unix-millisecond
// timestamp into time.Time.
func scanPost(scan func(dest ...any) error) (models.Post, error) {
	var p models.Post
	var created int64
	if err := scan(&p.ID, &p.Title, &p.Content, &created); err != nil {
		return models.Post{}, err
	}
	p.CreatedAt = time.UnixMilli(created).UTC()
	return p, nil
}
