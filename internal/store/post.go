// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inkpress/internal/models"
)

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, content, slug, published, category_id, created_at, updated_at`

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.Published,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll returns all posts ordered by creation time descending, each with
// its category denormalized in via a LEFT JOIN. Uncategorized posts have a
// nil Category.
func (s *PostStore) ListAll(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.content, p.slug, p.published, p.category_id,
		       p.created_at, p.updated_at,
		       c.id, c.name, c.slug, c.description
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		var p models.Post
		var catID sql.NullInt64
		var catName, catSlug sql.NullString
		var catDesc *string
		err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Slug, &p.Published,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
			&catID, &catName, &catSlug, &catDesc,
		)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		if catID.Valid {
			p.Category = &models.Category{
				ID:          catID.Int64,
				Name:        catName.String,
				Slug:        catSlug.String,
				Description: catDesc,
			}
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by ID. Returns nil if not found.
func (s *PostStore) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// ListByCategory returns all posts assigned to the given category,
// newest first.
func (s *PostStore) ListByCategory(ctx context.Context, categoryID int64) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE category_id = $1 ORDER BY created_at DESC`,
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Create inserts a new post and returns it with the generated ID. Both
// timestamps are stamped to the same instant so a fresh post always has
// created_at == updated_at.
func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	now := time.Now()
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, content, slug, published, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+postColumns,
		p.Title, p.Content, p.Slug, p.Published, p.CategoryID, now,
	)
	result, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Update rewrites a post's title, content, and slug, bumping updated_at.
// The category assignment is rewritten only when setCategory is true
// (a nil CategoryID then clears it); otherwise the stored value is kept.
// Returns nil if no row with the given ID exists.
func (s *PostStore) Update(ctx context.Context, p *models.Post, setCategory bool) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE posts SET
			title = $1, content = $2, slug = $3,
			category_id = CASE WHEN $4::boolean THEN $5::integer ELSE category_id END,
			updated_at = NOW()
		WHERE id = $6
		RETURNING `+postColumns,
		p.Title, p.Content, p.Slug, setCategory, p.CategoryID, p.ID,
	)
	result, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return result, nil
}

// Delete removes a post by ID. Reports whether a row was actually removed.
func (s *PostStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post rows affected: %w", err)
	}
	return n > 0, nil
}
