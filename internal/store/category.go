// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer for categories and posts.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"inkpress/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	if err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}

// defaultCategory is one entry of the fixed default set created when the
// categories table is empty.
type defaultCategory struct {
	name        string
	slug        string
	description string
}

// defaultCategories is the fixed set seeded by ListAll on an empty table.
var defaultCategories = []defaultCategory{
	{"Technology", "technology", "Posts about technology, programming, and digital innovations"},
	{"Design", "design", "UI/UX design, graphic design, and creative content"},
	{"Business", "business", "Entrepreneurship, startups, and business strategies"},
	{"Lifestyle", "lifestyle", "Personal development, health, and lifestyle tips"},
	{"Travel", "travel", "Travel guides, experiences, and destinations"},
	{"Food", "food", "Recipes, restaurant reviews, and culinary experiences"},
	{"Health", "health", "Health tips, fitness, and wellness content"},
}

// ListAll returns all categories ordered by name ascending. When the table
// is empty it seeds the fixed default set and re-queries. Seeding failures
// are logged but never fatal: the caller receives whatever rows exist.
func (s *CategoryStore) ListAll(ctx context.Context) ([]models.Category, error) {
	items, err := s.queryAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		s.seedDefaults(ctx)
		items, err = s.queryAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	return items, nil
}

// queryAll fetches every category ordered by name.
func (s *CategoryStore) queryAll(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// seedDefaults inserts the default categories one by one, stopping at the
// first failure. Errors are logged only; read availability is prioritized
// over seed completeness.
func (s *CategoryStore) seedDefaults(ctx context.Context) {
	for _, d := range defaultCategories {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO categories (name, slug, description)
			VALUES ($1, $2, $3)
		`, d.name, d.slug, d.description)
		if err != nil {
			slog.Error("seed default categories failed", "category", d.name, "error", err)
			return
		}
	}
	slog.Info("seeded default categories", "count", len(defaultCategories))
}

// FindByName retrieves a category by case-insensitive name match.
// Returns nil if not found.
func (s *CategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE LOWER(name) = LOWER($1)`, name)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it with the generated ID.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update renames a category, rewriting its slug. The description is left
// untouched. Returns nil if no row with the given ID exists.
func (s *CategoryStore) Update(ctx context.Context, id int64, name, slug string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE categories SET name = $1, slug = $2
		WHERE id = $3
		RETURNING `+categoryColumns,
		name, slug, id,
	)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes a category by ID. Referencing posts are kept; their
// category_id is cleared by the schema (ON DELETE SET NULL). Reports
// whether a row was actually removed.
func (s *CategoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete category rows affected: %w", err)
	}
	return n > 0, nil
}
