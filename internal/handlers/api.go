// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the typed RPC procedures of the blog
// service. Queries are GET requests with query-string inputs; mutations
// are POST requests with JSON bodies. All responses are JSON.
package handlers

import (
	"context"

	"inkpress/internal/models"
)

// CategoryStore is the category persistence surface the handlers consume.
// Satisfied by *store.CategoryStore.
type CategoryStore interface {
	ListAll(ctx context.Context) ([]models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, id int64, name, slug string) (*models.Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PostStore is the post persistence surface the handlers consume.
// Satisfied by *store.PostStore.
type PostStore interface {
	ListAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Post, error)
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	Update(ctx context.Context, p *models.Post, setCategory bool) (*models.Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// API groups the RPC procedure handlers and their dependencies.
type API struct {
	categories CategoryStore
	posts      PostStore
}

// NewAPI creates a new API handler group with the given stores.
func NewAPI(categories CategoryStore, posts PostStore) *API {
	return &API{categories: categories, posts: posts}
}

// deleteResult is the response body of the delete procedures. Deleted is
// false when no row with the given id existed, so callers can tell
// "removed" apart from "nothing there".
type deleteResult struct {
	Deleted bool `json:"deleted"`
}
