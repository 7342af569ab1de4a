// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"inkpress/internal/apperror"
	"inkpress/internal/models"
)

type categoryCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type categoryUpdateRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type categoryDeleteRequest struct {
	ID int64 `json:"id"`
}

// CategoryAll handles GET /rpc/category.all.
// Returns every category ordered by name; an empty table is seeded with
// the default set by the store before the list is returned.
func (a *API) CategoryAll(w http.ResponseWriter, r *http.Request) {
	items, err := a.categories.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CategoryCreate handles POST /rpc/category.create.
// Rejects names shorter than 2 characters and, case-insensitively,
// names that already exist.
func (a *API) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if vErr := validateCategoryName(name); vErr != nil {
		writeError(w, r, vErr)
		return
	}
	catSlug, vErr := slugFrom(name)
	if vErr != nil {
		writeError(w, r, vErr)
		return
	}

	existing, err := a.categories.FindByName(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if existing != nil {
		writeError(w, r, apperror.Conflict("a category with this name already exists"))
		return
	}

	created, err := a.categories.Create(r.Context(), &models.Category{
		Name:        name,
		Slug:        catSlug,
		Description: normalizeDescription(req.Description),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CategoryUpdate handles POST /rpc/category.update.
// Renaming regenerates the slug. A missing id yields 404.
func (a *API) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	var req categoryUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID <= 0 {
		writeError(w, r, apperror.Validation("id is required"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if vErr := validateCategoryName(name); vErr != nil {
		writeError(w, r, vErr)
		return
	}
	catSlug, vErr := slugFrom(name)
	if vErr != nil {
		writeError(w, r, vErr)
		return
	}

	updated, err := a.categories.Update(r.Context(), req.ID, name, catSlug)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if updated == nil {
		writeError(w, r, apperror.NotFound("category", req.ID))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CategoryDelete handles POST /rpc/category.delete.
// Deletion is unconditional and does not cascade to posts; the response
// reports whether a row was removed.
func (a *API) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	var req categoryDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID <= 0 {
		writeError(w, r, apperror.Validation("id is required"))
		return
	}

	deleted, err := a.categories.Delete(r.Context(), req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResult{Deleted: deleted})
}
