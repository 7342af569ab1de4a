// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkpress/internal/apperror"
	"inkpress/internal/models"
)

type postCreateRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"categoryId"`
	IsDraft    bool   `json:"isDraft"`
}

// optionalID distinguishes an absent JSON field from an explicit null:
// Set is true whenever the field appeared in the body, Value carries its
// content (nil for null).
type optionalID struct {
	Set   bool
	Value *int64
}

func (o *optionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Value)
}

type postUpdateRequest struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID optionalID `json:"categoryId"`
}

type postDeleteRequest struct {
	ID int64 `json:"id"`
}

// PostAll handles GET /rpc/post.all.
// Returns every post newest first, each with its category embedded.
func (a *API) PostAll(w http.ResponseWriter, r *http.Request) {
	items, err := a.posts.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	writeJSON(w, http.StatusOK, items)
}

// PostByID handles GET /rpc/post.byId?id=N.
func (a *API) PostByID(w http.ResponseWriter, r *http.Request) {
	id, vErr := queryID(r, "id")
	if vErr != nil {
		writeError(w, r, vErr)
		return
	}

	post, err := a.posts.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if post == nil {
		writeError(w, r, apperror.NotFound("post", id))
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// PostByCategory handles GET /rpc/post.byCategory?categoryId=N.
// An unknown category simply yields an empty list.
func (a *API) PostByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, vErr := queryID(r, "categoryId")
	if vErr != nil {
		writeError(w, r, vErr)
		return
	}

	items, err := a.posts.ListByCategory(r.Context(), categoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	writeJSON(w, http.StatusOK, items)
}

// PostCreate handles POST /rpc/post.create.
// published is the inverse of isDraft, which defaults to false. The slug
// is derived from the title; a duplicate slug surfaces as a store error,
// uniqueness is not pre-checked.
func (a *API) PostCreate(w http.ResponseWriter, r *http.Request) {
	var req postCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if vErr := validatePost(req.Title, req.Content); vErr != nil {
		writeError(w, r, vErr)
		return
	}
	postSlug, vErr := slugFrom(req.Title)
	if vErr != nil {
		writeError(w, r, vErr)
		return
	}

	created, err := a.posts.Create(r.Context(), &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		Slug:       postSlug,
		Published:  !req.IsDraft,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// PostUpdate handles POST /rpc/post.update.
// The slug is regenerated from the new title. Omitting categoryId leaves
// the stored category untouched; an explicit null clears it. A missing
// id yields 404.
func (a *API) PostUpdate(w http.ResponseWriter, r *http.Request) {
	var req postUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID <= 0 {
		writeError(w, r, apperror.Validation("id is required"))
		return
	}

	if vErr := validatePost(req.Title, req.Content); vErr != nil {
		writeError(w, r, vErr)
		return
	}
	postSlug, vErr := slugFrom(req.Title)
	if vErr != nil {
		writeError(w, r, vErr)
		return
	}

	updated, err := a.posts.Update(r.Context(), &models.Post{
		ID:         req.ID,
		Title:      req.Title,
		Content:    req.Content,
		Slug:       postSlug,
		CategoryID: req.CategoryID.Value,
	}, req.CategoryID.Set)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if updated == nil {
		writeError(w, r, apperror.NotFound("post", req.ID))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// PostDelete handles POST /rpc/post.delete.
func (a *API) PostDelete(w http.ResponseWriter, r *http.Request) {
	var req postDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID <= 0 {
		writeError(w, r, apperror.Validation("id is required"))
		return
	}

	deleted, err := a.posts.Delete(r.Context(), req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResult{Deleted: deleted})
}

// queryID parses a positive integer id from the named query parameter.
func queryID(r *http.Request, param string) (int64, *apperror.AppError) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return 0, apperror.Validation(param + " is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(param + " must be a positive integer")
	}
	return id, nil
}
