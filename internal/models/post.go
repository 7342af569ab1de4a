// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Post is a content entity with a title, body, optional category, and a
// publication flag. A nil CategoryID means the post is uncategorized.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Slug       string    `json:"slug"`
	Published  bool      `json:"published"`
	CategoryID *int64    `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Category is populated by list queries that join the categories
	// table. It is nil for uncategorized posts and for lookups that
	// do not join.
	Category *Category `json:"category,omitempty"`
}
