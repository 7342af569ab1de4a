// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities persisted by the blog service.
// JSON field names follow the public wire contract (camelCase).
package models

// Category is a labeled grouping that posts may optionally belong to.
// Its slug is derived from the name and regenerated on every rename.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}
