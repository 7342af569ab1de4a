package handlers

import (
	"strings"
	"unicode/utf8"

	"inkpress/internal/apperror"
	"inkpress/internal/slug"
)

// Validation limits for category and post fields.
const (
	minCategoryNameLen = 2
	maxCategoryNameLen = 200
	maxDescriptionLen  = 1_000
	maxTitleLen        = 300
	maxContentLen      = 100_000
)

// validateCategoryName checks a (pre-trimmed) category name.
func validateCategoryName(name string) *apperror.AppError {
	if name == "" {
		return apperror.Validation("name is required")
	}
	if utf8.RuneCountInString(name) < minCategoryNameLen {
		return apperror.Validation("category name must be at least 2 characters")
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return apperror.Validation("category name is too long (max 200 characters)")
	}
	return nil
}

// validatePost checks post title and content.
func validatePost(title, content string) *apperror.AppError {
	if strings.TrimSpace(title) == "" {
		return apperror.Validation("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return apperror.Validation("title is too long (max 300 characters)")
	}
	if strings.TrimSpace(content) == "" {
		return apperror.Validation("content is required")
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return apperror.Validation("content is too long (max 100,000 characters)")
	}
	return nil
}

// slugFrom derives the slug for the given text, rejecting the degenerate
// case where nothing URL-safe remains.
func slugFrom(text string) (string, *apperror.AppError) {
	s := slug.Generate(text)
	if s == "" {
		return "", apperror.Validation("must contain at least one letter or digit")
	}
	return s, nil
}

// normalizeDescription maps blank descriptions to nil so they persist
// as NULL.
func normalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*desc)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
