package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// devCategory is one row of the development seed data.
type devCategory struct {
	name        string
	slug        string
	description string
}

// devCategories is the development seed set: the seven runtime defaults
// plus Education. Inserts are conflict-tolerant so the seed can run
// against a database the server has already populated.
var devCategories = []devCategory{
	{"Technology", "technology", "Posts about technology, programming, and digital innovations"},
	{"Design", "design", "UI/UX design, graphic design, and creative content"},
	{"Business", "business", "Entrepreneurship, startups, and business strategies"},
	{"Lifestyle", "lifestyle", "Personal development, health, and lifestyle tips"},
	{"Travel", "travel", "Travel guides, experiences, and destinations"},
	{"Food", "food", "Recipes, restaurant reviews, and culinary experiences"},
	{"Health", "health", "Health tips, fitness, and wellness content"},
	{"Education", "education", "Learning resources, tutorials, and educational content"},
}

// Seed populates the database with initial development data. It inserts
// the default category set, skipping any slug that already exists, so
// repeated runs are harmless.
func Seed(db *sql.DB) error {
	for _, c := range devCategories {
		_, err := db.Exec(`
			INSERT INTO categories (name, slug, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO NOTHING
		`, c.name, c.slug, c.description)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.name, err)
		}
	}

	slog.Info("database seeded with default categories", "count", len(devCategories))
	return nil
}
