package store

import (
	"context"
	"testing"

	"inkpress/internal/models"
)

func TestCategoryStore_CRUD(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	t.Cleanup(func() {
		cleanCategories(t, db, "store-test-gardening", "store-test-woodworking")
	})

	// Create
	created, err := s.Create(ctx, &models.Category{
		Name:        "Store Test Gardening",
		Slug:        "store-test-gardening",
		Description: strPtr("all about gardens"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("Create returned zero ID")
	}
	if created.Slug != "store-test-gardening" {
		t.Errorf("Slug = %q", created.Slug)
	}
	if created.Description == nil || *created.Description != "all about gardens" {
		t.Errorf("Description = %v", created.Description)
	}

	// FindByName is case-insensitive.
	found, err := s.FindByName(ctx, "STORE TEST GARDENING")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Errorf("FindByName(upper) = %+v, want id %d", found, created.ID)
	}

	// FindByName returns nil for a missing name, not an error.
	missing, err := s.FindByName(ctx, "no such category at all")
	if err != nil {
		t.Fatalf("FindByName missing: %v", err)
	}
	if missing != nil {
		t.Errorf("FindByName missing = %+v, want nil", missing)
	}

	// Update renames and re-slugs; the description stays.
	updated, err := s.Update(ctx, created.ID, "Store Test Woodworking", "store-test-woodworking")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("Update returned nil for existing row")
	}
	if updated.Name != "Store Test Woodworking" || updated.Slug != "store-test-woodworking" {
		t.Errorf("Update result = %+v", updated)
	}
	if updated.Description == nil || *updated.Description != "all about gardens" {
		t.Errorf("Update clobbered description: %v", updated.Description)
	}

	// Update on a missing ID reports nil without error.
	gone, err := s.Update(ctx, -1, "Nothing", "nothing")
	if err != nil {
		t.Fatalf("Update missing: %v", err)
	}
	if gone != nil {
		t.Errorf("Update missing = %+v, want nil", gone)
	}

	// Delete reports whether a row was removed.
	deleted, err := s.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("Delete existing row reported false")
	}

	deleted, err = s.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if deleted {
		t.Error("Delete of already-removed row reported true")
	}
}

func TestCategoryStore_ListAllSeedsDefaults(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	// This test owns the categories table: seeding only triggers when the
	// table is empty. Posts keep their rows (category_id goes NULL).
	if _, err := db.Exec("DELETE FROM post_categories"); err != nil {
		t.Fatalf("clear post_categories: %v", err)
	}
	if _, err := db.Exec("DELETE FROM categories"); err != nil {
		t.Fatalf("clear categories: %v", err)
	}

	first, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(first) != len(defaultCategories) {
		t.Fatalf("ListAll on empty table returned %d categories, want %d", len(first), len(defaultCategories))
	}

	// Ordered by name ascending.
	wantOrder := []string{"Business", "Design", "Food", "Health", "Lifestyle", "Technology", "Travel"}
	for i, want := range wantOrder {
		if first[i].Name != want {
			t.Errorf("ListAll[%d].Name = %q, want %q", i, first[i].Name, want)
		}
	}

	// A second call must not seed again.
	second, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("second ListAll: %v", err)
	}
	if len(second) != len(defaultCategories) {
		t.Errorf("second ListAll returned %d categories, want %d", len(second), len(defaultCategories))
	}
}

func TestCategoryStore_DeleteKeepsPosts(t *testing.T) {
	db := testDB(t)
	cs := NewCategoryStore(db)
	ps := NewPostStore(db)
	ctx := context.Background()

	t.Cleanup(func() {
		cleanPosts(t, db, "store-test-orphan-post")
		cleanCategories(t, db, "store-test-doomed")
	})

	cat, err := cs.Create(ctx, &models.Category{Name: "Store Test Doomed", Slug: "store-test-doomed"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	post, err := ps.Create(ctx, &models.Post{
		Title:      "Store Test Orphan Post",
		Content:    "body",
		Slug:       "store-test-orphan-post",
		Published:  true,
		CategoryID: &cat.ID,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := cs.Delete(ctx, cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	// The post survives the category delete with its reference cleared.
	survivor, err := ps.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if survivor == nil {
		t.Fatal("post was deleted along with its category")
	}
	if survivor.CategoryID != nil {
		t.Errorf("CategoryID = %v, want nil after category delete", *survivor.CategoryID)
	}
}
