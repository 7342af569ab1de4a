// handler_test.go provides mock stores shared by the procedure handler
// tests. The mocks record the last write they received and return canned
// results, so tests can assert both directions of the contract.
package handlers

import (
	"context"

	"inkpress/internal/models"
)

type mockCategoryStore struct {
	Items          []models.Category
	ListErr        error
	FindByNameItem *models.Category
	FindByNameErr  error
	CreateErr      error
	UpdateItem     *models.Category
	UpdateErr      error
	DeleteOK       bool
	DeleteErr      error

	LastCreated  *models.Category
	LastUpdateID int64
	LastName     string
	LastSlug     string
	LastDeleteID int64
}

func (m *mockCategoryStore) ListAll(_ context.Context) ([]models.Category, error) {
	return m.Items, m.ListErr
}

func (m *mockCategoryStore) FindByName(_ context.Context, _ string) (*models.Category, error) {
	return m.FindByNameItem, m.FindByNameErr
}

func (m *mockCategoryStore) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	m.LastCreated = c
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	created := *c
	created.ID = 1
	return &created, nil
}

func (m *mockCategoryStore) Update(_ context.Context, id int64, name, slug string) (*models.Category, error) {
	m.LastUpdateID = id
	m.LastName = name
	m.LastSlug = slug
	return m.UpdateItem, m.UpdateErr
}

func (m *mockCategoryStore) Delete(_ context.Context, id int64) (bool, error) {
	m.LastDeleteID = id
	return m.DeleteOK, m.DeleteErr
}

type mockPostStore struct {
	Items      []models.Post
	ListErr    error
	ByIDItem   *models.Post
	ByIDErr    error
	ByCatItems []models.Post
	ByCatErr   error
	CreateErr  error
	UpdateItem *models.Post
	UpdateErr  error
	DeleteOK   bool
	DeleteErr  error

	LastCreated     *models.Post
	LastUpdated     *models.Post
	LastSetCategory bool
	LastByIDArg     int64
	LastByCatArg    int64
	LastDeleteID    int64
}

func (m *mockPostStore) ListAll(_ context.Context) ([]models.Post, error) {
	return m.Items, m.ListErr
}

func (m *mockPostStore) FindByID(_ context.Context, id int64) (*models.Post, error) {
	m.LastByIDArg = id
	return m.ByIDItem, m.ByIDErr
}

func (m *mockPostStore) ListByCategory(_ context.Context, categoryID int64) ([]models.Post, error) {
	m.LastByCatArg = categoryID
	return m.ByCatItems, m.ByCatErr
}

func (m *mockPostStore) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	m.LastCreated = p
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	created := *p
	created.ID = 1
	return &created, nil
}

func (m *mockPostStore) Update(_ context.Context, p *models.Post, setCategory bool) (*models.Post, error) {
	m.LastUpdated = p
	m.LastSetCategory = setCategory
	return m.UpdateItem, m.UpdateErr
}

func (m *mockPostStore) Delete(_ context.Context, id int64) (bool, error) {
	m.LastDeleteID = id
	return m.DeleteOK, m.DeleteErr
}

// newTestAPI wires an API around fresh mocks.
func newTestAPI() (*API, *mockCategoryStore, *mockPostStore) {
	cats := &mockCategoryStore{}
	posts := &mockPostStore{}
	return NewAPI(cats, posts), cats, posts
}
