package mock

import (
	"context"

	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// PlaceRepository is a mock implementation of repositories.PlaceRepository
type PlaceRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc    func(ctx context.Context) ([]models.Place, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Place, error)
	CreateFunc  func(ctx context.Context, place *models.Place) error
	UpdateFunc  func(ctx context.Context, place *models.Place) error
	DeleteFunc  func(ctx context.Context, id int64) error
	CountFunc   func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewPlaceRepository creates a new mock place repository
func NewPlaceRepository() *PlaceRepository {
	return &PlaceRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *PlaceRepository) List(ctx context.Context) ([]models.Place, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Place{}, nil
}

func (m *PlaceRepository) GetByID(ctx context.Context, id int64) (*models.Place, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	m.Calls["Create"] = append(m.Calls["Create"], place)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, place)
	}
	return nil
}

func (m *PlaceRepository) Update(ctx context.Context, place *models.Place) error {
	m.Calls["Update"] = append(m.Calls["Update"], place)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, place)
	}
	return nil
}

func (m *PlaceRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *PlaceRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Ensure PlaceRepository implements the interface
var _ repositories.PlaceRepository = (*PlaceRepository)(nil)
