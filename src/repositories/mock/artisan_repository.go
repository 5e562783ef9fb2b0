package mock

import (
	"context"

	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// ArtisanRepository is a mock implementation of repositories.ArtisanRepository
type ArtisanRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc    func(ctx context.Context) ([]models.Artisan, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Artisan, error)
	CreateFunc  func(ctx context.Context, artisan *models.Artisan) error
	CountFunc   func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewArtisanRepository creates a new mock artisan repository
func NewArtisanRepository() *ArtisanRepository {
	return &ArtisanRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ArtisanRepository) List(ctx context.Context) ([]models.Artisan, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Artisan{}, nil
}

func (m *ArtisanRepository) GetByID(ctx context.Context, id int64) (*models.Artisan, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *ArtisanRepository) Create(ctx context.Context, artisan *models.Artisan) error {
	m.Calls["Create"] = append(m.Calls["Create"], artisan)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, artisan)
	}
	return nil
}

func (m *ArtisanRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Ensure ArtisanRepository implements the interface
var _ repositories.ArtisanRepository = (*ArtisanRepository)(nil)
