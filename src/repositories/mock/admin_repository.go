package mock

import (
	"context"

	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	GetByEmailFunc      func(ctx context.Context, email string) (*models.SuperAdmin, error)
	CreateFunc          func(ctx context.Context, admin *models.SuperAdmin) error
	UpdateLastLoginFunc func(ctx context.Context, id int64) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.SuperAdmin, error) {
	m.Calls["GetByEmail"] = append(m.Calls["GetByEmail"], email)
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.SuperAdmin) error {
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	m.Calls["UpdateLastLogin"] = append(m.Calls["UpdateLastLogin"], id)
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id)
	}
	return nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
