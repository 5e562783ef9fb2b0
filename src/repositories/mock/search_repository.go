package mock

import (
	"context"

	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// SearchRepository is a mock implementation of repositories.SearchRepository
type SearchRepository struct {
	// Function stub that can be overridden in tests
	SearchFunc func(ctx context.Context, pattern string) ([]models.SearchResult, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewSearchRepository creates a new mock search repository
func NewSearchRepository() *SearchRepository {
	return &SearchRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SearchRepository) Search(ctx context.Context, pattern string) ([]models.SearchResult, error) {
	m.Calls["Search"] = append(m.Calls["Search"], pattern)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, pattern)
	}
	return []models.SearchResult{}, nil
}

// Ensure SearchRepository implements the interface
var _ repositories.SearchRepository = (*SearchRepository)(nil)
