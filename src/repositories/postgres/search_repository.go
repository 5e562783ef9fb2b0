package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// SearchRepository is the pgx-backed implementation of
// repositories.SearchRepository
type SearchRepository struct {
	pool *pgxpool.Pool
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(pool *pgxpool.Pool) *SearchRepository {
	return &SearchRepository{pool: pool}
}

// Search runs the given LIKE pattern over both collections. ILIKE keeps
// matching case-insensitive; the place type is surfaced as category so
// both kinds share one result shape.
func (r *SearchRepository) Search(ctx context.Context, pattern string) ([]models.SearchResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT 'artisan' AS kind, id, name, COALESCE(description, ''), COALESCE(category, ''),
		       COALESCE(lat, 0), COALESCE(lng, 0), COALESCE(photo_url, '')
		FROM artisans
		WHERE name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1
		UNION ALL
		SELECT 'place' AS kind, id, name, COALESCE(description, ''), COALESCE(type, ''),
		       COALESCE(lat, 0), COALESCE(lng, 0), COALESCE(photo_url, '')
		FROM places
		WHERE name ILIKE $1 OR description ILIKE $1 OR type ILIKE $1
		ORDER BY name`,
		pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to run search query: %w", err)
	}
	defer rows.Close()

	results := []models.SearchResult{}
	for rows.Next() {
		var sr models.SearchResult
		err := rows.Scan(&sr.Kind, &sr.ID, &sr.Name, &sr.Description, &sr.Category, &sr.Lat, &sr.Lng, &sr.PhotoURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, sr)
	}
	return results, rows.Err()
}

// Ensure SearchRepository implements the interface
var _ repositories.SearchRepository = (*SearchRepository)(nil)
