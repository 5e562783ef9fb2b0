package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// ArtisanRepository is the pgx-backed implementation of
// repositories.ArtisanRepository
type ArtisanRepository struct {
	pool *pgxpool.Pool
}

// NewArtisanRepository creates a new artisan repository
func NewArtisanRepository(pool *pgxpool.Pool) *ArtisanRepository {
	return &ArtisanRepository{pool: pool}
}

const artisanColumns = `id, name, COALESCE(description, ''), COALESCE(category, ''),
	COALESCE(phone, ''), COALESCE(whatsapp, ''), COALESCE(instagram, ''),
	COALESCE(address, ''), COALESCE(lat, 0), COALESCE(lng, 0),
	COALESCE(photo_url, ''), updated_at`

func scanArtisan(row pgx.Row, a *models.Artisan) error {
	return row.Scan(
		&a.ID, &a.Name, &a.Description, &a.Category,
		&a.Phone, &a.WhatsApp, &a.Instagram,
		&a.Address, &a.Lat, &a.Lng,
		&a.PhotoURL, &a.UpdatedAt,
	)
}

// List returns all artisans ordered by name
func (r *ArtisanRepository) List(ctx context.Context) ([]models.Artisan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+artisanColumns+` FROM artisans ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query artisans: %w", err)
	}
	defer rows.Close()

	artisans := []models.Artisan{}
	for rows.Next() {
		var a models.Artisan
		if err := scanArtisan(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan artisan: %w", err)
		}
		artisans = append(artisans, a)
	}
	return artisans, rows.Err()
}

// GetByID returns a single artisan or ErrNotFound
func (r *ArtisanRepository) GetByID(ctx context.Context, id int64) (*models.Artisan, error) {
	var a models.Artisan
	err := scanArtisan(r.pool.QueryRow(ctx,
		`SELECT `+artisanColumns+` FROM artisans WHERE id = $1`, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query artisan: %w", err)
	}
	return &a, nil
}

// Create inserts a new artisan and fills in the assigned id and timestamp
func (r *ArtisanRepository) Create(ctx context.Context, artisan *models.Artisan) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO artisans (name, description, category, phone, whatsapp, instagram, address, lat, lng, photo_url)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9, NULLIF($10, ''))
		 RETURNING id, updated_at`,
		artisan.Name, artisan.Description, artisan.Category,
		artisan.Phone, artisan.WhatsApp, artisan.Instagram,
		artisan.Address, artisan.Lat, artisan.Lng, artisan.PhotoURL,
	).Scan(&artisan.ID, &artisan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create artisan: %w", err)
	}
	return nil
}

// Count returns the number of artisan rows
func (r *ArtisanRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artisans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count artisans: %w", err)
	}
	return count, nil
}

// Ensure ArtisanRepository implements the interface
var _ repositories.ArtisanRepository = (*ArtisanRepository)(nil)
