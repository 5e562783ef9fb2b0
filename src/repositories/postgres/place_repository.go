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

// PlaceRepository is the pgx-backed implementation of
// repositories.PlaceRepository
type PlaceRepository struct {
	pool *pgxpool.Pool
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{pool: pool}
}

const placeColumns = `id, name, COALESCE(description, ''), COALESCE(type, ''),
	COALESCE(address, ''), COALESCE(lat, 0), COALESCE(lng, 0),
	COALESCE(hours, ''), COALESCE(price, ''), COALESCE(photo_url, ''), updated_at`

func scanPlace(row pgx.Row, p *models.Place) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Type,
		&p.Address, &p.Lat, &p.Lng,
		&p.Hours, &p.Price, &p.PhotoURL, &p.UpdatedAt,
	)
}

// List returns all places ordered by name
func (r *PlaceRepository) List(ctx context.Context) ([]models.Place, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+placeColumns+` FROM places ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		var p models.Place
		if err := scanPlace(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

// GetByID returns a single place or ErrNotFound
func (r *PlaceRepository) GetByID(ctx context.Context, id int64) (*models.Place, error) {
	var p models.Place
	err := scanPlace(r.pool.QueryRow(ctx,
		`SELECT `+placeColumns+` FROM places WHERE id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query place: %w", err)
	}
	return &p, nil
}

// Create inserts a new place and fills in the assigned id and timestamp
func (r *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO places (name, description, type, address, lat, lng, hours, price, photo_url)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		 RETURNING id, updated_at`,
		place.Name, place.Description, place.Type, place.Address,
		place.Lat, place.Lng, place.Hours, place.Price, place.PhotoURL,
	).Scan(&place.ID, &place.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of a place
func (r *PlaceRepository) Update(ctx context.Context, place *models.Place) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE places
		 SET name = $2, description = NULLIF($3, ''), type = NULLIF($4, ''),
		     address = NULLIF($5, ''), lat = $6, lng = $7,
		     hours = NULLIF($8, ''), price = NULLIF($9, ''),
		     photo_url = NULLIF($10, ''), updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		place.ID, place.Name, place.Description, place.Type, place.Address,
		place.Lat, place.Lng, place.Hours, place.Price, place.PhotoURL,
	).Scan(&place.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repositories.ErrNotFound
		}
		return fmt.Errorf("failed to update place: %w", err)
	}
	return nil
}

// Delete removes a place by id
func (r *PlaceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Count returns the number of place rows
func (r *PlaceRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM places`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count places: %w", err)
	}
	return count, nil
}

// Ensure PlaceRepository implements the interface
var _ repositories.PlaceRepository = (*PlaceRepository)(nil)
