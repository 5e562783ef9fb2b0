package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// AdminRepository is the pgx-backed implementation of
// repositories.AdminRepository
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// GetByEmail returns the account for a normalized email or ErrNotFound
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.SuperAdmin, error) {
	var admin models.SuperAdmin
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, last_login_at
		 FROM super_admins WHERE email = $1`, email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt, &admin.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query super admin: %w", err)
	}
	return &admin, nil
}

// Create inserts a new super admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.SuperAdmin) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO super_admins (email, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id, created_at`,
		admin.Email, admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repositories.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create super admin: %w", err)
	}
	return nil
}

// UpdateLastLogin records the login timestamp on the account
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE super_admins SET last_login_at = $1 WHERE id = $2`,
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
