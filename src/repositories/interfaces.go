package repositories

import (
	"context"
	"errors"

	"github.com/tuladigital/tula-directory/src/models"
)

// Sentinel errors shared by all repository implementations

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail indicates an account with that email already exists
	ErrDuplicateEmail = errors.New("email already registered")
)

// ArtisanRepository defines the interface for artisan data access
type ArtisanRepository interface {
	List(ctx context.Context) ([]models.Artisan, error)
	GetByID(ctx context.Context, id int64) (*models.Artisan, error)
	Create(ctx context.Context, artisan *models.Artisan) error
	Count(ctx context.Context) (int, error)
}

// PlaceRepository defines the interface for place data access
type PlaceRepository interface {
	List(ctx context.Context) ([]models.Place, error)
	GetByID(ctx context.Context, id int64) (*models.Place, error)
	Create(ctx context.Context, place *models.Place) error
	// Update replaces all mutable fields; returns ErrNotFound when no
	// row matches the id.
	Update(ctx context.Context, place *models.Place) error
	// Delete returns ErrNotFound when no row matches the id.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// AdminRepository defines the interface for super-admin data access
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.SuperAdmin, error)
	// Create returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, admin *models.SuperAdmin) error
	UpdateLastLogin(ctx context.Context, id int64) error
}

// SearchRepository defines keyword search across both collections
type SearchRepository interface {
	// Search matches the given LIKE pattern against name, description
	// and category/type of artisans and places, ordered by name.
	Search(ctx context.Context, pattern string) ([]models.SearchResult, error)
}
