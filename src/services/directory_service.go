package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
)

// DirectoryService handles catalog reads, keyword search and place
// mutations
type DirectoryService struct {
	artisans repositories.ArtisanRepository
	places   repositories.PlaceRepository
	search   repositories.SearchRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(artisans repositories.ArtisanRepository, places repositories.PlaceRepository, search repositories.SearchRepository) *DirectoryService {
	return &DirectoryService{artisans: artisans, places: places, search: search}
}

// ListArtisans returns all artisans in their public projection, ordered
// by name
func (s *DirectoryService) ListArtisans(ctx context.Context) ([]models.PublicArtisan, error) {
	artisans, err := s.artisans.List(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]models.PublicArtisan, 0, len(artisans))
	for i := range artisans {
		public = append(public, artisans[i].Public())
	}
	return public, nil
}

// GetArtisan returns one artisan's public projection or ErrNotFound
func (s *DirectoryService) GetArtisan(ctx context.Context, id int64) (*models.PublicArtisan, error) {
	artisan, err := s.artisans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p := artisan.Public()
	return &p, nil
}

// ListPlaces returns all places with every stored field, ordered by
// name. Callers apply the public projection for anonymous identities.
func (s *DirectoryService) ListPlaces(ctx context.Context) ([]models.Place, error) {
	return s.places.List(ctx)
}

// GetPlace returns one full place record or ErrNotFound
func (s *DirectoryService) GetPlace(ctx context.Context, id int64) (*models.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return place, nil
}

// Search matches the trimmed query as a plain substring over both
// collections. LIKE metacharacters in the query are escaped so callers
// get literal matching, never glob semantics.
func (s *DirectoryService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	return s.search.Search(ctx, likePattern(query))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(query)) + "%"
}

// PlaceInput is the mutation payload for create and update. Lat and Lng
// stay untyped so a non-numeric value is a collected validation failure
// instead of a bind error that would mask the rest of the payload's
// problems.
type PlaceInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Address     string      `json:"address"`
	Lat         interface{} `json:"lat"`
	Lng         interface{} `json:"lng"`
	Hours       string      `json:"hours"`
	Price       string      `json:"price"`
	PhotoURL    string      `json:"photo_url"`
}

// validate collects every problem before any store access. Optional
// strings are trimmed; whitespace-only values become absent.
func (in *PlaceInput) validate() (*models.Place, error) {
	var msgs []string

	name := strings.TrimSpace(in.Name)
	if name == "" {
		msgs = append(msgs, "name is required")
	}

	lat, ok := parseCoordinate(in.Lat)
	if !ok {
		msgs = append(msgs, "lat must be a finite number")
	}
	lng, ok := parseCoordinate(in.Lng)
	if !ok {
		msgs = append(msgs, "lng must be a finite number")
	}

	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	return &models.Place{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Type:        strings.TrimSpace(in.Type),
		Address:     strings.TrimSpace(in.Address),
		Lat:         lat,
		Lng:         lng,
		Hours:       strings.TrimSpace(in.Hours),
		Price:       strings.TrimSpace(in.Price),
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
	}, nil
}

// parseCoordinate accepts JSON numbers and numeric strings, rejecting
// NaN and infinities
func parseCoordinate(v interface{}) (float64, bool) {
	var f float64
	var err error

	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		f, err = n.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CreatePlace validates the payload and inserts a new place
func (s *DirectoryService) CreatePlace(ctx context.Context, in PlaceInput) (*models.Place, error) {
	place, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.places.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}
	return place, nil
}

// UpdatePlace validates the payload and replaces all mutable fields of
// the place with the given id. Returns ErrNotFound when no row matches.
func (s *DirectoryService) UpdatePlace(ctx context.Context, id int64, in PlaceInput) (*models.Place, error) {
	place, err := in.validate()
	if err != nil {
		return nil, err
	}
	place.ID = id
	if err := s.places.Update(ctx, place); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update place: %w", err)
	}
	return place, nil
}

// DeletePlace removes the place with the given id. Returns ErrNotFound
// when no row matches.
func (s *DirectoryService) DeletePlace(ctx context.Context, id int64) error {
	if err := s.places.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete place: %w", err)
	}
	return nil
}
