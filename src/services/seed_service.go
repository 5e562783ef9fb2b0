package services

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
	"gopkg.in/yaml.v3"
)

// SeedService loads sample directory data from a YAML file into an
// empty store
type SeedService struct {
	artisans repositories.ArtisanRepository
	places   repositories.PlaceRepository
}

// NewSeedService creates a new seed service
func NewSeedService(artisans repositories.ArtisanRepository, places repositories.PlaceRepository) *SeedService {
	return &SeedService{artisans: artisans, places: places}
}

type seedFile struct {
	Artisans []seedArtisan `yaml:"artisans"`
	Places   []seedPlace   `yaml:"places"`
}

type seedArtisan struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Phone       string  `yaml:"phone"`
	WhatsApp    string  `yaml:"whatsapp"`
	Instagram   string  `yaml:"instagram"`
	Address     string  `yaml:"address"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	PhotoURL    string  `yaml:"photo_url"`
}

type seedPlace struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Type        string  `yaml:"type"`
	Address     string  `yaml:"address"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	Hours       string  `yaml:"hours"`
	Price       string  `yaml:"price"`
	PhotoURL    string  `yaml:"photo_url"`
}

// SeedFromFile inserts the file's rows into each collection that is
// currently empty. Collections that already hold data are left alone.
func (s *SeedService) SeedFromFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var data seedFile
	if err := yaml.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := s.seedArtisans(ctx, data.Artisans); err != nil {
		return err
	}
	return s.seedPlaces(ctx, data.Places)
}

func (s *SeedService) seedArtisans(ctx context.Context, rows []seedArtisan) error {
	count, err := s.artisans.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count artisans: %w", err)
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		artisan := &models.Artisan{
			Name:        row.Name,
			Description: row.Description,
			Category:    row.Category,
			Phone:       row.Phone,
			WhatsApp:    row.WhatsApp,
			Instagram:   row.Instagram,
			Address:     row.Address,
			Lat:         row.Lat,
			Lng:         row.Lng,
			PhotoURL:    row.PhotoURL,
		}
		if err := s.artisans.Create(ctx, artisan); err != nil {
			return fmt.Errorf("failed to seed artisan %q: %w", row.Name, err)
		}
	}

	log.Info().Int("count", len(rows)).Msg("seeded artisans")
	return nil
}

func (s *SeedService) seedPlaces(ctx context.Context, rows []seedPlace) error {
	count, err := s.places.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count places: %w", err)
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		place := &models.Place{
			Name:        row.Name,
			Description: row.Description,
			Type:        row.Type,
			Address:     row.Address,
			Lat:         row.Lat,
			Lng:         row.Lng,
			Hours:       row.Hours,
			Price:       row.Price,
			PhotoURL:    row.PhotoURL,
		}
		if err := s.places.Create(ctx, place); err != nil {
			return fmt.Errorf("failed to seed place %q: %w", row.Name, err)
		}
	}

	log.Info().Int("count", len(rows)).Msg("seeded places")
	return nil
}
