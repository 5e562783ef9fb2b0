package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
	"github.com/tuladigital/tula-directory/src/repositories/mock"
)

func newTestDirectoryService() (*DirectoryService, *mock.ArtisanRepository, *mock.PlaceRepository, *mock.SearchRepository) {
	artisans := mock.NewArtisanRepository()
	places := mock.NewPlaceRepository()
	search := mock.NewSearchRepository()
	return NewDirectoryService(artisans, places, search), artisans, places, search
}

func TestCreatePlace_CollectsAllValidationErrors(t *testing.T) {
	svc, _, places, _ := newTestDirectoryService()

	_, err := svc.CreatePlace(context.Background(), PlaceInput{
		Name: "   ",
		Lat:  "not-a-number",
		Lng:  -99.34,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 2)
	assert.Contains(t, verr.Messages, "name is required")
	assert.Contains(t, verr.Messages, "lat must be a finite number")

	// Validation failure must prevent any store access
	assert.Empty(t, places.Calls["Create"])
}

func TestCreatePlace_MissingCoordinatesAreCollected(t *testing.T) {
	svc, _, places, _ := newTestDirectoryService()

	_, err := svc.CreatePlace(context.Background(), PlaceInput{Name: "Museo X"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 2)
	assert.Empty(t, places.Calls["Create"])
}

func TestCreatePlace_AcceptsNumericStringsAndTrimsOptionals(t *testing.T) {
	svc, _, places, _ := newTestDirectoryService()

	created, err := svc.CreatePlace(context.Background(), PlaceInput{
		Name:        "  Museo X ",
		Description: "   ",
		Type:        " Museo ",
		Lat:         "20.06",
		Lng:         -99.34,
	})
	require.NoError(t, err)

	assert.Equal(t, "Museo X", created.Name)
	assert.Equal(t, "", created.Description)
	assert.Equal(t, "Museo", created.Type)
	assert.Equal(t, 20.06, created.Lat)
	assert.Equal(t, -99.34, created.Lng)
	assert.Len(t, places.Calls["Create"], 1)
}

func TestCreatePlace_RejectsNonFiniteCoordinates(t *testing.T) {
	svc, _, _, _ := newTestDirectoryService()

	for _, bad := range []interface{}{"Infinity", "NaN", true, nil, []interface{}{1.0}} {
		_, err := svc.CreatePlace(context.Background(), PlaceInput{
			Name: "Museo X",
			Lat:  bad,
			Lng:  -99.34,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "lat=%v should fail validation", bad)
	}
}

func TestUpdatePlace_NotFound(t *testing.T) {
	svc, _, places, _ := newTestDirectoryService()
	places.UpdateFunc = func(ctx context.Context, place *models.Place) error {
		return repositories.ErrNotFound
	}

	_, err := svc.UpdatePlace(context.Background(), 99, PlaceInput{
		Name: "Museo X",
		Lat:  20.06,
		Lng:  -99.34,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePlace_ValidationFailurePreventsStoreAccess(t *testing.T) {
	svc, _, places, _ := newTestDirectoryService()

	_, err := svc.UpdatePlace(context.Background(), 1, PlaceInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, places.Calls["Update"])
}

func TestDeletePlace_NotFound(t *testing.T) {
	svc, _, places, _ := newTestDirectoryService()
	places.DeleteFunc = func(ctx context.Context, id int64) error {
		return repositories.ErrNotFound
	}

	assert.ErrorIs(t, svc.DeletePlace(context.Background(), 99), ErrNotFound)
}

func TestGetArtisan_MapsNotFound(t *testing.T) {
	svc, _, _, _ := newTestDirectoryService()

	_, err := svc.GetArtisan(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch_EscapesLikeMetacharacters(t *testing.T) {
	svc, _, _, search := newTestDirectoryService()

	var gotPattern string
	search.SearchFunc = func(ctx context.Context, pattern string) ([]models.SearchResult, error) {
		gotPattern = pattern
		return []models.SearchResult{}, nil
	}

	_, err := svc.Search(context.Background(), ` 50% off_deal\ `)
	require.NoError(t, err)
	assert.Equal(t, `%50\% off\_deal\\%`, gotPattern)
}

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	svc, _, _, search := newTestDirectoryService()

	var gotPattern string
	search.SearchFunc = func(ctx context.Context, pattern string) ([]models.SearchResult, error) {
		gotPattern = pattern
		return []models.SearchResult{}, nil
	}

	_, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "%%", gotPattern)
}
