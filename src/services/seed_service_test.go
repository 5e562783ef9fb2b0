package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuladigital/tula-directory/src/repositories/mock"
)

const testSeedYAML = `
artisans:
  - name: Obsidiana Tula
    description: Tallado artesanal de obsidiana.
    category: Piedra/Obsidiana
    lat: 20.0576
    lng: -99.3416
places:
  - name: Museo Jorge R. Acosta
    description: Historia tolteca.
    type: Museo
    lat: 20.0629
    lng: -99.3399
    hours: Mar-Dom 9:00-17:30
    price: $80 MXN
  - name: Mercado Municipal
    type: Mercado
    lat: 20.0531
    lng: -99.3435
`

func writeTestSeedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSeedYAML), 0o600))
	return path
}

func TestSeedFromFile_SeedsEmptyStore(t *testing.T) {
	artisans := mock.NewArtisanRepository()
	places := mock.NewPlaceRepository()
	svc := NewSeedService(artisans, places)

	err := svc.SeedFromFile(context.Background(), writeTestSeedFile(t))
	require.NoError(t, err)

	assert.Len(t, artisans.Calls["Create"], 1)
	assert.Len(t, places.Calls["Create"], 2)
}

func TestSeedFromFile_SkipsNonEmptyCollections(t *testing.T) {
	artisans := mock.NewArtisanRepository()
	artisans.CountFunc = func(ctx context.Context) (int, error) { return 5, nil }
	places := mock.NewPlaceRepository()
	svc := NewSeedService(artisans, places)

	err := svc.SeedFromFile(context.Background(), writeTestSeedFile(t))
	require.NoError(t, err)

	assert.Empty(t, artisans.Calls["Create"])
	assert.Len(t, places.Calls["Create"], 2)
}

func TestSeedFromFile_MissingFile(t *testing.T) {
	svc := NewSeedService(mock.NewArtisanRepository(), mock.NewPlaceRepository())
	err := svc.SeedFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
