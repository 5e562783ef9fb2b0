package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tuladigital/tula-directory/src/middleware"
	"github.com/tuladigital/tula-directory/src/repositories/mock"
	"github.com/tuladigital/tula-directory/src/services"
)

const testSecret = "test-secret-for-unit-tests-32ch!"

// testEnv wires handlers, middleware and mock repositories into a
// router with the same routes as production
type testEnv struct {
	artisans *mock.ArtisanRepository
	places   *mock.PlaceRepository
	admins   *mock.AdminRepository
	search   *mock.SearchRepository
	tokens   services.TokenService
	router   *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		artisans: mock.NewArtisanRepository(),
		places:   mock.NewPlaceRepository(),
		admins:   mock.NewAdminRepository(),
		search:   mock.NewSearchRepository(),
	}

	tokens, err := services.NewJWTTokenService(testSecret, 3600)
	if err != nil {
		t.Fatalf("NewJWTTokenService failed: %v", err)
	}
	env.tokens = tokens

	directory := services.NewDirectoryService(env.artisans, env.places, env.search)
	auth := services.NewAuthService(env.admins, tokens)

	authHandler := NewAuthHandler(auth)
	artisanHandler := NewArtisanHandler(directory)
	placeHandler := NewPlaceHandler(directory)
	searchHandler := NewSearchHandler(directory)

	router := gin.New()
	router.GET("/artisans", artisanHandler.HandleList)
	router.GET("/artisans/:id", artisanHandler.HandleGet)
	router.GET("/places", middleware.OptionalAdmin(tokens), placeHandler.HandleList)
	router.GET("/places/:id", placeHandler.HandleGet)
	router.GET("/search", searchHandler.HandleSearch)
	router.POST("/super-admin/login", authHandler.HandleLogin)
	router.POST("/places", middleware.RequireAdmin(tokens), placeHandler.HandleCreate)
	router.PUT("/places/:id", middleware.RequireAdmin(tokens), placeHandler.HandleUpdate)
	router.DELETE("/places/:id", middleware.RequireAdmin(tokens), placeHandler.HandleDelete)
	env.router = router

	return env
}

// adminToken issues a valid session token for tests
func (env *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := env.tokens.Issue(1, "admin@tula.local")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	return token
}

// do runs a request through the test router
func (env *testEnv) do(method, path, token string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	env.router.ServeHTTP(w, req)
	return w
}
