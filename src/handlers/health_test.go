package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tuladigital/tula-directory/src/database"
)

func serveHealth(t *testing.T, db *database.Database) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.GET("/health", NewHealthHandler(db).HandleHealth)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth_DatabaseReachable(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		w := serveHealth(t, database.NewDatabaseFromPool(tdb.Pool))
		assertStatusCode(t, w, http.StatusOK)

		response := decodeJSON(t, w)
		if response["ok"] != true {
			t.Errorf("expected ok:true, got %v", response["ok"])
		}
		if _, present := response["uptime"]; !present {
			t.Error("expected uptime in health response")
		}
	})
}

func TestHealth_DatabaseUnavailable(t *testing.T) {
	w := serveHealth(t, database.NewDatabaseFromPool(nil))
	assertStatusCode(t, w, http.StatusServiceUnavailable)

	response := decodeJSON(t, w)
	if response["ok"] != false {
		t.Errorf("expected ok:false, got %v", response["ok"])
	}
}
