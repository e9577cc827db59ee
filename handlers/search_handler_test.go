package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tanphat181203/Travel-BE-sub000/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func searchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/tours/search", handlers.SearchTours)
	return r
}

// An unknown range label must be rejected before any database access, so
// this runs without a database connection.
func TestSearchToursInvalidDurationRange(t *testing.T) {
	r := searchRouter()

	req := httptest.NewRequest("GET", "/api/tours/search?duration_range=hai+tuan", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid options")
}

func TestSearchToursInvalidPeopleRange(t *testing.T) {
	r := searchRouter()

	req := httptest.NewRequest("GET", "/api/tours/search?people_range=99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "people_range")
}
