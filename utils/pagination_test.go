package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/tours/search"+query, nil)
	return GetPagination(c)
}

func TestGetPagination(t *testing.T) {
	p := paginationFor(t, "?page=3&limit=20")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 40, p.Skip)
}

func TestGetPaginationDefaults(t *testing.T) {
	p := paginationFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Skip)

	p = paginationFor(t, "?page=0&limit=-5")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestBuildEnvelope(t *testing.T) {
	env := BuildEnvelope(Pagination{Page: 2, Limit: 10, Skip: 10}, 35)

	assert.Equal(t, 2, env.CurrentPage)
	assert.Equal(t, 10, env.ItemsPerPage)
	assert.Equal(t, int64(35), env.TotalItems)
	assert.Equal(t, 4, env.TotalPages)
	assert.True(t, env.HasNextPage)
	assert.True(t, env.HasPrevPage)
}

func TestBuildEnvelopeEdges(t *testing.T) {
	env := BuildEnvelope(Pagination{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, env.TotalPages)
	assert.False(t, env.HasNextPage)
	assert.False(t, env.HasPrevPage)

	env = BuildEnvelope(Pagination{Page: 4, Limit: 10, Skip: 30}, 35)
	assert.False(t, env.HasNextPage)
	assert.True(t, env.HasPrevPage)
}
