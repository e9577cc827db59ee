package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestBuildSearchQueryBaseFilters(t *testing.T) {
	sql := BuildSearchQuery(SearchCriteria{Limit: 10})

	assert.Contains(t, sql.Query, "t.availability = TRUE")
	assert.Contains(t, sql.Query, "t.is_deleted = FALSE")
	assert.Contains(t, sql.Query, "d.availability = TRUE")
	assert.Contains(t, sql.Query, "d.start_date >= CURRENT_DATE")
	assert.Contains(t, sql.Query, "DISTINCT ON (t.id)")
	assert.NotContains(t, sql.Query, "days_from_target")

	// Only limit and offset are bound without filters.
	assert.Len(t, sql.Args, 2)
	assert.Empty(t, sql.CountArgs)
}

func TestBuildSearchQueryConditionOrder(t *testing.T) {
	sellerID := uuid.New()
	c := SearchCriteria{
		Region:            intPtr(2),
		Destinations:      []string{"Huế"},
		DepartureLocation: "Hà Nội",
		SellerID:          &sellerID,
		MinPrice:          floatPtr(100),
		MaxPrice:          floatPtr(500),
		MinDuration:       intPtr(3),
		MaxDuration:       intPtr(5),
		MinPeople:         intPtr(4),
		Limit:             10,
	}
	sql := BuildSearchQuery(c)

	wantOrder := []string{
		"t.region = $1",
		"t.destinations && $2",
		"t.departure_location ILIKE $3",
		"t.seller_id = $4",
		"d.adult_price >= $5",
		"d.adult_price <= $6",
		"CAST(substring(t.duration from '^[0-9]+') AS INTEGER) >= $7",
		"CAST(substring(t.duration from '^[0-9]+') AS INTEGER) <= $8",
		"t.max_participants >= $9",
	}
	last := -1
	for _, cond := range wantOrder {
		idx := strings.Index(sql.Query, cond)
		require.GreaterOrEqual(t, idx, 0, "missing condition %q", cond)
		assert.Greater(t, idx, last, "condition %q out of order", cond)
		last = idx
	}

	// 9 filter params plus limit and offset.
	require.Len(t, sql.Args, 11)
	assert.Equal(t, 2, sql.Args[0])
	assert.Equal(t, "%Hà Nội%", sql.Args[2])
	assert.Equal(t, sellerID.String(), sql.Args[3])
	assert.Equal(t, 100.0, sql.Args[4])
	assert.Equal(t, 4, sql.Args[8])
	assert.Equal(t, 10, sql.Args[9])
	assert.Equal(t, 0, sql.Args[10])
}

func TestBuildSearchQueryCountMirrorsFilters(t *testing.T) {
	c := SearchCriteria{
		Region:   intPtr(1),
		MinPrice: floatPtr(50),
		Limit:    20,
		Offset:   40,
	}
	sql := BuildSearchQuery(c)

	assert.Contains(t, sql.CountQuery, "COUNT(DISTINCT t.id)")
	assert.Contains(t, sql.CountQuery, "t.region = $1")
	assert.Contains(t, sql.CountQuery, "d.adult_price >= $2")
	assert.NotContains(t, sql.CountQuery, "LIMIT")
	assert.NotContains(t, sql.CountQuery, "OFFSET")

	// Count args are exactly the filter args, without pagination.
	require.Len(t, sql.CountArgs, 2)
	assert.Equal(t, sql.Args[:2], sql.CountArgs)
	require.Len(t, sql.Args, 4)
	assert.Equal(t, 20, sql.Args[2])
	assert.Equal(t, 40, sql.Args[3])
}

func TestBuildSearchQueryDateMode(t *testing.T) {
	date := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	c := SearchCriteria{
		DepartureDate: &date,
		NearbyDays:    3,
		Limit:         10,
	}
	sql := BuildSearchQuery(c)

	assert.Contains(t, sql.Query, "days_from_target")
	assert.Contains(t, sql.Query, "ABS(d.start_date - $1::date) <= $2")
	assert.Contains(t, sql.Query, "d.start_date = $1::date")
	assert.Contains(t, sql.Query, "ORDER BY t.id, ABS(d.start_date - $1::date) ASC, d.start_date ASC")
	assert.Contains(t, sql.Query, "ORDER BY days_from_target ASC, start_date ASC, id ASC")
	assert.NotContains(t, sql.Query, "CURRENT_DATE")

	assert.Equal(t, "2025-12-01", sql.Args[0])
	assert.Equal(t, 3, sql.Args[1])

	// Count query keeps the window predicate but none of the ordering.
	assert.Contains(t, sql.CountQuery, "ABS(d.start_date - $1::date) <= $2")
	assert.NotContains(t, sql.CountQuery, "days_from_target")
	assert.Equal(t, []interface{}{"2025-12-01", 3}, sql.CountArgs)
}

func TestBuildSearchQueryPlaceholdersMatchArgs(t *testing.T) {
	sellerID := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	c := SearchCriteria{
		Region:        intPtr(3),
		Destinations:  []string{"Sa Pa", "Đà Lạt"},
		SellerID:      &sellerID,
		MinPeople:     intPtr(2),
		DepartureDate: &date,
		NearbyDays:    5,
		Limit:         10,
		Offset:        20,
	}
	sql := BuildSearchQuery(c)

	// Every bound arg has its placeholder in the main query.
	for i := range sql.Args {
		assert.Contains(t, sql.Query, fmt.Sprintf("$%d", i+1))
	}
	// No placeholder beyond the arg count.
	assert.NotContains(t, sql.Query, fmt.Sprintf("$%d", len(sql.Args)+1))
}

func TestBuildSearchQueryDeterministicTieBreak(t *testing.T) {
	sql := BuildSearchQuery(SearchCriteria{Limit: 10})

	// One departure per tour: earliest upcoming wins inside the CTE.
	assert.Contains(t, sql.Query, "ORDER BY t.id, d.start_date ASC")
	// Across tours the page order is total: equal start dates fall back
	// to the tour id, so identical searches page identically.
	assert.Contains(t, sql.Query, "ORDER BY start_date ASC, id ASC LIMIT")
}
