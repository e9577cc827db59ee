package services

import (
	"context"
	"fmt"
	"net/url"

	"gorm.io/gorm"
)

// SearchResult carries one page of enriched tours plus the total number of
// distinct matching tours, independent of pagination.
type SearchResult struct {
	Tours      []TourResult `json:"tours"`
	TotalItems int64        `json:"totalItems"`
}

// SearchTours runs the full pipeline: normalize, build, count, fetch, enrich.
// Validation errors surface before any query executes; execution failures are
// wrapped with context and no partial result is returned.
func SearchTours(ctx context.Context, db *gorm.DB, params url.Values) (SearchResult, error) {
	criteria, err := NormalizeSearchParams(params)
	if err != nil {
		return SearchResult{}, err
	}

	sql := BuildSearchQuery(criteria)

	var total int64
	if err := db.WithContext(ctx).Raw(sql.CountQuery, sql.CountArgs...).Scan(&total).Error; err != nil {
		return SearchResult{}, fmt.Errorf("Failed to search tours: %w", err)
	}
	if total == 0 {
		return SearchResult{Tours: []TourResult{}, TotalItems: 0}, nil
	}

	var rows []TourRow
	if err := db.WithContext(ctx).Raw(sql.Query, sql.Args...).Scan(&rows).Error; err != nil {
		return SearchResult{}, fmt.Errorf("Failed to search tours: %w", err)
	}

	tours, err := EnrichTours(db.WithContext(ctx), rows)
	if err != nil {
		return SearchResult{}, fmt.Errorf("Failed to search tours: %w", err)
	}

	return SearchResult{Tours: tours, TotalItems: total}, nil
}
