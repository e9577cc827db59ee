package services

import (
	"testing"
	"time"

	"github.com/tanphat181203/Travel-BE-sub000/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDisplayDate(t *testing.T) {
	// 18:00 UTC is already the next day in Ho Chi Minh (UTC+7).
	late := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-11", FormatDisplayDate(late))

	early := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", FormatDisplayDate(early))
}

func TestGroupImagesByTour(t *testing.T) {
	tourA := uuid.New()
	tourB := uuid.New()

	// Input arrives cover-first, newest-first per tour; grouping must keep
	// that order.
	images := []models.TourImage{
		{ID: uuid.New(), TourID: tourA, URL: "a-cover.jpg", IsCover: true},
		{ID: uuid.New(), TourID: tourB, URL: "b-cover.jpg", IsCover: true},
		{ID: uuid.New(), TourID: tourA, URL: "a-new.jpg"},
		{ID: uuid.New(), TourID: tourA, URL: "a-old.jpg"},
	}

	grouped := GroupImagesByTour(images)

	require.Len(t, grouped[tourA], 3)
	assert.Equal(t, "a-cover.jpg", grouped[tourA][0].URL)
	assert.Equal(t, "a-new.jpg", grouped[tourA][1].URL)
	assert.Equal(t, "a-old.jpg", grouped[tourA][2].URL)

	require.Len(t, grouped[tourB], 1)
	assert.Equal(t, "b-cover.jpg", grouped[tourB][0].URL)
}
