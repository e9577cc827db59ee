package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	c, err := NormalizeSearchParams(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 10, c.Limit)
	assert.Equal(t, 0, c.Offset)
	assert.Equal(t, 3, c.NearbyDays)
	assert.Nil(t, c.Region)
	assert.Nil(t, c.DepartureDate)
	assert.Empty(t, c.Destinations)
}

func TestNormalizeDurationRangeLabel(t *testing.T) {
	params := url.Values{"duration_range": {"5-7 ngày"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	require.NotNil(t, c.MinDuration)
	require.NotNil(t, c.MaxDuration)
	assert.Equal(t, 5, *c.MinDuration)
	assert.Equal(t, 7, *c.MaxDuration)
}

func TestNormalizeDurationRangeEncodedLabel(t *testing.T) {
	params := url.Values{"duration_range": {"1-3%20ng%C3%A0y"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	require.NotNil(t, c.MinDuration)
	assert.Equal(t, 1, *c.MinDuration)
	require.NotNil(t, c.MaxDuration)
	assert.Equal(t, 3, *c.MaxDuration)
}

func TestNormalizeUnknownDurationRange(t *testing.T) {
	params := url.Values{"duration_range": {"2 tuần"}}
	_, err := NormalizeSearchParams(params)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "valid options")
}

func TestNormalizeUnknownPeopleRange(t *testing.T) {
	params := url.Values{"people_range": {"nhiều người"}}
	_, err := NormalizeSearchParams(params)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestNormalizeLegacyDuration(t *testing.T) {
	params := url.Values{"duration": {"6 ngày 5 đêm"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	require.NotNil(t, c.MinDuration)
	require.NotNil(t, c.MaxDuration)
	assert.Equal(t, 5, *c.MinDuration)
	assert.Equal(t, 7, *c.MaxDuration)
}

func TestNormalizeDurationRangeWinsOverLegacy(t *testing.T) {
	params := url.Values{
		"duration_range": {"1-3 ngày"},
		"duration":       {"6 ngày"},
	}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	assert.Equal(t, 1, *c.MinDuration)
	assert.Equal(t, 3, *c.MaxDuration)
}

func TestNormalizeNumPeopleAlias(t *testing.T) {
	params := url.Values{"num_people": {"4"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	require.NotNil(t, c.MinPeople)
	assert.Equal(t, 4, *c.MinPeople)
	assert.Nil(t, c.MaxPeople)
}

func TestNormalizeExplicitMinPeopleBeatsNumPeople(t *testing.T) {
	params := url.Values{
		"min_people": {"2"},
		"num_people": {"4"},
	}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	assert.Equal(t, 2, *c.MinPeople)
}

func TestNormalizePeopleRangeExpansion(t *testing.T) {
	params := url.Values{"people_range": {"5+ người"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	require.NotNil(t, c.MinPeople)
	assert.Equal(t, 5, *c.MinPeople)
	assert.Nil(t, c.MaxPeople)
}

func TestNormalizeDropsUnparsableNumerics(t *testing.T) {
	params := url.Values{
		"region":    {"north"},
		"min_price": {"cheap"},
		"max_price": {"500"},
	}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	assert.Nil(t, c.Region)
	assert.Nil(t, c.MinPrice)
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, 500.0, *c.MaxPrice)
}

func TestNormalizeDestinationList(t *testing.T) {
	params := url.Values{"destination": {"Hà Nội"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hà Nội"}, c.Destinations)

	params = url.Values{"destination": {"Hà Nội", "Đà Nẵng"}}
	c, err = NormalizeSearchParams(params)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hà Nội", "Đà Nẵng"}, c.Destinations)
}

func TestNormalizeDepartureDateDefaultsNearbyDays(t *testing.T) {
	params := url.Values{"departure_date": {"2025-12-01"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)

	require.NotNil(t, c.DepartureDate)
	assert.Equal(t, "2025-12-01", c.DepartureDate.Format("2006-01-02"))
	assert.Equal(t, 3, c.NearbyDays)

	params.Set("nearby_days", "7")
	c, err = NormalizeSearchParams(params)
	require.NoError(t, err)
	assert.Equal(t, 7, c.NearbyDays)
}

func TestNormalizeInvalidDepartureDateDropped(t *testing.T) {
	params := url.Values{"departure_date": {"next week"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)
	assert.Nil(t, c.DepartureDate)
}

func TestNormalizeSellerID(t *testing.T) {
	params := url.Values{"seller_id": {"0b39aa1c-52f1-4f3e-8f71-2f2b6e6f8a11"}}
	c, err := NormalizeSearchParams(params)
	require.NoError(t, err)
	require.NotNil(t, c.SellerID)
	assert.Equal(t, "0b39aa1c-52f1-4f3e-8f71-2f2b6e6f8a11", c.SellerID.String())

	params = url.Values{"seller_id": {"not-a-uuid"}}
	c, err = NormalizeSearchParams(params)
	require.NoError(t, err)
	assert.Nil(t, c.SellerID)
}
