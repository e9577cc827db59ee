package services

import (
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultNearbyDays = 3

// SearchCriteria is the typed filter set driving the tour search query.
// Nil pointer fields mean "filter not applied".
type SearchCriteria struct {
	Region            *int
	Destinations      []string
	DepartureLocation string
	SellerID          *uuid.UUID
	MinPrice          *float64
	MaxPrice          *float64
	MinDuration       *int
	MaxDuration       *int
	MinPeople         *int
	MaxPeople         *int
	DepartureDate     *time.Time
	NearbyDays        int
	Limit             int
	Offset            int
}

var leadingInt = regexp.MustCompile(`^\s*(\d+)`)

// NormalizeSearchParams turns raw query-string values into typed criteria.
// Range labels are validated against the fixed enumerations; legacy fields
// (num_people, free-text duration) are aliased into their range equivalents.
// Numeric fields that fail to parse drop the filter instead of failing the
// whole search.
func NormalizeSearchParams(params url.Values) (SearchCriteria, error) {
	c := SearchCriteria{
		Limit:      10,
		NearbyDays: defaultNearbyDays,
	}

	durationLabel := params.Get("duration_range")
	if durationLabel == "" {
		// Legacy free-text duration like "4 ngày" is bucketed into the
		// nearest range label.
		if m := leadingInt.FindStringSubmatch(params.Get("duration")); m != nil {
			days, _ := strconv.Atoi(m[1])
			durationLabel = bucketDuration(days)
		}
	}
	if durationLabel != "" {
		bounds, err := lookupRange(durationLabel, MapDurationRange)
		if err != nil {
			return SearchCriteria{}, err
		}
		c.MinDuration = intPtr(bounds.Min)
		c.MaxDuration = bounds.Max
	}

	if label := params.Get("people_range"); label != "" {
		bounds, err := lookupRange(label, MapPeopleRange)
		if err != nil {
			return SearchCriteria{}, err
		}
		c.MinPeople = intPtr(bounds.Min)
		c.MaxPeople = bounds.Max
	} else {
		c.MinPeople = parseIntField(params, "min_people")
		c.MaxPeople = parseIntField(params, "max_people")
		if c.MinPeople == nil {
			c.MinPeople = parseIntField(params, "num_people")
		}
	}

	c.Region = parseIntField(params, "region")
	c.MinPrice = parseFloatField(params, "min_price")
	c.MaxPrice = parseFloatField(params, "max_price")
	c.DepartureLocation = params.Get("departure_location")

	if raw := params.Get("seller_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			c.SellerID = &id
		}
	}

	// destination is always a list; repeated keys accumulate.
	for _, d := range params["destination"] {
		if d != "" {
			c.Destinations = append(c.Destinations, d)
		}
	}

	if raw := params.Get("departure_date"); raw != "" {
		if date, err := time.Parse("2006-01-02", raw); err == nil {
			c.DepartureDate = &date
		}
	}
	if nearby := parseIntField(params, "nearby_days"); nearby != nil && *nearby >= 0 {
		c.NearbyDays = *nearby
	}

	if limit := parseIntField(params, "limit"); limit != nil && *limit > 0 {
		c.Limit = *limit
	}
	if offset := parseIntField(params, "offset"); offset != nil && *offset > 0 {
		c.Offset = *offset
	}

	return c, nil
}

// lookupRange tries the label as given and, failing that, its URL-decoded
// form, so both encoded and plain query strings resolve.
func lookupRange(label string, mapper func(string) (RangeBounds, error)) (RangeBounds, error) {
	bounds, err := mapper(label)
	if err == nil {
		return bounds, nil
	}
	if decoded, decErr := url.QueryUnescape(label); decErr == nil && decoded != label {
		if bounds, decErr := mapper(decoded); decErr == nil {
			return bounds, nil
		}
	}
	return RangeBounds{}, err
}

func parseIntField(params url.Values, key string) *int {
	raw := params.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatField(params url.Values, key string) *float64 {
	raw := params.Get(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
