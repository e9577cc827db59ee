package services

import "strings"

// RangeBounds is a numeric filter window. A nil Max means unbounded.
type RangeBounds struct {
	Min int
	Max *int
}

func intPtr(n int) *int { return &n }

var durationRangeLabels = []string{"1-3 ngày", "3-5 ngày", "5-7 ngày", "7+ ngày"}

var durationRanges = map[string]RangeBounds{
	"1-3 ngày": {Min: 1, Max: intPtr(3)},
	"3-5 ngày": {Min: 3, Max: intPtr(5)},
	"5-7 ngày": {Min: 5, Max: intPtr(7)},
	"7+ ngày":  {Min: 7, Max: nil},
}

var peopleRangeLabels = []string{"1 người", "2 người", "3-5 người", "5+ người"}

var peopleRanges = map[string]RangeBounds{
	"1 người":   {Min: 1, Max: intPtr(1)},
	"2 người":   {Min: 2, Max: intPtr(2)},
	"3-5 người": {Min: 3, Max: intPtr(5)},
	"5+ người":  {Min: 5, Max: nil},
}

func MapDurationRange(label string) (RangeBounds, error) {
	bounds, ok := durationRanges[label]
	if !ok {
		return RangeBounds{}, newValidationError(
			"invalid duration_range %q, valid options: %s", label, strings.Join(durationRangeLabels, ", "))
	}
	return bounds, nil
}

func MapPeopleRange(label string) (RangeBounds, error) {
	bounds, ok := peopleRanges[label]
	if !ok {
		return RangeBounds{}, newValidationError(
			"invalid people_range %q, valid options: %s", label, strings.Join(peopleRangeLabels, ", "))
	}
	return bounds, nil
}

// bucketDuration maps a bare day count onto the closest duration_range label.
func bucketDuration(days int) string {
	switch {
	case days <= 3:
		return "1-3 ngày"
	case days <= 5:
		return "3-5 ngày"
	case days <= 7:
		return "5-7 ngày"
	default:
		return "7+ ngày"
	}
}
