package services

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// SearchSQL is the rendered pair of main and count queries. Both are built
// from the same predicate list so their filters cannot drift apart; the main
// query additionally carries the limit/offset parameters.
type SearchSQL struct {
	Query      string
	CountQuery string
	Args       []interface{}
	CountArgs  []interface{}
}

// durationDaysExpr pulls the leading day count out of the free-text duration
// column ("4 ngày 3 đêm" -> 4).
const durationDaysExpr = "CAST(substring(t.duration from '^[0-9]+') AS INTEGER)"

// searchQuery collects WHERE predicates and their positional parameters.
// The parameter index is local to one builder, never shared state.
type searchQuery struct {
	conds []string
	args  []interface{}
}

// bind appends a value and returns its positional placeholder. Placeholders
// may be referenced more than once in the rendered SQL.
func (q *searchQuery) bind(v interface{}) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *searchQuery) where(cond string) {
	q.conds = append(q.conds, cond)
}

// BuildSearchQuery renders the deduplicated tour search query and its count
// twin from normalized criteria. One row per tour survives: with a target
// date it is the departure closest to that date (earlier date wins ties),
// otherwise the earliest upcoming departure.
func BuildSearchQuery(c SearchCriteria) SearchSQL {
	q := &searchQuery{}

	q.where("t.availability = TRUE")
	q.where("t.is_deleted = FALSE")
	q.where("d.availability = TRUE")

	if c.Region != nil {
		q.where("t.region = " + q.bind(*c.Region))
	}
	if len(c.Destinations) > 0 {
		q.where("t.destinations && " + q.bind(pq.Array(c.Destinations)))
	}
	if c.DepartureLocation != "" {
		q.where("t.departure_location ILIKE " + q.bind("%"+c.DepartureLocation+"%"))
	}
	if c.SellerID != nil {
		q.where("t.seller_id = " + q.bind(c.SellerID.String()))
	}
	if c.MinPrice != nil {
		q.where("d.adult_price >= " + q.bind(*c.MinPrice))
	}
	if c.MaxPrice != nil {
		q.where("d.adult_price <= " + q.bind(*c.MaxPrice))
	}
	if c.MinDuration != nil {
		q.where(durationDaysExpr + " >= " + q.bind(*c.MinDuration))
	}
	if c.MaxDuration != nil {
		q.where(durationDaysExpr + " <= " + q.bind(*c.MaxDuration))
	}
	if c.MinPeople != nil {
		q.where("t.max_participants >= " + q.bind(*c.MinPeople))
	}

	daysCol := ""
	dedupOrder := "t.id, d.start_date ASC"
	// Tours sharing a start date tie-break on id so pagination never
	// repeats or drops a tour across pages.
	resultOrder := "start_date ASC, id ASC"
	if c.DepartureDate != nil {
		date := q.bind(c.DepartureDate.Format("2006-01-02"))
		nearby := q.bind(c.NearbyDays)
		q.where(fmt.Sprintf("(d.start_date = %s::date OR ABS(d.start_date - %s::date) <= %s)", date, date, nearby))
		daysCol = fmt.Sprintf(", ABS(d.start_date - %s::date) AS days_from_target", date)
		dedupOrder = fmt.Sprintf("t.id, ABS(d.start_date - %s::date) ASC, d.start_date ASC", date)
		resultOrder = "days_from_target ASC, start_date ASC, id ASC"
	} else {
		q.where("d.start_date >= CURRENT_DATE")
	}

	base := "FROM tours t JOIN departures d ON d.tour_id = t.id WHERE " + strings.Join(q.conds, " AND ")

	countQuery := "SELECT COUNT(DISTINCT t.id) " + base
	countArgs := make([]interface{}, len(q.args))
	copy(countArgs, q.args)

	limit := q.bind(c.Limit)
	offset := q.bind(c.Offset)

	query := fmt.Sprintf(`WITH matched_tours AS (
	SELECT DISTINCT ON (t.id)
		t.id, t.seller_id, t.title, t.duration, t.departure_location,
		t.destinations, t.region, t.max_participants, t.availability,
		d.id AS departure_id, d.start_date, d.adult_price%s
	%s
	ORDER BY %s
)
SELECT * FROM matched_tours ORDER BY %s LIMIT %s OFFSET %s`,
		daysCol, base, dedupOrder, resultOrder, limit, offset)

	return SearchSQL{
		Query:      query,
		CountQuery: countQuery,
		Args:       q.args,
		CountArgs:  countArgs,
	}
}
