package engine

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// resolveWindow turns an availability constraint into a concrete
// calendar window relative to the reference time. The second return is
// false for constraints that carry no window (none, now, after_end).
func resolveWindow(av Availability, now time.Time) (start, end time.Time, ok bool) {
	year, month, _ := now.Date()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	switch av.Type {
	case AvailabilityThisMonth:
		return monthStart, monthStart.AddDate(0, 1, -1), true
	case AvailabilityNextMonth:
		start = monthStart.AddDate(0, 1, 0)
		return start, start.AddDate(0, 1, -1), true
	case AvailabilityQuarter:
		quarter := (int(month)-1)/3 + 1
		if len(av.Value) == 2 && strings.HasPrefix(av.Value, "q") {
			quarter = int(av.Value[1] - '0')
		}
		start = time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, -1), true
	}
	return time.Time{}, time.Time{}, false
}

// compileTemporal answers when-questions. Windowed variants treat a
// person as free when their latest assignment ends on or before the
// window start (dates compare lexically as ISO-8601 strings) or when
// they already have spare capacity.
func compileTemporal(plan Plan, now time.Time, cfg Config) Query {
	if start, _, ok := resolveWindow(plan.Availability, now); ok {
		return Query{
			Text: "MATCH (p:Person)\n" +
				"OPTIONAL MATCH (p)-[r:ASSIGNED_TO]->(proj:Project)\n" +
				"WITH p, sum(coalesce(r.allocation, 0.0)) AS current_load,\n" +
				"     max(coalesce(r.end_date, proj.end_date)) AS latest_finish\n" +
				"WHERE latest_finish IS NULL OR latest_finish <= $windowStart OR current_load < 1.0\n" +
				"RETURN p.name AS name, p.role AS role, latest_finish AS frees_up_on,\n" +
				"       round((1.0 - CASE WHEN current_load >= 1.0 THEN 1.0 ELSE current_load END) * 100) AS spare_capacity_percent\n" +
				"ORDER BY spare_capacity_percent DESC, name ASC\n" +
				fmt.Sprintf("LIMIT %d", cfg.ResultLimit),
			Params: map[string]any{
				"windowStart": start.Format(dateLayout),
			},
		}
	}

	if plan.Availability.Type == AvailabilityAfterEnd {
		return Query{
			Text: "MATCH (p:Person)-[r:ASSIGNED_TO]->(proj:Project)\n" +
				"WITH p, proj, coalesce(r.end_date, proj.end_date) AS finishes_on\n" +
				"WHERE finishes_on IS NOT NULL\n" +
				"RETURN p.name AS name, proj.title AS project, finishes_on\n" +
				"ORDER BY finishes_on ASC, name ASC\n" +
				fmt.Sprintf("LIMIT %d", cfg.ResultLimit),
			Params: map[string]any{},
		}
	}

	return Query{
		Text: "MATCH (p:Person)\n" +
			"OPTIONAL MATCH (p)-[r:ASSIGNED_TO]->()\n" +
			"WITH p, sum(coalesce(r.allocation, 0.0)) AS current_load\n" +
			"WHERE current_load < 1.0\n" +
			"RETURN p.name AS name, p.role AS role,\n" +
			"       round((1.0 - current_load) * 100) AS spare_capacity_percent\n" +
			"ORDER BY spare_capacity_percent DESC, name ASC\n" +
			fmt.Sprintf("LIMIT %d", cfg.ResultLimit),
		Params: map[string]any{},
	}
}
