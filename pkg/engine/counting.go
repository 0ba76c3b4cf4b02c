package engine

import "strings"

// compileCounting produces a single-row count query. Every variant
// returns exactly one row with one `result` column so the formatter can
// stay oblivious to which entity was counted.
func compileCounting(plan Plan) Query {
	params := map[string]any{}

	switch {
	case plan.CertificationMode:
		var b strings.Builder
		b.WriteString("MATCH (p:Person)-[:EARNED]->(c:Certification)\n")
		if len(plan.Skills) > 0 {
			b.WriteString("WHERE toLower(c.name) CONTAINS $topic\n")
			params["topic"] = strings.ToLower(plan.Skills[0])
		}
		b.WriteString("RETURN count(DISTINCT p) AS result")
		return Query{Text: b.String(), Params: params}

	case plan.ProjectMode:
		params["statuses"] = []string{"active", "ongoing"}
		return Query{
			Text: "MATCH (proj:Project)\n" +
				"WHERE toLower(coalesce(proj.status, '')) IN $statuses\n" +
				"RETURN count(proj) AS result",
			Params: params,
		}

	case len(plan.Skills) > 0:
		var b strings.Builder
		b.WriteString("MATCH (p:Person)\n")
		b.WriteString(skillMatchClauses(plan.Skills, params))
		if plan.Availability.Type != AvailabilityNone {
			b.WriteString("WITH DISTINCT p\n")
			b.WriteString("OPTIONAL MATCH (p)-[r:ASSIGNED_TO]->()\n")
			b.WriteString("WITH p, sum(coalesce(r.allocation, 0.0)) AS current_load\n")
			b.WriteString("WHERE current_load < 1.0\n")
		}
		b.WriteString("RETURN count(DISTINCT p) AS result")
		return Query{Text: b.String(), Params: params}
	}

	if plan.Availability.Type != AvailabilityNone {
		return Query{
			Text: "MATCH (p:Person)\n" +
				"OPTIONAL MATCH (p)-[r:ASSIGNED_TO]->()\n" +
				"WITH p, sum(coalesce(r.allocation, 0.0)) AS current_load\n" +
				"WHERE current_load < 1.0\n" +
				"RETURN count(DISTINCT p) AS result",
			Params: params,
		}
	}

	return Query{
		Text:   "MATCH (p:Person)\nRETURN count(p) AS result",
		Params: params,
	}
}
