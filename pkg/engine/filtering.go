package engine

import (
	"fmt"
	"strings"
)

// compileFiltering produces the people-listing query: conjunctive skill
// matches, optional profile equality filters, an optional spare-capacity
// gate, and a final re-collection of each survivor's full skill list for
// display.
func compileFiltering(plan Plan, cfg Config) Query {
	params := map[string]any{}
	var b strings.Builder

	b.WriteString("MATCH (p:Person)\n")

	conds := []string{}
	if plan.Seniority != "" {
		conds = append(conds, "toLower(coalesce(p.seniority, '')) = $seniority")
		params["seniority"] = strings.ToLower(plan.Seniority)
	}
	if plan.Timezone != "" {
		conds = append(conds, "p.timezone = $timezone")
		params["timezone"] = plan.Timezone
	}
	if plan.Location != "" {
		conds = append(conds, "toLower(coalesce(p.location, '')) = $location")
		params["location"] = strings.ToLower(plan.Location)
	}
	if len(conds) > 0 {
		b.WriteString("WHERE " + strings.Join(conds, " AND ") + "\n")
	}

	b.WriteString(skillMatchClauses(plan.Skills, params))
	if len(plan.Skills) > 0 {
		b.WriteString("WITH DISTINCT p\n")
	}

	b.WriteString("OPTIONAL MATCH (p)-[r:ASSIGNED_TO]->()\n")
	b.WriteString("WITH p, sum(coalesce(r.allocation, 0.0)) AS current_load\n")
	if plan.Availability.Type != AvailabilityNone {
		b.WriteString("WHERE current_load < 1.0\n")
	}

	b.WriteString("OPTIONAL MATCH (p)-[:HAS_SKILL]->(sk:Skill)\n")
	b.WriteString("RETURN p.name AS name, p.role AS role, p.seniority AS seniority,\n")
	b.WriteString("       coalesce(p.rate, 0.0) AS rate, p.timezone AS timezone,\n")
	b.WriteString("       round(current_load * 100) AS utilization_percent,\n")
	b.WriteString("       collect(DISTINCT sk.name) AS skills\n")
	b.WriteString("ORDER BY current_load ASC, name ASC\n")
	fmt.Fprintf(&b, "LIMIT %d", cfg.ResultLimit)

	return Query{Text: b.String(), Params: params}
}
