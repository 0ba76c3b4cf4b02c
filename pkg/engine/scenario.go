package engine

import (
	"fmt"
	"strings"
)

// pipelineStatuses are the project statuses that count as demand for
// the skill-gap analysis.
var pipelineStatuses = []string{"new-request", "active"}

func compileScenario(plan Plan, cfg Config) Query {
	switch plan.Scenario.Kind {
	case ScenarioGap:
		return compileSkillGap()
	case ScenarioRisk:
		return compileSkillRisk()
	case ScenarioTeamOpt:
		return compileTeamOptimization(plan, cfg)
	}
	return compileWhatIf(plan, cfg)
}

// compileSkillGap collects pipeline demand and spare-capacity supply in
// one pass; the actual set difference is computed over the result rows
// so it stays deterministic and unit-testable.
func compileSkillGap() Query {
	return Query{
		Text: "MATCH (proj:Project)-[:REQUIRES|NEEDS]->(rs:Skill)\n" +
			"WHERE toLower(coalesce(proj.status, '')) IN $statuses\n" +
			"WITH collect(DISTINCT toLower(rs.name)) AS required_skills\n" +
			"OPTIONAL MATCH (p:Person)\n" +
			"OPTIONAL MATCH (p)-[a:ASSIGNED_TO]->()\n" +
			"WITH required_skills, p, sum(coalesce(a.allocation, 0.0)) AS load\n" +
			"WHERE p IS NULL OR load < 1.0\n" +
			"OPTIONAL MATCH (p)-[:HAS_SKILL]->(s:Skill)\n" +
			"RETURN required_skills, collect(DISTINCT toLower(s.name)) AS available_skills",
		Params: map[string]any{"statuses": pipelineStatuses},
	}
}

// compileSkillRisk surfaces skills held by exactly one person together
// with that person's utilization. Risk levels are assigned over the
// result rows.
func compileSkillRisk() Query {
	return Query{
		Text: "MATCH (p:Person)-[:HAS_SKILL]->(s:Skill)\n" +
			"WITH s.name AS skill, collect(DISTINCT p) AS owners\n" +
			"WHERE size(owners) = 1\n" +
			"WITH skill, owners[0] AS owner\n" +
			"OPTIONAL MATCH (owner)-[a:ASSIGNED_TO]->()\n" +
			"WITH skill, owner.name AS owner_name, sum(coalesce(a.allocation, 0.0)) AS load\n" +
			"RETURN skill, owner_name AS owner, round(load, 2) AS current_load\n" +
			"ORDER BY current_load DESC, skill ASC",
		Params: map[string]any{},
	}
}

// compileTeamOptimization ranks candidates for a staffing request. With
// an RFP keyword the requirements come from the named pipeline project;
// otherwise the question's own skill and budget constraints drive the
// match. The diverse-team pick runs over the returned candidates.
func compileTeamOptimization(plan Plan, cfg Config) Query {
	if plan.Scenario.RFPKeyword != "" {
		return Query{
			Text: "MATCH (req:Project)-[:REQUIRES|NEEDS]->(rs:Skill)\n" +
				"WHERE toLower(req.title) CONTAINS $rfp\n" +
				"WITH req, collect(DISTINCT toLower(rs.name)) AS required\n" +
				"MATCH (p:Person)\n" +
				"OPTIONAL MATCH (p)-[a:ASSIGNED_TO]->()\n" +
				"WITH req, required, p, sum(coalesce(a.allocation, 0.0)) AS load\n" +
				"WHERE load < 1.0\n" +
				"OPTIONAL MATCH (p)-[:HAS_SKILL]->(s:Skill)\n" +
				"WITH req.title AS request, required, p, load, collect(DISTINCT toLower(s.name)) AS held\n" +
				"RETURN request, p.name AS name, p.role AS role, coalesce(p.rate, 0.0) AS rate,\n" +
				"       round((1.0 - load) * 100) AS availability_percent,\n" +
				"       [x IN required WHERE x IN held] AS matched_skills,\n" +
				"       [x IN required WHERE NOT x IN held] AS missing_skills\n" +
				"ORDER BY size(missing_skills) ASC, size(matched_skills) DESC, rate ASC, name ASC\n" +
				fmt.Sprintf("LIMIT %d", cfg.PairLimit),
			Params: map[string]any{"rfp": strings.ToLower(plan.Scenario.RFPKeyword)},
		}
	}

	params := map[string]any{}
	var b strings.Builder

	b.WriteString("MATCH (p:Person)\n")
	b.WriteString(skillMatchClauses(plan.Skills, params))
	if len(plan.Skills) > 0 {
		b.WriteString("WITH DISTINCT p\n")
	}
	b.WriteString("OPTIONAL MATCH (p)-[a:ASSIGNED_TO]->()\n")
	b.WriteString("WITH p, sum(coalesce(a.allocation, 0.0)) AS load\n")

	conds := []string{}
	if plan.Team.Allocation > 0 {
		conds = append(conds, "1.0 - load >= $allocation")
		params["allocation"] = plan.Team.Allocation
	} else {
		conds = append(conds, "load < 1.0")
	}
	if plan.Budget.MaxRate > 0 {
		conds = append(conds, "coalesce(p.rate, 0.0) <= $maxRate")
		params["maxRate"] = plan.Budget.MaxRate
	}
	b.WriteString("WHERE " + strings.Join(conds, " AND ") + "\n")

	b.WriteString("OPTIONAL MATCH (p)-[:HAS_SKILL]->(sk:Skill)\n")
	b.WriteString("RETURN p.name AS name, p.role AS role, coalesce(p.rate, 0.0) AS rate,\n")
	b.WriteString("       round((1.0 - load) * 100) AS availability_percent,\n")
	b.WriteString("       collect(DISTINCT sk.name) AS skills\n")
	b.WriteString("ORDER BY rate ASC, availability_percent DESC, name ASC\n")
	fmt.Fprintf(&b, "LIMIT %d", cfg.PairLimit)

	return Query{Text: b.String(), Params: params}
}

// compileWhatIf simulates pulling people onto a hypothetical engagement
// at the requested allocation (full allocation when unstated).
func compileWhatIf(plan Plan, cfg Config) Query {
	allocation := plan.Team.Allocation
	if allocation <= 0 {
		allocation = cfg.DefaultAllocation
	}
	params := map[string]any{"allocation": allocation}

	var b strings.Builder
	b.WriteString("MATCH (p:Person)\n")
	b.WriteString(skillMatchClauses(plan.Skills, params))
	if len(plan.Skills) > 0 {
		b.WriteString("WITH DISTINCT p\n")
	}
	b.WriteString("OPTIONAL MATCH (p)-[a:ASSIGNED_TO]->()\n")
	b.WriteString("WITH p, sum(coalesce(a.allocation, 0.0)) AS load\n")
	b.WriteString("WITH p, round(CASE WHEN load >= 1.0 THEN 0.0 ELSE 1.0 - load END, 2) AS spare\n")

	conds := []string{"spare >= $allocation"}
	if plan.Timezone != "" {
		conds = append(conds, "p.timezone = $timezone")
		params["timezone"] = plan.Timezone
	}
	if plan.Budget.MaxRate > 0 {
		conds = append(conds, "coalesce(p.rate, 0.0) <= $maxRate")
		params["maxRate"] = plan.Budget.MaxRate
	}
	b.WriteString("WHERE " + strings.Join(conds, " AND ") + "\n")

	b.WriteString("RETURN p.name AS name, p.role AS role, coalesce(p.rate, 0.0) AS rate,\n")
	b.WriteString("       spare AS spare_capacity\n")
	b.WriteString("ORDER BY spare_capacity DESC, name ASC\n")
	fmt.Fprintf(&b, "LIMIT %d", cfg.ResultLimit)

	return Query{Text: b.String(), Params: params}
}
