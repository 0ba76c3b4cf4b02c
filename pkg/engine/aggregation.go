package engine

import (
	"fmt"
	"strings"
)

// compileAggregation dispatches on the aggregation sub-kind. All
// variants aggregate over the full graph (optionally narrowed by
// seniority) and return stable column names the formatter keys on.
func compileAggregation(plan Plan, cfg Config) Query {
	switch plan.Aggregation {
	case AggregationAverageRate:
		return compileAverageRate(plan)
	case AggregationCapacity:
		return compileCapacity()
	case AggregationSkillsDist:
		return compileSkillsDistribution(plan, cfg)
	case AggregationExperience:
		return compileExperience()
	}
	return compileOverview()
}

func compileAverageRate(plan Plan) Query {
	params := map[string]any{}
	var b strings.Builder

	b.WriteString("MATCH (p:Person)\n")
	if plan.Seniority != "" {
		b.WriteString("WHERE toLower(coalesce(p.seniority, '')) = $seniority\n")
		params["seniority"] = strings.ToLower(plan.Seniority)
	}
	b.WriteString("RETURN round(avg(coalesce(p.rate, 0.0)), 2) AS average_rate,\n")
	b.WriteString("       round(min(coalesce(p.rate, 0.0)), 2) AS min_rate,\n")
	b.WriteString("       round(max(coalesce(p.rate, 0.0)), 2) AS max_rate,\n")
	b.WriteString("       count(p) AS total_people")

	return Query{Text: b.String(), Params: params}
}

func compileCapacity() Query {
	return Query{
		Text: "MATCH (p:Person)\n" +
			"OPTIONAL MATCH (p)-[r:ASSIGNED_TO]->()\n" +
			"WITH p, sum(coalesce(r.allocation, 0.0)) AS load\n" +
			"RETURN count(p) AS total_people,\n" +
			"       sum(CASE WHEN load = 0.0 THEN 1 ELSE 0 END) AS fully_available,\n" +
			"       sum(CASE WHEN load > 0.0 AND load < 1.0 THEN 1 ELSE 0 END) AS partially_available,\n" +
			"       sum(CASE WHEN load >= 1.0 THEN 1 ELSE 0 END) AS fully_booked,\n" +
			"       round(sum(CASE WHEN load >= 1.0 THEN 0.0 ELSE 1.0 - load END), 2) AS spare_capacity_fte",
		Params: map[string]any{},
	}
}

func compileSkillsDistribution(plan Plan, cfg Config) Query {
	params := map[string]any{}

	switch plan.AggregationBucket {
	case "graduation_year":
		return Query{
			Text: "MATCH (p:Person)-[:HAS_SKILL]->(s:Skill)\n" +
				"WITH coalesce(toString(p.graduation_year), 'unknown') AS bucket, p, s\n" +
				"RETURN bucket, count(DISTINCT p) AS people, count(DISTINCT s) AS distinct_skills\n" +
				"ORDER BY bucket ASC",
			Params: params,
		}
	case "timezone":
		return Query{
			Text: "MATCH (p:Person)-[:HAS_SKILL]->(s:Skill)\n" +
				"WITH coalesce(p.timezone, 'unknown') AS bucket, p, s\n" +
				"RETURN bucket, count(DISTINCT p) AS people, count(DISTINCT s) AS distinct_skills\n" +
				"ORDER BY bucket ASC",
			Params: params,
		}
	}

	return Query{
		Text: "MATCH (p:Person)-[:HAS_SKILL]->(s:Skill)\n" +
			"RETURN s.name AS skill, count(DISTINCT p) AS people\n" +
			"ORDER BY people DESC, skill ASC\n" +
			fmt.Sprintf("LIMIT %d", cfg.ResultLimit),
		Params: params,
	}
}

func compileExperience() Query {
	return Query{
		Text: "MATCH (p:Person)\n" +
			"OPTIONAL MATCH (p)-[w:WORKED_AT]->(:Company)\n" +
			"WITH p, sum(coalesce(w.years, 0.0)) AS years\n" +
			"RETURN round(avg(years), 2) AS average_experience_years,\n" +
			"       round(max(years), 2) AS max_experience_years,\n" +
			"       count(p) AS total_people",
		Params: map[string]any{},
	}
}

func compileOverview() Query {
	return Query{
		Text: "MATCH (p:Person)\n" +
			"OPTIONAL MATCH (p)-[:HAS_SKILL]->(s:Skill)\n" +
			"OPTIONAL MATCH (p)-[r:ASSIGNED_TO]->()\n" +
			"RETURN count(DISTINCT p) AS total_people,\n" +
			"       count(DISTINCT s) AS total_unique_skills,\n" +
			"       count(DISTINCT r) AS total_assignments",
		Params: map[string]any{},
	}
}
