package engine

import (
	"fmt"
	"strings"
)

// compileReasoning builds the two-hop relationship queries. Unfocused
// pair queries carry a `p1.name < p2.name` guard so each pair appears
// exactly once; focused queries drop the guard and pin one endpoint
// instead.
func compileReasoning(plan Plan, cfg Config) Query {
	switch plan.Reasoning.Kind {
	case ReasoningUniPair:
		return compileUniversityPairs(cfg)
	case ReasoningUniTop:
		return compileUniversityTopPerformers(cfg)
	case ReasoningCollabSuccess:
		return compileCollaboration(plan, cfg, true)
	}
	return compileCollaboration(plan, cfg, false)
}

func compileCollaboration(plan Plan, cfg Config, successOnly bool) Query {
	params := map[string]any{}
	var b strings.Builder

	b.WriteString("MATCH (p1:Person)-[:WORKED_AT]->(c:Company)<-[:WORKED_AT]-(p2:Person)\n")
	if plan.Reasoning.FocusPerson != "" {
		b.WriteString("WHERE toLower(p1.name) = toLower($person) AND p1.name <> p2.name\n")
		params["person"] = plan.Reasoning.FocusPerson
	} else {
		b.WriteString("WHERE p1.name < p2.name\n")
	}

	b.WriteString("WITH p1, p2, collect(DISTINCT c.name) AS companies\n")
	if successOnly {
		b.WriteString("WHERE size(companies) >= 2\n")
		b.WriteString("   OR (coalesce(p1.performance_score, 0.0) >= $minScore AND coalesce(p2.performance_score, 0.0) >= $minScore)\n")
		params["minScore"] = cfg.PerformanceFloor
	}

	b.WriteString("RETURN p1.name AS person_a, p2.name AS person_b,\n")
	b.WriteString("       companies, size(companies) AS shared_companies\n")
	b.WriteString("ORDER BY shared_companies DESC, person_a ASC, person_b ASC\n")
	fmt.Fprintf(&b, "LIMIT %d", cfg.PairLimit)

	return Query{Text: b.String(), Params: params}
}

func compileUniversityPairs(cfg Config) Query {
	return Query{
		Text: "MATCH (p1:Person)-[:STUDIED_AT]->(u:University)<-[:STUDIED_AT]-(p2:Person)\n" +
			"WHERE p1.name < p2.name\n" +
			"RETURN p1.name AS person_a, p2.name AS person_b, u.name AS university\n" +
			"ORDER BY university ASC, person_a ASC, person_b ASC\n" +
			fmt.Sprintf("LIMIT %d", cfg.PairLimit),
		Params: map[string]any{},
	}
}

func compileUniversityTopPerformers(cfg Config) Query {
	return Query{
		Text: "MATCH (p1:Person)-[:STUDIED_AT]->(u:University)<-[:STUDIED_AT]-(p2:Person)\n" +
			"WHERE coalesce(p1.performance_score, 0.0) >= $minScore AND p1.name <> p2.name\n" +
			"RETURN p1.name AS top_performer,\n" +
			"       coalesce(p1.performance_score, 0.0) AS performance_score,\n" +
			"       p2.name AS classmate, u.name AS university\n" +
			"ORDER BY performance_score DESC, top_performer ASC, classmate ASC\n" +
			fmt.Sprintf("LIMIT %d", cfg.PairLimit),
		Params: map[string]any{"minScore": cfg.PerformanceFloor},
	}
}
