package engine

import (
	"fmt"
	"strings"
	"time"
)

// Query is a compiled, parameterized, read-only graph query together
// with its bound parameters. Parameters are always bound, never
// interpolated, so user text can not change the query shape.
type Query struct {
	Text   string         `json:"text"`
	Params map[string]any `json:"params"`
}

// Compile synthesizes the graph query for a plan. It is a pure
// function: the same (plan, now, cfg) always produces byte-identical
// query text and equal parameters. The reference time is only consumed
// by temporal window arithmetic.
func Compile(plan Plan, now time.Time, cfg Config) (Query, error) {
	switch plan.Category {
	case CategoryCounting:
		return compileCounting(plan), nil
	case CategoryFiltering:
		return compileFiltering(plan, cfg), nil
	case CategoryAggregation:
		return compileAggregation(plan, cfg), nil
	case CategoryReasoning:
		return compileReasoning(plan, cfg), nil
	case CategoryTemporal:
		return compileTemporal(plan, now, cfg), nil
	case CategoryScenario:
		return compileScenario(plan, cfg), nil
	}
	return Query{}, fmt.Errorf("%w: %q", ErrUnsupportedCategory, plan.Category)
}

// skillMatchClauses renders one conjunctive HAS_SKILL match per
// requested skill and binds the lowercased skill names. All requested
// skills must match for a person to survive. A substring can match
// several skill nodes and duplicate p's rows, so callers must restore
// row uniqueness (WITH DISTINCT p) before aggregating over other
// relationships.
func skillMatchClauses(skills []string, params map[string]any) string {
	var b strings.Builder
	for i, skill := range skills {
		key := fmt.Sprintf("skill%d", i)
		fmt.Fprintf(&b, "MATCH (p)-[:HAS_SKILL]->(s%d:Skill)\nWHERE toLower(s%d.name) CONTAINS $%s\n", i, i, key)
		params[key] = strings.ToLower(skill)
	}
	return b.String()
}
