package engine

import (
	"sort"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/graph"
)

// RiskLevel grades a single point of failure by its owner's load.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// classifyRisk maps an owner's utilization onto a risk level using the
// configured thresholds.
func classifyRisk(load float64, cfg Config) RiskLevel {
	switch {
	case load >= cfg.RiskHighLoad:
		return RiskHigh
	case load >= cfg.RiskMediumLoad:
		return RiskMedium
	}
	return RiskLow
}

// riskRank orders levels for sorting, highest risk first.
func riskRank(level RiskLevel) int {
	switch level {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	}
	return 0
}

// annotateRisk enriches each single-owner skill row with its risk level
// and re-sorts: highest risk first, then highest load, then skill name.
func annotateRisk(rows []graph.Row, cfg Config) []graph.Row {
	out := make([]graph.Row, 0, len(rows))
	for _, row := range rows {
		enriched := graph.Row{}
		for k, v := range row {
			enriched[k] = v
		}
		enriched["risk_level"] = string(classifyRisk(row.Float("current_load", 0), cfg))
		out = append(out, enriched)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri := riskRank(RiskLevel(out[i].String("risk_level", "")))
		rj := riskRank(RiskLevel(out[j].String("risk_level", "")))
		if ri != rj {
			return ri > rj
		}
		li := out[i].Float("current_load", 0)
		lj := out[j].Float("current_load", 0)
		if li != lj {
			return li > lj
		}
		return out[i].String("skill", "") < out[j].String("skill", "")
	})
	return out
}

// missingSkills returns required minus available, preserving the order
// of the required list. Comparison is exact; both sides are already
// lowercased by the gap query.
func missingSkills(required, available []string) []string {
	have := make(map[string]bool, len(available))
	for _, s := range available {
		have[s] = true
	}

	missing := []string{}
	for _, s := range required {
		if !have[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

// analyzeGap reduces the gap query's single row to a summary row with
// the computed missing-skills set. A zero-row result (no pipeline
// demand) passes through unchanged.
func analyzeGap(rows []graph.Row) []graph.Row {
	if len(rows) == 0 {
		return rows
	}

	required := rows[0].Strings("required_skills")
	available := rows[0].Strings("available_skills")
	return []graph.Row{{
		"required_skills":  required,
		"available_skills": available,
		"missing_skills":   missingSkills(required, available),
	}}
}

// selectDiverseTeam greedily picks at most one person per role from the
// ranked candidate rows, capped at cfg.TeamRoleCap roles. Within a role
// the best candidate wins: most matched skills, then most spare
// capacity, then lowest rate. A person is never picked twice.
func selectDiverseTeam(candidates []graph.Row, cfg Config) []graph.Row {
	ranked := make([]graph.Row, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		mi := len(ranked[i].Strings("matched_skills"))
		mj := len(ranked[j].Strings("matched_skills"))
		if mi != mj {
			return mi > mj
		}
		ai := ranked[i].Float("availability_percent", 0)
		aj := ranked[j].Float("availability_percent", 0)
		if ai != aj {
			return ai > aj
		}
		return ranked[i].Float("rate", 0) < ranked[j].Float("rate", 0)
	})

	team := []graph.Row{}
	usedRoles := map[string]bool{}
	usedNames := map[string]bool{}
	for _, c := range ranked {
		if len(team) >= cfg.TeamRoleCap {
			break
		}
		name := c.String("name", "")
		role := c.String("role", "")
		if name == "" || usedNames[name] || usedRoles[role] {
			continue
		}
		usedNames[name] = true
		usedRoles[role] = true
		team = append(team, c)
	}
	return team
}
