package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/ai"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/graph"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"
)

const noRecordsAnswer = "No matching records were found in the talent graph."

const paraphrasePrompt = `You are a staffing analyst. Answer the question below in one or two
sentences using ONLY the data provided. Do not invent names or numbers.

Question: %QUESTION%

Data:
%DATA%`

// formatAnswer renders the deterministic natural-language answer for a
// category and its (post-processed) result rows.
func formatAnswer(plan Plan, rows []graph.Row, cfg Config) string {
	if len(rows) == 0 {
		if plan.Category == CategoryScenario && plan.Scenario.Kind == ScenarioGap {
			return "No pipeline projects declare skill requirements, so there is no skill gap to report."
		}
		return noRecordsAnswer
	}

	switch plan.Category {
	case CategoryCounting:
		return formatCounting(plan, rows)
	case CategoryFiltering:
		return formatPeopleList(rows, "Found %d matching people: %s.")
	case CategoryAggregation:
		return formatAggregation(plan, rows)
	case CategoryReasoning:
		return formatReasoning(plan, rows)
	case CategoryTemporal:
		return formatTemporal(plan, rows)
	case CategoryScenario:
		return formatScenario(plan, rows, cfg)
	}
	return noRecordsAnswer
}

func formatCounting(plan Plan, rows []graph.Row) string {
	count := rows[0].Int("result", 0)

	subject := "people"
	switch {
	case plan.CertificationMode:
		subject = "certified people"
	case plan.ProjectMode:
		subject = "active projects"
	case len(plan.Skills) > 0:
		subject = strings.Join(plan.Skills, " + ") + " developers"
	}
	if plan.Availability.Type != AvailabilityNone && !plan.ProjectMode {
		subject = "available " + subject
	}
	return fmt.Sprintf("There are %d %s.", count, subject)
}

func formatPeopleList(rows []graph.Row, template string) string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if name := row.String("name", ""); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return noRecordsAnswer
	}
	shown := names
	if len(shown) > 5 {
		shown = shown[:5]
	}
	return fmt.Sprintf(template, len(names), strings.Join(shown, ", "))
}

func formatAggregation(plan Plan, rows []graph.Row) string {
	row := rows[0]
	switch plan.Aggregation {
	case AggregationAverageRate:
		return fmt.Sprintf("The average rate is $%.2f/h across %d people (min $%.2f, max $%.2f).",
			row.Float("average_rate", 0), row.Int("total_people", 0),
			row.Float("min_rate", 0), row.Float("max_rate", 0))
	case AggregationCapacity:
		return fmt.Sprintf("Of %d people, %d are fully available, %d partially available and %d fully booked (%.2f FTE spare).",
			row.Int("total_people", 0), row.Int("fully_available", 0),
			row.Int("partially_available", 0), row.Int("fully_booked", 0),
			row.Float("spare_capacity_fte", 0))
	case AggregationSkillsDist:
		parts := make([]string, 0, len(rows))
		for i, r := range rows {
			if i >= 5 {
				break
			}
			if skill := r.String("skill", ""); skill != "" {
				parts = append(parts, fmt.Sprintf("%s (%d)", skill, r.Int("people", 0)))
			} else {
				parts = append(parts, fmt.Sprintf("%s: %d people, %d skills",
					r.String("bucket", "unknown"), r.Int("people", 0), r.Int("distinct_skills", 0)))
			}
		}
		return "Skill distribution: " + strings.Join(parts, "; ") + "."
	case AggregationExperience:
		return fmt.Sprintf("Average experience is %.1f years across %d people (max %.1f years).",
			row.Float("average_experience_years", 0), row.Int("total_people", 0),
			row.Float("max_experience_years", 0))
	}
	return fmt.Sprintf("The graph holds %d people, %d unique skills and %d assignments.",
		row.Int("total_people", 0), row.Int("total_unique_skills", 0), row.Int("total_assignments", 0))
}

func formatReasoning(plan Plan, rows []graph.Row) string {
	switch plan.Reasoning.Kind {
	case ReasoningUniPair:
		first := rows[0]
		return fmt.Sprintf("Found %d university pairs, e.g. %s and %s both studied at %s.",
			len(rows), first.String("person_a", "?"), first.String("person_b", "?"),
			first.String("university", "?"))
	case ReasoningUniTop:
		first := rows[0]
		return fmt.Sprintf("Found %d top-performer classmate pairs, led by %s (score %.1f) with %s at %s.",
			len(rows), first.String("top_performer", "?"), first.Float("performance_score", 0),
			first.String("classmate", "?"), first.String("university", "?"))
	}

	first := rows[0]
	label := "collaboration pairs"
	if plan.Reasoning.Kind == ReasoningCollabSuccess {
		label = "proven collaboration pairs"
	}
	return fmt.Sprintf("Found %d %s; %s and %s share %d compan%s.",
		len(rows), label, first.String("person_a", "?"), first.String("person_b", "?"),
		first.Int("shared_companies", 0), plural(first.Int("shared_companies", 0), "y", "ies"))
}

func formatTemporal(plan Plan, rows []graph.Row) string {
	if plan.Availability.Type == AvailabilityAfterEnd {
		first := rows[0]
		return fmt.Sprintf("%d assignments are ending; the next is %s on %q, finishing %s.",
			len(rows), first.String("name", "?"), first.String("project", "?"),
			first.String("finishes_on", "?"))
	}
	return formatPeopleList(rows, "%d people have upcoming availability: %s.")
}

func formatScenario(plan Plan, rows []graph.Row, cfg Config) string {
	switch plan.Scenario.Kind {
	case ScenarioGap:
		row := rows[0]
		missing := row.Strings("missing_skills")
		if len(missing) == 0 {
			return fmt.Sprintf("No skill gap: all %d required skills are covered by available people.",
				len(row.Strings("required_skills")))
		}
		return fmt.Sprintf("Skill gap: %d of %d required skills have no available coverage: %s.",
			len(missing), len(row.Strings("required_skills")), strings.Join(missing, ", "))
	case ScenarioRisk:
		high := 0
		for _, r := range rows {
			if r.String("risk_level", "") == string(RiskHigh) {
				high++
			}
		}
		first := rows[0]
		return fmt.Sprintf("%d skills are single points of failure (%d high risk); most critical is %s, held only by %s (%s).",
			len(rows), high, first.String("skill", "?"), first.String("owner", "?"),
			first.String("risk_level", "?"))
	case ScenarioTeamOpt:
		// Rows already hold the selected team, one person per role.
		members := make([]string, 0, len(rows))
		total := 0.0
		for _, m := range rows {
			members = append(members, fmt.Sprintf("%s (%s, $%.0f/h)",
				m.String("name", "?"), m.String("role", "?"), m.Float("rate", 0)))
			total += m.Float("rate", 0)
		}
		return fmt.Sprintf("Suggested team of %d: %s. Combined rate $%.0f/h.",
			len(rows), strings.Join(members, ", "), total)
	}

	totalSpare := 0.0
	for _, r := range rows {
		totalSpare += r.Float("spare_capacity", 0)
	}
	listed := formatPeopleList(rows, "%d people could take the hypothetical engagement: %s.")
	if listed == noRecordsAnswer {
		return listed
	}
	return fmt.Sprintf("%s Combined spare capacity: %.2f FTE.", listed, totalSpare)
}

func plural(n int64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// paraphrase asks the language model to restate the deterministic
// answer's underlying rows conversationally. Any failure falls back to
// the deterministic text, so answers degrade but never break.
func paraphrase(ctx context.Context, llm ai.Client, question, deterministic string, rows []graph.Row) string {
	if llm == nil || len(rows) == 0 {
		return deterministic
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return deterministic
	}

	prompt := strings.NewReplacer(
		"%QUESTION%", question,
		"%DATA%", string(data),
	).Replace(paraphrasePrompt)

	response, err := llm.GenerateCompletion(ctx, prompt, ai.WithTemperature(0.2))
	if err != nil {
		logger.Warn("Answer paraphrase failed, using deterministic text", "err", err)
		return deterministic
	}
	if trimmed := strings.TrimSpace(response); trimmed != "" {
		return trimmed
	}
	return deterministic
}
