package engine

import (
	"testing"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/graph"
)

func TestFormatAnswer(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	tests := []struct {
		name string
		plan Plan
		rows []graph.Row
		want string
	}{
		{
			name: "empty rows",
			plan: Plan{Category: CategoryFiltering},
			rows: []graph.Row{},
			want: noRecordsAnswer,
		},
		{
			name: "counting with skill and availability",
			plan: Plan{
				Category:     CategoryCounting,
				Skills:       []string{"Python"},
				Availability: Availability{Type: AvailabilityNow},
			},
			rows: []graph.Row{{"result": int64(4)}},
			want: "There are 4 available Python developers.",
		},
		{
			name: "counting certifications",
			plan: Plan{Category: CategoryCounting, CertificationMode: true},
			rows: []graph.Row{{"result": int64(7)}},
			want: "There are 7 certified people.",
		},
		{
			name: "counting projects",
			plan: Plan{Category: CategoryCounting, ProjectMode: true},
			rows: []graph.Row{{"result": int64(3)}},
			want: "There are 3 active projects.",
		},
		{
			name: "capacity aggregation",
			plan: Plan{Category: CategoryAggregation, Aggregation: AggregationCapacity},
			rows: []graph.Row{{
				"total_people": int64(10), "fully_available": int64(3),
				"partially_available": int64(4), "fully_booked": int64(3),
				"spare_capacity_fte": 5.25,
			}},
			want: "Of 10 people, 3 are fully available, 4 partially available and 3 fully booked (5.25 FTE spare).",
		},
		{
			name: "gap with missing skills",
			plan: Plan{Category: CategoryScenario, Scenario: Scenario{Kind: ScenarioGap}},
			rows: []graph.Row{{
				"required_skills":  []any{"python", "aws", "security"},
				"available_skills": []any{"python", "aws"},
				"missing_skills":   []any{"security"},
			}},
			want: "Skill gap: 1 of 3 required skills have no available coverage: security.",
		},
		{
			name: "gap fully covered",
			plan: Plan{Category: CategoryScenario, Scenario: Scenario{Kind: ScenarioGap}},
			rows: []graph.Row{{
				"required_skills":  []any{"python"},
				"available_skills": []any{"python"},
				"missing_skills":   []any{},
			}},
			want: "No skill gap: all 1 required skills are covered by available people.",
		},
		{
			name: "gap with no pipeline demand",
			plan: Plan{Category: CategoryScenario, Scenario: Scenario{Kind: ScenarioGap}},
			rows: []graph.Row{},
			want: "No pipeline projects declare skill requirements, so there is no skill gap to report.",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := formatAnswer(tc.plan, tc.rows, cfg); got != tc.want {
				t.Errorf("formatAnswer() = %q, want %q", got, tc.want)
			}
		})
	}
}

// The team formatter receives the already-selected team rows, not the
// raw candidate pool.
func TestFormatAnswerTeamSuggestion(t *testing.T) {
	t.Parallel()

	plan := Plan{Category: CategoryScenario, Scenario: Scenario{Kind: ScenarioTeamOpt}}
	team := []graph.Row{
		{"name": "Alice", "role": "Backend", "rate": 100.0, "availability_percent": 100.0, "matched_skills": []any{"python", "aws"}},
		{"name": "Carol", "role": "Frontend", "rate": 90.0, "availability_percent": 50.0, "matched_skills": []any{"react"}},
	}

	got := formatAnswer(plan, team, DefaultConfig())
	want := "Suggested team of 2: Alice (Backend, $100/h), Carol (Frontend, $90/h). Combined rate $190/h."
	if got != want {
		t.Errorf("formatAnswer() = %q, want %q", got, want)
	}
}
