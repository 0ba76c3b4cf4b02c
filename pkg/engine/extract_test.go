package engine

import (
	"reflect"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{
			name:     "canonical names in question order",
			question: "Find senior React and TypeScript developers",
			want:     []string{"React", "TypeScript"},
		},
		{
			name:     "aliases normalize",
			question: "Who knows js, k8s and postgres?",
			want:     []string{"JavaScript", "Kubernetes", "PostgreSQL"},
		},
		{
			name:     "duplicates collapse",
			question: "python Python PYTHON",
			want:     []string{"Python"},
		},
		{
			name:     "word boundaries hold",
			question: "We are going forward",
			want:     []string{},
		},
		{
			name:     "multi word skill",
			question: "Any machine learning experts?",
			want:     []string{"Machine Learning"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := extractSkills(tc.question); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("extractSkills(%q) = %v, want %v", tc.question, got, tc.want)
			}
		})
	}
}

func TestExtractTimezone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		question string
		want     string
	}{
		{name: "explicit code", question: "developers in the pt timezone", want: "PT"},
		{name: "synonym without code", question: "anyone in the eastern timezone?", want: "ET"},
		{name: "synonym without zone word", question: "pacific developers", want: "PT"},
		{name: "bare code without zone context", question: "et cetera and more", want: ""},
		{name: "no signal", question: "find react developers", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := extractTimezone(tc.question); got != tc.want {
				t.Errorf("extractTimezone(%q) = %q, want %q", tc.question, got, tc.want)
			}
		})
	}
}

func TestExtractAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		question string
		want     Availability
	}{
		{
			name:     "next month",
			question: "who becomes available next month?",
			want:     Availability{Type: AvailabilityNextMonth},
		},
		{
			name:     "this month",
			question: "who frees up this month?",
			want:     Availability{Type: AvailabilityThisMonth},
		},
		{
			name:     "explicit quarter carries token",
			question: "capacity in q3?",
			want:     Availability{Type: AvailabilityQuarter, Value: "q3"},
		},
		{
			name:     "bare quarter",
			question: "who is free next quarter?",
			want:     Availability{Type: AvailabilityQuarter},
		},
		{
			name:     "assignment end",
			question: "who is free after their project ends?",
			want:     Availability{Type: AvailabilityAfterEnd},
		},
		{
			name:     "generic availability",
			question: "list available python developers",
			want:     Availability{Type: AvailabilityNow},
		},
		{
			name:     "no signal stays none",
			question: "list python developers",
			want:     Availability{Type: AvailabilityNone},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := extractAvailability(tc.question); got != tc.want {
				t.Errorf("extractAvailability(%q) = %+v, want %+v", tc.question, got, tc.want)
			}
		})
	}
}

func TestExtractParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		question string
		check    func(t *testing.T, plan Plan)
	}{
		{
			name:     "budget requires the budget word",
			question: "Optimal team under a $9000 budget",
			check: func(t *testing.T, plan Plan) {
				if plan.Budget.MaxRate != 9000 {
					t.Errorf("MaxRate = %v, want 9000", plan.Budget.MaxRate)
				}
				if plan.Scenario.Kind != ScenarioTeamOpt {
					t.Errorf("Scenario.Kind = %q, want %q", plan.Scenario.Kind, ScenarioTeamOpt)
				}
			},
		},
		{
			name:     "dollar amount without budget word is ignored",
			question: "Developers earning $120 per hour",
			check: func(t *testing.T, plan Plan) {
				if plan.Budget.MaxRate != 0 {
					t.Errorf("MaxRate = %v, want 0", plan.Budget.MaxRate)
				}
			},
		},
		{
			name:     "rfp keyword",
			question: "Who should staff the FinTech RFP?",
			check: func(t *testing.T, plan Plan) {
				if plan.Scenario.RFPKeyword != "FinTech" {
					t.Errorf("RFPKeyword = %q, want FinTech", plan.Scenario.RFPKeyword)
				}
			},
		},
		{
			name:     "request keyword",
			question: "Who should staff the Phoenix request?",
			check: func(t *testing.T, plan Plan) {
				if plan.Scenario.RFPKeyword != "Phoenix" {
					t.Errorf("RFPKeyword = %q, want Phoenix", plan.Scenario.RFPKeyword)
				}
			},
		},
		{
			name:     "people on projects keep their skill filter",
			question: "How many Python developers are assigned to projects?",
			check: func(t *testing.T, plan Plan) {
				if plan.ProjectMode {
					t.Error("ProjectMode = true, want false for a people question")
				}
				if !reflect.DeepEqual(plan.Skills, []string{"Python"}) {
					t.Errorf("Skills = %v, want [Python]", plan.Skills)
				}
			},
		},
		{
			name:     "active projects count as projects",
			question: "How many active projects are running?",
			check: func(t *testing.T, plan Plan) {
				if !plan.ProjectMode {
					t.Error("ProjectMode = false, want true")
				}
			},
		},
		{
			name:     "focus person and collab kind",
			question: "Who worked with Jacob Young?",
			check: func(t *testing.T, plan Plan) {
				if plan.Reasoning.FocusPerson != "Jacob Young" {
					t.Errorf("FocusPerson = %q, want Jacob Young", plan.Reasoning.FocusPerson)
				}
				if plan.Reasoning.Kind != ReasoningCollab {
					t.Errorf("Reasoning.Kind = %q, want %q", plan.Reasoning.Kind, ReasoningCollab)
				}
			},
		},
		{
			name:     "successful collaboration kind",
			question: "Which pairs worked together successfully?",
			check: func(t *testing.T, plan Plan) {
				if plan.Reasoning.Kind != ReasoningCollabSuccess {
					t.Errorf("Reasoning.Kind = %q, want %q", plan.Reasoning.Kind, ReasoningCollabSuccess)
				}
			},
		},
		{
			name:     "gap scenario",
			question: "Run a skills gap analysis for the pipeline",
			check: func(t *testing.T, plan Plan) {
				if plan.Scenario.Kind != ScenarioGap {
					t.Errorf("Scenario.Kind = %q, want %q", plan.Scenario.Kind, ScenarioGap)
				}
			},
		},
		{
			name:     "risk scenario",
			question: "Which skills are a single point of failure?",
			check: func(t *testing.T, plan Plan) {
				if plan.Scenario.Kind != ScenarioRisk {
					t.Errorf("Scenario.Kind = %q, want %q", plan.Scenario.Kind, ScenarioRisk)
				}
			},
		},
		{
			name:     "certification and seniority",
			question: "How many senior developers hold AWS certifications?",
			check: func(t *testing.T, plan Plan) {
				if !plan.CertificationMode {
					t.Error("CertificationMode = false, want true")
				}
				if plan.Seniority != "senior" {
					t.Errorf("Seniority = %q, want senior", plan.Seniority)
				}
				if !reflect.DeepEqual(plan.Skills, []string{"AWS"}) {
					t.Errorf("Skills = %v, want [AWS]", plan.Skills)
				}
			},
		},
		{
			name:     "team size and allocation",
			question: "Simulate 3 people at 0.5 allocation",
			check: func(t *testing.T, plan Plan) {
				if plan.Team.Size != 3 {
					t.Errorf("Team.Size = %d, want 3", plan.Team.Size)
				}
				if plan.Team.Allocation != 0.5 {
					t.Errorf("Team.Allocation = %v, want 0.5", plan.Team.Allocation)
				}
			},
		},
		{
			name:     "distribution bucket",
			question: "Show the skill distribution by graduation year",
			check: func(t *testing.T, plan Plan) {
				if plan.Aggregation != AggregationSkillsDist {
					t.Errorf("Aggregation = %q, want %q", plan.Aggregation, AggregationSkillsDist)
				}
				if plan.AggregationBucket != "graduation_year" {
					t.Errorf("AggregationBucket = %q, want graduation_year", plan.AggregationBucket)
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.check(t, extractParams(tc.question))
		})
	}
}
