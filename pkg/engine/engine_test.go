package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/graph"
)

// fakeExecutor records the last query and returns canned rows.
type fakeExecutor struct {
	rows      []graph.Row
	err       error
	lastQuery string
	lastParam map[string]any
}

func (f *fakeExecutor) Execute(_ context.Context, query string, params map[string]any) ([]graph.Row, error) {
	f.lastQuery = query
	f.lastParam = params
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeExecutor) Close(context.Context) error { return nil }

func TestEngineAnswerCounting(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{rows: []graph.Row{{"result": int64(5)}}}
	eng := New(exec)

	result, err := eng.Answer(t.Context(), "How many Python developers are available?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if !result.Success {
		t.Error("Success = false, want true")
	}
	if result.Category != CategoryCounting {
		t.Errorf("Category = %q, want %q", result.Category, CategoryCounting)
	}
	if want := "There are 5 available Python developers."; result.Answer != want {
		t.Errorf("Answer = %q, want %q", result.Answer, want)
	}
	if !strings.Contains(exec.lastQuery, "count(DISTINCT p)") {
		t.Errorf("executed query missing count:\n%s", exec.lastQuery)
	}
	if exec.lastParam["skill0"] != "python" {
		t.Errorf("skill0 = %v, want python", exec.lastParam["skill0"])
	}
}

func TestEngineAnswerEmptyGraphIsSuccess(t *testing.T) {
	t.Parallel()

	eng := New(&fakeExecutor{rows: []graph.Row{}})

	result, err := eng.Answer(t.Context(), "Find senior React developers")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if !result.Success {
		t.Error("empty result set must still be a success")
	}
	if result.Answer != noRecordsAnswer {
		t.Errorf("Answer = %q, want %q", result.Answer, noRecordsAnswer)
	}
}

func TestEngineAnswerExecutionFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	eng := New(&fakeExecutor{err: boom})

	result, err := eng.Answer(t.Context(), "How many people do we have?")
	if err == nil {
		t.Fatal("expected error")
	}

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error type = %T, want *ExecutionError", err)
	}
	if !errors.Is(err, boom) {
		t.Error("wrapped cause lost")
	}
	if result.Success {
		t.Error("Success = true on execution failure")
	}
	if result.Query == "" {
		t.Error("Query should be populated for auditability even on failure")
	}
}

func TestEngineAnswerRiskScenario(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{rows: []graph.Row{
		{"skill": "Cryptography", "owner": "Bob", "current_load": 0.95},
		{"skill": "Rust", "owner": "Alice", "current_load": 0.1},
	}}
	eng := New(exec)

	result, err := eng.Answer(t.Context(), "Which skills are a single point of failure?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if result.Category != CategoryScenario {
		t.Errorf("Category = %q, want %q", result.Category, CategoryScenario)
	}
	if got := result.Rows[0].String("risk_level", ""); got != "HIGH" {
		t.Errorf("first row risk_level = %q, want HIGH", got)
	}
	if !strings.Contains(result.Answer, "Cryptography") {
		t.Errorf("Answer = %q, want mention of the most critical skill", result.Answer)
	}
}

func TestEngineAnswerTeamScenarioPicksDiverseRows(t *testing.T) {
	t.Parallel()

	roles := []string{
		"Backend", "Backend", "Backend", "Backend",
		"Frontend", "Frontend", "Frontend",
		"DevOps", "DevOps", "DevOps",
	}
	candidates := make([]graph.Row, 0, len(roles))
	for i, role := range roles {
		candidates = append(candidates, graph.Row{
			"name":                 fmt.Sprintf("%s %d", role, i),
			"role":                 role,
			"rate":                 80.0 + float64(i),
			"availability_percent": 100.0,
			"matched_skills":       []any{"python"},
		})
	}
	exec := &fakeExecutor{rows: candidates}
	eng := New(exec)

	result, err := eng.Answer(t.Context(), "Build the optimal team under a $9000 budget")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if len(result.Rows) != 3 {
		t.Fatalf("Rows = %d people, want one per role", len(result.Rows))
	}
	seenRoles := map[string]bool{}
	seenNames := map[string]bool{}
	for _, row := range result.Rows {
		role := row.String("role", "")
		if seenRoles[role] {
			t.Errorf("role %q filled twice", role)
		}
		seenRoles[role] = true

		name := row.String("name", "")
		if seenNames[name] {
			t.Errorf("%q picked twice", name)
		}
		seenNames[name] = true
	}
	if !strings.Contains(result.Answer, "Suggested team of 3") {
		t.Errorf("Answer = %q, want the selected team size", result.Answer)
	}
}

func TestEngineAnswerGapScenario(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{rows: []graph.Row{{
		"required_skills":  []any{"python", "aws", "security"},
		"available_skills": []any{"python", "aws"},
	}}}
	eng := New(exec)

	result, err := eng.Answer(t.Context(), "Run a skills gap analysis")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if got := result.Rows[0].Strings("missing_skills"); len(got) != 1 || got[0] != "security" {
		t.Errorf("missing_skills = %v, want [security]", got)
	}
	if !strings.Contains(result.Answer, "security") {
		t.Errorf("Answer = %q, want mention of the missing skill", result.Answer)
	}
}

func TestEngineAnswerNeverSendsMutations(t *testing.T) {
	t.Parallel()

	questions := []string{
		"How many people do we have?",
		"Find senior React developers",
		"What is the average rate?",
		"Who worked together?",
		"Who becomes available next month?",
		"Build the optimal team for the FinTech RFP under a $9000 budget",
		"Run a skills gap analysis",
		"Which skills are a single point of failure?",
	}

	for _, question := range questions {
		question := question
		t.Run(question, func(t *testing.T) {
			t.Parallel()

			exec := &fakeExecutor{rows: []graph.Row{}}
			eng := New(exec)
			if _, err := eng.Answer(t.Context(), question); err != nil {
				t.Fatalf("Answer: %v", err)
			}
			if err := ValidateReadOnly(exec.lastQuery); err != nil {
				t.Errorf("executed query failed the gate: %v\n%s", err, exec.lastQuery)
			}
		})
	}
}
