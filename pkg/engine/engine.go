package engine

import (
	"context"
	"time"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/ai"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/graph"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"
)

// Engine answers natural-language questions over the talent graph. It
// is stateless between questions and safe for concurrent use; the
// language model is optional and only improves classification and
// answer phrasing.
type Engine struct {
	graph graph.Executor
	llm   ai.Client
	cfg   Config
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLLM attaches a language model used for classification fallback
// and answer paraphrasing.
func WithLLM(client ai.Client) Option {
	return func(e *Engine) { e.llm = client }
}

// WithConfig overrides the calibrated default thresholds.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithClock overrides the reference-time source. Tests use this to pin
// temporal window arithmetic.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an Engine over the given graph executor.
func New(executor graph.Executor, opts ...Option) *Engine {
	e := &Engine{
		graph: executor,
		cfg:   DefaultConfig(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the full trace of one answered question. Query and Params
// are always populated once compilation succeeds, so callers can audit
// exactly what ran.
type Result struct {
	Success  bool           `json:"success"`
	Category Category       `json:"category"`
	Plan     Plan           `json:"plan"`
	Query    string         `json:"query,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
	Rows     []graph.Row    `json:"rows"`
	Answer   string         `json:"answer"`
	Error    string         `json:"error,omitempty"`
}

// Answer runs the full pipeline: classify, extract, compile, validate,
// execute, post-process, format. An empty result set is a successful
// answer; only blocked or failed queries produce Success == false.
func (e *Engine) Answer(ctx context.Context, question string) (Result, error) {
	plan := extractParams(question)
	plan.Category = classify(ctx, e.llm, question)

	result := Result{Category: plan.Category, Plan: plan}

	query, err := Compile(plan, e.now(), e.cfg)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.Query = query.Text
	result.Params = query.Params

	if err := ValidateReadOnly(query.Text); err != nil {
		logger.Error("Compiled query rejected by read-only gate", "category", plan.Category, "err", err)
		result.Error = err.Error()
		return result, err
	}

	rows, err := e.graph.Execute(ctx, query.Text, query.Params)
	if err != nil {
		execErr := &ExecutionError{Err: err}
		result.Error = execErr.Error()
		return result, execErr
	}

	rows = e.postProcess(plan, rows)
	result.Rows = rows
	result.Success = true

	deterministic := formatAnswer(plan, rows, e.cfg)
	result.Answer = paraphrase(ctx, e.llm, question, deterministic, rows)

	logger.Debug("Question answered",
		"category", plan.Category, "rows", len(rows), "success", result.Success)
	return result, nil
}

// postProcess applies the in-process analytics that are deliberately
// kept out of the graph query: risk grading, the gap set difference and
// the diverse-team pick. Result.Rows carries the processed rows, so the
// formatter and API clients see the same data.
func (e *Engine) postProcess(plan Plan, rows []graph.Row) []graph.Row {
	if plan.Category != CategoryScenario {
		return rows
	}
	switch plan.Scenario.Kind {
	case ScenarioRisk:
		return annotateRisk(rows, e.cfg)
	case ScenarioGap:
		return analyzeGap(rows)
	case ScenarioTeamOpt:
		return selectDiverseTeam(rows, e.cfg)
	}
	return rows
}
