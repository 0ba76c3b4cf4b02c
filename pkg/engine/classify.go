package engine

import (
	"context"
	"regexp"
	"strings"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/ai"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"
)

// classifyPrompt is the fixed-choice prompt used when no keyword rule
// matches. The model is asked for a bare category token; anything else
// is mapped case-insensitively or discarded.
const classifyPrompt = `Classify this business intelligence query into ONE of these categories:

1. COUNTING - Questions about "how many", "count"
   Examples: "How many Python developers?", "Count available developers"

2. FILTERING - Questions asking for specific information about people OR finding people with criteria
   Examples: "What skills does John have?", "Find developers with Python", "List people in NYC"

3. AGGREGATION - Questions about "average", "total", "sum", "min", "max", statistics
   Examples: "Average years of experience?", "Total developers"

4. REASONING - Questions about relationships between people like "who worked together"
   Examples: "Show me developers who worked together", "Who has the same skills as John?"

5. TEMPORAL - Questions about time, dates, "when", "available after"
   Examples: "Who becomes available next month?", "Current assignments"

6. SCENARIO - Complex "what-if", budget constraints, team composition, risk analysis
   Examples: "Best team for project under budget?", "Skills gap analysis"

Query: %QUESTION%

Respond with ONLY the category name (COUNTING, FILTERING, AGGREGATION, REASONING, TEMPORAL, or SCENARIO).`

var (
	reCount   = regexp.MustCompile(`(?i)\bcount\b`)
	reMinMax  = regexp.MustCompile(`(?i)\b(min|max|minimum|maximum)\b`)
	reEnds    = regexp.MustCompile(`(?i)\bends?\b`)
	reWhen    = regexp.MustCompile(`(?i)\bwhen\b`)
	reSumWord = regexp.MustCompile(`(?i)\bsum\b`)
)

// classifierRule is one (predicate, category) pair. Rules are evaluated
// in priority order and the first match wins; several keyword sets
// overlap ("average" vs "how many"), and the fixed order removes the
// ambiguity.
type classifierRule struct {
	name     string
	match    func(lower string) bool
	category Category
}

func containsAny(lower string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

var classifierRules = []classifierRule{
	{
		name: "counting",
		match: func(q string) bool {
			return strings.Contains(q, "how many") || reCount.MatchString(q)
		},
		category: CategoryCounting,
	},
	{
		name: "aggregation",
		match: func(q string) bool {
			return containsAny(q, "average", "avg", "total", "distribution", "statistic") ||
				reSumWord.MatchString(q) || reMinMax.MatchString(q)
		},
		category: CategoryAggregation,
	},
	{
		name: "reasoning",
		match: func(q string) bool {
			return containsAny(q,
				"worked together", "worked with", "work together",
				"same university", "same school", "same company", "same skill",
				"collaborat")
		},
		category: CategoryReasoning,
	},
	{
		name: "temporal",
		match: func(q string) bool {
			return containsAny(q,
				"next month", "this month", "becomes available",
				"available after", "quarter", "assignment", "finishing") ||
				reQuarter.MatchString(q) || reEnds.MatchString(q) || reWhen.MatchString(q)
		},
		category: CategoryTemporal,
	},
	{
		name: "scenario",
		match: func(q string) bool {
			return containsAny(q,
				"optimal", "team", "what if", "what-if", "gap", "risk",
				"single point", "spof", "budget", "simulat", "scenario")
		},
		category: CategoryScenario,
	},
	{
		name: "filtering",
		match: func(q string) bool {
			return containsAny(q,
				"find", "list", "show", "who has", "which", "need",
				"skills does", "technologies does", "expert", "looking for")
		},
		category: CategoryFiltering,
	},
}

// classifyByRules runs the deterministic rule table. The second return
// value reports whether any rule fired.
func classifyByRules(question string) (Category, bool) {
	lower := strings.ToLower(question)
	for _, rule := range classifierRules {
		if rule.match(lower) {
			return rule.category, true
		}
	}
	return CategoryScenario, false
}

// classify resolves the question's category: deterministic rules first,
// then the language model as a best-effort fallback. Any transport
// failure or unusable response resolves to the catch-all scenario
// category rather than an error.
func classify(ctx context.Context, llm ai.Client, question string) Category {
	if category, ok := classifyByRules(question); ok {
		return category
	}

	if llm == nil {
		return CategoryScenario
	}

	prompt := strings.Replace(classifyPrompt, "%QUESTION%", question, 1)
	response, err := llm.GenerateCompletion(ctx, prompt, ai.WithTemperature(0.0))
	if err != nil {
		logger.Warn("Classification fallback failed, defaulting to scenario", "err", err)
		return CategoryScenario
	}

	return ParseCategory(response)
}
