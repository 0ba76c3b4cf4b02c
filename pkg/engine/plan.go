package engine

// Category is the closed set of analytical question categories the
// engine can answer. Every compiled query and every formatted answer
// dispatches exhaustively on this type.
type Category string

const (
	CategoryCounting    Category = "counting"
	CategoryFiltering   Category = "filtering"
	CategoryAggregation Category = "aggregation"
	CategoryReasoning   Category = "reasoning"
	CategoryTemporal    Category = "temporal"
	CategoryScenario    Category = "scenario"
)

// Categories lists all known categories in classifier priority order.
var Categories = []Category{
	CategoryCounting,
	CategoryFiltering,
	CategoryAggregation,
	CategoryReasoning,
	CategoryTemporal,
	CategoryScenario,
}

// ParseCategory maps free text onto a known category. It returns
// CategoryScenario (the catch-all for complex questions) when the text
// matches nothing, so an unreliable classifier can never produce an
// unknown category.
func ParseCategory(s string) Category {
	normalized := Category(normalizeToken(s))
	for _, c := range Categories {
		if normalized == c {
			return c
		}
	}
	return CategoryScenario
}

// AvailabilityType describes the time window a question constrains
// availability to. TypeNone must suppress all availability filtering
// downstream; it is a safety default, not an omission.
type AvailabilityType string

const (
	AvailabilityNone      AvailabilityType = "none"
	AvailabilityNow       AvailabilityType = "now"
	AvailabilityThisMonth AvailabilityType = "this_month"
	AvailabilityNextMonth AvailabilityType = "next_month"
	AvailabilityQuarter   AvailabilityType = "quarter"
	AvailabilityAfterEnd  AvailabilityType = "after_end"
)

// Availability is the extracted time-window constraint. Value carries
// the raw window token when one exists (e.g. "q3" for a quarter).
type Availability struct {
	Type  AvailabilityType `json:"type"`
	Value string           `json:"value,omitempty"`
}

// Budget holds the extracted rate ceiling. MaxRate of zero means no
// budget constraint was mentioned.
type Budget struct {
	MaxRate float64 `json:"max_rate,omitempty"`
}

// Team holds extracted team-shape parameters. Size of zero and
// Allocation of zero mean unspecified.
type Team struct {
	Size       int     `json:"size,omitempty"`
	Allocation float64 `json:"allocation,omitempty"`
}

// ScenarioKind selects the scenario sub-analysis.
type ScenarioKind string

const (
	ScenarioWhatIf  ScenarioKind = "what_if"
	ScenarioTeamOpt ScenarioKind = "team_opt"
	ScenarioGap     ScenarioKind = "gap"
	ScenarioRisk    ScenarioKind = "risk"
)

// Scenario holds the scenario sub-kind plus the RFP keyword when the
// question names a request ("... for the FinTech RFP").
type Scenario struct {
	Kind       ScenarioKind `json:"kind"`
	RFPKeyword string       `json:"rfp_keyword,omitempty"`
}

// ReasoningKind selects the multi-hop reasoning pattern.
type ReasoningKind string

const (
	ReasoningCollab        ReasoningKind = "collab"
	ReasoningCollabSuccess ReasoningKind = "collab_success"
	ReasoningUniPair       ReasoningKind = "uni_pair"
	ReasoningUniTop        ReasoningKind = "uni_top"
)

// Reasoning holds the reasoning sub-kind plus the focus person when the
// question names one ("who worked with Jacob Young?").
type Reasoning struct {
	Kind        ReasoningKind `json:"kind"`
	FocusPerson string        `json:"focus_person,omitempty"`
}

// AggregationKind selects the aggregation sub-routine.
type AggregationKind string

const (
	AggregationOverview    AggregationKind = "overview"
	AggregationAverageRate AggregationKind = "avg_rate"
	AggregationCapacity    AggregationKind = "capacity"
	AggregationSkillsDist  AggregationKind = "skills_distribution"
	AggregationExperience  AggregationKind = "experience"
)

// Plan is the immutable, serializable hand-off object between question
// analysis and query synthesis. It is constructed once per question,
// passed by value through the pipeline, and discarded after the answer
// is produced.
type Plan struct {
	Category     Category        `json:"category"`
	Skills       []string        `json:"skills,omitempty"`
	Seniority    string          `json:"seniority,omitempty"`
	Timezone     string          `json:"timezone,omitempty"`
	Location     string          `json:"location,omitempty"`
	Availability Availability    `json:"availability"`
	Budget       Budget          `json:"budget"`
	Team         Team            `json:"team"`
	Scenario     Scenario        `json:"scenario"`
	Reasoning    Reasoning       `json:"reasoning"`
	Aggregation  AggregationKind `json:"aggregation,omitempty"`

	// AggregationBucket selects the grouping dimension for skills
	// distributions ("graduation_year" or "timezone"); empty means a
	// flat per-skill distribution.
	AggregationBucket string `json:"aggregation_bucket,omitempty"`

	// CertificationMode and ProjectMode specialize counting questions
	// onto certifications and projects instead of people.
	CertificationMode bool `json:"certification_mode,omitempty"`
	ProjectMode       bool `json:"project_mode,omitempty"`
}
