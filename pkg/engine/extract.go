package engine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// The skill vocabulary mirrors the role profiles the talent graph is
// populated from. Matching is case-insensitive on word boundaries;
// aliases normalize onto the canonical spelling.
var skillVocabulary = []struct {
	Term      string
	Canonical string
}{
	{"react", "React"},
	{"typescript", "TypeScript"},
	{"ts", "TypeScript"},
	{"javascript", "JavaScript"},
	{"js", "JavaScript"},
	{"tailwind", "Tailwind"},
	{"redux", "Redux"},
	{"next.js", "Next.js"},
	{"nextjs", "Next.js"},
	{"python", "Python"},
	{"django", "Django"},
	{"fastapi", "FastAPI"},
	{"postgresql", "PostgreSQL"},
	{"postgres", "PostgreSQL"},
	{"docker", "Docker"},
	{"java", "Java"},
	{"spring boot", "Spring Boot"},
	{"aws", "AWS"},
	{"kubernetes", "Kubernetes"},
	{"k8s", "Kubernetes"},
	{"terraform", "Terraform"},
	{"ci/cd", "CI/CD"},
	{"linux", "Linux"},
	{"azure", "Azure"},
	{"pytorch", "PyTorch"},
	{"pandas", "Pandas"},
	{"nlp", "NLP"},
	{"machine learning", "Machine Learning"},
	{"ml", "Machine Learning"},
	{"rag", "RAG"},
	{"llm", "LLM"},
	{"penetration testing", "Penetration Testing"},
	{"network security", "Network Security"},
	{"owasp", "OWASP"},
	{"cryptography", "Cryptography"},
	{"node.js", "Node.js"},
	{"nodejs", "Node.js"},
	{"rust", "Rust"},
	{"go", "Go"},
	{"golang", "Go"},
}

type skillPattern struct {
	re        *regexp.Regexp
	canonical string
}

var skillPatterns = func() []skillPattern {
	patterns := make([]skillPattern, 0, len(skillVocabulary))
	for _, entry := range skillVocabulary {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entry.Term) + `\b`)
		patterns = append(patterns, skillPattern{re: re, canonical: entry.Canonical})
	}
	return patterns
}()

var (
	reSeniority   = regexp.MustCompile(`(?i)\b(senior|junior|lead|mid)\b`)
	reTimezone    = regexp.MustCompile(`(?i)\b(pt|et|cet|gmt|utc)\b`)
	reQuarter     = regexp.MustCompile(`(?i)\b(q[1-4])\b`)
	reBudget      = regexp.MustCompile(`\$\s?(\d+(?:\.\d+)?)`)
	reTeamSize    = regexp.MustCompile(`(?i)\b(\d+)\s+(?:people|developers|engineers|team)\b`)
	reAllocation  = regexp.MustCompile(`\b(0\.\d+|1\.0)\b`)
	reFocusPerson = regexp.MustCompile(`\bwith\s+([A-Z][a-z]+ [A-Z][a-z]+)\b`)
	reRFPKeyword  = regexp.MustCompile(`\b([A-Z][A-Za-z0-9]+)\s+(?i:rfp|request)\b`)
)

var timezoneSynonyms = []struct {
	Term string
	Code string
}{
	{"pacific", "PT"},
	{"eastern", "ET"},
	{"central european", "CET"},
	{"cest", "CET"},
	{"greenwich", "GMT"},
	{"gmt", "GMT"},
	{"utc", "UTC"},
}

var knownLocations = []string{
	"New York",
	"London",
	"Berlin",
	"San Francisco",
	"Toronto",
	"Remote",
}

// normalizeToken lowercases and strips everything but letters, so LLM
// responses like "COUNTING." or " Counting " map cleanly.
func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractParams pulls all structured parameters out of raw question
// text. It is a pure function: no I/O, no errors. Absent signals leave
// the corresponding field at its safe default.
func extractParams(question string) Plan {
	lower := strings.ToLower(question)

	plan := Plan{
		Skills:       extractSkills(question),
		Seniority:    extractSeniority(lower),
		Timezone:     extractTimezone(lower),
		Location:     extractLocation(question),
		Availability: extractAvailability(lower),
		Budget:       extractBudget(lower),
		Team:         extractTeam(lower),
		Scenario:     extractScenario(question, lower),
		Reasoning:    extractReasoning(question, lower),
		Aggregation:  extractAggregation(lower),
	}

	if plan.Aggregation == AggregationSkillsDist {
		switch {
		case strings.Contains(lower, "graduation") || strings.Contains(lower, "year"):
			plan.AggregationBucket = "graduation_year"
		case strings.Contains(lower, "timezone") || strings.Contains(lower, "time zone"):
			plan.AggregationBucket = "timezone"
		}
	}

	plan.CertificationMode = strings.Contains(lower, "certif")
	// "project" alone is too weak a signal: questions about people on
	// projects would lose their skill filters. Only count projects when
	// the question also names an active status.
	plan.ProjectMode = strings.Contains(lower, "project") && strings.Contains(lower, "active")

	return plan
}

// extractSkills matches the fixed vocabulary against the question and
// returns canonical skill names, de-duplicated in first-seen order.
func extractSkills(question string) []string {
	type hit struct {
		pos       int
		canonical string
	}

	hits := []hit{}
	for _, p := range skillPatterns {
		if loc := p.re.FindStringIndex(question); loc != nil {
			hits = append(hits, hit{pos: loc[0], canonical: p.canonical})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := map[string]bool{}
	skills := []string{}
	for _, h := range hits {
		if seen[h.canonical] {
			continue
		}
		seen[h.canonical] = true
		skills = append(skills, h.canonical)
	}
	return skills
}

func extractSeniority(lower string) string {
	if m := reSeniority.FindStringSubmatch(lower); m != nil {
		return m[1]
	}
	return ""
}

// extractTimezone only fires when the question talks about time zones,
// either literally or through an unambiguous synonym. A bare "ET" token
// in unrelated text must not set a filter.
func extractTimezone(lower string) string {
	mentionsZone := strings.Contains(lower, "timezone") || strings.Contains(lower, "time zone")

	synonym := ""
	for _, s := range timezoneSynonyms {
		if strings.Contains(lower, s.Term) {
			synonym = s.Code
			break
		}
	}

	if !mentionsZone && synonym == "" {
		return ""
	}

	if mentionsZone {
		if m := reTimezone.FindStringSubmatch(lower); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return synonym
}

func extractLocation(question string) string {
	for _, loc := range knownLocations {
		if strings.Contains(strings.ToLower(question), strings.ToLower(loc)) {
			return loc
		}
	}
	return ""
}

func extractAvailability(lower string) Availability {
	switch {
	case strings.Contains(lower, "next month"):
		return Availability{Type: AvailabilityNextMonth}
	case strings.Contains(lower, "this month"):
		return Availability{Type: AvailabilityThisMonth}
	case reQuarter.MatchString(lower):
		return Availability{
			Type:  AvailabilityQuarter,
			Value: strings.ToLower(reQuarter.FindStringSubmatch(lower)[1]),
		}
	case strings.Contains(lower, "quarter"):
		return Availability{Type: AvailabilityQuarter}
	case strings.Contains(lower, "after") || strings.Contains(lower, "ends"):
		return Availability{Type: AvailabilityAfterEnd}
	case strings.Contains(lower, "available"):
		return Availability{Type: AvailabilityNow}
	}
	return Availability{Type: AvailabilityNone}
}

// extractBudget reads the first $<number> token, but only when the
// question actually talks about a budget.
func extractBudget(lower string) Budget {
	if !strings.Contains(lower, "budget") {
		return Budget{}
	}
	m := reBudget.FindStringSubmatch(lower)
	if m == nil {
		return Budget{}
	}
	rate, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Budget{}
	}
	return Budget{MaxRate: rate}
}

func extractTeam(lower string) Team {
	team := Team{}
	if m := reTeamSize.FindStringSubmatch(lower); m != nil {
		if size, err := strconv.Atoi(m[1]); err == nil {
			team.Size = size
		}
	}
	if m := reAllocation.FindStringSubmatch(lower); m != nil {
		if alloc, err := strconv.ParseFloat(m[1], 64); err == nil {
			team.Allocation = alloc
		}
	}
	return team
}

func extractScenario(question, lower string) Scenario {
	s := Scenario{Kind: ScenarioWhatIf}

	switch {
	case (strings.Contains(lower, "optimal") || strings.Contains(lower, "budget")) &&
		strings.Contains(lower, "team"):
		s.Kind = ScenarioTeamOpt
	case strings.Contains(lower, "gap"):
		s.Kind = ScenarioGap
	case strings.Contains(lower, "risk") ||
		strings.Contains(lower, "single point") ||
		strings.Contains(lower, "single points") ||
		strings.Contains(lower, "spof"):
		s.Kind = ScenarioRisk
	}

	if m := reRFPKeyword.FindStringSubmatch(question); m != nil {
		s.RFPKeyword = m[1]
	}
	return s
}

func extractReasoning(question, lower string) Reasoning {
	r := Reasoning{Kind: ReasoningCollab}

	switch {
	case strings.Contains(lower, "same university") || strings.Contains(lower, "same school"):
		r.Kind = ReasoningUniPair
		if strings.Contains(lower, "top performer") {
			r.Kind = ReasoningUniTop
		}
	case strings.Contains(lower, "worked with") || strings.Contains(lower, "together"):
		r.Kind = ReasoningCollab
		if strings.Contains(lower, "success") {
			r.Kind = ReasoningCollabSuccess
		}
	}

	if m := reFocusPerson.FindStringSubmatch(question); m != nil {
		r.FocusPerson = m[1]
	}
	return r
}

func extractAggregation(lower string) AggregationKind {
	switch {
	case strings.Contains(lower, "rate"):
		return AggregationAverageRate
	case strings.Contains(lower, "capacity"):
		return AggregationCapacity
	case strings.Contains(lower, "distribution") || strings.Contains(lower, "breakdown"):
		return AggregationSkillsDist
	case strings.Contains(lower, "experience"):
		return AggregationExperience
	}
	return AggregationOverview
}
