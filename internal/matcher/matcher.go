// Package matcher resolves a parsed story to one concrete agent
// persona with a confidence score. Matching is total: a story with no
// keyword overlap falls back to a fixed domain routing table and a
// flat confidence, so Match never fails.
package matcher

import (
	"fmt"
	"strings"

	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/parser"
	"github.com/agentflowhq/agentflow/internal/registry"
)

// fallbackConfidence is the flat score of a domain-table fallback match
const fallbackConfidence = 0.5

// overlapNormalizer divides the raw keyword-overlap score when blending
// with parser confidence. It assumes small overlap counts and is a
// tunable heuristic.
const overlapNormalizer = 3.0

// maxAlternatives caps the SuggestAlternatives result
const maxAlternatives = 3

// domainFallback routes stories with no agent keyword overlap by their
// parsed domain. Every domain tag resolves, including "unknown".
var domainFallback = map[string]domain.AgentType{
	"backend":  domain.AgentCoder,
	"frontend": domain.AgentCoder,
	"database": domain.AgentDatabase,
	"devops":   domain.AgentDevOps,
	"testing":  domain.AgentQA,
	"design":   domain.AgentUX,
	"unknown":  domain.AgentCoder,
}

// Match pairs a story with its resolved agent
type Match struct {
	Agent              registry.AgentDefinition
	Phase              string
	Model              string
	ModelJustification string
	Confidence         float64
}

// Matcher scores stories against the agent catalog
type Matcher struct {
	agents *registry.AgentRegistry
}

// New creates a Matcher over the given agent catalog
func New(agents *registry.AgentRegistry) *Matcher {
	return &Matcher{agents: agents}
}

// Match resolves a story to exactly one of the ten agents. Candidates
// are ranked by keyword overlap; with no candidates the domain
// fallback table decides at a flat confidence of 0.5.
func (m *Matcher) Match(story *parser.ParsedStory) Match {
	ranked := m.agents.RankByKeywords(story.Keywords)

	if len(ranked) == 0 {
		return m.fallback(story)
	}

	top := ranked[0]
	confidence := blendConfidence(story.Confidence, top.Score)

	return Match{
		Agent:              top.Agent,
		Phase:              top.Agent.Phase,
		Model:              top.Agent.Model,
		ModelJustification: top.Agent.ModelReason,
		Confidence:         confidence,
	}
}

// SuggestAlternatives returns up to three candidate matches ranked by
// overlap, scored on overlap alone without blending in the parser
// confidence. Intended for presenting choices to a caller; never fails.
func (m *Matcher) SuggestAlternatives(story *parser.ParsedStory) []Match {
	ranked := m.agents.RankByKeywords(story.Keywords)
	if len(ranked) > maxAlternatives {
		ranked = ranked[:maxAlternatives]
	}

	matches := make([]Match, 0, len(ranked))
	for _, candidate := range ranked {
		matches = append(matches, Match{
			Agent:              candidate.Agent,
			Phase:              candidate.Agent.Phase,
			Model:              candidate.Agent.Model,
			ModelJustification: candidate.Agent.ModelReason,
			Confidence:         domain.NewConfidence(float64(candidate.Score) / overlapNormalizer).Float64(),
		})
	}
	return matches
}

// Explain produces a human-readable account of why a story routes to
// its matched agent.
func (m *Matcher) Explain(story *parser.ParsedStory) string {
	match := m.Match(story)

	var matched []string
	for _, keyword := range story.Keywords {
		if match.Agent.HasKeyword(keyword) {
			matched = append(matched, keyword)
		}
	}

	keywordList := strings.Join(matched, ", ")
	if keywordList == "" {
		keywordList = "none (domain fallback)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Story routed to %s agent (%s phase)\n", match.Agent.Name, match.Phase)
	fmt.Fprintf(&b, "Confidence: %.0f%%\n", match.Confidence*100)
	fmt.Fprintf(&b, "Matched keywords: %s\n", keywordList)
	fmt.Fprintf(&b, "Model: %s (%s)", match.Model, match.ModelJustification)
	return b.String()
}

// Pin resolves a named agent directly, bypassing keyword matching.
// Used when the caller picks the agent explicitly.
func (m *Matcher) Pin(name domain.AgentType) (Match, bool) {
	agent, ok := m.agents.Get(name)
	if !ok {
		return Match{}, false
	}

	return Match{
		Agent:              agent,
		Phase:              agent.Phase,
		Model:              agent.Model,
		ModelJustification: agent.ModelReason,
		Confidence:         1.0,
	}, true
}

func (m *Matcher) fallback(story *parser.ParsedStory) Match {
	agentType, ok := domainFallback[story.Domain]
	if !ok {
		agentType = domain.AgentCoder
	}

	// The fallback table only names catalog agents, so the lookup
	// cannot miss.
	agent, _ := m.agents.Get(agentType)

	return Match{
		Agent:              agent,
		Phase:              agent.Phase,
		Model:              agent.Model,
		ModelJustification: agent.ModelReason,
		Confidence:         fallbackConfidence,
	}
}

// blendConfidence combines parser confidence with the normalized
// overlap score: min((parserConfidence + score/3) / 2, 1.0).
func blendConfidence(parserConfidence float64, score int) float64 {
	blended := (parserConfidence + float64(score)/overlapNormalizer) / 2
	return domain.NewConfidence(blended).Float64()
}
