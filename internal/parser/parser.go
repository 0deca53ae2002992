// Package parser converts a free-text user story into a ParsedStory:
// intent and domain tags, extracted keywords, and a heuristic
// confidence score. Classification is pure keyword matching against
// fixed, ordered tables; there is no language model involved.
package parser

import (
	"strings"

	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/errors"
	"github.com/agentflowhq/agentflow/internal/sanitize"
)

// UnknownTag is the fallback intent and domain classification
const UnknownTag = "unknown"

// DefaultConfidenceThreshold is the confidence below which a caller
// may want to present alternatives instead of a single match.
const DefaultConfidenceThreshold = 0.7

// ParsedStory is the structured result of one Parse call. It is
// created fresh per call and never mutated afterwards.
type ParsedStory struct {
	Intent     string
	Domain     string
	Keywords   []string
	RawInput   string
	Confidence float64
}

// Options control parsing behavior
type Options struct {
	// ConfidenceThreshold marks the score under which the
	// classification is considered weak. Zero means the default.
	ConfidenceThreshold float64
}

// classification is one ordered entry of a tag table. Entry order is
// significant: the first entry with any keyword match wins.
type classification struct {
	Tag      string
	Keywords []string
}

// stopwords are dropped during keyword extraction
var stopwords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true,
	"have": true, "will": true, "would": true, "should": true,
}

// intentTable maps intent tags to trigger keywords, in match order
var intentTable = []classification{
	{Tag: "deploy", Keywords: []string{"deploy", "deployment", "release", "publish", "ship", "launch"}},
	{Tag: "create", Keywords: []string{"create", "build", "implement", "develop", "make", "generate"}},
	{Tag: "test", Keywords: []string{"test", "testing", "verify", "validate", "coverage"}},
	{Tag: "design", Keywords: []string{"design", "wireframe", "prototype", "mockup", "layout"}},
	{Tag: "analyze", Keywords: []string{"analyze", "analysis", "investigate", "research", "explore"}},
	{Tag: "review", Keywords: []string{"review", "audit", "inspect", "assess"}},
	{Tag: "fix", Keywords: []string{"repair", "resolve", "debug", "patch"}},
	{Tag: "refactor", Keywords: []string{"refactor", "restructure", "cleanup", "optimize", "simplify"}},
}

// domainTable maps domain tags to trigger keywords, in match order.
// The backend bucket matches technology words rather than the bare
// token "backend", so that deployment stories mentioning a backend
// still classify as devops.
var domainTable = []classification{
	{Tag: "backend", Keywords: []string{"server", "endpoint", "graphql", "rest", "microservice"}},
	{Tag: "frontend", Keywords: []string{"frontend", "react", "component", "browser", "webpage"}},
	{Tag: "database", Keywords: []string{"database", "schema", "migration", "query", "postgres", "mysql"}},
	{Tag: "devops", Keywords: []string{"deploy", "deployment", "docker", "kubernetes", "pipeline", "infrastructure", "monitoring"}},
	{Tag: "testing", Keywords: []string{"test", "testing", "coverage", "regression", "automation"}},
	{Tag: "design", Keywords: []string{"design", "wireframe", "prototype", "accessibility", "usability"}},
}

// Parser converts raw text into a ParsedStory
type Parser struct{}

// New creates a Parser
func New() *Parser {
	return &Parser{}
}

// Parse sanitizes and classifies a user story. It fails with a parser
// error when the sanitized input is empty; every other input parses.
func (p *Parser) Parse(text string, opts Options) (*ParsedStory, error) {
	cleaned := sanitize.UserStory(text)
	if cleaned == "" {
		return nil, errors.NewEmptyStoryError()
	}

	keywords := ExtractKeywords(cleaned)
	intent := classify(intentTable, keywords)
	storyDomain := classify(domainTable, keywords)
	confidence := CalculateConfidence(intent, storyDomain, len(keywords))

	return &ParsedStory{
		Intent:     intent,
		Domain:     storyDomain,
		Keywords:   keywords,
		RawInput:   cleaned,
		Confidence: confidence,
	}, nil
}

// ExtractKeywords lowercases the story, splits on whitespace, and
// keeps tokens longer than three characters that are not stopwords.
// Token order is preserved.
func ExtractKeywords(text string) []string {
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if len(token) <= 3 {
			continue
		}
		if stopwords[token] {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// CalculateConfidence computes the heuristic parse confidence:
// 0.4 for a known intent, 0.4 for a known domain, 0.2 for at least two
// keywords, capped at 1.0. The weights are tunable heuristics with no
// probabilistic derivation.
func CalculateConfidence(intent, storyDomain string, keywordCount int) float64 {
	confidence := 0.0
	if intent != UnknownTag {
		confidence += 0.4
	}
	if storyDomain != UnknownTag {
		confidence += 0.4
	}
	if keywordCount >= 2 {
		confidence += 0.2
	}
	return domain.NewConfidence(confidence).Float64()
}

// classify returns the tag of the first table entry with any keyword
// present in the extracted keyword list, or UnknownTag.
func classify(table []classification, keywords []string) string {
	present := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		present[k] = true
	}

	for _, entry := range table {
		for _, trigger := range entry.Keywords {
			if present[trigger] {
				return entry.Tag
			}
		}
	}
	return UnknownTag
}
