package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflowhq/agentflow/internal/errors"
)

func TestParseEmptyInput(t *testing.T) {
	p := New()

	for _, input := range []string{"", "   ", "<>", "\x00\x01"} {
		_, err := p.Parse(input, Options{})
		require.Error(t, err, "input %q should fail", input)
		assert.True(t, errors.IsParserError(err))
		assert.Contains(t, err.Error(), "cannot be empty")
	}
}

func TestParseClassification(t *testing.T) {
	p := New()

	tests := []struct {
		name       string
		story      string
		wantIntent string
		wantDomain string
	}{
		{
			name:       "deploy devops story",
			story:      "Deploy backend API to Google Cloud Run with CI/CD pipeline",
			wantIntent: "deploy",
			wantDomain: "devops",
		},
		{
			name:       "create backend story",
			story:      "Create a REST endpoint for user profiles",
			wantIntent: "create",
			wantDomain: "backend",
		},
		{
			name:       "test story",
			story:      "Write regression tests improving coverage for checkout",
			wantIntent: "unknown",
			wantDomain: "testing",
		},
		{
			name:       "design story",
			story:      "Design an accessible wireframe for onboarding",
			wantIntent: "design",
			wantDomain: "design",
		},
		{
			name:       "database story",
			story:      "Create a schema migration for the orders table",
			wantIntent: "create",
			wantDomain: "database",
		},
		{
			name:       "unclassifiable story",
			story:      "Something nobody understands here",
			wantIntent: "unknown",
			wantDomain: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story, err := p.Parse(tt.story, Options{})
			require.NoError(t, err)

			assert.Equal(t, tt.wantIntent, story.Intent)
			assert.Equal(t, tt.wantDomain, story.Domain)
			assert.NotEmpty(t, story.Keywords)
			assert.Equal(t, tt.story, story.RawInput)
		})
	}
}

func TestParseIntentOrderWins(t *testing.T) {
	p := New()

	// "deploy" and "build" both appear; the intent table checks deploy
	// before create, so deploy wins.
	story, err := p.Parse("Build and deploy the release artifacts", Options{})
	require.NoError(t, err)
	assert.Equal(t, "deploy", story.Intent)
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "drops short tokens",
			input: "fix a bug in the api now",
			want:  nil,
		},
		{
			name:  "drops stopwords",
			input: "this should deploy with that pipeline",
			want:  []string{"deploy", "pipeline"},
		},
		{
			name:  "preserves order",
			input: "migrate database schema carefully",
			want:  []string{"migrate", "database", "schema", "carefully"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.input))
		})
	}
}

func TestCalculateConfidence(t *testing.T) {
	tests := []struct {
		name         string
		intent       string
		domain       string
		keywordCount int
		want         float64
	}{
		{"nothing known", "unknown", "unknown", 0, 0.0},
		{"nothing known but keywords", "unknown", "unknown", 2, 0.2},
		{"intent only", "deploy", "unknown", 1, 0.4},
		{"intent and keywords", "deploy", "unknown", 2, 0.6},
		{"intent and domain", "deploy", "devops", 1, 0.8},
		{"everything known", "deploy", "devops", 5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateConfidence(tt.intent, tt.domain, tt.keywordCount)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// Confidence must never leave [0,1] and must be monotonic as intent,
// domain, and the keyword threshold become known.
func TestCalculateConfidenceMonotonic(t *testing.T) {
	intents := []string{"unknown", "deploy"}
	domains := []string{"unknown", "devops"}
	counts := []int{0, 1, 2, 10}

	for _, intent := range intents {
		for _, dom := range domains {
			prev := -1.0
			for _, count := range counts {
				got := CalculateConfidence(intent, dom, count)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 1.0)
				assert.GreaterOrEqual(t, got, prev,
					"confidence must not decrease as keyword count grows")
				prev = got
			}
		}
	}

	// Known intent/domain can only raise the score at fixed count
	assert.GreaterOrEqual(t,
		CalculateConfidence("deploy", "unknown", 2),
		CalculateConfidence("unknown", "unknown", 2))
	assert.GreaterOrEqual(t,
		CalculateConfidence("deploy", "devops", 2),
		CalculateConfidence("deploy", "unknown", 2))
}

func TestParseTruncatesLongStories(t *testing.T) {
	p := New()

	story, err := p.Parse(strings.Repeat("deploy ", 200), Options{})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(story.RawInput), 500)
	assert.Equal(t, "deploy", story.Intent)
}
