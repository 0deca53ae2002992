package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/errors"
)

// requiredSections are the headings every generated workflow carries
var requiredSections = []string{
	"## Description",
	"## Tools",
	"## Steps",
	"## Handoff",
}

var agentLineRe = regexp.MustCompile("\\*\\*Agent:\\*\\* `([a-z]+)`")

// ValidateDocument checks a workflow document for the structure this
// tool generates: a title, the agent line naming a catalog agent, and
// the required sections. It returns every problem found, each with a
// 1-based line number where one applies.
func ValidateDocument(content string) []error {
	var problems []error

	lines := strings.Split(content, "\n")

	if len(lines) == 0 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "# ") {
		problems = append(problems, errors.New(errors.ErrCodeValidationContent,
			"document must start with a level-1 title").WithLine(1))
	}

	agentLine := 0
	var agentName string
	for i, line := range lines {
		if m := agentLineRe.FindStringSubmatch(line); m != nil {
			agentLine = i + 1
			agentName = m[1]
			break
		}
	}

	if agentLine == 0 {
		problems = append(problems, errors.New(errors.ErrCodeValidationContent,
			"missing agent line (**Agent:** `<name>`)"))
	} else if _, err := domain.NewAgentType(agentName); err != nil {
		problems = append(problems, errors.New(errors.ErrCodeValidationContent,
			fmt.Sprintf("unknown agent: %s", agentName)).WithLine(agentLine))
	}

	for _, section := range requiredSections {
		if !containsHeading(lines, section) {
			problems = append(problems, errors.New(errors.ErrCodeValidationContent,
				fmt.Sprintf("missing required section: %s", section)))
		}
	}

	return problems
}

func containsHeading(lines []string, heading string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == heading {
			return true
		}
	}
	return false
}
