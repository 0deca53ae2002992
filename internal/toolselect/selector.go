// Package toolselect picks the primary and optional tool names for a
// matched agent. Every returned name is guaranteed to exist in the
// tool catalog; unknown agents select nothing rather than failing.
package toolselect

import (
	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/registry"
	"github.com/agentflowhq/agentflow/internal/sanitize"
)

// Selection holds the tools chosen for one workflow
type Selection struct {
	Primary  []string
	Optional []string
}

// optionalSuggestions is the fixed per-agent table of extra tools worth
// offering beyond the agent's defaults. Agents without an entry get no
// optional tools.
var optionalSuggestions = map[domain.AgentType][]string{
	domain.AgentResearch:  {"codebase_search"},
	domain.AgentStrategy:  {"mcp-github"},
	domain.AgentPM:        {"web_search"},
	domain.AgentUX:        {"lighthouse_audit", "mcp-playwright"},
	domain.AgentArchitect: {"mcp-context7", "web_search"},
	domain.AgentDatabase:  {"run_terminal"},
	domain.AgentCoder:     {"run_tests", "mcp-context7"},
	domain.AgentReviewer:  {"run_tests"},
	domain.AgentQA:        {"lighthouse_audit", "run_terminal"},
	domain.AgentDevOps:    {"mcp-github", "write_file"},
}

// Selector filters agent tool lists against the tool catalog
type Selector struct {
	tools *registry.ToolRegistry
}

// New creates a Selector over the given tool catalog
func New(tools *registry.ToolRegistry) *Selector {
	return &Selector{tools: tools}
}

// SelectForAgent returns the primary and optional tools for an agent.
// Primary tools are the agent's defaults, optional tools come from the
// suggestion table; both are filtered to names present in the catalog.
// An agent missing from the catalog selects nothing.
func (s *Selector) SelectForAgent(agent registry.AgentDefinition) Selection {
	return Selection{
		Primary:  s.filter(agent.DefaultTools),
		Optional: s.filter(optionalSuggestions[agent.Name]),
	}
}

// filter keeps names that survive sanitization and exist in the catalog
func (s *Selector) filter(names []string) []string {
	selected := make([]string, 0, len(names))
	for _, name := range names {
		cleaned := sanitize.ToolName(name)
		if cleaned == "" {
			continue
		}
		if s.tools.Has(cleaned) {
			selected = append(selected, cleaned)
		}
	}
	return selected
}
