// Package registry holds the static catalogs of agent personas and
// external tools. Both catalogs are populated once at construction and
// are read-only afterwards, so they can be shared across goroutines
// without locks. They are plain injected values, not package globals.
package registry

import (
	"sort"

	"github.com/agentflowhq/agentflow/internal/domain"
)

// AgentDefinition describes one of the ten fixed agent personas
type AgentDefinition struct {
	Name         domain.AgentType
	Phase        string
	Model        string
	ModelReason  string
	Keywords     []string
	DefaultTools []string
}

// HasKeyword reports whether the agent claims the given keyword
func (a AgentDefinition) HasKeyword(keyword string) bool {
	for _, k := range a.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// ScoredAgent pairs an agent with its keyword-overlap score
type ScoredAgent struct {
	Agent AgentDefinition
	Score int
}

// AgentRegistry is the read-only catalog of agent personas
type AgentRegistry struct {
	agents []AgentDefinition
	byName map[domain.AgentType]AgentDefinition
}

// NewAgentRegistry builds the catalog of the ten fixed agents
func NewAgentRegistry() *AgentRegistry {
	agents := agentCatalog()

	byName := make(map[domain.AgentType]AgentDefinition, len(agents))
	for _, agent := range agents {
		byName[agent.Name] = agent
	}

	return &AgentRegistry{
		agents: agents,
		byName: byName,
	}
}

// All returns the agents in catalog order
func (r *AgentRegistry) All() []AgentDefinition {
	out := make([]AgentDefinition, len(r.agents))
	copy(out, r.agents)
	return out
}

// Get retrieves an agent by type
func (r *AgentRegistry) Get(name domain.AgentType) (AgentDefinition, bool) {
	agent, ok := r.byName[name]
	return agent, ok
}

// RankByKeywords returns agents with at least one keyword overlap,
// ordered by descending overlap count. Ties keep catalog order so the
// ranking is deterministic.
func (r *AgentRegistry) RankByKeywords(keywords []string) []ScoredAgent {
	var ranked []ScoredAgent

	for _, agent := range r.agents {
		score := 0
		for _, keyword := range keywords {
			if agent.HasKeyword(keyword) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, ScoredAgent{Agent: agent, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// ToolDefinition is a static catalog entry for an external tool
type ToolDefinition struct {
	Name        string
	Category    string
	Description string
}

// ToolRegistry is the read-only catalog of external tool names
type ToolRegistry struct {
	tools  []ToolDefinition
	byName map[string]ToolDefinition
}

// NewToolRegistry builds the static tool catalog
func NewToolRegistry() *ToolRegistry {
	tools := toolCatalog()

	byName := make(map[string]ToolDefinition, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}

	return &ToolRegistry{
		tools:  tools,
		byName: byName,
	}
}

// All returns the tools in catalog order
func (r *ToolRegistry) All() []ToolDefinition {
	out := make([]ToolDefinition, len(r.tools))
	copy(out, r.tools)
	return out
}

// Has reports whether a tool name exists in the catalog
func (r *ToolRegistry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (ToolDefinition, bool) {
	tool, ok := r.byName[name]
	return tool, ok
}

// ByCategory returns all tools in the given category, in catalog order
func (r *ToolRegistry) ByCategory(category string) []ToolDefinition {
	var out []ToolDefinition
	for _, tool := range r.tools {
		if tool.Category == category {
			out = append(out, tool)
		}
	}
	return out
}
