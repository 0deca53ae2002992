package toolselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflowhq/agentflow/internal/domain"
	"github.com/agentflowhq/agentflow/internal/registry"
)

func TestSelectForAgent(t *testing.T) {
	agents := registry.NewAgentRegistry()
	selector := New(registry.NewToolRegistry())

	for _, agent := range agents.All() {
		t.Run(string(agent.Name), func(t *testing.T) {
			selection := selector.SelectForAgent(agent)

			assert.NotEmpty(t, selection.Primary,
				"catalog agents must select their default tools")
			assert.Equal(t, agent.DefaultTools, selection.Primary,
				"defaults all exist in the tool catalog, so none are filtered")
			assert.NotEmpty(t, selection.Optional,
				"every catalog agent has optional suggestions")
		})
	}
}

func TestSelectForAgentFiltersUnknownTools(t *testing.T) {
	selector := New(registry.NewToolRegistry())

	agent := registry.AgentDefinition{
		Name:         domain.AgentCoder,
		DefaultTools: []string{"read_file", "made_up_tool", "write_file"},
	}

	selection := selector.SelectForAgent(agent)

	assert.Equal(t, []string{"read_file", "write_file"}, selection.Primary)
}

func TestSelectForAgentUnknownAgent(t *testing.T) {
	selector := New(registry.NewToolRegistry())

	agent := registry.AgentDefinition{
		Name:         domain.AgentType("wizard"),
		DefaultTools: []string{"unknown_one", "unknown_two"},
	}

	selection := selector.SelectForAgent(agent)

	assert.Empty(t, selection.Primary)
	assert.Empty(t, selection.Optional)
}

func TestSelectionToolsAlwaysInRegistry(t *testing.T) {
	agents := registry.NewAgentRegistry()
	tools := registry.NewToolRegistry()
	selector := New(tools)

	for _, agent := range agents.All() {
		selection := selector.SelectForAgent(agent)

		for _, name := range append(selection.Primary, selection.Optional...) {
			require.True(t, tools.Has(name),
				"selected tool %s for agent %s must exist in catalog", name, agent.Name)
		}
	}
}
