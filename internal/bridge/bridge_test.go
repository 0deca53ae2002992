package bridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflowhq/agentflow/internal/log"
	"github.com/agentflowhq/agentflow/internal/registry"
	"github.com/agentflowhq/agentflow/internal/workflow"
)

func newTestBuilder(t *testing.T) *workflow.Builder {
	t.Helper()

	builder, err := workflow.NewBuilder(t.TempDir(), log.NewNop())
	require.NoError(t, err)
	return builder
}

func TestGenerateReturnsContentWithoutWriting(t *testing.T) {
	root := t.TempDir()
	builder, err := workflow.NewBuilder(root, log.NewNop())
	require.NoError(t, err)

	result := Generate(builder, "Deploy backend API to Google Cloud Run with CI/CD pipeline")

	require.True(t, result.Success)
	assert.Contains(t, result.Content, "devops")
	assert.Equal(t, "deploy-backend-api-to-google-cloud-run-with-ci-cd-pipeline.md", result.Filename)
	assert.Empty(t, result.Errors)

	// generate must not touch the filesystem
	_, statErr := os.Stat(filepath.Join(root, ".agent", "workflows"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateEmptyStory(t *testing.T) {
	result := Generate(newTestBuilder(t), "   ")

	require.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cannot be empty")
}

func TestSaveWritesUnderWorkflowsDir(t *testing.T) {
	root := t.TempDir()
	builder, err := workflow.NewBuilder(root, log.NewNop())
	require.NoError(t, err)

	result := Save(builder, "# Workflow\n", "deploy-api.md")

	require.True(t, result.Success)
	assert.Equal(t, filepath.Join(root, ".agent", "workflows", "deploy-api.md"), result.Path)

	content, readErr := os.ReadFile(result.Path)
	require.NoError(t, readErr)
	assert.Equal(t, "# Workflow\n", string(content))
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	root := t.TempDir()
	builder, err := workflow.NewBuilder(root, log.NewNop())
	require.NoError(t, err)

	first := Save(builder, "old\n", "deploy-api.md")
	require.True(t, first.Success)

	second := Save(builder, "new\n", "deploy-api.md")
	require.True(t, second.Success)

	content, readErr := os.ReadFile(second.Path)
	require.NoError(t, readErr)
	assert.Equal(t, "new\n", string(content))
}

func TestSaveRejectsTraversal(t *testing.T) {
	result := Save(newTestBuilder(t), "content", "../../etc/passwd.md")

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "path traversal")
	assert.Empty(t, result.Path)
}

func TestSaveRejectsBadExtension(t *testing.T) {
	result := Save(newTestBuilder(t), "content", "deploy.sh")

	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestListAgents(t *testing.T) {
	result := ListAgents(registry.NewAgentRegistry())

	require.True(t, result.Success)
	require.Len(t, result.Agents, 10)

	names := make(map[string]AgentInfo, len(result.Agents))
	for _, agent := range result.Agents {
		names[agent.Name] = agent
	}

	devops, ok := names["devops"]
	require.True(t, ok)
	assert.Equal(t, "operations", devops.Phase)
	assert.Equal(t, "gemini-2.5-flash", devops.Model)
	assert.Contains(t, devops.Keywords, "kubernetes")

	for _, agent := range result.Agents {
		assert.NotEmpty(t, agent.Phase, agent.Name)
		assert.NotEmpty(t, agent.Model, agent.Name)
	}
}
