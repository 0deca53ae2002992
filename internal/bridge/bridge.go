// Package bridge implements the JSON protocol the desktop app invokes
// as a subprocess: generate, save, and list-agents. The envelope
// shapes are a contract with the GUI side and must not change
// independently of it.
package bridge

import (
	"os"
	"path/filepath"

	"github.com/agentflowhq/agentflow/internal/errors"
	"github.com/agentflowhq/agentflow/internal/registry"
	"github.com/agentflowhq/agentflow/internal/workflow"
)

// GenerateResult is the envelope of the generate subcommand
type GenerateResult struct {
	Success  bool     `json:"success"`
	Content  string   `json:"content"`
	Filename string   `json:"filename"`
	Errors   []string `json:"errors"`
}

// SaveResult is the envelope of the save subcommand
type SaveResult struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AgentInfo is one agent entry of the list-agents envelope
type AgentInfo struct {
	Name     string   `json:"name"`
	Phase    string   `json:"phase"`
	Model    string   `json:"model"`
	Keywords []string `json:"keywords"`
}

// AgentsResult is the envelope of the list-agents subcommand
type AgentsResult struct {
	Success bool        `json:"success"`
	Agents  []AgentInfo `json:"agents,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Generate renders a workflow without persisting it. The GUI previews
// the content and calls Save separately.
func Generate(builder *workflow.Builder, story string) GenerateResult {
	result := builder.Build(story, workflow.BuildOptions{DryRun: true})

	if !result.Success {
		return GenerateResult{
			Success: false,
			Errors:  result.ValidationErrors,
		}
	}

	return GenerateResult{
		Success:  true,
		Content:  result.Content,
		Filename: filepath.Base(result.FilePath),
		Errors:   []string{},
	}
}

// Save persists previously generated content under the given filename.
// The destination passes the same path validation as a direct build;
// saving over an existing file is allowed because the GUI confirms
// overwrites itself.
func Save(builder *workflow.Builder, content, filename string) SaveResult {
	destination, err := builder.Validator().ValidateOutputPath(filename)
	if err != nil {
		return SaveResult{Success: false, Error: bridgeError(err)}
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0750); err != nil {
		return SaveResult{Success: false, Error: "failed to create workflows directory"}
	}

	if err := os.WriteFile(destination, []byte(content), 0600); err != nil {
		return SaveResult{Success: false, Error: bridgeError(errors.NewFileWriteError(destination, err))}
	}

	return SaveResult{Success: true, Path: destination}
}

// ListAgents reports the agent catalog in the shape the GUI renders
func ListAgents(agents *registry.AgentRegistry) AgentsResult {
	catalog := agents.All()

	infos := make([]AgentInfo, 0, len(catalog))
	for _, agent := range catalog {
		infos = append(infos, AgentInfo{
			Name:     agent.Name.String(),
			Phase:    agent.Phase,
			Model:    agent.Model,
			Keywords: agent.Keywords,
		})
	}

	return AgentsResult{Success: true, Agents: infos}
}

// bridgeError keeps bridge messages short: bare message, no codes or
// suggestion lists.
func bridgeError(err error) string {
	if afErr, ok := err.(*errors.AgentflowError); ok {
		return afErr.Message
	}
	return err.Error()
}
