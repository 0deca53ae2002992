package ux

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathDefaults provides smart defaults for common file paths
type PathDefaults struct {
	ProjectRoot string
}

// NewPathDefaults creates a new PathDefaults anchored at the given
// project root. An empty root means the current working directory.
func NewPathDefaults(root string) *PathDefaults {
	if root == "" {
		root = "."
	}
	return &PathDefaults{ProjectRoot: root}
}

// WorkflowsDir returns the workflow output directory
func (pd *PathDefaults) WorkflowsDir() string {
	return filepath.Join(pd.ProjectRoot, ".agent", "workflows")
}

// ConfigFile returns the path to the project config file
func (pd *PathDefaults) ConfigFile() string {
	return filepath.Join(pd.ProjectRoot, ".agentflow.yaml")
}

// WorkflowFile returns the path a named workflow would be written to
func (pd *PathDefaults) WorkflowFile(name string) string {
	return filepath.Join(pd.WorkflowsDir(), name)
}

// HasWorkflows reports whether any workflows have been generated yet
func (pd *PathDefaults) HasWorkflows() bool {
	entries, err := os.ReadDir(pd.WorkflowsDir())
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".md" {
			return true
		}
	}
	return false
}

// ValidateRequiredFile checks if a required file exists and provides helpful error
func ValidateRequiredFile(path string, fileType string, creationCommand string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found at: %s\n\nRun '%s' to create it", fileType, path, creationCommand)
	} else if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	return nil
}

// SuggestNextSteps provides contextual next steps based on what exists
func SuggestNextSteps(root string) string {
	defaults := NewPathDefaults(root)

	if !defaults.HasWorkflows() {
		return "Generate your first workflow with 'agentflow workflow create --story \"...\"'"
	}

	return "Validate your workflows with 'agentflow workflow validate <file>'"
}
