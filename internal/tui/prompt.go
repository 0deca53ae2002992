package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// Prompt represents a simple interactive prompt configuration
type Prompt struct {
	Message     string
	Default     string
	Placeholder string
	Required    bool
}

// PromptForString displays an interactive prompt and returns the user's input
func PromptForString(p Prompt) (string, error) {
	var value string

	input := huh.NewInput().
		Title(p.Message).
		Placeholder(p.Placeholder).
		Value(&value)

	if p.Default != "" {
		input = input.Value(&value)
		value = p.Default
	}

	form := huh.NewForm(huh.NewGroup(input))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	if p.Required && value == "" {
		return "", fmt.Errorf("value is required")
	}

	return value, nil
}

// PromptForStory asks for a user story when none was passed on the
// command line
func PromptForStory() (string, error) {
	return PromptForString(Prompt{
		Message:     "Describe the feature or task",
		Placeholder: "Deploy backend API to Google Cloud Run with CI/CD pipeline",
		Required:    true,
	})
}

// PromptForAgent displays a selection prompt over the agent catalog.
// Options are "name - phase" pairs; the returned value is the bare
// agent name.
func PromptForAgent(agents []AgentOption) (string, error) {
	if len(agents) == 0 {
		return "", fmt.Errorf("no agents provided")
	}

	huhOptions := make([]huh.Option[string], len(agents))
	for i, agent := range agents {
		label := fmt.Sprintf("%s - %s", agent.Name, agent.Phase)
		huhOptions[i] = huh.NewOption(label, agent.Name)
	}

	var selected string
	selectField := huh.NewSelect[string]().
		Title("Choose an agent").
		Options(huhOptions...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(selectField))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return selected, nil
}

// AgentOption is one selectable agent in PromptForAgent
type AgentOption struct {
	Name  string
	Phase string
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	var confirmed bool = defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if prompts should be shown based on environment
// Prompts are disabled in CI environments or when stdin is not a terminal
func ShouldPrompt() bool {
	// Check common CI environment variables
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"BUILDKITE",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}

	return IsInteractive()
}
