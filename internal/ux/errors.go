package ux

import (
	"fmt"
	"strings"

	"github.com/agentflowhq/agentflow/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions.
// AgentflowErrors already carry their own suggestions and pass through
// unchanged.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := err.(*errors.AgentflowError); ok {
		return err
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "no such file or directory") {
		if strings.Contains(errMsg, ".agentflow.yaml") {
			return NewErrorWithSuggestion(err,
				"Create a .agentflow.yaml in your project root, or rely on the defaults by omitting it")
		}
		if strings.Contains(errMsg, ".agent/workflows") {
			return NewErrorWithSuggestion(err,
				"The workflows directory is created on first write. Run 'agentflow workflow create' to generate one")
		}
	}

	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check write permissions on the .agent/workflows directory")
	}

	if strings.Contains(errMsg, "file already exists") {
		return NewErrorWithSuggestion(err,
			"Pass --overwrite to replace the existing workflow, or choose a different --output name")
	}

	if strings.Contains(errMsg, "path traversal") {
		return NewErrorWithSuggestion(err,
			"Workflow files must stay inside .agent/workflows. Use a plain filename like deploy-api.md")
	}

	if strings.Contains(errMsg, "unknown agent") {
		return NewErrorWithSuggestion(err,
			"Run 'agentflow agents' to list the available agents")
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
