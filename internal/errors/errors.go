package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Parser errors (PARSE-001 to PARSE-099)
	ErrCodeParseEmptyInput    ErrorCode = "PARSE-001"
	ErrCodeParseNoKeywords    ErrorCode = "PARSE-002"
	ErrCodeParseUnsupportedAI ErrorCode = "PARSE-003"

	// Security errors (SEC-001 to SEC-099)
	ErrCodeSecurityTraversal ErrorCode = "SEC-001"
	ErrCodeSecurityBadBase   ErrorCode = "SEC-002"

	// Validation errors (VALID-001 to VALID-099)
	ErrCodeValidationExtension  ErrorCode = "VALID-001"
	ErrCodeValidationCharacters ErrorCode = "VALID-002"
	ErrCodeValidationHidden     ErrorCode = "VALID-003"
	ErrCodeValidationContent    ErrorCode = "VALID-004"
	ErrCodeValidationExists     ErrorCode = "VALID-005"

	// Registry errors (REG-001 to REG-099), reserved for catalog extensions
	ErrCodeRegistryUnknownAgent ErrorCode = "REG-001"
	ErrCodeRegistryUnknownTool  ErrorCode = "REG-002"

	// Template errors (TMPL-001 to TMPL-099)
	ErrCodeTemplateMissing ErrorCode = "TMPL-001"
	ErrCodeTemplateRender  ErrorCode = "TMPL-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
)

// AgentflowError represents an enhanced error with code, suggestions, and documentation
type AgentflowError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error

	// Context carries structured diagnostic values, e.g. the attempted,
	// resolved and allowed paths of a rejected output path.
	Context map[string]string

	// Line is an optional 1-based line number for content validation
	// failures. Zero means no line information.
	Line int
}

// Error implements the error interface
func (e *AgentflowError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Line > 0 {
		b.WriteString(fmt.Sprintf(" (line %d)", e.Line))
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *AgentflowError) Unwrap() error {
	return e.Cause
}

// New creates a new AgentflowError
func New(code ErrorCode, message string) *AgentflowError {
	return &AgentflowError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AgentflowError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *AgentflowError {
	return &AgentflowError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *AgentflowError) WithSuggestion(suggestion string) *AgentflowError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *AgentflowError) WithSuggestions(suggestions ...string) *AgentflowError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *AgentflowError) WithDocs(url string) *AgentflowError {
	e.DocsURL = url
	return e
}

// WithContext adds a structured diagnostic value to the error
func (e *AgentflowError) WithContext(key, value string) *AgentflowError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithLine attaches a 1-based line number to the error
func (e *AgentflowError) WithLine(line int) *AgentflowError {
	e.Line = line
	return e
}

// IsParserError reports whether err is an AgentflowError from the parser family
func IsParserError(err error) bool {
	return hasCodePrefix(err, "PARSE-")
}

// IsSecurityError reports whether err is an AgentflowError from the security family
func IsSecurityError(err error) bool {
	return hasCodePrefix(err, "SEC-")
}

// IsValidationError reports whether err is an AgentflowError from the validation family
func IsValidationError(err error) bool {
	return hasCodePrefix(err, "VALID-")
}

// IsIOError reports whether err is an AgentflowError from the filesystem family
func IsIOError(err error) bool {
	return hasCodePrefix(err, "IO-")
}

func hasCodePrefix(err error, prefix string) bool {
	afErr, ok := err.(*AgentflowError)
	if !ok {
		return false
	}
	return strings.HasPrefix(string(afErr.Code), prefix)
}

// Common error constructors for frequently used errors

// NewEmptyStoryError creates an empty user story error
func NewEmptyStoryError() *AgentflowError {
	return New(ErrCodeParseEmptyInput, "user story cannot be empty").
		WithSuggestion("Provide a short feature or task description").
		WithSuggestion("Example: 'Deploy backend API to Google Cloud Run'")
}

// NewPathTraversalError creates a path traversal error carrying the
// attempted, resolved and allowed paths as diagnostic context
func NewPathTraversalError(attempted, resolved, allowed string) *AgentflowError {
	return New(ErrCodeSecurityTraversal, "path traversal detected").
		WithContext("attempted", attempted).
		WithContext("resolved", resolved).
		WithContext("allowed", allowed).
		WithSuggestion("Output paths must stay inside the workflows directory").
		WithSuggestion("Use a plain filename like 'my-feature.md'")
}

// NewBadExtensionError creates a missing .md extension error
func NewBadExtensionError(name string) *AgentflowError {
	return New(ErrCodeValidationExtension, fmt.Sprintf("workflow file must end in .md: %s", name)).
		WithSuggestion("Append .md to the filename")
}

// NewForbiddenCharacterError creates a forbidden filename character error
func NewForbiddenCharacterError(name string) *AgentflowError {
	return New(ErrCodeValidationCharacters, fmt.Sprintf("filename contains forbidden characters: %s", name)).
		WithSuggestion(`Remove any of < > : " | ? * from the filename`)
}

// NewHiddenFileError creates a hidden file rejection error
func NewHiddenFileError(name string) *AgentflowError {
	return New(ErrCodeValidationHidden, fmt.Sprintf("hidden files are not allowed: %s", name)).
		WithSuggestion("Remove the leading dot from the filename")
}

// NewFileExistsError creates a file already exists error
func NewFileExistsError(path string) *AgentflowError {
	return New(ErrCodeValidationExists, fmt.Sprintf("file already exists: %s", path)).
		WithSuggestion("Pass --overwrite to replace the existing workflow").
		WithSuggestion("Choose a different output filename with --output")
}

// NewFileWriteError creates a file write error
func NewFileWriteError(path string, cause error) *AgentflowError {
	return Wrap(ErrCodeFileWriteFailed, fmt.Sprintf("failed to write workflow: %s", path), cause).
		WithSuggestion("Check directory permissions").
		WithSuggestion("Verify there is free disk space")
}
