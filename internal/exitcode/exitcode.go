package exitcode

import (
	"os"

	"github.com/agentflowhq/agentflow/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ParseError indicates the user story could not be parsed
	ParseError = 3

	// ValidationError indicates workflow content or input validation failed
	ValidationError = 4

	// SecurityError indicates a rejected output path
	SecurityError = 5

	// IOError indicates a filesystem failure while writing a workflow
	IOError = 6

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// AgentflowErrors map by code family; anything else is a general error.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch {
	case errors.IsSecurityError(err):
		return SecurityError
	case errors.IsParserError(err):
		return ParseError
	case errors.IsValidationError(err):
		return ValidationError
	case errors.IsIOError(err):
		return IOError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ParseError:
		return "Story parsing error"
	case ValidationError:
		return "Validation error"
	case SecurityError:
		return "Output path rejected"
	case IOError:
		return "Filesystem error"
	default:
		return "Unknown error"
	}
}
