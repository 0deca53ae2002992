package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeParseEmptyInput, "test error message")

	if err.Code != ErrCodeParseEmptyInput {
		t.Errorf("expected code %s, got %s", ErrCodeParseEmptyInput, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *AgentflowError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeValidationExtension, "missing extension"),
			wantCode: "VALID-001",
			wantMsg:  "missing extension",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileWriteFailed, "write failed", fmt.Errorf("permission denied")),
			wantCode: "IO-003",
			wantMsg:  "permission denied",
		},
		{
			name:     "error with line number",
			err:      New(ErrCodeValidationContent, "missing section").WithLine(12),
			wantCode: "VALID-004",
			wantMsg:  "line 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrCodeValidationHidden, "hidden file").
		WithSuggestion("remove the leading dot")

	if len(err.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(err.Suggestions))
	}

	if !strings.Contains(err.Error(), "remove the leading dot") {
		t.Errorf("error string should contain the suggestion")
	}
}

func TestWithContext(t *testing.T) {
	err := NewPathTraversalError("../../etc/passwd.md", "/etc/passwd.md", "/project/.agent/workflows")

	if err.Context["attempted"] != "../../etc/passwd.md" {
		t.Errorf("expected attempted path in context, got %q", err.Context["attempted"])
	}
	if err.Context["resolved"] != "/etc/passwd.md" {
		t.Errorf("expected resolved path in context, got %q", err.Context["resolved"])
	}
	if err.Context["allowed"] != "/project/.agent/workflows" {
		t.Errorf("expected allowed path in context, got %q", err.Context["allowed"])
	}

	if !strings.Contains(err.Error(), "path traversal detected") {
		t.Errorf("expected traversal message, got: %s", err.Error())
	}
}

func TestErrorFamilies(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		parser     bool
		security   bool
		validation bool
	}{
		{"parser error", NewEmptyStoryError(), true, false, false},
		{"security error", NewPathTraversalError("a", "b", "c"), false, true, false},
		{"validation error", NewBadExtensionError("notes"), false, false, true},
		{"plain error", fmt.Errorf("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsParserError(tt.err); got != tt.parser {
				t.Errorf("IsParserError = %v, want %v", got, tt.parser)
			}
			if got := IsSecurityError(tt.err); got != tt.security {
				t.Errorf("IsSecurityError = %v, want %v", got, tt.security)
			}
			if got := IsValidationError(tt.err); got != tt.validation {
				t.Errorf("IsValidationError = %v, want %v", got, tt.validation)
			}
		})
	}
}
