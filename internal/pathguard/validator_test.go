package pathguard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflowhq/agentflow/internal/errors"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(t.TempDir())
	require.NoError(t, err)
	return v
}

func TestValidateOutputPathAccepts(t *testing.T) {
	v := newValidator(t)

	tests := []string{
		"my-workflow.md",
		"nested/dir/workflow.md",
		"deploy-backend-api.md",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			resolved, err := v.ValidateOutputPath(input)
			require.NoError(t, err)

			assert.True(t, filepath.IsAbs(resolved))
			assert.Equal(t, filepath.Join(v.Base(), filepath.FromSlash(input)), resolved)
		})
	}
}

func TestValidateOutputPathTraversal(t *testing.T) {
	v := newValidator(t)

	tests := []string{
		"../../etc/passwd.md",
		"../sibling.md",
		"a/../../escape.md",
		"/etc/passwd.md",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := v.ValidateOutputPath(input)
			require.Error(t, err)
			assert.True(t, errors.IsSecurityError(err), "want security error, got: %v", err)
			assert.Contains(t, err.Error(), "path traversal detected")
		})
	}
}

func TestValidateOutputPathTraversalContext(t *testing.T) {
	v := newValidator(t)

	_, err := v.ValidateOutputPath("../../etc/passwd.md")
	require.Error(t, err)

	var afErr *errors.AgentflowError
	require.ErrorAs(t, err, &afErr)
	assert.Equal(t, "../../etc/passwd.md", afErr.Context["attempted"])
	assert.NotEmpty(t, afErr.Context["resolved"])
	assert.Equal(t, v.Base(), afErr.Context["allowed"])
}

func TestValidateOutputPathValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		input string
	}{
		{"missing extension", "notes"},
		{"wrong extension", "notes.txt"},
		{"forbidden question mark", "a?b.md"},
		{"forbidden pipe", "a|b.md"},
		{"forbidden quote", `a"b.md`},
		{"hidden file", ".secret.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateOutputPath(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err), "want validation error, got: %v", err)
			assert.False(t, errors.IsSecurityError(err))
		})
	}
}

// A sibling directory sharing the base's name as a prefix must not
// pass containment. A raw string-prefix check would accept it.
func TestContainmentRejectsSiblingPrefix(t *testing.T) {
	root := t.TempDir()
	v, err := New(root)
	require.NoError(t, err)

	sibling := v.Base() + "-evil/x.md"
	_, err = v.ValidateOutputPath(sibling)
	require.Error(t, err)
	assert.True(t, errors.IsSecurityError(err))

	assert.False(t, v.IsValidWorkflowPath(sibling))
}

func TestValidateOutputPathRejectsBaseItself(t *testing.T) {
	v := newValidator(t)

	_, err := v.ValidateOutputPath(".")
	require.Error(t, err)
}

func TestIsValidWorkflowPath(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"relative markdown", "deploy.md", true},
		{"nested markdown", "sub/deploy.md", true},
		{"absolute under base", filepath.Join(v.Base(), "deploy.md"), true},
		{"traversal", "../../etc/passwd.md", false},
		{"not markdown", "deploy.txt", false},
		{"outside absolute", "/etc/passwd.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValidWorkflowPath(tt.input))
		})
	}
}
