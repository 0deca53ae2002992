// Package pathguard confines workflow output paths to a single allowed
// base directory. Arbitrary user text flows into filenames, so every
// destination is resolved and checked here before any file I/O happens.
package pathguard

import (
	"path/filepath"
	"strings"

	"github.com/agentflowhq/agentflow/internal/errors"
)

// WorkflowsDir is the allowed output directory, relative to the
// project root.
const WorkflowsDir = ".agent/workflows"

// forbiddenChars are rejected anywhere in the output basename
const forbiddenChars = `<>:"|?*`

// Validator checks destination paths against the allowed base
type Validator struct {
	base string
}

// New creates a Validator rooted at the given project root. The
// allowed base is computed once: <root>/.agent/workflows as an
// absolute path.
func New(root string) (*Validator, error) {
	base, err := filepath.Abs(filepath.Join(root, WorkflowsDir))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSecurityBadBase,
			"cannot resolve workflows directory", err)
	}
	return &Validator{base: base}, nil
}

// Base returns the allowed base directory
func (v *Validator) Base() string {
	return v.base
}

// ValidateOutputPath resolves userPath against the allowed base and
// returns the absolute destination. It fails with a security error on
// any path escaping the base, and with validation errors on a missing
// .md extension, forbidden characters, or a hidden-file basename.
//
// Containment is checked segment-wise rather than with a raw string
// prefix, closing the sibling-directory bypass a prefix test allows
// (e.g. /a/workflows-evil passing a /a/workflows prefix check).
func (v *Validator) ValidateOutputPath(userPath string) (string, error) {
	resolved := v.resolve(userPath)

	if !v.contains(resolved) {
		return "", errors.NewPathTraversalError(userPath, resolved, v.base)
	}

	name := filepath.Base(resolved)

	if !strings.HasSuffix(name, ".md") {
		return "", errors.NewBadExtensionError(name)
	}
	if strings.ContainsAny(name, forbiddenChars) {
		return "", errors.NewForbiddenCharacterError(name)
	}
	if strings.HasPrefix(name, ".") {
		return "", errors.NewHiddenFileError(name)
	}

	return resolved, nil
}

// IsValidWorkflowPath is the non-throwing read-side check: the
// resolved path must lie under the allowed base and end in .md.
func (v *Validator) IsValidWorkflowPath(path string) bool {
	resolved := v.resolve(path)
	return v.contains(resolved) && strings.HasSuffix(resolved, ".md")
}

// resolve normalizes userPath and anchors relative paths at the base
func (v *Validator) resolve(userPath string) string {
	cleaned := filepath.Clean(userPath)
	if filepath.IsAbs(cleaned) {
		return cleaned
	}
	return filepath.Join(v.base, cleaned)
}

// contains reports whether path sits strictly under the base, by
// segment. The base itself does not count as a valid destination.
func (v *Validator) contains(path string) bool {
	rel, err := filepath.Rel(v.base, path)
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
