package ux

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DiscoverProjectRoot locates the directory workflow output should be
// anchored at when no explicit root is configured.
// Priority: nearest ancestor with .agent or .agentflow.yaml -> git root
// -> current dir.
func DiscoverProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if hasProjectMarker(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if gitRoot, err := getGitRoot(); err == nil {
		return gitRoot, nil
	}

	return cwd, nil
}

func hasProjectMarker(dir string) bool {
	for _, marker := range []string{".agent", ".agentflow.yaml", ".git"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// getGitRoot returns the git repository root directory
func getGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
