// Package git wraps the git command-line tool for history queries and
// builds the log filters that match ticket identifiers.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Git runs history queries through the git CLI.
type Git struct {
	// gitPath is the path to the git executable
	gitPath string
}

// NewGit creates a new Git instance.
// It verifies that git is available on the system.
func NewGit(ctx context.Context) (*Git, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}

	// Verify git works
	cmd := exec.CommandContext(ctx, gitPath, "version")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git command failed: %w", err)
	}

	return &Git{gitPath: gitPath}, nil
}

// Log runs "git log --oneline" with the given filter arguments and returns
// one line per matching commit, in git's own most-recent-first ordering.
// Lines are opaque text (short hash plus message) and are never parsed
// further. An empty filter list returns the default history.
// SECURITY: repoPath must be a validated, trusted path. This function
// does not perform path validation or sandboxing.
func (g *Git) Log(ctx context.Context, repoPath string, filters []string) ([]string, error) {
	args := append([]string{"-C", repoPath, "log", "--oneline"}, filters...)
	cmd := exec.CommandContext(ctx, g.gitPath, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log failed in %s: %w", repoPath, err)
	}

	text := strings.TrimRight(string(output), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
