// Package git wires a local checkout to its GitHub remote.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RepoName is the fixed repository name used for the remote URL.
const RepoName = "github-mcp-agent"

// ErrNoUsername is returned when Connect is called without a username.
var ErrNoUsername = errors.New("git: github username required")

// RemoteURL builds the HTTPS remote URL for a user's copy of the repo.
func RemoteURL(username string) string {
	return "https://github.com/" + username + "/" + RepoName + ".git"
}

// Connect points dir at the user's GitHub repository and pushes main:
// adds the origin remote, renames the current branch to main, then
// pushes with upstream tracking. Steps run in order and a failure
// stops the sequence; completed steps are not rolled back.
func Connect(ctx context.Context, dir, username string) error {
	if username == "" {
		return ErrNoUsername
	}

	steps := [][]string{
		{"remote", "add", "origin", RemoteURL(username)},
		{"branch", "-M", "main"},
		{"push", "-u", "origin", "main"},
	}
	for _, args := range steps {
		if err := run(ctx, dir, args...); err != nil {
			return err
		}
	}
	return nil
}

// AddRemote adds a named remote to the repository in dir.
func AddRemote(ctx context.Context, dir, name, url string) error {
	return run(ctx, dir, "remote", "add", name, url)
}

// CurrentBranch returns the checked-out branch name.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// HasRemote reports whether the repository has a remote with the given name.
func HasRemote(ctx context.Context, dir, name string) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "remote")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("git remote failed: %w", err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == name {
			return true, nil
		}
	}
	return false, nil
}

func run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		output := strings.TrimSpace(string(out))
		if output != "" {
			return fmt.Errorf("git %s failed: %s", args[0], output)
		}
		return fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return nil
}
