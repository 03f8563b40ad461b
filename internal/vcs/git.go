// Package vcs reads git state for the tree being verified.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gitRunner executes git commands.
type gitRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execGitRunner invokes git via the system binary.
type execGitRunner struct{}

// Run executes a git command and returns trimmed stdout.
func (execGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "no stderr"
		}
		return "", fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Client runs git queries through an injectable runner.
type Client struct {
	runner gitRunner
}

// NewClient constructs a git client with an optional runner override.
func NewClient(runner gitRunner) Client {
	if runner == nil {
		runner = execGitRunner{}
	}
	return Client{runner: runner}
}

var defaultClient = NewClient(nil)

// RepoRoot resolves the git top-level directory containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	return defaultClient.RepoRoot(ctx, dir)
}

// Revision describes the commit checked out at dir.
func Revision(ctx context.Context, dir string) (string, error) {
	return defaultClient.Revision(ctx, dir)
}

// RepoRoot resolves the git top-level directory containing dir; an empty
// dir means the working directory.
func (c Client) RepoRoot(ctx context.Context, dir string) (string, error) {
	dir, err := startDir(dir)
	if err != nil {
		return "", err
	}
	root, err := c.runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("discover git root: %w", err)
	}
	return root, nil
}

// Revision returns the short HEAD hash for dir, suffixed with "-dirty" when
// files under dir have uncommitted changes.
func (c Client) Revision(ctx context.Context, dir string) (string, error) {
	dir, err := startDir(dir)
	if err != nil {
		return "", err
	}
	commit, err := c.runner.Run(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	status, err := c.runner.Run(ctx, dir, "status", "--porcelain", "--", ".")
	if err != nil {
		return "", fmt.Errorf("check dirty state: %w", err)
	}
	if status != "" {
		return commit + "-dirty", nil
	}
	return commit, nil
}

func startDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}
