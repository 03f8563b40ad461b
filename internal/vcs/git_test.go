package vcs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"localelint/internal/testutil"
)

// TestRepoRootAndRevision verifies root discovery and revision parsing.
func TestRepoRootAndRevision(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := filepath.Join(t.TempDir(), "repo")
	locales := filepath.Join(root, "config", "locales")

	fake := &fakeGitRunner{responses: map[string]string{
		"rev-parse --show-toplevel": root,
		"rev-parse --short HEAD":    "abc1234",
		"status --porcelain -- .":   "",
	}}
	client := NewClient(fake)

	actualRoot, err := client.RepoRoot(ctx, locales)
	if err != nil {
		t.Fatalf("discover repo root: %v", err)
	}
	if actualRoot != root {
		t.Fatalf("expected root %q, got %q", root, actualRoot)
	}

	revision, err := client.Revision(ctx, locales)
	if err != nil {
		t.Fatalf("revision: %v", err)
	}
	if revision != "abc1234" {
		t.Fatalf("expected clean revision, got %q", revision)
	}

	fake.responses["status --porcelain -- ."] = " M config/locales/de.yml"
	revision, err = client.Revision(ctx, locales)
	if err != nil {
		t.Fatalf("revision dirty: %v", err)
	}
	if revision != "abc1234-dirty" {
		t.Fatalf("expected dirty revision, got %q", revision)
	}
	if fake.dirs[len(fake.dirs)-1] != locales {
		t.Fatalf("expected git to run in %q, got %q", locales, fake.dirs[len(fake.dirs)-1])
	}
}

// TestRevisionOutsideRepo verifies git failures are wrapped.
func TestRevisionOutsideRepo(t *testing.T) {
	client := NewClient(&fakeGitRunner{responses: map[string]string{}})
	_, err := client.Revision(context.Background(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "resolve HEAD") {
		t.Fatalf("expected resolve error, got %v", err)
	}
	_, err = client.RepoRoot(context.Background(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "discover git root") {
		t.Fatalf("expected discover error, got %v", err)
	}
}

// fakeGitRunner returns canned outputs for git commands in tests.
type fakeGitRunner struct {
	responses map[string]string
	dirs      []string
}

// Run satisfies gitRunner for test doubles.
func (f *fakeGitRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.dirs = append(f.dirs, dir)
	key := strings.Join(args, " ")
	if value, ok := f.responses[key]; ok {
		return value, nil
	}
	return "", fmt.Errorf("unexpected git args: %s", key)
}
