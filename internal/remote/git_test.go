package remote

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initUpstream creates <base>/owner/presets.git with one commit holding files
func initUpstream(t *testing.T, files map[string]string) string {
	t.Helper()

	base := t.TempDir()
	repoDir := filepath.Join(base, "owner", "presets.git")

	repo, err := git.PlainInit(repoDir, false)
	if err != nil {
		t.Fatalf("Failed to init repo: %v", err)
	}

	worktree, _ := repo.Worktree()
	for name, content := range files {
		path := filepath.Join(repoDir, filepath.FromSlash(name))
		os.MkdirAll(filepath.Dir(path), 0755)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := worktree.Add(name); err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
	}

	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	return base
}

func TestGitPull(t *testing.T) {
	base := initUpstream(t, map[string]string{
		"presets/examples/b.jsonc":  "b",
		"presets/examples/a.jsonc":  "a",
		"presets/examples/notes.md": "skip",
		"presets/top.jsonc":         "top",
	})
	dest := filepath.Join(t.TempDir(), "themes")

	g := NewGitPuller(base, dest, nil)
	g.depth = 0 // local transport

	result, err := g.Pull(context.Background(), "owner/presets", "presets/examples")
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}

	if len(result.Downloaded) != 2 || result.Downloaded[0] != "a.jsonc" || result.Downloaded[1] != "b.jsonc" {
		t.Errorf("unexpected files: %v", result.Downloaded)
	}
	if data, _ := os.ReadFile(filepath.Join(dest, "a.jsonc")); string(data) != "a" {
		t.Errorf("a.jsonc content = %q", data)
	}
	if _, err := os.Stat(filepath.Join(dest, "top.jsonc")); !os.IsNotExist(err) {
		t.Error("files outside the requested path must not be copied")
	}
}

func TestGitPullMissingPath(t *testing.T) {
	base := initUpstream(t, map[string]string{"README.md": "x"})

	g := NewGitPuller(base, t.TempDir(), nil)
	g.depth = 0

	if _, err := g.Pull(context.Background(), "owner/presets", "presets/examples"); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestGitPullMissingRepo(t *testing.T) {
	g := NewGitPuller(t.TempDir(), t.TempDir(), nil)
	g.depth = 0

	if _, err := g.Pull(context.Background(), "owner/none", "presets"); err == nil {
		t.Error("expected clone error")
	}
}

func TestCloneURL(t *testing.T) {
	g := NewGitPuller(GitHubURL, "", nil)

	if got := g.CloneURL("fastfetch-cli/fastfetch"); got != "https://github.com/fastfetch-cli/fastfetch.git" {
		t.Errorf("CloneURL = %s", got)
	}
}
