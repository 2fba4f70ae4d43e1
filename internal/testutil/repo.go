// Package testutil builds scratch git repositories used by sync tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreateSkillRepo creates a bare git repository whose default branch (main)
// contains skills/<name>/SKILL.md for each requested skill, plus a top-level
// README so sparse checkouts have content to exclude. Partial-clone filters
// are enabled on the bare repo so local clones behave like hosted remotes.
// Returns the path to the bare repository.
func CreateSkillRepo(t *testing.T, skills ...string) string {
	t.Helper()
	dir := t.TempDir()
	bare := filepath.Join(dir, "repo.git")

	// Build a working repo first, then clone it bare.
	work := filepath.Join(dir, "work")
	run(t, dir, "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	writeFile(t, filepath.Join(work, "README.md"), "# skills\n")
	for _, name := range skills {
		writeFile(t, filepath.Join(work, "skills", name, "SKILL.md"), "# "+name+"\n")
		writeFile(t, filepath.Join(work, "skills", name, "notes.txt"), name+" notes\n")
	}
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "initial commit")

	run(t, dir, "git", "clone", "--bare", work, bare)
	run(t, bare, "git", "config", "uploadpack.allowfilter", "true")
	return bare
}

// CreateConfigRepo creates a non-bare repository laid out like the config
// repo the deploy workflow reads from: allowlisted root files plus tracked
// directories. Returns the repository root.
func CreateConfigRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	run(t, root, "git", "init", "-b", "main", ".")
	run(t, root, "git", "config", "user.email", "test@example.com")
	run(t, root, "git", "config", "user.name", "Test")

	writeFile(t, filepath.Join(root, "config.toml"), "model = \"default\"\n")
	writeFile(t, filepath.Join(root, "AGENTS.md"), "# agents\n")
	writeFile(t, filepath.Join(root, "notify.ps1"), "Write-Output 'notify'\n")
	writeFile(t, filepath.Join(root, "agents", "explorer.toml"), "name = \"explorer\"\n")
	writeFile(t, filepath.Join(root, "skills", "pdf", "SKILL.md"), "# pdf\n")
	run(t, root, "git", "add", ".")
	run(t, root, "git", "commit", "-m", "initial commit")
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
