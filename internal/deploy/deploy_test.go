package deploy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noahacgn/codex-config/internal/execx"
	"github.com/noahacgn/codex-config/internal/manifest"
	"github.com/noahacgn/codex-config/internal/testutil"
)

func TestValidateRelativeFile_rejectsUnsafePathsRegardlessOfExistence(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"/etc/passwd", "../escape.txt", "a/../../b.txt"} {
		err := ValidateRelativeFile(root, rel, "validate allowlisted file")
		if err == nil {
			t.Errorf("path %q should be rejected", rel)
			continue
		}
		var execErr *execx.Error
		if !errors.As(err, &execErr) {
			t.Errorf("error type = %T, want *execx.Error", err)
		}
	}
}

func TestValidateRelativeFile_missingAndNonRegular(t *testing.T) {
	root := t.TempDir()

	err := ValidateRelativeFile(root, "config.toml", "validate allowlisted file")
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("missing file should fail with a missing message, got %v", err)
	}

	if err := os.Mkdir(filepath.Join(root, "adir"), 0755); err != nil {
		t.Fatal(err)
	}
	err = ValidateRelativeFile(root, "adir", "validate allowlisted file")
	if err == nil || !strings.Contains(err.Error(), "not a file") {
		t.Errorf("directory should fail with a not-a-file message, got %v", err)
	}
}

func TestCollect_combinesAllowlistAndTrackedFilesSorted(t *testing.T) {
	root := testutil.CreateConfigRepo(t)

	files, err := Collect(root, manifest.Deploy{
		Files: []string{"config.toml", "AGENTS.md", "notify.ps1"},
		Dirs:  []string{"agents", "skills"},
	})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	want := []string{
		"AGENTS.md",
		"agents/explorer.toml",
		"config.toml",
		"notify.ps1",
		"skills/pdf/SKILL.md",
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if filepath.ToSlash(files[i]) != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestCollect_deduplicatesOverlap(t *testing.T) {
	root := testutil.CreateConfigRepo(t)

	// agents/explorer.toml is both allowlisted and git-tracked.
	files, err := Collect(root, manifest.Deploy{
		Files: []string{"agents/explorer.toml"},
		Dirs:  []string{"agents"},
	})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("files = %v, want a single deduplicated entry", files)
	}
}

func TestCollect_failsWhenAllowlistedFileMissing(t *testing.T) {
	root := testutil.CreateConfigRepo(t)
	if err := os.Remove(filepath.Join(root, "notify.ps1")); err != nil {
		t.Fatal(err)
	}

	_, err := Collect(root, manifest.Deploy{
		Files: []string{"config.toml", "AGENTS.md", "notify.ps1"},
		Dirs:  []string{"agents"},
	})
	if err == nil {
		t.Fatal("expected error for missing allowlisted file")
	}
	if !strings.Contains(err.Error(), "notify.ps1") {
		t.Errorf("error should name the missing file: %v", err)
	}
}

func TestCopy_overwritesInSetAndPreservesUnrelated(t *testing.T) {
	root := testutil.CreateConfigRepo(t)
	dest := t.TempDir()

	// Pre-existing destination state.
	if err := os.WriteFile(filepath.Join(dest, "config.toml"), []byte("old config\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dest, "unrelated.txt"), []byte("keep me\n"), 0644); err != nil {
		t.Fatal(err)
	}

	copied, err := Copy(root, dest, []string{"config.toml", "agents/explorer.toml"})
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if copied != 2 {
		t.Errorf("copied = %d, want 2", copied)
	}

	got, err := os.ReadFile(filepath.Join(dest, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "model = \"default\"\n" {
		t.Errorf("config.toml = %q, want overwritten content", got)
	}

	nested, err := os.ReadFile(filepath.Join(dest, "agents", "explorer.toml"))
	if err != nil {
		t.Fatalf("nested copy missing: %v", err)
	}
	if string(nested) != "name = \"explorer\"\n" {
		t.Errorf("explorer.toml = %q", nested)
	}

	untouched, err := os.ReadFile(filepath.Join(dest, "unrelated.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(untouched) != "keep me\n" {
		t.Errorf("unrelated.txt = %q, want untouched", untouched)
	}
}

func TestCopy_failsOnMissingSource(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()

	copied, err := Copy(root, dest, []string{"config.toml"})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if copied != 0 {
		t.Errorf("copied = %d, want 0", copied)
	}
	if !strings.Contains(err.Error(), "config.toml") {
		t.Errorf("error should name the missing file: %v", err)
	}
}
