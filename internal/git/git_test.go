package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/noahacgn/codex-config/internal/testutil"
)

func TestCloneSparse_checksOutOnlyRequestedPath(t *testing.T) {
	bare := testutil.CreateSkillRepo(t, "pdf")
	dest := filepath.Join(t.TempDir(), "repo")

	if err := CloneSparse(bare, "main", dest); err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	if err := SparseCheckoutSet(dest, "skills/pdf"); err != nil {
		t.Fatalf("sparse-checkout failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "skills", "pdf", "SKILL.md")); err != nil {
		t.Errorf("sparse path should be checked out: %v", err)
	}
}

func TestCloneSparse_unknownBranchFails(t *testing.T) {
	bare := testutil.CreateSkillRepo(t, "pdf")
	dest := filepath.Join(t.TempDir(), "repo")

	if err := CloneSparse(bare, "no-such-branch", dest); err == nil {
		t.Fatal("expected error for unknown branch")
	}
}

func TestHeadCommit(t *testing.T) {
	bare := testutil.CreateSkillRepo(t, "pdf")
	dest := filepath.Join(t.TempDir(), "repo")
	if err := CloneSparse(bare, "main", dest); err != nil {
		t.Fatalf("clone failed: %v", err)
	}

	sha, err := HeadCommit(dest)
	if err != nil {
		t.Fatalf("rev-parse failed: %v", err)
	}
	if len(sha) != 40 {
		t.Errorf("sha = %q, want full 40-char SHA", sha)
	}
}

func TestLsFiles_listsTrackedFilesUnderDirs(t *testing.T) {
	root := testutil.CreateConfigRepo(t)

	files, err := LsFiles(root, []string{"agents"})
	if err != nil {
		t.Fatalf("ls-files failed: %v", err)
	}
	if len(files) != 1 || files[0] != "agents/explorer.toml" {
		t.Errorf("files = %v, want [agents/explorer.toml]", files)
	}
}

func TestStatusShort_cleanAndDirty(t *testing.T) {
	root := testutil.CreateConfigRepo(t)

	out, err := StatusShort(root, "skills")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if out != "" {
		t.Errorf("clean tree status = %q, want empty", out)
	}

	if err := os.WriteFile(filepath.Join(root, "skills", "pdf", "extra.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = StatusShort(root, "skills")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if out == "" {
		t.Error("dirty tree should report changes")
	}
}

func TestIsInstalled(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git not installed")
	}
}
