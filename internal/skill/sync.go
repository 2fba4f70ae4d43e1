package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/noahacgn/codex-config/internal/execx"
	"github.com/noahacgn/codex-config/internal/git"
	"github.com/noahacgn/codex-config/internal/manifest"
	"github.com/noahacgn/codex-config/internal/ui"
)

// Result records the remote commit a target was synced from.
type Result struct {
	Name   string
	Commit string
}

// SyncAll synchronizes every target in configured order. The first failure
// aborts the remaining targets.
func SyncAll(root string, targets []manifest.Skill, progress *ui.Progress) ([]Result, error) {
	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		progress.Log("[sync] %s: start", t.Name)
		start := time.Now()
		commit, err := syncOne(root, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
		elapsed := time.Since(start).Seconds()
		progress.Done(fmt.Sprintf("%s: done in %.1fs (commit %s)", t.Name, elapsed, shortSHA(commit)))
		results = append(results, Result{Name: t.Name, Commit: commit})
	}
	return results, nil
}

// syncOne clones one target sparsely, replaces its local directory, and
// returns the synced commit SHA. The scratch clone directory is removed on
// every exit path.
func syncOne(root string, t manifest.Skill) (string, error) {
	tmp, err := os.MkdirTemp("", "skill-sync-")
	if err != nil {
		return "", fmt.Errorf("creating scratch clone directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	cloneDir := filepath.Join(tmp, "repo")
	if err := git.CloneSparse(t.RepoURL, t.EffectiveBranch(), cloneDir); err != nil {
		return "", err
	}
	if err := git.SparseCheckoutSet(cloneDir, t.RemotePath); err != nil {
		return "", err
	}

	source := filepath.Join(cloneDir, filepath.FromSlash(t.RemotePath))
	if info, statErr := os.Stat(source); statErr != nil || !info.IsDir() {
		return "", execx.Fail(
			"verify sparse checkout",
			fmt.Sprintf("Remote path not found after checkout: %s.", t.RemotePath),
			"verify upstream repository structure",
		)
	}

	local := filepath.Join(root, filepath.FromSlash(t.LocalPath))
	if err := replaceDir(source, local); err != nil {
		return "", err
	}

	return git.HeadCommit(cloneDir)
}

// replaceDir removes whatever exists at dst (directory or file) and copies
// the src tree in its place.
func replaceDir(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("removing %s: %w", dst, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", dst, err)
	}
	if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
		return fmt.Errorf("copying synced tree to %s: %w", dst, err)
	}
	return nil
}

func shortSHA(sha string) string {
	if sha == "" {
		return "<unknown>"
	}
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
