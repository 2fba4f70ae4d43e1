package git

import (
	"strings"

	"github.com/noahacgn/codex-config/internal/execx"
)

// CloneSparse clones a single branch of a repository into dest with minimal
// history and sparse checkout enabled. Blob filtering keeps the transfer to
// tree objects until the sparse set is chosen.
func CloneSparse(url, branch, dest string) error {
	_, err := execx.Run(
		"clone remote repository",
		"git", "clone", "--depth=1", "--filter=blob:none", "--sparse",
		"--branch", branch, url, dest,
	)
	return err
}

// SparseCheckoutSet restricts the working tree of the repository at dir to
// the given path. Non-cone mode so the path is matched literally.
func SparseCheckoutSet(dir, path string) error {
	_, err := execx.Run(
		"sparse checkout",
		"git", "-C", dir, "sparse-checkout", "set", "--no-cone", path,
	)
	return err
}

// HeadCommit returns the full SHA of HEAD in the repository at dir.
func HeadCommit(dir string) (string, error) {
	return execx.Run("read synced commit SHA", "git", "-C", dir, "rev-parse", "HEAD")
}

// StatusShort returns porcelain short status output for the given paths,
// queried from dir. Empty output means a clean tree.
func StatusShort(dir string, paths ...string) (string, error) {
	args := append([]string{"git", "status", "--short", "--"}, paths...)
	return execx.RunDir(dir, "collect git status", args...)
}

// LsFiles lists git-tracked files under the given directories, relative to
// the repository at root. Blank lines are dropped.
func LsFiles(root string, dirs []string) ([]string, error) {
	args := append([]string{"git", "-C", root, "ls-files", "--"}, dirs...)
	out, err := execx.Run("collect git-tracked files for sync directories", args...)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if text := strings.TrimSpace(line); text != "" {
			files = append(files, text)
		}
	}
	return files, nil
}

// LsRemoteReachable reports whether a repository URL can be contacted.
func LsRemoteReachable(url string) bool {
	_, err := execx.Run("probe remote repository", "git", "ls-remote", "--exit-code", "--quiet", url)
	return err == nil
}

// IsInstalled reports whether git is available on PATH.
func IsInstalled() bool {
	_, ok := execx.LookPath("git")
	return ok
}

// SupportsSparseCheckout reports whether the installed git understands the
// sparse-checkout subcommand (git 2.25+).
func SupportsSparseCheckout() bool {
	_, err := execx.Run("check sparse-checkout support", "git", "sparse-checkout", "--help")
	return err == nil
}
