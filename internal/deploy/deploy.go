package deploy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/noahacgn/codex-config/internal/execx"
	"github.com/noahacgn/codex-config/internal/git"
	"github.com/noahacgn/codex-config/internal/manifest"
)

// ValidateRelativeFile checks that rel is a safe repository-relative path
// naming an existing regular file under root. Unsafe paths are rejected
// before any filesystem access.
func ValidateRelativeFile(root, rel, op string) error {
	if err := manifest.ValidatePath(rel, rel); err != nil {
		return execx.Fail(
			op,
			fmt.Sprintf("Invalid relative path: %s.", filepath.ToSlash(rel)),
			"ensure paths are repository-relative and do not escape the root",
		)
	}

	source := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(source)
	if err != nil {
		return execx.Fail(
			op,
			fmt.Sprintf("Source file is missing: %s.", source),
			"create the file or update the sync allowlist",
		)
	}
	if !info.Mode().IsRegular() {
		return execx.Fail(
			op,
			fmt.Sprintf("Source path is not a file: %s.", source),
			"ensure the allowlist contains file paths only",
		)
	}
	return nil
}

// CollectTracked lists git-tracked files under the configured directories,
// validating every entry.
func CollectTracked(root string, dirs []string) ([]string, error) {
	files, err := git.LsFiles(root, dirs)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := ValidateRelativeFile(root, f, "validate git-tracked file entry"); err != nil {
			return nil, err
		}
	}
	return sortUnique(files), nil
}

// Collect builds the full deduplicated, sorted file set to synchronize:
// every allowlisted file (validated eagerly, missing files abort before any
// copy) plus all git-tracked files under the configured directories.
func Collect(root string, d manifest.Deploy) ([]string, error) {
	var selected []string
	for _, f := range d.Files {
		if err := ValidateRelativeFile(root, f, "validate allowlisted file"); err != nil {
			return nil, err
		}
		selected = append(selected, f)
	}

	tracked, err := CollectTracked(root, d.Dirs)
	if err != nil {
		return nil, err
	}
	return sortUnique(append(selected, tracked...)), nil
}

// Copy copies every file into the destination root, creating directories as
// needed and overwriting files already present. Each source is re-validated
// as a safety net. Returns the number of files copied.
func Copy(root, dest string, files []string) (int, error) {
	copied := 0
	for _, rel := range files {
		if err := ValidateRelativeFile(root, rel, "validate source file before copy"); err != nil {
			return copied, err
		}
		source := filepath.Join(root, filepath.FromSlash(rel))
		target := filepath.Join(dest, filepath.FromSlash(rel))
		if err := copyFile(source, target); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

// copyFile copies a single file, preserving its mode.
func copyFile(source, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
	}

	in, err := os.Open(source) //nolint:gosec // source was validated against the repo root
	if err != nil {
		return fmt.Errorf("opening %s: %w", source, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", source, err)
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // target stays under the destination root
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", source, err)
	}
	return out.Close()
}

// sortUnique sorts paths lexicographically by their slash form and drops
// duplicates, yielding deterministic copy order.
func sortUnique(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var result []string
	for _, p := range paths {
		key := filepath.ToSlash(p)
		if !seen[key] {
			seen[key] = true
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return filepath.ToSlash(result[i]) < filepath.ToSlash(result[j])
	})
	return result
}
