package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/noahacgn/codex-config/internal/lock"
	"github.com/noahacgn/codex-config/internal/manifest"
)

// ConfigFileName is the optional manifest overriding the built-in defaults.
const ConfigFileName = "codexsync.yaml"

// LockFileName records the commits last synced per skill target.
const LockFileName = "codexsync.lock.yaml"

// Context holds the resolved paths and loaded config for a repository root.
type Context struct {
	Root       string
	ConfigPath string
	LockPath   string
	Config     *manifest.Config
	Lock       *lock.File // may be nil
}

// Load resolves the repository root and loads codexsync.yaml when present,
// falling back to the compiled-in default configuration. The lock file is
// loaded when it exists.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}

	configPath := filepath.Join(root, ConfigFileName)
	lockPath := filepath.Join(root, LockFileName)

	cfg := manifest.Default()
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err = manifest.Load(configPath)
		if err != nil {
			return nil, err
		}
	}

	ctx := &Context{
		Root:       root,
		ConfigPath: configPath,
		LockPath:   lockPath,
		Config:     cfg,
	}

	if _, statErr := os.Stat(lockPath); statErr == nil {
		lf, err := lock.Load(lockPath)
		if err != nil {
			return nil, err
		}
		ctx.Lock = lf
	}

	return ctx, nil
}

// SkillDir returns the absolute local directory for a skill target.
func (c *Context) SkillDir(s manifest.Skill) string {
	return filepath.Join(c.Root, filepath.FromSlash(s.LocalPath))
}

// Destination resolves the deploy destination root, expanding a leading ~.
// Defaults to ~/.codex when the configuration does not set one.
func (c *Context) Destination() (string, error) {
	dest := c.Config.Deploy.Destination
	if dest == "" {
		dest = "~/.codex"
	}
	if dest == "~" || strings.HasPrefix(dest, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		dest = filepath.Join(home, strings.TrimPrefix(dest, "~"))
	}
	return dest, nil
}
