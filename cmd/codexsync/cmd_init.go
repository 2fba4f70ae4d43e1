package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/noahacgn/codex-config/internal/manifest"
	"github.com/noahacgn/codex-config/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a codexsync.yaml, from defaults, a file, or interactively",
		RunE:  runInit,
	}
	cmd.Flags().String("from", "", "Copy configuration from an existing YAML file")
	cmd.Flags().Bool("defaults", false, "Write the built-in default configuration")
	cmd.Flags().Bool("force", false, "Overwrite an existing codexsync.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	from, _ := cmd.Flags().GetString("from")
	useDefaults, _ := cmd.Flags().GetBool("defaults")
	force, _ := cmd.Flags().GetBool("force")

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving repository root: %w", err)
	}
	configPath := filepath.Join(absRoot, workspace.ConfigFileName)

	if _, statErr := os.Stat(configPath); statErr == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", workspace.ConfigFileName)
	}

	var cfg *manifest.Config
	switch {
	case from != "":
		cfg, err = manifest.Load(from)
		if err != nil {
			return fmt.Errorf("reading --from source: %w", err)
		}
	case useDefaults:
		cfg = manifest.Default()
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --defaults or --from")
		}
		cfg, err = interactiveBuildConfig()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	if err := manifest.Save(configPath, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s (%d skill targets)\n",
		configPath, len(cfg.Skills))
	return nil
}
