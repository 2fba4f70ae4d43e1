package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/noahacgn/codex-config/internal/deploy"
	"github.com/noahacgn/codex-config/internal/workspace"
	"github.com/spf13/cobra"
)

func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Copy allowlisted files and tracked directories into the destination",
		Long: "Builds the sync set from the configured allowlist plus all git-tracked\n" +
			"files under the configured directories, then copies them into the\n" +
			"destination root (default ~/.codex), overwriting files already there.",
		RunE: runDeploy,
	}
	cmd.Flags().String("dest", "", "Destination root (overrides configuration)")
	cmd.Flags().Bool("dry-run", false, "List the files that would be copied without copying")
	return cmd
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	destFlag, _ := cmd.Flags().GetString("dest")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	dest := destFlag
	if dest == "" {
		dest, err = ctx.Destination()
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	started := time.Now()

	// Fixed order: collect, then copy.
	files, err := deploy.Collect(ctx.Root, ctx.Config.Deploy)
	if err != nil {
		return err
	}

	if dryRun {
		for _, f := range files {
			fmt.Fprintln(out, filepath.ToSlash(f))
		}
		fmt.Fprintf(out, "[sync] %d files would be copied to %s\n", len(files), dest)
		return nil
	}

	copied, err := deploy.Copy(ctx.Root, dest, files)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "[sync] destination: %s\n", dest)
	fmt.Fprintf(out, "[sync] files copied: %d\n", copied)
	fmt.Fprintf(out, "[done] Workflow completed in %.1fs\n", time.Since(started).Seconds())
	return nil
}
