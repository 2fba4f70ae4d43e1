package main

import (
	"fmt"
	"time"

	"github.com/noahacgn/codex-config/internal/browser"
	"github.com/noahacgn/codex-config/internal/git"
	"github.com/noahacgn/codex-config/internal/lock"
	"github.com/noahacgn/codex-config/internal/manifest"
	"github.com/noahacgn/codex-config/internal/skill"
	"github.com/noahacgn/codex-config/internal/ui"
	"github.com/noahacgn/codex-config/internal/workspace"
	"github.com/spf13/cobra"
)

func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Sync skill directories from their upstream repositories",
		Long: "Sparse-clones each configured remote skill directory and replaces the\n" +
			"local copy wholesale, then keeps the agent-browser CLI up to date and\n" +
			"reports uncommitted changes under the synced directories.",
		RunE: runRemote,
	}
	cmd.Flags().StringSlice("only", nil, "Sync only these skill names")
	cmd.Flags().StringSlice("skip", nil, "Skip these skill names")
	cmd.Flags().Bool("skip-tools", false, "Skip agent-browser maintenance")
	cmd.Flags().Bool("no-lock", false, "Do not update codexsync.lock.yaml")
	return cmd
}

func runRemote(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	only, _ := cmd.Flags().GetStringSlice("only")
	skip, _ := cmd.Flags().GetStringSlice("skip")
	skipTools, _ := cmd.Flags().GetBool("skip-tools")
	noLock, _ := cmd.Flags().GetBool("no-lock")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	targets := manifest.FilterByNames(ctx.Config.Skills, only, skip)
	out := cmd.OutOrStdout()
	started := time.Now()

	// Fixed order: sync, tool maintenance, status report.
	progress := ui.NewProgress(out, len(targets))
	results, err := skill.SyncAll(ctx.Root, targets, progress)
	if err != nil {
		return err
	}

	if !noLock {
		if err := writeLock(ctx, targets, results); err != nil {
			return err
		}
		fmt.Fprintf(out, "[lock] %s updated\n", workspace.LockFileName)
	}

	if !skipTools {
		if err := browser.New(out).Maintain(); err != nil {
			return err
		}
	}

	if err := reportSkillStatus(cmd, ctx); err != nil {
		return err
	}

	fmt.Fprintf(out, "[done] Workflow completed in %.1fs\n", time.Since(started).Seconds())
	return nil
}

// reportSkillStatus prints uncommitted changes under the synced directories
// for operator visibility. Nothing is acted on.
func reportSkillStatus(cmd *cobra.Command, ctx *workspace.Context) error {
	status, err := git.StatusShort(ctx.Root, skillRoots(ctx.Config.Skills)...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if status != "" {
		fmt.Fprintln(out, "[git] skill changes detected:")
		fmt.Fprintln(out, status)
		return nil
	}
	fmt.Fprintln(out, "[git] skill directories have no pending changes")
	return nil
}

// skillRoots returns the deduplicated local paths covered by the targets.
func skillRoots(skills []manifest.Skill) []string {
	seen := make(map[string]bool, len(skills))
	var roots []string
	for _, s := range skills {
		if !seen[s.LocalPath] {
			seen[s.LocalPath] = true
			roots = append(roots, s.LocalPath)
		}
	}
	return roots
}

func writeLock(ctx *workspace.Context, targets []manifest.Skill, results []skill.Result) error {
	lf := ctx.Lock
	if lf == nil {
		lf = &lock.File{Version: 1}
	}
	if lf.Skills == nil {
		lf.Skills = make(map[string]*lock.Skill, len(results))
	}
	lf.GeneratedAt = time.Now().Format(time.RFC3339)
	lf.ToolVersion = version

	byName := make(map[string]manifest.Skill, len(targets))
	for _, t := range targets {
		byName[t.Name] = t
	}
	for _, r := range results {
		t := byName[r.Name]
		lf.Skills[r.Name] = &lock.Skill{
			RepoURL:    t.RepoURL,
			Branch:     t.EffectiveBranch(),
			RemotePath: t.RemotePath,
			Commit:     r.Commit,
		}
	}
	return lock.Save(ctx.LockPath, lf)
}
