package main

import (
	"encoding/json"
	"os"

	"github.com/noahacgn/codex-config/internal/git"
	"github.com/noahacgn/codex-config/internal/manifest"
	"github.com/noahacgn/codex-config/internal/ui"
	"github.com/noahacgn/codex-config/internal/workspace"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show local state of each configured skill target",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type skillStatus struct {
	Name       string `json:"name"`
	Present    bool   `json:"present"`
	Dirty      bool   `json:"dirty"`
	LockCommit string `json:"lock_commit,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	statuses := make([]skillStatus, 0, len(ctx.Config.Skills))
	for _, s := range ctx.Config.Skills {
		statuses = append(statuses, collectStatus(ctx, s))
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "SKILL", "PRESENT", "DIRTY", "LAST SYNC")
	for _, s := range statuses {
		lastSync := "-"
		if s.LockCommit != "" {
			lastSync = shortCommit(s.LockCommit)
		}
		tbl.Row(s.Name, s.Present, s.Dirty, lastSync)
	}
	return tbl.Flush()
}

func collectStatus(ctx *workspace.Context, s manifest.Skill) skillStatus {
	st := skillStatus{Name: s.Name}

	if info, err := os.Stat(ctx.SkillDir(s)); err == nil && info.IsDir() {
		st.Present = true
		if status, err := git.StatusShort(ctx.Root, s.LocalPath); err == nil && status != "" {
			st.Dirty = true
		}
	}

	if ctx.Lock != nil {
		if entry, ok := ctx.Lock.Skills[s.Name]; ok {
			st.LockCommit = entry.Commit
		}
	}
	return st
}

func shortCommit(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
