package main

import (
	"fmt"

	"github.com/noahacgn/codex-config/internal/execx"
	"github.com/noahacgn/codex-config/internal/git"
	"github.com/noahacgn/codex-config/internal/semver"
	"github.com/noahacgn/codex-config/internal/workspace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the environment for common sync issues",
		RunE:  runDoctor,
	}
	cmd.Flags().Bool("remotes", false, "Also probe each remote repository for reachability")
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	checkRemotes, _ := cmd.Flags().GetBool("remotes")
	ok := true

	fmt.Fprint(out, "Checking git... ")
	if path, found := execx.LookPath("git"); found {
		fmt.Fprintf(out, "found at %s\n", path)
		fmt.Fprint(out, "Checking git sparse-checkout support... ")
		if git.SupportsSparseCheckout() {
			fmt.Fprintln(out, "OK")
		} else {
			fmt.Fprintln(out, "NOT SUPPORTED (need git 2.25+)")
			ok = false
		}
	} else {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  git is required. Install it from https://git-scm.com/")
		ok = false
	}

	fmt.Fprint(out, "Checking npm... ")
	if path, found := execx.LookPath("npm"); found {
		fmt.Fprintf(out, "found at %s\n", path)
	} else {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  npm is required for agent-browser maintenance. Install Node.js.")
		ok = false
	}

	fmt.Fprint(out, "Checking agent-browser... ")
	if _, found := execx.LookPath("agent-browser"); found {
		if raw, err := execx.Run("read installed agent-browser version", "agent-browser", "--version"); err == nil {
			if v, verr := semver.Extract(raw, "agent-browser --version"); verr == nil {
				fmt.Fprintf(out, "found (version %s)\n", v)
			} else {
				fmt.Fprintln(out, "found, but version output is not a semantic version")
				ok = false
			}
		} else {
			fmt.Fprintln(out, "found, but --version failed")
			ok = false
		}
	} else {
		fmt.Fprintln(out, "not installed (will be installed on the next remote sync)")
	}

	root, _ := cmd.Flags().GetString("root")
	ctx, loadErr := workspace.Load(root)
	if loadErr != nil {
		fmt.Fprintf(out, "Configuration: INVALID (%v)\n", loadErr)
		ok = false
	} else {
		fmt.Fprintf(out, "Configuration: %d skill targets, %d allowlisted files\n",
			len(ctx.Config.Skills), len(ctx.Config.Deploy.Files))
		if checkRemotes {
			for _, s := range ctx.Config.Skills {
				fmt.Fprintf(out, "  Checking %s (%s)... ", s.Name, s.RepoURL)
				if git.LsRemoteReachable(s.RepoURL) {
					fmt.Fprintln(out, "OK")
				} else {
					fmt.Fprintln(out, "FAILED (cannot access)")
					ok = false
				}
			}
		}
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
