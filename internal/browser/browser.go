package browser

import (
	"fmt"
	"io"

	"github.com/noahacgn/codex-config/internal/execx"
	"github.com/noahacgn/codex-config/internal/semver"
)

// Maintainer drives agent-browser version checks and upgrades. The command
// seams default to execx and exist so tests can run without npm or network.
type Maintainer struct {
	out  io.Writer
	run  func(op string, args ...string) (string, error)
	look func(name string) (string, bool)
}

// New returns a Maintainer reporting progress to out.
func New(out io.Writer) *Maintainer {
	return &Maintainer{out: out, run: execx.Run, look: execx.LookPath}
}

// InstalledVersion reads the locally installed agent-browser version, or nil
// when the binary is not on PATH.
func (m *Maintainer) InstalledVersion() (*semver.Version, error) {
	if _, ok := m.look("agent-browser"); !ok {
		return nil, nil
	}
	out, err := m.run("read installed agent-browser version", "agent-browser", "--version")
	if err != nil {
		return nil, err
	}
	v, err := semver.Extract(out, "agent-browser --version")
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// LatestVersion reads the latest published agent-browser version from npm.
func (m *Maintainer) LatestVersion() (semver.Version, error) {
	out, err := m.run("read latest agent-browser version from npm", "npm", "view", "agent-browser", "version")
	if err != nil {
		return semver.Version{}, err
	}
	return semver.Extract(out, "npm view agent-browser version")
}

// Maintain upgrades the agent-browser CLI when it is missing or outdated and
// runs its browser-runtime install step only when an upgrade happened.
func (m *Maintainer) Maintain() error {
	installed, err := m.InstalledVersion()
	if err != nil {
		return err
	}
	latest, err := m.LatestVersion()
	if err != nil {
		return err
	}

	current := "missing"
	if installed != nil {
		current = installed.String()
	}
	fmt.Fprintf(m.out, "[agent-browser] installed=%s latest=%s\n", current, latest)

	if !semver.NeedsUpgrade(installed, latest) {
		fmt.Fprintln(m.out, "[agent-browser] CLI is already up to date; skipping npm global install")
		fmt.Fprintln(m.out, "[agent-browser] skipping agent-browser install (no CLI upgrade performed)")
		return nil
	}

	fmt.Fprintln(m.out, "[agent-browser] upgrading CLI with npm install -g agent-browser")
	if _, err := m.run("install or upgrade agent-browser globally", "npm", "install", "-g", "agent-browser"); err != nil {
		return err
	}

	installed, err = m.InstalledVersion()
	if err != nil {
		return err
	}
	if installed == nil {
		return execx.Fail(
			"verify agent-browser install",
			"agent-browser remains unavailable after npm global install.",
			"ensure the npm global bin directory is on PATH",
		)
	}

	// Browser runtime download is heavy; only performed after a real upgrade.
	fmt.Fprintln(m.out, "[agent-browser] running agent-browser install (CLI upgraded)")
	if _, err := m.run("install browser runtime via agent-browser", "agent-browser", "install"); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "[agent-browser] install completed")
	return nil
}
