package execx

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Error reports a failed sync step. Command-boundary failures fill Command,
// ExitCode and the captured streams; validation failures fill Reason only.
type Error struct {
	Op       string // human-readable operation label
	Command  string // rendered command line, empty for non-command failures
	ExitCode int    // -1 when the command never ran
	Stdout   string
	Stderr   string
	Reason   string // short description for non-command failures
	Hint     string // suggested remediation
}

func (e *Error) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("%s failed. %s Suggested fix: %s", e.Op, e.Reason, e.Hint)
	}
	return fmt.Sprintf(
		"%s failed.\nCommand: %s\nExit code: %d\nstderr: %s\nstdout: %s\nSuggested fix: %s",
		e.Op, e.Command, e.ExitCode, orPlaceholder(e.Stderr), orPlaceholder(e.Stdout), e.Hint,
	)
}

// Fail builds a validation failure for the given operation.
func Fail(op, reason, hint string) *Error {
	return &Error{Op: op, ExitCode: -1, Reason: reason, Hint: hint}
}

// Run executes a command and returns its trimmed stdout.
func Run(op string, args ...string) (string, error) {
	return RunDir("", op, args...)
}

// RunDir executes a command in dir and returns its trimmed stdout.
// A missing command, a launch error, or a non-zero exit all return *Error.
func RunDir(dir, op string, args ...string) (string, error) {
	if len(args) == 0 {
		return "", Fail(op, "No command given.", "report this as a bug in the sync tool")
	}

	resolved, ok := LookPath(args[0])
	if !ok {
		return "", &Error{
			Op:       op,
			ExitCode: -1,
			Reason:   fmt.Sprintf("Command not found: %s.", args[0]),
			Hint:     "install the command and ensure it is on PATH",
		}
	}

	cmd := exec.Command(resolved, args[1:]...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String()), nil
	}

	if exitErr, isExit := err.(*exec.ExitError); isExit {
		return "", &Error{
			Op:       op,
			Command:  renderCommand(resolved, args[1:]),
			ExitCode: exitErr.ExitCode(),
			Stdout:   strings.TrimSpace(stdout.String()),
			Stderr:   strings.TrimSpace(stderr.String()),
			Hint:     "verify network access, repository permissions, and PATH configuration",
		}
	}
	return "", &Error{
		Op:       op,
		ExitCode: -1,
		Reason:   fmt.Sprintf("Could not launch command %s: %v.", args[0], err),
		Hint:     "verify command permissions and executable format",
	}
}

// LookPath resolves a command name on PATH. On Windows a bare name is probed
// with the .cmd and .exe extensions first, since npm and npm-installed tools
// ship as .cmd shims there.
func LookPath(name string) (string, bool) {
	candidates := []string{name}
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		candidates = []string{name + ".cmd", name + ".exe", name}
	}
	for _, candidate := range candidates {
		if resolved, err := exec.LookPath(candidate); err == nil {
			return resolved, true
		}
	}
	return "", false
}

func renderCommand(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, part := range append([]string{name}, args...) {
		if strings.ContainsAny(part, " \t\"") {
			part = fmt.Sprintf("%q", part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

func orPlaceholder(s string) string {
	if s == "" {
		return "<empty>"
	}
	return s
}
