// Package execx runs external commands for the sync workflows and turns
// every failure into a single structured error carrying the operation label,
// the rendered command line, the exit code, both captured streams, and a
// remediation hint. It is the only place the tool spawns processes.
package execx
