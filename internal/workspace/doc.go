// Package workspace resolves repository-root paths and loads the sync
// configuration and lock file. The Context it produces is read-only during
// a workflow run.
package workspace
