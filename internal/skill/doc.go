// Package skill implements the remote skill synchronization workflow: each
// configured target is sparse-cloned into a scratch directory and the local
// skill directory is replaced wholesale with the checked-out subtree.
package skill
