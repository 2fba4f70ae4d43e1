// Package deploy implements the local-to-destination sync: it builds the
// file set from the explicit allowlist plus git-tracked directory contents,
// validates every path, and copies the files into the destination root
// preserving their relative layout.
package deploy
