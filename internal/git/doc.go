// Package git wraps the Git CLI commands used by the sync workflows: sparse
// shallow clones, sparse-checkout configuration, tracked-file listing, and
// status queries. All invocations go through execx so failures carry the
// full command context.
package git
