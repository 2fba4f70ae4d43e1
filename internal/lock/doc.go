// Package lock handles parsing and writing of codexsync.lock.yaml files.
// The lock file records the exact remote commit synced for each skill
// target, so operators can see what the local tree was built from.
package lock
