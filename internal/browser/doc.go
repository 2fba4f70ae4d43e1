// Package browser keeps the agent-browser companion CLI up to date: it
// compares the installed version against the latest npm release, performs a
// global install when needed, and downloads the browser runtime only after
// an actual upgrade.
package browser
