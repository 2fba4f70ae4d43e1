// Package semver implements the strict three-component version handling used
// to decide whether the agent-browser CLI needs a global upgrade. Anything
// that is not exactly MAJOR.MINOR.PATCH with numeric components is rejected.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var pattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Version is a three-component semantic version.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v orders strictly before other, component-wise.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Parse parses a strict MAJOR.MINOR.PATCH string.
func Parse(text string) (Version, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid semantic version %q: provide a value like 1.2.3", text)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.TrimLeft(part, "0123456789") != "" {
			return Version{}, fmt.Errorf("invalid semantic version %q: provide a value like 1.2.3", text)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Extract finds the first three-component version inside raw command output.
// The source label names the command the text came from.
func Extract(raw, source string) (Version, error) {
	match := pattern.FindString(raw)
	if match == "" {
		return Version{}, fmt.Errorf("unable to parse semantic version from %s: %q: inspect command output format", source, raw)
	}
	return Parse(match)
}

// NeedsUpgrade reports whether an upgrade is required: the installed version
// is absent, or strictly older than the latest published one.
func NeedsUpgrade(installed *Version, latest Version) bool {
	if installed == nil {
		return true
	}
	return installed.Less(latest)
}
