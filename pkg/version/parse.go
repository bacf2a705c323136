// Package version parses and orders macOS product versions such as 14.4.1.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a major.minor.patch release number. Missing components are zero.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches 14, 14.4, 14.4.1 and a leading v.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Parse parses a whole string as a version. Surrounding whitespace is ignored.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil || matches[0] != s {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}
	return fromMatches(matches)
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Extract finds and parses the first version number in a string,
// e.g. "macOS 14.4.1 (23E224)".
func Extract(s string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("no version found in: %q", s)
	}
	return fromMatches(matches)
}

func fromMatches(matches []string) (Version, error) {
	var parts [3]int
	for i, m := range matches[1:] {
		if m == "" {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return Version{}, fmt.Errorf("version component %q: %w", m, err)
		}
		parts[i] = n
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}
