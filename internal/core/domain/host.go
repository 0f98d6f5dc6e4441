package domain

import (
	"strconv"
	"strings"
)

// RequiredJavaMajor is the lowest Java major version that can run the tool in-process.
const RequiredJavaMajor = 8

// Host describes the runtime the orchestrator runs alongside.
// It is detected once and passed explicitly to validation and resolution.
type Host struct {
	// JavaHome is the installation directory of the host runtime. Empty when unknown.
	JavaHome string
	// JavaVersion is the version string as reported by the runtime, e.g. "1.8.0_292" or "17.0.2".
	JavaVersion string
	// OS is the GOOS-style operating system name used to build executable paths.
	OS string
}

// AtLeast reports whether the host runtime is at least the given Java major version.
// An unknown version never satisfies the check.
func (h Host) AtLeast(major int) bool {
	v, ok := JavaMajor(h.JavaVersion)
	if !ok {
		return false
	}
	return v >= major
}

// JavaMajor extracts the feature release number from a Java version string.
// Legacy "1.x" versions map to x, so "1.8.0_292" yields 8 and "11.0.2" yields 11.
func JavaMajor(version string) (int, bool) {
	version = strings.TrimSpace(version)
	if version == "" {
		return 0, false
	}

	parts := strings.FieldsFunc(version, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return 0, false
	}

	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	if first != 1 {
		return first, true
	}
	if len(parts) < 2 {
		return 0, false
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return second, true
}
