package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ToolchainTypeJDK is the toolchain type providing a Java runtime.
const ToolchainTypeJDK = "jdk"

// Toolchain is a runtime installation declared in the toolchains registry.
type Toolchain struct {
	Type     string
	Provides map[string]string
	Home     string
}

// String renders the toolchain the way it is logged.
func (t Toolchain) String() string {
	return "JDK[" + t.Home + "]"
}

// ToolchainSettings tells the toolchain manager where the registry lives and which
// toolchain the build as a whole selected.
type ToolchainSettings struct {
	// File is the path of the toolchains registry.
	File string
	// Context holds the requirements of the build-wide toolchain. Empty means none selected.
	Context map[string]string
}

// Matches reports whether the toolchain satisfies every requirement.
// The "version" requirement accepts exact values and bracketed ranges such as "[1.8,9)".
func (t Toolchain) Matches(requirements map[string]string) (bool, error) {
	for key, want := range requirements {
		have, ok := t.Provides[key]
		if !ok {
			return false, nil
		}
		if key == "version" {
			match, err := VersionMatches(want, have)
			if err != nil {
				return false, err
			}
			if !match {
				return false, nil
			}
			continue
		}
		if want != have {
			return false, nil
		}
	}
	return true, nil
}

// VersionMatches checks a provided version against a requirement.
// Plain requirements match exactly; ranges use interval notation.
func VersionMatches(requirement, version string) (bool, error) {
	requirement = strings.TrimSpace(requirement)
	if requirement == "" {
		return true, nil
	}
	if !strings.ContainsAny(requirement[:1], "[(") {
		return requirement == strings.TrimSpace(version), nil
	}

	last := requirement[len(requirement)-1]
	if last != ']' && last != ')' {
		return false, zerr.With(ErrInvalidVersionRange, "range", requirement)
	}

	lowerInclusive := requirement[0] == '['
	upperInclusive := last == ']'
	body := requirement[1 : len(requirement)-1]

	lower, upper, hasComma := strings.Cut(body, ",")
	if !hasComma {
		// "[1.8]" pins a single version.
		if !lowerInclusive || !upperInclusive {
			return false, zerr.With(ErrInvalidVersionRange, "range", requirement)
		}
		return CompareVersions(version, strings.TrimSpace(body)) == 0, nil
	}

	lower = strings.TrimSpace(lower)
	upper = strings.TrimSpace(upper)

	if lower != "" {
		c := CompareVersions(version, lower)
		if c < 0 || (c == 0 && !lowerInclusive) {
			return false, nil
		}
	}
	if upper != "" {
		c := CompareVersions(version, upper)
		if c > 0 || (c == 0 && !upperInclusive) {
			return false, nil
		}
	}
	return true, nil
}

// CompareVersions orders dotted version strings numerically, segment by segment.
// Non-numeric segments compare lexically. Missing segments count as zero.
func CompareVersions(a, b string) int {
	as := splitVersion(a)
	bs := splitVersion(b)
	for i := range max(len(as), len(bs)) {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		if c := compareSegment(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func splitVersion(v string) []string {
	return strings.FieldsFunc(strings.TrimSpace(v), func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})
}

func compareSegment(x, y string) int {
	if x == "" {
		x = "0"
	}
	if y == "" {
		y = "0"
	}
	xi, errX := strconv.Atoi(x)
	yi, errY := strconv.Atoi(y)
	if errX == nil && errY == nil {
		switch {
		case xi < yi:
			return -1
		case xi > yi:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(x, y)
}
