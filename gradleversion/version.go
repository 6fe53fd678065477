// Package gradleversion implements Gradle's version ordering and version selectors.
//
// Version format: any string. It is split into parts on '.', '-', '_' and '+',
// and between a run of digits and a run of non-digits: "1.0-rc1" has the parts
// 1, 0, rc, 1.
//
// Ordering rules, applied part by part:
//   - two numeric parts compare numerically;
//   - a numeric part is higher than a non-numeric part;
//   - "dev" is lower than any other non-numeric part, and "rc", "snapshot",
//     "final", "ga", "release", "sp" are higher than any other, in that order
//     (case-insensitive);
//   - other non-numeric parts compare lexically;
//   - when one version has an extra part, it is higher if that part is numeric
//     and lower otherwise: 1.1.0 > 1.1 > 1.1-rc.
package gradleversion

import (
	"slices"
	"strings"
)

// specialMeanings ranks the qualifiers Gradle treats specially.
var specialMeanings = map[string]int{
	"dev":      -1,
	"rc":       1,
	"snapshot": 2,
	"final":    3,
	"ga":       4,
	"release":  5,
	"sp":       6,
}

// Part is one component of a version.
type Part struct {
	Value     string
	IsNumeric bool
}

// Version is a parsed version string.
type Version struct {
	Source string
	Parts  []Part
}

// Parse splits a version string into its parts. Every string is a valid version.
func Parse(s string) Version {
	v := Version{Source: s}
	start := -1
	var numeric bool
	flush := func(end int) {
		if start >= 0 && end > start {
			v.Parts = append(v.Parts, Part{Value: s[start:end], IsNumeric: numeric})
		}
		start = -1
	}
	for i, r := range s {
		if isSeparator(r) {
			flush(i)
			continue
		}
		digit := r >= '0' && r <= '9'
		if start >= 0 && digit != numeric {
			flush(i)
		}
		if start < 0 {
			start = i
			numeric = digit
		}
	}
	flush(len(s))
	return v
}

func isSeparator(r rune) bool {
	return r == '.' || r == '-' || r == '_' || r == '+'
}

// String returns the original version string.
func (v Version) String() string {
	return v.Source
}

// IsSnapshot returns true for versions ending in "-SNAPSHOT".
func (v Version) IsSnapshot() bool {
	return strings.HasSuffix(strings.ToUpper(v.Source), "-SNAPSHOT")
}

// Compare compares two parsed versions.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	n := min(len(v.Parts), len(other.Parts))
	for i := range n {
		if c := compareParts(v.Parts[i], other.Parts[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(v.Parts) > n:
		if v.Parts[n].IsNumeric {
			return 1
		}
		return -1
	case len(other.Parts) > n:
		if other.Parts[n].IsNumeric {
			return -1
		}
		return 1
	}
	return 0
}

func compareParts(a, b Part) int {
	if a.Value == b.Value {
		return 0
	}
	switch {
	case a.IsNumeric && b.IsNumeric:
		return compareNumeric(a.Value, b.Value)
	case a.IsNumeric:
		return 1
	case b.IsNumeric:
		return -1
	}

	sa, aSpecial := specialMeanings[strings.ToLower(a.Value)]
	sb, bSpecial := specialMeanings[strings.ToLower(b.Value)]
	switch {
	case aSpecial || bSpecial:
		return sign(sa - sb)
	default:
		return sign(strings.Compare(a.Value, b.Value))
	}
}

// compareNumeric compares digit strings of any length.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return sign(len(a) - len(b))
	}
	return sign(strings.Compare(a, b))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Compare compares two version strings using Gradle's ordering.
func Compare(a, b string) int {
	return Parse(a).Compare(Parse(b))
}

// Less returns true if a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts version strings in ascending order, in place.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// Max returns the highest version, or "" for an empty slice.
func Max(versions []string) string {
	if len(versions) == 0 {
		return ""
	}
	return slices.MaxFunc(versions, Compare)
}
