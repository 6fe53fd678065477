package versioncatalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/go-versioncatalog/gradleversion"
)

// strictMarker separates the strict version from the preferred version in the
// shorthand notation "1.0!!1.5".
const strictMarker = "!!"

// RichVersion is a version constraint made of independent facets.
//
// An empty string means the facet is absent. RejectedVersions distinguishes a
// nil list (absent) from an empty one (declared but empty).
type RichVersion struct {
	// Require is the required version. Other constraints in the graph may upgrade it.
	Require string `json:"require,omitempty" yaml:"require,omitempty"`

	// Strictly is a version that cannot be overridden by other constraints.
	Strictly string `json:"strictly,omitempty" yaml:"strictly,omitempty"`

	// Prefer breaks ties among otherwise compatible versions. It can coexist with
	// Require or Strictly.
	Prefer string `json:"prefer,omitempty" yaml:"prefer,omitempty"`

	// RejectedVersions lists versions that must not be selected.
	RejectedVersions []string `json:"reject,omitempty" yaml:"reject,omitempty"`

	// RejectAll makes the constraint unsatisfiable.
	RejectAll bool `json:"rejectAll,omitempty" yaml:"rejectAll,omitempty"`
}

// EmptyVersion is the constraint with no facet set.
var EmptyVersion = RichVersion{}

// ParseRichVersion parses a catalog version string.
//
// The empty string yields EmptyVersion. A string of the form "a!!b" yields a
// strict version a with preferred version b. Anything else is a required version.
func ParseRichVersion(version string) (RichVersion, error) {
	if version == "" {
		return EmptyVersion, nil
	}
	idx := strings.Index(version, strictMarker)
	if idx == 0 {
		return RichVersion{}, fmt.Errorf("%w: the strict version modifier (!!) must be appended to a valid version number: %q",
			ErrInvalidConfiguration, version)
	}
	if idx > 0 {
		return RichVersion{
			Strictly: version[:idx],
			Prefer:   version[idx+len(strictMarker):],
		}, nil
	}
	return RichVersion{Require: version}, nil
}

// MustParseRichVersion parses a version or panics. Use only for constants/tests.
func MustParseRichVersion(version string) RichVersion {
	v, err := ParseRichVersion(version)
	if err != nil {
		panic(err)
	}
	return v
}

// IsEmpty returns true if no facet is set.
func (v RichVersion) IsEmpty() bool {
	return v.Equal(EmptyVersion)
}

// Equal reports whether both constraints have the same facets.
func (v RichVersion) Equal(other RichVersion) bool {
	if v.Require != other.Require || v.Strictly != other.Strictly || v.Prefer != other.Prefer {
		return false
	}
	if v.RejectAll != other.RejectAll {
		return false
	}
	if (v.RejectedVersions == nil) != (other.RejectedVersions == nil) {
		return false
	}
	return slices.Equal(v.RejectedVersions, other.RejectedVersions)
}

// Effective returns the version a resolver would start from: the strict
// version, then the required version, then the preferred one.
func (v RichVersion) Effective() string {
	switch {
	case v.Strictly != "":
		return v.Strictly
	case v.Require != "":
		return v.Require
	default:
		return v.Prefer
	}
}

// Constraint returns the selection view of the constraint.
func (v RichVersion) Constraint() gradleversion.Constraint {
	return gradleversion.Constraint{
		Require:   v.Require,
		Strictly:  v.Strictly,
		Prefer:    v.Prefer,
		Reject:    v.RejectedVersions,
		RejectAll: v.RejectAll,
	}
}

// Select picks the version a resolver would choose among candidates, using
// Gradle's version ordering. It returns false when no candidate is acceptable.
func (v RichVersion) Select(candidates []string) (string, bool, error) {
	return gradleversion.Select(v.Constraint(), candidates)
}

// Shorthand returns the single-string notation of the constraint and true when
// that notation is lossless ("1.0" or "1.0!!1.5").
func (v RichVersion) Shorthand() (string, bool) {
	if v.RejectAll || v.RejectedVersions != nil {
		return "", false
	}
	switch {
	case v.Strictly != "" && v.Require == "" && !strings.Contains(v.Strictly+"!", strictMarker):
		return v.Strictly + strictMarker + v.Prefer, true
	case v.Require != "" && v.Strictly == "" && v.Prefer == "" && !strings.Contains(v.Require, strictMarker):
		return v.Require, true
	}
	return "", false
}

// String returns a human-readable rendering of the constraint.
func (v RichVersion) String() string {
	if s, ok := v.Shorthand(); ok {
		return s
	}
	var parts []string
	if v.Require != "" {
		parts = append(parts, "require "+v.Require)
	}
	if v.Strictly != "" {
		parts = append(parts, "strictly "+v.Strictly)
	}
	if v.Prefer != "" {
		parts = append(parts, "prefer "+v.Prefer)
	}
	if v.RejectedVersions != nil {
		parts = append(parts, "reject ["+strings.Join(v.RejectedVersions, ", ")+"]")
	}
	if v.RejectAll {
		parts = append(parts, "rejectAll")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// key returns a canonical identity string used for set membership.
func (v RichVersion) key() string {
	rejected := "-"
	if v.RejectedVersions != nil {
		rejected = fmt.Sprintf("%q", v.RejectedVersions)
	}
	return fmt.Sprintf("%q|%q|%q|%s|%t", v.Require, v.Strictly, v.Prefer, rejected, v.RejectAll)
}
