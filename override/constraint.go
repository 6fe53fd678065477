package override

import (
	"slices"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

// VersionConstraint is the mutable constraint a CatalogBuilder hands out
// while declaring a version.
type VersionConstraint interface {
	Strictly(version string)
	Require(version string)
	Prefer(version string)
	Reject(versions ...string)
	RejectAll()
}

// rejectAllMarker is the rejected selector that matches every version.
const rejectAllMarker = "+"

// MutableConstraint is an in-memory VersionConstraint.
//
// It follows Gradle's mutable version constraint: Require and Strictly replace
// the required and strict versions and clear the reject list, Prefer only sets
// the preferred version, and RejectAll clears everything before rejecting "+".
type MutableConstraint struct {
	required  string
	strict    string
	preferred string
	rejected  []string
}

var _ VersionConstraint = (*MutableConstraint)(nil)

// NewMutableConstraint creates a constraint initialized from v.
func NewMutableConstraint(v versioncatalog.RichVersion) *MutableConstraint {
	c := &MutableConstraint{
		required:  v.Require,
		strict:    v.Strictly,
		preferred: v.Prefer,
		rejected:  slices.Clone(v.RejectedVersions),
	}
	if v.Strictly != "" && v.Require == "" {
		c.required = v.Strictly
	}
	if v.RejectAll {
		c.RejectAll()
	}
	return c
}

func (c *MutableConstraint) Strictly(version string) {
	c.update(c.preferred, version, version)
}

func (c *MutableConstraint) Require(version string) {
	c.update(c.preferred, version, "")
}

func (c *MutableConstraint) Prefer(version string) {
	c.preferred = version
}

func (c *MutableConstraint) Reject(versions ...string) {
	c.rejected = append(c.rejected, versions...)
}

func (c *MutableConstraint) RejectAll() {
	c.update("", "", "")
	c.rejected = append(c.rejected, rejectAllMarker)
}

func (c *MutableConstraint) update(preferred, required, strict string) {
	c.preferred = preferred
	c.required = required
	c.strict = strict
	c.rejected = nil
}

// RichVersion returns the catalog form of the constraint.
//
// A strict version is reported as Strictly only, as in "1.0!!1.5". A "+"
// entry in the reject list becomes RejectAll.
func (c *MutableConstraint) RichVersion() versioncatalog.RichVersion {
	v := versioncatalog.RichVersion{Prefer: c.preferred}
	if c.strict != "" {
		v.Strictly = c.strict
		if c.required != c.strict {
			v.Require = c.required
		}
	} else {
		v.Require = c.required
	}
	if c.rejected == nil {
		return v
	}
	rejected := make([]string, 0, len(c.rejected))
	for _, r := range c.rejected {
		if r == rejectAllMarker {
			v.RejectAll = true
			continue
		}
		rejected = append(rejected, r)
	}
	if len(rejected) > 0 || !v.RejectAll {
		v.RejectedVersions = rejected
	}
	return v
}
