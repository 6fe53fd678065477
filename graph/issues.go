package graph

import (
	"cmp"
	"fmt"
	"slices"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
	"github.com/albertocavalcante/go-versioncatalog/gradleversion"
)

// Severity ranks an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// IssueKind identifies the check that produced an issue.
type IssueKind string

const (
	// IssueDangling is a library referring to an undeclared version alias.
	IssueDangling IssueKind = "dangling-reference"

	// IssueOrphan is a version alias no library uses.
	IssueOrphan IssueKind = "unused-version"

	// IssueUnsatisfiable is a constraint that rejects the version it asks for.
	IssueUnsatisfiable IssueKind = "unsatisfiable"

	// IssueInvalidSelector is a version or reject entry that is not a valid selector.
	IssueInvalidSelector IssueKind = "invalid-selector"

	// IssueDuplicateModule is a module declared under several library aliases.
	IssueDuplicateModule IssueKind = "duplicate-module"
)

// Issue is a problem found in a catalog.
type Issue struct {
	Severity Severity                `json:"severity" yaml:"severity"`
	Kind     IssueKind               `json:"kind" yaml:"kind"`
	Subject  string                  `json:"subject" yaml:"subject"`
	Message  string                  `json:"message" yaml:"message"`
	Position versioncatalog.Position `json:"position" yaml:"position"`
}

// String returns "severity: kind subject: message".
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s %s: %s", i.Severity, i.Kind, i.Subject, i.Message)
}

// HasErrors returns true if any issue has error severity.
func HasErrors(issues []Issue) bool {
	return slices.ContainsFunc(issues, func(i Issue) bool {
		return i.Severity == SeverityError
	})
}

// Check runs every catalog check and returns the issues sorted by severity, then subject.
func (g *Graph) Check() []Issue {
	var issues []Issue

	for _, alias := range g.Dangling() {
		for _, lib := range g.UsersOf(alias) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Kind:     IssueDangling,
				Subject:  lib.Alias,
				Message:  fmt.Sprintf("version.ref %q is not declared under [versions]", alias),
				Position: lib.Position,
			})
		}
	}

	for _, alias := range g.Orphans() {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Kind:     IssueOrphan,
			Subject:  alias,
			Message:  "no library refers to this version",
			Position: g.Versions[alias].Position,
		})
	}

	for _, alias := range g.Aliases() {
		if n := g.Versions[alias]; n.Declared() {
			issues = append(issues, checkConstraint(alias, *n.Version, n.Position)...)
		}
	}

	modules := make(map[string][]string)
	for alias, lib := range g.Libraries {
		if lib.Inline != nil {
			issues = append(issues, checkConstraint(alias, *lib.Inline, lib.Position)...)
		}
		modules[lib.Module] = append(modules[lib.Module], alias)
	}
	for module, aliases := range modules {
		if len(aliases) < 2 {
			continue
		}
		slices.Sort(aliases)
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Kind:     IssueDuplicateModule,
			Subject:  module,
			Message:  fmt.Sprintf("declared by %d libraries: %v", len(aliases), aliases),
		})
	}

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.Severity.rank(), b.Severity.rank()),
			cmp.Compare(a.Subject, b.Subject),
			cmp.Compare(a.Kind, b.Kind),
		)
	})
	return issues
}

// checkConstraint reports invalid selectors and constraints whose own reject
// list excludes the version they ask for.
func checkConstraint(subject string, v versioncatalog.RichVersion, pos versioncatalog.Position) []Issue {
	var issues []Issue
	invalid := func(err error) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Kind:     IssueInvalidSelector,
			Subject:  subject,
			Message:  err.Error(),
			Position: pos,
		})
	}

	if v.RejectAll {
		return append(issues, Issue{
			Severity: SeverityWarning,
			Kind:     IssueUnsatisfiable,
			Subject:  subject,
			Message:  "rejectAll is set: no version can be selected",
			Position: pos,
		})
	}

	for _, facet := range []string{v.Strictly, v.Require, v.Prefer} {
		if facet == "" {
			continue
		}
		if _, err := gradleversion.ParseSelector(facet); err != nil {
			invalid(err)
		}
	}
	for _, r := range v.RejectedVersions {
		if _, err := gradleversion.ParseSelector(r); err != nil {
			invalid(err)
		}
	}

	effective := v.Effective()
	if effective == "" {
		return issues
	}
	sel, err := gradleversion.ParseSelector(effective)
	if err != nil || sel.IsDynamic() {
		return issues
	}
	if v.Constraint().Rejects(effective) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Kind:     IssueUnsatisfiable,
			Subject:  subject,
			Message:  fmt.Sprintf("version %s is excluded by its own reject list %v", effective, v.RejectedVersions),
			Position: pos,
		})
	}
	return issues
}
