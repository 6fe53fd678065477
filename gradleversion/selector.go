package gradleversion

import (
	"fmt"
	"strings"
)

// Selector decides whether a candidate version satisfies a declared version.
type Selector interface {
	// Accepts returns true if candidate satisfies the selector.
	Accepts(candidate string) bool

	// IsDynamic returns true if the selector can match more than one version.
	IsDynamic() bool

	// String returns the selector notation.
	String() string
}

// ParseError represents a selector that cannot be parsed.
type ParseError struct {
	Selector string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version selector %q: %s", e.Selector, e.Message)
}

// ParseSelector parses a Gradle version selector.
//
// Supported notations:
//   - exact versions: "1.0"
//   - prefixes: "1.+", "+"
//   - ranges: "[1.0,2.0]", "[1.0,2.0)", "]1.0,2.0[", "(,2.0]", "[1.0,)"
//   - "latest.release", "latest.integration"
func ParseSelector(s string) (Selector, error) {
	switch {
	case s == "":
		return nil, &ParseError{Selector: s, Message: "empty selector"}
	case s == "latest.release" || s == "latest.integration":
		return latestSelector{status: strings.TrimPrefix(s, "latest.")}, nil
	case strings.HasSuffix(s, "+"):
		return prefixSelector{prefix: strings.TrimSuffix(s, "+")}, nil
	case strings.ContainsAny(s[:1], "[](") && strings.Contains(s, ","):
		return parseRange(s)
	default:
		return exactSelector{version: s}, nil
	}
}

// MustSelector parses a Selector or panics. Use only for constants/tests.
func MustSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// exactSelector matches a single version string. Equivalent spellings such
// as "1-0" or "1.00" are not accepted.
type exactSelector struct {
	version string
}

func (e exactSelector) Accepts(candidate string) bool {
	return candidate == e.version
}
func (e exactSelector) IsDynamic() bool { return false }
func (e exactSelector) String() string  { return e.version }

type prefixSelector struct {
	prefix string
}

func (p prefixSelector) Accepts(candidate string) bool {
	return strings.HasPrefix(candidate, p.prefix)
}
func (p prefixSelector) IsDynamic() bool { return true }
func (p prefixSelector) String() string  { return p.prefix + "+" }

type latestSelector struct {
	status string
}

func (l latestSelector) Accepts(candidate string) bool {
	if l.status == "release" {
		return !Parse(candidate).IsSnapshot()
	}
	return true
}
func (l latestSelector) IsDynamic() bool { return true }
func (l latestSelector) String() string  { return "latest." + l.status }

type rangeSelector struct {
	raw            string
	lower, upper   string
	lowerInclusive bool
	upperInclusive bool
}

func parseRange(s string) (Selector, error) {
	if len(s) < 3 {
		return nil, &ParseError{Selector: s, Message: "range too short"}
	}
	open, end := s[0], s[len(s)-1]
	if !strings.ContainsRune("[]()", rune(end)) {
		return nil, &ParseError{Selector: s, Message: "range must end with ']', '[' or ')'"}
	}
	bounds := strings.Split(s[1:len(s)-1], ",")
	if len(bounds) != 2 {
		return nil, &ParseError{Selector: s, Message: "range must have exactly two bounds"}
	}
	r := rangeSelector{
		raw:            s,
		lower:          strings.TrimSpace(bounds[0]),
		upper:          strings.TrimSpace(bounds[1]),
		lowerInclusive: open == '[',
		upperInclusive: end == ']',
	}
	if r.lower == "" && r.upper == "" {
		return nil, &ParseError{Selector: s, Message: "range needs at least one bound"}
	}
	if r.lower != "" && r.upper != "" && Compare(r.lower, r.upper) > 0 {
		return nil, &ParseError{Selector: s, Message: "lower bound is higher than upper bound"}
	}
	return r, nil
}

func (r rangeSelector) Accepts(candidate string) bool {
	if r.lower != "" {
		c := Compare(candidate, r.lower)
		if c < 0 || (c == 0 && !r.lowerInclusive) {
			return false
		}
	}
	if r.upper != "" {
		c := Compare(candidate, r.upper)
		if c > 0 || (c == 0 && !r.upperInclusive) {
			return false
		}
	}
	return true
}
func (r rangeSelector) IsDynamic() bool { return true }
func (r rangeSelector) String() string  { return r.raw }
