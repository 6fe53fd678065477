package gradleversion

// Constraint is the selection view of a rich version.
type Constraint struct {
	Require   string
	Strictly  string
	Prefer    string
	Reject    []string
	RejectAll bool
}

// Driving returns the selector notation that drives selection: the strict
// version, then the required one, then the preferred one.
func (c Constraint) Driving() string {
	switch {
	case c.Strictly != "":
		return c.Strictly
	case c.Require != "":
		return c.Require
	default:
		return c.Prefer
	}
}

// Rejects returns true if candidate is excluded by the reject list or by rejectAll.
// Reject entries are selectors themselves, so "[1.0,1.5)" rejects a range.
// Invalid reject entries never match.
func (c Constraint) Rejects(candidate string) bool {
	if c.RejectAll {
		return true
	}
	for _, r := range c.Reject {
		sel, err := ParseSelector(r)
		if err != nil {
			continue
		}
		if sel.Accepts(candidate) {
			return true
		}
	}
	return false
}

// Accepts returns true if candidate satisfies the driving selector and is not rejected.
func (c Constraint) Accepts(candidate string) (bool, error) {
	if c.Rejects(candidate) {
		return false, nil
	}
	driving := c.Driving()
	if driving == "" {
		return true, nil
	}
	sel, err := ParseSelector(driving)
	if err != nil {
		return false, err
	}
	return sel.Accepts(candidate), nil
}

// Select picks a version among candidates.
//
// The preferred version wins when it is acceptable and available. Otherwise
// the highest acceptable candidate is returned. It returns false when nothing
// is acceptable.
func Select(c Constraint, candidates []string) (string, bool, error) {
	var accepted []string
	for _, candidate := range candidates {
		ok, err := c.Accepts(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			accepted = append(accepted, candidate)
		}
	}
	if len(accepted) == 0 {
		return "", false, nil
	}
	if c.Prefer != "" {
		for _, candidate := range accepted {
			if Compare(candidate, c.Prefer) == 0 {
				return candidate, true, nil
			}
		}
	}
	return Max(accepted), true, nil
}
