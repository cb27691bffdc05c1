// Package version compares version strings and matches them against
// range constraints such as "3.15:", ":2", "1.0:1.4" or "1.2,2.0:".
package version

import (
	"fmt"
	"strings"
)

// A Constraint is a union of closed ranges. A bound "1.2" admits every
// version it prefixes, so ":1.2" allows "1.2.9" and "1.2" alone means 1.2.x.
// The zero Constraint allows every version.
type Constraint struct {
	raw   string
	spans []span
}

type span struct {
	lo, hi string // empty means unbounded
}

// SyntaxError reports a malformed constraint.
type SyntaxError struct {
	Constraint string
	Msg        string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid version constraint %q: %s", e.Constraint, e.Msg)
}

// MismatchError reports an installed version outside a declared constraint.
type MismatchError struct {
	Name       string
	Version    string
	Constraint Constraint
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s@%s does not satisfy %q", e.Name, e.Version, e.Constraint.String())
}

// ParseConstraint parses a comma separated list of ranges.
// The empty string yields the zero Constraint.
func ParseConstraint(s string) (Constraint, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Constraint{}, nil
	}
	c := Constraint{raw: raw}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Constraint{}, &SyntaxError{Constraint: s, Msg: "empty range"}
		}
		if strings.ContainsAny(part, " \t@") {
			return Constraint{}, &SyntaxError{Constraint: s, Msg: fmt.Sprintf("unexpected character in %q", part)}
		}
		var sp span
		if lo, hi, ok := strings.Cut(part, ":"); ok {
			if strings.Contains(hi, ":") {
				return Constraint{}, &SyntaxError{Constraint: s, Msg: fmt.Sprintf("too many ':' in %q", part)}
			}
			sp = span{lo: lo, hi: hi}
		} else {
			sp = span{lo: part, hi: part}
		}
		if sp.lo != "" && sp.hi != "" && Compare(sp.lo, sp.hi) > 0 && !hasPrefix(sp.lo, sp.hi) {
			return Constraint{}, &SyntaxError{Constraint: s, Msg: fmt.Sprintf("lower bound %s is above upper bound %s", sp.lo, sp.hi)}
		}
		c.spans = append(c.spans, sp)
	}
	return c, nil
}

// MustParseConstraint is like ParseConstraint but panics on error.
func MustParseConstraint(s string) Constraint {
	c, err := ParseConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsAny reports whether c admits every version.
func (c Constraint) IsAny() bool {
	if len(c.spans) == 0 {
		return true
	}
	for _, sp := range c.spans {
		if sp.lo == "" && sp.hi == "" {
			return true
		}
	}
	return false
}

// Allows reports whether v lies in one of the ranges of c.
func (c Constraint) Allows(v string) bool {
	if len(c.spans) == 0 {
		return true
	}
	for _, sp := range c.spans {
		if sp.lo != "" && Compare(v, sp.lo) < 0 {
			continue
		}
		if sp.hi != "" && Compare(v, sp.hi) > 0 && !hasPrefix(v, sp.hi) {
			continue
		}
		return true
	}
	return false
}

func (c Constraint) String() string {
	return c.raw
}

// hasPrefix reports whether bound names a release series containing v.
func hasPrefix(v, bound string) bool {
	return strings.HasPrefix(v, bound+".")
}
