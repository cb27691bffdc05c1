package variant

import (
	"fmt"
	"strings"
	"unicode"
)

// Term requires a single variant to hold a given value.
type Term struct {
	Name  string
	Value bool
}

// String renders t as "+name" or "~name".
func (t Term) String() string {
	if t.Value {
		return "+" + t.Name
	}
	return "~" + t.Name
}

// When is a conjunction of terms. The empty conjunction always holds.
type When []Term

// Always is the predicate of unconditional declarations.
var Always When

// On is shorthand for the term name=true.
func On(name string) Term { return Term{Name: name, Value: true} }

// Off is shorthand for the term name=false.
func Off(name string) Term { return Term{Name: name, Value: false} }

// All builds a conjunction from terms.
func All(terms ...Term) When { return When(terms) }

// IsAlways reports whether w holds for every assignment.
func (w When) IsAlways() bool { return len(w) == 0 }

// Eval evaluates w under a. It stops at the first false term.
func (w When) Eval(a Assignment) (bool, error) {
	for _, t := range w {
		v, ok := a[t.Name]
		if !ok {
			return false, &MissingValueError{Name: t.Name}
		}
		if v != t.Value {
			return false, nil
		}
	}
	return true, nil
}

// Names returns the variant names w refers to, in term order.
func (w When) Names() []string {
	names := make([]string, 0, len(w))
	for _, t := range w {
		names = append(names, t.Name)
	}
	return names
}

// Overlaps reports whether some assignment satisfies both w and o.
// Two conjunctions overlap unless they require one variant with opposite values.
func (w When) Overlaps(o When) bool {
	for _, a := range w {
		for _, b := range o {
			if a.Name == b.Name && a.Value != b.Value {
				return false
			}
		}
	}
	return w.consistent() && o.consistent()
}

// consistent reports whether w does not contradict itself.
func (w When) consistent() bool {
	seen := make(map[string]bool, len(w))
	for _, t := range w {
		if v, ok := seen[t.Name]; ok && v != t.Value {
			return false
		}
		seen[t.Name] = t.Value
	}
	return true
}

func (w When) String() string {
	var sb strings.Builder
	for _, t := range w {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Parse parses a predicate such as "+mpi~hdf5" or "+mpi +hdf5".
// The empty string parses to Always.
func Parse(s string) (When, error) {
	var w When
	rest := strings.TrimSpace(s)
	for rest != "" {
		var value bool
		switch rest[0] {
		case '+':
			value = true
		case '~':
			value = false
		default:
			return nil, fmt.Errorf("failed to parse predicate %q: expected '+' or '~' at %q", s, rest)
		}
		rest = rest[1:]
		n := strings.IndexFunc(rest, func(r rune) bool {
			return !isNameRune(r)
		})
		if n < 0 {
			n = len(rest)
		}
		if n == 0 {
			return nil, fmt.Errorf("failed to parse predicate %q: empty variant name", s)
		}
		w = append(w, Term{Name: rest[:n], Value: value})
		rest = strings.TrimLeftFunc(rest[n:], unicode.IsSpace)
	}
	return w, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) When {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

func isNameRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
