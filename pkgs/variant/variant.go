// Package variant defines build variants, complete variant assignments and
// the predicates evaluated over them.
package variant

import (
	"fmt"
	"slices"
	"strings"
)

// Variant is a named boolean build-time feature toggle.
type Variant struct {
	Name        string
	Default     bool
	Description string
}

// Assignment maps every declared variant name to its value for one build.
type Assignment map[string]bool

// Clone returns a copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// String renders a in spec form with names sorted, e.g. "+hdf5~mpi".
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	slices.Sort(names)
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(Term{Name: name, Value: a[name]}.String())
	}
	return sb.String()
}

// MissingValueError reports a variant that has no value in an assignment.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("variant %q has no value in assignment", e.Name)
}

// UnknownVariantError reports a variant name that was never declared.
type UnknownVariantError struct {
	Name string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q", e.Name)
}
