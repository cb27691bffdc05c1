package formula

import (
	"fmt"

	"github.com/goplus/vspec/pkgs/variant"
)

// DuplicateVariantError reports a variant declared twice in one formula.
type DuplicateVariantError struct {
	Name string
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("variant %q already declared", e.Name)
}

// ConflictingDependencyError reports two declarations of the same dependency
// whose predicates can hold at the same time.
type ConflictingDependencyError struct {
	Name          string
	First, Second variant.When
}

func (e *ConflictingDependencyError) Error() string {
	return fmt.Sprintf("dependency %q declared under overlapping conditions %q and %q",
		e.Name, e.First.String(), e.Second.String())
}
