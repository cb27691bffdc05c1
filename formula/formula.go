// Package formula declares the build surface of a software component: its
// variants, the dependencies it needs under each variant combination, and
// the releases it ships.
package formula

import (
	"fmt"
	"slices"
	"sort"

	"github.com/goplus/vspec/pkgs/variant"
	"github.com/goplus/vspec/pkgs/version"
)

// -----------------------------------------------------------------------------

// Metadata describes where a component comes from.
type Metadata struct {
	Description string
	Homepage    string
	Git         string
	URL         string
	License     string
	Maintainers []string
}

// Release is a published version of the component and its source checksum.
type Release struct {
	Version string
	SHA256  string
}

// Formula is the specification of one component. A Formula is built once
// and is read-only afterwards, so it may be shared between goroutines.
type Formula struct {
	Name string
	Meta Metadata

	releases []Release
	variants []variant.Variant
	index    map[string]int
	deps     []Dependency
}

// New creates an empty formula for the named component.
func New(name string) *Formula {
	return &Formula{
		Name:  name,
		index: map[string]int{},
	}
}

// Release records a published version. Versions must be unique.
func (f *Formula) Release(ver, sha256 string) error {
	for _, r := range f.releases {
		if r.Version == ver {
			return fmt.Errorf("release %s already declared", ver)
		}
	}
	f.releases = append(f.releases, Release{Version: ver, SHA256: sha256})
	return nil
}

// Releases returns the declared releases, newest first.
func (f *Formula) Releases() []Release {
	out := slices.Clone(f.releases)
	sort.SliceStable(out, func(i, j int) bool {
		return version.Compare(out[i].Version, out[j].Version) > 0
	})
	return out
}

// -----------------------------------------------------------------------------

// Variant declares a boolean variant.
func (f *Formula) Variant(name string, def bool, description string) error {
	if f.index == nil {
		f.index = map[string]int{}
	}
	if _, ok := f.index[name]; ok {
		return &DuplicateVariantError{Name: name}
	}
	f.index[name] = len(f.variants)
	f.variants = append(f.variants, variant.Variant{Name: name, Default: def, Description: description})
	return nil
}

// Variants returns the declared variants in declaration order.
func (f *Formula) Variants() []variant.Variant {
	return slices.Clone(f.variants)
}

// Lookup returns the variant declared under name.
func (f *Formula) Lookup(name string) (variant.Variant, bool) {
	i, ok := f.index[name]
	if !ok {
		return variant.Variant{}, false
	}
	return f.variants[i], true
}

// Defaults returns the assignment made of every variant's default value.
func (f *Formula) Defaults() variant.Assignment {
	a := make(variant.Assignment, len(f.variants))
	for _, v := range f.variants {
		a[v.Name] = v.Default
	}
	return a
}

// Assign returns the defaults with overrides applied. Overriding an
// undeclared variant fails with *variant.UnknownVariantError.
func (f *Formula) Assign(overrides variant.Assignment) (variant.Assignment, error) {
	if err := f.checkKnown(overrides); err != nil {
		return nil, err
	}
	a := f.Defaults()
	for k, v := range overrides {
		a[k] = v
	}
	return a, nil
}

// Check verifies that a assigns exactly the declared variants and every
// variant a predicate refers to.
func (f *Formula) Check(a variant.Assignment) error {
	if err := f.checkKnown(a); err != nil {
		return err
	}
	for _, v := range f.variants {
		if _, ok := a[v.Name]; !ok {
			return &variant.MissingValueError{Name: v.Name}
		}
	}
	for _, d := range f.deps {
		for _, name := range d.When.Names() {
			if _, ok := a[name]; !ok {
				return &variant.MissingValueError{Name: name}
			}
		}
	}
	return nil
}

func (f *Formula) checkKnown(a variant.Assignment) error {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := f.index[name]; !ok {
			return &variant.UnknownVariantError{Name: name}
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// Dependency is one declaration of a needed component.
type Dependency struct {
	Name string
	// Constraint limits the acceptable versions; the zero value allows any.
	Constraint version.Constraint
	// Variants are the variants the dependency itself must be built with,
	// for example hdf5 "+mpi".
	Variants variant.When
	Phases   Phase
	// When gates the declaration on this formula's variants.
	When variant.When
}

// IsConditional reports whether d only applies under some assignments.
func (d Dependency) IsConditional() bool {
	return !d.When.IsAlways()
}

// String renders d in package spec form, e.g. "python@3:" or "hdf5+mpi".
func (d Dependency) String() string {
	s := d.Name
	if !d.Constraint.IsAny() {
		s += "@" + d.Constraint.String()
	}
	return s + d.Variants.String()
}

// DepOption customizes a dependency declaration.
type DepOption func(d *Dependency) error

// Constraint limits the dependency to versions matching c, e.g. "3.15:".
func Constraint(c string) DepOption {
	return func(d *Dependency) error {
		vc, err := version.ParseConstraint(c)
		if err != nil {
			return err
		}
		d.Constraint = vc
		return nil
	}
}

// Variants requires the dependency itself to be built with w, e.g. "+mpi".
func Variants(w variant.When) DepOption {
	return func(d *Dependency) error {
		d.Variants = w
		return nil
	}
}

// DependsOn declares a dependency needed during phases whenever when holds.
// The predicate is not evaluated here; variants it names may be declared
// later. A declaration whose predicate overlaps an earlier declaration of
// the same dependency fails with *ConflictingDependencyError.
func (f *Formula) DependsOn(name string, phases Phase, when variant.When, opts ...DepOption) error {
	if phases == 0 {
		return fmt.Errorf("dependency %q: no phase given", name)
	}
	d := Dependency{Name: name, Phases: phases, When: when}
	for _, opt := range opts {
		if err := opt(&d); err != nil {
			return fmt.Errorf("dependency %q: %w", name, err)
		}
	}
	for _, prev := range f.deps {
		if prev.Name == name && prev.When.Overlaps(when) {
			return &ConflictingDependencyError{Name: name, First: prev.When, Second: when}
		}
	}
	f.deps = append(f.deps, d)
	return nil
}

// Dependencies returns every declaration in declaration order.
func (f *Formula) Dependencies() []Dependency {
	return slices.Clone(f.deps)
}

// Resolve returns, in declaration order, the declarations whose predicate
// holds under a. The assignment must pass Check.
func (f *Formula) Resolve(a variant.Assignment) ([]Dependency, error) {
	if err := f.Check(a); err != nil {
		return nil, err
	}
	var out []Dependency
	for _, d := range f.deps {
		ok, err := d.When.Eval(a)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// Validate checks that every predicate names a declared variant and that
// no two declarations of one dependency overlap.
func (f *Formula) Validate() error {
	for i, d := range f.deps {
		for _, name := range d.When.Names() {
			if _, ok := f.index[name]; !ok {
				return fmt.Errorf("dependency %q: %w", d.Name, &variant.UnknownVariantError{Name: name})
			}
		}
		for _, prev := range f.deps[:i] {
			if prev.Name == d.Name && prev.When.Overlaps(d.When) {
				return &ConflictingDependencyError{Name: d.Name, First: prev.When, Second: d.When}
			}
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
