package buildsys

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/goplus/vspec/formula"
	"github.com/goplus/vspec/pkgs/variant"
)

// BuildSystem captures how one native build tool (CMake, Autotools, etc)
// spells the arguments of a configure step.
type BuildSystem interface {
	// Name is the key of the build system in a naming Table.
	Name() string

	// DefaultNames supplies the names used when a Table leaves them out.
	DefaultNames() Names

	// RPath renders the install RPATH argument for libDir.
	RPath(key, libDir string) string
	// Toggle renders a boolean feature flag.
	Toggle(flag string, on bool) string
	// Location renders the install location of a dependency.
	Location(flag, path string) string
}

// Input is everything one invocation of Generate needs.
type Input struct {
	Formula    *formula.Formula
	Assignment variant.Assignment
	// Paths maps a dependency name to its install prefix.
	Paths map[string]string
	// Prefix is the install root of the component being configured.
	Prefix string
	Names  Names
}

// UnresolvedDependencyError reports a selected dependency with no install path.
type UnresolvedDependencyError struct {
	Name string
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("dependency %q has no resolved install path", e.Name)
}

// UnmappedFlagError reports a variant or dependency with no flag name.
type UnmappedFlagError struct {
	BuildSystem string
	Kind        string // "variant" or "dependency"
	Name        string
}

func (e *UnmappedFlagError) Error() string {
	return fmt.Sprintf("%s: no flag name for %s %q", e.BuildSystem, e.Kind, e.Name)
}

// ErrNoPrefix is returned when Input.Prefix is empty.
var ErrNoPrefix = errors.New("install prefix is empty")

// Generate returns the configure arguments of in for bs. The order is
// fixed: the RPATH argument, one toggle per variant in declaration order,
// then one location per selected build or link dependency in declaration
// order. Identical inputs give identical output.
func Generate(bs BuildSystem, in *Input) ([]string, error) {
	if in.Prefix == "" {
		return nil, ErrNoPrefix
	}
	deps, err := in.Formula.Resolve(in.Assignment)
	if err != nil {
		return nil, err
	}
	for _, d := range deps {
		if _, ok := in.Paths[d.Name]; !ok {
			return nil, &UnresolvedDependencyError{Name: d.Name}
		}
	}

	names := in.Names.merge(bs.DefaultNames())
	variants := in.Formula.Variants()
	args := make([]string, 0, 1+len(variants)+len(deps))
	args = append(args, bs.RPath(names.RPath, filepath.Join(in.Prefix, names.LibDir)))

	for _, v := range variants {
		flag, ok := names.Variants[v.Name]
		if !ok {
			return nil, &UnmappedFlagError{BuildSystem: bs.Name(), Kind: "variant", Name: v.Name}
		}
		args = append(args, bs.Toggle(flag, in.Assignment[v.Name]))
	}
	for _, d := range deps {
		if !d.Phases.Has(formula.Build | formula.Link) {
			continue
		}
		flag, ok := names.Dependencies[d.Name]
		if !ok {
			return nil, &UnmappedFlagError{BuildSystem: bs.Name(), Kind: "dependency", Name: d.Name}
		}
		args = append(args, bs.Location(flag, in.Paths[d.Name]))
	}
	return args, nil
}
