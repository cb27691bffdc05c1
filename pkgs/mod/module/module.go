// Package module defines the installed form of a dependency.
package module

import (
	"fmt"

	"github.com/goplus/vspec/pkgs/variant"
)

// Installed is a dependency bound to a concrete install location by an
// external package manager.
type Installed struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	// Variants is what the dependency was built with, e.g. "+mpi~shared".
	Variants string `yaml:"variants,omitempty"`
	Path     string `yaml:"path"`
}

// Validate reports whether the entry names both a dependency and a path.
func (m Installed) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("installed dependency has no name")
	}
	if m.Path == "" {
		return fmt.Errorf("installed dependency %q has no path", m.Name)
	}
	if _, err := variant.Parse(m.Variants); err != nil {
		return fmt.Errorf("installed dependency %q: %w", m.Name, err)
	}
	return nil
}

// BuiltWith returns the variant values recorded for the installation.
// Variants it does not mention are absent from the result.
func (m Installed) BuiltWith() (variant.Assignment, error) {
	w, err := variant.Parse(m.Variants)
	if err != nil {
		return nil, err
	}
	a := make(variant.Assignment, len(w))
	for _, t := range w {
		a[t.Name] = t.Value
	}
	return a, nil
}

func (m Installed) String() string {
	s := m.Name
	if m.Version != "" {
		s += "@" + m.Version
	}
	return s + m.Variants
}
