// Package versions reads the resolution manifest an external package
// manager writes after it has installed a formula's dependencies.
//
//	formula: py-perfdump
//	prefix: /opt/py-perfdump
//	deps:
//	  - name: papi
//	    version: 7.1.0
//	    path: /opt/papi
//	  - name: hdf5
//	    variants: +mpi
//	    path: /opt/hdf5
package versions

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goplus/vspec/formula"
	"github.com/goplus/vspec/pkgs/mod/module"
	"github.com/goplus/vspec/pkgs/variant"
	"github.com/goplus/vspec/pkgs/version"
	"gopkg.in/yaml.v3"
)

type Manifest struct {
	Formula string             `yaml:"formula"`
	Prefix  string             `yaml:"prefix,omitempty"`
	Deps    []module.Installed `yaml:"deps"`
}

// Parse decodes a manifest from data, or from file when data is nil.
func Parse(file string, data []byte) (*Manifest, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	var m Manifest

	if err := yaml.NewDecoder(reader).Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	seen := make(map[string]bool, len(m.Deps))
	for _, dep := range m.Deps {
		if err := dep.Validate(); err != nil {
			return nil, err
		}
		if seen[dep.Name] {
			return nil, fmt.Errorf("dependency %q listed twice", dep.Name)
		}
		seen[dep.Name] = true
	}

	return &m, nil
}

// Lookup returns the entry installed for name.
func (m *Manifest) Lookup(name string) (module.Installed, bool) {
	for _, dep := range m.Deps {
		if dep.Name == name {
			return dep, true
		}
	}
	return module.Installed{}, false
}

// Paths returns the install path of every entry, keyed by name.
func (m *Manifest) Paths() map[string]string {
	paths := make(map[string]string, len(m.Deps))
	for _, dep := range m.Deps {
		paths[dep.Name] = dep.Path
	}
	return paths
}

// VariantMismatchError reports an installed dependency built with a
// variant value other than the one its declaration requires.
type VariantMismatchError struct {
	Name     string
	Required variant.When
	Variant  string
	Have     bool
}

func (e *VariantMismatchError) Error() string {
	return fmt.Sprintf("dependency %s requires %s but was installed with %s",
		e.Name, e.Required, variant.Term{Name: e.Variant, Value: e.Have})
}

// Check verifies that each installed version satisfies the constraint of
// its declaration and that the recorded variants agree with the variants
// the declaration requires. Entries without a version or variants, and
// declarations absent from the manifest, are left to the argument generator.
func (m *Manifest) Check(deps []formula.Dependency) error {
	for _, d := range deps {
		inst, ok := m.Lookup(d.Name)
		if !ok {
			continue
		}
		if inst.Version != "" && !d.Constraint.Allows(inst.Version) {
			return &version.MismatchError{Name: d.Name, Version: inst.Version, Constraint: d.Constraint}
		}
		built, err := inst.BuiltWith()
		if err != nil {
			return fmt.Errorf("dependency %q: %w", d.Name, err)
		}
		for _, t := range d.Variants {
			if have, ok := built[t.Name]; ok && have != t.Value {
				return &VariantMismatchError{Name: d.Name, Required: d.Variants, Variant: t.Name, Have: have}
			}
		}
	}
	return nil
}
