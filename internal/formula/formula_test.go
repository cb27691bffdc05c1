// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formula

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	formulapkg "github.com/goplus/vspec/formula"
	"github.com/goplus/vspec/pkgs/variant"
)

func depStrings(deps []formulapkg.Dependency) []string {
	var out []string
	for _, d := range deps {
		out = append(out, d.String()+" "+d.Phases.String()+" "+d.When.String())
	}
	return out
}

func TestLoadFS(t *testing.T) {
	t.Run("ValidFormula", func(t *testing.T) {
		fsys := os.DirFS("testdata").(fs.ReadFileFS)
		f, err := LoadFS(fsys, "py-perfdump.hcl")
		if err != nil {
			t.Fatalf("LoadFS failed: %v", err)
		}
		if f.Name != "py-perfdump" {
			t.Errorf("Unexpected Name: want %s got %s", "py-perfdump", f.Name)
		}
		if f.Meta.License != "GPL-3.0-or-later" {
			t.Errorf("Unexpected License: want %s got %s", "GPL-3.0-or-later", f.Meta.License)
		}
		if diff := cmp.Diff([]string{"chaseleif"}, f.Meta.Maintainers); diff != "" {
			t.Errorf("Maintainers mismatch (-want +got):\n%s", diff)
		}
		releases := f.Releases()
		if len(releases) != 1 || releases[0].Version != "1.0" {
			t.Errorf("Unexpected releases: %v", releases)
		}

		wantVariants := []variant.Variant{
			{Name: "mpi", Default: true, Description: "Use MPI"},
			{Name: "hdf5", Default: true, Description: "Enable HDF5 output"},
		}
		if diff := cmp.Diff(wantVariants, f.Variants()); diff != "" {
			t.Errorf("Variants mismatch (-want +got):\n%s", diff)
		}

		wantDeps := []string{
			"papi build,link,run ",
			"python@3: build,link,run ",
			"mpi build,link,run +mpi",
			"py-mpi4py run +mpi",
			"hdf5+mpi build,link,run +mpi+hdf5",
			"hdf5~mpi build,link,run ~mpi+hdf5",
		}
		if diff := cmp.Diff(wantDeps, depStrings(f.Dependencies())); diff != "" {
			t.Errorf("Dependencies mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		fsys := os.DirFS("testdata").(fs.ReadFileFS)
		if _, err := LoadFS(fsys, "nonexistent.hcl"); err == nil {
			t.Error("LoadFS should return error for non-existent file")
		}
	})
}

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "py-perfdump.hcl"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	deps, err := f.Resolve(f.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if len(deps) != 5 {
		t.Errorf("len(Resolve(defaults)) = %d, want 5", len(deps))
	}
}

func TestParseDefaultType(t *testing.T) {
	f, err := Parse("x.hcl", []byte(`
formula "x" {
  depends_on "zlib" {}
}
`))
	if err != nil {
		t.Fatal(err)
	}
	deps := f.Dependencies()
	if len(deps) != 1 || deps[0].Phases != formulapkg.Build|formulapkg.Link {
		t.Fatalf("Dependencies = %v, want zlib build,link", depStrings(deps))
	}
}

func TestParseEmptyType(t *testing.T) {
	_, err := Parse("x.hcl", []byte(`
formula "x" {
  depends_on "zlib" { type = [] }
}
`))
	if err == nil || !strings.Contains(err.Error(), "no phase given") {
		t.Fatalf("Parse error = %v, want no phase given", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"InvalidSyntax", `this is not valid hcl !!!@@@`},
		{"NoFormulaBlock", `variant "mpi" {}`},
		{"UnknownAttribute", `formula "x" { colour = "red" }`},
		{"DuplicateVariant", `formula "x" {
  variant "mpi" {}
  variant "mpi" {}
}`},
		{"BadPhase", `formula "x" {
  depends_on "zlib" { type = ["test"] }
}`},
		{"BadPredicate", `formula "x" {
  variant "mpi" {}
  depends_on "zlib" { when = "mpi" }
}`},
		{"BadConstraint", `formula "x" {
  depends_on "zlib" { version = "1:2:3" }
}`},
		{"UndeclaredVariant", `formula "x" {
  depends_on "zlib" { when = "+shared" }
}`},
		{"Conflict", `formula "x" {
  variant "mpi" {}
  variant "hdf5" {}
  depends_on "hdf5" { when = "+hdf5" }
  depends_on "hdf5" { when = "+mpi" }
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.name+".hcl", []byte(tt.src)); err == nil {
				t.Errorf("Parse should return error")
			}
		})
	}
}

func TestParseConflictIsTyped(t *testing.T) {
	_, err := Parse("x.hcl", []byte(`formula "x" {
  variant "mpi" {}
  depends_on "hdf5" { when = "+mpi" }
  depends_on "hdf5" {}
}`))
	var conflict *formulapkg.ConflictingDependencyError
	if !errors.As(err, &conflict) {
		t.Fatalf("Parse error = %v, want *formula.ConflictingDependencyError", err)
	}
}
