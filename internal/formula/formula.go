// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formula

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/goplus/vspec/formula"
	"github.com/goplus/vspec/pkgs/variant"
)

// Ext is the file extension of formula files.
const Ext = ".hcl"

// hclFile is the top-level structure of a formula file for decoding.
type hclFile struct {
	Formula hclFormula `hcl:"formula,block"`
}

type hclFormula struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	Homepage    string   `hcl:"homepage,optional"`
	Git         string   `hcl:"git,optional"`
	URL         string   `hcl:"url,optional"`
	License     string   `hcl:"license,optional"`
	Maintainers []string `hcl:"maintainers,optional"`

	Versions []hclVersion    `hcl:"version,block"`
	Variants []hclVariant    `hcl:"variant,block"`
	Deps     []hclDependency `hcl:"depends_on,block"`
}

type hclVersion struct {
	Version string `hcl:"version,label"`
	SHA256  string `hcl:"sha256,optional"`
}

type hclVariant struct {
	Name        string `hcl:"name,label"`
	Default     bool   `hcl:"default,optional"`
	Description string `hcl:"description,optional"`
}

type hclDependency struct {
	Name     string   `hcl:"name,label"`
	Version  string   `hcl:"version,optional"`
	Variants string   `hcl:"variants,optional"`
	Type     []string `hcl:"type,optional"`
	When     string   `hcl:"when,optional"`
}

// defaultType applies to depends_on blocks without a type attribute. An
// explicit empty list is kept and rejected by DependsOn.
var defaultType = []string{"build", "link"}

// Parse decodes formula source. filename is only used in diagnostics.
// The returned formula has passed Validate.
func Parse(filename string, src []byte) (*formula.Formula, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse formula %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode formula %s: %w", filename, diags)
	}

	f, err := build(&parsed.Formula)
	if err != nil {
		return nil, fmt.Errorf("formula %s: %w", filename, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("formula %s: %w", filename, err)
	}
	return f, nil
}

func build(hf *hclFormula) (*formula.Formula, error) {
	f := formula.New(hf.Name)
	f.Meta = formula.Metadata{
		Description: hf.Description,
		Homepage:    hf.Homepage,
		Git:         hf.Git,
		URL:         hf.URL,
		License:     hf.License,
		Maintainers: hf.Maintainers,
	}
	for _, v := range hf.Versions {
		if err := f.Release(v.Version, v.SHA256); err != nil {
			return nil, err
		}
	}
	for _, v := range hf.Variants {
		if err := f.Variant(v.Name, v.Default, v.Description); err != nil {
			return nil, err
		}
	}
	for _, d := range hf.Deps {
		types := d.Type
		if types == nil {
			types = defaultType
		}
		phases, err := formula.ParsePhase(types...)
		if err != nil {
			return nil, fmt.Errorf("dependency %q: %w", d.Name, err)
		}
		when, err := variant.Parse(d.When)
		if err != nil {
			return nil, fmt.Errorf("dependency %q: %w", d.Name, err)
		}
		opts := []formula.DepOption{formula.Constraint(d.Version)}
		if d.Variants != "" {
			depVariants, err := variant.Parse(d.Variants)
			if err != nil {
				return nil, fmt.Errorf("dependency %q: %w", d.Name, err)
			}
			opts = append(opts, formula.Variants(depVariants))
		}
		if err := f.DependsOn(d.Name, phases, when, opts...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Load loads a formula from the local filesystem.
func Load(path string) (*formula.Formula, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(filepath.Base(path), src)
}

// LoadFS loads a formula from a filesystem interface.
// The path should be relative to the filesystem root.
func LoadFS(fsys fs.ReadFileFS, path string) (*formula.Formula, error) {
	src, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, src)
}
