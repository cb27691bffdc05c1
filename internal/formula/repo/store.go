// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goplus/vspec/formula"
	internalformula "github.com/goplus/vspec/internal/formula"
)

// Store is a local directory of formula files. A formula named "zlib" is
// stored either as <dir>/zlib.hcl or as <dir>/zlib/formula.hcl.
type Store struct {
	dir  string
	fsys fs.FS
}

// New creates a new Store rooted at dir.
func New(dir string) *Store {
	return &Store{
		dir:  dir,
		fsys: os.DirFS(dir),
	}
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Find returns the path of the formula file for name, relative to the store root.
func (s *Store) Find(name string) (string, error) {
	if !fs.ValidPath(name) || strings.Contains(name, "/") {
		return "", fmt.Errorf("invalid formula name %q", name)
	}
	for _, rel := range []string{
		name + internalformula.Ext,
		name + "/formula" + internalformula.Ext,
	} {
		if _, err := fs.Stat(s.fsys, rel); err == nil {
			return rel, nil
		}
	}
	return "", fmt.Errorf("formula %q not found in %s: %w", name, s.dir, fs.ErrNotExist)
}

// Load finds and loads the formula for name.
func (s *Store) Load(name string) (*formula.Formula, error) {
	rel, err := s.Find(name)
	if err != nil {
		return nil, err
	}
	return internalformula.LoadFS(s.fsys.(fs.ReadFileFS), rel)
}

// List returns the names of every formula in the store, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			if _, err := fs.Stat(s.fsys, e.Name()+"/formula"+internalformula.Ext); err == nil {
				names = append(names, e.Name())
			}
			continue
		}
		if name, ok := strings.CutSuffix(e.Name(), internalformula.Ext); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// DefaultDir returns the default root directory where formulas are stored.
// It creates the directory with 0700 permissions if it doesn't exist.
// The directory is located at <UserConfigDir>/vspec/formulas.
func DefaultDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	formulaDir := filepath.Join(userConfigDir, "vspec", "formulas")

	if err := os.MkdirAll(formulaDir, 0700); err != nil {
		return "", err
	}
	return formulaDir, nil
}
