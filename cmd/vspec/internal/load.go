package internal

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goplus/vspec/formula"
	"github.com/goplus/vspec/internal/env"
	internalformula "github.com/goplus/vspec/internal/formula"
	"github.com/goplus/vspec/internal/formula/repo"
	"github.com/goplus/vspec/pkgs/variant"
)

// loadFormula loads arg as a file when it looks like a path, and from the
// formula store otherwise.
func loadFormula(arg string) (*formula.Formula, error) {
	if strings.HasSuffix(arg, internalformula.Ext) || strings.ContainsRune(arg, filepath.Separator) {
		f, err := internalformula.Load(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to load formula: %w", err)
		}
		return f, nil
	}
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	f, err := store.Load(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to load formula: %w", err)
	}
	return f, nil
}

func openStore() (*repo.Store, error) {
	if dir := env.Get(env.FormulaPath, ""); dir != "" {
		return repo.New(dir), nil
	}
	dir, err := repo.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get formula dir: %w", err)
	}
	return repo.New(dir), nil
}

// parseOverrides combines a predicate such as "+mpi~hdf5" with name=bool
// settings into variant overrides. Settings win over the predicate.
func parseOverrides(pred string, sets []string) (variant.Assignment, error) {
	w, err := variant.Parse(pred)
	if err != nil {
		return nil, err
	}
	a := variant.Assignment{}
	for _, t := range w {
		a[t.Name] = t.Value
	}
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variant setting %q, want name=bool", s)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid variant setting %q: %w", s, err)
		}
		a[name] = v
	}
	return a, nil
}
