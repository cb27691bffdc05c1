package buildsys

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Names maps variants and dependencies to the flag names one build
// system understands. The mapping is explicit; nothing is inferred from
// the variant or dependency name.
type Names struct {
	RPath        string            `toml:"rpath"`
	LibDir       string            `toml:"libdir"`
	Variants     map[string]string `toml:"variants"`
	Dependencies map[string]string `toml:"dependencies"`
}

// merge fills the empty RPath and LibDir of n from def.
func (n Names) merge(def Names) Names {
	if n.RPath == "" {
		n.RPath = def.RPath
	}
	if n.LibDir == "" {
		n.LibDir = def.LibDir
	}
	if n.LibDir == "" {
		n.LibDir = "lib"
	}
	return n
}

// Table holds Names per build system, keyed by BuildSystem.Name.
//
//	[cmake]
//	rpath = "CMAKE_INSTALL_RPATH"
//
//	[cmake.variants]
//	mpi = "USE_MPI"
//
//	[cmake.dependencies]
//	papi = "PAPI_PREFIX"
type Table map[string]Names

// ParseTable decodes a TOML naming table.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse naming table: %w", err)
	}
	return t, nil
}

// LoadTable reads a TOML naming table from file.
func LoadTable(file string) (Table, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

// For returns the names of the build system bs.
func (t Table) For(bs string) (Names, error) {
	n, ok := t[bs]
	if !ok {
		return Names{}, fmt.Errorf("naming table has no [%s] section", bs)
	}
	return n, nil
}
