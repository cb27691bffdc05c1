// Package testutil holds fixtures shared by tests across packages.
package testutil

import (
	"github.com/goplus/vspec/formula"
	"github.com/goplus/vspec/pkgs/buildsys"
	"github.com/goplus/vspec/pkgs/variant"
)

// PerfDump returns the py-perfdump formula: an MPI- and HDF5-enabled
// Python module that writes PAPI dumps.
func PerfDump() *formula.Formula {
	f := formula.New("py-perfdump")
	f.Meta = formula.Metadata{
		Description: "An MPI- and HDF5- enabled Python module to create PAPI dumps",
		Homepage:    "https://github.com/RECUP-DOE/pyperfdump/",
		License:     "GPL-3.0-or-later",
	}
	must(f.Release("1.0", "eae980cb8fd90260a9432ff640966ee52a737be4c0b8478bf4bb3ac7714c387c"))
	must(f.Variant("mpi", true, "Use MPI"))
	must(f.Variant("hdf5", true, "Enable HDF5 output"))
	must(f.DependsOn("papi", formula.AllPhases, variant.Always))
	must(f.DependsOn("python", formula.AllPhases, variant.Always, formula.Constraint("3:")))
	mpi := variant.All(variant.On("mpi"))
	must(f.DependsOn("mpi", formula.AllPhases, mpi))
	must(f.DependsOn("py-mpi4py", formula.Run, mpi))
	must(f.DependsOn("hdf5", formula.AllPhases, variant.All(variant.On("mpi"), variant.On("hdf5")),
		formula.Variants(mpi)))
	must(f.DependsOn("hdf5", formula.AllPhases, variant.All(variant.Off("mpi"), variant.On("hdf5")),
		formula.Variants(variant.All(variant.Off("mpi")))))
	return f
}

// PerfDumpPaths returns an install path for every py-perfdump dependency.
func PerfDumpPaths() map[string]string {
	return map[string]string{
		"papi":      "/opt/papi",
		"python":    "/opt/python",
		"mpi":       "/opt/openmpi",
		"py-mpi4py": "/opt/py-mpi4py",
		"hdf5":      "/opt/hdf5",
	}
}

// CMakeNames returns the CMake flag names py-perfdump's CMakeLists expects.
func CMakeNames() buildsys.Names {
	return buildsys.Names{
		RPath: "CMAKE_INSTALL_RPATH",
		Variants: map[string]string{
			"mpi":  "USE_MPI",
			"hdf5": "ENABLE_HDF5",
		},
		Dependencies: map[string]string{
			"papi":   "PAPI_PREFIX",
			"python": "Python_ROOT_DIR",
			"mpi":    "MPI_HOME",
			"hdf5":   "HDF5_ROOT",
		},
	}
}

// AutoToolsNames returns configure option names for the same formula.
func AutoToolsNames() buildsys.Names {
	return buildsys.Names{
		Variants: map[string]string{
			"mpi":  "mpi",
			"hdf5": "hdf5",
		},
		Dependencies: map[string]string{
			"papi":   "papi",
			"python": "python",
			"mpi":    "mpi",
			"hdf5":   "hdf5",
		},
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
