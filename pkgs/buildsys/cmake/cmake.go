package cmake

import (
	"github.com/goplus/vspec/pkgs/buildsys"
)

// CMake spells configure arguments as cache definitions.
type CMake struct{}

var _ buildsys.BuildSystem = (*CMake)(nil)

// New creates a new CMake build system.
func New() *CMake {
	return &CMake{}
}

func (c *CMake) Name() string {
	return "cmake"
}

func (c *CMake) DefaultNames() buildsys.Names {
	return buildsys.Names{RPath: "CMAKE_INSTALL_RPATH", LibDir: "lib"}
}

func (c *CMake) RPath(key, libDir string) string {
	return Define(key, libDir)
}

func (c *CMake) Toggle(flag string, on bool) string {
	return DefineBool(flag, on)
}

func (c *CMake) Location(flag, path string) string {
	return Define(flag, path)
}

// Define renders an untyped cache entry, -DKEY=VALUE.
func Define(key, value string) string {
	return "-D" + key + "=" + value
}

// DefineBool renders a BOOL cache entry, -DKEY:BOOL=ON or -DKEY:BOOL=OFF.
func DefineBool(key string, value bool) string {
	if value {
		return "-D" + key + ":BOOL=ON"
	}
	return "-D" + key + ":BOOL=OFF"
}

// Args generates the configure arguments of in.
func Args(in *buildsys.Input) ([]string, error) {
	return buildsys.Generate(New(), in)
}

// ConfigureArgs returns the full argument vector of "cmake" for a
// configure step of sourceDir into buildDir, installing into prefix.
func ConfigureArgs(sourceDir, buildDir, prefix string, args []string) []string {
	if buildDir == "" {
		buildDir = "build"
	}
	out := make([]string, 0, 5+len(args))
	out = append(out, "-S", sourceDir, "-B", buildDir)
	if prefix != "" {
		out = append(out, Define("CMAKE_INSTALL_PREFIX", prefix))
	}
	return append(out, args...)
}
