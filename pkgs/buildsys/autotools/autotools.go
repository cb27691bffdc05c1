package autotools

import (
	"github.com/goplus/vspec/pkgs/buildsys"
)

// AutoTools spells configure arguments as ./configure options.
type AutoTools struct{}

var _ buildsys.BuildSystem = (*AutoTools)(nil)

// New creates a new AutoTools build system.
func New() *AutoTools {
	return &AutoTools{}
}

func (a *AutoTools) Name() string {
	return "autotools"
}

func (a *AutoTools) DefaultNames() buildsys.Names {
	return buildsys.Names{RPath: "LDFLAGS", LibDir: "lib"}
}

// RPath renders a linker variable assignment, LDFLAGS=-Wl,-rpath,DIR.
func (a *AutoTools) RPath(key, libDir string) string {
	return key + "=-Wl,-rpath," + libDir
}

// Toggle renders --enable-FLAG or --disable-FLAG.
func (a *AutoTools) Toggle(flag string, on bool) string {
	if on {
		return "--enable-" + flag
	}
	return "--disable-" + flag
}

// Location renders --with-FLAG=PATH.
func (a *AutoTools) Location(flag, path string) string {
	return "--with-" + flag + "=" + path
}

// Args generates the configure arguments of in.
func Args(in *buildsys.Input) ([]string, error) {
	return buildsys.Generate(New(), in)
}

// ConfigureArgs returns the argument vector of ./configure installing
// into prefix.
func ConfigureArgs(prefix string, args []string) []string {
	out := make([]string, 0, 1+len(args))
	if prefix != "" {
		out = append(out, "--prefix="+prefix)
	}
	return append(out, args...)
}
