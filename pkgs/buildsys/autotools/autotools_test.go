package autotools

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goplus/vspec/internal/testutil"
	"github.com/goplus/vspec/pkgs/buildsys"
	"github.com/goplus/vspec/pkgs/variant"
)

func TestArgs(t *testing.T) {
	in := &buildsys.Input{
		Formula:    testutil.PerfDump(),
		Assignment: variant.Assignment{"mpi": false, "hdf5": true},
		Paths:      testutil.PerfDumpPaths(),
		Prefix:     "/usr/local",
		Names:      testutil.AutoToolsNames(),
	}
	got, err := Args(in)
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	want := []string{
		"LDFLAGS=-Wl,-rpath,/usr/local/lib",
		"--disable-mpi",
		"--enable-hdf5",
		"--with-papi=/opt/papi",
		"--with-python=/opt/python",
		"--with-hdf5=/opt/hdf5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigureArgs(t *testing.T) {
	got := ConfigureArgs("/usr/local", []string{"--enable-mpi"})
	want := []string{"--prefix=/usr/local", "--enable-mpi"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ConfigureArgs mismatch (-want +got):\n%s", diff)
	}
	if got := ConfigureArgs("", nil); len(got) != 0 {
		t.Fatalf("ConfigureArgs(\"\", nil) = %q, want empty", got)
	}
}
