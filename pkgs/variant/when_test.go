package variant

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want When
	}{
		{"", nil},
		{"   ", nil},
		{"+mpi", When{On("mpi")}},
		{"~mpi", When{Off("mpi")}},
		{"+mpi+hdf5", When{On("mpi"), On("hdf5")}},
		{"~mpi+hdf5", When{Off("mpi"), On("hdf5")}},
		{"+mpi ~hdf5", When{On("mpi"), Off("hdf5")}},
		{" +with_x-y2 ", When{On("with_x-y2")}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"mpi", "+", "+mpi~", "+mpi @3"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestWhenString(t *testing.T) {
	w := MustParse("~mpi +hdf5")
	if got := w.String(); got != "~mpi+hdf5" {
		t.Fatalf("String() = %q, want %q", got, "~mpi+hdf5")
	}
	if got := Always.String(); got != "" {
		t.Fatalf("Always.String() = %q, want empty", got)
	}
	if got := All(Off("mpi"), On("hdf5")).String(); got != w.String() {
		t.Fatalf("All(Off, On).String() = %q, want %q", got, w.String())
	}
	if !All().IsAlways() {
		t.Fatal("All() should be Always")
	}
}

func TestEval(t *testing.T) {
	a := Assignment{"mpi": true, "hdf5": false}
	tests := []struct {
		when string
		want bool
	}{
		{"", true},
		{"+mpi", true},
		{"~mpi", false},
		{"+mpi~hdf5", true},
		{"+mpi+hdf5", false},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.when).Eval(a)
		if err != nil {
			t.Fatalf("Eval(%q): %v", tt.when, err)
		}
		if got != tt.want {
			t.Errorf("Eval(%q) = %v, want %v", tt.when, got, tt.want)
		}
	}
}

func TestEvalMissing(t *testing.T) {
	_, err := MustParse("+mpi+hdf5").Eval(Assignment{"mpi": true})
	var missing *MissingValueError
	if !errors.As(err, &missing) {
		t.Fatalf("Eval error = %v, want *MissingValueError", err)
	}
	if missing.Name != "hdf5" {
		t.Fatalf("missing.Name = %q, want %q", missing.Name, "hdf5")
	}
}

func TestEvalShortCircuit(t *testing.T) {
	// hdf5 is absent but never consulted.
	got, err := MustParse("~mpi+hdf5").Eval(Assignment{"mpi": true})
	if err != nil || got {
		t.Fatalf("Eval = %v, %v; want false, nil", got, err)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"+mpi+hdf5", "~mpi+hdf5", false},
		{"+mpi", "+hdf5", true},
		{"", "+mpi", true},
		{"", "", true},
		{"+mpi~mpi", "", false},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := a.Overlaps(b); got != tt.want {
			t.Errorf("%q.Overlaps(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := b.Overlaps(a); got != tt.want {
			t.Errorf("%q.Overlaps(%q) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestAssignmentString(t *testing.T) {
	a := Assignment{"mpi": false, "hdf5": true}
	if got := a.String(); got != "+hdf5~mpi" {
		t.Fatalf("String() = %q, want %q", got, "+hdf5~mpi")
	}
	c := a.Clone()
	c["mpi"] = true
	if a["mpi"] {
		t.Fatal("Clone shares storage with the original")
	}
}
