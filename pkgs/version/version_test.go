package version

import (
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "2.0", -1},
		{"2.0", "1.0", 1},
		{"1.0", "1.0", 0},

		{"1.2.10", "1.2.9", 1},
		{"1.10", "1.9", 1},
		{"2", "10", -1},

		// Leading zeros
		{"1.01", "1.1", 0},
		{"001", "01", 0},

		{"", "", 0},
		{"1", "", 1},
		{"", "1", -1},

		// Tilde sorts before everything
		{"1.0~rc1", "1.0", -1},
		{"1.0~alpha", "1.0~beta", -1},
		{"~", "", -1},

		{"1a", "1b", -1},
		{"1.0a", "1.0", 1},
		{"1.0.0-rc10", "1.0.0-rc9", 1},
		{"2.6.32", "2.6.32.1", -1},
		{"3.0", "2.6.39", 1},
		{"v2.0", "v10.0", -1},
		{"1-2", "1.2", -1},
		{"1_2", "1.2", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		c    byte
		want int
	}{
		{'0', 0},
		{'9', 0},
		{'a', int('a')},
		{'Z', int('Z')},
		{'~', -1},
		{0, 0},
		{'.', int('.') + 256},
		{'_', int('_') + 256},
	}
	for _, tt := range tests {
		if got := weight(tt.c); got != tt.want {
			t.Errorf("weight(%q) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestConstraintAllows(t *testing.T) {
	tests := []struct {
		constraint string
		allowed    []string
		rejected   []string
	}{
		{"", []string{"0.1", "99"}, nil},
		{":", []string{"0.1", "99"}, nil},
		{"3:", []string{"3", "3.11", "4.0"}, []string{"2.7.18"}},
		{"3.15:", []string{"3.15", "3.27.1"}, []string{"3.9", "2.8"}},
		{":2", []string{"1.9", "2", "2.7"}, []string{"3.0"}},
		{"1.0:1.4", []string{"1.0", "1.4.2"}, []string{"0.9", "1.5"}},
		{"1.2", []string{"1.2", "1.2.5"}, []string{"1.1", "1.20", "1.3"}},
		{"1.0, 2.0:", []string{"1.0.3", "2.5"}, []string{"1.5"}},
	}
	for _, tt := range tests {
		c, err := ParseConstraint(tt.constraint)
		if err != nil {
			t.Fatalf("ParseConstraint(%q): %v", tt.constraint, err)
		}
		for _, v := range tt.allowed {
			if !c.Allows(v) {
				t.Errorf("%q.Allows(%q) = false, want true", tt.constraint, v)
			}
		}
		for _, v := range tt.rejected {
			if c.Allows(v) {
				t.Errorf("%q.Allows(%q) = true, want false", tt.constraint, v)
			}
		}
	}
}

func TestConstraintIsAny(t *testing.T) {
	if !MustParseConstraint("").IsAny() || !MustParseConstraint(":").IsAny() {
		t.Fatal("empty and ':' constraints must allow any version")
	}
	if MustParseConstraint("3:").IsAny() {
		t.Fatal(`"3:" must not allow any version`)
	}
	if got := MustParseConstraint(" 3.15: ").String(); got != "3.15:" {
		t.Fatalf("String() = %q, want %q", got, "3.15:")
	}
}

func TestParseConstraintErrors(t *testing.T) {
	for _, s := range []string{"1.0,,2", "1:2:3", "2.0:1.0", "@3", "1 2"} {
		_, err := ParseConstraint(s)
		var syntax *SyntaxError
		if !errors.As(err, &syntax) {
			t.Errorf("ParseConstraint(%q) error = %v, want *SyntaxError", s, err)
		}
	}
	if _, err := ParseConstraint("1.2.3:1.2"); err != nil {
		t.Errorf("ParseConstraint(%q): %v", "1.2.3:1.2", err)
	}
}
