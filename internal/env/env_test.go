package env

import "testing"

func TestGet(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   string
		want  string
	}{
		{"unset", "", "cmake", "cmake"},
		{"blank", "   ", "cmake", "cmake"},
		{"set", "autotools", "cmake", "autotools"},
		{"trimmed", " /opt/x \n", "", "/opt/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(BuildSystem, tt.value)
			if got := Get(BuildSystem, tt.def); got != tt.want {
				t.Errorf("Get(%s) = %q, want %q", BuildSystem, got, tt.want)
			}
		})
	}
}
