package log

import "testing"

func TestSourceString(t *testing.T) {
	tests := []struct {
		s    Source
		want string
	}{
		{SourceLibrary, "LIBRARY"},
		{SourceCLI, "CLI"},
		{SourceShell, "SHELL"},
		{Source(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestKindStringAndParse(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindClassification, "CLASSIFICATION"},
		{KindChart, "CHART"},
		{KindError, "ERROR"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
		parsed, ok := ParseKind(tt.want)
		if !ok || parsed != tt.k {
			t.Errorf("ParseKind(%q) = %v, %v", tt.want, parsed, ok)
		}
	}

	if Kind(42).String() != "UNKNOWN" {
		t.Error("unknown kind should stringify as UNKNOWN")
	}
	if _, ok := ParseKind("classification"); ok {
		t.Error("ParseKind should be case-sensitive")
	}
}
