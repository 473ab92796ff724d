package strutil

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "empty", value: "", want: true},
		{name: "ascii", value: "abc", want: false},
		{name: "single space", value: " ", want: false},
		{name: "newline", value: "\n", want: false},
		{name: "multibyte", value: "é", want: false},
		{name: "nul byte", value: "\x00", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.value); got != tt.want {
				t.Fatalf("IsEmpty(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
