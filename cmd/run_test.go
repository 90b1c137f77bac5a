package cmd

import (
	"errors"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestParseScale(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"integer", "3\n", 3},
		{"integer with whitespace", "  12  \n", 12},
		{"integer without newline", "5", 5},
		{"non-integer", "abc\n", 1},
		{"float", "2.5\n", 1},
		{"empty line", "\n", 1},
		{"empty input", "", 1},
		{"negative passes through", "-4\n", -4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseScale(strings.NewReader(tc.input)); got != tc.want {
				t.Errorf("parseScale(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseScaleReadFailure(t *testing.T) {
	if got := parseScale(failingReader{}); got != 1 {
		t.Errorf("parseScale on a failing reader = %d, want 1", got)
	}
}
