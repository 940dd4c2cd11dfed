package parse

import (
	"context"
	"testing"
)

func mustSimplify(t *testing.T, line string) string {
	t.Helper()
	tree, err := Parse(line)
	if err != nil {
		t.Fatalf("%q: parse error: %v", line, err)
	}
	s, err := tree.Simplify(context.Background())
	if err != nil {
		t.Fatalf("%q: simplify error: %v", line, err)
	}
	return s.String()
}

func TestParseArithmetic(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1 + 1", "2"},
		{"2 * 3 + 4", "10"},
		{"2 + 3 * 4", "14"},
		{"10 - 3", "7"},
		{"1 / 2", "1/2"},
		{"2 - 5", "-3"},
		{"(2 + 3) * 4", "20"},
		{"[2 + 3] * 4", "20"},
		{"|0 - 5|", "abs(-5)"},
	}
	for _, c := range cases {
		if got := mustSimplify(t, c.in); got != c.want {
			t.Errorf("%q: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestParseRightAssociativeExponentiation(t *testing.T) {
	// 2 ^ 3 ^ 2 = 2 ^ (3 ^ 2) = 2 ^ 9 = 512, not (2^3)^2 = 64.
	if got, want := mustSimplify(t, "2 ^ 3 ^ 2"), "512"; got != want {
		t.Errorf("2^3^2 = %q, want %q", got, want)
	}
}

func TestParseFunctionsAndVariables(t *testing.T) {
	cases := []struct{ in, want string }{
		{"sqrt(12)", "(2 * sqrt(3))"},
		{"log(1000)", "3"},
		{"ln(e^3)", "3"},
		{"x + x", "(2 * x)"},
		{"x * y", "(x * y)"},
	}
	for _, c := range cases {
		if got := mustSimplify(t, c.in); got != c.want {
			t.Errorf("%q: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	if got, want := mustSimplify(t, "0.5 * 2"), "1"; got != want {
		t.Errorf("0.5*2 = %q want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{"", "1 +", "1 @ 2", "1 / 0", "(1 + 2", "[1 + 2", "|x"}
	for _, in := range cases {
		tree, err := Parse(in)
		if err != nil {
			continue
		}
		if _, err := tree.Simplify(context.Background()); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}
