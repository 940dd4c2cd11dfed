package atom

import "testing"

func TestRationalReduce(t *testing.T) {
	cases := []struct {
		p, q    int64
		wantInt bool
		wantI   Integer
		wantRat Rational
		wantErr bool
	}{
		{p: 4, q: 2, wantInt: true, wantI: 2},
		{p: -4, q: 2, wantInt: true, wantI: -2},
		{p: 3, q: 9, wantRat: Rational{P: 1, Q: 3}},
		{p: -3, q: 9, wantRat: Rational{P: -1, Q: 3}},
		{p: 3, q: -9, wantRat: Rational{P: -1, Q: 3}},
		{p: 0, q: 5, wantInt: true, wantI: 0},
		{p: 1, q: 0, wantErr: true},
	}
	for _, c := range cases {
		r, n, isInt, err := Rational{P: c.p, Q: c.q}.Reduce()
		if c.wantErr {
			if err == nil {
				t.Errorf("%d/%d: expected error", c.p, c.q)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%d/%d: unexpected error: %v", c.p, c.q, err)
		}
		if isInt != c.wantInt {
			t.Fatalf("%d/%d: isInt=%v want=%v", c.p, c.q, isInt, c.wantInt)
		}
		if isInt {
			if n != c.wantI {
				t.Errorf("%d/%d: got=%d want=%d", c.p, c.q, n, c.wantI)
			}
			continue
		}
		if !r.Equal(c.wantRat) {
			t.Errorf("%d/%d: got=%v want=%v", c.p, c.q, r, c.wantRat)
		}
	}
}

func TestRationalLess(t *testing.T) {
	if !(Rational{P: 1, Q: 2}).Less(Rational{P: 2, Q: 3}) {
		t.Errorf("expected 1/2 < 2/3")
	}
	if (Rational{P: 2, Q: 3}).Less(Rational{P: 1, Q: 2}) {
		t.Errorf("expected 2/3 not < 1/2")
	}
}

func TestRationalFromDecimal(t *testing.T) {
	cases := []struct {
		in      string
		wantP   int64
		wantQ   int64
	}{
		{"3.14", 314, 100},
		{"0.5", 5, 10},
		{"-1.25", -125, 100},
		{"2", 2, 1},
	}
	for _, c := range cases {
		r, err := RationalFromDecimal(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if r.P != c.wantP || r.Q != c.wantQ {
			t.Errorf("%q: got=%d/%d want=%d/%d", c.in, r.P, r.Q, c.wantP, c.wantQ)
		}
	}
}

func TestValidName(t *testing.T) {
	if !ValidName("x") || !ValidName("abc") {
		t.Errorf("expected lowercase names to be valid")
	}
	if ValidName("") || ValidName("A") || ValidName("a1") || ValidName("a_b") {
		t.Errorf("expected invalid names to be rejected")
	}
}
