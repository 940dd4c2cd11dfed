// Package atom implements the leaf values of a symbolic expression
// tree: exact integer and rational arithmetic over machine words, and
// variable names. There is no arbitrary-precision support here by
// design: overflow is unchecked and is an acknowledged limitation.
package atom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned when a Rational is constructed with a
// zero denominator.
var ErrDivisionByZero = errors.New("division by zero")

// Integer is a signed machine-word integer leaf value.
type Integer int64

// Rational is a numerator/denominator pair. Once Reduce has been
// called successfully, q > 0, gcd(|p|, q) == 1 and q does not divide
// p (otherwise the value is integral and collapses to an Integer).
type Rational struct {
	P, Q int64
}

// Reduce puts r in lowest terms with a positive denominator. It
// reports (n, true) when the value is integral, and otherwise returns
// the reduced Rational.
func (r Rational) Reduce() (Rational, Integer, bool, error) {
	if r.Q == 0 {
		return Rational{}, 0, false, fmt.Errorf("%d/%d: %w", r.P, r.Q, ErrDivisionByZero)
	}
	p, q := r.P, r.Q
	if q < 0 {
		p, q = -p, -q
	}
	if p == 0 {
		return Rational{}, 0, true, nil
	}
	g := gcd(abs(p), q)
	p, q = p/g, q/g
	if q == 1 {
		return Rational{}, Integer(p), true, nil
	}
	return Rational{P: p, Q: q}, 0, false, nil
}

// Less orders two rationals by cross-multiplication, valid because
// denominators are always positive after Reduce.
func (r Rational) Less(s Rational) bool {
	return r.P*s.Q < s.P*r.Q
}

// Equal reports whether r and s have the same numerator and
// denominator; for reduced rationals this is equality of value.
func (r Rational) Equal(s Rational) bool {
	return r.P == s.P && r.Q == s.Q
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.P, r.Q)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// RationalFromDecimal converts a decimal literal such as "3.14" into
// an unreduced Rational by scaling numerator and denominator by ten
// for each fractional digit. Literals with more digits than an int64
// can carry are rejected.
func RationalFromDecimal(s string) (Rational, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	digits := whole
	den := int64(1)
	if hasFrac {
		if len(frac) > 18 {
			return Rational{}, fmt.Errorf("invalid decimal %q: too many fractional digits", s)
		}
		digits += frac
		for range frac {
			den *= 10
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if neg {
		n = -n
	}
	return Rational{P: n, Q: den}, nil
}

// ValidName reports whether name is a legal variable/function
// identifier (lowercase letters only, length >= 1).
func ValidName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for _, r := range name {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
