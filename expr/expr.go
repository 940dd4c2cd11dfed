// Package expr implements the symbolic expression tree and its
// automatic simplification: the tagged union of Integer, Rational,
// Variable, Power, Product, Sum and Function, the total order over
// them, and the recursive term-rewriting rules that reduce a raw tree
// to canonical form.
package expr

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"zappem.net/pub/math/canon/atom"
)

// Undefined mathematical forms. Every rule that receives one of these
// from a recursive child call propagates it unchanged.
var (
	ErrDivisionByZero       = atom.ErrDivisionByZero
	ErrIndeterminate        = errors.New("indeterminate form: 0^0 or 0^negative")
	ErrEvenRootOfNegative   = errors.New("even root of a negative number")
	ErrNonPositiveLogarithm = errors.New("logarithm of a non-positive number")
)

// Expression is a node of a symbolic expression tree. Simplify
// recursively rewrites the node (and, implicitly, its children) into
// canonical form; it consumes its receiver and returns either a fresh
// simplified Expression or an error describing an undefined form.
type Expression interface {
	Simplify(ctx context.Context) (Expression, error)
	String() string
}

// Integer is a signed machine-word integer leaf.
type Integer int64

func (n Integer) Simplify(context.Context) (Expression, error) { return n, nil }
func (n Integer) String() string                               { return strconv.FormatInt(int64(n), 10) }

// Rational is a numerator/denominator pair. It need not be reduced
// when constructed by a parser; Simplify puts it in lowest terms with
// a positive denominator, collapsing to an Integer when the division
// is exact.
type Rational struct {
	P, Q int64
}

func (r Rational) Simplify(context.Context) (Expression, error) {
	red, n, isInt, err := atom.Rational{P: r.P, Q: r.Q}.Reduce()
	if err != nil {
		return nil, err
	}
	if isInt {
		return Integer(n), nil
	}
	return Rational{P: red.P, Q: red.Q}, nil
}

func (r Rational) String() string { return fmt.Sprintf("%d/%d", r.P, r.Q) }

// Variable is an identifier leaf.
type Variable string

func (v Variable) Simplify(context.Context) (Expression, error) { return v, nil }
func (v Variable) String() string                               { return string(v) }

// numericValue reports whether e is Integer or Rational, returning its
// value as an atom.Rational (with Q=1 for an Integer) for uniform
// numeric arithmetic.
func numericValue(e Expression) (atom.Rational, bool) {
	switch v := e.(type) {
	case Integer:
		return atom.Rational{P: int64(v), Q: 1}, true
	case Rational:
		return atom.Rational{P: v.P, Q: v.Q}, true
	}
	return atom.Rational{}, false
}

func isNumeric(e Expression) bool {
	_, ok := numericValue(e)
	return ok
}

func isZero(e Expression) bool {
	n, ok := e.(Integer)
	return ok && n == 0
}

func isOne(e Expression) bool {
	n, ok := e.(Integer)
	return ok && n == 1
}

// addNumeric adds two numeric Expressions and returns the simplified
// (possibly collapsed-to-Integer) sum.
func addNumeric(a, b Expression) (Expression, error) {
	an, _ := numericValue(a)
	bn, _ := numericValue(b)
	sum := atom.Rational{P: an.P*bn.Q + bn.P*an.Q, Q: an.Q * bn.Q}
	red, n, isInt, err := sum.Reduce()
	if err != nil {
		return nil, err
	}
	if isInt {
		return Integer(n), nil
	}
	return Rational{P: red.P, Q: red.Q}, nil
}

// mulNumeric multiplies two numeric Expressions and returns the
// simplified product.
func mulNumeric(a, b Expression) (Expression, error) {
	an, _ := numericValue(a)
	bn, _ := numericValue(b)
	prod := atom.Rational{P: an.P * bn.P, Q: an.Q * bn.Q}
	red, n, isInt, err := prod.Reduce()
	if err != nil {
		return nil, err
	}
	if isInt {
		return Integer(n), nil
	}
	return Rational{P: red.P, Q: red.Q}, nil
}

// baseExpOf views u as a Power: a genuine Power yields its own
// (base, exponent); anything else is treated as if it were raised to
// the first power.
func baseExpOf(u Expression) (Expression, Expression) {
	if p, ok := u.(Power); ok {
		return p.Base, p.Exp
	}
	return u, Integer(1)
}

// splitCoeffTerm splits a simplified Product into its leading numeric
// coefficient and the remaining (non-numeric) term factors; a Product
// without a numeric leading factor has coefficient 1 and all of its
// factors as its term. A non-Product expression has coefficient 1 and
// is its own one-element term.
func splitCoeffTerm(u Expression) (coeff Expression, term []Expression) {
	if p, ok := u.(Product); ok {
		if len(p.Factors) > 0 && isNumeric(p.Factors[0]) {
			return p.Factors[0], p.Factors[1:]
		}
		return Integer(1), p.Factors
	}
	return Integer(1), []Expression{u}
}

// Equal reports whether a and b are structurally identical
// expressions. On already-simplified trees this is exactly the
// equality like-factor/like-term detection relies on.
func Equal(a, b Expression) bool {
	switch av := a.(type) {
	case Integer:
		bv, ok := b.(Integer)
		return ok && av == bv
	case Rational:
		bv, ok := b.(Rational)
		return ok && av.P == bv.P && av.Q == bv.Q
	case Variable:
		bv, ok := b.(Variable)
		return ok && av == bv
	case Power:
		bv, ok := b.(Power)
		return ok && Equal(av.Base, bv.Base) && Equal(av.Exp, bv.Exp)
	case Product:
		bv, ok := b.(Product)
		return ok && equalSlices(av.Factors, bv.Factors)
	case Sum:
		bv, ok := b.(Sum)
		return ok && equalSlices(av.Terms, bv.Terms)
	case Function:
		bv, ok := b.(Function)
		return ok && av.Name == bv.Name && Equal(av.Arg, bv.Arg)
	}
	return false
}

func equalSlices(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ipow raises base to a non-negative integer exponent. Overflow is
// unchecked; machine-word arithmetic is an acknowledged limitation.
func ipow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// foldIntegerPower evaluates base^exp for an integer exponent of
// either sign, returning an Integer or (for a negative exponent) a
// reduced Rational.
func foldIntegerPower(base, exp int64) (Expression, error) {
	if exp >= 0 {
		return Integer(ipow(base, exp)), nil
	}
	denom := ipow(base, -exp)
	red, n, isInt, err := (atom.Rational{P: 1, Q: denom}).Reduce()
	if err != nil {
		return nil, err
	}
	if isInt {
		return Integer(n), nil
	}
	return Rational{P: red.P, Q: red.Q}, nil
}
