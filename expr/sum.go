package expr

import (
	"context"
	"sort"
	"strings"
)

// Sum is an ordered, flattened sequence of terms. An empty Sum is the
// additive identity, Integer(0), and never survives Simplify.
type Sum struct {
	Terms []Expression
}

func (s Sum) String() string {
	parts := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

// Simplify is structurally parallel to Product.Simplify: identity 0,
// no absorbing element, like terms combine by adding coefficients.
func (s Sum) Simplify(ctx context.Context) (Expression, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	terms := make([]Expression, len(s.Terms))
	for i, t := range s.Terms {
		st, err := t.Simplify(ctx)
		if err != nil {
			return nil, err
		}
		terms[i] = st
	}
	sort.Slice(terms, func(i, j int) bool { return compareExpr(terms[i], terms[j]) < 0 })

	switch len(terms) {
	case 0:
		return Integer(0), nil
	case 1:
		return terms[0], nil
	case 2:
		return sumTwoArgs(ctx, terms[0], terms[1])
	default:
		rest, err := Sum{Terms: terms[1:]}.Simplify(ctx)
		if err != nil {
			return nil, err
		}
		return sumMoreArgs(ctx, terms[0], rest)
	}
}

// sumTwoArgs mirrors productTwoArgs with the sum's identity and the
// like-term rule substituted in: terms with a structurally equal term
// part combine by adding coefficients.
func sumTwoArgs(ctx context.Context, u1, u2 Expression) (Expression, error) {
	if isZero(u1) {
		return u2, nil
	}
	if isZero(u2) {
		return u1, nil
	}
	if isNumeric(u1) && isNumeric(u2) {
		return addNumeric(u1, u2)
	}

	c1, t1 := splitCoeffTerm(u1)
	c2, t2 := splitCoeffTerm(u2)
	if equalSlices(t1, t2) {
		newCoeff, err := Sum{Terms: []Expression{c1, c2}}.Simplify(ctx)
		if err != nil {
			return nil, err
		}
		factors := append(append([]Expression{}, t1...), newCoeff)
		return Product{Factors: factors}.Simplify(ctx)
	}

	s1, ok1 := u1.(Sum)
	s2, ok2 := u2.(Sum)
	switch {
	case ok1 && ok2:
		merged, err := mergeSums(ctx, s1.Terms, s2.Terms)
		if err != nil {
			return nil, err
		}
		return finishTerms(merged), nil
	case ok1:
		merged, err := mergeSums(ctx, s1.Terms, []Expression{u2})
		if err != nil {
			return nil, err
		}
		return finishTerms(merged), nil
	case ok2:
		merged, err := mergeSums(ctx, []Expression{u1}, s2.Terms)
		if err != nil {
			return nil, err
		}
		return finishTerms(merged), nil
	}

	if compareExpr(u2, u1) < 0 {
		return Sum{Terms: []Expression{u2, u1}}, nil
	}
	return Sum{Terms: []Expression{u1, u2}}, nil
}

func sumMoreArgs(ctx context.Context, u0, rest Expression) (Expression, error) {
	return sumTwoArgs(ctx, u0, rest)
}

// mergeSums mirrors mergeProducts with cancellation on Integer(0)
// rather than Integer(1).
func mergeSums(ctx context.Context, p, q []Expression) ([]Expression, error) {
	if len(p) == 0 {
		return append([]Expression(nil), q...), nil
	}
	if len(q) == 0 {
		return append([]Expression(nil), p...), nil
	}
	p1 := p[len(p)-1]
	pRest := p[:len(p)-1]
	q1 := q[len(q)-1]
	qRest := q[:len(q)-1]

	h, err := sumTwoArgs(ctx, p1, q1)
	if err != nil {
		return nil, err
	}

	if isZero(h) {
		return mergeSums(ctx, pRest, qRest)
	}
	if hs, ok := h.(Sum); ok && len(hs.Terms) == 2 &&
		Equal(hs.Terms[0], p1) && Equal(hs.Terms[1], q1) {
		merged, err := mergeSums(ctx, p, qRest)
		if err != nil {
			return nil, err
		}
		return append(merged, q1), nil
	}
	if hs, ok := h.(Sum); ok && len(hs.Terms) == 2 &&
		Equal(hs.Terms[0], q1) && Equal(hs.Terms[1], p1) {
		merged, err := mergeSums(ctx, pRest, q)
		if err != nil {
			return nil, err
		}
		return append(merged, p1), nil
	}
	merged, err := mergeSums(ctx, pRest, qRest)
	if err != nil {
		return nil, err
	}
	return append(merged, h), nil
}

func finishTerms(terms []Expression) Expression {
	switch len(terms) {
	case 0:
		return Integer(0)
	case 1:
		return terms[0]
	default:
		return Sum{Terms: terms}
	}
}
