package expr

import (
	"context"
	"sort"
	"strings"
)

// Product is an ordered, flattened sequence of factors. An empty
// Product is the multiplicative identity and never survives Simplify.
type Product struct {
	Factors []Expression
}

func (p Product) String() string {
	parts := make([]string, len(p.Factors))
	for i, f := range p.Factors {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, " * ") + ")"
}

// Simplify simplifies every factor, sorts them under the total order,
// collapses to 0 if any factor is 0, then combines like-based factors
// pairwise.
func (p Product) Simplify(ctx context.Context) (Expression, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	factors := make([]Expression, len(p.Factors))
	for i, f := range p.Factors {
		sf, err := f.Simplify(ctx)
		if err != nil {
			return nil, err
		}
		factors[i] = sf
	}
	for _, f := range factors {
		if isZero(f) {
			return Integer(0), nil
		}
	}
	sort.Slice(factors, func(i, j int) bool { return compareExpr(factors[i], factors[j]) < 0 })

	switch len(factors) {
	case 0:
		return Integer(1), nil
	case 1:
		return factors[0], nil
	case 2:
		return productTwoArgs(ctx, factors[0], factors[1])
	default:
		rest, err := Product{Factors: factors[1:]}.Simplify(ctx)
		if err != nil {
			return nil, err
		}
		return productMoreArgs(ctx, factors[0], rest)
	}
}

// productTwoArgs combines two simplified factors; the first matching
// rule wins. Factors with a structurally equal base combine by adding
// exponents.
func productTwoArgs(ctx context.Context, u1, u2 Expression) (Expression, error) {
	if isOne(u1) {
		return u2, nil
	}
	if isOne(u2) {
		return u1, nil
	}
	if isNumeric(u1) && isNumeric(u2) {
		return mulNumeric(u1, u2)
	}

	b1, e1 := baseExpOf(u1)
	b2, e2 := baseExpOf(u2)
	if Equal(b1, b2) {
		newExp, err := Sum{Terms: []Expression{e1, e2}}.Simplify(ctx)
		if err != nil {
			return nil, err
		}
		return Power{Base: b1, Exp: newExp}.Simplify(ctx)
	}

	p1, ok1 := u1.(Product)
	p2, ok2 := u2.(Product)
	switch {
	case ok1 && ok2:
		merged, err := mergeProducts(ctx, p1.Factors, p2.Factors)
		if err != nil {
			return nil, err
		}
		return finishFactors(merged), nil
	case ok1:
		merged, err := mergeProducts(ctx, p1.Factors, []Expression{u2})
		if err != nil {
			return nil, err
		}
		return finishFactors(merged), nil
	case ok2:
		merged, err := mergeProducts(ctx, []Expression{u1}, p2.Factors)
		if err != nil {
			return nil, err
		}
		return finishFactors(merged), nil
	}

	if compareExpr(u2, u1) < 0 {
		return Product{Factors: []Expression{u2, u1}}, nil
	}
	return Product{Factors: []Expression{u1, u2}}, nil
}

// productMoreArgs merges u0 into rest, which is already a fully
// simplified Product (or a collapsed Integer/single factor), the same
// way two arguments combine.
func productMoreArgs(ctx context.Context, u0, rest Expression) (Expression, error) {
	return productTwoArgs(ctx, u0, rest)
}

// mergeProducts is a sorted merge of two already-simplified,
// already-sorted factor lists that combines like factors as they
// collide. It pops from the end of each list (the largest remaining
// elements) so the decision of what's globally largest is made
// exactly once per step.
func mergeProducts(ctx context.Context, p, q []Expression) ([]Expression, error) {
	// The exhausted-side base cases copy: later appends grow the
	// returned slice, and returning a live sub-slice of an existing
	// Product's factor array would let those appends clobber it.
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

	h, err := productTwoArgs(ctx, p1, q1)
	if err != nil {
		return nil, err
	}

	if isOne(h) {
		return mergeProducts(ctx, pRest, qRest)
	}
	if hp, ok := h.(Product); ok && len(hp.Factors) == 2 &&
		Equal(hp.Factors[0], p1) && Equal(hp.Factors[1], q1) {
		merged, err := mergeProducts(ctx, p, qRest)
		if err != nil {
			return nil, err
		}
		return append(merged, q1), nil
	}
	if hp, ok := h.(Product); ok && len(hp.Factors) == 2 &&
		Equal(hp.Factors[0], q1) && Equal(hp.Factors[1], p1) {
		merged, err := mergeProducts(ctx, pRest, q)
		if err != nil {
			return nil, err
		}
		return append(merged, p1), nil
	}
	merged, err := mergeProducts(ctx, pRest, qRest)
	if err != nil {
		return nil, err
	}
	return append(merged, h), nil
}

// finishFactors collapses a merged factor list: empty is the
// identity, a singleton is its sole factor, otherwise a Product.
func finishFactors(factors []Expression) Expression {
	switch len(factors) {
	case 0:
		return Integer(1)
	case 1:
		return factors[0]
	default:
		return Product{Factors: factors}
	}
}
