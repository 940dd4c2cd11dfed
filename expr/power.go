package expr

import "context"

// Power is base^exp.
type Power struct {
	Base, Exp Expression
}

func (p Power) String() string {
	return "(" + p.Base.String() + ")^(" + p.Exp.String() + ")"
}

func (p Power) Simplify(ctx context.Context) (Expression, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := p.Base.Simplify(ctx)
	if err != nil {
		return nil, err
	}
	w, err := p.Exp.Simplify(ctx)
	if err != nil {
		return nil, err
	}
	return simplifyPower(ctx, v, w)
}

// simplifyPower dispatches on the shapes of an already-simplified
// base and exponent; the first matching case wins.
func simplifyPower(ctx context.Context, v, w Expression) (Expression, error) {
	if vi, ok := v.(Integer); ok {
		if wr, ok := w.(Rational); ok {
			return radicalExtraction(ctx, int64(vi), wr.P, wr.Q)
		}
		return integerBaseRule(ctx, int64(vi), w)
	}
	if wn, ok := w.(Integer); ok {
		return integerExponentRule(ctx, v, wn)
	}
	if vr, ok := v.(Rational); ok {
		return distributeRationalBase(ctx, vr, w)
	}
	return Power{Base: v, Exp: w}, nil
}

// integerBaseRule handles an integer base with a non-rational
// exponent. Only n=1 collapses for an arbitrary exponent; n=-1 is
// deliberately not shortcut (that would be wrong for non-integer
// exponents) and falls through to the generic cases below.
func integerBaseRule(ctx context.Context, n int64, w Expression) (Expression, error) {
	if n == 0 {
		if wn, ok := w.(Integer); ok {
			if wn > 0 {
				return Integer(0), nil
			}
			return nil, ErrIndeterminate
		}
		return nil, ErrIndeterminate
	}
	if n == 1 {
		return Integer(1), nil
	}
	if wn, ok := w.(Integer); ok {
		if wn < 0 {
			return foldIntegerPower(n, int64(wn))
		}
		return Integer(ipow(n, int64(wn))), nil
	}
	return Power{Base: Integer(n), Exp: w}, nil
}

// integerExponentRule handles v^n for an Integer n and a base v that
// is not itself an Integer (integerBaseRule covers that case).
func integerExponentRule(ctx context.Context, v Expression, n Integer) (Expression, error) {
	if n == 0 {
		return Integer(1), nil
	}
	if n == 1 {
		return v, nil
	}
	switch vv := v.(type) {
	case Rational:
		red, err := foldIntegerPower(vv.P, int64(n))
		if err != nil {
			return nil, err
		}
		redDen, err := foldIntegerPower(vv.Q, int64(n))
		if err != nil {
			return nil, err
		}
		return mulNumeric(red, invertNumeric(redDen))
	case Power:
		e, err := Product{Factors: []Expression{vv.Exp, Integer(n)}}.Simplify(ctx)
		if err != nil {
			return nil, err
		}
		if ei, ok := e.(Integer); ok {
			return simplifyPower(ctx, vv.Base, ei)
		}
		return Power{Base: vv.Base, Exp: e}, nil
	case Product:
		newFactors := make([]Expression, len(vv.Factors))
		for i, f := range vv.Factors {
			nf, err := Power{Base: f, Exp: Integer(n)}.Simplify(ctx)
			if err != nil {
				return nil, err
			}
			newFactors[i] = nf
		}
		return Product{Factors: newFactors}.Simplify(ctx)
	default:
		return Power{Base: v, Exp: Integer(n)}, nil
	}
}

// invertNumeric returns 1/e for a numeric e, unreduced; the caller
// folds it via mulNumeric.
func invertNumeric(e Expression) Expression {
	n, _ := numericValue(e)
	return Rational{P: n.Q, Q: n.P}
}

// distributeRationalBase rewrites (a/b)^w as a^w * b^(-w); both
// subproblems have integer bases, so the recursion terminates.
func distributeRationalBase(ctx context.Context, base Rational, w Expression) (Expression, error) {
	negW := Expression(Product{Factors: []Expression{Integer(-1), w}})
	left, err := Power{Base: Integer(base.P), Exp: w}.Simplify(ctx)
	if err != nil {
		return nil, err
	}
	right, err := Power{Base: Integer(base.Q), Exp: negW}.Simplify(ctx)
	if err != nil {
		return nil, err
	}
	return Product{Factors: []Expression{left, right}}.Simplify(ctx)
}

// radicalExtraction evaluates Integer(n)^Rational(p/q): it factors
// the largest perfect q-th power out of |n| and returns
// outside^p * inside^(1/q). The exponent left on the radicand is 1/q,
// not p/q: applying p to the already-extracted radicand and
// re-simplifying makes no progress when p is negative and the
// radicand is not +/-1 (e.g. (-54)^(-2/3)).
func radicalExtraction(ctx context.Context, n, p, q int64) (Expression, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if q%2 == 0 && n < 0 {
		return nil, ErrEvenRootOfNegative
	}
	if n == 0 {
		if p > 0 {
			return Integer(0), nil
		}
		return nil, ErrIndeterminate
	}
	mag := abs64(n)
	outside := int64(1)
	for d := int64(2); ipow(d, q) <= mag; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dq := ipow(d, q)
		if mag%dq == 0 {
			mag /= dq
			outside *= d
		} else {
			d++
		}
	}
	insideSigned := mag
	if n < 0 {
		insideSigned = -mag
	}

	outsidePart, err := foldIntegerPower(outside, p)
	if err != nil {
		return nil, err
	}

	var radicalPart Expression
	if insideSigned == 1 {
		radicalPart = Integer(1)
	} else {
		radicalPart = Power{Base: Integer(insideSigned), Exp: Rational{P: 1, Q: q}}
	}

	return combineNumericSymbolic(outsidePart, radicalPart), nil
}

// combineNumericSymbolic multiplies a numeric value with a (possibly
// numeric, when the radical collapsed entirely) symbolic remainder,
// dropping either side when it is the multiplicative identity.
func combineNumericSymbolic(a, b Expression) Expression {
	if isOne(a) {
		return b
	}
	if isOne(b) {
		return a
	}
	return Product{Factors: []Expression{a, b}}
}
