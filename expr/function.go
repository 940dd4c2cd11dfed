package expr

import "context"

// Function is a named unary function applied to a single argument.
// sqrt, cbrt, log (base 10) and ln (base e) get dedicated
// simplification rules; any other name is carried through opaquely.
type Function struct {
	Name string
	Arg  Expression
}

func (f Function) String() string {
	return f.Name + "(" + f.Arg.String() + ")"
}

func (f Function) Simplify(ctx context.Context) (Expression, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, err := f.Arg.Simplify(ctx)
	if err != nil {
		return nil, err
	}
	switch f.Name {
	case "sqrt":
		return simplifyRadicalFunction(ctx, "sqrt", u, Rational{P: 1, Q: 2})
	case "cbrt":
		return simplifyRadicalFunction(ctx, "cbrt", u, Rational{P: 1, Q: 3})
	case "log":
		return simplifyLog(ctx, u, false)
	case "ln":
		return simplifyLog(ctx, u, true)
	default:
		return Function{Name: f.Name, Arg: u}, nil
	}
}

// simplifyRadicalFunction is the shared sqrt/cbrt rule: defer to
// Power, then restore the named-radical spelling wherever the 1/q
// exponent survived unreduced. Radical extraction may leave that
// exponent either on the whole result or on the radical factor of its
// numeric-times-radical Product (sqrt(12) simplifies to 2 * 3^(1/2),
// printed as 2 * sqrt(3)); anything else is returned as Power produced
// it.
func simplifyRadicalFunction(ctx context.Context, name string, u Expression, exp Rational) (Expression, error) {
	result, err := Power{Base: u, Exp: exp}.Simplify(ctx)
	if err != nil {
		return nil, err
	}
	return rewrapRadical(result, name, exp), nil
}

func rewrapRadical(result Expression, name string, exp Rational) Expression {
	if p, ok := result.(Power); ok {
		if pe, ok := p.Exp.(Rational); ok && pe.P == exp.P && pe.Q == exp.Q {
			return Function{Name: name, Arg: p.Base}
		}
		return result
	}
	prod, ok := result.(Product)
	if !ok {
		return result
	}
	factors := make([]Expression, len(prod.Factors))
	changed := false
	for i, f := range prod.Factors {
		factors[i] = f
		if p, ok := f.(Power); ok {
			if pe, ok := p.Exp.(Rational); ok && pe.P == exp.P && pe.Q == exp.Q {
				factors[i] = Function{Name: name, Arg: p.Base}
				changed = true
			}
		}
	}
	if !changed {
		return result
	}
	return Product{Factors: factors}
}

// simplifyLog is the shared log/ln rule set. The two functions are
// structurally identical except ln recognizes Variable("e") and
// Integer(1) specially and never checks for perfect powers of its
// base the way log checks for powers of ten.
func simplifyLog(ctx context.Context, u Expression, natural bool) (Expression, error) {
	name := "log"
	if natural {
		name = "ln"
	}

	switch uv := u.(type) {
	case Power:
		prod := Product{Factors: []Expression{uv.Exp, Function{Name: name, Arg: uv.Base}}}
		return prod.Simplify(ctx)

	case Product:
		terms := make([]Expression, len(uv.Factors))
		for i, factor := range uv.Factors {
			terms[i] = Function{Name: name, Arg: factor}
		}
		return Sum{Terms: terms}.Simplify(ctx)

	case Rational:
		diff := Sum{Terms: []Expression{
			Function{Name: name, Arg: Integer(uv.P)},
			Product{Factors: []Expression{Integer(-1), Function{Name: name, Arg: Integer(uv.Q)}}},
		}}
		return diff.Simplify(ctx)

	case Integer:
		if natural && uv == 1 {
			return Integer(0), nil
		}
		if int64(uv) <= 0 {
			return nil, ErrNonPositiveLogarithm
		}
		if !natural {
			if k, ok := powerOfTen(int64(uv)); ok {
				return Integer(k), nil
			}
		}
		return Function{Name: name, Arg: uv}, nil

	case Variable:
		if natural && uv == "e" {
			return Integer(1), nil
		}
		return Function{Name: name, Arg: uv}, nil

	default:
		return Function{Name: name, Arg: u}, nil
	}
}

// powerOfTen reports whether n == 10^k for some k >= 0, and if so, k.
func powerOfTen(n int64) (int64, bool) {
	if n <= 0 {
		return 0, false
	}
	k := int64(0)
	for n != 1 {
		if n%10 != 0 {
			return 0, false
		}
		n /= 10
		k++
	}
	return k, true
}
