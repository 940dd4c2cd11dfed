package expr

// Substitute returns a copy of e with every occurrence of the
// Variable named name replaced by replacement. It operates on raw
// (possibly unsimplified) trees, so a caller can substitute before
// calling Simplify; recursion walks every compound's children.
func Substitute(e Expression, name string, replacement Expression) Expression {
	switch v := e.(type) {
	case Variable:
		if string(v) == name {
			return replacement
		}
		return v
	case Power:
		return Power{Base: Substitute(v.Base, name, replacement), Exp: Substitute(v.Exp, name, replacement)}
	case Product:
		return Product{Factors: substituteAll(v.Factors, name, replacement)}
	case Sum:
		return Sum{Terms: substituteAll(v.Terms, name, replacement)}
	case Function:
		return Function{Name: v.Name, Arg: Substitute(v.Arg, name, replacement)}
	default:
		return e
	}
}

func substituteAll(es []Expression, name string, replacement Expression) []Expression {
	out := make([]Expression, len(es))
	for i, e := range es {
		out[i] = Substitute(e, name, replacement)
	}
	return out
}
