// Package parse implements the recursive-descent parser for the
// surface arithmetic language, turning a lex.Token stream into an
// unsimplified expr.Expression tree. Subtraction, division and unary
// negation are desugared at parse time into Sum/Product/Power nodes
// so the simplifier never needs to know about them.
package parse

import (
	"fmt"

	"zappem.net/pub/math/canon/atom"
	"zappem.net/pub/math/canon/expr"
	"zappem.net/pub/math/canon/lex"
)

// Parse lexes and parses a single line into an unsimplified
// expr.Expression. It is an error for input to remain after a
// complete expression has been parsed, and an error for the input to
// be empty.
func Parse(line string) (expr.Expression, error) {
	tokens, err := lex.Tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("parse error: empty expression")
	}
	p := &parser{tokens: tokens}
	result, err := p.addition()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("parse error: unexpected input starting at %q", p.tokens[p.pos].Text)
	}
	return result, nil
}

type parser struct {
	tokens []lex.Token
	pos    int
}

func (p *parser) peek() (lex.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lex.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() {
	p.pos++
}

// addition := multiplication ((+|-) multiplication)*
// Subtraction desugars to adding the negation: a - b -> a + (-1)*b.
func (p *parser) addition() (expr.Expression, error) {
	first, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	terms := []expr.Expression{first}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != lex.Plus && tok.Kind != lex.Minus) {
			break
		}
		p.advance()
		next, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lex.Minus {
			next = expr.Product{Factors: []expr.Expression{expr.Integer(-1), next}}
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return expr.Sum{Terms: terms}, nil
}

// multiplication := exponentiation ((* | /) exponentiation)*
// Division desugars to multiplying by the inverse: a / b -> a * b^(-1).
func (p *parser) multiplication() (expr.Expression, error) {
	first, err := p.exponentiation()
	if err != nil {
		return nil, err
	}
	factors := []expr.Expression{first}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != lex.Star && tok.Kind != lex.Slash) {
			break
		}
		p.advance()
		next, err := p.exponentiation()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lex.Slash {
			next = expr.Power{Base: next, Exp: expr.Integer(-1)}
		}
		factors = append(factors, next)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return expr.Product{Factors: factors}, nil
}

// exponentiation := unary (^ unary)*, right-associative: the operands
// of a '^' chain are collected and folded from the right, giving
// a ^ b ^ c the reading a ^ (b ^ c). A parenthesised Power operand
// keeps its own grouping.
func (p *parser) exponentiation() (expr.Expression, error) {
	first, err := p.unary()
	if err != nil {
		return nil, err
	}
	operands := []expr.Expression{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != lex.Caret {
			break
		}
		p.advance()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		operands = append(operands, rhs)
	}
	result := operands[len(operands)-1]
	for i := len(operands) - 2; i >= 0; i-- {
		result = expr.Power{Base: operands[i], Exp: result}
	}
	return result, nil
}

// unary := (-)? basic
func (p *parser) unary() (expr.Expression, error) {
	if tok, ok := p.peek(); ok && tok.Kind == lex.Minus {
		p.advance()
		operand, err := p.basic()
		if err != nil {
			return nil, err
		}
		return expr.Product{Factors: []expr.Expression{expr.Integer(-1), operand}}, nil
	}
	return p.basic()
}

// basic := Integer | Decimal | Identifier [basic]? | '|' addition '|'
//        | '(' addition ')' | '[' addition ']'
// An identifier immediately followed by a valid basic is a function
// call; otherwise it's a variable reference. '(' and '[' are
// interchangeable grouping; '|...|' desugars to abs(...).
func (p *parser) basic() (expr.Expression, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("parse error: unexpected end of input")
	}
	switch tok.Kind {
	case lex.Integer:
		p.advance()
		n, err := parseInt(tok.Text)
		if err != nil {
			return nil, err
		}
		return expr.Integer(n), nil

	case lex.Decimal:
		p.advance()
		r, err := atom.RationalFromDecimal(tok.Text)
		if err != nil {
			return nil, err
		}
		return expr.Rational{P: r.P, Q: r.Q}, nil

	case lex.Identifier:
		p.advance()
		mark := p.pos
		if arg, err := p.basic(); err == nil {
			return expr.Function{Name: tok.Text, Arg: arg}, nil
		}
		p.pos = mark
		return expr.Variable(tok.Text), nil

	case lex.Pipe:
		p.advance()
		inner, err := p.addition()
		if err != nil {
			return nil, err
		}
		if tok, ok := p.peek(); !ok || tok.Kind != lex.Pipe {
			return nil, fmt.Errorf("parse error: missing closing %q", "|")
		}
		p.advance()
		return expr.Function{Name: "abs", Arg: inner}, nil

	case lex.LeftParen, lex.LeftBracket:
		closing, closingText := lex.RightParen, ")"
		if tok.Kind == lex.LeftBracket {
			closing, closingText = lex.RightBracket, "]"
		}
		p.advance()
		inner, err := p.addition()
		if err != nil {
			return nil, err
		}
		if tok, ok := p.peek(); !ok || tok.Kind != closing {
			return nil, fmt.Errorf("parse error: missing closing %q", closingText)
		}
		p.advance()
		return inner, nil

	default:
		return nil, fmt.Errorf("parse error: unexpected token %q", tok.Text)
	}
}

func parseInt(text string) (int64, error) {
	var n int64
	for _, r := range text {
		n = n*10 + int64(r-'0')
	}
	return n, nil
}
