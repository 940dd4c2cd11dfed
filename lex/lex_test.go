package lex

import "testing"

func TestTokenizeBasic(t *testing.T) {
	toks, err := Tokenize("2 * x^3 - 1.5 / y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Integer, Star, Identifier, Caret, Integer, Minus, Decimal, Slash, Identifier}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind=%v want=%v (text %q)", i, toks[i].Kind, k, toks[i].Text)
		}
	}
}

func TestTokenizeGroupingAndAbs(t *testing.T) {
	toks, err := Tokenize("|x + 1| * (y) * [z]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Pipe, Identifier, Plus, Integer, Pipe, Star, LeftParen, Identifier, RightParen, Star, LeftBracket, Identifier, RightBracket}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	if _, err := Tokenize("x @ y"); err == nil {
		t.Errorf("expected a lex error for '@'")
	}
}

func TestTokenizeMalformedDecimal(t *testing.T) {
	if _, err := Tokenize("3."); err == nil {
		t.Errorf("expected a lex error for a trailing decimal point")
	}
}

func TestTokenizeEmptyAndWhitespace(t *testing.T) {
	toks, err := Tokenize("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 0 {
		t.Errorf("got %d tokens, want 0", len(toks))
	}
}
