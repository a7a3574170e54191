package token_test

import (
	"testing"

	"diec/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.CharLit, token.KwTrue, token.KwFalse, token.KwNull}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwVar, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsKeywordAndIdent(t *testing.T) {
	for _, k := range []token.Kind{token.KwFunc, token.KwArrayOf, token.KwOfLength, token.KwType} {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatalf("Ident must not be keyword")
	}
	if !tok(token.Ident).IsIdent() || tok(token.KwFunc).IsIdent() {
		t.Fatalf("IsIdent misclassified")
	}
}

// Every matchable kind appears exactly once in Priority.
func TestPriorityCoversAllKinds(t *testing.T) {
	seen := make(map[token.Kind]int)
	for i, k := range token.Priority {
		if prev, dup := seen[k]; dup {
			t.Fatalf("%v listed twice (positions %d and %d)", k, prev, i)
		}
		seen[k] = i
	}
	for k := token.EqEq; k <= token.Ident; k++ {
		if _, ok := seen[k]; !ok {
			t.Fatalf("%v missing from Priority", k)
		}
	}
}

// A multi-character operator must be tried before any operator spelled as its prefix.
func TestPriorityPrefixOrder(t *testing.T) {
	pos := make(map[token.Kind]int)
	for i, k := range token.Priority {
		pos[k] = i
	}
	for _, long := range token.Priority {
		ls, ok := token.Punct(long)
		if !ok {
			continue
		}
		for _, short := range token.Priority {
			ss, ok := token.Punct(short)
			if !ok || len(ss) >= len(ls) || ls[:len(ss)] != ss {
				continue
			}
			if pos[long] > pos[short] {
				t.Fatalf("%v must precede %v", long, short)
			}
		}
	}
	for k := token.KwFunc; k <= token.KwType; k++ {
		if pos[k] > pos[token.Ident] {
			t.Fatalf("keyword %v must precede Ident", k)
		}
	}
}
