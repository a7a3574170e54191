package lexer

import (
	"diec/internal/token"
)

// matcher returns the length of the longest prefix of s the token kind can
// consume, or 0 when the kind does not match at all.
type matcher func(s string) int

var matchers = buildMatchers()

func buildMatchers() map[token.Kind]matcher {
	m := make(map[token.Kind]matcher, len(token.Priority))
	for _, k := range token.Priority {
		if s, ok := token.Punct(k); ok {
			m[k] = literal(s)
			continue
		}
		if words, ok := token.Keyword(k); ok {
			m[k] = keyword(words)
			continue
		}
		switch k {
		case token.IntLit:
			m[k] = matchInt
		case token.CharLit:
			m[k] = matchChar
		case token.Ident:
			m[k] = matchIdent
		default:
			panic("lexer: no matcher for " + k.String())
		}
	}
	return m
}

func literal(lit string) matcher {
	return func(s string) int {
		if len(s) >= len(lit) && s[:len(lit)] == lit {
			return len(lit)
		}
		return 0
	}
}

// keyword matches words separated by blanks; the match must end on a word
// boundary so that keywords never eat the head of a longer identifier.
func keyword(words []string) matcher {
	return func(s string) int {
		n := 0
		for i, w := range words {
			if i > 0 {
				gap := 0
				for n+gap < len(s) && isBlank(s[n+gap]) {
					gap++
				}
				if gap == 0 {
					return 0
				}
				n += gap
			}
			if len(s)-n < len(w) || s[n:n+len(w)] != w {
				return 0
			}
			n += len(w)
		}
		if n < len(s) && isIdentContinueByte(s[n]) {
			return 0
		}
		return n
	}
}

// 0|[1-9][0-9]*
func matchInt(s string) int {
	if len(s) == 0 || !isDec(s[0]) {
		return 0
	}
	if s[0] == '0' {
		return 1
	}
	n := 1
	for n < len(s) && isDec(s[n]) {
		n++
	}
	return n
}

// 'c' or '\c' with c one of n t ' \
func matchChar(s string) int {
	if len(s) < 3 || s[0] != '\'' {
		return 0
	}
	switch {
	case s[1] == '\\':
		if len(s) >= 4 && isEscape(s[2]) && s[3] == '\'' {
			return 4
		}
	case s[1] != '\'' && s[1] != '\n' && s[2] == '\'':
		return 3
	}
	return 0
}

// [a-zA-Z_][a-zA-Z0-9_]*
func matchIdent(s string) int {
	if len(s) == 0 || !isIdentStartByte(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIdentContinueByte(s[n]) {
		n++
	}
	return n
}
