package token

import "fmt"

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	EqEq:       "'=='",
	BangEq:     "'!='",
	LtEq:       "'<='",
	GtEq:       "'>='",
	AndAnd:     "'&&'",
	OrOr:       "'||'",
	Star:       "'*'",
	Slash:      "'/'",
	Percent:    "'%'",
	Plus:       "'+'",
	Minus:      "'-'",
	LParen:     "'('",
	RParen:     "')'",
	Assign:     "'='",
	Lt:         "'<'",
	Gt:         "'>'",
	LBrace:     "'{'",
	RBrace:     "'}'",
	Bang:       "'!'",
	Pipe:       "'|'",
	Colon:      "':'",
	Semicolon:  "';'",
	Dot:        "'.'",
	Comma:      "','",
	LBracket:   "'['",
	RBracket:   "']'",
	KwFunc:     "'func'",
	KwInt:      "'int'",
	KwChar:     "'char'",
	KwBool:     "'bool'",
	KwArrayOf:  "'array of'",
	KwRecordOf: "'record of'",
	KwEnd:      "'end'",
	KwVar:      "'var'",
	KwReturn:   "'return'",
	KwWrite:    "'write'",
	KwAlloc:    "'alloc'",
	KwIf:       "'if'",
	KwThen:     "'then'",
	KwWhile:    "'while'",
	KwDo:       "'do'",
	KwOfLength: "'of length'",
	KwElse:     "'else'",
	KwTrue:     "'true'",
	KwFalse:    "'false'",
	KwNull:     "'null'",
	KwType:     "'type'",
	IntLit:     "integer literal",
	CharLit:    "character literal",
	Ident:      "identifier",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}
