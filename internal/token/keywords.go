package token

// keywords maps keyword kinds to their words. Multi-word keywords are
// separated by any run of blanks in source; the canonical form uses one space.
var keywords = map[Kind][]string{
	KwFunc:     {"func"},
	KwInt:      {"int"},
	KwChar:     {"char"},
	KwBool:     {"bool"},
	KwArrayOf:  {"array", "of"},
	KwRecordOf: {"record", "of"},
	KwEnd:      {"end"},
	KwVar:      {"var"},
	KwReturn:   {"return"},
	KwWrite:    {"write"},
	KwAlloc:    {"alloc"},
	KwIf:       {"if"},
	KwThen:     {"then"},
	KwWhile:    {"while"},
	KwDo:       {"do"},
	KwOfLength: {"of", "length"},
	KwElse:     {"else"},
	KwTrue:     {"true"},
	KwFalse:    {"false"},
	KwNull:     {"null"},
	KwType:     {"type"},
}

// Keyword returns the words of a keyword kind.
func Keyword(k Kind) ([]string, bool) {
	words, ok := keywords[k]
	return words, ok
}

var punct = map[Kind]string{
	EqEq: "==", BangEq: "!=", LtEq: "<=", GtEq: ">=", AndAnd: "&&", OrOr: "||",
	Star: "*", Slash: "/", Percent: "%", Plus: "+", Minus: "-",
	LParen: "(", RParen: ")", Assign: "=", Lt: "<", Gt: ">",
	LBrace: "{", RBrace: "}", Bang: "!", Pipe: "|", Colon: ":",
	Semicolon: ";", Dot: ".", Comma: ",", LBracket: "[", RBracket: "]",
}

// Punct returns the fixed spelling of an operator or punctuation kind.
func Punct(k Kind) (string, bool) {
	s, ok := punct[k]
	return s, ok
}
