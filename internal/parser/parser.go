// Package parser builds an ast.Program from die source by recursive descent.
//
// Parsing stops at the first lexical or syntax error; no partial tree is
// returned.
package parser

import (
	"slices"
	"strconv"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/lexer"
	"diec/internal/source"
	"diec/internal/token"
)

// Parser — состояние парсера на один файл
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	// closeAbs2 - внутри "||e||": токен "||" закрывает оба модуля.
	closeAbs2 bool
}

// Parse разбирает файл целиком.
func Parse(file *source.File) (*ast.Program, error) {
	p := &Parser{lx: lexer.New(file), file: file}
	return p.parseProgram()
}

// ParseString is Parse over an anonymous in-memory file.
func ParseString(text string) (*ast.Program, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("input.die", []byte(text))
	return Parse(fs.Get(id))
}

func (p *Parser) peek() token.Kind {
	return p.lx.PeekKind()
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek() == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek())
}

// advance съедает следующий токен.
func (p *Parser) advance() (token.Token, error) {
	return p.lx.Next()
}

// expect съедает токен вида k или возвращает SynUnexpectedToken.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.at(k) {
		return p.advance()
	}
	return token.Token{}, p.unexpected(diag.SynUnexpectedToken, kindName(k))
}

// accept съедает токен вида k, если он следующий.
func (p *Parser) accept(k token.Kind) (bool, error) {
	if !p.at(k) {
		return false, nil
	}
	_, err := p.advance()
	return err == nil, err
}

// unexpected reports that want is missing at the current position. A lexical
// error at that position wins over the syntax error.
func (p *Parser) unexpected(code diag.Code, want string) error {
	switch p.peek() {
	case token.Invalid:
		_, err := p.advance()
		return err
	case token.EOF:
		return p.errorf(code, "expected %s, found end of input", want)
	}
	return p.errorf(code, "expected %s, found %q", want, lexer.Snippet(p.lx.Remaining()))
}

func (p *Parser) errorf(code diag.Code, format string, args ...any) *diag.Error {
	pos := p.file.Position(p.lx.Offset())
	return diag.Errorf(code, int(pos.Line), format, args...).At(int(pos.Col))
}

func kindName(k token.Kind) string {
	if s, ok := token.Punct(k); ok {
		return strconv.Quote(s)
	}
	if words, ok := token.Keyword(k); ok {
		s := words[0]
		for _, w := range words[1:] {
			s += " " + w
		}
		return strconv.Quote(s)
	}
	return k.String()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	decls, err := p.parseDecls()
	if err != nil {
		return nil, err
	}
	if !p.lx.AtEOF() {
		return nil, p.expectedDecl()
	}
	return &ast.Program{Decls: decls, Line: 1}, nil
}
