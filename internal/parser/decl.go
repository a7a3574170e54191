package parser

import (
	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/token"
)

// expectedDecl reports a token that cannot start a declaration.
func (p *Parser) expectedDecl() error {
	return p.unexpected(diag.SynExpectDecl, "declaration")
}

// parseDecls reads a run of declarations. A var declaration may declare
// several variables and expands into one VarDecl each.
func (p *Parser) parseDecls() ([]ast.Decl, error) {
	var out []ast.Decl
	for {
		switch p.peek() {
		case token.KwFunc:
			fn, err := p.parseFunc()
			if err != nil {
				return nil, err
			}
			out = append(out, fn)
		case token.KwVar:
			vars, err := p.parseVarList()
			if err != nil {
				return nil, err
			}
			for _, v := range vars {
				out = append(out, v)
			}
		case token.KwType:
			td, err := p.parseTypeDecl()
			if err != nil {
				return nil, err
			}
			out = append(out, td)
		default:
			return out, nil
		}
	}
}

// parseFunc: "func" ID "(" params ")" [":" type] {decl} {stmt} "end" ID
func (p *Parser) parseFunc() (*ast.FunctionDecl, error) {
	kw, err := p.expect(token.KwFunc)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	head := &ast.FunctionHead{Name: name.Text, Line: kw.Line}
	if head.Params, err = p.parseParams(); err != nil {
		return nil, err
	}
	if ok, err := p.accept(token.Colon); err != nil {
		return nil, err
	} else if ok {
		if head.Result, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	fn := &ast.FunctionDecl{Head: head}
	if fn.Locals, err = p.parseDecls(); err != nil {
		return nil, err
	}
	if fn.Body, err = p.parseStmts(token.KwEnd); err != nil {
		return nil, err
	}
	end, err := p.expect(token.KwEnd)
	if err != nil {
		return nil, err
	}
	tail, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	fn.Tail = &ast.FunctionTail{Name: tail.Text, Line: end.Line}
	return fn, nil
}

func (p *Parser) parseParams() ([]*ast.Param, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []*ast.Param
	if !p.at(token.RParen) {
		for {
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, &ast.Param{Name: name.Text, Type: typ, Line: name.Line})
			if ok, err := p.accept(token.Comma); err != nil {
				return nil, err
			} else if !ok {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

// parseVarList: "var" ID ":" type { "," ID ":" type } ";"
func (p *Parser) parseVarList() ([]*ast.VarDecl, error) {
	if _, err := p.expect(token.KwVar); err != nil {
		return nil, err
	}
	var vars []*ast.VarDecl
	for {
		name, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		vars = append(vars, &ast.VarDecl{Name: name.Text, Type: typ, Line: name.Line, Off: name.Span.Start})
		if ok, err := p.accept(token.Comma); err != nil {
			return nil, err
		} else if !ok {
			break
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return vars, nil
}

// parseTypeDecl: "type" ID "=" type ";"
func (p *Parser) parseTypeDecl() (*ast.TypeDecl, error) {
	kw, err := p.expect(token.KwType)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.TypeDecl{Name: name.Text, Type: typ, Line: kw.Line}, nil
}
