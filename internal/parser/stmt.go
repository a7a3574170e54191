package parser

import (
	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/token"
)

// parseStmts reads statements until one of the closing kinds.
func (p *Parser) parseStmts(closers ...token.Kind) ([]ast.Stmt, error) {
	var out []ast.Stmt
	for !p.atAny(closers...) {
		if p.at(token.EOF) {
			return nil, p.unexpected(diag.SynUnexpectedToken, kindName(closers[0]))
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.peek() {
	case token.KwReturn:
		return p.parseReturn()
	case token.KwWrite:
		return p.parseWrite()
	case token.KwAlloc:
		return p.parseAlloc()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.LBrace:
		return p.parseBlock()
	case token.Ident:
		toks, err := p.lx.Peek(2)
		if err == nil && toks[1].Kind == token.LParen {
			return p.parseCallStmt()
		}
		return p.parseAssign()
	}
	return nil, p.unexpected(diag.SynExpectStatement, "statement")
}

func (p *Parser) parseReturn() (*ast.Return, error) {
	kw, err := p.expect(token.KwReturn)
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Line: kw.Line}
	if !p.at(token.Semicolon) {
		if ret.Value, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Parser) parseWrite() (*ast.Write, error) {
	kw, err := p.expect(token.KwWrite)
	if err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Write{Value: val, Line: kw.Line}, nil
}

// parseAlloc: "alloc" postfix [ "of length" expr ] ";"
func (p *Parser) parseAlloc() (*ast.Alloc, error) {
	kw, err := p.expect(token.KwAlloc)
	if err != nil {
		return nil, err
	}
	target, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	a := &ast.Alloc{Target: target, Line: kw.Line}
	if ok, err := p.accept(token.KwOfLength); err != nil {
		return nil, err
	} else if ok {
		if a.Length, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return a, nil
}

// parseIf: "if" expr "then" {stmt} ["else" {stmt}] "end"
func (p *Parser) parseIf() (*ast.If, error) {
	kw, err := p.expect(token.KwIf)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.expect(token.KwThen)
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStmts(token.KwElse, token.KwEnd)
	if err != nil {
		return nil, err
	}
	st := &ast.If{Cond: cond, Then: &ast.Block{Stmts: stmts, Line: then.Line}, Line: kw.Line}
	if p.at(token.KwElse) {
		els, err := p.advance()
		if err != nil {
			return nil, err
		}
		stmts, err := p.parseStmts(token.KwEnd)
		if err != nil {
			return nil, err
		}
		st.Else = &ast.Block{Stmts: stmts, Line: els.Line}
	}
	if _, err := p.expect(token.KwEnd); err != nil {
		return nil, err
	}
	return st, nil
}

// parseWhile: "while" expr "do" {stmt} "end"
func (p *Parser) parseWhile() (*ast.While, error) {
	kw, err := p.expect(token.KwWhile)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	do, err := p.expect(token.KwDo)
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStmts(token.KwEnd)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwEnd); err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: &ast.Block{Stmts: stmts, Line: do.Line}, Line: kw.Line}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStmts(token.RBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.Block{Stmts: stmts, Line: open.Line}, nil
}

func (p *Parser) parseCallStmt() (*ast.CallStmt, error) {
	call, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.CallStmt{Call: call, Line: call.Line}, nil
}

// parseAssign: postfix "=" expr ";"
func (p *Parser) parseAssign() (*ast.Assign, error) {
	target, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target, Value: val, Line: target.Pos()}, nil
}
