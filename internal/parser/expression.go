package parser

import (
	"strconv"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/lexer"
	"diec/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseBinaryExpr(precLogicalOr)
}

// parseNested parses an expression inside delimiters. closeAbs2 is set only
// directly inside "||e||"; brackets, parens and call arguments clear it.
func (p *Parser) parseNested(closeAbs2 bool) (ast.Expr, error) {
	saved := p.closeAbs2
	p.closeAbs2 = closeAbs2
	defer func() { p.closeAbs2 = saved }()
	return p.parseExpr()
}

// parseBinaryExpr: precedence climbing, minPrec - минимальный приоритет уровня.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if p.closeAbs2 && p.at(token.OrOr) {
			return left, nil
		}
		op, prec := binaryPrec(p.peek())
		if prec == precNone || prec < minPrec {
			return left, nil
		}
		opTok, err := p.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Line: opTok.Line}
	}
}

// parseUnary: ("!" | "-") unary | postfix
func (p *Parser) parseUnary() (ast.Expr, error) {
	var op ast.UnaryOperator
	switch p.peek() {
	case token.Bang:
		op = ast.OpNot
	case token.Minus:
		op = ast.OpNeg
	default:
		return p.parsePostfix()
	}
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	if op == ast.OpNeg && p.at(token.IntLit) {
		lit, err := p.advance()
		if err != nil {
			return nil, err
		}
		return p.intLiteral(lit, tok.Line, "-")
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Op: op, Operand: operand, Line: tok.Line}, nil
}

// parsePostfix: primary { "[" expr "]" | "." ID }
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case token.LBracket:
			open, err := p.advance()
			if err != nil {
				return nil, err
			}
			idx, err := p.parseNested(false)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			expr = &ast.Index{Base: expr, Index: idx, Line: open.Line}
		case token.Dot:
			dot, err := p.advance()
			if err != nil {
				return nil, err
			}
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			expr = &ast.FieldAccess{Base: expr, Field: name.Text, Line: dot.Line}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.peek() {
	case token.IntLit:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		return p.intLiteral(tok, tok.Line, "")
	case token.CharLit:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Kind: ast.LitChar, Text: tok.Text, Value: lexer.CharValue(tok.Text), Line: tok.Line}, nil
	case token.KwTrue, token.KwFalse, token.KwNull:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		kind := map[token.Kind]ast.LitKind{
			token.KwTrue:  ast.LitTrue,
			token.KwFalse: ast.LitFalse,
			token.KwNull:  ast.LitNull,
		}[tok.Kind]
		lit := &ast.Literal{Kind: kind, Text: tok.Text, Line: tok.Line}
		if kind == ast.LitTrue {
			lit.Value = 1
		}
		return lit, nil
	case token.Ident:
		toks, err := p.lx.Peek(2)
		if err == nil && toks[1].Kind == token.LParen {
			return p.parseCall()
		}
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		return &ast.Identifier{Name: tok.Text, Line: tok.Line, Off: tok.Span.Start}, nil
	case token.LParen:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseNested(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil
	case token.Pipe:
		open, err := p.advance()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseNested(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Pipe); err != nil {
			return nil, err
		}
		return &ast.Abs{Operand: inner, Line: open.Line}, nil
	case token.OrOr:
		// "||e||" is two nested |e|; the lexer sees a single "||" on each side.
		open, err := p.advance()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseNested(true)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.OrOr); err != nil {
			return nil, err
		}
		return &ast.Abs{Operand: &ast.Abs{Operand: inner, Line: open.Line}, Line: open.Line}, nil
	}
	return nil, p.unexpected(diag.SynExpectExpression, "expression")
}

// intLiteral decodes an int token; sign is "-" when a unary minus is folded in.
func (p *Parser) intLiteral(tok token.Token, line int, sign string) (*ast.Literal, error) {
	text := sign + tok.Text
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		pos := p.file.Position(tok.Span.Start)
		return nil, diag.Errorf(diag.LexIntLiteralTooLarge, int(pos.Line), "integer literal %s does not fit in 32 bits", text).At(int(pos.Col))
	}
	return &ast.Literal{Kind: ast.LitInt, Text: text, Value: int32(v), Line: line}, nil
}

// parseCall: ID "(" [ expr { "," expr } ] ")"
func (p *Parser) parseCall() (*ast.Call, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	call := &ast.Call{Callee: &ast.Identifier{Name: name.Text, Line: name.Line, Off: name.Span.Start}, Line: name.Line}
	if !p.at(token.RParen) {
		for {
			arg, err := p.parseNested(false)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
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
	return call, nil
}
