package parser

import (
	"strconv"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/token"
)

// parseType:
//
//	"int" | "char" | "bool" | ID
//	| "array of" type [ "of length" NUM ]
//	| "record of" "{" ID ":" type { "," ID ":" type } "}"
func (p *Parser) parseType() (ast.TypeExpr, error) {
	switch p.peek() {
	case token.KwInt, token.KwChar, token.KwBool:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.KwInt:
			return &ast.IntType{Line: tok.Line}, nil
		case token.KwChar:
			return &ast.CharType{Line: tok.Line}, nil
		default:
			return &ast.BoolType{Line: tok.Line}, nil
		}
	case token.Ident:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		return &ast.NamedType{Name: tok.Text, Line: tok.Line}, nil
	case token.KwArrayOf:
		return p.parseArrayType()
	case token.KwRecordOf:
		return p.parseRecordType()
	}
	return nil, p.unexpected(diag.SynExpectType, "type")
}

func (p *Parser) parseArrayType() (*ast.ArrayType, error) {
	kw, err := p.expect(token.KwArrayOf)
	if err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	arr := &ast.ArrayType{Elem: elem, Line: kw.Line}
	if ok, err := p.accept(token.KwOfLength); err != nil {
		return nil, err
	} else if ok {
		num, err := p.expect(token.IntLit)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(num.Text)
		if err != nil || n <= 0 {
			return nil, diag.Errorf(diag.SynExpectType, num.Line, "array length must be a positive integer, got %s", num.Text)
		}
		arr.Length = n
	}
	return arr, nil
}

func (p *Parser) parseRecordType() (*ast.RecordType, error) {
	kw, err := p.expect(token.KwRecordOf)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	rec := &ast.RecordType{Line: kw.Line}
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
		rec.Fields = append(rec.Fields, &ast.Field{Name: name.Text, Type: typ, Line: name.Line})
		if ok, err := p.accept(token.Comma); err != nil {
			return nil, err
		} else if !ok {
			break
		}
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return rec, nil
}
