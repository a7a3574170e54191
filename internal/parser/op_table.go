package parser

import (
	"diec/internal/ast"
	"diec/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет; все левоассоциативны.
const (
	precNone           = 0
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * / %
)

var binaryOps = map[token.Kind]struct {
	op   ast.BinaryOperator
	prec int
}{
	token.OrOr:    {ast.OpOr, precLogicalOr},
	token.AndAnd:  {ast.OpAnd, precLogicalAnd},
	token.EqEq:    {ast.OpEq, precEquality},
	token.BangEq:  {ast.OpNe, precEquality},
	token.Lt:      {ast.OpLt, precComparison},
	token.Gt:      {ast.OpGt, precComparison},
	token.LtEq:    {ast.OpLe, precComparison},
	token.GtEq:    {ast.OpGe, precComparison},
	token.Plus:    {ast.OpAdd, precAdditive},
	token.Minus:   {ast.OpSub, precAdditive},
	token.Star:    {ast.OpMul, precMultiplicative},
	token.Slash:   {ast.OpDiv, precMultiplicative},
	token.Percent: {ast.OpMod, precMultiplicative},
}

// binaryPrec возвращает приоритет оператора или precNone.
func binaryPrec(k token.Kind) (ast.BinaryOperator, int) {
	if e, ok := binaryOps[k]; ok {
		return e.op, e.prec
	}
	return 0, precNone
}
