package ast

type BinaryOperator uint8

const (
	OpOr BinaryOperator = iota
	OpAnd
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

var binaryOpText = [...]string{
	OpOr: "||", OpAnd: "&&", OpEq: "==", OpNe: "!=",
	OpLt: "<", OpGt: ">", OpLe: "<=", OpGe: ">=",
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
}

func (op BinaryOperator) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// OpClass groups binary operators by their typing rule.
type OpClass uint8

const (
	ClassArithmetic OpClass = iota
	ClassEquality
	ClassRelational
	ClassLogical
)

func (op BinaryOperator) Class() OpClass {
	switch op {
	case OpOr, OpAnd:
		return ClassLogical
	case OpEq, OpNe:
		return ClassEquality
	case OpLt, OpGt, OpLe, OpGe:
		return ClassRelational
	default:
		return ClassArithmetic
	}
}

type UnaryOperator uint8

const (
	OpNot UnaryOperator = iota
	OpNeg
)

func (op UnaryOperator) String() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}
