package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexUnknownChar        Code = 1001
	LexUnexpectedEOF      Code = 1002
	LexUnterminatedChar   Code = 1003
	LexIntLiteralTooLarge Code = 1004

	// Парсерные
	SynUnexpectedToken  Code = 2001
	SynExpectStatement  Code = 2002
	SynExpectExpression Code = 2003
	SynExpectType       Code = 2004
	SynExpectDecl       Code = 2005

	// Семантические
	SemaFnNameMismatch       Code = 3001
	SemaMissingReturn        Code = 3002
	SemaDuplicateSymbol      Code = 3003
	SemaUnresolvedSymbol     Code = 3004
	SemaUseBeforeDecl        Code = 3005
	SemaTypeMismatch         Code = 3006
	SemaInvalidBinaryOperand Code = 3007
	SemaInvalidUnaryOperand  Code = 3008
	SemaNotIndexable         Code = 3009
	SemaUnknownField         Code = 3010
	SemaNotCallable          Code = 3011
	SemaArgCountMismatch     Code = 3012
	SemaNotAllocatable       Code = 3013
	SemaMissingLength        Code = 3014
	SemaNotAValue            Code = 3015
	SemaNotAType             Code = 3016
	SemaInvalidRecursiveType Code = 3017
	SemaUnexpectedReturnVal  Code = 3018
	SemaNotWritable          Code = 3019
	SemaNotAssignable        Code = 3020
	SemaDuplicateField       Code = 3021

	// IO / driver
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
	IOWriteError    Code = 4003

	// Инварианты формата class-файла (ошибки компилятора)
	FmtInvalidIndex    Code = 9001
	FmtReservedIndex   Code = 9002
	FmtForwardRef      Code = 9003
	FmtValueOutOfRange Code = 9004
	FmtNoDescriptor    Code = 9005
	FmtMalformed       Code = 9006
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexUnknownChar:           "No token matches the input",
	LexUnexpectedEOF:         "Unexpected end of input",
	LexUnterminatedChar:      "Unterminated character literal",
	LexIntLiteralTooLarge:    "Integer literal too large",
	SynUnexpectedToken:       "Unexpected token",
	SynExpectStatement:       "Expected statement",
	SynExpectExpression:      "Expected expression",
	SynExpectType:            "Expected type",
	SynExpectDecl:            "Expected declaration",
	SemaFnNameMismatch:       "Function head and tail names differ",
	SemaMissingReturn:        "Missing return on some path",
	SemaDuplicateSymbol:      "Duplicate symbol in scope",
	SemaUnresolvedSymbol:     "Undeclared identifier",
	SemaUseBeforeDecl:        "Variable used before its declaration",
	SemaTypeMismatch:         "Type mismatch",
	SemaInvalidBinaryOperand: "Invalid operands for binary operator",
	SemaInvalidUnaryOperand:  "Invalid operand for unary operator",
	SemaNotIndexable:         "Indexed value is not an array",
	SemaUnknownField:         "Unknown record field",
	SemaNotCallable:          "Called value is not a function",
	SemaArgCountMismatch:     "Wrong number of arguments",
	SemaNotAllocatable:       "Allocation target is not a record or array",
	SemaMissingLength:        "Array allocation requires a length",
	SemaNotAValue:            "Name does not denote a value",
	SemaNotAType:             "Name does not denote a type",
	SemaInvalidRecursiveType: "Invalid recursive type",
	SemaUnexpectedReturnVal:  "Return value in function without result type",
	SemaNotWritable:          "Value cannot be written",
	SemaNotAssignable:        "Expression cannot be assigned to",
	SemaDuplicateField:       "Duplicate record field",
	IOLoadFileError:          "I/O error loading file",
	IOCacheError:             "Build cache error",
	IOWriteError:             "I/O error writing output",
	FmtInvalidIndex:          "Invalid constant pool index",
	FmtReservedIndex:         "Reserved constant pool index",
	FmtForwardRef:            "Forward constant pool reference",
	FmtValueOutOfRange:       "Class file value out of range",
	FmtNoDescriptor:          "Type has no descriptor",
	FmtMalformed:             "Malformed class file",
}

// Category groups codes by the phase that produces them.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryLexical
	CategorySyntax
	CategorySemantic
	CategoryIO
	CategoryFormat
)

// Category returns the phase group of the code.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CategoryLexical
	case ic >= 2000 && ic < 3000:
		return CategorySyntax
	case ic >= 3000 && ic < 4000:
		return CategorySemantic
	case ic >= 4000 && ic < 5000:
		return CategoryIO
	case ic >= 9000 && ic < 10000:
		return CategoryFormat
	default:
		return CategoryUnknown
	}
}

func (c Code) ID() string {
	ic := int(c)
	switch c.Category() {
	case CategoryLexical:
		return fmt.Sprintf("LEX%04d", ic)
	case CategorySyntax:
		return fmt.Sprintf("SYN%04d", ic)
	case CategorySemantic:
		return fmt.Sprintf("SEM%04d", ic)
	case CategoryIO:
		return fmt.Sprintf("IO%04d", ic)
	case CategoryFormat:
		return fmt.Sprintf("FMT%04d", ic)
	default:
		return fmt.Sprintf("E%04d", ic)
	}
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
