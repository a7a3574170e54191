package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

func shape(t *testing.T, src string) string {
	t.Helper()
	return ast.ShapeOf(mustParse(t, src)).String()
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "empty function",
			src:  "func f() end f",
			want: "(Program (FunctionDecl (FunctionHead f) (FunctionTail f)))",
		},
		{
			name: "precedence",
			src:  "func f(): int return 1 + 2 * 3; end f",
			want: "(Program (FunctionDecl (FunctionHead f (IntType)) (Return (BinaryOp + (Literal int:1) (BinaryOp * (Literal int:2) (Literal int:3)))) (FunctionTail f)))",
		},
		{
			name: "left associative",
			src:  "func f(): int return 1 - 2 - 3; end f",
			want: "(Program (FunctionDecl (FunctionHead f (IntType)) (Return (BinaryOp - (BinaryOp - (Literal int:1) (Literal int:2)) (Literal int:3))) (FunctionTail f)))",
		},
		{
			name: "logical over relational",
			src:  "func f(): bool return a < b || !c && d == e; end f",
			want: "(Program (FunctionDecl (FunctionHead f (BoolType)) (Return (BinaryOp || (BinaryOp < (Identifier a) (Identifier b)) (BinaryOp && (UnaryOp ! (Identifier c)) (BinaryOp == (Identifier d) (Identifier e))))) (FunctionTail f)))",
		},
		{
			name: "var list expands",
			src:  "var a: int, b: array of char of length 4;",
			want: "(Program (VarDecl a (IntType)) (VarDecl b (ArrayType 4 (CharType))))",
		},
		{
			name: "record type",
			src:  "type node = record of { value: int, next: node };",
			want: "(Program (TypeDecl node (RecordType (Field value (IntType)) (Field next (NamedType node)))))",
		},
		{
			name: "if else",
			src:  "func f() if x then write 1; else write 'a'; end end f",
			want: "(Program (FunctionDecl (FunctionHead f) (If (Identifier x) (Block (Write (Literal int:1))) (Block (Write (Literal char:'a')))) (FunctionTail f)))",
		},
		{
			name: "while and block",
			src:  "func f() while true do { x = x + 1; } end end f",
			want: "(Program (FunctionDecl (FunctionHead f) (While (Literal true:true) (Block (Block (Assign (Identifier x) (BinaryOp + (Identifier x) (Literal int:1)))))) (FunctionTail f)))",
		},
		{
			name: "alloc and postfix",
			src:  "func f() alloc a.b[2] of length n; a.b[0] = null; end f",
			want: "(Program (FunctionDecl (FunctionHead f) (Alloc (Index (FieldAccess b (Identifier a)) (Literal int:2)) (Identifier n)) (Assign (Index (FieldAccess b (Identifier a)) (Literal int:0)) (Literal null:null)) (FunctionTail f)))",
		},
		{
			name: "call statement and abs",
			src:  "func f(x: int) g(x, |x|); end f",
			want: "(Program (FunctionDecl (FunctionHead f (Param x (IntType))) (CallStmt (Call (Identifier g) (Identifier x) (Abs (Identifier x)))) (FunctionTail f)))",
		},
		{
			name: "nested abs without spaces",
			src:  "func f(x: int): int return ||x - 1||; end f",
			want: "(Program (FunctionDecl (FunctionHead f (Param x (IntType)) (IntType)) (Return (Abs (Abs (BinaryOp - (Identifier x) (Literal int:1))))) (FunctionTail f)))",
		},
		{
			name: "or inside parens within nested abs",
			src:  "func f() x = ||(a || b)||; end f",
			want: "(Program (FunctionDecl (FunctionHead f) (Assign (Identifier x) (Abs (Abs (BinaryOp || (Identifier a) (Identifier b))))) (FunctionTail f)))",
		},
		{
			name: "or between abs values",
			src:  "func f() x = |a| || |b|; end f",
			want: "(Program (FunctionDecl (FunctionHead f) (Assign (Identifier x) (BinaryOp || (Abs (Identifier a)) (Abs (Identifier b)))) (FunctionTail f)))",
		},
		{
			name: "negative literal folds",
			src:  "func f(): int return -2147483648 - -1; end f",
			want: "(Program (FunctionDecl (FunctionHead f (IntType)) (Return (BinaryOp - (Literal int:-2147483648) (Literal int:-1))) (FunctionTail f)))",
		},
		{
			name: "minus before identifier stays unary",
			src:  "func f(): int return -x; end f",
			want: "(Program (FunctionDecl (FunctionHead f (IntType)) (Return (UnaryOp - (Identifier x))) (FunctionTail f)))",
		},
		{
			name: "nested function",
			src:  "func outer() var v: int; func inner() end inner inner(); end outer",
			want: "(Program (FunctionDecl (FunctionHead outer) (VarDecl v (IntType)) (FunctionDecl (FunctionHead inner) (FunctionTail inner)) (CallStmt (Call (Identifier inner))) (FunctionTail outer)))",
		},
		{
			name: "comments ignored",
			src:  "# header\nfunc f() # trailing\nend f\n",
			want: "(Program (FunctionDecl (FunctionHead f) (FunctionTail f)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, shape(t, tt.src)); diff != "" {
				t.Fatalf("shape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	prog := mustParse(t, "func f(): int\n  var x: int;\n  x = 1;\n  return x;\nend f\n")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if fn.Head.Line != 1 || fn.Tail.Line != 5 {
		t.Fatalf("head/tail lines = %d/%d, want 1/5", fn.Head.Line, fn.Tail.Line)
	}
	if got := fn.Locals[0].Pos(); got != 2 {
		t.Fatalf("var line = %d, want 2", got)
	}
	if got := fn.Body[0].Pos(); got != 3 {
		t.Fatalf("assign line = %d, want 3", got)
	}
	if got := fn.Body[1].Pos(); got != 4 {
		t.Fatalf("return line = %d, want 4", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		line int
		kind error
	}{
		{"missing semicolon", "func f() x = 1 end f", diag.SynUnexpectedToken, 1, diag.ErrSyntax},
		{"missing tail name", "func f() end", diag.SynUnexpectedToken, 1, diag.ErrSyntax},
		{"unterminated body", "func f()\n x = 1;\n", diag.SynUnexpectedToken, 3, diag.ErrSyntax},
		{"bad statement", "func f()\n 1 = 2;\nend f", diag.SynExpectStatement, 2, diag.ErrSyntax},
		{"bad expression", "func f() x = ;\nend f", diag.SynExpectExpression, 1, diag.ErrSyntax},
		{"bad type", "var x: 5;", diag.SynExpectType, 1, diag.ErrSyntax},
		{"zero length", "var x: array of int of length 0;", diag.SynExpectType, 1, diag.ErrSyntax},
		{"bad top level", "x = 1;", diag.SynExpectDecl, 1, diag.ErrSyntax},
		{"lexical", "func f()\n x = $;\nend f", diag.LexUnknownChar, 2, diag.ErrLexical},
		{"int min without minus", "func f()\n x = 2147483648;\nend f", diag.LexIntLiteralTooLarge, 2, diag.ErrLexical},
		{"int min after binary minus", "func f()\n x = 1 - 2147483648;\nend f", diag.LexIntLiteralTooLarge, 2, diag.ErrLexical},
		{"below int min", "func f()\n x = -2147483649;\nend f", diag.LexIntLiteralTooLarge, 2, diag.ErrLexical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.ParseString(tt.src)
			if err == nil {
				t.Fatalf("expected error, got %s", ast.ShapeOf(prog))
			}
			if prog != nil {
				t.Fatalf("partial tree returned on error")
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error %v is not %v", err, tt.kind)
			}
			de, ok := diag.AsError(err)
			if !ok {
				t.Fatalf("expected *diag.Error, got %T", err)
			}
			if de.Code != tt.code || de.Line != tt.line {
				t.Fatalf("got %s at line %d, want %s at line %d (%v)", de.Code.ID(), de.Line, tt.code.ID(), tt.line, err)
			}
		})
	}
}
