package lox

import (
	"errors"
	"testing"
)

// mustParse parses source and fails the test on any lexer or syntax error.
func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, errs, err := Parse([]byte(src), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	return prog
}

// exprStmt extracts the expression of the i-th top-level statement.
func exprStmt(t *testing.T, prog *Program, i int) Expr {
	t.Helper()
	if len(prog.Stmts) <= i {
		t.Fatalf("missing statement %d, have %d", i, len(prog.Stmts))
	}
	st, ok := prog.Stmts[i].(*ExprStmt)
	if !ok {
		t.Fatalf("statement %d is %T, not an expression statement", i, prog.Stmts[i])
	}
	return st.Expr
}

// asBinary asserts e is a Binary with the given operator.
func asBinary(t *testing.T, e Expr, op TokenKind) *Binary {
	t.Helper()
	b, ok := e.(*Binary)
	if !ok {
		t.Fatalf("expected binary node, got %T", e)
	}
	if b.Op.Kind != op {
		t.Fatalf("expected operator %q, got %q", op, b.Op.Kind)
	}
	return b
}

// wantNumber asserts e is a numeric literal with the given value.
func wantNumber(t *testing.T, e Expr, want float64) {
	t.Helper()
	lit, ok := e.(*Literal)
	if !ok {
		t.Fatalf("expected literal, got %T", e)
	}
	if lit.Value.Kind != ValueNumber || lit.Value.Num != want {
		t.Fatalf("expected number %v, got %+v", want, lit.Value)
	}
}

func TestPrecedenceMultiplicationBindsTighter(t *testing.T) {
	prog := mustParse(t, "1 + 2 * 3;")

	add := asBinary(t, exprStmt(t, prog, 0), TokPlus)
	wantNumber(t, add.Left, 1)
	mul := asBinary(t, add.Right, TokStar)
	wantNumber(t, mul.Left, 2)
	wantNumber(t, mul.Right, 3)
}

func TestSubtractionFoldsLeft(t *testing.T) {
	prog := mustParse(t, "1 - 2 - 3;")

	outer := asBinary(t, exprStmt(t, prog, 0), TokMinus)
	wantNumber(t, outer.Right, 3)
	inner := asBinary(t, outer.Left, TokMinus)
	wantNumber(t, inner.Left, 1)
	wantNumber(t, inner.Right, 2)
}

func TestAssignmentNestsRight(t *testing.T) {
	prog := mustParse(t, "a = b = 3;")

	outer, ok := exprStmt(t, prog, 0).(*Assign)
	if !ok {
		t.Fatalf("expected assignment, got %T", exprStmt(t, prog, 0))
	}
	if outer.Name.Lit != "a" {
		t.Fatalf("outer target: %q", outer.Name.Lit)
	}
	inner, ok := outer.Value.(*Assign)
	if !ok {
		t.Fatalf("expected nested assignment, got %T", outer.Value)
	}
	if inner.Name.Lit != "b" {
		t.Fatalf("inner target: %q", inner.Name.Lit)
	}
	wantNumber(t, inner.Value, 3)
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	prog := mustParse(t, "(1 + 2) * 3;")

	mul := asBinary(t, exprStmt(t, prog, 0), TokStar)
	wantNumber(t, mul.Right, 3)
	grp, ok := mul.Left.(*Grouping)
	if !ok {
		t.Fatalf("expected grouping, got %T", mul.Left)
	}
	add := asBinary(t, grp.Inner, TokPlus)
	wantNumber(t, add.Left, 1)
	wantNumber(t, add.Right, 2)
}

func TestUnaryNestsRight(t *testing.T) {
	prog := mustParse(t, "!!true;")

	outer, ok := exprStmt(t, prog, 0).(*Unary)
	if !ok {
		t.Fatalf("expected unary, got %T", exprStmt(t, prog, 0))
	}
	inner, ok := outer.Operand.(*Unary)
	if !ok {
		t.Fatalf("expected nested unary, got %T", outer.Operand)
	}
	lit, ok := inner.Operand.(*Literal)
	if !ok || lit.Value.Kind != ValueBool || !lit.Value.Bool {
		t.Fatalf("expected true literal, got %#v", inner.Operand)
	}
}

func TestComparisonFeedsEquality(t *testing.T) {
	prog := mustParse(t, "1 < 2 == true;")

	eq := asBinary(t, exprStmt(t, prog, 0), TokEqualEqual)
	asBinary(t, eq.Left, TokLess)
}

func TestVarDeclarations(t *testing.T) {
	prog := mustParse(t, `var x = 1 + 2; var y; var s = "hi";`)

	if len(prog.Stmts) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(prog.Stmts))
	}

	x := prog.Stmts[0].(*VarDecl)
	if x.Name.Lit != "x" {
		t.Fatalf("first name: %q", x.Name.Lit)
	}
	asBinary(t, x.Init, TokPlus)

	y := prog.Stmts[1].(*VarDecl)
	if y.Name.Lit != "y" || y.Init != nil {
		t.Fatalf("expected uninitialized y, got %+v", y)
	}

	s := prog.Stmts[2].(*VarDecl)
	lit, ok := s.Init.(*Literal)
	if !ok || lit.Value.Kind != ValueString || lit.Value.Str != "hi" {
		t.Fatalf("expected string initializer, got %#v", s.Init)
	}
}

func TestBlockNesting(t *testing.T) {
	prog := mustParse(t, "{ var x = 1; { print x; } }")

	if len(prog.Stmts) != 1 {
		t.Fatalf("expected one top-level block, got %d statements", len(prog.Stmts))
	}
	blk, ok := prog.Stmts[0].(*Block)
	if !ok {
		t.Fatalf("expected block, got %T", prog.Stmts[0])
	}
	if len(blk.Stmts) != 2 {
		t.Fatalf("expected 2 statements in block, got %d", len(blk.Stmts))
	}
	if _, ok := blk.Stmts[0].(*VarDecl); !ok {
		t.Fatalf("first block statement is %T, not a declaration", blk.Stmts[0])
	}
	inner, ok := blk.Stmts[1].(*Block)
	if !ok {
		t.Fatalf("second block statement is %T, not a block", blk.Stmts[1])
	}
	if len(inner.Stmts) != 1 {
		t.Fatalf("expected 1 inner statement, got %d", len(inner.Stmts))
	}
	if _, ok := inner.Stmts[0].(*PrintStmt); !ok {
		t.Fatalf("inner statement is %T, not a print statement", inner.Stmts[0])
	}
}

func TestRecoveryIsolatesErrors(t *testing.T) {
	prog, errs, err := Parse([]byte("var x = ; print x;"), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Kind != ErrorExpectedExpression {
		t.Fatalf("expected expected_expression, got %q", errs[0].Kind)
	}

	// Synchronization must not consume the print statement.
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected one surviving statement, got %d", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*PrintStmt); !ok {
		t.Fatalf("surviving statement is %T, not a print statement", prog.Stmts[0])
	}
}

func TestRecoveryAcrossMultipleErrors(t *testing.T) {
	src := `var = 1;
print 1 + ;
var ok = 2;
print ok;`

	prog, errs, err := Parse([]byte(src), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	if errs[0].Line != 1 || errs[1].Line != 2 {
		t.Fatalf("errors out of source order: %v", errs)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected two surviving statements, got %d", len(prog.Stmts))
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "literal", src: "1 = 2;"},
		{name: "grouping", src: "(a) = 3;"},
		{name: "binary", src: "a + b = 3;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, errs, err := Parse([]byte(tt.src), nil)
			if err != nil {
				t.Fatalf("scan: %v", err)
			}
			if len(errs) != 1 || errs[0].Kind != ErrorInvalidAssignmentTarget {
				t.Fatalf("expected invalid_assignment_target, got %v", errs)
			}
			if errs[0].Token.Kind != TokEqual {
				t.Fatalf("error not reported at '=': %+v", errs[0].Token)
			}
			if len(prog.Stmts) != 0 {
				t.Fatalf("no statement should survive, got %d", len(prog.Stmts))
			}
		})
	}
}

func TestUnclosedGroupingTerminates(t *testing.T) {
	prog, errs, err := Parse([]byte("print (1 + 2"), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(errs) != 1 || errs[0].Kind != ErrorUnclosedGrouping {
		t.Fatalf("expected unclosed_grouping, got %v", errs)
	}
	if errs[0].Token.Kind != TokEOF {
		t.Fatalf("error should point at end of input, got %+v", errs[0].Token)
	}
	if len(prog.Stmts) != 0 {
		t.Fatalf("expected empty program, got %d statements", len(prog.Stmts))
	}
}

func TestUnclosedBlock(t *testing.T) {
	_, errs, err := Parse([]byte("{ print 1;"), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(errs) != 1 || errs[0].Kind != ErrorUnclosedBlock {
		t.Fatalf("expected unclosed_block, got %v", errs)
	}
}

func TestMissingSemicolon(t *testing.T) {
	_, errs, err := Parse([]byte("var x = 1 print x;"), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(errs) != 1 || errs[0].Kind != ErrorUnexpectedToken {
		t.Fatalf("expected unexpected_token, got %v", errs)
	}
	if errs[0].Token.Kind != TokPrint {
		t.Fatalf("error should point at 'print', got %+v", errs[0].Token)
	}
}

func TestNestingDepthLimit(t *testing.T) {
	deep := ""
	for i := 0; i < 40; i++ {
		deep += "("
	}
	deep += "1"
	for i := 0; i < 40; i++ {
		deep += ")"
	}
	deep += ";"

	// Permissive limit parses fine.
	if _, errs, err := Parse([]byte(deep), nil); err != nil || len(errs) != 0 {
		t.Fatalf("default limit should allow 40 levels: %v %v", err, errs)
	}

	// A tight limit reports nesting_too_deep and terminates.
	_, errs, err := Parse([]byte(deep), &ParseOptions{MaxDepth: 8})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(errs) == 0 || errs[0].Kind != ErrorNestingTooDeep {
		t.Fatalf("expected nesting_too_deep, got %v", errs)
	}
}

func TestParseErrorWrapsSentinel(t *testing.T) {
	_, errs, err := Parse([]byte("print ;"), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}

	e := errs[0]
	if !errors.Is(&e, ErrParse) {
		t.Fatalf("ParseError should unwrap to ErrParse")
	}
	if e.Line != 1 || e.Col != 7 {
		t.Fatalf("error position: %d:%d", e.Line, e.Col)
	}
}

func TestParseTokensIndependentCalls(t *testing.T) {
	toks, err := Scan([]byte("var n = 1; print n;"), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	// The same token slice parses identically across concurrent calls:
	// every invocation owns its own cursor and error list.
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			prog, errs := ParseTokens(toks, nil)
			if len(errs) != 0 || len(prog.Stmts) != 2 {
				t.Errorf("parse mismatch: %d statements, errors %v", len(prog.Stmts), errs)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
