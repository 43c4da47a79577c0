package lox

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Parse scans and parses source bytes. The returned Program is the
// best-effort parse result; parseErrs holds every recorded syntax error in
// source order and is empty on a fully successful parse. A non-nil err
// reports a lexer failure, in which case no parse was attempted.
func Parse(data []byte, opt *ParseOptions) (prog *Program, parseErrs []ParseError, err error) {
	toks, err := Scan(data, opt)
	if err != nil {
		return nil, nil, err
	}

	prog, parseErrs = ParseTokens(toks, opt)
	return prog, parseErrs, nil
}

// Decode scans and parses source from reader.
func Decode(r io.Reader, opt *ParseOptions) (*Program, []ParseError, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	return Parse(data, opt)
}

// ParseFile scans and parses source from a file.
func ParseFile(path string, opt *ParseOptions) (*Program, []ParseError, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	return Parse(b, opt)
}

// ParseTokens parses an already-scanned token stream. Each call builds an
// independent cursor and error list, so concurrent calls never share state.
func ParseTokens(toks []Token, opt *ParseOptions) (*Program, []ParseError) {
	popt := opt.normalize()
	p := &parser{c: newCursor(toks), opt: popt}
	prog := p.parseProgram()

	return prog, p.errs
}

// parser represents a recursive-descent parser over a token cursor.
type parser struct {
	c     *cursor      // Cursor over the token stream
	errs  []ParseError // Recorded syntax errors in source order
	opt   ParseOptions // Options for the parser
	depth int          // Current expression nesting depth
}

// parseProgram parses declarations until end of input, collecting
// statements that survive error recovery.
func (p *parser) parseProgram() *Program {
	prog := &Program{}
	for !p.c.atEnd() {
		if st := p.parseDeclaration(); st != nil {
			prog.Stmts = append(prog.Stmts, st)
		}
	}

	return prog
}

// parseDeclaration is the single error recovery boundary: a failure
// anywhere below is recorded and followed by synchronization, so later
// declarations still get parsed.
func (p *parser) parseDeclaration() Stmt {
	st, err := p.declaration()
	if err != nil {
		p.record(err)
		p.synchronize()
		return nil
	}

	return st
}

// declaration parses a variable declaration or falls through to statement.
func (p *parser) declaration() (Stmt, error) {
	if p.c.check(TokVar) {
		return p.varDecl()
	}

	return p.statement()
}

// varDecl parses "var" IDENT ( "=" expression )? ";".
func (p *parser) varDecl() (Stmt, error) {
	if _, err := p.c.advance(); err != nil {
		return nil, err
	}

	name, err := p.c.expect(TokIdent, "after 'var'")
	if err != nil {
		return nil, err
	}

	var init Expr
	if p.c.match(TokEqual) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.c.expect(TokSemicolon, "after variable declaration"); err != nil {
		return nil, err
	}

	return &VarDecl{Name: name, Init: init}, nil
}

// statement parses a print statement, a block, or an expression statement.
func (p *parser) statement() (Stmt, error) {
	if p.c.check(TokPrint) {
		return p.printStmt()
	}
	if p.c.check(TokLBrace) {
		return p.block()
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.expect(TokSemicolon, "after expression"); err != nil {
		return nil, err
	}

	return &ExprStmt{Expr: expr}, nil
}

// printStmt parses "print" expression ";".
func (p *parser) printStmt() (Stmt, error) {
	if _, err := p.c.advance(); err != nil {
		return nil, err
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.expect(TokSemicolon, "after print value"); err != nil {
		return nil, err
	}

	return &PrintStmt{Expr: expr}, nil
}

// block parses "{" declaration* "}". Statement order is preserved; a
// missing closing brace before end of input fails with ErrorUnclosedBlock.
func (p *parser) block() (Stmt, error) {
	open, err := p.c.advance()
	if err != nil {
		return nil, err
	}

	blk := &Block{}
	for !p.c.check(TokRBrace) {
		if p.c.atEnd() {
			return nil, newParseError(p.c.peek(), ErrorUnclosedBlock,
				fmt.Sprintf("missing '}' for block opened at %d:%d", open.Line, open.Col))
		}

		if st := p.parseDeclaration(); st != nil {
			blk.Stmts = append(blk.Stmts, st)
		}
	}

	_, _ = p.c.advance()
	return blk, nil
}

// expression parses an assignment-level expression. All expression
// recursion funnels through here or unary, where nesting depth is bounded.
func (p *parser) expression() (Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.assignment()
}

// assignment parses the lowest-precedence tier. The left side is always
// built speculatively as an equality expression first; only when '=' shows
// up is it required to reduce to a single identifier, so the error for a
// bad target is reported at the '=' token.
func (p *parser) assignment() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.c.check(TokEqual) {
		eq, err := p.c.advance()
		if err != nil {
			return nil, err
		}

		// Right-associative: a = b = c nests to the right.
		value, err := p.expression()
		if err != nil {
			return nil, err
		}

		target, ok := expr.(*Variable)
		if !ok {
			return nil, newParseError(eq, ErrorInvalidAssignmentTarget, "invalid assignment target")
		}

		return &Assign{Name: target.Name, Value: value}, nil
	}

	return expr, nil
}

// equality parses "==" and "!=" chains, folding left.
func (p *parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.c.check(TokEqualEqual) || p.c.check(TokBangEqual) {
		op, err := p.c.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// comparison parses "<", "<=", ">" and ">=" chains, folding left.
func (p *parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.c.check(TokLess) || p.c.check(TokLessEqual) || p.c.check(TokGreater) || p.c.check(TokGreaterEqual) {
		op, err := p.c.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// term parses "+" and "-" chains, folding left.
func (p *parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.c.check(TokPlus) || p.c.check(TokMinus) {
		op, err := p.c.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// factor parses "*" and "/" chains, folding left.
func (p *parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.c.check(TokStar) || p.c.check(TokSlash) {
		op, err := p.c.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// unary parses right-associative prefix "!" and "-".
func (p *parser) unary() (Expr, error) {
	if p.c.check(TokBang) || p.c.check(TokMinus) {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		op, err := p.c.advance()
		if err != nil {
			return nil, err
		}
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &Unary{Op: op, Operand: operand}, nil
	}

	return p.primary()
}

// primary parses terminals and parenthesized sub-expressions.
func (p *parser) primary() (Expr, error) {
	tok := p.c.peek()

	switch tok.Kind {
	case TokTrue:
		_, _ = p.c.advance()
		return &Literal{Value: BoolValue(true)}, nil

	case TokFalse:
		_, _ = p.c.advance()
		return &Literal{Value: BoolValue(false)}, nil

	case TokNil:
		_, _ = p.c.advance()
		return &Literal{Value: NilValue()}, nil

	case TokNumber:
		_, _ = p.c.advance()
		f, err := strconv.ParseFloat(tok.Lit, 64)
		if err != nil {
			return nil, newParseError(tok, ErrorExpectedExpression,
				fmt.Sprintf("malformed number literal %q", tok.Lit))
		}
		return &Literal{Value: NumberValue(f)}, nil

	case TokString:
		_, _ = p.c.advance()
		return &Literal{Value: StringValue(tok.Lit)}, nil

	case TokIdent:
		name, err := p.c.advance()
		if err != nil {
			return nil, err
		}
		return &Variable{Name: name}, nil

	case TokLParen:
		open, err := p.c.advance()
		if err != nil {
			return nil, err
		}
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.c.match(TokRParen) {
			return nil, newParseError(p.c.peek(), ErrorUnclosedGrouping,
				fmt.Sprintf("missing ')' for grouping opened at %d:%d", open.Line, open.Col))
		}
		return &Grouping{Inner: inner}, nil

	default:
		return nil, newParseError(tok, ErrorExpectedExpression,
			fmt.Sprintf("expected expression, got '%s'", tok.Kind))
	}
}

// synchronize advances to the next statement boundary: just past a ';', or
// at a token that begins a new statement or declaration, or end of input.
// This bounds error cascades to roughly one report per genuine mistake.
func (p *parser) synchronize() {
	for !p.c.atEnd() {
		if p.c.check(TokSemicolon) {
			_, _ = p.c.advance()
			return
		}

		switch p.c.peek().Kind {
		case TokVar, TokPrint, TokLBrace:
			return
		}

		_, _ = p.c.advance()
	}
}

// record appends err to the recorded syntax errors.
func (p *parser) record(err error) {
	var pe *ParseError
	if errors.As(err, &pe) {
		p.errs = append(p.errs, *pe)
		return
	}

	tok := p.c.peek()
	p.errs = append(p.errs, ParseError{
		Kind: ErrorUnexpectedToken, Message: err.Error(),
		Token: tok, Line: tok.Line, Col: tok.Col,
	})
}

// enter tracks expression nesting depth against the configured limit.
// A failed enter leaves the depth unchanged.
func (p *parser) enter() error {
	if p.depth >= p.opt.MaxDepth {
		return newParseError(p.c.peek(), ErrorNestingTooDeep,
			fmt.Sprintf("expression nesting exceeds %d levels", p.opt.MaxDepth))
	}

	p.depth++
	return nil
}

// leave unwinds one expression nesting level.
func (p *parser) leave() {
	p.depth--
}
