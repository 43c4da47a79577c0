package lox

import "fmt"

// cursor provides lookahead-1 over a scanned token stream. The position
// only ever advances; one cursor serves exactly one parse.
type cursor struct {
	toks []Token // Token stream, terminated by an EOF token
	pos  int     // Index of the current token
}

// newCursor creates a cursor over toks. A missing EOF terminator is
// normalized so peek stays total at the boundary.
func newCursor(toks []Token) *cursor {
	if n := len(toks); n == 0 || toks[n-1].Kind != TokEOF {
		line, col := 1, 0
		if n > 0 {
			line, col = toks[n-1].Line, toks[n-1].Col
		}
		toks = append(toks, Token{Kind: TokEOF, Line: line, Col: col})
	}

	return &cursor{toks: toks}
}

// peek returns the current token without consuming it. At the boundary it
// keeps returning the EOF token.
func (c *cursor) peek() Token {
	if c.pos >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}

	return c.toks[c.pos]
}

// atEnd reports whether the cursor reached the EOF token.
func (c *cursor) atEnd() bool {
	return c.peek().Kind == TokEOF
}

// advance returns the current token and moves forward by one. Consuming
// the EOF token fails with ErrorUnexpectedEnd.
func (c *cursor) advance() (Token, error) {
	tok := c.peek()
	if tok.Kind == TokEOF {
		return tok, newParseError(tok, ErrorUnexpectedEnd, "unexpected end of input")
	}

	c.pos++
	return tok, nil
}

// check reports whether the current token matches kind, without consuming.
func (c *cursor) check(kind TokenKind) bool {
	return c.peek().Kind == kind
}

// match consumes the current token and reports true only if it matches
// kind; otherwise the position is unchanged.
func (c *cursor) match(kind TokenKind) bool {
	if !c.check(kind) {
		return false
	}

	c.pos++
	return true
}

// expect consumes and returns the current token if it matches kind, else
// fails with ErrorUnexpectedToken naming the production in context.
func (c *cursor) expect(kind TokenKind, context string) (Token, error) {
	if c.check(kind) {
		return c.advance()
	}

	tok := c.peek()
	return tok, newParseError(tok, ErrorUnexpectedToken,
		fmt.Sprintf("expected '%s' %s, got '%s'", kind, context, tok.Kind))
}
