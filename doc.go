/*
Package lox provides scanning, parsing, and formatting for a small
expression- and statement-oriented language.

The parser is recursive-descent with precedence climbing over six
expression tiers (assignment, equality, comparison, addition,
multiplication, unary) and recovers from syntax errors at statement
boundaries, so a single pass surfaces every error alongside the partial
AST. Parsing is a pure computation: each call owns its own cursor and
error list and no state is shared across calls.

Reader example:

	prog, errs, err := lox.ParseFile("script.lox", nil)
	if err != nil {
		// handle lexer or I/O error
	}
	for _, e := range errs {
		// handle syntax errors; prog still holds the recoverable prefix
	}

Token stream example:

	toks, err := lox.Scan([]byte(`print 1 + 2;`), nil)
	if err != nil {
		// handle error
	}
	prog, errs := lox.ParseTokens(toks, nil)
	_ = prog
	_ = errs

Writer example:

	out, err := lox.Format(prog, nil)
	if err != nil {
		// handle error
	}

Depth limit example:

	prog, errs, err := lox.Parse(src, &lox.ParseOptions{MaxDepth: 64})
*/
package lox
