package lox

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Scan tokenizes source bytes into a finite token stream terminated by
// exactly one EOF token.
func Scan(data []byte, opt *ParseOptions) ([]Token, error) {
	popt := opt.normalize()
	l := newLexer(bytes.NewReader(data), popt)

	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks, nil
		}
	}
}

// lexer represents a lexer for source text.
type lexer struct {
	r   *bufio.Reader // Reader for the input
	pos position      // Position of the current character
	ch  rune          // Current character
	opt ParseOptions  // Options for the lexer
	eof bool          // End of input
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// newLexer creates a new lexer over the source reader.
func newLexer(r io.Reader, opt ParseOptions) *lexer {
	l := &lexer{r: bufio.NewReader(r), opt: opt, pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}

	return l
}

// next returns the next token from the source.
func (l *lexer) next() (Token, error) {
	// Tokenization is single-pass; skip whitespace/comments first.
	l.skipWhitespace()
	if l.eof {
		return Token{Kind: TokEOF, Line: l.pos.line, Col: l.pos.col}, nil
	}

	startLine, startCol := l.pos.line, l.pos.col
	mk := func(kind TokenKind, lit string) Token {
		return Token{Kind: kind, Lit: lit, Line: startLine, Col: startCol}
	}

	// Tokenize the current character.
	switch l.ch {
	case '(':
		l.read()
		return mk(TokLParen, "("), nil
	case ')':
		l.read()
		return mk(TokRParen, ")"), nil
	case '{':
		l.read()
		return mk(TokLBrace, "{"), nil
	case '}':
		l.read()
		return mk(TokRBrace, "}"), nil
	case ';':
		l.read()
		return mk(TokSemicolon, ";"), nil
	case '+':
		l.read()
		return mk(TokPlus, "+"), nil
	case '-':
		l.read()
		return mk(TokMinus, "-"), nil
	case '*':
		l.read()
		return mk(TokStar, "*"), nil
	case '/':
		// Comments were consumed in skipWhitespace; this is division.
		l.read()
		return mk(TokSlash, "/"), nil
	case '=':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return mk(TokEqualEqual, "=="), nil
		}
		return mk(TokEqual, "="), nil
	case '!':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return mk(TokBangEqual, "!="), nil
		}
		return mk(TokBang, "!"), nil
	case '<':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return mk(TokLessEqual, "<="), nil
		}
		return mk(TokLess, "<"), nil
	case '>':
		l.read()
		if !l.eof && l.ch == '=' {
			l.read()
			return mk(TokGreaterEqual, ">="), nil
		}
		return mk(TokGreater, ">"), nil
	case '"':
		lit, err := l.readString()
		return mk(TokString, lit), err

	default:
		if isIdentStart(l.ch) {
			lit := l.readIdent()
			if kind, ok := keywords[lit]; ok {
				return mk(kind, lit), nil
			}

			return mk(TokIdent, lit), nil
		}

		if unicode.IsDigit(l.ch) {
			return mk(TokNumber, l.readNumber()), nil
		}

		return Token{}, l.errorf("unexpected character %q", l.ch)
	}
}

// read reads the next character from the source.
func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}

	if ch == '\n' {
		l.pos.line++
		l.pos.col = 0
	} else {
		l.pos.col++
	}

	l.ch = ch
}

// peek returns the next character from the source without consuming it.
func (l *lexer) peek() rune {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0
	}

	_ = l.r.UnreadRune()
	return ch
}

// skipWhitespace skips whitespace characters and comments.
func (l *lexer) skipWhitespace() {
	for {
		for unicode.IsSpace(l.ch) {
			l.read()
			if l.eof {
				return
			}
		}

		if !l.opt.DisableComments && l.ch == '/' {
			// Support // comments.
			next := l.peek()
			if next == '/' {
				l.read()
				l.read()
				for l.ch != '\n' && !l.eof {
					l.read()
				}
				continue
			}

			// Support /* */ comments.
			if next == '*' {
				l.read()
				l.read()
				for {
					if l.eof {
						return
					}
					if l.ch == '*' && l.peek() == '/' {
						l.read()
						l.read()
						break
					}
					l.read()
				}
				continue
			}
		}
		break
	}
}

// readIdent reads an identifier from the source.
func (l *lexer) readIdent() string {
	var b strings.Builder
	for isIdentPart(l.ch) {
		b.WriteRune(l.ch)
		l.read()
		if l.eof {
			break
		}
	}

	return b.String()
}

// readNumber reads a number literal: digits with an optional fraction.
func (l *lexer) readNumber() string {
	var b strings.Builder
	for unicode.IsDigit(l.ch) {
		b.WriteRune(l.ch)
		l.read()
		if l.eof {
			return b.String()
		}
	}

	// A '.' is part of the number only when digits follow it.
	if l.ch == '.' && unicode.IsDigit(l.peek()) {
		b.WriteRune(l.ch)
		l.read()
		for !l.eof && unicode.IsDigit(l.ch) {
			b.WriteRune(l.ch)
			l.read()
		}
	}

	return b.String()
}

// readString reads a string literal from the source.
func (l *lexer) readString() (string, error) {
	l.read() // consume opening quote
	var b strings.Builder
	for {
		if l.eof {
			return "", l.errorf("unterminated string")
		}

		if l.ch == '"' {
			l.read()
			break
		}

		// Handle escaped characters.
		if l.ch == '\\' {
			next := l.peek()
			if next == '\\' || next == '"' {
				l.read()
				b.WriteRune(l.ch)
				l.read()
				continue
			}
		}
		b.WriteRune(l.ch)
		l.read()
	}

	return b.String(), nil
}

// errorf formats an error message and returns an error.
func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrLex, l.pos.line, l.pos.col, fmt.Sprintf(format, args...))
}

// isIdentStart checks if a character is a valid start of an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentPart checks if a character is a valid part of an identifier.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
