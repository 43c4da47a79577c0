package lox

import (
	"errors"
	"fmt"
)

var (
	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")
)

// ErrorKind classifies a parse failure.
type ErrorKind string

const (
	// ErrorUnexpectedToken indicates a token of one kind where another was required.
	ErrorUnexpectedToken ErrorKind = "unexpected_token"
	// ErrorExpectedExpression indicates a token that cannot start an expression.
	ErrorExpectedExpression ErrorKind = "expected_expression"
	// ErrorInvalidAssignmentTarget indicates an assignment whose left side is not an identifier.
	ErrorInvalidAssignmentTarget ErrorKind = "invalid_assignment_target"
	// ErrorUnclosedGrouping indicates a parenthesized expression missing its ')'.
	ErrorUnclosedGrouping ErrorKind = "unclosed_grouping"
	// ErrorUnclosedBlock indicates a block missing its '}' before end of input.
	ErrorUnclosedBlock ErrorKind = "unclosed_block"
	// ErrorUnexpectedEnd indicates consumption attempted past end of input.
	ErrorUnexpectedEnd ErrorKind = "unexpected_end"
	// ErrorNestingTooDeep indicates an expression exceeding the nesting depth limit.
	ErrorNestingTooDeep ErrorKind = "nesting_too_deep"
)

// ParseError is a recorded syntax error carrying the offending token.
type ParseError struct {
	Message string    `json:"message" yaml:"message"` // Human-readable description
	Kind    ErrorKind `json:"kind" yaml:"kind"`       // Error classification
	Token   Token     `json:"token" yaml:"token"`     // Offending token, the EOF token at end of input
	Line    int       `json:"line" yaml:"line"`       // Line number of the offending token
	Col     int       `json:"col" yaml:"col"`         // Column number of the offending token
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at %d:%d: %s", ErrParse, e.Line, e.Col, e.Message)
}

// Unwrap makes errors.Is(err, ErrParse) hold for any ParseError.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// newParseError builds a ParseError positioned at tok.
func newParseError(tok Token, kind ErrorKind, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg, Token: tok, Line: tok.Line, Col: tok.Col}
}
