package lox

// TokenKind represents the kind of a lexical token.
type TokenKind string

// Token kinds.
const (
	TokEOF          TokenKind = "eof"        // End of input
	TokIdent        TokenKind = "identifier" // Identifier
	TokNumber       TokenKind = "number"     // Number literal
	TokString       TokenKind = "string"     // String literal
	TokTrue         TokenKind = "true"       // Keyword true
	TokFalse        TokenKind = "false"      // Keyword false
	TokNil          TokenKind = "nil"        // Keyword nil
	TokVar          TokenKind = "var"        // Keyword var
	TokPrint        TokenKind = "print"      // Keyword print
	TokEqual        TokenKind = "="          // Assignment operator
	TokEqualEqual   TokenKind = "=="         // Equality operator
	TokBangEqual    TokenKind = "!="         // Inequality operator
	TokLess         TokenKind = "<"          // Less-than operator
	TokLessEqual    TokenKind = "<="         // Less-or-equal operator
	TokGreater      TokenKind = ">"          // Greater-than operator
	TokGreaterEqual TokenKind = ">="         // Greater-or-equal operator
	TokPlus         TokenKind = "+"          // Addition operator
	TokMinus        TokenKind = "-"          // Subtraction / negation operator
	TokStar         TokenKind = "*"          // Multiplication operator
	TokSlash        TokenKind = "/"          // Division operator
	TokBang         TokenKind = "!"          // Logical not operator
	TokLParen       TokenKind = "("          // Left parenthesis
	TokRParen       TokenKind = ")"          // Right parenthesis
	TokLBrace       TokenKind = "{"          // Left brace
	TokRBrace       TokenKind = "}"          // Right brace
	TokSemicolon    TokenKind = ";"          // Semicolon
)

// Token represents a lexical token with its source position.
type Token struct {
	Lit  string    `json:"lit,omitempty" yaml:"lit,omitempty"` // Literal source text of the token
	Kind TokenKind `json:"kind" yaml:"kind"`                   // Kind of the token
	Line int       `json:"line" yaml:"line"`                   // Line number of the token, 1-based
	Col  int       `json:"col" yaml:"col"`                     // Column number of the token, 1-based
}

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]TokenKind{
	"true":  TokTrue,
	"false": TokFalse,
	"nil":   TokNil,
	"var":   TokVar,
	"print": TokPrint,
}
