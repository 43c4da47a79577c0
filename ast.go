package lox

// ValueKind represents the kind of a literal value.
type ValueKind string

const (
	// ValueNil indicates the nil literal.
	ValueNil ValueKind = "nil"
	// ValueBool indicates a boolean literal.
	ValueBool ValueKind = "bool"
	// ValueNumber indicates a numeric literal.
	ValueNumber ValueKind = "number"
	// ValueString indicates a string literal.
	ValueString ValueKind = "string"
)

// Value is the literal value carried by a Literal expression.
type Value struct {
	Str  string    `json:"str,omitempty" yaml:"str,omitempty"`   // String value
	Kind ValueKind `json:"kind" yaml:"kind"`                     // Value kind
	Num  float64   `json:"num,omitempty" yaml:"num,omitempty"`   // Number value
	Bool bool      `json:"bool,omitempty" yaml:"bool,omitempty"` // Boolean value
}

// NilValue creates the nil Value.
func NilValue() Value {
	return Value{Kind: ValueNil}
}

// BoolValue creates a boolean Value.
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// NumberValue creates a numeric Value.
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// StringValue creates a string Value.
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// Expr is a parsed expression node. Each node owns its children
// exclusively; expression trees are finite and acyclic.
type Expr interface {
	expr()
}

// Literal represents a literal expression (true, false, nil, numbers, strings).
type Literal struct {
	Value Value `json:"value" yaml:"value"` // Literal value
}

// Variable represents a variable reference by name.
type Variable struct {
	Name Token `json:"name" yaml:"name"` // Identifier token
}

// Assign represents an assignment to a named variable.
type Assign struct {
	Value Expr  `json:"value" yaml:"value"` // Assigned expression
	Name  Token `json:"name" yaml:"name"`   // Target identifier token
}

// Binary represents a binary operator expression.
type Binary struct {
	Left  Expr  `json:"left" yaml:"left"`   // Left operand
	Right Expr  `json:"right" yaml:"right"` // Right operand
	Op    Token `json:"op" yaml:"op"`       // Operator token
}

// Unary represents a prefix operator expression.
type Unary struct {
	Operand Expr  `json:"operand" yaml:"operand"` // Operand expression
	Op      Token `json:"op" yaml:"op"`           // Operator token
}

// Grouping represents a parenthesized expression.
type Grouping struct {
	Inner Expr `json:"inner" yaml:"inner"` // Inner expression
}

func (*Literal) expr()  {}
func (*Variable) expr() {}
func (*Assign) expr()   {}
func (*Binary) expr()   {}
func (*Unary) expr()    {}
func (*Grouping) expr() {}

// Stmt is a parsed statement node.
type Stmt interface {
	stmt()
}

// ExprStmt represents an expression statement.
type ExprStmt struct {
	Expr Expr `json:"expr" yaml:"expr"` // Expression evaluated for effect
}

// PrintStmt represents a print statement.
type PrintStmt struct {
	Expr Expr `json:"expr" yaml:"expr"` // Printed expression
}

// VarDecl represents a variable declaration with optional initializer.
type VarDecl struct {
	Init Expr  `json:"init,omitempty" yaml:"init,omitempty"` // Initializer, nil when absent
	Name Token `json:"name" yaml:"name"`                     // Declared identifier token
}

// Block represents a brace-delimited statement sequence in source order.
type Block struct {
	Stmts []Stmt `json:"stmts" yaml:"stmts"` // Statements in source order
}

func (*ExprStmt) stmt()  {}
func (*PrintStmt) stmt() {}
func (*VarDecl) stmt()   {}
func (*Block) stmt()     {}

// Program is the parse result root: top-level statements in source order.
type Program struct {
	Stmts []Stmt `json:"stmts" yaml:"stmts"` // Top-level statements
}
