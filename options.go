package lox

// DefaultMaxDepth is the expression nesting depth limit applied when
// ParseOptions.MaxDepth is zero. It bounds parser recursion on
// pathological input such as thousands of nested parentheses.
const DefaultMaxDepth = 200

// ParseOptions controls lexing and parsing behavior.
type ParseOptions struct {
	// DisableComments disables // and /* */ comments.
	DisableComments bool
	// MaxDepth overrides the expression nesting depth limit.
	// Zero selects DefaultMaxDepth.
	MaxDepth int
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation string for nested blocks (default is four spaces).
	Indent string
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{MaxDepth: DefaultMaxDepth}
	}

	out := *o
	if out.MaxDepth <= 0 {
		out.MaxDepth = DefaultMaxDepth
	}

	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "    "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "    "
	}

	return out
}
