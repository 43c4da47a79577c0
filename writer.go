package lox

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes a Program as canonical source to writer.
func Encode(w io.Writer, prog *Program, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent}
	if err := wr.writeProgram(prog); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Program as canonical source to a file.
func EncodeFile(path string, prog *Program, opt *FormatOptions) error {
	b, err := Format(prog, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Program as canonical source bytes. The output is stable:
// formatting already-formatted source is a no-op.
func Format(prog *Program, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, prog, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a Program to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation string
	cache  []string  // Cache of indentation strings
	level  int       // Current nesting level
}

// writeProgram writes top-level statements in source order.
func (w *writer) writeProgram(p *Program) error {
	for _, st := range p.Stmts {
		if err := w.writeStmt(st); err != nil {
			return err
		}
	}

	return nil
}

// writeStmt writes a single statement at the current nesting level.
func (w *writer) writeStmt(s Stmt) error {
	if err := w.writeIndent(); err != nil {
		return err
	}

	switch t := s.(type) {
	case *VarDecl:
		if err := w.writeString("var "); err != nil {
			return err
		}
		if err := w.writeString(t.Name.Lit); err != nil {
			return err
		}
		if t.Init != nil {
			if err := w.writeString(" = "); err != nil {
				return err
			}
			if err := w.writeExpr(t.Init); err != nil {
				return err
			}
		}
		return w.writeString(";\n")

	case *PrintStmt:
		if err := w.writeString("print "); err != nil {
			return err
		}
		if err := w.writeExpr(t.Expr); err != nil {
			return err
		}
		return w.writeString(";\n")

	case *ExprStmt:
		if err := w.writeExpr(t.Expr); err != nil {
			return err
		}
		return w.writeString(";\n")

	case *Block:
		if err := w.writeString("{\n"); err != nil {
			return err
		}
		w.level++
		for _, st := range t.Stmts {
			if err := w.writeStmt(st); err != nil {
				return err
			}
		}
		w.level--
		if err := w.writeIndent(); err != nil {
			return err
		}
		return w.writeString("}\n")

	default:
		return nil
	}
}

// writeExpr writes an expression without surrounding whitespace.
func (w *writer) writeExpr(e Expr) error {
	switch t := e.(type) {
	case *Literal:
		return w.writeValue(t.Value)

	case *Variable:
		return w.writeString(t.Name.Lit)

	case *Assign:
		if err := w.writeString(t.Name.Lit); err != nil {
			return err
		}
		if err := w.writeString(" = "); err != nil {
			return err
		}
		return w.writeExpr(t.Value)

	case *Binary:
		if err := w.writeExpr(t.Left); err != nil {
			return err
		}
		if err := w.writeString(" "); err != nil {
			return err
		}
		if err := w.writeString(string(t.Op.Kind)); err != nil {
			return err
		}
		if err := w.writeString(" "); err != nil {
			return err
		}
		return w.writeExpr(t.Right)

	case *Unary:
		if err := w.writeString(string(t.Op.Kind)); err != nil {
			return err
		}
		return w.writeExpr(t.Operand)

	case *Grouping:
		if err := w.writeString("("); err != nil {
			return err
		}
		if err := w.writeExpr(t.Inner); err != nil {
			return err
		}
		return w.writeString(")")

	default:
		return nil
	}
}

// writeValue writes a literal value.
func (w *writer) writeValue(v Value) error {
	switch v.Kind {
	case ValueNil:
		return w.writeString("nil")
	case ValueBool:
		if v.Bool {
			return w.writeString("true")
		}
		return w.writeString("false")
	case ValueNumber:
		return w.writeNumber(v.Num)
	case ValueString:
		return w.writeQuoted(v.Str)
	default:
		return nil
	}
}

// writeIndent writes the current indentation level to the writer.
func (w *writer) writeIndent() error {
	if w.level <= 0 {
		return nil
	}

	// Cache repeated indentation strings per nesting level.
	return w.writeString(w.indentFor(w.level))
}

// writeNumber writes a float64 value in plain decimal notation, which the
// lexer can always read back.
func (w *writer) writeNumber(v float64) error {
	var buf [32]byte
	b := strconv.AppendFloat(buf[:0], v, 'f', -1, 64)
	_, err := w.w.Write(b)

	return err
}

// writeQuoted writes a quoted string, escaping quotes and backslashes.
func (w *writer) writeQuoted(s string) error {
	if err := w.writeString("\""); err != nil {
		return err
	}

	if strings.ContainsAny(s, "\"\\") {
		s = strings.NewReplacer("\\", "\\\\", "\"", "\\\"").Replace(s)
	}
	if err := w.writeString(s); err != nil {
		return err
	}

	return w.writeString("\"")
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// indentFor returns the cached indentation string for a nesting level.
func (w *writer) indentFor(level int) string {
	if level <= 0 {
		return ""
	}

	if len(w.cache) <= level {
		w.cache = append(w.cache, make([]string, level-len(w.cache)+1)...)
	}
	if w.cache[level] == "" {
		// Cache computed indentation for this level.
		w.cache[level] = strings.Repeat(w.indent, level)
	}

	return w.cache[level]
}
