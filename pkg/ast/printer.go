package ast

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Print renders expr as a fully parenthesized s-expression, e.g.
// "(* (group (+ 1 2)) 3)".
func Print(expr Expr) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func writeExpr(b *strings.Builder, expr Expr) {
	switch node := expr.(type) {
	case *Literal:
		b.WriteString(node.Value.String())
	case *Grouping:
		parenthesize(b, "group", node.Inner)
	case *Unary:
		parenthesize(b, node.Op.Lexeme, node.Operand)
	case *Binary:
		parenthesize(b, node.Op.Lexeme, node.Lhs, node.Rhs)
	default:
		panic(fmt.Sprintf("BUG: unknown AST node type: %T", expr))
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteByte(' ')
		writeExpr(b, expr)
	}
	b.WriteByte(')')
}

// String renders the literal the way it appears in printed trees: numbers in
// plain decimal, strings in double quotes.
func (v LiteralValue) String() string {
	switch v.Kind {
	case NumberLit:
		return FormatNumber(v.Num)
	case StringLit:
		return `"` + v.Str + `"`
	case TrueLit:
		return "true"
	case FalseLit:
		return "false"
	default:
		return "nil"
	}
}

// FormatNumber is the shortest decimal form of n that round-trips, never in
// exponent notation: 123, 0.5, 1000000000000000000000.
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Dump writes an indented tree of expr, one node per line.
func Dump(w io.Writer, expr Expr) {
	dump(w, expr, 0)
}

func dump(w io.Writer, expr Expr, indent int) {
	const indentLvl = 3
	if indent > 0 {
		fmt.Fprint(w, strings.Repeat(" ", indent-1)+"| ")
	}
	switch node := expr.(type) {
	case *Binary:
		fmt.Fprintf(w, "Binary: %s\n", node.Op.Lexeme)
		dump(w, node.Lhs, indent+indentLvl)
		dump(w, node.Rhs, indent+indentLvl)
	case *Unary:
		fmt.Fprintf(w, "Unary: %s\n", node.Op.Lexeme)
		dump(w, node.Operand, indent+indentLvl)
	case *Grouping:
		fmt.Fprintln(w, "Grouping")
		dump(w, node.Inner, indent+indentLvl)
	case *Literal:
		fmt.Fprintf(w, "Literal: %s\n", node.Value)
	default:
		fmt.Fprintf(w, "unknown node type: %T\n", expr)
	}
}
