package ast

import (
	"github.com/ostnam/glox/pkg/tokens"
)

// Expr is implemented by the four node types of the expression grammar:
// *Literal, *Grouping, *Unary and *Binary. The set is closed; consumers
// switch over it exhaustively.
type Expr interface {
	exprNode()
}

// AST node for literal values
type Literal struct {
	Value LiteralValue
}

// AST node for expressions between parens
type Grouping struct {
	Inner Expr
}

// AST node for unary operations, Op is either ! or -
type Unary struct {
	Op      tokens.Token
	Operand Expr
}

// AST node for binary operations
type Binary struct {
	Lhs Expr
	Op  tokens.Token
	Rhs Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}

type LiteralKind uint8

const (
	NumberLit LiteralKind = iota
	StringLit
	TrueLit
	FalseLit
	NilLit
)

func (self LiteralKind) String() string {
	return []string{"Number", "String", "True", "False", "Nil"}[self]
}

// LiteralValue holds the value of a Literal node. Num is set for NumberLit,
// Str for StringLit.
type LiteralValue struct {
	Kind LiteralKind
	Num  float64
	Str  string
}

func NumberValue(n float64) LiteralValue {
	return LiteralValue{Kind: NumberLit, Num: n}
}

func StringValue(s string) LiteralValue {
	return LiteralValue{Kind: StringLit, Str: s}
}

func BoolValue(b bool) LiteralValue {
	if b {
		return LiteralValue{Kind: TrueLit}
	}
	return LiteralValue{Kind: FalseLit}
}

func NilValue() LiteralValue {
	return LiteralValue{Kind: NilLit}
}
