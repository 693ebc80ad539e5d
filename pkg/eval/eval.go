package eval

import (
	"fmt"

	"github.com/ostnam/glox/pkg/ast"
	"github.com/ostnam/glox/pkg/tokens"
)

// DivisionPolicy decides what dividing a number by zero evaluates to.
type DivisionPolicy uint8

const (
	// DivideToNil makes x / 0 evaluate to nil.
	DivideToNil DivisionPolicy = iota
	// DivideError makes x / 0 a runtime error.
	DivideError
	// DivideIEEE keeps the IEEE-754 result: +Inf, -Inf or NaN.
	DivideIEEE
)

var divisionPolicyNames = []string{"nil", "error", "ieee"}

func (self DivisionPolicy) String() string {
	return divisionPolicyNames[self]
}

// ParseDivisionPolicy is the inverse of DivisionPolicy.String.
func ParseDivisionPolicy(name string) (DivisionPolicy, error) {
	for i, n := range divisionPolicyNames {
		if n == name {
			return DivisionPolicy(i), nil
		}
	}
	return DivideToNil, fmt.Errorf("unknown division policy %q, want one of %v", name, divisionPolicyNames)
}

// Interpreter walks an expression tree and computes its value. It holds no
// state between calls to Evaluate besides its options.
type Interpreter struct {
	division DivisionPolicy
}

func New(division DivisionPolicy) *Interpreter {
	return &Interpreter{division: division}
}

// Evaluate computes the value of expr. The first runtime error aborts the
// whole evaluation and is returned as a *RunTimeError.
func (in *Interpreter) Evaluate(expr ast.Expr) (Value, error) {
	switch node := expr.(type) {
	case *ast.Literal:
		return literalValue(node.Value), nil

	case *ast.Grouping:
		return in.Evaluate(node.Inner)

	case *ast.Unary:
		operand, err := in.Evaluate(node.Operand)
		if err != nil {
			return nil, err
		}
		return in.unary(node.Op, operand)

	case *ast.Binary:
		lhs, err := in.Evaluate(node.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := in.Evaluate(node.Rhs)
		if err != nil {
			return nil, err
		}
		return in.binary(node.Op, lhs, rhs)

	default:
		return nil, fmt.Errorf("BUG: unmatched AST node type during evaluation: %T", expr)
	}
}

func literalValue(lit ast.LiteralValue) Value {
	switch lit.Kind {
	case ast.NumberLit:
		return Num{Val: lit.Num}
	case ast.StringLit:
		return Str{Val: lit.Str}
	case ast.TrueLit:
		return Bool{Val: true}
	case ast.FalseLit:
		return Bool{Val: false}
	default:
		return Nil{}
	}
}

func (in *Interpreter) unary(op tokens.Token, operand Value) (Value, error) {
	switch op.Type {
	case tokens.Bang:
		return Bool{Val: !IsTruthy(operand)}, nil
	case tokens.Minus:
		n, ok := operand.(Num)
		if !ok {
			return nil, typeError(op, "Operand must be a number.")
		}
		return Num{Val: -n.Val}, nil
	default:
		return nil, fmt.Errorf("BUG: unhandled unary operator in eval: %s", op.Type)
	}
}

func (in *Interpreter) binary(op tokens.Token, lhs, rhs Value) (Value, error) {
	switch op.Type {
	case tokens.EqlEql:
		return Bool{Val: Equal(lhs, rhs)}, nil
	case tokens.BangEql:
		return Bool{Val: !Equal(lhs, rhs)}, nil
	case tokens.Plus:
		return plus(op, lhs, rhs)
	}

	l, r, err := checkNumOperands(op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch op.Type {
	case tokens.Minus:
		return Num{Val: l - r}, nil
	case tokens.Star:
		return Num{Val: l * r}, nil
	case tokens.Slash:
		return in.divide(op, l, r)
	case tokens.Greater:
		return Bool{Val: l > r}, nil
	case tokens.GreaterEql:
		return Bool{Val: l >= r}, nil
	case tokens.Less:
		return Bool{Val: l < r}, nil
	case tokens.LessEql:
		return Bool{Val: l <= r}, nil
	default:
		return nil, fmt.Errorf("BUG: unhandled binary operator in eval: %s", op.Type)
	}
}

// plus adds two numbers or concatenates two strings; nothing else mixes.
func plus(op tokens.Token, lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case Num:
		if r, ok := rhs.(Num); ok {
			return Num{Val: l.Val + r.Val}, nil
		}
	case Str:
		if r, ok := rhs.(Str); ok {
			return Str{Val: l.Val + r.Val}, nil
		}
	}
	return nil, typeError(op, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) divide(op tokens.Token, l, r float64) (Value, error) {
	if r != 0 {
		return Num{Val: l / r}, nil
	}
	switch in.division {
	case DivideError:
		return nil, &RunTimeError{Kind: DivisionByZero, Token: op, Msg: "Division by zero."}
	case DivideIEEE:
		return Num{Val: l / r}, nil
	default:
		return Nil{}, nil
	}
}

func checkNumOperands(op tokens.Token, lhs, rhs Value) (float64, float64, error) {
	l, lok := lhs.(Num)
	r, rok := rhs.(Num)
	if !lok || !rok {
		return 0, 0, typeError(op, "Operands must be numbers.")
	}
	return l.Val, r.Val, nil
}
