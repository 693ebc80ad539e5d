package eval

import (
	"strconv"

	"github.com/ostnam/glox/pkg/ast"
)

// Value is a runtime value: one of Num, Str, Bool or Nil.
type Value interface {
	value()
}

// Runtime numeric value
type Num struct {
	Val float64
}

// Runtime string value
type Str struct {
	Val string
}

// Runtime boolean value
type Bool struct {
	Val bool
}

// The lox nil
type Nil struct {
}

func (Num) value()  {}
func (Str) value()  {}
func (Bool) value() {}
func (Nil) value()  {}

// IsTruthy reports whether val counts as true: nil and false don't,
// everything else (including 0 and "") does.
func IsTruthy(val Value) bool {
	switch val := val.(type) {
	case Nil:
		return false
	case Bool:
		return val.Val
	default:
		return true
	}
}

// Equal compares two values without any coercion. Values of different kinds
// are never equal; numbers follow IEEE-754, so NaN is not equal to itself.
func Equal(lhs, rhs Value) bool {
	switch lhs := lhs.(type) {
	case Num:
		rhs, ok := rhs.(Num)
		return ok && lhs.Val == rhs.Val
	case Str:
		rhs, ok := rhs.(Str)
		return ok && lhs.Val == rhs.Val
	case Bool:
		rhs, ok := rhs.(Bool)
		return ok && lhs.Val == rhs.Val
	case Nil:
		_, ok := rhs.(Nil)
		return ok
	default:
		return false
	}
}

// Stringify is the user-facing rendering of a value: numbers in plain
// decimal, strings without quotes.
func Stringify(val Value) string {
	switch val := val.(type) {
	case Num:
		return ast.FormatNumber(val.Val)
	case Str:
		return val.Val
	case Bool:
		return strconv.FormatBool(val.Val)
	default:
		return "nil"
	}
}
