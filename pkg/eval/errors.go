package eval

import (
	"fmt"

	"github.com/ostnam/glox/pkg/tokens"
)

type RunTimeErrorKind uint8

const (
	TypeError RunTimeErrorKind = iota
	DivisionByZero
)

func (self RunTimeErrorKind) String() string {
	return []string{"TypeError", "DivisionByZero"}[self]
}

// RunTimeError aborts an evaluation. Token is the operator that failed, so
// the error can be reported with its line and lexeme.
type RunTimeError struct {
	Kind  RunTimeErrorKind
	Token tokens.Token
	Msg   string
}

func (self *RunTimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error at '%s': %s", self.Token.Line, self.Token.Lexeme, self.Msg)
}

func typeError(op tokens.Token, msg string) *RunTimeError {
	return &RunTimeError{Kind: TypeError, Token: op, Msg: msg}
}
