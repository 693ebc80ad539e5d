// Package diag collects the lex and parse errors produced by one pass over
// the source. Each pass returns its Diagnostics next to its result; callers
// decide what to do with them.
package diag

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ostnam/glox/pkg/tokens"
)

type Kind uint8

const (
	LexError Kind = iota
	ParseError
)

func (k Kind) String() string {
	return []string{"LexError", "ParseError"}[k]
}

type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string
	Message string
}

// Error renders the diagnostic as "[line N] Error<where>: <message>".
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

type Diagnostics []Diagnostic

// Lex records a scanner error on the given line.
func (ds *Diagnostics) Lex(line int, msg string) {
	*ds = append(*ds, Diagnostic{Kind: LexError, Line: line, Message: msg})
}

// AtToken records a parse error located at tok.
func (ds *Diagnostics) AtToken(tok tokens.Token, msg string) {
	*ds = append(*ds, Diagnostic{
		Kind:    ParseError,
		Line:    tok.Line,
		Where:   Where(tok),
		Message: msg,
	})
}

// Where is the location context of a parse error: " at end" for the EOF
// token, " at '<lexeme>'" otherwise.
func Where(tok tokens.Token) string {
	if tok.Type == tokens.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

// Err folds every diagnostic into one error, or returns nil when there are
// none.
func (ds Diagnostics) Err() error {
	var result *multierror.Error
	for _, d := range ds {
		result = multierror.Append(result, d)
	}
	if result != nil {
		result.ErrorFormat = listFormat
	}
	return result.ErrorOrNil()
}

func listFormat(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}
