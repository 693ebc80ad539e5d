// Package driver runs lox source through the scanner, the parser and the
// evaluator, and reports what each pass produced.
package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/ostnam/glox/pkg/ast"
	"github.com/ostnam/glox/pkg/config"
	"github.com/ostnam/glox/pkg/eval"
	"github.com/ostnam/glox/pkg/logging"
	"github.com/ostnam/glox/pkg/parser"
	"github.com/ostnam/glox/pkg/scanner"
	"github.com/ostnam/glox/pkg/tokens"
)

// Exit statuses, following sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitConfig   = 78
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type Runner struct {
	cfg    config.Config
	interp *eval.Interpreter
	stdout io.Writer
	stderr io.Writer

	errColor *color.Color
	valColor *color.Color
}

// New returns a Runner printing values to stdout and diagnostics to stderr.
func New(cfg config.Config, stdout, stderr io.Writer) *Runner {
	r := &Runner{
		cfg:      cfg,
		interp:   eval.New(cfg.DivisionPolicy()),
		stdout:   stdout,
		stderr:   stderr,
		errColor: color.New(color.FgRed),
		valColor: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.errColor, r.valColor} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// RunFile runs the whole file at path once. The error is only set when the
// file could not be read.
func (r *Runner) RunFile(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return ExitNoInput, errors.Wrapf(err, "reading %q", path)
	}
	logging.Debugf("running %s (%d bytes)", path, len(content))
	return r.RunSource(string(content)), nil
}

// RunSource runs src through the whole pipeline and returns the exit status
// it deserves: ExitDataErr after a lex or parse error, ExitSoftware after a
// runtime error, ExitOK otherwise.
func (r *Runner) RunSource(src string) int {
	toks, lexDiags := scanner.Scan(src)
	logging.Debugf("scanned %d tokens, %d errors", len(toks), len(lexDiags))
	if r.cfg.ShowTokens {
		r.listTokens(toks)
	}
	if r.cfg.Debug {
		fmt.Fprintln(r.stdout, "Tokens scanned:")
		dumper.Fdump(r.stdout, toks)
	}

	expr, parseDiags := parser.Parse(toks)
	if err := append(lexDiags, parseDiags...).Err(); err != nil {
		r.errColor.Fprintln(r.stderr, err.Error())
		return ExitDataErr
	}

	if r.cfg.Debug {
		fmt.Fprintln(r.stdout, "AST parsed:")
		ast.Dump(r.stdout, expr)
	}
	if r.cfg.PrintAST {
		fmt.Fprintln(r.stdout, ast.Print(expr))
	}
	if !r.cfg.Evaluate {
		return ExitOK
	}

	val, err := r.interp.Evaluate(expr)
	if err != nil {
		r.errColor.Fprintln(r.stderr, err.Error())
		return ExitSoftware
	}
	r.valColor.Fprintln(r.stdout, eval.Stringify(val))
	return ExitOK
}

func (r *Runner) listTokens(toks []tokens.Token) {
	for _, tok := range toks {
		fmt.Fprintf(r.stdout, "%4d %s\n", tok.Line, tok)
	}
}
