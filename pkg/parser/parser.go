package parser

import (
	"errors"
	"slices"

	"github.com/ostnam/glox/pkg/ast"
	"github.com/ostnam/glox/pkg/diag"
	. "github.com/ostnam/glox/pkg/tokens"
	"github.com/ostnam/glox/pkg/utils"
)

// MaxDepth bounds how deep the parsed tree may grow, through nested
// groupings, unary operators or operator chains, before the parser gives up.
const MaxDepth = 256

// errParse unwinds the recursive descent once a diagnostic was recorded.
var errParse = errors.New("parse error")

// Top-level parsing function. The input is expected to come from
// scanner.Scan, so that it ends with an EOF token; one is added otherwise.
// The returned expression is nil whenever the diagnostics are not empty.
func Parse(toks []Token) (ast.Expr, diag.Diagnostics) {
	p := newParser(toks)
	expr, err := p.expression()
	if err == nil && !p.isAtEnd() {
		err = p.error(p.peek(), "Expect end of expression.")
	}
	if err != nil {
		return nil, p.diags
	}
	return expr, p.diags
}

type parser struct {
	toks  *utils.Stream[Token]
	depth int
	diags diag.Diagnostics
}

func newParser(toks []Token) *parser {
	if len(toks) == 0 || toks[len(toks)-1].Type != EOF {
		line := 1
		if len(toks) > 0 {
			line = toks[len(toks)-1].Line
		}
		toks = append(slices.Clip(toks), Token{Type: EOF, Line: line})
	}
	return &parser{toks: utils.NewStream(toks)}
}

// expression → equality
func (p *parser) expression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.equality()
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *parser) equality() (ast.Expr, error) {
	return p.leftAssoc(p.comparison, BangEql, EqlEql)
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *parser) comparison() (ast.Expr, error) {
	return p.leftAssoc(p.term, Greater, GreaterEql, Less, LessEql)
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *parser) term() (ast.Expr, error) {
	return p.leftAssoc(p.factor, Minus, Plus)
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *parser) factor() (ast.Expr, error) {
	return p.leftAssoc(p.unary, Slash, Star)
}

// leftAssoc parses operand ( op operand )*, folding every match into a
// Binary node whose left side is everything parsed so far.
func (p *parser) leftAssoc(operand func() (ast.Expr, error), ops ...TokType) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	// every fold deepens the tree by one level, on top of the chain built by
	// the operand's own precedence level
	folds := 0
	defer func() { p.depth -= folds }()
	for spine := leftSpine(expr); folds < spine; folds++ {
		if err := p.enter(); err != nil {
			return nil, err
		}
	}
	for p.match(ops...) {
		op := p.previous()
		if err := p.enter(); err != nil {
			return nil, err
		}
		folds++
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Lhs: expr, Op: op, Rhs: rhs}
	}
	return expr, nil
}

// leftSpine counts the Binary nodes along the left edge of expr.
func leftSpine(expr ast.Expr) int {
	n := 0
	for bin, ok := expr.(*ast.Binary); ok; bin, ok = bin.Lhs.(*ast.Binary) {
		n++
	}
	return n
}

// unary → ( "!" | "-" ) unary | primary
func (p *parser) unary() (ast.Expr, error) {
	if !p.match(Bang, Minus) {
		return p.primary()
	}
	op := p.previous()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Operand: operand}, nil
}

// primary → "false" | "true" | "nil" | NUMBER | STRING | "(" expression ")"
func (p *parser) primary() (ast.Expr, error) {
	switch {
	case p.match(False):
		return &ast.Literal{Value: ast.BoolValue(false)}, nil
	case p.match(True):
		return &ast.Literal{Value: ast.BoolValue(true)}, nil
	case p.match(Nil):
		return &ast.Literal{Value: ast.NilValue()}, nil
	}

	// Identifiers share the Literal kind but have no meaning without
	// variables, so they fall through to the error below.
	if next := p.peek(); next.Type == Literal && next.Literal != nil {
		switch next.Literal.Kind {
		case String:
			p.advance()
			return &ast.Literal{Value: ast.StringValue(next.Literal.Str)}, nil
		case Number:
			p.advance()
			return &ast.Literal{Value: ast.NumberValue(next.Literal.Num)}, nil
		}
	}

	if p.match(LeftParen) {
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil
	}

	return nil, p.error(p.peek(), "Expect expression.")
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return p.error(p.peek(), "Expression nested too deeply.")
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) consume(typ TokType, msg string) (Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return Token{}, p.error(p.peek(), msg)
}

func (p *parser) error(tok Token, msg string) error {
	p.diags.AtToken(tok, msg)
	return errParse
}

func (p *parser) match(types ...TokType) bool {
	return p.toks.Match(func(tok Token) bool {
		return tok.Type != EOF && slices.Contains(types, tok.Type)
	})
}

func (p *parser) check(typ TokType) bool {
	return !p.isAtEnd() && p.peek().Type == typ
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.toks.Advance()
	}
	return p.previous()
}

func (p *parser) previous() Token {
	tok, _ := p.toks.Previous()
	return tok
}

// peek never runs off the end: advance stops at the EOF token.
func (p *parser) peek() Token {
	tok, _ := p.toks.Peek()
	return tok
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// Advances the parsing state until the probable beginning of the next
// statement, or the end of the token stream. Panic-mode recovery only makes
// sense once there are statements to resume at, so nothing in the
// expression grammar calls it.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == Semicolon {
			return
		}
		switch p.peek().Type {
		case Class, Fun, Var, For, If, While, Print, Return:
			return
		}
		p.advance()
	}
}
