package scanner

import (
	"strconv"
	"unicode"

	"github.com/ostnam/glox/pkg/diag"
	"github.com/ostnam/glox/pkg/tokens"
	"github.com/ostnam/glox/pkg/utils"
)

// Scan turns source into tokens, left to right in a single pass. The result
// always ends with exactly one EOF token, even when errors were reported.
func Scan(source string) ([]tokens.Token, diag.Diagnostics) {
	s := &scanner{
		src:  utils.NewStream([]rune(source)),
		line: 1,
	}
	for !s.src.IsAtEnd() {
		s.start = s.src.Pos()
		s.startLine = s.line
		s.scanToken()
	}
	s.toks = append(s.toks, tokens.Token{Type: tokens.EOF, Line: s.line})
	return s.toks, s.diags
}

type scanner struct {
	src       *utils.Stream[rune]
	start     int
	startLine int
	line      int
	toks      []tokens.Token
	diags     diag.Diagnostics
}

func (s *scanner) scanToken() {
	c, _ := s.src.Advance()
	switch c {
	case '(':
		s.addToken(tokens.LeftParen, nil)
	case ')':
		s.addToken(tokens.RightParen, nil)
	case '{':
		s.addToken(tokens.LeftBrace, nil)
	case '}':
		s.addToken(tokens.RightBrace, nil)
	case ',':
		s.addToken(tokens.Comma, nil)
	case '.':
		s.addToken(tokens.Dot, nil)
	case '-':
		s.addToken(tokens.Minus, nil)
	case '+':
		s.addToken(tokens.Plus, nil)
	case ';':
		s.addToken(tokens.Semicolon, nil)
	case '*':
		s.addToken(tokens.Star, nil)
	case '!':
		s.addOneOrTwo(tokens.Bang, tokens.BangEql)
	case '=':
		s.addOneOrTwo(tokens.Eql, tokens.EqlEql)
	case '<':
		s.addOneOrTwo(tokens.Less, tokens.LessEql)
	case '>':
		s.addOneOrTwo(tokens.Greater, tokens.GreaterEql)
	case '/':
		if s.matchRune('/') {
			s.consumeRestOfLine()
		} else {
			s.addToken(tokens.Slash, nil)
		}
	case '"':
		s.scanString()
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.diags.Lex(s.line, "Unexpected character.")
		}
	}
}

// addOneOrTwo emits two if the next character is '=', one otherwise.
func (s *scanner) addOneOrTwo(one, two tokens.TokType) {
	if s.matchRune('=') {
		s.addToken(two, nil)
		return
	}
	s.addToken(one, nil)
}

// consumeRestOfLine stops before the newline so that the line counter still
// sees it.
func (s *scanner) consumeRestOfLine() {
	for {
		c, ok := s.src.Peek()
		if !ok || c == '\n' {
			return
		}
		s.src.Advance()
	}
}

func (s *scanner) scanString() {
	for {
		c, ok := s.src.Peek()
		if !ok {
			s.diags.Lex(s.line, "Unterminated string.")
			return
		}
		if c == '"' {
			break
		}
		if c == '\n' {
			s.line++
		}
		s.src.Advance()
	}
	value := string(s.src.Slice(s.start+1, s.src.Pos()))
	s.src.Advance()
	s.addToken(tokens.Literal, tokens.StringPayload(value))
}

func (s *scanner) scanNumber() {
	s.consumeDigits()
	// A '.' belongs to the number only when a digit follows it.
	if dot, _ := s.src.Peek(); dot == '.' {
		if next, ok := s.src.PeekAt(1); ok && isDigit(next) {
			s.src.Advance()
			s.consumeDigits()
		}
	}
	// The lexeme is always well formed, so the only error ParseFloat can
	// return is ErrRange, with n set to +Inf.
	n, _ := strconv.ParseFloat(s.lexeme(), 64)
	s.addToken(tokens.Literal, tokens.NumberPayload(n))
}

func (s *scanner) consumeDigits() {
	for s.src.Match(isDigit) {
	}
}

func (s *scanner) scanIdentifier() {
	for s.src.Match(isAlphaNumeric) {
	}
	text := s.lexeme()
	if typ, isKeyword := tokens.LookupKeyword(text); isKeyword {
		s.addToken(typ, nil)
		return
	}
	s.addToken(tokens.Literal, tokens.IdentifierPayload(text))
}

func (s *scanner) matchRune(want rune) bool {
	return s.src.Match(func(c rune) bool { return c == want })
}

func (s *scanner) lexeme() string {
	return string(s.src.Slice(s.start, s.src.Pos()))
}

func (s *scanner) addToken(typ tokens.TokType, literal *tokens.LiteralPayload) {
	s.toks = append(s.toks, tokens.Token{
		Type:    typ,
		Lexeme:  s.lexeme(),
		Literal: literal,
		Line:    s.startLine,
	})
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
