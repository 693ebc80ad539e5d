package tokens

import (
	"fmt"
	"strconv"
)

type Token struct {
	Type    TokType
	Lexeme  string
	Literal *LiteralPayload
	Line    int
}

// String renders a token the way it is listed by `glox --tokens`.
func (tok Token) String() string {
	if tok.Literal == nil {
		return fmt.Sprintf("%s %s", tok.Type, tok.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", tok.Type, tok.Lexeme, tok.Literal)
}

type TokType int8

const (
	// single char tokens
	LeftParen TokType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	// 1 or 2 char tokens
	Bang
	BangEql
	Eql
	EqlEql
	Greater
	GreaterEql
	Less
	LessEql
	// strings, numbers and identifiers; the payload tells them apart
	Literal
	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
	EOF
)

var tokTypeNames = [...]string{
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	LeftBrace:  "LeftBrace",
	RightBrace: "RightBrace",
	Comma:      "Comma",
	Dot:        "Dot",
	Minus:      "Minus",
	Plus:       "Plus",
	Semicolon:  "Semicolon",
	Slash:      "Slash",
	Star:       "Star",
	Bang:       "Bang",
	BangEql:    "BangEql",
	Eql:        "Eql",
	EqlEql:     "EqlEql",
	Greater:    "Greater",
	GreaterEql: "GreaterEql",
	Less:       "Less",
	LessEql:    "LessEql",
	Literal:    "Literal",
	And:        "And",
	Class:      "Class",
	Else:       "Else",
	False:      "False",
	Fun:        "Fun",
	For:        "For",
	If:         "If",
	Nil:        "Nil",
	Or:         "Or",
	Print:      "Print",
	Return:     "Return",
	Super:      "Super",
	This:       "This",
	True:       "True",
	Var:        "Var",
	While:      "While",
	EOF:        "EOF",
}

func (t TokType) String() string {
	if t < 0 || int(t) >= len(tokTypeNames) {
		return "TokType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokTypeNames[t]
}

type PayloadKind uint8

const (
	Identifier PayloadKind = iota
	String
	Number
)

// LiteralPayload is attached to every Literal token. Only the field matching
// Kind is meaningful: Str for identifiers and strings, Num for numbers.
type LiteralPayload struct {
	Kind PayloadKind
	Str  string
	Num  float64
}

func IdentifierPayload(name string) *LiteralPayload {
	return &LiteralPayload{Kind: Identifier, Str: name}
}

func StringPayload(s string) *LiteralPayload {
	return &LiteralPayload{Kind: String, Str: s}
}

func NumberPayload(n float64) *LiteralPayload {
	return &LiteralPayload{Kind: Number, Num: n}
}

func (p *LiteralPayload) String() string {
	switch p.Kind {
	case Number:
		return strconv.FormatFloat(p.Num, 'f', -1, 64)
	default:
		return p.Str
	}
}

// Keywords is the fixed table of reserved words.
var Keywords = map[string]TokType{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

func LookupKeyword(word string) (TokType, bool) {
	t, ok := Keywords[word]
	return t, ok
}
