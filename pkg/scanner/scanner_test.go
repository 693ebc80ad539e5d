package scanner

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostnam/glox/pkg/diag"
	. "github.com/ostnam/glox/pkg/tokens"
)

func tok(typ TokType, lexeme string, line int) Token {
	return Token{Type: typ, Lexeme: lexeme, Line: line}
}

func num(lexeme string, n float64, line int) Token {
	return Token{Type: Literal, Lexeme: lexeme, Literal: NumberPayload(n), Line: line}
}

func str(lexeme string, line int) Token {
	return Token{Type: Literal, Lexeme: lexeme, Literal: StringPayload(strings.Trim(lexeme, `"`)), Line: line}
}

func ident(name string, line int) Token {
	return Token{Type: Literal, Lexeme: name, Literal: IdentifierPayload(name), Line: line}
}

func eof(line int) Token {
	return Token{Type: EOF, Line: line}
}

func TestScan(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "number",
			input: "123",
			want:  []Token{num("123", 123, 1), eof(1)},
		},
		{
			name:  "addition",
			input: "1+2",
			want:  []Token{num("1", 1, 1), tok(Plus, "+", 1), num("2", 2, 1), eof(1)},
		},
		{
			name:  "empty",
			input: "",
			want:  []Token{eof(1)},
		},
		{
			name:  "punctuation",
			input: "(){},.-+;*/",
			want: []Token{
				tok(LeftParen, "(", 1), tok(RightParen, ")", 1),
				tok(LeftBrace, "{", 1), tok(RightBrace, "}", 1),
				tok(Comma, ",", 1), tok(Dot, ".", 1), tok(Minus, "-", 1),
				tok(Plus, "+", 1), tok(Semicolon, ";", 1), tok(Star, "*", 1),
				tok(Slash, "/", 1), eof(1),
			},
		},
		{
			name:  "one or two char operators",
			input: "! != = == < <= > >=",
			want: []Token{
				tok(Bang, "!", 1), tok(BangEql, "!=", 1),
				tok(Eql, "=", 1), tok(EqlEql, "==", 1),
				tok(Less, "<", 1), tok(LessEql, "<=", 1),
				tok(Greater, ">", 1), tok(GreaterEql, ">=", 1),
				eof(1),
			},
		},
		{
			name:  "operator at end of input",
			input: "1 >",
			want:  []Token{num("1", 1, 1), tok(Greater, ">", 1), eof(1)},
		},
		{
			name:  "comment runs to end of line",
			input: "1 // 2 + 3\n4",
			want:  []Token{num("1", 1, 1), num("4", 4, 2), eof(2)},
		},
		{
			name:  "whitespace is discarded",
			input: " \t\r1\r\n\t2 ",
			want:  []Token{num("1", 1, 1), num("2", 2, 2), eof(2)},
		},
		{
			name:  "decimal number",
			input: "3.25",
			want:  []Token{num("3.25", 3.25, 1), eof(1)},
		},
		{
			name:  "trailing dot is not part of the number",
			input: "3.",
			want:  []Token{num("3", 3, 1), tok(Dot, ".", 1), eof(1)},
		},
		{
			name:  "dot followed by identifier",
			input: "3.x",
			want:  []Token{num("3", 3, 1), tok(Dot, ".", 1), ident("x", 1), eof(1)},
		},
		{
			name:  "leading dot is punctuation",
			input: ".5",
			want:  []Token{tok(Dot, ".", 1), num("5", 5, 1), eof(1)},
		},
		{
			name:  "string",
			input: `"a" + "b"`,
			want:  []Token{str(`"a"`, 1), tok(Plus, "+", 1), str(`"b"`, 1), eof(1)},
		},
		{
			name:  "empty string",
			input: `""`,
			want:  []Token{str(`""`, 1), eof(1)},
		},
		{
			name:  "multi-line string keeps its opening line",
			input: "\"a\nb\" 1",
			want: []Token{
				{Type: Literal, Lexeme: "\"a\nb\"", Literal: StringPayload("a\nb"), Line: 1},
				num("1", 1, 2),
				eof(2),
			},
		},
		{
			name:  "keywords",
			input: "and class else false for fun if nil or print return super this true var while",
			want: []Token{
				tok(And, "and", 1), tok(Class, "class", 1), tok(Else, "else", 1),
				tok(False, "false", 1), tok(For, "for", 1), tok(Fun, "fun", 1),
				tok(If, "if", 1), tok(Nil, "nil", 1), tok(Or, "or", 1),
				tok(Print, "print", 1), tok(Return, "return", 1), tok(Super, "super", 1),
				tok(This, "this", 1), tok(True, "true", 1), tok(Var, "var", 1),
				tok(While, "while", 1), eof(1),
			},
		},
		{
			name:  "identifiers",
			input: "orchid _tmp x1 nil_ay",
			want: []Token{
				ident("orchid", 1), ident("_tmp", 1), ident("x1", 1), ident("nil_ay", 1), eof(1),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ds := Scan(tc.input)
			require.Empty(t, ds)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Scan(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestScan_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Token
		diags diag.Diagnostics
	}{
		{
			name:  "unterminated string",
			input: `"unterminated`,
			want:  []Token{eof(1)},
			diags: diag.Diagnostics{{Kind: diag.LexError, Line: 1, Message: "Unterminated string."}},
		},
		{
			name:  "unterminated string reported at the final line",
			input: "1 \"abc\n\ndef",
			want:  []Token{num("1", 1, 1), eof(3)},
			diags: diag.Diagnostics{{Kind: diag.LexError, Line: 3, Message: "Unterminated string."}},
		},
		{
			name:  "scanning continues past unexpected characters",
			input: "1 @ 2\n#",
			want:  []Token{num("1", 1, 1), num("2", 2, 1), eof(2)},
			diags: diag.Diagnostics{
				{Kind: diag.LexError, Line: 1, Message: "Unexpected character."},
				{Kind: diag.LexError, Line: 2, Message: "Unexpected character."},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ds := Scan(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.diags, ds); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScan_SingleTrailingEOF(t *testing.T) {
	for _, input := range []string{"", "1", "1 +", "@", `"x`, "// only a comment"} {
		toks, _ := Scan(input)
		require.NotEmpty(t, toks)
		assert.Equal(t, EOF, toks[len(toks)-1].Type, input)
		for _, tok := range toks[:len(toks)-1] {
			assert.NotEqual(t, EOF, tok.Type, input)
		}
	}
}

// A token's line is one more than the number of newlines before its first
// character, and lines never decrease along the sequence.
func TestScan_LineNumbers(t *testing.T) {
	input := "1\n+ \"two\nlines\"\n\n// comment\n( 3.5 )\n"
	toks, ds := Scan(input)
	require.Empty(t, ds)

	offsets := []int{0, 2, 4, 28, 30, 34}
	require.Len(t, toks, len(offsets)+1)
	prev := 0
	for i, tok := range toks[:len(toks)-1] {
		want := 1 + strings.Count(input[:offsets[i]], "\n")
		assert.Equal(t, want, tok.Line, "token %d %q", i, tok.Lexeme)
		assert.GreaterOrEqual(t, tok.Line, prev)
		prev = tok.Line
	}
	assert.Equal(t, 7, toks[len(toks)-1].Line)
}

func TestScan_NoExponentNotation(t *testing.T) {
	toks, ds := Scan("1e3")
	require.Empty(t, ds)
	if diff := cmp.Diff([]Token{num("1", 1, 1), ident("e3", 1), eof(1)}, toks); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_HugeNumberOverflowsToInf(t *testing.T) {
	digits := "1" + strings.Repeat("0", 400)
	toks, ds := Scan(digits + " + 1")
	require.Empty(t, ds)
	require.Len(t, toks, 4)
	assert.Equal(t, Literal, toks[0].Type)
	assert.Equal(t, digits, toks[0].Lexeme)
	require.NotNil(t, toks[0].Literal)
	assert.True(t, math.IsInf(toks[0].Literal.Num, 1))
	assert.Equal(t, Plus, toks[1].Type)
}
