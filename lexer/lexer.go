// Package lexer implements the tokenizer for the term language.
//
// Identifier runs are classified by their first character: uppercase-initial
// runs are variables, lowercase-initial runs are constants. The only
// whitespace is the space character; a tab or newline is a lexical error,
// like any other character outside a token class.
package lexer

import (
	"fmt"
)

// A Type classifies tokens.
type Type int

// The token types.
const (
	EOF Type = iota
	Variable
	Constant
	LParen
	RParen
	Comma
	Dot
	Neck // ":-"
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Variable:
		return "variable"
	case Constant:
		return "constant"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Comma:
		return "','"
	case Dot:
		return "'.'"
	case Neck:
		return "':-'"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is a lexical unit of the term language.
type Token struct {
	Type Type
	// Text is the token's source text. Empty for EOF.
	Text string
	// Pos is the 0-based rune offset of the token's first character.
	Pos int
}

func (tok Token) String() string {
	if tok.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q (%v)", tok.Text, tok.Type)
}

// Error is the lexical error: a character that doesn't belong to any token
// class. It is not recoverable within the same scan.
type Error struct {
	// Pos is the 0-based rune offset of the offending character.
	Pos int
	// Rune is the offending character.
	Rune rune
}

func (err *Error) Error() string {
	return fmt.Sprintf("position %d: invalid character %q", err.Pos, err.Rune)
}

// Lexer produces the tokens of a single input text, lazily. A lexer is not
// restartable; call New again to rescan the same input.
type Lexer struct {
	input []rune
	pos   int
}

// New returns a lexer over text.
func New(text string) *Lexer {
	return &Lexer{input: []rune(text)}
}

// Next returns the next token, skipping spaces. At the end of the input it
// returns an EOF token, forever.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{Type: EOF, Pos: l.pos}, nil
	}
	start := l.pos
	ch := l.input[l.pos]
	switch {
	case ch == '(':
		l.pos++
		return Token{Type: LParen, Text: "(", Pos: start}, nil
	case ch == ')':
		l.pos++
		return Token{Type: RParen, Text: ")", Pos: start}, nil
	case ch == ',':
		l.pos++
		return Token{Type: Comma, Text: ",", Pos: start}, nil
	case ch == '.':
		l.pos++
		return Token{Type: Dot, Text: ".", Pos: start}, nil
	case ch == ':':
		// ':' is only a token as part of ':-'.
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '-' {
			l.pos += 2
			return Token{Type: Neck, Text: ":-", Pos: start}, nil
		}
		return Token{}, &Error{start, ch}
	case isUpper(ch):
		return Token{Type: Variable, Text: l.ident(), Pos: start}, nil
	case isLower(ch):
		return Token{Type: Constant, Text: l.ident(), Pos: start}, nil
	}
	return Token{}, &Error{start, ch}
}

// Tokens scans all tokens in text, including the final EOF token.
func Tokens(text string) ([]Token, error) {
	l := New(text)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) ident() string {
	start := l.pos
	for l.pos < len(l.input) && isIdent(l.input[l.pos]) {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

func isUpper(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isLower(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func isIdent(ch rune) bool {
	return ch == '_' || isUpper(ch) || isLower(ch) || ch >= '0' && ch <= '9'
}
