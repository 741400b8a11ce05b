// Package parser implements a PEG-style parser for the term language.
//
// The grammar, with '/' as ordered choice:
//
//	term      = structure / variable / constant
//	structure = constant "(" term ("," term)* ")"
//	fact      = term "."
//	rule      = term ":-" term ("," term)* "."
//	clause    = fact / rule
//
// Alternatives are tried in order with full backtracking: a failed
// alternative consumes no tokens. A parse error reports the furthest
// position the parser reached, with everything that was expected there.
package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gpassos/minilog/lexer"
	"github.com/gpassos/minilog/logic"
)

// Error is a parse error: no production matched after exhausting all
// ordered-choice alternatives.
type Error struct {
	// Pos is the 0-based rune offset of the furthest failure.
	Pos int
	// Expected lists what the parser would have accepted at Pos, sorted
	// and deduplicated.
	Expected []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("position %d: expected %s", err.Pos, strings.Join(err.Expected, " or "))
}

// ---- parse functions

// ParseTerm parses a single term, which must span the whole text.
func ParseTerm(text string) (logic.Term, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	term, ok := p.term()
	if !ok || !p.eof() {
		return nil, p.err()
	}
	return term, nil
}

// ParseClause parses a single fact or rule, which must span the whole text.
func ParseClause(text string) (*logic.Clause, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	c, ok := p.clause()
	if !ok || !p.eof() {
		return nil, p.err()
	}
	return c, nil
}

// ParseProgram parses a sequence of facts and rules until the input is
// exhausted. An empty input yields an empty program.
func ParseProgram(text string) (*logic.Program, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	prog := logic.NewProgram()
	for !p.atEOF() {
		c, ok := p.clause()
		if !ok {
			return nil, p.err()
		}
		prog.Add(c)
	}
	return prog, nil
}

// ---- parser state

type parser struct {
	tokens []lexer.Token
	pos    int

	// Furthest failure seen so far, for error reporting.
	errPos   int
	expected []string
}

func newParser(text string) (*parser, error) {
	tokens, err := lexer.Tokens(text)
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens, errPos: -1}, nil
}

// miss records a failed expectation. Only the expectations at the furthest
// failure position are kept.
func (p *parser) miss(pos int, what string) {
	if pos < p.errPos {
		return
	}
	if pos > p.errPos {
		p.errPos = pos
		p.expected = p.expected[:0]
	}
	for _, e := range p.expected {
		if e == what {
			return
		}
	}
	p.expected = append(p.expected, what)
}

func (p *parser) err() *Error {
	expected := make([]string, len(p.expected))
	copy(expected, p.expected)
	sort.Strings(expected)
	return &Error{Pos: p.errPos, Expected: expected}
}

// take consumes the current token if it has the wanted type.
func (p *parser) take(typ lexer.Type) (lexer.Token, bool) {
	tok := p.tokens[p.pos]
	if tok.Type != typ {
		p.miss(tok.Pos, typ.String())
		return lexer.Token{}, false
	}
	p.pos++
	return tok, true
}

func (p *parser) atEOF() bool {
	return p.tokens[p.pos].Type == lexer.EOF
}

func (p *parser) eof() bool {
	if p.atEOF() {
		return true
	}
	p.miss(p.tokens[p.pos].Pos, lexer.EOF.String())
	return false
}

// ---- productions

// clause = fact / rule
func (p *parser) clause() (*logic.Clause, bool) {
	if c, ok := p.fact(); ok {
		return c, true
	}
	if c, ok := p.rule(); ok {
		return c, true
	}
	return nil, false
}

// fact = term "."
func (p *parser) fact() (*logic.Clause, bool) {
	start := p.pos
	head, ok := p.term()
	if !ok {
		return nil, false
	}
	if _, ok := p.take(lexer.Dot); !ok {
		p.pos = start
		return nil, false
	}
	return logic.NewClause(head), true
}

// rule = term ":-" term ("," term)* "."
func (p *parser) rule() (*logic.Clause, bool) {
	start := p.pos
	head, ok := p.term()
	if !ok {
		return nil, false
	}
	if _, ok := p.take(lexer.Neck); !ok {
		p.pos = start
		return nil, false
	}
	body, ok := p.terms()
	if !ok {
		p.pos = start
		return nil, false
	}
	if _, ok := p.take(lexer.Dot); !ok {
		p.pos = start
		return nil, false
	}
	return logic.NewClause(head, body...), true
}

// term = structure / variable / constant
func (p *parser) term() (logic.Term, bool) {
	if c, ok := p.structure(); ok {
		return c, true
	}
	if x, ok := p.take(lexer.Variable); ok {
		return logic.NewVar(x.Text), true
	}
	if a, ok := p.take(lexer.Constant); ok {
		return logic.Atom{Name: a.Text}, true
	}
	return nil, false
}

// structure = constant "(" term ("," term)* ")"
func (p *parser) structure() (*logic.Comp, bool) {
	start := p.pos
	functor, ok := p.take(lexer.Constant)
	if !ok {
		return nil, false
	}
	if _, ok := p.take(lexer.LParen); !ok {
		p.pos = start
		return nil, false
	}
	args, ok := p.terms()
	if !ok {
		p.pos = start
		return nil, false
	}
	if _, ok := p.take(lexer.RParen); !ok {
		p.pos = start
		return nil, false
	}
	return logic.NewComp(functor.Text, args...), true
}

// terms = term ("," term)*
func (p *parser) terms() ([]logic.Term, bool) {
	term, ok := p.term()
	if !ok {
		return nil, false
	}
	terms := []logic.Term{term}
	for {
		// A comma without a following term ends the repetition, with the
		// comma unconsumed.
		mark := p.pos
		if _, ok := p.take(lexer.Comma); !ok {
			return terms, true
		}
		term, ok = p.term()
		if !ok {
			p.pos = mark
			return terms, true
		}
		terms = append(terms, term)
	}
}
