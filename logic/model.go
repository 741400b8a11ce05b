// Package logic defines the term model for a minimal first-order term
// language: variables, constants and compound structures, assembled into
// clauses and programs.
//
// A logic term can fall in one of three categories:
//
// * variable: an uppercase-initial name standing for a yet-unknown term.
//
// * constant: a lowercase-initial symbol with no arguments.
//
// * structure: a constant-named functor applied to one or more argument
// terms.
//
// A logic program is composed of clauses of the form 'head :- term1, term2.',
// that must be read as "head holds if term1 and term2 holds". A clause with
// no terms in the body is called a fact, and is written 'head.'.
package logic

import (
	"fmt"
	"strings"

	"github.com/gpassos/minilog/errors"
)

// ---- Basic types

// Term is a representation of a logic term.
type Term interface {
	fmt.Stringer
	vars(seen map[Var]struct{}, xs []Var) []Var
}

// Atom is an atomic term representing a constant symbol.
type Atom struct {
	// Name is the identifier for an atom. Always lowercase-initial when
	// produced by the parser.
	Name string
}

// Var is a variable term.
type Var struct {
	// Name is the identifier for a var.
	Name string
}

// Comp is a complex term, representing an immutable compound structure.
type Comp struct {
	// Functor is the primary identifier of a comp. It shares the lexical
	// class of atom names.
	Functor string
	// Args is the list of terms within this term. Never empty: a
	// zero-argument symbol is an Atom, not a Comp.
	Args []Term
}

// Clause is the representation of a logic rule.
// Note that Clause is not a Term, so it can't be used within complex terms.
type Clause struct {
	// Head is the consequent of a clause.
	Head Term
	// Body is the antecedent of a clause. Empty for facts.
	Body []Term
}

// Program is an ordered sequence of clauses, in source order.
type Program struct {
	// Clauses are the program's clauses, append-only.
	Clauses []*Clause
}

// ---- Vars

// NewVar creates a new var.
//
// It panics if the name doesn't start with an uppercase letter.
func NewVar(name string) Var {
	if !IsVarName(name) {
		panic(errors.New("logic.NewVar: invalid name: %q", name))
	}
	return Var{name}
}

// ---- Compound terms

// NewComp creates a compound term.
//
// It panics if the functor is not in the constant lexical class, or if there
// are no args: a zero-argument symbol must be an Atom.
func NewComp(functor string, args ...Term) *Comp {
	if !IsConstName(functor) {
		panic(errors.New("logic.NewComp: invalid functor: %q", functor))
	}
	if len(args) == 0 {
		panic(errors.New("logic.NewComp: %s: structures have at least one arg", functor))
	}
	return &Comp{Functor: functor, Args: args}
}

// Indicator is a notation for a comp, usually shown as functor/arity, e.g., f/2.
type Indicator struct {
	// Name is the compound term's functor.
	Name string
	// Arity is the compound term's number of args.
	Arity int
}

// Indicator returns the functor's indicator.
func (c *Comp) Indicator() Indicator {
	return Indicator{c.Functor, len(c.Args)}
}

func (i Indicator) String() string {
	return fmt.Sprintf("%s/%d", i.Name, i.Arity)
}

// ---- Clauses

// NewClause returns a clause with the provided head and terms as body.
func NewClause(head Term, body ...Term) *Clause {
	return &Clause{Head: head, Body: body}
}

// IsFact returns whether the clause asserts its head unconditionally.
func (c *Clause) IsFact() bool {
	return len(c.Body) == 0
}

// ---- Programs

// NewProgram returns a program with the provided clauses.
func NewProgram(clauses ...*Clause) *Program {
	return &Program{Clauses: clauses}
}

// Add appends a clause to the program.
func (p *Program) Add(c *Clause) {
	p.Clauses = append(p.Clauses, c)
}

// Len returns the number of clauses in the program.
func (p *Program) Len() int {
	return len(p.Clauses)
}

// ---- vars()

// Vars returns a set with all term variables, in first-occurrence order.
func Vars(term Term) []Var {
	seen := make(map[Var]struct{})
	return term.vars(seen, nil)
}

func (t Atom) vars(seen map[Var]struct{}, xs []Var) []Var { return xs }

func (t Var) vars(seen map[Var]struct{}, xs []Var) []Var {
	if _, ok := seen[t]; ok {
		return xs
	}
	seen[t] = struct{}{}
	return append(xs, t)
}

func (t *Comp) vars(seen map[Var]struct{}, xs []Var) []Var {
	for _, term := range t.Args {
		xs = term.vars(seen, xs)
	}
	return xs
}

// Vars returns a set with all clause variables, in first-occurrence order,
// head first.
func (c *Clause) Vars() []Var {
	seen := make(map[Var]struct{})
	xs := c.Head.vars(seen, nil)
	for _, term := range c.Body {
		xs = term.vars(seen, xs)
	}
	return xs
}

// ---- Comparisons

func termOrder(t Term) int {
	switch t.(type) {
	case Var:
		return 1
	case Atom:
		return 2
	case *Comp:
		return 3
	default:
		panic(fmt.Sprintf("logic.termOrder: unhandled type %T", t))
	}
}

type ordering int

const (
	less ordering = iota
	equal
	more
)

func compareStrings(s1, s2 string) ordering {
	if s1 < s2 {
		return less
	}
	if s1 > s2 {
		return more
	}
	return equal
}

func compareInts(a, b int) ordering {
	if a < b {
		return less
	}
	if a > b {
		return more
	}
	return equal
}

func compare(t1, t2 Term) ordering {
	switch u := t1.(type) {
	case Var:
		if v, ok := t2.(Var); ok {
			return u.compare(v)
		}
	case Atom:
		if v, ok := t2.(Atom); ok {
			return u.compare(v)
		}
	case *Comp:
		if v, ok := t2.(*Comp); ok {
			return u.compare(v)
		}
	default:
		panic(fmt.Sprintf("logic.compare: unhandled type %T", t1))
	}
	return compareInts(termOrder(t1), termOrder(t2))
}

func (x Var) compare(other Var) ordering {
	return compareStrings(x.Name, other.Name)
}

func (a Atom) compare(other Atom) ordering {
	return compareStrings(a.Name, other.Name)
}

func (c *Comp) compare(other *Comp) ordering {
	if o := compareInts(len(c.Args), len(other.Args)); o != equal {
		return o
	}
	if o := compareStrings(c.Functor, other.Functor); o != equal {
		return o
	}
	for i := 0; i < len(c.Args); i++ {
		if o := compare(c.Args[i], other.Args[i]); o != equal {
			return o
		}
	}
	return equal
}

// ---- Less()

// Less returns the order between t1 and t2, following the standard of terms.
//
// The order of terms is: Vars < Atoms < Comps
func Less(t1, t2 Term) bool {
	return compare(t1, t2) == less
}

// Less returns whether this var is less than another, in lexicographic order.
func (t Var) Less(other Var) bool { return t.Name < other.Name }

// Less returns whether this atom is less than another, in lexicographic order.
func (t Atom) Less(other Atom) bool { return t.Name < other.Name }

// Less returns whether this comp is less than another.
//
// Comps are first compared by arity, then by functor, then by args pairwise.
func (t *Comp) Less(other *Comp) bool { return t.compare(other) == less }

// ---- Eq()

// Eq returns whether t1 and t2 are identical terms.
func Eq(t1, t2 Term) bool {
	return compare(t1, t2) == equal
}

// Eq returns whether this var is equal to another.
func (t Var) Eq(other Var) bool { return t == other }

// Eq returns whether this atom is equal to another.
func (t Atom) Eq(other Atom) bool { return t == other }

// Eq returns whether this comp is equal to another.
func (t *Comp) Eq(other *Comp) bool { return t.compare(other) == equal }

// ---- String()

func (t Atom) String() string {
	return t.Name
}

func (t Var) String() string {
	return t.Name
}

func (t *Comp) String() string {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", t.Functor, strings.Join(args, ", "))
}

// String returns the clause in canonical text form. The form is a single
// line, since the language only admits spaces between tokens, and can be
// parsed back into an equal clause.
func (c *Clause) String() string {
	head := c.Head.String()
	if len(c.Body) == 0 {
		return head + "."
	}
	body := make([]string, len(c.Body))
	for i, term := range c.Body {
		body[i] = term.String()
	}
	return fmt.Sprintf("%s :- %s.", head, strings.Join(body, ", "))
}

// String returns the program's clauses in canonical text form, separated by
// a single space.
func (p *Program) String() string {
	clauses := make([]string, len(p.Clauses))
	for i, c := range p.Clauses {
		clauses[i] = c.String()
	}
	return strings.Join(clauses, " ")
}
