// Package symbols implements interning of term identifiers.
//
// A table assigns a small, dense ID to each distinct identifier it sees:
// constants and variables are keyed by name, structures by functor name and
// arity, so f, f/1 and f/2 are three entries. IDs are stable for the
// lifetime of a table, and are the natural handle for any later stage that
// refers to symbols without carrying strings around.
package symbols

import (
	"fmt"

	"github.com/gpassos/minilog/errors"
	"github.com/gpassos/minilog/logic"
)

// Kind classifies interned identifiers.
type Kind int

// The identifier kinds.
const (
	Constant Kind = iota
	Variable
	Functor
)

func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case Functor:
		return "functor"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ID is a handle for an interned identifier. IDs are allocated densely
// from 0, in first-sight order.
type ID int

// Entry is the information recorded for an interned identifier.
type Entry struct {
	// Name is the identifier's name.
	Name string
	// Arity is the number of args for functors, and 0 otherwise.
	Arity int
	// Kind is the identifier's kind.
	Kind Kind
}

func (e Entry) String() string {
	if e.Kind == Functor {
		return fmt.Sprintf("%s/%d", e.Name, e.Arity)
	}
	return e.Name
}

type key struct {
	name  string
	arity int
	kind  Kind
}

// Table interns identifiers. Each table is independent; there is no global
// state.
type Table struct {
	ids     map[key]ID
	entries []Entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{ids: make(map[key]ID)}
}

// Intern returns the ID for the term's own identifier, allocating it on
// first sight. Args of a structure are not visited; see InternAll.
func (t *Table) Intern(term logic.Term) ID {
	switch u := term.(type) {
	case logic.Atom:
		return t.intern(key{u.Name, 0, Constant})
	case logic.Var:
		return t.intern(key{u.Name, 0, Variable})
	case *logic.Comp:
		return t.intern(key{u.Functor, len(u.Args), Functor})
	default:
		panic(errors.New("symbols.Intern: unhandled term type %T", term))
	}
}

// InternAll interns the identifiers of term and of all its subterms,
// depth-first and left-to-right, returning the term's own ID.
func (t *Table) InternAll(term logic.Term) ID {
	id := t.Intern(term)
	if c, ok := term.(*logic.Comp); ok {
		for _, arg := range c.Args {
			t.InternAll(arg)
		}
	}
	return id
}

// InternClause interns every identifier in the clause's head and body.
func (t *Table) InternClause(c *logic.Clause) {
	t.InternAll(c.Head)
	for _, term := range c.Body {
		t.InternAll(term)
	}
}

// InternProgram interns every identifier in the program, in source order.
func (t *Table) InternProgram(p *logic.Program) {
	for _, c := range p.Clauses {
		t.InternClause(c)
	}
}

func (t *Table) intern(k key) ID {
	if id, ok := t.ids[k]; ok {
		return id
	}
	id := ID(len(t.entries))
	t.ids[k] = id
	t.entries = append(t.entries, Entry{Name: k.name, Arity: k.arity, Kind: k.kind})
	return id
}

// Entry returns the entry for id.
//
// It panics if id was not produced by this table.
func (t *Table) Entry(id ID) Entry {
	if id < 0 || int(id) >= len(t.entries) {
		panic(errors.New("symbols.Entry: unknown id %d", id))
	}
	return t.entries[id]
}

// Len returns the number of interned identifiers.
func (t *Table) Len() int {
	return len(t.entries)
}
