// Package dsl provides compact constructors for logic terms, mostly useful
// in tests.
package dsl

import (
	"github.com/gpassos/minilog/logic"
)

func Terms(terms ...logic.Term) []logic.Term {
	return terms
}

func Atom(name string) logic.Atom {
	return logic.Atom{Name: name}
}

func Var(name string) logic.Var {
	return logic.NewVar(name)
}

func Comp(functor string, args ...logic.Term) *logic.Comp {
	return logic.NewComp(functor, args...)
}

func Indicator(name string, arity int) logic.Indicator {
	return logic.Indicator{Name: name, Arity: arity}
}

func Clause(head logic.Term, body ...logic.Term) *logic.Clause {
	return logic.NewClause(head, body...)
}

func Clauses(cs ...*logic.Clause) []*logic.Clause {
	return cs
}

func Program(cs ...*logic.Clause) *logic.Program {
	return logic.NewProgram(cs...)
}
