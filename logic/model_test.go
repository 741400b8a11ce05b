package logic_test

import (
	"fmt"
	"testing"

	"github.com/gpassos/minilog/dsl"
	"github.com/gpassos/minilog/logic"

	"github.com/google/go-cmp/cmp"
)

var (
	atom    = dsl.Atom
	var_    = dsl.Var
	comp    = dsl.Comp
	clause  = dsl.Clause
	program = dsl.Program
)

func TestLess(t *testing.T) {
	order := []logic.Term{
		var_("A"),
		var_("Z"),
		atom("a"),
		atom("a1"),
		atom("a9"),
		atom("z"),
		comp("f", atom("a")),
		comp("f", atom("z")),
		comp("g", atom("a")),
		comp("f", atom("a"), atom("a")),
		comp("f", atom("a"), atom("z")),
	}
	for i := 0; i < len(order)-1; i++ {
		if !logic.Less(order[i], order[i+1]) {
			t.Errorf("%v >= %v", order[i], order[i+1])
		}
	}
}

func TestEq(t *testing.T) {
	tests := []struct {
		x, y logic.Term
	}{
		{atom("a"), atom("a")},
		{var_("X"), var_("X")},
		{comp("f", var_("X"), atom("a")), comp("f", var_("X"), atom("a"))},
	}
	for _, test := range tests {
		if !logic.Eq(test.x, test.y) {
			t.Errorf("%v != %v", test.x, test.y)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		term fmt.Stringer
		want string
	}{
		{atom("a"), "a"},
		{var_("A"), "A"},
		{comp("f", var_("A")), "f(A)"},
		{comp("f", var_("A"), var_("B")), "f(A, B)"},
		{comp("f", comp("g", atom("a")), var_("B")), "f(g(a), B)"},
		{clause(comp("ancestor", var_("X"), var_("Y"))), "ancestor(X, Y)."},
		{
			clause(comp("ancestor", var_("X"), var_("Z")),
				comp("parent", var_("X"), var_("Y")),
				comp("ancestor", var_("Y"), var_("Z"))),
			"ancestor(X, Z) :- parent(X, Y), ancestor(Y, Z).",
		},
		{
			program(clause(atom("a")), clause(comp("b", var_("X")))),
			"a. b(X).",
		},
	}
	for _, test := range tests {
		got := test.term.String()
		if got != test.want {
			t.Errorf("%#v.String() = %q (!= %q)", test.term, got, test.want)
		}
	}
}

func TestVars(t *testing.T) {
	tests := []struct {
		term logic.Term
		want []logic.Var
	}{
		{atom("a"), nil},
		{var_("X"), []logic.Var{var_("X")}},
		{
			comp("f", var_("X"), comp("g", var_("Y"), var_("X")), var_("Z")),
			[]logic.Var{var_("X"), var_("Y"), var_("Z")},
		},
	}
	for _, test := range tests {
		got := logic.Vars(test.term)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Vars(%v): (-want, +got)\n%s", test.term, diff)
		}
	}
}

func TestClauseVars(t *testing.T) {
	c := clause(comp("grandparent", var_("X"), var_("Z")),
		comp("parent", var_("X"), var_("Y")),
		comp("parent", var_("Y"), var_("Z")))
	want := []logic.Var{var_("X"), var_("Z"), var_("Y")}
	if diff := cmp.Diff(want, c.Vars()); diff != "" {
		t.Errorf("(%v).Vars(): (-want, +got)\n%s", c, diff)
	}
}

func TestIsFact(t *testing.T) {
	if !clause(atom("a")).IsFact() {
		t.Errorf("a. is not a fact")
	}
	if clause(atom("a"), atom("b")).IsFact() {
		t.Errorf("a :- b. is a fact")
	}
}

func TestIndicator(t *testing.T) {
	c := comp("f", atom("a"), var_("X"))
	if got, want := c.Indicator(), dsl.Indicator("f", 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.Indicator().String(), "f/2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestProgramAdd(t *testing.T) {
	p := logic.NewProgram()
	p.Add(clause(atom("a")))
	p.Add(clause(atom("b"), atom("a")))
	want := program(clause(atom("a")), clause(atom("b"), atom("a")))
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
	if p.Len() != 2 {
		t.Errorf("got len %d, want 2", p.Len())
	}
}

func TestNewVarInvalid(t *testing.T) {
	for _, name := range []string{"", "x", "_X", "1A", "X-", "Xé"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewVar(%q): want panic", name)
				}
			}()
			logic.NewVar(name)
		}()
	}
}

func TestNewCompInvalid(t *testing.T) {
	tests := []struct {
		functor string
		args    []logic.Term
	}{
		{"F", dsl.Terms(atom("a"))},
		{"1f", dsl.Terms(atom("a"))},
		{"f", nil},
	}
	for _, test := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewComp(%q, %v): want panic", test.functor, test.args)
				}
			}()
			logic.NewComp(test.functor, test.args...)
		}()
	}
}
