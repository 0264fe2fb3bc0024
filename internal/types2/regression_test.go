package types2

import (
	"testing"

	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
)

func TestIntegerLiteralsAreInt(t *testing.T) {
	for _, src := range []string{"0", "7", "12345", "1_000", "00"} {
		if got := lastType(t, src); got != types.Int {
			t.Errorf("%s: type = %v, want Int", src, got)
		}
	}
	for _, src := range []string{"0.0", "7.25", ".5", "1_000.0"} {
		if got := lastType(t, src); got != types.Float {
			t.Errorf("%s: type = %v, want Float", src, got)
		}
	}
}

func TestAddShape(t *testing.T) {
	f := expectNoErrors(t, "1 + 2")
	in, ok := f.Exprs[0].(*syntax.InfixExpr)
	if !ok || in.Op != syntax.Add {
		t.Fatalf("got %T, want Add", f.Exprs[0])
	}
	if _, ok := in.X.(*syntax.IntLit); !ok {
		t.Errorf("X = %T", in.X)
	}
	if _, ok := in.Y.(*syntax.IntLit); !ok {
		t.Errorf("Y = %T", in.Y)
	}
	if in.Type() != types.Int || in.X.Type() != types.Int || in.Y.Type() != types.Int {
		t.Errorf("types = %v(%v, %v), want Int(Int, Int)", in.Type(), in.X.Type(), in.Y.Type())
	}
}

func TestImmutableInSameBlock(t *testing.T) {
	if got := lastType(t, "{ x: 1 x }"); got != types.Int {
		t.Errorf("type = %v, want Int", got)
	}
	err := expectError(t, "{ x: 1 x = 2 }", AssignToImmutable)
	if err.Name != "x" {
		t.Errorf("Name = %q, want x", err.Name)
	}
}

// An assignment inside a nested block to an immutable binding of an
// enclosing block introduces a mutable binding local to the nested block.
func TestShadowing(t *testing.T) {
	c, f, errs := parseAndCheck(t, "{ x: 1 { x = 2.0 x } }", nil)
	if errs != nil {
		t.Fatal(errs)
	}

	outer := f.Exprs[0].(*syntax.BlockExpr)
	inner := outer.Exprs[1].(*syntax.BlockExpr)
	if got := inner.Exprs[1].Type(); got != types.Float {
		t.Errorf("inner x: type = %v, want Float", got)
	}
	if got := inner.Type(); got != types.Float {
		t.Errorf("inner block: type = %v, want Float", got)
	}
	d, ok := inner.Exprs[0].(*syntax.VarDecl)
	if !ok || !d.Mutable || d.Name.Value != "x" {
		t.Errorf("inner assignment checked as %#v, want mutable declaration", inner.Exprs[0])
	}

	// The outer binding keeps its type and mutability.
	m := c.Manager()
	var vars []*types.ScopedVar
	for id := types.VarID(1); m.Var(id) != nil; id++ {
		vars = append(vars, m.Var(id))
	}
	if len(vars) != 2 {
		t.Fatalf("declared %d variables, want 2", len(vars))
	}
	if vars[0].Type != types.Int || vars[0].Mutable {
		t.Errorf("outer x = %+v", vars[0])
	}
	if vars[1].Type != types.Float || !vars[1].Mutable || vars[1].Scope == vars[0].Scope {
		t.Errorf("inner x = %+v", vars[1])
	}
	if got, _ := m.LookupVar("x", vars[0].Scope); got.ID != vars[0].ID {
		t.Errorf("outer scope resolves x to %+v", got)
	}
}

func TestShadowedMutableIsAssignable(t *testing.T) {
	if got := lastType(t, "{ x: 1 { x = 2.0 x = 3.0 x } }"); got != types.Float {
		t.Errorf("type = %v, want Float", got)
	}
}

func TestRedeclareSameScope(t *testing.T) {
	if got := lastType(t, "x: 1 x: true x"); got != types.Bool {
		t.Errorf("type = %v, want Bool (newest declaration wins)", got)
	}
	if got := lastType(t, "x: 1 x := 2.0 x = 3.0 x"); got != types.Float {
		t.Errorf("type = %v, want Float", got)
	}
}

func TestUnknownTypeName(t *testing.T) {
	err := expectError(t, "x SomeType = 1", TypeNameNotFound)
	if err.Name != "SomeType" {
		t.Errorf("Name = %q, want SomeType", err.Name)
	}
}

func TestUndeclaredIdentifierSpan(t *testing.T) {
	err := expectError(t, "x: 1\nx + yy", VariableNotFound)
	if err.Name != "yy" || err.Span != syntax.NewSpan(9, 11) {
		t.Errorf("error = %+v, want yy at 9..11", err)
	}
}

func TestNotOperand(t *testing.T) {
	if got := lastType(t, "!true"); got != types.Bool {
		t.Errorf("!true: type = %v, want Bool", got)
	}
	expectError(t, "!1", TypeMismatch)
	expectError(t, "!1.0", TypeMismatch)
}

// Checking an annotated tree again yields the same annotations.
func TestRecheckIdempotent(t *testing.T) {
	srcs := []string{
		"1 + 1.0",
		"{ x: 1 { x = 2.0 x } }",
		"a := 1 a = a * 2 b Float = a / 2 !(b < 1.0) == false",
		"type Meters Float { m: 1 m.to_unit() }",
	}

	for _, src := range srcs {
		f := expectNoErrors(t, src)
		again, err := Check(f, nil)
		if err != nil {
			t.Fatalf("%s: recheck: %v", src, err)
		}
		if got, want := annotations(again), annotations(f); got != want {
			t.Errorf("%s: recheck annotations\n%s\nwant\n%s", src, got, want)
		}
	}
}

// annotations renders every expression with its type.
func annotations(f *syntax.File) string {
	var s string
	syntax.Inspect(f, func(n syntax.Node) bool {
		if x, ok := n.(syntax.Expr); ok {
			s += syntax.ExprString(x) + " : " + x.Type().String() + "\n"
		}
		return true
	})
	return s
}
