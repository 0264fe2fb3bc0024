package types

import (
	"strings"
	"testing"
)

func TestPredeclaredTypes(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name string
		id   TypeID
	}{
		{"Unit", Unit},
		{"Int", Int},
		{"Float", Float},
		{"Bool", Bool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := m.LookupType(tt.name, Global)
			if !ok {
				t.Fatalf("LookupType(%q) not found", tt.name)
			}
			if typ.ID != tt.id {
				t.Errorf("ID = %d, want %d", typ.ID, tt.id)
			}
			if typ.Scope != Global {
				t.Errorf("Scope = %d, want global", typ.Scope)
			}
			if typ.HasParent() {
				t.Errorf("predeclared type %s has a parent", tt.name)
			}
			if got := PredeclaredName(tt.id); got != tt.name {
				t.Errorf("PredeclaredName(%d) = %q, want %q", tt.id, got, tt.name)
			}
		})
	}
}

func TestPredeclaredIDsStable(t *testing.T) {
	a := NewManager()
	b := NewManager()
	a.AddType("Meters", Float)
	for _, name := range []string{"Unit", "Int", "Float", "Bool"} {
		ta, _ := a.LookupType(name, Global)
		tb, _ := b.LookupType(name, Global)
		if ta.ID != tb.ID {
			t.Errorf("%s: ids differ between managers: %d vs %d", name, ta.ID, tb.ID)
		}
	}
}

func TestScopeAddAndLookupVar(t *testing.T) {
	m := NewManager()

	v := m.AddVar("x", Int, false)
	if v.ID == NoVar {
		t.Fatal("AddVar returned NoVar")
	}
	if v.Scope != Global {
		t.Errorf("Scope = %d, want global", v.Scope)
	}

	found, ok := m.LookupVar("x", m.Current())
	if !ok {
		t.Fatal("LookupVar did not find x")
	}
	if found.ID != v.ID || found.Type != Int || found.Mutable {
		t.Errorf("LookupVar returned %+v, want %+v", *found, *v)
	}

	if _, ok := m.LookupVar("y", m.Current()); ok {
		t.Error("LookupVar found undeclared y")
	}
}

func TestScopeLookupParent(t *testing.T) {
	m := NewManager()
	outer := m.AddVar("x", Int, false)

	child := m.CreateScope(Global)
	if m.Current() != Global {
		t.Fatalf("CreateScope moved the cursor to %d", m.Current())
	}
	m.SetCurrent(child)

	found, ok := m.LookupVar("x", child)
	if !ok || found.ID != outer.ID {
		t.Fatalf("LookupVar from child = %v, %v; want outer x", found, ok)
	}
}

func TestScopeShadowing(t *testing.T) {
	m := NewManager()
	outer := m.AddVar("x", Int, false)

	child := m.CreateScope(Global)
	m.SetCurrent(child)
	inner := m.AddVar("x", Float, true)

	found, _ := m.LookupVar("x", child)
	if found.ID != inner.ID {
		t.Errorf("LookupVar in child found %d, want shadowing %d", found.ID, inner.ID)
	}

	m.SetCurrent(Global)
	found, _ = m.LookupVar("x", m.Current())
	if found.ID != outer.ID || found.Type != Int {
		t.Errorf("outer x after leaving block = %+v, want id %d Int", *found, outer.ID)
	}

	// The inner record stays addressable by id.
	if v := m.Var(inner.ID); v == nil || v.Type != Float {
		t.Errorf("Var(%d) = %v, want Float record", inner.ID, v)
	}
}

func TestScopeRedeclareSameScope(t *testing.T) {
	m := NewManager()
	first := m.AddVar("x", Int, false)
	second := m.AddVar("x", Bool, true)

	found, _ := m.LookupVar("x", Global)
	if found.ID != second.ID {
		t.Errorf("LookupVar = %d, want newest %d", found.ID, second.ID)
	}
	if m.Var(first.ID).Type != Int {
		t.Error("first binding record was modified")
	}
}

func TestScopeSiblingsInvisible(t *testing.T) {
	m := NewManager()
	a := m.CreateScope(Global)
	b := m.CreateScope(Global)

	m.SetCurrent(a)
	m.AddVar("x", Int, false)
	m.AddType("Meters", Float)

	if _, ok := m.LookupVar("x", b); ok {
		t.Error("variable declared in sibling scope is visible")
	}
	if _, ok := m.LookupType("Meters", b); ok {
		t.Error("type declared in sibling scope is visible")
	}
}

func TestTypeByID(t *testing.T) {
	m := NewManager()
	a := m.CreateScope(Global)
	b := m.CreateScope(Global)
	m.SetCurrent(a)
	meters := m.AddType("Meters", Float)

	if _, ok := m.TypeByID(meters.ID, a); !ok {
		t.Error("TypeByID not found in owning scope")
	}
	if _, ok := m.TypeByID(meters.ID, b); ok {
		t.Error("TypeByID found type outside its scope chain")
	}
	if typ, ok := m.TypeByID(Int, b); !ok || typ.Name != "Int" {
		t.Errorf("TypeByID(Int) = %v, %v", typ, ok)
	}
	if _, ok := m.TypeByID(TypeID(99), Global); ok {
		t.Error("TypeByID found unknown id")
	}
}

func TestIDsMonotonic(t *testing.T) {
	m := NewManager()
	var last TypeID = Bool
	for _, name := range []string{"A", "B", "C"} {
		typ := m.AddType(name, NoType)
		if typ.ID <= last {
			t.Errorf("type %s id %d not greater than %d", name, typ.ID, last)
		}
		last = typ.ID
	}

	s1 := m.CreateScope(Global)
	s2 := m.CreateScope(s1)
	if s2 <= s1 || s1 <= Global {
		t.Errorf("scope ids not monotonic: global=%d s1=%d s2=%d", Global, s1, s2)
	}
}

func TestSetCurrentUnknownScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetCurrent(unknown) did not panic")
		}
	}()
	NewManager().SetCurrent(ScopeID(42))
}

func TestManagerString(t *testing.T) {
	m := NewManager()
	m.AddVar("x", Int, false)
	child := m.CreateScope(Global)
	m.SetCurrent(child)
	m.AddVar("y", Float, true)
	m.AddType("Meters", Float)

	out := m.String()
	for _, want := range []string{
		"scope 1 global {",
		"type Int",
		"x: Int",
		"scope 2 block {",
		"mut y: Float",
		"type Meters: Float",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
