package types

import (
	"fmt"
	"strings"
)

// Manager owns the scope tree and the id-addressed type and variable
// tables for one checking session. Scopes are never destroyed; leaving a
// block only moves the current-scope cursor back to the parent.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	scopes []Scope      // scopes[i].ID == ScopeID(i+1)
	types  []ScopedType // types[i].ID == TypeID(i+1)
	vars   []ScopedVar  // vars[i].ID == VarID(i+1)
	cur    ScopeID
}

// NewManager creates a Manager seeded with the global scope and the
// predeclared types.
func NewManager() *Manager {
	m := &Manager{}
	m.cur = m.newScope(NoScope, "global")
	defPredeclaredTypes(m)
	return m
}

func (m *Manager) newScope(parent ScopeID, comment string) ScopeID {
	id := ScopeID(len(m.scopes) + 1)
	m.scopes = append(m.scopes, Scope{ID: id, Parent: parent, Comment: comment})
	return id
}

// CreateScope creates a new scope as a child of parent and returns its id.
// It does not move the current-scope cursor.
func (m *Manager) CreateScope(parent ScopeID) ScopeID {
	if m.Scope(parent) == nil {
		panic(fmt.Sprintf("types: CreateScope with unknown parent scope %d", parent))
	}
	return m.newScope(parent, "block")
}

// Current returns the current scope.
func (m *Manager) Current() ScopeID {
	return m.cur
}

// SetCurrent moves the current-scope cursor to id.
func (m *Manager) SetCurrent(id ScopeID) {
	if m.Scope(id) == nil {
		panic(fmt.Sprintf("types: SetCurrent with unknown scope %d", id))
	}
	m.cur = id
}

// Scope returns the scope with the given id, or nil.
func (m *Manager) Scope(id ScopeID) *Scope {
	if id <= NoScope || int(id) > len(m.scopes) {
		return nil
	}
	return &m.scopes[id-1]
}

// NumScopes returns the number of scopes created so far.
func (m *Manager) NumScopes() int {
	return len(m.scopes)
}

// Type returns the type with the given id regardless of scope, or nil.
func (m *Manager) Type(id TypeID) *ScopedType {
	if !id.IsValid() || int(id) > len(m.types) {
		return nil
	}
	return &m.types[id-1]
}

// Var returns the variable with the given id regardless of scope, or nil.
func (m *Manager) Var(id VarID) *ScopedVar {
	if id <= NoVar || int(id) > len(m.vars) {
		return nil
	}
	return &m.vars[id-1]
}

// TypeName returns the name of the type with the given id, or a
// placeholder for ids the manager does not know.
func (m *Manager) TypeName(id TypeID) string {
	if t := m.Type(id); t != nil {
		return t.Name
	}
	return id.String()
}

// chain calls f for scope and each of its ancestors up to the root,
// stopping early when f returns true.
func (m *Manager) chain(scope ScopeID, f func(ScopeID) bool) {
	for s := m.Scope(scope); s != nil; s = m.Scope(s.Parent) {
		if f(s.ID) {
			return
		}
	}
}

// LookupType looks up a type by name starting at scope and walking to the
// root. Within one scope the most recently registered type wins.
func (m *Manager) LookupType(name string, scope ScopeID) (*ScopedType, bool) {
	var found *ScopedType
	m.chain(scope, func(s ScopeID) bool {
		for i := len(m.types) - 1; i >= 0; i-- {
			if t := &m.types[i]; t.Scope == s && t.Name == name {
				found = t
				return true
			}
		}
		return false
	})
	return found, found != nil
}

// TypeByID returns the type with the given id if its owning scope is on
// the chain from scope to the root.
func (m *Manager) TypeByID(id TypeID, scope ScopeID) (*ScopedType, bool) {
	t := m.Type(id)
	if t == nil {
		return nil, false
	}
	visible := false
	m.chain(scope, func(s ScopeID) bool {
		visible = t.Scope == s
		return visible
	})
	if !visible {
		return nil, false
	}
	return t, true
}

// LookupVar looks up a variable by name starting at scope and walking to
// the root. Within one scope the most recently declared variable wins, so
// redeclaring a name in the same scope shadows the earlier binding.
func (m *Manager) LookupVar(name string, scope ScopeID) (*ScopedVar, bool) {
	var found *ScopedVar
	m.chain(scope, func(s ScopeID) bool {
		for i := len(m.vars) - 1; i >= 0; i-- {
			if v := &m.vars[i]; v.Scope == s && v.Name == name {
				found = v
				return true
			}
		}
		return false
	})
	return found, found != nil
}

// AddVar registers a variable in the current scope.
func (m *Manager) AddVar(name string, typ TypeID, mutable bool) *ScopedVar {
	id := VarID(len(m.vars) + 1)
	m.vars = append(m.vars, ScopedVar{
		ID:      id,
		Name:    name,
		Type:    typ,
		Mutable: mutable,
		Scope:   m.cur,
	})
	return &m.vars[id-1]
}

// AddType registers a type in the current scope. Parent may be NoType.
func (m *Manager) AddType(name string, parent TypeID) *ScopedType {
	id := TypeID(len(m.types) + 1)
	m.types = append(m.types, ScopedType{
		ID:     id,
		Name:   name,
		Parent: parent,
		Scope:  m.cur,
	})
	return &m.types[id-1]
}

// String returns a dump of the scope tree for debugging.
func (m *Manager) String() string {
	var buf strings.Builder
	m.writeTo(&buf, Global, 0)
	return buf.String()
}

func (m *Manager) writeTo(buf *strings.Builder, id ScopeID, indent int) {
	prefix := strings.Repeat("  ", indent)
	s := m.Scope(id)
	fmt.Fprintf(buf, "%sscope %d %s {\n", prefix, s.ID, s.Comment)
	for i := range m.types {
		if t := &m.types[i]; t.Scope == id {
			if t.HasParent() {
				fmt.Fprintf(buf, "%s  type %s: %s\n", prefix, t.Name, m.TypeName(t.Parent))
			} else {
				fmt.Fprintf(buf, "%s  type %s\n", prefix, t.Name)
			}
		}
	}
	for i := range m.vars {
		if v := &m.vars[i]; v.Scope == id {
			mut := ""
			if v.Mutable {
				mut = "mut "
			}
			fmt.Fprintf(buf, "%s  %s%s: %s\n", prefix, mut, v.Name, m.TypeName(v.Type))
		}
	}
	for i := range m.scopes {
		if child := &m.scopes[i]; child.Parent == id {
			m.writeTo(buf, child.ID, indent+1)
		}
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
