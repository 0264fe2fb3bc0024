package types

// ScopedType is a named type registered in some scope.
// Parent encodes a single-inheritance nominal hierarchy; predeclared
// types have no parent.
type ScopedType struct {
	ID     TypeID
	Name   string
	Parent TypeID  // NoType if the type has no parent
	Scope  ScopeID // owning scope
}

// HasParent reports whether the type was declared with a parent type.
func (t *ScopedType) HasParent() bool {
	return t.Parent.IsValid()
}

func (t *ScopedType) String() string {
	return t.Name
}

// ScopedVar is a variable binding registered in some scope.
type ScopedVar struct {
	ID      VarID
	Name    string
	Type    TypeID
	Mutable bool
	Scope   ScopeID // owning scope
}

// Scope is one node of the scope tree. Types and variables are not stored
// here; they live in the Manager's flat tables tagged with the scope id.
type Scope struct {
	ID      ScopeID
	Parent  ScopeID // NoScope for the global scope
	Comment string  // debugging comment (e.g., "global", "block")
}

// IsGlobal reports whether s is the root scope.
func (s *Scope) IsGlobal() bool {
	return s.Parent == NoScope
}
