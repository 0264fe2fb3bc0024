// Package types implements the scope manager for the alloy type checker:
// id-addressed tables of types and variables tagged by their owning scope.
// This package has no AST dependencies.
package types

import "fmt"

// TypeID identifies a type for the lifetime of one checking session.
// Types are compared by id, never by address.
type TypeID int32

// VarID identifies a variable for the lifetime of one checking session.
type VarID int32

// ScopeID identifies a lexical scope.
type ScopeID int32

// Zero ids mean "absent". Allocation starts at 1, so the zero value of
// an AST node's type annotation reads as unchecked.
const (
	NoType  TypeID  = 0
	NoVar   VarID   = 0
	NoScope ScopeID = 0
)

// Predeclared type ids. These are fixed for every Manager.
const (
	Unit TypeID = iota + 1
	Int
	Float
	Bool

	numPredeclared = int(Bool)
)

// Global is the id of the root scope holding the predeclared types.
const Global ScopeID = 1

// IsValid reports whether id names a type (not NoType).
func (id TypeID) IsValid() bool {
	return id > NoType
}

func (id TypeID) String() string {
	if !id.IsValid() {
		return "unchecked"
	}
	return fmt.Sprintf("type#%d", int32(id))
}

// IsNumeric reports whether id is one of the predeclared numeric types.
func IsNumeric(id TypeID) bool {
	return id == Int || id == Float
}
