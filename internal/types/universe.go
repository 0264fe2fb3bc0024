package types

// predeclared lists the built-in types in id order. The ids are fixed:
// defPredeclaredTypes registers them first in every Manager.
var predeclared = [...]struct {
	id   TypeID
	name string
}{
	{Unit, "Unit"},
	{Int, "Int"},
	{Float, "Float"},
	{Bool, "Bool"},
}

// defPredeclaredTypes defines Unit, Int, Float and Bool in the global scope.
func defPredeclaredTypes(m *Manager) {
	for _, p := range predeclared {
		if t := m.AddType(p.name, NoType); t.ID != p.id {
			panic("types: predeclared type " + p.name + " registered out of order")
		}
	}
}

// IsPredeclared reports whether id is one of the built-in types.
func IsPredeclared(id TypeID) bool {
	return id.IsValid() && int(id) <= numPredeclared
}

// PredeclaredName returns the name of a built-in type, or "" if id is not
// predeclared.
func PredeclaredName(id TypeID) string {
	if !IsPredeclared(id) {
		return ""
	}
	return predeclared[id-1].name
}
