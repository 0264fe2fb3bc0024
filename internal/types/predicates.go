package types

// IsChild reports whether child is ancestor or a nominal descendant of it.
// The relation is reflexive and follows Parent links to the root; it is
// the only subtyping the checker performs.
func (m *Manager) IsChild(child, ancestor TypeID) bool {
	for child.IsValid() {
		if child == ancestor {
			return true
		}
		t := m.Type(child)
		if t == nil {
			return false
		}
		child = t.Parent
	}
	return false
}

