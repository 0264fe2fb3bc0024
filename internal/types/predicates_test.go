package types

import "testing"

func TestIsChild(t *testing.T) {
	m := NewManager()
	meters := m.AddType("Meters", Float)
	km := m.AddType("Kilometers", meters.ID)
	flag := m.AddType("Flag", Bool)

	tests := []struct {
		name            string
		child, ancestor TypeID
		want            bool
	}{
		{"reflexive builtin", Int, Int, true},
		{"reflexive declared", meters.ID, meters.ID, true},
		{"direct parent", meters.ID, Float, true},
		{"transitive", km.ID, Float, true},
		{"intermediate", km.ID, meters.ID, true},
		{"parent is not child", Float, meters.ID, false},
		{"unrelated builtins", Int, Float, false},
		{"other hierarchy", flag.ID, Float, false},
		{"no type", NoType, Int, false},
		{"unknown id", TypeID(99), Int, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsChild(tt.child, tt.ancestor); got != tt.want {
				t.Errorf("IsChild(%d, %d) = %v, want %v", tt.child, tt.ancestor, got, tt.want)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	for id, want := range map[TypeID]bool{
		Int:    true,
		Float:  true,
		Bool:   false,
		Unit:   false,
		NoType: false,
	} {
		if got := IsNumeric(id); got != want {
			t.Errorf("IsNumeric(%d) = %v, want %v", id, got, want)
		}
	}
}
