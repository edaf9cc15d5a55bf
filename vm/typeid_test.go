package vm

import "testing"

func TestTypeIDName(t *testing.T) {
	tests := []struct {
		id   TypeID
		want string
	}{
		{TypeIDType, "type"},
		{TypeIDNull, "null"},
		{TypeIDBool, "bool"},
		{TypeIDInt, "int"},
		{TypeIDUInt, "uint"},
		{TypeIDFloat, "float"},
		{TypeIDInvalid, "(invalid)"},
		// The name table has no Double entry; id 7 reports "(invalid)".
		{TypeIDDouble, "(invalid)"},
		{TypeID(999), "(invalid)"},
	}

	for _, tt := range tests {
		if got := tt.id.Name(); got != tt.want {
			t.Errorf("TypeID(%d).Name() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestTypeIDIsValid(t *testing.T) {
	if TypeIDInvalid.IsValid() {
		t.Error("TypeIDInvalid.IsValid() = true, want false")
	}
	for id := TypeIDType; id <= TypeIDDouble; id++ {
		if !id.IsValid() {
			t.Errorf("TypeID(%d).IsValid() = false, want true", id)
		}
	}
}
