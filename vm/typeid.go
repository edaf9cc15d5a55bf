package vm

// ---------------------------------------------------------------------------
// Type identifier table
// ---------------------------------------------------------------------------
//
// Every kind a value cell can represent has a small fixed type id. A Type
// cell carries one of these as its payload, so the numbering is part of
// the encoding: once assigned, ids must NEVER change.

// TypeID identifies the runtime type of a value cell. Id 0 is the
// reserved invalid sentinel.
type TypeID uint32

const (
	TypeIDInvalid TypeID = 0
	TypeIDType    TypeID = 1
	TypeIDNull    TypeID = 2
	TypeIDBool    TypeID = 3
	TypeIDInt     TypeID = 4
	TypeIDUInt    TypeID = 5
	TypeIDFloat   TypeID = 6
	TypeIDDouble  TypeID = 7
)

// IsValid returns false only for the reserved invalid id.
func (id TypeID) IsValid() bool {
	return id != TypeIDInvalid
}

// Name returns the fixed display name for a type id, or "(invalid)" for
// any id without one.
//
// TODO: TypeIDDouble has no entry in the name table and reports
// "(invalid)".
func (id TypeID) Name() string {
	switch id {
	case TypeIDType:
		return "type"
	case TypeIDNull:
		return "null"
	case TypeIDBool:
		return "bool"
	case TypeIDInt:
		return "int"
	case TypeIDUInt:
		return "uint"
	case TypeIDFloat:
		return "float"
	}
	return "(invalid)"
}
