package vm

import (
	"fmt"
	"math"
	"unsafe"
)

// Value represents an Alchemy value as a single tagged 64-bit word.
//
// Every value fits in the word without heap allocation. The upper 16
// bits select one of three mutually exclusive layouts:
//
//   - Short layout (upper 16 bits 0xFFFF): the high 32 bits of the word
//     are a tag, the low 32 bits a payload. Carries type ids, null,
//     booleans, int32, uint32 and float32 values.
//   - Reference layout (upper 16 bits 0x0000): the low 48 bits are a
//     pointer to an externally-owned heap object (string, tuple, array,
//     function, object, native handle). The cell never owns or frees
//     the referent.
//   - Double layout (anything else): the float64's bit pattern plus a
//     constant offset, which keeps the stored upper 16 bits inside
//     [0x0001, 0xFFFE] and so out of the other two layouts.
//
// The layout is fully determined by the bits; nothing is tracked out of
// band. Note that Go's zero Value is a nil reference cell, not Null —
// use the Null constant for the canonical empty cell.
//
// A Value is a plain word: copy it freely, compare it with ==. Set*
// methods overwrite the whole word; there is no partial mutation of a
// payload independent of its tag.
type Value uint64

// Layout and tag constants
const (
	layoutMask      uint64 = 0xFFFF000000000000
	shortLayout     uint64 = 0xFFFF000000000000
	referenceLayout uint64 = 0x0000000000000000

	// Reference payloads get 48 bits.
	referenceMask uint64 = 0x0000FFFFFFFFFFFF

	// Short-layout tags, stored in the high 32 bits of the word.
	tagType  uint32 = 0xFFFF0000 // payload: type id
	tagNull  uint32 = 0xFFFF0001 // payload: zero
	tagBool  uint32 = 0xFFFF0002 // payload: 1 or 0
	tagInt   uint32 = 0xFFFF0003 // payload: int32 bits
	tagUInt  uint32 = 0xFFFF0004 // payload: uint32 value
	tagFloat uint32 = 0xFFFF0005 // payload: float32 bits

	// Added to a float64's bits on write and subtracted on read.
	doubleOffset uint64 = 0x0001000000000000
)

// Canonical cells
const (
	Invalid Value = Value(uint64(tagType) << 32) // type cell holding TypeIDInvalid
	Null    Value = Value(uint64(tagNull) << 32)
	True    Value = Value(uint64(tagBool)<<32 | 1)
	False   Value = Value(uint64(tagBool) << 32)
)

func shortValue(tag uint32, payload uint32) Value {
	return Value(uint64(tag)<<32 | uint64(payload))
}

// shortTag returns the high 32 bits of the word.
func (v Value) shortTag() uint32 {
	return uint32(uint64(v) >> 32)
}

// payload returns the low 32 bits of the word.
func (v Value) payload() uint32 {
	return uint32(uint64(v))
}

// ---------------------------------------------------------------------------
// Layout checks
// ---------------------------------------------------------------------------

// IsShortLayout returns true if the upper 16 bits are 0xFFFF.
func (v Value) IsShortLayout() bool {
	return uint64(v)&layoutMask == shortLayout
}

// IsReferenceLayout returns true if the upper 16 bits are zero.
func (v Value) IsReferenceLayout() bool {
	return uint64(v)&layoutMask == referenceLayout
}

// IsDoubleLayout returns true for every word the other two layouts do
// not claim.
func (v Value) IsDoubleLayout() bool {
	return !v.IsShortLayout() && !v.IsReferenceLayout()
}

// ---------------------------------------------------------------------------
// Type id cells
// ---------------------------------------------------------------------------

// IsTypeID returns true if v holds a type id.
func (v Value) IsTypeID() bool {
	return v.shortTag() == tagType
}

// FromTypeID creates a cell holding a type id.
func FromTypeID(id TypeID) Value {
	return shortValue(tagType, uint32(id))
}

// SetTypeID overwrites v with the canonical type-id encoding.
func (v *Value) SetTypeID(id TypeID) {
	*v = FromTypeID(id)
}

// TypeID returns the type id held in v.
// Panics if v does not hold a type id.
func (v Value) TypeID() TypeID {
	if !v.IsTypeID() {
		panic("Value.TypeID: not a type id")
	}
	return TypeID(v.payload())
}

// ---------------------------------------------------------------------------
// Null
// ---------------------------------------------------------------------------

// IsNull returns true if v is the null cell.
func (v Value) IsNull() bool {
	return v.shortTag() == tagNull
}

// SetNull overwrites v with the canonical null encoding.
func (v *Value) SetNull() {
	*v = Null
}

// ---------------------------------------------------------------------------
// Booleans
// ---------------------------------------------------------------------------

// IsBool returns true if v is true or false.
func (v Value) IsBool() bool {
	return v.shortTag() == tagBool
}

// FromBool creates a cell from a bool.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// SetBool overwrites v with the canonical boolean encoding.
func (v *Value) SetBool(b bool) {
	*v = FromBool(b)
}

// SetTrue overwrites v with the true cell.
func (v *Value) SetTrue() {
	*v = True
}

// SetFalse overwrites v with the false cell.
func (v *Value) SetFalse() {
	*v = False
}

// IsTrue returns true only for the exact true bit pattern. This is not
// a truthiness test: references and numeric cells are never true here.
func (v Value) IsTrue() bool {
	return v == True
}

// IsFalse returns true only for the exact false bit pattern.
func (v Value) IsFalse() bool {
	return v == False
}

// Bool returns v as a bool.
// Panics if v is not a boolean.
func (v Value) Bool() bool {
	if !v.IsBool() {
		panic("Value.Bool: not a boolean")
	}
	return v == True
}

// ---------------------------------------------------------------------------
// 32-bit integers
// ---------------------------------------------------------------------------

// IsInt returns true if v holds a signed 32-bit integer.
func (v Value) IsInt() bool {
	return v.shortTag() == tagInt
}

// FromInt creates a cell from an int32.
func FromInt(n int32) Value {
	return shortValue(tagInt, uint32(n))
}

// SetInt overwrites v with the canonical int encoding.
func (v *Value) SetInt(n int32) {
	*v = FromInt(n)
}

// Int returns v as an int32.
// Panics if v is not an int.
func (v Value) Int() int32 {
	if !v.IsInt() {
		panic("Value.Int: not an int")
	}
	return int32(v.payload())
}

// IsUInt returns true if v holds an unsigned 32-bit integer.
func (v Value) IsUInt() bool {
	return v.shortTag() == tagUInt
}

// FromUInt creates a cell from a uint32.
func FromUInt(n uint32) Value {
	return shortValue(tagUInt, n)
}

// SetUInt overwrites v with the canonical uint encoding.
func (v *Value) SetUInt(n uint32) {
	*v = FromUInt(n)
}

// UInt returns v as a uint32.
// Panics if v is not a uint.
func (v Value) UInt() uint32 {
	if !v.IsUInt() {
		panic("Value.UInt: not a uint")
	}
	return v.payload()
}

// ---------------------------------------------------------------------------
// 32-bit floats
// ---------------------------------------------------------------------------

// IsFloat returns true if v holds a float32.
func (v Value) IsFloat() bool {
	return v.shortTag() == tagFloat
}

// FromFloat creates a cell from a float32.
func FromFloat(f float32) Value {
	return shortValue(tagFloat, math.Float32bits(f))
}

// SetFloat overwrites v with the canonical float encoding.
func (v *Value) SetFloat(f float32) {
	*v = FromFloat(f)
}

// Float returns v as a float32.
// Panics if v is not a float.
func (v Value) Float() float32 {
	if !v.IsFloat() {
		panic("Value.Float: not a float")
	}
	return math.Float32frombits(v.payload())
}

// ---------------------------------------------------------------------------
// References
// ---------------------------------------------------------------------------

// IsReference returns true if v holds a reference to a heap object.
func (v Value) IsReference() bool {
	return v.IsReferenceLayout()
}

// FromReference creates a cell referring to an externally-owned heap
// object. The referent's lifetime is the caller's concern: the cell is
// invisible to Go's garbage collector.
// Panics if the pointer needs more than 48 bits.
func FromReference(p unsafe.Pointer) Value {
	bits := uint64(uintptr(p))
	if bits&^referenceMask != 0 {
		panic("FromReference: pointer exceeds 48 bits")
	}
	return Value(bits)
}

// SetReference overwrites v with the canonical reference encoding.
// Panics if the pointer needs more than 48 bits.
func (v *Value) SetReference(p unsafe.Pointer) {
	*v = FromReference(p)
}

// Reference returns the pointer held in v.
// Panics if v is not a reference.
func (v Value) Reference() unsafe.Pointer {
	if !v.IsReference() {
		panic("Value.Reference: not a reference")
	}
	return unsafe.Pointer(uintptr(uint64(v) & referenceMask))
}

// ---------------------------------------------------------------------------
// 64-bit doubles
// ---------------------------------------------------------------------------

// IsDouble returns true if v holds a float64.
func (v Value) IsDouble() bool {
	return v.IsDoubleLayout()
}

// FromDouble creates a cell from a float64. The round trip is bit
// exact, NaN payloads included. Doubles whose raw upper 16 bits are
// 0xFFFE or 0xFFFF (negative NaNs with the highest payloads) would
// collide with the other layouts after the offset and are outside the
// contract.
func FromDouble(d float64) Value {
	return Value(math.Float64bits(d) + doubleOffset)
}

// SetDouble overwrites v with the canonical double encoding.
func (v *Value) SetDouble(d float64) {
	*v = FromDouble(d)
}

// Double returns v as a float64.
// Panics if v is not a double.
func (v Value) Double() float64 {
	if !v.IsDouble() {
		panic("Value.Double: not a double")
	}
	return math.Float64frombits(uint64(v) - doubleOffset)
}

// ---------------------------------------------------------------------------
// Derived queries
// ---------------------------------------------------------------------------

// IsNumeric returns true for Int, UInt, Float and Double cells.
func (v Value) IsNumeric() bool {
	return v.IsInt() || v.IsUInt() || v.IsFloat() || v.IsDouble()
}

// IsValid returns false only for the reserved invalid-type cell.
func (v Value) IsValid() bool {
	return v != Invalid
}

// Type returns the live type id of v.
//
// Reference cells report TypeIDInvalid: resolving the dynamic type of a
// referenced heap object is not supported.
func (v Value) Type() TypeID {
	if v.IsShortLayout() {
		switch v.shortTag() {
		case tagType:
			return TypeIDType
		case tagNull:
			return TypeIDNull
		case tagBool:
			return TypeIDBool
		case tagInt:
			return TypeIDInt
		case tagUInt:
			return TypeIDUInt
		case tagFloat:
			return TypeIDFloat
		default:
			return TypeIDInvalid
		}
	}
	if v.IsReferenceLayout() {
		return TypeIDInvalid
	}
	return TypeIDDouble
}

// String formats v for diagnostics.
func (v Value) String() string {
	switch {
	case v == Invalid:
		return "(invalid)"
	case v.IsTypeID():
		return fmt.Sprintf("type(%s)", v.TypeID().Name())
	case v.IsNull():
		return "null"
	case v.IsBool():
		if v == True {
			return "true"
		}
		return "false"
	case v.IsInt():
		return fmt.Sprintf("%d", v.Int())
	case v.IsUInt():
		return fmt.Sprintf("%du", v.UInt())
	case v.IsFloat():
		return fmt.Sprintf("%gf", v.Float())
	case v.IsReference():
		return fmt.Sprintf("ref(%#x)", uint64(v)&referenceMask)
	case v.IsDouble():
		return fmt.Sprintf("%g", v.Double())
	}
	return fmt.Sprintf("cell(%#016x)", uint64(v))
}
