package vm

// ---------------------------------------------------------------------------
// Numeric addition
// ---------------------------------------------------------------------------
//
// The sum of two cells is computed in the wider of the two operand
// types, ranked Int/UInt (equal rank) < Float < Double, and the result
// cell holds that wider type. Mixing Int and UInt adds in uint32 with
// native wraparound; there is no widening to a 64-bit integer.

// Add returns the numeric sum of lhs and rhs, or the Invalid cell when
// either operand is non-numeric (Type, Null, Bool and Reference all
// count as non-numeric; references are never dereferenced). Invalid is
// a normal return value, not a failure: callers check IsValid.
func Add(lhs, rhs Value) Value {
	switch {
	case lhs.IsInt():
		switch {
		case rhs.IsInt():
			return FromInt(lhs.Int() + rhs.Int())
		case rhs.IsUInt():
			return FromUInt(uint32(lhs.Int()) + rhs.UInt())
		case rhs.IsFloat():
			return FromFloat(float32(lhs.Int()) + rhs.Float())
		case rhs.IsDouble():
			return FromDouble(float64(lhs.Int()) + rhs.Double())
		}
	case lhs.IsUInt():
		switch {
		case rhs.IsInt():
			return FromUInt(lhs.UInt() + uint32(rhs.Int()))
		case rhs.IsUInt():
			return FromUInt(lhs.UInt() + rhs.UInt())
		case rhs.IsFloat():
			return FromFloat(float32(lhs.UInt()) + rhs.Float())
		case rhs.IsDouble():
			return FromDouble(float64(lhs.UInt()) + rhs.Double())
		}
	case lhs.IsFloat():
		switch {
		case rhs.IsInt():
			return FromFloat(lhs.Float() + float32(rhs.Int()))
		case rhs.IsUInt():
			return FromFloat(lhs.Float() + float32(rhs.UInt()))
		case rhs.IsFloat():
			return FromFloat(lhs.Float() + rhs.Float())
		case rhs.IsDouble():
			return FromDouble(float64(lhs.Float()) + rhs.Double())
		}
	case lhs.IsDouble():
		switch {
		case rhs.IsInt():
			return FromDouble(lhs.Double() + float64(rhs.Int()))
		case rhs.IsUInt():
			return FromDouble(lhs.Double() + float64(rhs.UInt()))
		case rhs.IsFloat():
			return FromDouble(lhs.Double() + float64(rhs.Float()))
		case rhs.IsDouble():
			return FromDouble(lhs.Double() + rhs.Double())
		}
	}

	return Invalid
}
