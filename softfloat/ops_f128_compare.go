package softfloat

// compareWide is compare's Uint128 counterpart: f128's 15-bit exponent
// and 113-bit significand don't collapse into a sortable int64 the way
// compare's orderingKey does for the narrow formats, so ordering is
// decided directly from the sign/class/exponent/significand tuple.
func compareWide(env Environment, a, b unpackedWide, signaling bool) compareResult {
	if a.isNaN() || b.isNaN() {
		if a.class == classSignalingNaN || b.class == classSignalingNaN || signaling {
			env.RaiseFlags(FlagInvalid)
		}
		return compareUnordered
	}
	if a.class == classZero && b.class == classZero {
		return compareEqual
	}

	magLess := func(x, y unpackedWide) bool {
		if x.class == classZero {
			return y.class != classZero
		}
		if y.class == classZero {
			return false
		}
		if x.class == classInfinity || y.class == classInfinity {
			return x.class != classInfinity && y.class == classInfinity
		}
		if x.exp != y.exp {
			return x.exp < y.exp
		}
		return Less128(x.sig, y.sig)
	}
	magEqual := func(x, y unpackedWide) bool {
		if x.class != y.class {
			return false
		}
		if x.class == classZero || x.class == classInfinity {
			return true
		}
		return x.exp == y.exp && x.sig == y.sig
	}

	switch {
	case a.sign != b.sign:
		aZero := a.class == classZero
		bZero := b.class == classZero
		if aZero && bZero {
			return compareEqual
		}
		if a.sign {
			return compareLess
		}
		return compareGreater
	case magEqual(a, b):
		return compareEqual
	case magLess(a, b) != a.sign: // magnitude comparison, flipped for negative operands
		return compareLess
	default:
		return compareGreater
	}
}

func F128Eq(a, b Float128, env Environment) bool {
	return compareWide(env, a.unpack(), b.unpack(), false) == compareEqual
}
func F128Lt(a, b Float128, env Environment) bool {
	return compareWide(env, a.unpack(), b.unpack(), true) == compareLess
}
func F128Le(a, b Float128, env Environment) bool {
	r := compareWide(env, a.unpack(), b.unpack(), true)
	return r == compareLess || r == compareEqual
}
func F128EqSignaling(a, b Float128, env Environment) bool {
	return compareWide(env, a.unpack(), b.unpack(), true) == compareEqual
}
func F128LtQuiet(a, b Float128, env Environment) bool {
	return compareWide(env, a.unpack(), b.unpack(), false) == compareLess
}
func F128LeQuiet(a, b Float128, env Environment) bool {
	r := compareWide(env, a.unpack(), b.unpack(), false)
	return r == compareLess || r == compareEqual
}
func F128IsSignalingNaN(a Float128) bool { return a.unpack().class == classSignalingNaN }
