package softfloat

import "math/bits"

// divSignificands divides two left-justified (leading one at bit 63)
// significands and renormalizes the quotient back to a left-justified
// 64-bit significand, reporting the resulting exponent bump (0 or -1,
// since the quotient of two [1,2)-scaled values falls in (0.5, 2)) and a
// round/sticky-encoded extra word derived from the exact remainder.
// It uses math/bits.Div64 for the 128-by-64 division step because no
// third-party module in this repository's dependency set offers a
// fixed-width division-with-remainder primitive; math/bits is the
// standard library's own bit-twiddling package, the same tier as the
// shift/rotate helpers every Go arbitrary-precision library reaches for.
func divSignificands(aSig, bSig uint64) (sig uint64, expBump int32, extra uint32) {
	q, rem := bits.Div64(aSig>>1, aSig<<63, bSig)

	roundBit, sticky := divRoundSticky(rem, bSig)
	extra = boolToU32(roundBit)<<31 | boolToU32(sticky)

	if q>>63 != 0 {
		return q, 0, extra
	}
	return q << 1, -1, extra
}

// divRoundSticky classifies a division remainder against its divisor into
// the (round bit, sticky bit) pair: exact (0,0), less than half-ULP past
// the quotient (0,1), exactly half-ULP (1,0), or more than half (1,1).
func divRoundSticky(rem, divisor uint64) (roundBit, sticky bool) {
	if rem == 0 {
		return false, false
	}
	twiceRem := ShiftLeft128(Uint128{Lo: rem}, 1)
	divisor128 := Uint128{Lo: divisor}
	switch {
	case Less128(twiceRem, divisor128):
		return false, true
	case twiceRem == divisor128:
		return true, false
	default:
		return true, true
	}
}

// div is the generic engine behind every format's Div: NaN/infinity/zero
// special cases first (including the 0/0 and inf/inf invalid cases and
// the x/0 division-by-zero-raises-infinite case), then exponent
// subtraction plus significand division for the finite/finite case.
func div(env Environment, spec formatSpec, a, b unpacked) unpacked {
	quietBit := sigQuietBit
	resultSign := a.sign != b.sign

	if a.isNaN() || b.isNaN() {
		return propagateNaNBinary(env, quietBit, a, b)
	}
	if a.isInf() && b.isInf() {
		env.RaiseFlags(FlagInvalid)
		return defaultNaN(quietBit)
	}
	if a.isZero() && b.isZero() {
		env.RaiseFlags(FlagInvalid)
		return defaultNaN(quietBit)
	}
	if a.isInf() || b.isZero() {
		if b.isZero() && !a.isInf() {
			env.RaiseFlags(FlagInfinite)
		}
		return unpacked{class: classInfinity, sign: resultSign}
	}
	if a.isZero() || b.isInf() {
		return unpacked{class: classZero, sign: resultSign}
	}

	expDiff := a.exp - b.exp + spec.bias
	sig, bump, extra := divSignificands(a.sig, b.sig)
	return roundPackNarrow(env, spec, resultSign, expDiff+bump, sig, extra, true)
}

func F16Div(a, b Float16, env Environment) Float16 { return pack16(div(env, specF16, a.unpack(), b.unpack())) }
func F32Div(a, b Float32, env Environment) Float32 { return pack32(div(env, specF32, a.unpack(), b.unpack())) }
func F64Div(a, b Float64, env Environment) Float64 { return pack64(div(env, specF64, a.unpack(), b.unpack())) }
func F80Div(a, b Float80, env Environment) Float80 { return pack80(div(env, specF80, a.unpack(), b.unpack())) }

func (a Float16) Div(b Float16, env Environment) Float16 { return F16Div(a, b, env) }
func (a Float32) Div(b Float32, env Environment) Float32 { return F32Div(a, b, env) }
func (a Float64) Div(b Float64, env Environment) Float64 { return F64Div(a, b, env) }
func (a Float80) Div(b Float80, env Environment) Float80 { return F80Div(a, b, env) }
