package softfloat

import "math/bits"

// reduceMagnitude performs one step of exact long-division-style
// reduction of a normalized 64-bit significand at exponent remExp modulo
// a normalized 64-bit divisor significand at exponent bExp, consuming up
// to 62 bits of the exponent gap per call. It returns the reduced,
// renormalized remainder and its new exponent, or ok=false if the
// remainder collapsed to exactly zero.
func reduceMagnitude(remSig uint64, remExp int32, bSig uint64, bExp int32) (newSig uint64, newExp int32, ok bool) {
	shift := uint(remExp - bExp)
	if shift > 62 {
		shift = 62
	}
	scaled := ShiftLeft128(Uint128{Lo: remSig}, shift)
	_, r := bits.Div64(scaled.Hi, scaled.Lo, bSig)
	if r == 0 {
		return 0, 0, false
	}
	lz := CountLeadingZeros64(r)
	return r << lz, remExp - int32(shift) - int32(lz), true
}

// remOp is the generic engine behind every format's IEEE remainder: NaN
// and zero/infinity special cases first, then exact chunked long-division
// reduction of |a| modulo |b| down to a remainder smaller in magnitude
// than b, sign taken from a. Extreme exponent gaps are
// reduced 62 bits at a time rather than in a single step, the same
// digit-recurrence idea roundPackNarrow's callers use elsewhere in this
// file, just applied to a modulus instead of a quotient.
func remOp(env Environment, spec formatSpec, a, b unpacked) unpacked {
	quietBit := sigQuietBit

	if a.isNaN() || b.isNaN() {
		return propagateNaNBinary(env, quietBit, a, b)
	}
	if b.isZero() || a.isInf() {
		env.RaiseFlags(FlagInvalid)
		return defaultNaN(quietBit)
	}
	if a.isZero() {
		return unpacked{class: classZero, sign: a.sign}
	}
	if b.isInf() {
		return a
	}

	remSig, remExp := a.sig, a.exp
	bSig, bExp := b.sig, b.exp

	const maxIterations = 4096
	for i := 0; i < maxIterations && remExp > bExp; i++ {
		newSig, newExp, ok := reduceMagnitude(remSig, remExp, bSig, bExp)
		if !ok {
			return unpacked{class: classZero, sign: a.sign}
		}
		if newExp >= remExp {
			break
		}
		remSig, remExp = newSig, newExp
	}

	if remExp == bExp && remSig >= bSig {
		remSig -= bSig
		if remSig == 0 {
			return unpacked{class: classZero, sign: a.sign}
		}
		lz := CountLeadingZeros64(remSig)
		remSig <<= lz
		remExp -= int32(lz)
	}

	return roundPackNarrow(env, spec, a.sign, remExp, remSig, 0, true)
}

func F16Rem(a, b Float16, env Environment) Float16 { return pack16(remOp(env, specF16, a.unpack(), b.unpack())) }
func F32Rem(a, b Float32, env Environment) Float32 { return pack32(remOp(env, specF32, a.unpack(), b.unpack())) }
func F64Rem(a, b Float64, env Environment) Float64 { return pack64(remOp(env, specF64, a.unpack(), b.unpack())) }
func F80Rem(a, b Float80, env Environment) Float80 { return pack80(remOp(env, specF80, a.unpack(), b.unpack())) }
