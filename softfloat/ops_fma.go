package softfloat

// fma is the generic engine behind every format's fused multiply-add:
// a*b+c computed with a single rounding at the end, rather than two.
// NaN and infinity special cases are resolved first
// (including the 0*inf and inf-inf invalid combinations), then the exact
// 128-bit product of a and b is added to c's significand at the matching
// alignment before the single final rounding.
func fma(env Environment, spec formatSpec, a, b, c unpacked) unpacked {
	quietBit := sigQuietBit
	productSign := a.sign != b.sign

	if a.isNaN() || b.isNaN() || c.isNaN() {
		return propagateNaNTernary(env, quietBit, a, b, c)
	}
	if (a.isInf() && b.isZero()) || (b.isInf() && a.isZero()) {
		env.RaiseFlags(FlagInvalid)
		return defaultNaN(quietBit)
	}
	productIsInf := a.isInf() || b.isInf()
	if productIsInf && c.isInf() && productSign != c.sign {
		env.RaiseFlags(FlagInvalid)
		return defaultNaN(quietBit)
	}
	if productIsInf {
		return unpacked{class: classInfinity, sign: productSign}
	}
	if c.isInf() {
		return unpacked{class: classInfinity, sign: c.sign}
	}
	if a.isZero() || b.isZero() {
		if c.isZero() {
			if productSign == c.sign {
				return unpacked{class: classZero, sign: productSign}
			}
			sign := false
			if env.RoundingMode() == RoundMin {
				sign = true
			}
			return unpacked{class: classZero, sign: sign}
		}
		return unpacked{class: c.class, sign: c.sign, exp: c.exp, sig: c.sig}
	}

	productExp := a.exp + b.exp - spec.bias
	fullProduct := Mul64To128(a.sig, b.sig)
	if fullProduct.Hi>>63 != 0 {
		productExp++
	} else {
		fullProduct = ShiftLeft128(fullProduct, 1)
	}

	if c.isZero() {
		return roundPackWideToNarrow(env, spec, productSign, productExp, fullProduct, 0)
	}

	// Align c's significand (as a 128-bit value in the same fixed scale as
	// fullProduct, i.e. both left-justified with the leading one at bit
	// 127) to the product's exponent, then add or subtract depending on
	// whether the signs agree.
	cWide := Uint128{Hi: c.sig, Lo: 0}
	expDiff := productExp - c.exp

	var resultSign bool
	var resultExp int32
	var sum Uint128
	var extra uint32

	if productSign == c.sign {
		resultSign = productSign
		if expDiff >= 0 {
			resultExp = productExp
			shifted := shiftRightJamWideExtra(cWide, uint(expDiff))
			sum = Add128(fullProduct, shifted.hi)
			extra = shifted.extra
		} else {
			resultExp = c.exp
			shifted := shiftRightJamWideExtra(fullProduct, uint(-expDiff))
			sum = Add128(cWide, shifted.hi)
			extra = shifted.extra
		}
		if sum.Hi>>63 == 0 {
			carryBit := sum.Lo & 1
			sum = ShiftRight128(sum, 1)
			sum.Hi |= uint64(1) << 63
			extra = extra>>1 | boolToU32(carryBit != 0)<<31 | boolToU32(extra&1 != 0)
			resultExp++
		}
	} else {
		var minuend, subtrahend Uint128
		var minuendSign bool
		if expDiff >= 0 {
			resultExp = productExp
			shifted := shiftRightJamWideExtra(cWide, uint(expDiff))
			minuend, subtrahend = fullProduct, shifted.hi
			minuendSign = productSign
			extra = shifted.extra
		} else {
			resultExp = c.exp
			shifted := shiftRightJamWideExtra(fullProduct, uint(-expDiff))
			minuend, subtrahend = cWide, shifted.hi
			minuendSign = c.sign
			extra = shifted.extra
		}
		if Less128(minuend, subtrahend) {
			minuend, subtrahend = subtrahend, minuend
			minuendSign = !minuendSign
		}
		resultSign = minuendSign
		sum = Sub128(minuend, subtrahend)
		if IsZero128(sum) && extra == 0 {
			sign := false
			if env.RoundingMode() == RoundMin {
				sign = true
			}
			return unpacked{class: classZero, sign: sign}
		}
		if !IsZero128(sum) {
			shiftDist := CountLeadingZeros128(sum)
			sum = ShiftLeft128(sum, shiftDist)
			resultExp -= int32(shiftDist)
		}
	}

	return roundPackWideToNarrow(env, spec, resultSign, resultExp, sum, extra)
}

type wideExtra struct {
	hi    Uint128
	extra uint32
}

// shiftRightJamWideExtra right-shifts a 128-bit value, jamming shifted-out
// bits into a 32-bit extra sticky word rather than the Uint128 itself, so
// the 128-bit alignment in fma stays bit-exact down to the final rounding.
func shiftRightJamWideExtra(a Uint128, dist uint) wideExtra {
	if dist == 0 {
		return wideExtra{hi: a}
	}
	if dist >= 128 {
		if IsZero128(a) {
			return wideExtra{}
		}
		return wideExtra{extra: 1}
	}
	shifted := ShiftRight128(a, dist)
	sticky := anyLowBitsSet128(a, dist)
	return wideExtra{hi: shifted, extra: boolToU32(sticky)}
}

// roundPackWideToNarrow rounds a 128-bit fixed-point significand (leading
// one at bit 127, as produced by fma's exact product/sum arithmetic) down
// to a narrow format's packed result, reusing roundPackNarrow by
// collapsing the low 64 bits plus any extra sticky into one 32-bit word.
func roundPackWideToNarrow(env Environment, spec formatSpec, sign bool, exp int32, sig Uint128, extra uint32) unpacked {
	extra = mkExtra(sig.Lo) | boolToU32(extra != 0)
	return roundPackNarrowExtra(env, spec, sign, exp, sig.Hi, extra)
}

func roundPackNarrowExtra(env Environment, spec formatSpec, sign bool, exp int32, sig uint64, extra uint32) unpacked {
	return roundPackNarrow(env, spec, sign, exp, sig, extra, true)
}

func F16Fma(a, b, c Float16, env Environment) Float16 {
	return pack16(fma(env, specF16, a.unpack(), b.unpack(), c.unpack()))
}
func F32Fma(a, b, c Float32, env Environment) Float32 {
	return pack32(fma(env, specF32, a.unpack(), b.unpack(), c.unpack()))
}
func F64Fma(a, b, c Float64, env Environment) Float64 {
	return pack64(fma(env, specF64, a.unpack(), b.unpack(), c.unpack()))
}
func F80Fma(a, b, c Float80, env Environment) Float80 {
	return pack80(fma(env, specF80, a.unpack(), b.unpack(), c.unpack()))
}
