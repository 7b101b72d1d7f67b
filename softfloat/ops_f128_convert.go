package softfloat

// narrowToWide promotes a narrow unpacked value into f128's wider
// container. Widening a finite value is always exact: f128's 113-bit
// significand has strictly more precision than any narrower format, so
// the promoted significand just gets zero-extended into the low bits
// rather than rounded.
func narrowToWide(srcSpec formatSpec, a unpacked) unpackedWide {
	if a.isNaN() {
		return unpackedWide{class: a.class, sign: a.sign, sig: Uint128{Hi: a.sig}}
	}
	if a.isInf() || a.isZero() {
		return unpackedWide{class: a.class, sign: a.sign}
	}
	biasDelta := specF128.bias - srcSpec.bias
	return unpackedWide{class: classNormal, sign: a.sign, exp: a.exp + biasDelta, sig: Uint128{Hi: a.sig}}
}

// wideToNarrow narrows an f128 value into dstSpec, truncating the
// significand's low 64 bits into roundPackNarrow's sticky extra word so
// the narrowing rounds exactly rather than by simple truncation.
func wideToNarrow(env Environment, dstSpec formatSpec, a unpackedWide) unpacked {
	if a.isNaN() {
		u := unpacked{class: a.class, sign: a.sign, sig: a.sig.Hi}
		return propagateNaNUnary(env, sigQuietBit, u)
	}
	if a.class == classInfinity || a.class == classZero {
		return unpacked{class: a.class, sign: a.sign}
	}
	biasDelta := dstSpec.bias - specF128.bias
	extra := mkExtra(a.sig.Lo)
	return roundPackNarrow(env, dstSpec, a.sign, a.exp+biasDelta, a.sig.Hi, extra, true)
}

func F16ToF128(a Float16, env Environment) Float128 { return pack128(narrowToWide(specF16, a.unpack())) }
func F32ToF128(a Float32, env Environment) Float128 { return pack128(narrowToWide(specF32, a.unpack())) }
func F64ToF128(a Float64, env Environment) Float128 { return pack128(narrowToWide(specF64, a.unpack())) }
func F80ToF128(a Float80, env Environment) Float128 { return pack128(narrowToWide(specF80, a.unpack())) }

func F128ToF16(a Float128, env Environment) Float16 { return pack16(wideToNarrow(env, specF16, a.unpack())) }
func F128ToF32(a Float128, env Environment) Float32 { return pack32(wideToNarrow(env, specF32, a.unpack())) }
func F128ToF64(a Float128, env Environment) Float64 { return pack64(wideToNarrow(env, specF64, a.unpack())) }
func F128ToF80(a Float128, env Environment) Float80 { return pack80(wideToNarrow(env, specF80, a.unpack())) }

// i64ToFloatWide and u64ToFloatWide are i64ToFloat/u64ToFloat's Uint128
// counterparts: exp is left unbiased, matching i64ToFloat's convention,
// so callers add specF128.bias before handing the result to roundPackWide.
func i64ToFloatWide(v int64) unpackedWide {
	if v == 0 {
		return unpackedWide{class: classZero}
	}
	sign := v < 0
	mag := uint64(v)
	if sign {
		mag = uint64(-v)
	}
	lz := CountLeadingZeros64(mag)
	return unpackedWide{class: classNormal, sign: sign, exp: 63 - int32(lz), sig: Uint128{Hi: mag << lz}}
}

func u64ToFloatWide(v uint64) unpackedWide {
	if v == 0 {
		return unpackedWide{class: classZero}
	}
	lz := CountLeadingZeros64(v)
	return unpackedWide{class: classNormal, exp: 63 - int32(lz), sig: Uint128{Hi: v << lz}}
}

func fromIntWide(env Environment, v int64) unpackedWide {
	u := i64ToFloatWide(v)
	if u.class == classZero {
		return u
	}
	cls, sign, exp, sig := roundPackWide(env, specF128, u.sign, u.exp+specF128.bias, u.sig, 0, true)
	return unpackedWide{class: cls, sign: sign, exp: exp, sig: sig}
}

func fromUintWide(env Environment, v uint64) unpackedWide {
	u := u64ToFloatWide(v)
	if u.class == classZero {
		return u
	}
	cls, sign, exp, sig := roundPackWide(env, specF128, false, u.exp+specF128.bias, u.sig, 0, true)
	return unpackedWide{class: cls, sign: sign, exp: exp, sig: sig}
}

func F128FromI32(v int32, env Environment) Float128 { return pack128(fromIntWide(env, int64(v))) }
func F128FromI64(v int64, env Environment) Float128 { return pack128(fromIntWide(env, v)) }
func F128FromU32(v uint32, env Environment) Float128 { return pack128(fromUintWide(env, uint64(v))) }
func F128FromU64(v uint64, env Environment) Float128 { return pack128(fromUintWide(env, v)) }

// floatToI64Wide is floatToI64's Uint128 counterpart, used only by
// F128ToI64/F128ToI32 since f128 is never the source of a 32/16-bit
// narrowing path elsewhere in this file.
func floatToI64Wide(env Environment, a unpackedWide, mode RoundingMode) int64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), true, false)
	}
	if a.class == classInfinity {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, a.sign)
	}
	if a.class == classZero {
		return 0
	}

	unbiasedExp := a.exp - specF128.bias
	if unbiasedExp < 0 {
		roundsToOne := roundIncrement(mode, a.sign, unbiasedExp == -1, unbiasedExp < -1 || a.sig != (Uint128{Hi: uint64(1) << 63}), false)
		env.RaiseFlags(FlagInexact)
		if !roundsToOne {
			return 0
		}
		if a.sign {
			return -1
		}
		return 1
	}
	if unbiasedExp > 62 {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, a.sign)
	}

	// unbiasedExp in [0,62] puts shift in [65,127], always within range.
	shift := uint(127 - unbiasedExp)
	whole := ShiftRight128(a.sig, shift).Lo
	bitPos := shift - 1
	roundBit := (ShiftRight128(a.sig, bitPos).Lo & 1) != 0
	sticky := bitPos > 0 && anyLowBitsSet128(a.sig, bitPos)
	if roundBit || sticky {
		if roundIncrement(mode, a.sign, roundBit, sticky, whole&1 != 0) {
			whole++
		}
		env.RaiseFlags(FlagInexact)
	}
	if a.sign {
		if whole > uint64(1)<<63 {
			env.RaiseFlags(FlagInvalid)
			return i64ConversionSentinel(env.NaNTarget(), false, true)
		}
		return -int64(whole)
	}
	if whole > uint64(1)<<63-1 {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, false)
	}
	return int64(whole)
}

// floatToU64Wide is floatToI64Wide's unsigned counterpart, mirroring
// floatToU64's relationship to floatToI64.
func floatToU64Wide(env Environment, a unpackedWide, mode RoundingMode) uint64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(false)
	}
	if a.class == classInfinity {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(a.sign)
	}
	if a.class == classZero {
		return 0
	}
	if a.sign {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(true)
	}

	unbiasedExp := a.exp - specF128.bias
	if unbiasedExp < 0 {
		roundsToOne := roundIncrement(mode, false, unbiasedExp == -1, unbiasedExp < -1 || a.sig != (Uint128{Hi: uint64(1) << 63}), false)
		env.RaiseFlags(FlagInexact)
		if roundsToOne {
			return 1
		}
		return 0
	}
	if unbiasedExp > 63 {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(false)
	}

	shift := uint(127 - unbiasedExp)
	whole := ShiftRight128(a.sig, shift).Lo
	bitPos := shift - 1
	roundBit := (ShiftRight128(a.sig, bitPos).Lo & 1) != 0
	sticky := bitPos > 0 && anyLowBitsSet128(a.sig, bitPos)
	if roundBit || sticky {
		if roundIncrement(mode, false, roundBit, sticky, whole&1 != 0) {
			whole++
		}
		env.RaiseFlags(FlagInexact)
	}
	return whole
}

// floatToI64RMinMagWide and floatToU64RMinMagWide truncate toward zero
// without entering the rounding pipeline, f128's analogue of
// floatToI64RMinMag/floatToU64RMinMag.
func floatToI64RMinMagWide(env Environment, a unpackedWide, exact bool) int64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), true, false)
	}
	if a.class == classInfinity {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, a.sign)
	}
	if a.class == classZero {
		return 0
	}

	unbiasedExp := a.exp - specF128.bias
	if unbiasedExp < 0 {
		if exact {
			env.RaiseFlags(FlagInexact)
		}
		return 0
	}
	if unbiasedExp > 62 {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, a.sign)
	}

	shift := uint(127 - unbiasedExp)
	whole := ShiftRight128(a.sig, shift).Lo
	if exact && anyLowBitsSet128(a.sig, shift) {
		env.RaiseFlags(FlagInexact)
	}
	if a.sign {
		if whole > uint64(1)<<63 {
			env.RaiseFlags(FlagInvalid)
			return i64ConversionSentinel(env.NaNTarget(), false, true)
		}
		return -int64(whole)
	}
	if whole > uint64(1)<<63-1 {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, false)
	}
	return int64(whole)
}

func floatToU64RMinMagWide(env Environment, a unpackedWide, exact bool) uint64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(false)
	}
	if a.class == classInfinity {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(a.sign)
	}
	if a.class == classZero {
		return 0
	}
	if a.sign {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(true)
	}

	unbiasedExp := a.exp - specF128.bias
	if unbiasedExp < 0 {
		if exact {
			env.RaiseFlags(FlagInexact)
		}
		return 0
	}
	if unbiasedExp > 63 {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(false)
	}

	shift := uint(127 - unbiasedExp)
	whole := ShiftRight128(a.sig, shift).Lo
	if exact && anyLowBitsSet128(a.sig, shift) {
		env.RaiseFlags(FlagInexact)
	}
	return whole
}

func F128ToI64(a Float128, mode RoundingMode, env Environment) int64 {
	return floatToI64Wide(env, a.unpack(), mode)
}
func F128ToI32(a Float128, mode RoundingMode, env Environment) int32 {
	v := floatToI64Wide(env, a.unpack(), mode)
	if v > int64(1)<<31-1 || v < -(int64(1)<<31) {
		env.RaiseFlags(FlagInvalid)
		nanLike := a.Classify() == "quietNaN" || a.Classify() == "signalingNaN"
		return i32ConversionSentinel(env.NaNTarget(), nanLike, v < 0)
	}
	return int32(v)
}
func F128ToU64(a Float128, mode RoundingMode, env Environment) uint64 {
	return floatToU64Wide(env, a.unpack(), mode)
}
func F128ToU32(a Float128, mode RoundingMode, env Environment) uint32 {
	return narrowU32(env, floatToU64Wide(env, a.unpack(), mode))
}
func F128ToI64RMinMag(a Float128, exact bool, env Environment) int64 {
	return floatToI64RMinMagWide(env, a.unpack(), exact)
}
func F128ToI32RMinMag(a Float128, exact bool, env Environment) int32 {
	v := floatToI64RMinMagWide(env, a.unpack(), exact)
	if v > int64(1)<<31-1 || v < -(int64(1)<<31) {
		env.RaiseFlags(FlagInvalid)
		nanLike := a.Classify() == "quietNaN" || a.Classify() == "signalingNaN"
		return i32ConversionSentinel(env.NaNTarget(), nanLike, v < 0)
	}
	return int32(v)
}
func F128ToU64RMinMag(a Float128, exact bool, env Environment) uint64 {
	return floatToU64RMinMagWide(env, a.unpack(), exact)
}
func F128ToU32RMinMag(a Float128, exact bool, env Environment) uint32 {
	return narrowU32(env, floatToU64RMinMagWide(env, a.unpack(), exact))
}
