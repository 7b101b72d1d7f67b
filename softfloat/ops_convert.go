package softfloat

// convertFormat is the generic engine behind every narrow-to-narrow
// format conversion: re-round a's significand to dstSpec's
// width, widening is always exact (dstSpec.sigWidth > spec.sigWidth means
// zero-extension, never inexact), narrowing goes through the ordinary
// rounding pipeline.
func convertFormat(env Environment, srcSpec, dstSpec formatSpec, a unpacked) unpacked {
	if a.isNaN() {
		return propagateNaNUnary(env, sigQuietBit, a)
	}
	if a.isInf() || a.isZero() {
		return a
	}
	biasDelta := dstSpec.bias - srcSpec.bias
	return roundPackNarrow(env, dstSpec, a.sign, a.exp+biasDelta, a.sig, 0, true)
}

func F32ToF64(a Float32, env Environment) Float64 { return pack64(convertFormat(env, specF32, specF64, a.unpack())) }
func F64ToF32(a Float64, env Environment) Float32 { return pack32(convertFormat(env, specF64, specF32, a.unpack())) }
func F16ToF32(a Float16, env Environment) Float32 { return pack32(convertFormat(env, specF16, specF32, a.unpack())) }
func F32ToF16(a Float32, env Environment) Float16 { return pack16(convertFormat(env, specF32, specF16, a.unpack())) }
func F16ToF64(a Float16, env Environment) Float64 { return pack64(convertFormat(env, specF16, specF64, a.unpack())) }
func F64ToF16(a Float64, env Environment) Float16 { return pack16(convertFormat(env, specF64, specF16, a.unpack())) }
func F32ToF80(a Float32, env Environment) Float80 { return pack80(convertFormat(env, specF32, specF80, a.unpack())) }
func F80ToF32(a Float80, env Environment) Float32 { return pack32(convertFormat(env, specF80, specF32, a.unpack())) }
func F64ToF80(a Float64, env Environment) Float80 { return pack80(convertFormat(env, specF64, specF80, a.unpack())) }
func F80ToF64(a Float80, env Environment) Float64 { return pack64(convertFormat(env, specF80, specF64, a.unpack())) }
func F16ToF80(a Float16, env Environment) Float80 { return pack80(convertFormat(env, specF16, specF80, a.unpack())) }
func F80ToF16(a Float80, env Environment) Float16 { return pack16(convertFormat(env, specF80, specF16, a.unpack())) }

// i64ToFloat converts a signed 64-bit integer to the narrow engine's
// canonical unpacked form, which every i32ToFxx/i64ToFxx entry point
// shares.
func i64ToFloat(v int64) unpacked {
	if v == 0 {
		return unpacked{class: classZero}
	}
	sign := v < 0
	mag := uint64(v)
	if sign {
		mag = uint64(-v)
	}
	lz := CountLeadingZeros64(mag)
	return unpacked{class: classNormal, sign: sign, exp: 63 - int32(lz), sig: mag << lz}
}

func u64ToFloat(v uint64) unpacked {
	if v == 0 {
		return unpacked{class: classZero}
	}
	lz := CountLeadingZeros64(v)
	return unpacked{class: classNormal, exp: 63 - int32(lz), sig: v << lz}
}

// fromIntNarrow and fromUintNarrow are the shared engines behind every
// narrow format's FromI32/FromI64/FromU32/FromU64 entry point: build the
// canonical unpacked magnitude, then round it into spec's width.
func fromIntNarrow(env Environment, spec formatSpec, v int64) unpacked {
	u := i64ToFloat(v)
	if u.class == classZero {
		return u
	}
	return roundPackNarrow(env, spec, u.sign, u.exp+spec.bias, u.sig, 0, true)
}

func fromUintNarrow(env Environment, spec formatSpec, v uint64) unpacked {
	u := u64ToFloat(v)
	if u.class == classZero {
		return u
	}
	return roundPackNarrow(env, spec, false, u.exp+spec.bias, u.sig, 0, true)
}

func F16FromI32(v int32, env Environment) Float16 { return pack16(fromIntNarrow(env, specF16, int64(v))) }
func F16FromI64(v int64, env Environment) Float16 { return pack16(fromIntNarrow(env, specF16, v)) }
func F16FromU32(v uint32, env Environment) Float16 { return pack16(fromUintNarrow(env, specF16, uint64(v))) }
func F16FromU64(v uint64, env Environment) Float16 { return pack16(fromUintNarrow(env, specF16, v)) }

func F32FromI32(v int32, env Environment) Float32 { return pack32(fromIntNarrow(env, specF32, int64(v))) }
func F32FromI64(v int64, env Environment) Float32 { return pack32(fromIntNarrow(env, specF32, v)) }
func F32FromU32(v uint32, env Environment) Float32 { return pack32(fromUintNarrow(env, specF32, uint64(v))) }
func F32FromU64(v uint64, env Environment) Float32 { return pack32(fromUintNarrow(env, specF32, v)) }

func F64FromI32(v int32, env Environment) Float64 { return pack64(fromIntNarrow(env, specF64, int64(v))) }
func F64FromI64(v int64, env Environment) Float64 { return pack64(fromIntNarrow(env, specF64, v)) }
func F64FromU32(v uint32, env Environment) Float64 { return pack64(fromUintNarrow(env, specF64, uint64(v))) }
func F64FromU64(v uint64, env Environment) Float64 { return pack64(fromUintNarrow(env, specF64, v)) }

func F80FromI32(v int32, env Environment) Float80 { return pack80(fromIntNarrow(env, specF80, int64(v))) }
func F80FromI64(v int64, env Environment) Float80 { return pack80(fromIntNarrow(env, specF80, v)) }
func F80FromU32(v uint32, env Environment) Float80 { return pack80(fromUintNarrow(env, specF80, uint64(v))) }
func F80FromU64(v uint64, env Environment) Float80 { return pack80(fromUintNarrow(env, specF80, v)) }

// floatToI64 is the generic engine behind every ToInt conversion: NaN and
// out-of-range magnitudes deliver the target-selected sentinel from
// sentinels.go, in-range finite values truncate-then-round their
// fractional part according to mode. unpacked.exp is
// the biased encoded exponent (the same convention roundPackNarrow's
// callers use), so it is debiased against spec before use here.
func floatToI64(env Environment, spec formatSpec, a unpacked, mode RoundingMode) int64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), true, false)
	}
	if a.isInf() {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, a.sign)
	}
	if a.isZero() {
		return 0
	}

	unbiasedExp := a.exp - spec.bias
	if unbiasedExp < 0 {
		roundsToOne := roundIncrement(mode, a.sign, unbiasedExp == -1, unbiasedExp < -1 || a.sig != uint64(1)<<63, false)
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

	shift := uint(63 - unbiasedExp)
	whole := a.sig >> shift
	fracMask := uint64(1)<<shift - 1
	frac := a.sig & fracMask
	if frac != 0 {
		roundBit := frac>>(shift-1)&1 != 0
		sticky := shift > 1 && frac&(fracMask>>1) != 0
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

// floatToU64 is floatToI64's unsigned counterpart: any negative operand
// (other than negative zero, already handled by isZero) is out of an
// unsigned destination's range regardless of magnitude.
func floatToU64(env Environment, spec formatSpec, a unpacked, mode RoundingMode) uint64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(false)
	}
	if a.isInf() {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(a.sign)
	}
	if a.isZero() {
		return 0
	}
	if a.sign {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(true)
	}

	unbiasedExp := a.exp - spec.bias
	if unbiasedExp < 0 {
		roundsToOne := roundIncrement(mode, false, unbiasedExp == -1, unbiasedExp < -1 || a.sig != uint64(1)<<63, false)
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

	shift := uint(63 - unbiasedExp)
	whole := a.sig >> shift
	fracMask := uint64(1)<<shift - 1
	frac := a.sig & fracMask
	if frac != 0 {
		roundBit := frac>>(shift-1)&1 != 0
		sticky := shift > 1 && frac&(fracMask>>1) != 0
		if roundIncrement(mode, false, roundBit, sticky, whole&1 != 0) {
			whole++
		}
		env.RaiseFlags(FlagInexact)
	}
	return whole
}

// floatToI64RMinMag and floatToU64RMinMag are floatToI64/floatToU64's
// rounding-pipeline-free counterparts: the fractional part is always
// truncated toward zero, never rounded, and inexact is raised only when
// the caller asks for it via exact.
func floatToI64RMinMag(env Environment, spec formatSpec, a unpacked, exact bool) int64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), true, false)
	}
	if a.isInf() {
		env.RaiseFlags(FlagInvalid)
		return i64ConversionSentinel(env.NaNTarget(), false, a.sign)
	}
	if a.isZero() {
		return 0
	}

	unbiasedExp := a.exp - spec.bias
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

	shift := uint(63 - unbiasedExp)
	whole := a.sig >> shift
	if exact && a.sig&(uint64(1)<<shift-1) != 0 {
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

func floatToU64RMinMag(env Environment, spec formatSpec, a unpacked, exact bool) uint64 {
	if a.isNaN() {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(false)
	}
	if a.isInf() {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(a.sign)
	}
	if a.isZero() {
		return 0
	}
	if a.sign {
		env.RaiseFlags(FlagInvalid)
		return u64ConversionSentinel(true)
	}

	unbiasedExp := a.exp - spec.bias
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

	shift := uint(63 - unbiasedExp)
	whole := a.sig >> shift
	if exact && a.sig&(uint64(1)<<shift-1) != 0 {
		env.RaiseFlags(FlagInexact)
	}
	return whole
}

// narrow32 and narrowU32 carry a 64-bit conversion result down to 32 bits,
// delivering the 32-bit sentinel in place of any out-of-range result.
func narrow32(env Environment, target NaNTarget, a unpacked, v int64) int32 {
	if v > int64(1)<<31-1 || v < -(int64(1)<<31) {
		env.RaiseFlags(FlagInvalid)
		nanLike := a.class == classQuietNaN || a.class == classSignalingNaN
		return i32ConversionSentinel(target, nanLike, v < 0)
	}
	return int32(v)
}

func narrowU32(env Environment, v uint64) uint32 {
	if v > uint64(^uint32(0)) {
		env.RaiseFlags(FlagInvalid)
		return u32ConversionSentinel(false)
	}
	return uint32(v)
}

func F16ToI64(a Float16, mode RoundingMode, env Environment) int64 { return floatToI64(env, specF16, a.unpack(), mode) }
func F16ToI32(a Float16, mode RoundingMode, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64(env, specF16, u, mode))
}
func F16ToU64(a Float16, mode RoundingMode, env Environment) uint64 { return floatToU64(env, specF16, a.unpack(), mode) }
func F16ToU32(a Float16, mode RoundingMode, env Environment) uint32 {
	return narrowU32(env, floatToU64(env, specF16, a.unpack(), mode))
}
func F16ToI64RMinMag(a Float16, exact bool, env Environment) int64 {
	return floatToI64RMinMag(env, specF16, a.unpack(), exact)
}
func F16ToI32RMinMag(a Float16, exact bool, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64RMinMag(env, specF16, u, exact))
}
func F16ToU64RMinMag(a Float16, exact bool, env Environment) uint64 {
	return floatToU64RMinMag(env, specF16, a.unpack(), exact)
}
func F16ToU32RMinMag(a Float16, exact bool, env Environment) uint32 {
	return narrowU32(env, floatToU64RMinMag(env, specF16, a.unpack(), exact))
}

func F32ToI64(a Float32, mode RoundingMode, env Environment) int64 {
	return floatToI64(env, specF32, a.unpack(), mode)
}
func F32ToI32(a Float32, mode RoundingMode, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64(env, specF32, u, mode))
}
func F32ToU64(a Float32, mode RoundingMode, env Environment) uint64 {
	return floatToU64(env, specF32, a.unpack(), mode)
}
func F32ToU32(a Float32, mode RoundingMode, env Environment) uint32 {
	return narrowU32(env, floatToU64(env, specF32, a.unpack(), mode))
}
func F32ToI64RMinMag(a Float32, exact bool, env Environment) int64 {
	return floatToI64RMinMag(env, specF32, a.unpack(), exact)
}
func F32ToI32RMinMag(a Float32, exact bool, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64RMinMag(env, specF32, u, exact))
}
func F32ToU64RMinMag(a Float32, exact bool, env Environment) uint64 {
	return floatToU64RMinMag(env, specF32, a.unpack(), exact)
}
func F32ToU32RMinMag(a Float32, exact bool, env Environment) uint32 {
	return narrowU32(env, floatToU64RMinMag(env, specF32, a.unpack(), exact))
}

func F64ToI64(a Float64, mode RoundingMode, env Environment) int64 {
	return floatToI64(env, specF64, a.unpack(), mode)
}
func F64ToI32(a Float64, mode RoundingMode, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64(env, specF64, u, mode))
}
func F64ToU64(a Float64, mode RoundingMode, env Environment) uint64 {
	return floatToU64(env, specF64, a.unpack(), mode)
}
func F64ToU32(a Float64, mode RoundingMode, env Environment) uint32 {
	return narrowU32(env, floatToU64(env, specF64, a.unpack(), mode))
}
func F64ToI64RMinMag(a Float64, exact bool, env Environment) int64 {
	return floatToI64RMinMag(env, specF64, a.unpack(), exact)
}
func F64ToI32RMinMag(a Float64, exact bool, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64RMinMag(env, specF64, u, exact))
}
func F64ToU64RMinMag(a Float64, exact bool, env Environment) uint64 {
	return floatToU64RMinMag(env, specF64, a.unpack(), exact)
}
func F64ToU32RMinMag(a Float64, exact bool, env Environment) uint32 {
	return narrowU32(env, floatToU64RMinMag(env, specF64, a.unpack(), exact))
}

func F80ToI64(a Float80, mode RoundingMode, env Environment) int64 {
	return floatToI64(env, specF80, a.unpack(), mode)
}
func F80ToI32(a Float80, mode RoundingMode, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64(env, specF80, u, mode))
}
func F80ToU64(a Float80, mode RoundingMode, env Environment) uint64 {
	return floatToU64(env, specF80, a.unpack(), mode)
}
func F80ToU32(a Float80, mode RoundingMode, env Environment) uint32 {
	return narrowU32(env, floatToU64(env, specF80, a.unpack(), mode))
}
func F80ToI64RMinMag(a Float80, exact bool, env Environment) int64 {
	return floatToI64RMinMag(env, specF80, a.unpack(), exact)
}
func F80ToI32RMinMag(a Float80, exact bool, env Environment) int32 {
	u := a.unpack()
	return narrow32(env, env.NaNTarget(), u, floatToI64RMinMag(env, specF80, u, exact))
}
func F80ToU64RMinMag(a Float80, exact bool, env Environment) uint64 {
	return floatToU64RMinMag(env, specF80, a.unpack(), exact)
}
func F80ToU32RMinMag(a Float80, exact bool, env Environment) uint32 {
	return narrowU32(env, floatToU64RMinMag(env, specF80, a.unpack(), exact))
}
