package softfloat

// roundToInt is the generic engine behind every format's RoundToInt: it
// rounds a finite value to the nearest representable integer value in the
// same format, according to mode, leaving NaN/infinity/zero untouched
// apart from NaN quieting.
func roundToInt(env Environment, spec formatSpec, a unpacked, mode RoundingMode, exact bool) unpacked {
	quietBit := sigQuietBit

	if a.isNaN() {
		return propagateNaNUnary(env, quietBit, a)
	}
	if a.isInf() || a.isZero() {
		return a
	}

	unbiasedExp := a.exp - spec.bias
	fracBits := int32(spec.sigWidth) - 1 - unbiasedExp
	if fracBits <= 0 {
		// Already an integer; no bits would be discarded.
		return a
	}
	if fracBits > int32(spec.sigWidth) {
		// Magnitude below 0.5 ULP of 1: result is 0 or +-1 depending on mode.
		roundsToOne := roundIncrement(mode, a.sign, false, a.sig != 0 || a.class == classSubnormal, false)
		if exact {
			env.RaiseFlags(FlagInexact)
		}
		if roundsToOne {
			return unpacked{class: classNormal, sign: a.sign, exp: spec.bias, sig: uint64(1) << 63}
		}
		return unpacked{class: classZero, sign: a.sign}
	}

	// sig is left-justified, so the fraction also spans the shiftOut
	// padding bits below the format's significand.
	dist := uint(fracBits) + spec.shiftOut()
	mask := uint64(1)<<dist - 1
	discarded := a.sig & mask
	kept := a.sig &^ mask

	if discarded == 0 {
		return a
	}
	if exact {
		env.RaiseFlags(FlagInexact)
	}

	roundBit := discarded>>(dist-1)&1 != 0
	sticky := dist > 1 && discarded&(mask>>1) != 0
	if roundIncrement(mode, a.sign, roundBit, sticky, kept&(uint64(1)<<dist) != 0) {
		kept += uint64(1) << dist
		if kept>>63 == 0 {
			// Carried out of the significand's top bit: bump exponent.
			return unpacked{class: classNormal, sign: a.sign, exp: a.exp + 1, sig: uint64(1) << 63}
		}
	}
	if kept == 0 {
		return unpacked{class: classZero, sign: a.sign}
	}
	return unpacked{class: classNormal, sign: a.sign, exp: a.exp, sig: kept}
}

func F16RoundToInt(a Float16, mode RoundingMode, env Environment) Float16 {
	return pack16(roundToInt(env, specF16, a.unpack(), mode, true))
}
func F32RoundToInt(a Float32, mode RoundingMode, env Environment) Float32 {
	return pack32(roundToInt(env, specF32, a.unpack(), mode, true))
}
func F64RoundToInt(a Float64, mode RoundingMode, env Environment) Float64 {
	return pack64(roundToInt(env, specF64, a.unpack(), mode, true))
}
func F80RoundToInt(a Float80, mode RoundingMode, env Environment) Float80 {
	return pack80(roundToInt(env, specF80, a.unpack(), mode, true))
}
