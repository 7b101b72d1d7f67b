package softfloat

// roundToIntWide is roundToInt's Uint128 counterpart.
func roundToIntWide(env Environment, spec formatSpec, a unpackedWide, mode RoundingMode, exact bool) unpackedWide {
	if a.isNaN() {
		return propagateNaNUnary128(env, a)
	}
	if a.class == classInfinity || a.class == classZero {
		return a
	}

	unbiasedExp := a.exp - spec.bias
	fracBits := int32(spec.sigWidth) - 1 - unbiasedExp
	if fracBits <= 0 {
		return a
	}
	if fracBits > int32(spec.sigWidth) {
		roundsToOne := roundIncrement(mode, a.sign, false, !IsZero128(a.sig) || a.class == classSubnormal, false)
		if exact {
			env.RaiseFlags(FlagInexact)
		}
		if roundsToOne {
			return unpackedWide{class: classNormal, sign: a.sign, exp: spec.bias, sig: Uint128{Hi: uint64(1) << 63}}
		}
		return unpackedWide{class: classZero, sign: a.sign}
	}

	// sig is left-justified in 128 bits, so the fraction also spans the
	// padding bits below the 113-bit significand.
	dist := uint(fracBits) + (128 - spec.sigWidth)
	var mask, kept, discarded Uint128
	if dist >= 128 {
		mask = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	} else {
		mask = Sub128(ShiftLeft128(Uint128{Lo: 1}, dist), Uint128{Lo: 1})
	}
	discarded = Uint128{Hi: a.sig.Hi & mask.Hi, Lo: a.sig.Lo & mask.Lo}
	kept = Uint128{Hi: a.sig.Hi &^ mask.Hi, Lo: a.sig.Lo &^ mask.Lo}

	if IsZero128(discarded) {
		return a
	}
	if exact {
		env.RaiseFlags(FlagInexact)
	}

	roundBitPos := ShiftRight128(discarded, dist-1)
	roundBit := roundBitPos.Lo&1 != 0
	var lowMask Uint128
	if dist-1 >= 128 {
		lowMask = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	} else if dist > 1 {
		lowMask = Sub128(ShiftLeft128(Uint128{Lo: 1}, dist-1), Uint128{Lo: 1})
	}
	sticky := dist > 1 && (discarded.Hi&lowMask.Hi != 0 || discarded.Lo&lowMask.Lo != 0)

	bitAtDist := ShiftLeft128(Uint128{Lo: 1}, dist)
	keptOdd := kept.Hi&bitAtDist.Hi != 0 || kept.Lo&bitAtDist.Lo != 0
	if roundIncrement(mode, a.sign, roundBit, sticky, keptOdd) {
		kept = Add128(kept, bitAtDist)
		if kept.Hi>>63 == 0 {
			return unpackedWide{class: classNormal, sign: a.sign, exp: a.exp + 1, sig: Uint128{Hi: uint64(1) << 63}}
		}
	}
	if IsZero128(kept) {
		return unpackedWide{class: classZero, sign: a.sign}
	}
	return unpackedWide{class: classNormal, sign: a.sign, exp: a.exp, sig: kept}
}

func F128RoundToInt(a Float128, mode RoundingMode, env Environment) Float128 {
	return pack128(roundToIntWide(env, specF128, a.unpack(), mode, true))
}

func (a Float128) RoundToInt(mode RoundingMode, env Environment) Float128 {
	return F128RoundToInt(a, mode, env)
}
