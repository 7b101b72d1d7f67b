package softfloat

// wideQuietBit is sigQuietBit's f128 counterpart: once a NaN's raw 112-bit
// fraction is left-justified into a Uint128, its MSB lands at bit 127.
var wideQuietBit = Uint128{Hi: uint64(1) << 63}

func propagateNaNBinaryWide(env Environment, a, b unpackedWide) unpackedWide {
	aIsNaN, bIsNaN := a.isNaN(), b.isNaN()
	if (aIsNaN && a.class == classSignalingNaN) || (bIsNaN && b.class == classSignalingNaN) {
		env.RaiseFlags(FlagInvalid)
	}
	if env.NaNTarget() == TargetRISCV {
		return unpackedWide{class: classQuietNaN, sig: wideQuietBit}
	}
	winner := a
	switch {
	case aIsNaN && !bIsNaN:
		winner = a
	case bIsNaN && !aIsNaN:
		winner = b
	case a.class == classSignalingNaN && b.class != classSignalingNaN:
		winner = a
	case b.class == classSignalingNaN && a.class != classSignalingNaN:
		winner = b
	default:
		winner = pickGreaterPayloadWide(a, b)
	}
	winner.class = classQuietNaN
	winner.sig = Uint128{Hi: winner.sig.Hi | wideQuietBit.Hi, Lo: winner.sig.Lo}
	return winner
}

// pickGreaterPayloadWide is pickGreaterPayload's Uint128 counterpart for
// f128's two same-kind NaN operands.
func pickGreaterPayloadWide(a, b unpackedWide) unpackedWide {
	switch {
	case Less128(b.sig, a.sig):
		return a
	case Less128(a.sig, b.sig):
		return b
	case a.sign == b.sign:
		return a
	case a.sign:
		return b
	default:
		return a
	}
}

func defaultNaNWide() unpackedWide {
	return unpackedWide{class: classQuietNaN, sign: false, sig: wideQuietBit}
}

// addSubWide is f128's Add/Sub engine, structurally addSub's Uint128
// counterpart.
func addSubWide(env Environment, spec formatSpec, a, b unpackedWide, subtract bool) unpackedWide {
	effectiveBSign := b.sign
	if subtract {
		effectiveBSign = !b.sign
	}

	if a.isNaN() || b.isNaN() {
		return propagateNaNBinaryWide(env, a, b)
	}
	if a.class == classInfinity && b.class == classInfinity {
		if a.sign != effectiveBSign {
			env.RaiseFlags(FlagInvalid)
			return defaultNaNWide()
		}
		return unpackedWide{class: classInfinity, sign: a.sign}
	}
	if a.class == classInfinity {
		return unpackedWide{class: classInfinity, sign: a.sign}
	}
	if b.class == classInfinity {
		return unpackedWide{class: classInfinity, sign: effectiveBSign}
	}
	if a.class == classZero && b.class == classZero {
		if a.sign == effectiveBSign {
			return unpackedWide{class: classZero, sign: a.sign}
		}
		sign := env.RoundingMode() == RoundMin
		return unpackedWide{class: classZero, sign: sign}
	}
	if a.class == classZero {
		return unpackedWide{class: b.class, sign: effectiveBSign, exp: b.exp, sig: b.sig}
	}
	if b.class == classZero {
		return a
	}

	b = unpackedWide{class: b.class, sign: effectiveBSign, exp: b.exp, sig: b.sig}

	if a.sign == b.sign {
		expA, expB, sigA, sigB := a.exp, b.exp, a.sig, b.sig
		if expA < expB {
			expA, expB, sigA, sigB = expB, expA, sigB, sigA
		}
		dist := uint(expA - expB)
		shifted := ShiftRightJam128(sigB, dist)
		sum := Add128(sigA, shifted)
		exp := expA
		var extra uint32
		if sum.Hi>>63 == 0 {
			lsb := sum.Lo & 1
			sum = ShiftRight128(sum, 1)
			sum.Hi |= uint64(1) << 63
			exp++
			extra = uint32(lsb)
		}
		cls, sign, rexp, rsig := roundPackWide(env, spec, a.sign, exp, sum, extra, true)
		return unpackedWide{class: cls, sign: sign, exp: rexp, sig: rsig}
	}

	magA, magB := a, b
	swap := a.exp < b.exp || (a.exp == b.exp && Less128(a.sig, b.sig))
	if swap {
		magA, magB = b, a
	}
	dist := uint(magA.exp - magB.exp)
	shifted := ShiftRightJam128(magB.sig, dist)
	if IsZero128(shifted) && shifted == magA.sig {
		sign := env.RoundingMode() == RoundMin
		return unpackedWide{class: classZero, sign: sign}
	}
	diff := Sub128(magA.sig, shifted)
	if IsZero128(diff) {
		sign := env.RoundingMode() == RoundMin
		return unpackedWide{class: classZero, sign: sign}
	}
	shiftDist := CountLeadingZeros128(diff)
	diff = ShiftLeft128(diff, shiftDist)
	exp := magA.exp - int32(shiftDist)
	cls, sign, rexp, rsig := roundPackWide(env, spec, magA.sign, exp, diff, 0, true)
	return unpackedWide{class: cls, sign: sign, exp: rexp, sig: rsig}
}

// mulWide is f128's Mul engine: the 128x128->256 product, renormalized
// back to a 113-bit significand via roundPackWide.
func mulWide(env Environment, spec formatSpec, a, b unpackedWide) unpackedWide {
	resultSign := a.sign != b.sign

	if a.isNaN() || b.isNaN() {
		return propagateNaNBinaryWide(env, a, b)
	}
	if (a.class == classInfinity && b.class == classZero) || (b.class == classInfinity && a.class == classZero) {
		env.RaiseFlags(FlagInvalid)
		return defaultNaNWide()
	}
	if a.class == classInfinity || b.class == classInfinity {
		return unpackedWide{class: classInfinity, sign: resultSign}
	}
	if a.class == classZero || b.class == classZero {
		return unpackedWide{class: classZero, sign: resultSign}
	}

	product := Mul128To256(a.sig, b.sig)
	expSum := a.exp + b.exp - spec.bias

	var sig Uint128
	var extra uint32
	if product.W3>>63 != 0 {
		sig = Uint128{Hi: product.W3, Lo: product.W2}
		extra = mkExtra(product.W1) | boolToU32(product.W0 != 0)
		expSum++
	} else {
		shifted := shiftLeft256By1(product)
		sig = Uint128{Hi: shifted.W3, Lo: shifted.W2}
		extra = mkExtra(shifted.W1) | boolToU32(shifted.W0 != 0)
	}

	cls, sign, rexp, rsig := roundPackWide(env, spec, resultSign, expSum, sig, extra, true)
	return unpackedWide{class: cls, sign: sign, exp: rexp, sig: rsig}
}

func F128Add(a, b Float128, env Environment) Float128 {
	return pack128(addSubWide(env, specF128, a.unpack(), b.unpack(), false))
}
func F128Sub(a, b Float128, env Environment) Float128 {
	return pack128(addSubWide(env, specF128, a.unpack(), b.unpack(), true))
}
func F128Mul(a, b Float128, env Environment) Float128 {
	return pack128(mulWide(env, specF128, a.unpack(), b.unpack()))
}

func (a Float128) Add(b Float128, env Environment) Float128 { return F128Add(a, b, env) }
func (a Float128) Sub(b Float128, env Environment) Float128 { return F128Sub(a, b, env) }
func (a Float128) Mul(b Float128, env Environment) Float128 { return F128Mul(a, b, env) }
