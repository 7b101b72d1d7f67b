package softfloat

// fmaWide is fma's 256-bit counterpart: a*b's exact product already
// spans the full 256-bit width returned by Mul128To256, so unlike the
// narrow engine (which widens a 64-bit product into a 128-bit scratch to
// make room for c), c here is the operand that gets promoted, into the
// high 128 bits of a 256-bit value, and the add/subtract against the
// product happens entirely in that width with shiftRightJam256 carrying
// the sticky bit.
func fmaWide(env Environment, spec formatSpec, a, b, c unpackedWide) unpackedWide {
	productSign := a.sign != b.sign

	if a.isNaN() || b.isNaN() || c.isNaN() {
		if !a.isNaN() && !b.isNaN() {
			return propagateNaNBinaryWide(env, c, c)
		}
		ab := propagateNaNBinaryWide(env, a, b)
		return propagateNaNBinaryWide(env, ab, c)
	}
	if (a.class == classInfinity && b.class == classZero) || (b.class == classInfinity && a.class == classZero) {
		env.RaiseFlags(FlagInvalid)
		return defaultNaNWide()
	}
	productIsInf := a.class == classInfinity || b.class == classInfinity
	if productIsInf && c.class == classInfinity && productSign != c.sign {
		env.RaiseFlags(FlagInvalid)
		return defaultNaNWide()
	}
	if productIsInf {
		return unpackedWide{class: classInfinity, sign: productSign}
	}
	if c.class == classInfinity {
		return unpackedWide{class: classInfinity, sign: c.sign}
	}
	if a.class == classZero || b.class == classZero {
		if c.class == classZero {
			if productSign == c.sign {
				return unpackedWide{class: classZero, sign: productSign}
			}
			sign := env.RoundingMode() == RoundMin
			return unpackedWide{class: classZero, sign: sign}
		}
		return c
	}

	productExp := a.exp + b.exp - spec.bias
	fullProduct := Mul128To256(a.sig, b.sig)
	if fullProduct.W3>>63 != 0 {
		productExp++
	} else {
		fullProduct = shiftLeft256By1(fullProduct)
	}

	if c.class == classZero {
		return roundPackWide256ToWide(env, spec, productSign, productExp, fullProduct)
	}

	cWide := uint256{W3: c.sig.Hi, W2: c.sig.Lo}
	expDiff := productExp - c.exp

	var resultSign bool
	var resultExp int32
	var sum uint256

	if productSign == c.sign {
		resultSign = productSign
		if expDiff >= 0 {
			resultExp = productExp
			sum = add256(fullProduct, shiftRightJam256(cWide, uint(expDiff)))
		} else {
			resultExp = c.exp
			sum = add256(cWide, shiftRightJam256(fullProduct, uint(-expDiff)))
		}
		if sum.W3>>63 == 0 {
			sum = shiftRightJam256(sum, 1)
			sum.W3 |= uint64(1) << 63
			resultExp++
		}
	} else {
		var minuend, subtrahend uint256
		var minuendSign bool
		if expDiff >= 0 {
			resultExp = productExp
			minuend, subtrahend = fullProduct, shiftRightJam256(cWide, uint(expDiff))
			minuendSign = productSign
		} else {
			resultExp = c.exp
			minuend, subtrahend = cWide, shiftRightJam256(fullProduct, uint(-expDiff))
			minuendSign = c.sign
		}
		if less256(minuend, subtrahend) {
			minuend, subtrahend = subtrahend, minuend
			minuendSign = !minuendSign
		}
		resultSign = minuendSign
		sum = sub256(minuend, subtrahend)
		if isZero256(sum) {
			sign := env.RoundingMode() == RoundMin
			return unpackedWide{class: classZero, sign: sign}
		}
		shiftDist := countLeadingZeros256(sum)
		sum = shiftLeft256ByN(sum, shiftDist)
		resultExp -= int32(shiftDist)
	}

	return roundPackWide256ToWide(env, spec, resultSign, resultExp, sum)
}

// roundPackWide256ToWide folds a 256-bit fixed-point significand (leading
// one at bit 255) down to a Uint128 significand plus a 32-bit sticky word
// before handing off to roundPackWide.
func roundPackWide256ToWide(env Environment, spec formatSpec, sign bool, exp int32, sig uint256) unpackedWide {
	hi := Uint128{Hi: sig.W3, Lo: sig.W2}
	extra := mkExtra(sig.W1) | boolToU32(sig.W0 != 0)
	cls, rsign, rexp, rsig := roundPackWide(env, spec, sign, exp, hi, extra, true)
	return unpackedWide{class: cls, sign: rsign, exp: rexp, sig: rsig}
}

func F128Fma(a, b, c Float128, env Environment) Float128 {
	return pack128(fmaWide(env, specF128, a.unpack(), b.unpack(), c.unpack()))
}

func (a Float128) Fma(b, c Float128, env Environment) Float128 { return F128Fma(a, b, c, env) }
