package softfloat

// sqrtSignificand computes the square root of a left-justified 64-bit
// significand by bit-by-bit digit recurrence: at each of 64 iterations it
// tests whether setting the next candidate root bit keeps the candidate's
// square within the operand, the textbook binary long-division-style
// square root algorithm generalized to a 128-bit operand.
// expOdd reports the parity of the operand's unbiased exponent, since
// sqrt(m * 2^e) only reduces to sqrt(m) * 2^(e/2) when e is even; for odd
// e the operand is folded as sqrt(2m) * 2^((e-1)/2) instead.
func sqrtSignificand(sig uint64, expOdd bool) (root uint64, extra uint32) {
	var n Uint128
	if expOdd {
		n = Uint128{Hi: sig, Lo: 0}
	} else {
		n = Uint128{Hi: sig >> 1, Lo: sig << 63}
	}

	for bitPos := 63; bitPos >= 0; bitPos-- {
		trial := root | uint64(1)<<uint(bitPos)
		sq := Mul64To128(trial, trial)
		if !Less128(n, sq) {
			root = trial
		}
	}

	sq := Mul64To128(root, root)
	remainder := Sub128(n, sq)
	roundBit, sticky := sqrtRoundSticky(remainder, root)
	extra = boolToU32(roundBit)<<31 | boolToU32(sticky)
	return root, extra
}

// sqrtRoundSticky classifies a square-root remainder by comparing twice
// the remainder to 2*root+1, the distance between consecutive perfect
// squares at this root, the standard halfway test for digit-recurrence
// square root.
func sqrtRoundSticky(remainder Uint128, root uint64) (roundBit, sticky bool) {
	if IsZero128(remainder) {
		return false, false
	}
	twice := ShiftLeft128(remainder, 1)
	threshold := Add128(ShiftLeft128(Uint128{Lo: root}, 1), Uint128{Lo: 1})
	switch {
	case Less128(twice, threshold):
		return false, true
	case twice == threshold:
		return true, false
	default:
		return true, true
	}
}

// sqrtOp is the generic engine behind every format's Sqrt: NaN, negative,
// infinity and zero special cases first, then the digit-recurrence
// significand square root for the positive finite case.
func sqrtOp(env Environment, spec formatSpec, a unpacked) unpacked {
	quietBit := sigQuietBit

	if a.isNaN() {
		return propagateNaNUnary(env, quietBit, a)
	}
	if a.isZero() {
		return unpacked{class: classZero, sign: a.sign}
	}
	if a.sign {
		env.RaiseFlags(FlagInvalid)
		return defaultNaN(quietBit)
	}
	if a.isInf() {
		return unpacked{class: classInfinity, sign: false}
	}

	unbiased := a.exp - spec.bias
	expOdd := unbiased&1 != 0
	sig, extra := sqrtSignificand(a.sig, expOdd)

	var resultExp int32
	if expOdd {
		resultExp = (unbiased-1)/2 + spec.bias
	} else {
		resultExp = unbiased/2 + spec.bias
		if unbiased < 0 && unbiased%2 != 0 {
			resultExp--
		}
	}
	return roundPackNarrow(env, spec, false, resultExp, sig, extra, true)
}

func F16Sqrt(a Float16, env Environment) Float16 { return pack16(sqrtOp(env, specF16, a.unpack())) }
func F32Sqrt(a Float32, env Environment) Float32 { return pack32(sqrtOp(env, specF32, a.unpack())) }
func F64Sqrt(a Float64, env Environment) Float64 { return pack64(sqrtOp(env, specF64, a.unpack())) }
func F80Sqrt(a Float80, env Environment) Float80 { return pack80(sqrtOp(env, specF80, a.unpack())) }

func (a Float16) Sqrt(env Environment) Float16 { return F16Sqrt(a, env) }
func (a Float32) Sqrt(env Environment) Float32 { return F32Sqrt(a, env) }
func (a Float64) Sqrt(env Environment) Float64 { return F64Sqrt(a, env) }
func (a Float80) Sqrt(env Environment) Float80 { return F80Sqrt(a, env) }
