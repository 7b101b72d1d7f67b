package softfloat

// addMagnitudes adds two same-sign normalized significands after aligning
// the smaller-exponent operand's significand by the exponent difference,
// jamming any bits shifted out. Returns the resulting (exp, sig, extra)
// triple, not yet rounded.
func addMagnitudes(expA, expB int32, sigA, sigB uint64) (exp int32, sig uint64, extra uint32) {
	if expA < expB {
		expA, expB = expB, expA
		sigA, sigB = sigB, sigA
	}
	dist := uint(expA - expB)
	shifted := ShiftRightJamExtra(sigB, 0, dist)
	sum := sigA + shifted.V
	carry := sum < sigA
	if carry {
		shiftedOut := ShiftRightJamExtra(sum, shifted.Extra, 1)
		return expA + 1, shiftedOut.V | uint64(1)<<63, shiftedOut.Extra
	}
	return expA, sum, shifted.Extra
}

// subMagnitudes subtracts the smaller-magnitude same-format significand
// from the larger, aligning by the exponent difference and renormalizing
// after any cancellation. The caller guarantees |a| >= |b|.
func subMagnitudes(spec formatSpec, expA, expB int32, sigA, sigB uint64) (exp int32, sig uint64, extra uint32) {
	dist := uint(expA - expB)
	shifted := ShiftRightJamExtra(sigB, 0, dist)
	diff := sigA - shifted.V
	borrowExtra := shifted.Extra
	if borrowExtra != 0 {
		diff--
	}
	if diff == 0 && borrowExtra == 0 {
		return 0, 0, 0
	}
	shiftDist := CountLeadingZeros64(diff)
	return expA - int32(shiftDist), diff << shiftDist, 0
}

// addSub is the generic engine behind every format's Add and Sub: it
// decides, from the two operands' signs and the requested operation's
// effective sign, whether the magnitudes should be added or subtracted,
// dispatches NaN/infinity/zero special cases, and otherwise aligns,
// combines, and rounds.
func addSub(env Environment, spec formatSpec, a, b unpacked, subtract bool) unpacked {
	quietBit := sigQuietBit
	effectiveBSign := b.sign
	if subtract {
		effectiveBSign = !b.sign
	}

	if a.isNaN() || b.isNaN() {
		return propagateNaNBinary(env, quietBit, a, b)
	}

	if a.isInf() && b.isInf() {
		if a.sign != effectiveBSign {
			env.RaiseFlags(FlagInvalid)
			return defaultNaN(quietBit)
		}
		return unpacked{class: classInfinity, sign: a.sign}
	}
	if a.isInf() {
		return unpacked{class: classInfinity, sign: a.sign}
	}
	if b.isInf() {
		return unpacked{class: classInfinity, sign: effectiveBSign}
	}

	if a.isZero() && b.isZero() {
		if a.sign == effectiveBSign {
			return unpacked{class: classZero, sign: a.sign}
		}
		if env.RoundingMode() == RoundMin {
			return unpacked{class: classZero, sign: true}
		}
		return unpacked{class: classZero, sign: false}
	}
	if a.isZero() {
		return unpacked{class: b.class, sign: effectiveBSign, exp: b.exp, sig: b.sig}
	}
	if b.isZero() {
		return unpacked{class: a.class, sign: a.sign, exp: a.exp, sig: a.sig}
	}

	if a.sign == effectiveBSign {
		exp, sig, extra := addMagnitudes(a.exp, b.exp, a.sig, b.sig)
		return roundPackNarrow(env, spec, a.sign, exp, sig, extra, true)
	}

	// Unlike signs: subtract the smaller magnitude from the larger.
	magA, magB := a, unpacked{class: b.class, sign: effectiveBSign, exp: b.exp, sig: b.sig}
	swap := a.exp < b.exp || (a.exp == b.exp && a.sig < b.sig)
	if swap {
		magA, magB = magB, magA
	}
	exp, sig, _ := subMagnitudes(spec, magA.exp, magB.exp, magA.sig, magB.sig)
	if sig == 0 && exp == 0 {
		sign := false
		if env.RoundingMode() == RoundMin {
			sign = true
		}
		return unpacked{class: classZero, sign: sign}
	}
	return roundPackNarrow(env, spec, magA.sign, exp, sig, 0, true)
}

// F16Add, F32Add, F64Add, F80Add and the *Sub counterparts are the
// exported free-function entry points named after the convention this
// module's external collaborators expect.

func F16Add(a, b Float16, env Environment) Float16 {
	return pack16(addSub(env, specF16, a.unpack(), b.unpack(), false))
}
func F16Sub(a, b Float16, env Environment) Float16 {
	return pack16(addSub(env, specF16, a.unpack(), b.unpack(), true))
}
func F32Add(a, b Float32, env Environment) Float32 {
	return pack32(addSub(env, specF32, a.unpack(), b.unpack(), false))
}
func F32Sub(a, b Float32, env Environment) Float32 {
	return pack32(addSub(env, specF32, a.unpack(), b.unpack(), true))
}
func F64Add(a, b Float64, env Environment) Float64 {
	return pack64(addSub(env, specF64, a.unpack(), b.unpack(), false))
}
func F64Sub(a, b Float64, env Environment) Float64 {
	return pack64(addSub(env, specF64, a.unpack(), b.unpack(), true))
}
func F80Add(a, b Float80, env Environment) Float80 {
	return pack80(addSub(env, specF80, a.unpack(), b.unpack(), false))
}
func F80Sub(a, b Float80, env Environment) Float80 {
	return pack80(addSub(env, specF80, a.unpack(), b.unpack(), true))
}

// Add and Sub are the method-style counterparts used by callers that
// prefer a.Add(b, env) to the free-function form.
func (a Float16) Add(b Float16, env Environment) Float16 { return F16Add(a, b, env) }
func (a Float16) Sub(b Float16, env Environment) Float16 { return F16Sub(a, b, env) }
func (a Float32) Add(b Float32, env Environment) Float32 { return F32Add(a, b, env) }
func (a Float32) Sub(b Float32, env Environment) Float32 { return F32Sub(a, b, env) }
func (a Float64) Add(b Float64, env Environment) Float64 { return F64Add(a, b, env) }
func (a Float64) Sub(b Float64, env Environment) Float64 { return F64Sub(a, b, env) }
func (a Float80) Add(b Float80, env Environment) Float80 { return F80Add(a, b, env) }
func (a Float80) Sub(b Float80, env Environment) Float80 { return F80Sub(a, b, env) }
