package softfloat

// Float32 is a packed IEEE-754 binary32 value: 1 sign bit, 8 exponent
// bits, 23 stored fraction bits.
type Float32 uint32

const (
	f32SignBit  = uint32(1) << 31
	f32ExpMask  = uint32(0xFF) << 23
	f32FracMask = uint32(1)<<23 - 1
	f32QuietBit = uint32(1) << 22
)

func (f Float32) sign() bool    { return uint32(f)&f32SignBit != 0 }
func (f Float32) expField() int32 { return int32(uint32(f) & f32ExpMask >> 23) }
func (f Float32) fracField() uint32 { return uint32(f) & f32FracMask }

// Classify reports f's IEEE-754 classification.
func (f Float32) Classify() string {
	switch {
	case f.expField() == 0xFF && f.fracField() == 0:
		return classifyInfinity(f.sign())
	case f.expField() == 0xFF:
		if isSignalingFraction(uint64(f.fracField()), uint64(f32QuietBit)) {
			return "signalingNaN"
		}
		return "quietNaN"
	case f.expField() == 0 && f.fracField() == 0:
		return classifyZero(f.sign())
	case f.expField() == 0:
		return classifySubnormal(f.sign())
	default:
		return classifyNormal(f.sign())
	}
}

func classifyInfinity(sign bool) string {
	if sign {
		return "negativeInfinity"
	}
	return "positiveInfinity"
}
func classifyZero(sign bool) string {
	if sign {
		return "negativeZero"
	}
	return "positiveZero"
}
func classifySubnormal(sign bool) string {
	if sign {
		return "negativeSubnormal"
	}
	return "positiveSubnormal"
}
func classifyNormal(sign bool) string {
	if sign {
		return "negativeNormal"
	}
	return "positiveNormal"
}

// unpack decomposes f into the canonical (class, sign, exp, sig) tuple,
// left-justifying the significand with the leading one at bit 63.
func (f Float32) unpack() unpacked {
	sign := f.sign()
	exp := f.expField()
	frac := f.fracField()

	switch {
	case exp == 0xFF && frac == 0:
		return unpacked{class: classInfinity, sign: sign}
	case exp == 0xFF:
		class := classQuietNaN
		if isSignalingFraction(uint64(frac), uint64(f32QuietBit)) {
			class = classSignalingNaN
		}
		return unpacked{class: class, sign: sign, sig: uint64(frac) << (64 - 23)}
	case exp == 0 && frac == 0:
		return unpacked{class: classZero, sign: sign}
	case exp == 0:
		es := normalizeSubnormalSig(uint64(frac)<<(64-24), 1)
		return unpacked{class: classSubnormal, sign: sign, exp: es.Exp, sig: es.Sig}
	default:
		sig := (uint64(frac) | uint64(1)<<23) << (64 - 24)
		return unpacked{class: classNormal, sign: sign, exp: exp, sig: sig}
	}
}

// pack re-encodes u (already rounded to fit f32's 24-bit significand
// width) into a packed Float32.
func pack32(u unpacked) Float32 {
	var bits uint32
	if u.sign {
		bits |= uint32(f32SignBit)
	}
	switch u.class {
	case classZero:
		return Float32(bits)
	case classInfinity:
		return Float32(bits | f32ExpMask)
	case classQuietNaN, classSignalingNaN:
		frac := uint32(u.sig>>(64-23)) & f32FracMask
		if u.class == classQuietNaN {
			frac |= f32QuietBit
		}
		if frac == 0 {
			frac = f32QuietBit
		}
		return Float32(bits | f32ExpMask | frac)
	default:
		sig, exp := u.sig, u.exp
		if exp <= 0 && sig>>63 != 0 {
			// A normalized subnormal (as unpack produces it): shift back
			// down to the exp==0 encoding.
			sig >>= uint(1 - exp)
			exp = 0
		}
		frac := uint32(sig>>(64-24)) & f32FracMask
		return Float32(bits | uint32(exp)<<23 | frac)
	}
}

// unpackFloat32 is pack32's inverse entry point used by the generic
// narrow-engine operations in ops_*.go.
func unpackFloat32(f Float32) unpacked { return f.unpack() }

func (Float32) spec() formatSpec { return specF32 }
