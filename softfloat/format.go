package softfloat

// class is the classification of a packed value by (biased exponent,
// fraction).
type class uint8

const (
	classZero class = iota
	classSubnormal
	classNormal
	classInfinity
	classQuietNaN
	classSignalingNaN
)

// commonNaN is the format-independent NaN courier: a (sign, v64, v0)
// payload used to marshal a NaN's sign and significand bits between an
// operand format's unpack and a result format's pack, independent of
// either format's width.
type commonNaN struct {
	Sign bool
	V64  uint64
	V0   uint64
}

// expSig is a (exp, sig) pair: the bias-relative exponent of a
// subnormal's synthesized normal form, and its left-shifted significand
// (bit 63 holds the synthesized leading one).
type expSig struct {
	Exp int32
	Sig uint64
}

// normalizeSubnormalSig re-expresses a subnormal significand (with no
// leading one) as a normal-form (exp, sig) pair with the leading one
// placed at bit 63 of sig, exp expressed relative to the format's bias
// (i.e. exp==1 denotes the smallest normal exponent). Callers pass the
// stored fraction at the same position a normal value's fraction occupies
// (just below bit 63) and minNormalExp == 1, so the result's exp is 1
// minus the normalization shift.
func normalizeSubnormalSig(sig uint64, minNormalExp int32) expSig {
	shiftDist := CountLeadingZeros64(sig)
	return expSig{
		Exp: minNormalExp - int32(shiftDist),
		Sig: sig << shiftDist,
	}
}

// formatSpec is the per-format trait set: one capability set (pack,
// unpack, classify, normalize-subnormal, bias, significand width)
// implemented once per format, consumed generically by every operation
// in ops_*.go. This collapses what a per-format implementation would
// express as five file copies of every algorithm into one generic
// implementation parameterized by formatSpec.
type formatSpec struct {
	name      string
	expBits   uint
	sigWidth  uint // total significand width, including the implicit/explicit leading one
	bias      int32
	explicit  bool // true only for extF80: the leading one is stored, not implicit
}

func (f formatSpec) maxExpEncoded() int32 { return int32(1)<<f.expBits - 1 }
func (f formatSpec) shiftOut() uint       { return 64 - f.sigWidth }

var (
	specF16 = formatSpec{name: "f16", expBits: 5, sigWidth: 11, bias: 15}
	specF32 = formatSpec{name: "f32", expBits: 8, sigWidth: 24, bias: 127}
	specF64 = formatSpec{name: "f64", expBits: 11, sigWidth: 53, bias: 1023}
	specF80 = formatSpec{name: "extF80", expBits: 15, sigWidth: 64, bias: 16383, explicit: true}

	// specF128 describes the wide format: sigWidth counts the full 113-bit
	// significand (112 stored plus the implicit leading one), which is why
	// roundPackWide computes its own shiftOut relative to a 128-bit container
	// instead of using formatSpec.shiftOut (that method assumes a 64-bit one).
	specF128 = formatSpec{name: "f128", expBits: 15, sigWidth: 113, bias: 16383}
)

// unpacked is the canonical sign/exponent/significand/classification tuple
// every narrow-format (f16/f32/f64/extF80) operation decomposes its
// operands into before dispatching on classification. sig is always
// left-justified with the leading one at bit 63 for normal values: every
// unpacked normal significand keeps the implicit bit set at the top of
// its container.
type unpacked struct {
	class class
	sign  bool
	exp   int32 // biased, in the destination/operand format's own bias
	sig   uint64
}

func (u unpacked) isNaN() bool  { return u.class == classQuietNaN || u.class == classSignalingNaN }
func (u unpacked) isInf() bool  { return u.class == classInfinity }
func (u unpacked) isZero() bool { return u.class == classZero }
