package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	f128One    = Float128{Hi: 0x3FFF000000000000, Lo: 0}
	f128Two    = Float128{Hi: 0x4000000000000000, Lo: 0}
	f128Three  = Float128{Hi: 0x4000800000000000, Lo: 0}
	f128NegOne = Float128{Hi: 0xBFFF000000000000, Lo: 0}
)

func TestFloat128Classify(t *testing.T) {
	assert.Equal(t, "positiveZero", Float128{}.Classify())
	assert.Equal(t, "negativeZero", Float128{Hi: f128SignBit}.Classify())
	assert.Equal(t, "positiveNormal", f128One.Classify())
	assert.Equal(t, "positiveInfinity", Float128{Hi: f128ExpMask}.Classify())
	assert.Equal(t, "negativeInfinity", Float128{Hi: f128SignBit | f128ExpMask}.Classify())
	assert.Equal(t, "quietNaN", Float128{Hi: f128ExpMask | uint64(1)<<47}.Classify())
}

func TestFloat128UnpackPackRoundTrip(t *testing.T) {
	for _, f := range []Float128{f128One, f128Two, f128Three, f128NegOne} {
		got := pack128(f.unpack())
		assert.Equal(t, f, got)
	}
}

func TestF128AddSub(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	assert.Equal(t, f128Two, F128Add(f128One, f128One, env))
	assert.Equal(t, f128One, F128Sub(f128Two, f128One, env))
	assert.Equal(t, Float128{}, F128Add(f128One, f128NegOne, env))
}

func TestF128Mul(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	assert.Equal(t, f128Two, F128Mul(f128One, f128Two, env))
}

func TestF128Div(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	assert.Equal(t, f128Two, F128Div(f128Two, f128One, env))
	assert.Equal(t, f128One, F128Div(f128Two, f128Two, env))
}

func TestF128Sqrt(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	four := Float128{Hi: 0x4001000000000000, Lo: 0}
	assert.Equal(t, f128Two, F128Sqrt(four, env))
}

func TestF128Compare(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	assert.True(t, F128Lt(f128One, f128Two, env))
	assert.True(t, F128Eq(f128One, f128One, env))
	assert.True(t, F128Le(f128One, f128One, env))
}

func TestF128ToAndFromF64(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	f64One := Float64(0x3FF0000000000000)
	assert.Equal(t, f128One, F64ToF128(f64One, env))
	assert.Equal(t, f64One, F128ToF64(f128One, env))
}

func TestF128FromI64(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	assert.Equal(t, f128One, F128FromI64(1, env))
	assert.Equal(t, f128NegOne, F128FromI64(-1, env))
}
