package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32ToF64AndBack(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	f32One := Float32(0x3F800000)
	f64One := Float64(0x3FF0000000000000)

	assert.Equal(t, f64One, F32ToF64(f32One, env))
	assert.Equal(t, f32One, F64ToF32(f64One, env))
}

func TestIntConversionRoundTrip(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	tests := []int64{0, 1, -1, 42, -100, 1 << 30}
	for _, v := range tests {
		f := F64FromI64(v, env)
		got := F64ToI64(f, RoundNearEven, env)
		assert.Equal(t, v, got, "round trip for %d", v)
	}
}

func TestF32ToI64Truncation(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	// 1.5f32 rounds to 2 under RoundNearEven (ties to even), and to 1
	// under RoundMinMag (truncate toward zero).
	oneAndHalf := Float32(0x3FC00000)
	assert.Equal(t, int64(2), F32ToI64(oneAndHalf, RoundNearEven, env))
	assert.Equal(t, int64(1), F32ToI64(oneAndHalf, RoundMinMag, env))
}

func TestF32ToI64OfNaNIsSentinel(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	nan := Float32(0x7FC00000)
	assert.Equal(t, int64(-1)<<63, F32ToI64(nan, RoundNearEven, env))
}

func TestU64FromFloat(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	f := F32FromU64(100, env)
	assert.Equal(t, "positiveNormal", f.Classify())
}
