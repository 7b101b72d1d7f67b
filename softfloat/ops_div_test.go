package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32Div(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	six := Float32(0x40C00000)
	two := Float32(0x40000000)
	three := Float32(0x40400000)

	assert.Equal(t, three, F32Div(six, two, env))
}

func TestF32DivByZero(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	one := Float32(0x3F800000)
	posInf := Float32(0x7F800000)

	assert.Equal(t, posInf, F32Div(one, Float32(0), env))
	assert.True(t, env.Flags().Has(FlagInfinite))
}

func TestF32ZeroDivZeroIsInvalid(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	result := F32Div(Float32(0), Float32(0), env)
	assert.Equal(t, "quietNaN", result.Classify())
	assert.True(t, env.Flags().Has(FlagInvalid))
}

func TestF64DivRoundTrip(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	ten := Float64(0x4024000000000000)
	four := Float64(0x4010000000000000)

	quotient := F64Div(ten, four, env)
	// 10 / 4 == 2.5 exactly, representable.
	assert.Equal(t, Float64(0x4004000000000000), quotient)
}
