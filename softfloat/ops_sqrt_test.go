package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32Sqrt(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	four := Float32(0x40800000)
	two := Float32(0x40000000)
	nine := Float32(0x41100000)
	three := Float32(0x40400000)

	assert.Equal(t, two, F32Sqrt(four, env))
	assert.Equal(t, three, F32Sqrt(nine, env))
}

func TestF32SqrtOfNegativeIsInvalid(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	negOne := Float32(0xBF800000)
	result := F32Sqrt(negOne, env)
	assert.Equal(t, "quietNaN", result.Classify())
	assert.True(t, env.Flags().Has(FlagInvalid))
}

func TestF32SqrtOfZero(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	assert.Equal(t, Float32(0), F32Sqrt(Float32(0), env))
	assert.Equal(t, Float32(0x80000000), F32Sqrt(Float32(0x80000000), env))
}

func TestF64SqrtOfFour(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	four := Float64(0x4010000000000000)
	two := Float64(0x4000000000000000)
	assert.Equal(t, two, F64Sqrt(four, env))
}
