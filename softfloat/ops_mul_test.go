package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32Mul(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	two := Float32(0x40000000)
	three := Float32(0x40400000)
	six := Float32(0x40C00000)
	negOne := Float32(0xBF800000)

	assert.Equal(t, six, F32Mul(two, three, env))
	assert.Equal(t, Float32(0x80000000), F32Mul(Float32(0), negOne, env), "0 * -1 == -0")
}

func TestF32MulZeroTimesInfinityIsInvalid(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	posInf := Float32(0x7F800000)

	result := F32Mul(Float32(0), posInf, env)
	assert.Equal(t, "quietNaN", result.Classify())
	assert.True(t, env.Flags().Has(FlagInvalid))
}

func TestF64Mul(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	two := Float64(0x4000000000000000)
	four := Float64(0x4010000000000000)

	assert.Equal(t, four, F64Mul(two, two, env))
}
