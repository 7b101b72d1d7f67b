package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32AddSub(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	one := Float32(0x3F800000)
	two := Float32(0x40000000)
	negOne := Float32(0xBF800000)

	assert.Equal(t, two, F32Add(one, one, env))
	assert.Equal(t, Float32(0), F32Add(one, negOne, env))
	assert.Equal(t, one, F32Sub(two, one, env))
}

func TestF64AddSub(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	one := Float64(0x3FF0000000000000)
	three := Float64(0x4008000000000000)
	two := Float64(0x4000000000000000)

	assert.Equal(t, three, F64Add(one, two, env))
	assert.Equal(t, one, F64Sub(three, two, env))
}

func TestF32AddInfinityAndNaN(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	posInf := Float32(0x7F800000)
	negInf := Float32(0xFF800000)
	one := Float32(0x3F800000)

	assert.Equal(t, posInf, F32Add(posInf, one, env))
	assert.Equal(t, "quietNaN", F32Add(posInf, negInf, env).Classify())
	assert.True(t, env.Flags().Has(FlagInvalid))
}

func TestF32SubSameValueYieldsPositiveZero(t *testing.T) {
	env := NewEnvironment(TargetRISCV)
	one := Float32(0x3F800000)
	assert.Equal(t, Float32(0), F32Sub(one, one, env))
}
