package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32Comparisons(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	one := Float32(0x3F800000)
	two := Float32(0x40000000)
	negOne := Float32(0xBF800000)
	posZero := Float32(0)
	negZero := Float32(0x80000000)

	assert.True(t, F32Lt(one, two, env))
	assert.False(t, F32Lt(two, one, env))
	assert.True(t, F32Le(one, one, env))
	assert.True(t, F32Eq(one, one, env))
	assert.True(t, F32Lt(negOne, one, env))
	assert.True(t, F32Eq(posZero, negZero, env), "positive and negative zero compare equal")
}

func TestF32CompareNaNIsUnordered(t *testing.T) {
	env := NewEnvironment(TargetRISCV)

	nan := Float32(0x7FC00000)
	one := Float32(0x3F800000)

	assert.False(t, F32Eq(nan, one, env))
	assert.False(t, F32Lt(nan, one, env))
	assert.False(t, F32Le(nan, one, env))
	assert.True(t, env.Flags().Has(FlagInvalid), "signaling compare against NaN raises invalid")
}
