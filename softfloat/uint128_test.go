package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd128Sub128(t *testing.T) {
	a := Uint128{Hi: 0, Lo: ^uint64(0)}
	b := Uint128{Hi: 0, Lo: 1}

	sum := Add128(a, b)
	assert.Equal(t, Uint128{Hi: 1, Lo: 0}, sum, "carry propagates into Hi")

	diff := Sub128(sum, b)
	assert.Equal(t, a, diff)
}

func TestLess128(t *testing.T) {
	assert.True(t, Less128(Uint128{Lo: 1}, Uint128{Lo: 2}))
	assert.True(t, Less128(Uint128{Hi: 0, Lo: ^uint64(0)}, Uint128{Hi: 1, Lo: 0}))
	assert.False(t, Less128(Uint128{Hi: 1}, Uint128{Hi: 1}))
}

func TestShiftLeftRight128(t *testing.T) {
	a := Uint128{Hi: 0, Lo: 1}
	shifted := ShiftLeft128(a, 64)
	assert.Equal(t, Uint128{Hi: 1, Lo: 0}, shifted)

	back := ShiftRight128(shifted, 64)
	assert.Equal(t, a, back)
}

func TestMul64To128(t *testing.T) {
	product := Mul64To128(^uint64(0), ^uint64(0))
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	assert.Equal(t, Uint128{Hi: ^uint64(0) - 1, Lo: 1}, product)
}

func TestMul128To256(t *testing.T) {
	one := Uint128{Lo: 1}
	product := Mul128To256(one, one)
	assert.Equal(t, uint256{W3: 0, W2: 0, W1: 0, W0: 1}, product)
}

func TestLess256(t *testing.T) {
	a := uint256{W0: 1}
	b := uint256{W0: 2}
	assert.True(t, less256(a, b))
	assert.False(t, less256(b, a))
	assert.False(t, less256(a, a))
}
