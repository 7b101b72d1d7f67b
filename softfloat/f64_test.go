package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64Classify(t *testing.T) {
	tests := []struct {
		name string
		bits uint64
		want string
	}{
		{"positive_zero", 0x0000000000000000, "positiveZero"},
		{"negative_zero", 0x8000000000000000, "negativeZero"},
		{"positive_one", 0x3FF0000000000000, "positiveNormal"},
		{"negative_one", 0xBFF0000000000000, "negativeNormal"},
		{"smallest_subnormal", 0x0000000000000001, "positiveSubnormal"},
		{"positive_infinity", 0x7FF0000000000000, "positiveInfinity"},
		{"negative_infinity", 0xFFF0000000000000, "negativeInfinity"},
		{"quiet_nan", 0x7FF8000000000000, "quietNaN"},
		{"signaling_nan", 0x7FF0000000000001, "signalingNaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float64(tt.bits).Classify()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloat64UnpackPackRoundTrip(t *testing.T) {
	tests := []uint64{
		0x3FF0000000000000, // 1.0
		0xC000000000000000, // -2.0
		0x3FD5555555555555, // close to 1/3
		0x0000000000000001, // smallest subnormal
		0x7FEFFFFFFFFFFFFF, // largest finite
	}

	for _, bits := range tests {
		f := Float64(bits)
		got := pack64(f.unpack())
		assert.Equal(t, f, got, "round trip of 0x%016X", bits)
	}
}
