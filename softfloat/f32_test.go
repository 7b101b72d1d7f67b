package softfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32Classify(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		want string
	}{
		{"positive_zero", 0x00000000, "positiveZero"},
		{"negative_zero", 0x80000000, "negativeZero"},
		{"positive_one", 0x3F800000, "positiveNormal"},
		{"negative_one", 0xBF800000, "negativeNormal"},
		{"smallest_subnormal", 0x00000001, "positiveSubnormal"},
		{"positive_infinity", 0x7F800000, "positiveInfinity"},
		{"negative_infinity", 0xFF800000, "negativeInfinity"},
		{"quiet_nan", 0x7FC00000, "quietNaN"},
		{"signaling_nan", 0x7F800001, "signalingNaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float32(tt.bits).Classify()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloat32UnpackPackRoundTrip(t *testing.T) {
	tests := []uint32{
		0x3F800000, // 1.0
		0xBF800000, // -1.0
		0x40000000, // 2.0
		0x3EAAAAAB, // 1/3 rounded
		0x00000001, // smallest subnormal
		0x7F7FFFFF, // largest finite
	}

	for _, bits := range tests {
		f := Float32(bits)
		u := f.unpack()
		got := pack32(u)
		assert.Equal(t, f, got, "round trip of 0x%08X", bits)
	}
}
