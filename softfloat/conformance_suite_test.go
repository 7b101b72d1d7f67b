package softfloat_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	sf "github.com/syntacore/softfloat/softfloat"
)

func TestConformance(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Concrete End-to-End Scenarios")
}

type scenario struct {
	name      string
	run       func(env sf.Environment) (resultBits uint64, flags sf.ExceptionFlags)
	wantBits  uint64
	wantFlags sf.ExceptionFlags
}

var _ = Describe("Concrete End-to-End Scenarios", func() {
	DescribeTable("walking the scenario table",
		func(s scenario) {
			env := sf.NewEnvironment(sf.TargetX86)
			env.SetRoundingMode(sf.RoundNearEven)

			bits, flags := s.run(env)
			Expect(bits).To(Equal(s.wantBits), "result bit pattern for %s", s.name)
			Expect(flags).To(Equal(s.wantFlags), "sticky flags for %s", s.name)
		},
		Entry("f32_add(1.0, 1.0) == 2.0, no flags", scenario{
			name: "f32_add",
			run: func(env sf.Environment) (uint64, sf.ExceptionFlags) {
				r := sf.F32Add(sf.Float32(0x3F800000), sf.Float32(0x3F800000), env)
				return uint64(r), env.Flags()
			},
			wantBits:  0x40000000,
			wantFlags: 0,
		}),
		Entry("f32_div(1.0, 0.0) == +inf, infinite flag", scenario{
			name: "f32_div",
			run: func(env sf.Environment) (uint64, sf.ExceptionFlags) {
				r := sf.F32Div(sf.Float32(0x3F800000), sf.Float32(0x00000000), env)
				return uint64(r), env.Flags()
			},
			wantBits:  0x7F800000,
			wantFlags: sf.FlagInfinite,
		}),
		Entry("f64_sqrt(-1.0) == qNaN, invalid flag", scenario{
			name: "f64_sqrt",
			run: func(env sf.Environment) (uint64, sf.ExceptionFlags) {
				r := sf.F64Sqrt(sf.Float64(0xBFF0000000000000), env)
				return uint64(r), env.Flags()
			},
			wantBits:  0x7FF8000000000000,
			wantFlags: sf.FlagInvalid,
		}),
		Entry("f64_mulAdd cancellation, no flags", scenario{
			name: "f64_mulAdd",
			run: func(env sf.Environment) (uint64, sf.ExceptionFlags) {
				a := sf.Float64(0x3FF0000000000001)
				r := sf.F64Fma(a, a, sf.Float64(0xBFF0000000000000), env)
				return uint64(r), env.Flags()
			},
			wantBits:  0x3CB0000000000000,
			wantFlags: 0,
		}),
		Entry("f32_to_i32 minMag(16777216.0) == 16777216, no flags", scenario{
			name: "f32_to_i32",
			run: func(env sf.Environment) (uint64, sf.ExceptionFlags) {
				r := sf.F32ToI32(sf.Float32(0x4B800000), sf.RoundMinMag, env)
				return uint64(uint32(r)), env.Flags()
			},
			wantBits:  16777216,
			wantFlags: 0,
		}),
		Entry("f16_add overflow, +inf, overflow+inexact flags", scenario{
			name: "f16_add",
			run: func(env sf.Environment) (uint64, sf.ExceptionFlags) {
				r := sf.F16Add(sf.Float16(0x7BFF), sf.Float16(0x3C00), env)
				return uint64(r), env.Flags()
			},
			wantBits:  0x7C00,
			wantFlags: sf.FlagOverflow | sf.FlagInexact,
		}),
	)
})
