package softfloat

// Conversion sentinels are the integer values delivered by ToInt/ToUint
// family conversions when the source is a NaN or is out of the
// destination integer's representable range. The x86 and RISC-V targets
// disagree on these values, so they are selected by NaNTarget rather than
// hardcoded.
var (
	i32FromNaNRISCV       = int32(-1) << 31
	i32FromPosOverflowX86 = int32(1<<31 - 1)
	i32FromNegOverflowX86 = int32(-1) << 31
	i32FromNaNX86         = int32(1<<31 - 1)

	i64FromNaNRISCV       = int64(-1) << 63
	i64FromPosOverflowX86 = int64(1<<63 - 1)
	i64FromNegOverflowX86 = int64(-1) << 63
	i64FromNaNX86         = int64(1<<63 - 1)

	u32FromNaN       = ^uint32(0)
	u32FromPosOverflow = ^uint32(0)
	u32FromNegOverflow = uint32(0)

	u64FromNaN       = ^uint64(0)
	u64FromPosOverflow = ^uint64(0)
	u64FromNegOverflow = uint64(0)
)

// i32ConversionSentinel picks the signed-32 result of an out-of-range or
// NaN-source conversion under the given target and direction.
func i32ConversionSentinel(target NaNTarget, isNaN bool, negOverflow bool) int32 {
	if target == TargetRISCV {
		return i32FromNaNRISCV
	}
	if isNaN {
		return i32FromNaNX86
	}
	if negOverflow {
		return i32FromNegOverflowX86
	}
	return i32FromPosOverflowX86
}

// i64ConversionSentinel is i32ConversionSentinel's 64-bit counterpart.
func i64ConversionSentinel(target NaNTarget, isNaN bool, negOverflow bool) int64 {
	if target == TargetRISCV {
		return i64FromNaNRISCV
	}
	if isNaN {
		return i64FromNaNX86
	}
	if negOverflow {
		return i64FromNegOverflowX86
	}
	return i64FromPosOverflowX86
}

// u32ConversionSentinel and u64ConversionSentinel need no target split:
// both RISC-V and x86 deliver all-ones for NaN/positive-overflow and zero
// for negative values, the natural unsigned saturation.
func u32ConversionSentinel(negOverflow bool) uint32 {
	if negOverflow {
		return u32FromNegOverflow
	}
	return u32FromPosOverflow
}

func u64ConversionSentinel(negOverflow bool) uint64 {
	if negOverflow {
		return u64FromNegOverflow
	}
	return u64FromPosOverflow
}
