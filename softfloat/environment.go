package softfloat

// NaNTarget selects which of the two NaN-propagation policies an
// Environment uses.
type NaNTarget uint8

const (
	// TargetRISCV collapses every NaN result to the format's canonical
	// default NaN, raising invalid iff any operand was signaling.
	TargetRISCV NaNTarget = iota
	// TargetX86 propagates one of the operand NaNs (greater magnitude
	// payload, ties broken toward the smaller bit pattern), quieting it
	// if it was signaling.
	TargetX86
)

func (t NaNTarget) String() string {
	if t == TargetX86 {
		return "x86"
	}
	return "riscv"
}

// Environment is the narrow interface the kernel uses to consume the
// current rounding mode, tininess-detection policy and NaN
// target through it, and reports sticky exceptions through it, but never
// owns it. Two goroutines, each holding a distinct Environment value (for
// example two *BasicEnvironment instances), never interfere with each
// other -- there is no shared mutable package state. Whether a particular
// embedding makes a given Environment genuinely thread-local is an
// external-collaborator concern, not part of this package.
type Environment interface {
	RoundingMode() RoundingMode
	SetRoundingMode(RoundingMode)
	Tininess() TininessMode
	NaNTarget() NaNTarget
	RaiseFlags(ExceptionFlags)
	Flags() ExceptionFlags
	ClearFlags()
}

var (
	_ Environment = (*BasicEnvironment)(nil)
)

// BasicEnvironment is the reference Environment implementation: a single
// struct the caller allocates once per logical execution context and
// threads through every operation call. It is not safe for concurrent
// use by multiple goroutines -- each thread is expected to hold its own
// rounding-mode/flags cell, never a shared one.
type BasicEnvironment struct {
	rounding  RoundingMode
	tininess  TininessMode
	nanTarget NaNTarget
	flags     ExceptionFlags
}

// NewEnvironment returns a *BasicEnvironment configured for the given
// target. The x87 target and the RISC-V target both select
// DetectAfterRounding tininess; they differ only in NaN
// propagation policy and in the out-of-range conversion sentinels
// (see sentinels.go).
func NewEnvironment(target NaNTarget) *BasicEnvironment {
	return &BasicEnvironment{
		rounding:  RoundNearEven,
		tininess:  DetectAfterRounding,
		nanTarget: target,
	}
}

func (e *BasicEnvironment) RoundingMode() RoundingMode         { return e.rounding }
func (e *BasicEnvironment) SetRoundingMode(m RoundingMode)     { e.rounding = m }
func (e *BasicEnvironment) Tininess() TininessMode             { return e.tininess }
func (e *BasicEnvironment) SetTininess(m TininessMode)         { e.tininess = m }
func (e *BasicEnvironment) NaNTarget() NaNTarget               { return e.nanTarget }
func (e *BasicEnvironment) SetNaNTarget(t NaNTarget)           { e.nanTarget = t }
func (e *BasicEnvironment) RaiseFlags(mask ExceptionFlags)     { e.flags |= mask }
func (e *BasicEnvironment) Flags() ExceptionFlags              { return e.flags }
func (e *BasicEnvironment) ClearFlags()                        { e.flags = 0 }
