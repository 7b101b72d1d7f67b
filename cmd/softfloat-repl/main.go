// Command softfloat-repl is a small exploratory driver over the
// softfloat kernel: it parses hex bit patterns from the command line,
// runs one operation against them, and prints the result plus the
// resulting sticky exception flags. It is an external collaborator of
// the kernel, not part of it, the way a cross-compiler or ISA model
// would consume the library.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syntacore/softfloat/internal/replconfig"
	sf "github.com/syntacore/softfloat/softfloat"
)

func main() {
	var configPath string
	var format string
	var rounding string

	rootCmd := &cobra.Command{
		Use:   "softfloat-repl",
		Short: "Evaluate a single softfloat operation against literal hex operands",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "softfloat.toml", "path to an optional TOML config file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "f32", "operand format: f16, f32, or f64")
	rootCmd.PersistentFlags().StringVar(&rounding, "rounding", "", "override the configured rounding mode: nearEven, minMag, min, max, nearMaxMag")

	evalCmd := &cobra.Command{
		Use:   "eval <op> <hexA> [hexB] [hexC]",
		Short: "Evaluate one operation: add, sub, mul, div, sqrt, rem, mulAdd, eq, lt, le",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := replconfig.Load(configPath)
			if err != nil {
				return err
			}
			env, err := cfg.Environment()
			if err != nil {
				return err
			}
			if rounding != "" {
				mode, err := parseRoundingMode(rounding)
				if err != nil {
					return err
				}
				env.SetRoundingMode(mode)
			}

			op := args[0]
			operands := args[1:]
			bits := make([]uint64, len(operands))
			for i, hex := range operands {
				v, err := parseHexOperand(hex)
				if err != nil {
					return fmt.Errorf("operand %d: %w", i+1, err)
				}
				bits[i] = v
			}

			result, err := evaluate(format, op, bits, env)
			if err != nil {
				return err
			}

			fmt.Printf("result=0x%X flags=%s\n", result, env.Flags())
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseHexOperand(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, 64)
}

func parseRoundingMode(s string) (sf.RoundingMode, error) {
	switch s {
	case "nearEven":
		return sf.RoundNearEven, nil
	case "minMag":
		return sf.RoundMinMag, nil
	case "min":
		return sf.RoundMin, nil
	case "max":
		return sf.RoundMax, nil
	case "nearMaxMag":
		return sf.RoundNearMaxMag, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode %q", s)
	}
}

// evaluate dispatches a format+op pair to the corresponding exported
// kernel entry point. Only f16/f32/f64 are supported here: f128 and
// extF80 operands don't fit a single 64-bit hex literal, so they're
// exercised by the test suite instead of this driver.
func evaluate(format, op string, bits []uint64, env sf.Environment) (uint64, error) {
	switch format {
	case "f16":
		return evalF16(op, bits, env)
	case "f32":
		return evalF32(op, bits, env)
	case "f64":
		return evalF64(op, bits, env)
	default:
		return 0, fmt.Errorf("unsupported format %q (want f16, f32, or f64)", format)
	}
}

func evalF16(op string, bits []uint64, env sf.Environment) (uint64, error) {
	f := func(i int) sf.Float16 { return sf.Float16(bits[i]) }
	switch op {
	case "add":
		return uint64(sf.F16Add(f(0), f(1), env)), nil
	case "sub":
		return uint64(sf.F16Sub(f(0), f(1), env)), nil
	case "mul":
		return uint64(sf.F16Mul(f(0), f(1), env)), nil
	case "div":
		return uint64(sf.F16Div(f(0), f(1), env)), nil
	case "rem":
		return uint64(sf.F16Rem(f(0), f(1), env)), nil
	case "sqrt":
		return uint64(sf.F16Sqrt(f(0), env)), nil
	case "mulAdd":
		return uint64(sf.F16Fma(f(0), f(1), f(2), env)), nil
	case "eq":
		return boolBits(sf.F16Eq(f(0), f(1), env)), nil
	case "lt":
		return boolBits(sf.F16Lt(f(0), f(1), env)), nil
	case "le":
		return boolBits(sf.F16Le(f(0), f(1), env)), nil
	default:
		return 0, fmt.Errorf("unsupported op %q", op)
	}
}

func evalF32(op string, bits []uint64, env sf.Environment) (uint64, error) {
	f := func(i int) sf.Float32 { return sf.Float32(bits[i]) }
	switch op {
	case "add":
		return uint64(sf.F32Add(f(0), f(1), env)), nil
	case "sub":
		return uint64(sf.F32Sub(f(0), f(1), env)), nil
	case "mul":
		return uint64(sf.F32Mul(f(0), f(1), env)), nil
	case "div":
		return uint64(sf.F32Div(f(0), f(1), env)), nil
	case "rem":
		return uint64(sf.F32Rem(f(0), f(1), env)), nil
	case "sqrt":
		return uint64(sf.F32Sqrt(f(0), env)), nil
	case "mulAdd":
		return uint64(sf.F32Fma(f(0), f(1), f(2), env)), nil
	case "eq":
		return boolBits(sf.F32Eq(f(0), f(1), env)), nil
	case "lt":
		return boolBits(sf.F32Lt(f(0), f(1), env)), nil
	case "le":
		return boolBits(sf.F32Le(f(0), f(1), env)), nil
	default:
		return 0, fmt.Errorf("unsupported op %q", op)
	}
}

func evalF64(op string, bits []uint64, env sf.Environment) (uint64, error) {
	f := func(i int) sf.Float64 { return sf.Float64(bits[i]) }
	switch op {
	case "add":
		return uint64(sf.F64Add(f(0), f(1), env)), nil
	case "sub":
		return uint64(sf.F64Sub(f(0), f(1), env)), nil
	case "mul":
		return uint64(sf.F64Mul(f(0), f(1), env)), nil
	case "div":
		return uint64(sf.F64Div(f(0), f(1), env)), nil
	case "rem":
		return uint64(sf.F64Rem(f(0), f(1), env)), nil
	case "sqrt":
		return uint64(sf.F64Sqrt(f(0), env)), nil
	case "mulAdd":
		return uint64(sf.F64Fma(f(0), f(1), f(2), env)), nil
	case "eq":
		return boolBits(sf.F64Eq(f(0), f(1), env)), nil
	case "lt":
		return boolBits(sf.F64Lt(f(0), f(1), env)), nil
	case "le":
		return boolBits(sf.F64Le(f(0), f(1), env)), nil
	default:
		return 0, fmt.Errorf("unsupported op %q", op)
	}
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
