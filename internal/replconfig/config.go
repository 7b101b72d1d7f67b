// Package replconfig loads the softfloat-repl driver's session defaults
// from an optional TOML file, the way the rest of the retrieval pack's
// command-line tools load their runtime configuration.
package replconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/syntacore/softfloat/softfloat"
)

// Config is the on-disk shape of softfloat.toml.
type Config struct {
	Env struct {
		Rounding string `toml:"rounding"`
		Tininess string `toml:"tininess"`
		Target   string `toml:"target"`
	} `toml:"environment"`
}

// DefaultConfig returns the configuration a REPL session starts with when
// no softfloat.toml is present: round-to-nearest-even, tininess detected
// after rounding, x86 NaN propagation.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Env.Rounding = "nearEven"
	cfg.Env.Tininess = "afterRounding"
	cfg.Env.Target = "x86"
	return cfg
}

// Load reads path if it exists, falling back to DefaultConfig when it
// does not. A malformed file is reported as an error rather than
// silently ignored.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Environment builds a *softfloat.BasicEnvironment from the decoded
// config, the session the REPL threads through every evaluated operation.
func (c *Config) Environment() (*softfloat.BasicEnvironment, error) {
	var target softfloat.NaNTarget
	switch c.Env.Target {
	case "x86":
		target = softfloat.TargetX86
	case "riscv":
		target = softfloat.TargetRISCV
	default:
		return nil, fmt.Errorf("unknown NaN target %q (want x86 or riscv)", c.Env.Target)
	}

	env := softfloat.NewEnvironment(target)

	switch c.Env.Rounding {
	case "nearEven":
		env.SetRoundingMode(softfloat.RoundNearEven)
	case "minMag":
		env.SetRoundingMode(softfloat.RoundMinMag)
	case "min":
		env.SetRoundingMode(softfloat.RoundMin)
	case "max":
		env.SetRoundingMode(softfloat.RoundMax)
	case "nearMaxMag":
		env.SetRoundingMode(softfloat.RoundNearMaxMag)
	default:
		return nil, fmt.Errorf("unknown rounding mode %q", c.Env.Rounding)
	}

	switch c.Env.Tininess {
	case "afterRounding":
		env.SetTininess(softfloat.DetectAfterRounding)
	case "beforeRounding":
		env.SetTininess(softfloat.DetectBeforeRounding)
	default:
		return nil, fmt.Errorf("unknown tininess policy %q", c.Env.Tininess)
	}

	return env, nil
}
