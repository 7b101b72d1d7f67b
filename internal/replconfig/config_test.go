package replconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntacore/softfloat/softfloat"
)

func TestDefaultConfigBuildsX86Environment(t *testing.T) {
	cfg := DefaultConfig()
	env, err := cfg.Environment()
	require.NoError(t, err)
	assert.Equal(t, softfloat.TargetX86, env.NaNTarget())
	assert.Equal(t, softfloat.RoundNearEven, env.RoundingMode())
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "softfloat.toml")
	contents := `
[environment]
rounding = "minMag"
tininess = "beforeRounding"
target = "riscv"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	env, err := cfg.Environment()
	require.NoError(t, err)
	assert.Equal(t, softfloat.TargetRISCV, env.NaNTarget())
	assert.Equal(t, softfloat.RoundMinMag, env.RoundingMode())
	assert.Equal(t, softfloat.DetectBeforeRounding, env.Tininess())
}

func TestLoadRejectsUnknownTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "softfloat.toml")
	contents := "[environment]\nrounding = \"nearEven\"\ntininess = \"afterRounding\"\ntarget = \"bogus\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	_, err = cfg.Environment()
	assert.Error(t, err)
}
