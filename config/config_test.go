package config_test

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(1), cfg.Weights.Bonus)
	assert.Equal(t, int64(2), cfg.Weights.Penalty)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
weights:
  bonus: 0
  penalty: 5
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Weights: config.Weights{Bonus: 0, Penalty: 5},
		Log:     config.Log{Level: "debug", Format: "json"},
	}, *cfg)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("weights:\n  penalty: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.Weights.Bonus)
	assert.Equal(t, int64(7), cfg.Weights.Penalty)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		key  string
	}{
		{"bonus too large", "weights:\n  bonus: 2\n", "weights.bonus"},
		{"negative bonus", "weights:\n  bonus: -1\n", "weights.bonus"},
		{"negative penalty", "weights:\n  penalty: -3\n", "weights.penalty"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad format", "log:\n  format: xml\n", "log.format"},
		{"unknown key", "weights:\n  bogus: 1\n", "bogus"},
		{"wrong type", "weights:\n  bonus: lots\n", "lots"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.key)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights:\n  bonus: 0\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Weights.Bonus)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.NewLogger(config.Log{Level: "warn", Format: "json"}, &buf)

	log.Info("hidden")
	log.Warn("shown", "width", 4)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, float64(4), rec["width"])
}

func TestNewLogger_TextDefaults(t *testing.T) {
	var buf bytes.Buffer
	log := config.NewLogger(config.Log{Level: "chatty"}, &buf)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
