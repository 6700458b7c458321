package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grid-x/clickplc"
)

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"address: 192.168.0.10\nslave_id: 2\ntimeout: 5s\ntags: plc.csv\n"), 0o644))

	opt := &option{configPath: path}
	cfg, err := opt.resolve()
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.10:502", cfg.Address, "default port is appended")
	assert.Equal(t, 2, cfg.SlaveID)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "plc.csv", cfg.Tags)

	// Flags win over the file.
	opt = &option{configPath: path, address: "10.0.0.1:1502", timeout: time.Second}
	cfg, err = opt.resolve()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:1502", cfg.Address)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestResolveConfigDefaults(t *testing.T) {
	opt := &option{address: "plc.local"}
	cfg, err := opt.resolve()
	require.NoError(t, err)
	assert.Equal(t, "plc.local:502", cfg.Address)
	assert.Equal(t, defaultTimeout, cfg.Timeout)

	_, err = (&option{}).resolve()
	require.Error(t, err, "an address is required outside -sim")

	_, err = (&option{sim: true}).resolve()
	require.NoError(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		category clickplc.Category
		arg      string
		expected clickplc.Value
	}{
		{clickplc.Y, "true", true},
		{clickplc.C, "off", false},
		{clickplc.X, "1", true},
		{clickplc.DF, "0.1", float64(float32(0.1))},
		{clickplc.DS, "-42", -42},
		{clickplc.CTD, "100000", 100000},
	}
	for _, tc := range tests {
		v, err := parseValue(tc.category, tc.arg)
		require.NoError(t, err, tc.arg)
		assert.Equal(t, tc.expected, v, tc.arg)
	}

	_, err := parseValue(clickplc.Y, "maybe")
	require.Error(t, err)
	_, err = parseValue(clickplc.DS, "1.5")
	require.Error(t, err)
	_, err = parseValue(clickplc.DF, "fast")
	require.Error(t, err)
}
