package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFileDefaultsOnly(t *testing.T) {
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, "development", cfg.Log.Environment)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, []string{"stderr"}, cfg.Log.Outputs)
}

func TestLoadFileOverridesDefault(t *testing.T) {
	override := []FileData{{Name: "override", Content: "[Log]\nLevel = \"debug\"\n"}}
	cfg, err := LoadFile(override, "")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
}
