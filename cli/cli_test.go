package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "src/components/ChatBot.jsx", cfg.File)
	assert.Empty(t, cfg.LookupDirs)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NvimReload)
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{"-n", "-v", "-f", "web/ChatBot.jsx", "-l", "a,b", "--nvim-reload", "--nvim-addr", "/tmp/n.sock"})
	require.NoError(t, err)

	assert.Equal(t, "web/ChatBot.jsx", cfg.File)
	assert.Equal(t, []string{"a", "b"}, cfg.LookupDirs)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NvimReload)
	assert.Equal(t, "/tmp/n.sock", cfg.NvimAddr)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "positional argument", args: []string{"extra"}},
		{name: "empty file", args: []string{"--file", ""}},
		{name: "address without reload", args: []string{"--nvim-addr", "/tmp/n.sock"}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
