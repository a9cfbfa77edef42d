package nvim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadWithoutAddress(t *testing.T) {
	ok, err := Reload("", "src/components/ChatBot.jsx")
	assert.ErrorIs(t, err, ErrNoAddress)
	assert.False(t, ok)
}

func TestReloadUnreachableSocket(t *testing.T) {
	addr := filepath.Join(t.TempDir(), "missing.sock")

	ok, err := Reload(addr, "src/components/ChatBot.jsx")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestAddressFromEnv(t *testing.T) {
	t.Setenv("NVIM", "")
	t.Setenv("NVIM_LISTEN_ADDRESS", "/tmp/legacy.sock")
	assert.Equal(t, "/tmp/legacy.sock", AddressFromEnv())

	t.Setenv("NVIM", "/tmp/current.sock")
	assert.Equal(t, "/tmp/current.sock", AddressFromEnv())
}
