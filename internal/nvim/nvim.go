package nvim

import (
	"errors"
	"fmt"
	"os"

	"github.com/neovim/go-client/nvim"
)

// ErrNoAddress is returned when no Neovim socket is known.
var ErrNoAddress = errors.New("no Neovim address: set --nvim-addr, $NVIM or $NVIM_LISTEN_ADDRESS")

// AddressFromEnv returns the socket of the Neovim instance this process runs
// under, if any.
func AddressFromEnv() string {
	if addr := os.Getenv("NVIM"); addr != "" {
		return addr
	}
	return os.Getenv("NVIM_LISTEN_ADDRESS")
}

// Reload asks the Neovim instance listening on addr to re-read path from
// disk if it has it open. It reports whether a buffer was reloaded.
func Reload(addr, path string) (bool, error) {
	if addr == "" {
		return false, ErrNoAddress
	}

	v, err := nvim.Dial(addr)
	if err != nil {
		return false, fmt.Errorf("failed to connect to nvim at %s: %w", addr, err)
	}
	defer v.Close()

	var bufnr int
	if err := v.Call("bufnr", &bufnr, path); err != nil {
		return false, fmt.Errorf("failed to look up buffer for %s: %w", path, err)
	}
	if bufnr < 0 {
		return false, nil
	}

	if err := v.Command(fmt.Sprintf("checktime %d", bufnr)); err != nil {
		return false, fmt.Errorf("failed to reload buffer %d: %w", bufnr, err)
	}
	return true, nil
}
