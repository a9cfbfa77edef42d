package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/fixchatbot/internal/fixes"
)

// Config holds all the command-line flag values.
type Config struct {
	File       string
	LookupDirs []string
	DryRun     bool
	Verbose    bool
	NvimReload bool
	NvimAddr   string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	flags := pflag.NewFlagSet("fixchatbot", pflag.ContinueOnError)

	flags.StringVarP(&cfg.File, "file", "f", fixes.ChatBotTarget, "File to fix.")
	flags.StringSliceVarP(&cfg.LookupDirs, "lookup-dir", "l", []string{}, "Directories to look for the file in (default: current directory).")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Show the change without writing the file.")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging and print the applied change.")
	flags.BoolVar(&cfg.NvimReload, "nvim-reload", false, "Reload the file in a running Neovim after fixing it.")
	flags.StringVar(&cfg.NvimAddr, "nvim-addr", "", "Neovim socket for --nvim-reload (default: $NVIM or $NVIM_LISTEN_ADDRESS).")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: fixchatbot [flags]")
		fmt.Fprintln(os.Stderr, "\nRe-indent the action branches of the chatbot response builder.")
		fmt.Fprintln(os.Stderr, "\nExample: fixchatbot --dry-run")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	if cfg.File == "" {
		return nil, fmt.Errorf("--file must not be empty")
	}
	if cfg.NvimAddr != "" && !cfg.NvimReload {
		return nil, fmt.Errorf("--nvim-addr requires --nvim-reload")
	}

	return cfg, nil
}
