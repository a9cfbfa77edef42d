package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/fixchatbot/cli"
	"github.com/sokinpui/fixchatbot/fixer"
	"github.com/sokinpui/fixchatbot/internal/ui"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app, err := fixer.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	report, err := app.Execute()
	app.Close()
	if err != nil {
		ui.Error("Error: %v", err)
		var detailed *fixer.DetailedError
		if cfg.Verbose && errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "%s\n", detailed.Stack)
		}
		os.Exit(1)
	}

	ui.PrintReport(os.Stdout, report)
}
