package fixer

import (
	"fmt"

	"github.com/sokinpui/fixchatbot/cli"
	"github.com/sokinpui/fixchatbot/model"
)

// Config for using fixchatbot as a library.
type Config struct {
	// File overrides the default target, src/components/ChatBot.jsx.
	File string
	// Directories to resolve File in. Defaults to the working directory.
	LookupDirs []string
	// Compute the change without writing it.
	DryRun bool
}

// Apply runs the chatbot fix once and returns its report.
func Apply(config Config) (model.Report, error) {
	cliCfg := &cli.Config{
		File:       config.File,
		LookupDirs: config.LookupDirs,
		DryRun:     config.DryRun,
	}

	app, err := New(cliCfg)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to initialize fixchatbot app: %w", err)
	}
	defer app.Close()

	return app.Execute()
}
