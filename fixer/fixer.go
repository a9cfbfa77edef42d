package fixer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/sokinpui/fixchatbot/cli"
	"github.com/sokinpui/fixchatbot/internal/fixes"
	"github.com/sokinpui/fixchatbot/internal/fs"
	"github.com/sokinpui/fixchatbot/internal/logging"
	"github.com/sokinpui/fixchatbot/internal/nvim"
	"github.com/sokinpui/fixchatbot/internal/patcher"
	"github.com/sokinpui/fixchatbot/internal/ui"
	"github.com/sokinpui/fixchatbot/model"
)

const notFoundMessage = "Could not find the section to fix"

// App orchestrates the entire application logic.
type App struct {
	cfg          *cli.Config
	fix          fixes.Fix
	log          *zap.Logger
	pathResolver *fs.PathResolver
	patcher      *patcher.Patcher
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	log, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, err
	}
	pathResolver, err := fs.NewPathResolver(cfg.LookupDirs)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}

	fix := fixes.Default()
	if cfg.File != "" {
		fix.Target = cfg.File
	}

	return &App{
		cfg:          cfg,
		fix:          fix,
		log:          log,
		pathResolver: pathResolver,
		patcher:      patcher.New(log, cfg.DryRun),
	}, nil
}

// Close flushes the logger.
func (a *App) Close() {
	_ = a.log.Sync()
}

// Execute applies the fix to its target file.
func (a *App) Execute() (report model.Report, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	path := a.pathResolver.Resolve(a.fix.Target)
	a.log.Debug("applying fix",
		zap.String("fix", a.fix.Name),
		zap.String("path", path),
		zap.Bool("dry_run", a.cfg.DryRun),
	)

	res, err := a.patcher.Patch(path, a.fix.Old, a.fix.New)
	if err != nil {
		return model.Report{}, err
	}

	if res.Written && a.cfg.NvimReload {
		a.reloadInNvim(path)
	}
	return a.buildReport(res), nil
}

func (a *App) buildReport(res patcher.Result) model.Report {
	display := relativePath(res.Path)
	name := filepath.Base(res.Path)

	report := model.Report{
		Path:         display,
		Outcome:      res.Outcome.String(),
		Found:        res.Outcome.Found(),
		Replacements: res.Replacements,
		DryRun:       a.cfg.DryRun,
	}

	switch res.Outcome {
	case patcher.Patched:
		if a.cfg.DryRun {
			report.Message = name + " can be fixed (dry run)"
		} else {
			report.Message = name + " fixed successfully"
		}
		if a.cfg.DryRun || a.cfg.Verbose {
			report.Preview = patcher.Preview(display, res.Before, res.After)
		}
	case patcher.AlreadyApplied:
		report.Message = notFoundMessage
		report.Hint = fmt.Sprintf("%s already contains the corrected section.", display)
	default:
		report.Message = notFoundMessage
		report.Hint = fmt.Sprintf("%s contains neither the broken nor the corrected section; it may have been edited since this fix was written.", display)
	}
	return report
}

func (a *App) reloadInNvim(path string) {
	addr := a.cfg.NvimAddr
	if addr == "" {
		addr = nvim.AddressFromEnv()
	}
	reloaded, err := nvim.Reload(addr, path)
	if err != nil {
		ui.Warning("Could not reload %s in Neovim: %v", relativePath(path), err)
		return
	}
	a.log.Debug("nvim reload", zap.String("path", path), zap.Bool("buffer_open", reloaded))
}

// relativePath converts an absolute path to be relative to the current
// working directory for cleaner display.
func relativePath(p string) string {
	wd, err := os.Getwd()
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(wd, p)
	if err != nil {
		return p
	}
	return rel
}
