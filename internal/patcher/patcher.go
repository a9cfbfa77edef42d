package patcher

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sokinpui/fixchatbot/internal/fs"
)

// ErrEmptyBlock is returned when either side of a replacement is empty.
var ErrEmptyBlock = errors.New("old and new blocks must not be empty")

// Outcome is the terminal state of one Patch call.
type Outcome int

const (
	// Patched means the old block was found and replaced.
	Patched Outcome = iota
	// AlreadyApplied means the old block is absent but the new block is present.
	AlreadyApplied
	// Drifted means neither block is present in the file.
	Drifted
)

func (o Outcome) String() string {
	switch o {
	case Patched:
		return "patched"
	case AlreadyApplied:
		return "already-applied"
	case Drifted:
		return "drifted"
	default:
		return "unknown"
	}
}

// Found reports whether the old block was present in the file.
func (o Outcome) Found() bool {
	return o == Patched
}

// Result describes what Patch saw and did.
type Result struct {
	Path         string
	Outcome      Outcome
	Replacements int
	// Before and After hold the full file content around the substitution.
	// They are equal unless Outcome is Patched.
	Before     string
	After      string
	HashBefore string
	HashAfter  string
	// Written is false for dry runs and for every outcome but Patched.
	Written bool
}

// Patcher applies literal block replacements to single files.
type Patcher struct {
	dryRun bool
	log    *zap.Logger
}

// New creates a Patcher. A dry-run Patcher computes results without writing.
func New(log *zap.Logger, dryRun bool) *Patcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Patcher{dryRun: dryRun, log: log}
}

// Patch reads path, replaces every exact occurrence of oldBlock with
// newBlock and writes the file back. The file is read once and written at
// most once, after the new content is fully built. Read and write failures
// are returned as *fs.FileAccessError.
func (p *Patcher) Patch(path, oldBlock, newBlock string) (Result, error) {
	if oldBlock == "" || newBlock == "" {
		return Result{}, ErrEmptyBlock
	}

	content, err := fs.ReadText(path)
	if err != nil {
		return Result{}, err
	}

	hash := fs.ContentSHA256(content)
	res := Result{
		Path:       path,
		Before:     content,
		After:      content,
		HashBefore: hash,
		HashAfter:  hash,
	}

	oldBlock, newBlock, count := locate(content, oldBlock, newBlock)
	p.log.Debug("searched target",
		zap.String("path", path),
		zap.Int("bytes", len(content)),
		zap.Int("occurrences", count),
		zap.String("sha256", hash),
	)

	if count == 0 {
		res.Outcome = Drifted
		if strings.Contains(content, newBlock) {
			res.Outcome = AlreadyApplied
		}
		return res, nil
	}
	if count > 1 {
		p.log.Warn("old block occurs more than once, replacing every occurrence",
			zap.String("path", path),
			zap.Int("occurrences", count),
		)
	}

	patched := strings.ReplaceAll(content, oldBlock, newBlock)
	res.Outcome = Patched
	res.Replacements = count
	res.After = patched
	res.HashAfter = fs.ContentSHA256(patched)

	if p.dryRun {
		p.log.Debug("dry run, not writing", zap.String("path", path))
		return res, nil
	}

	if err := fs.WriteText(path, patched); err != nil {
		return Result{}, err
	}
	res.Written = true
	p.log.Debug("wrote target",
		zap.String("path", path),
		zap.Int("bytes", len(patched)),
		zap.String("sha256", res.HashAfter),
	)
	return res, nil
}

// locate counts occurrences of oldBlock in content. When the blocks use LF
// but the file uses CRLF, the CRLF form of both blocks is tried as well, so
// that the file keeps its line endings. The returned blocks are the form
// that should be used against content.
func locate(content, oldBlock, newBlock string) (string, string, int) {
	if count := strings.Count(content, oldBlock); count > 0 {
		return oldBlock, newBlock, count
	}
	if !strings.Contains(content, "\r\n") || strings.Contains(oldBlock, "\r\n") {
		return oldBlock, newBlock, 0
	}

	crlfOld, crlfNew := toCRLF(oldBlock), toCRLF(newBlock)
	if count := strings.Count(content, crlfOld); count > 0 {
		return crlfOld, crlfNew, count
	}
	if strings.Contains(content, crlfNew) {
		return crlfOld, crlfNew, 0
	}
	return oldBlock, newBlock, 0
}

func toCRLF(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}
