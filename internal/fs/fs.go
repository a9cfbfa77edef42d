package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sokinpui/fixchatbot/internal/ui"
)

// ErrInvalidEncoding is returned when a target file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// FileAccessError reports a failure to read or write the target file.
type FileAccessError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// PathResolver finds absolute paths for files.
type PathResolver struct {
	lookupDirs []string
}

// NewPathResolver creates a new PathResolver. With no lookup directories the
// current working directory is used.
func NewPathResolver(lookupDirs []string) (*PathResolver, error) {
	if len(lookupDirs) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		return &PathResolver{lookupDirs: []string{wd}}, nil
	}

	absDirs := make([]string, 0, len(lookupDirs))
	for _, dir := range lookupDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			ui.Warning("Invalid lookup directory '%s', ignoring: %v", dir, err)
			continue
		}
		absDirs = append(absDirs, abs)
	}
	if len(absDirs) == 0 {
		return nil, fmt.Errorf("no usable lookup directory in %v", lookupDirs)
	}
	return &PathResolver{lookupDirs: absDirs}, nil
}

// Resolve finds an absolute path. If the file exists in none of the lookup
// directories, the path under the first one is returned so that the caller
// reports a missing file there.
func (r *PathResolver) Resolve(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return relativePath
	}
	if existing := r.ResolveExisting(relativePath); existing != "" {
		return existing
	}
	return filepath.Join(r.lookupDirs[0], relativePath)
}

// ResolveExisting finds an absolute path only if the file exists.
func (r *PathResolver) ResolveExisting(relativePath string) string {
	for _, dir := range r.lookupDirs {
		absPath := filepath.Join(dir, relativePath)
		if _, err := os.Stat(absPath); err == nil {
			return absPath
		}
	}
	return ""
}

// ReadText reads the whole file and checks that it is valid UTF-8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileAccessError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileAccessError{Op: "read", Path: path, Err: ErrInvalidEncoding}
	}
	return string(data), nil
}

// WriteText truncates an existing file and writes content to it. The file is
// never created: a target that disappeared since it was read is an error.
func WriteText(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ContentSHA256 returns the hex SHA256 of content.
func ContentSHA256(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
