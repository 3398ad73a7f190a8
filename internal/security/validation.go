package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validation errors
var (
	ErrInvalidPath  = errors.New("security: invalid path")
	ErrInputTooLong = errors.New("security: input exceeds maximum length")
	ErrNullByte     = errors.New("security: null byte in input")
	ErrNotRegular   = errors.New("security: not a regular file")
)

// PathValidator checks user-supplied input and keyfile paths. Relative paths,
// including ones that climb with "..", are the user's own choice and are
// accepted.
type PathValidator struct {
	// AllowSymlinks keeps the path as given instead of resolving links.
	AllowSymlinks bool

	// MaxPathLength is the maximum allowed path length. Zero disables the check.
	MaxPathLength int
}

// DefaultPathValidator returns a PathValidator with sensible defaults.
func DefaultPathValidator() *PathValidator {
	return &PathValidator{
		MaxPathLength: 4096,
	}
}

// ValidatePath returns the cleaned absolute form of path. The file itself need
// not exist.
func (v *PathValidator) ValidatePath(path string) (string, error) {
	switch {
	case path == "":
		return "", ErrInvalidPath
	case strings.ContainsRune(path, 0):
		return "", ErrNullByte
	case v.MaxPathLength > 0 && len(path) > v.MaxPathLength:
		return "", fmt.Errorf("%w: length %d exceeds maximum %d", ErrInputTooLong, len(path), v.MaxPathLength)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if v.AllowSymlinks {
		return absPath, nil
	}
	return resolveLinks(absPath)
}

// ValidateInputFile validates path and checks that it names a regular file.
func (v *PathValidator) ValidateInputFile(path string) (string, error) {
	clean, err := v.ValidatePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(clean)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegular, clean)
	}
	return clean, nil
}

// resolveLinks resolves symlinks in absPath. Keyfiles usually do not exist
// yet, in which case only the parent directory is resolved.
func resolveLinks(absPath string) (string, error) {
	resolved, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: symlink evaluation failed: %v", ErrInvalidPath, err)
	}

	parent, err := filepath.EvalSymlinks(filepath.Dir(absPath))
	if err != nil {
		if os.IsNotExist(err) {
			return absPath, nil
		}
		return "", fmt.Errorf("%w: parent symlink evaluation failed: %v", ErrInvalidPath, err)
	}
	return filepath.Join(parent, filepath.Base(absPath)), nil
}
