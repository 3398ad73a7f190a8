package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants
const (
	// PermSecretFile is the permission for keyfiles and anything derived from a secret
	PermSecretFile os.FileMode = 0600

	// PermSecretDir is the permission for directories created to hold keyfiles
	PermSecretDir os.FileMode = 0700
)

// File operation errors
var (
	ErrAtomicWriteFailed = errors.New("security: atomic write failed")
	ErrTempFileFailed    = errors.New("security: temporary file creation failed")
	ErrWriterClosed      = errors.New("security: writer already committed or aborted")
)

// SecureFileWriter writes a file atomically with restrictive permissions.
//
// Data goes to a temporary file in the target directory. Commit renames it
// into place; Abort removes it. Until Commit succeeds the target path is
// untouched, so a failed keyfile conversion never leaves a partial keyfile
// where the device would pick it up.
type SecureFileWriter struct {
	path     string
	perm     os.FileMode
	tempFile *os.File
	tempPath string
	size     int64
	done     bool
}

// NewSecureFileWriter creates a writer for path. The parent directory is
// created with PermSecretDir if missing.
func NewSecureFileWriter(path string, perm os.FileMode) (*SecureFileWriter, error) {
	validator := DefaultPathValidator()
	cleanPath, err := validator.ValidatePath(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, PermSecretDir); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	// Same directory as the target so the rename stays on one filesystem.
	tempPath := cleanPath + ".tmp." + randomSuffix()
	tempFile, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTempFileFailed, err)
	}

	return &SecureFileWriter{
		path:     cleanPath,
		perm:     perm,
		tempFile: tempFile,
		tempPath: tempPath,
	}, nil
}

// Path returns the final destination path.
func (w *SecureFileWriter) Path() string {
	return w.path
}

// Write writes data to the temporary file.
func (w *SecureFileWriter) Write(p []byte) (n int, err error) {
	if w.done {
		return 0, ErrWriterClosed
	}
	n, err = w.tempFile.Write(p)
	w.size += int64(n)
	return n, err
}

// Size returns the number of bytes written so far.
func (w *SecureFileWriter) Size() int64 {
	return w.size
}

// Commit atomically moves the temporary file to the final path.
func (w *SecureFileWriter) Commit() error {
	if w.done {
		return ErrWriterClosed
	}
	w.done = true

	if err := w.tempFile.Sync(); err != nil {
		w.tempFile.Close()
		os.Remove(w.tempPath)
		return fmt.Errorf("sync: %w", err)
	}

	if err := w.tempFile.Close(); err != nil {
		os.Remove(w.tempPath)
		return fmt.Errorf("close: %w", err)
	}

	if err := os.Rename(w.tempPath, w.path); err != nil {
		os.Remove(w.tempPath)
		return fmt.Errorf("%w: %v", ErrAtomicWriteFailed, err)
	}

	// Keyfiles often land on removable media; flush the rename too.
	syncDir(filepath.Dir(w.path))
	return nil
}

// syncDir flushes directory metadata. Not all platforms can open a directory
// for syncing, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	d.Close()
}

// Abort discards everything written and removes the temporary file.
// It is a no-op after Commit or a previous Abort.
func (w *SecureFileWriter) Abort() {
	if w.done {
		return
	}
	w.done = true
	w.tempFile.Close()
	os.Remove(w.tempPath)
}

// randomSuffix generates a random suffix for temporary files.
func randomSuffix() string {
	var b [8]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// WriteSecretFile writes data to path atomically with PermSecretFile.
func WriteSecretFile(path string, data []byte) error {
	writer, err := NewSecureFileWriter(path, PermSecretFile)
	if err != nil {
		return err
	}

	if _, err := writer.Write(data); err != nil {
		writer.Abort()
		return err
	}

	return writer.Commit()
}
