// Package security provides the secret-handling helpers used around keyfile
// conversion.
//
// This package implements:
// - Wiping and memory locking for typed key sequences
// - Constant-time comparison for sequence confirmation
// - Atomic keyfile output with restrictive permissions
// - Path validation for input and output files
package security

import (
	"crypto/subtle"
	"runtime"
	"sync"
)

// SecureBytes holds a secret in memory that is locked against swapping where
// the platform allows it and zeroed on Destroy.
type SecureBytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// NewSecureBytes allocates size zero bytes. Locking failures (for example an
// exhausted RLIMIT_MEMLOCK) leave the buffer usable but unlocked.
func NewSecureBytes(size int) (*SecureBytes, error) {
	sb := &SecureBytes{data: make([]byte, size)}
	sb.locked = lockMemory(sb.data) == nil

	runtime.SetFinalizer(sb, (*SecureBytes).Destroy)
	return sb, nil
}

// FromBytes moves data into a new SecureBytes and wipes data.
func FromBytes(data []byte) (*SecureBytes, error) {
	sb, err := NewSecureBytes(len(data))
	if err != nil {
		return nil, err
	}
	copy(sb.data, data)
	Wipe(data)
	return sb, nil
}

// Bytes returns the secret itself, not a copy. Do not retain it past Destroy.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Len returns the secret length, 0 after Destroy.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Equal compares two secrets in constant time.
func (s *SecureBytes) Equal(other *SecureBytes) bool {
	if s == other {
		return true
	}
	return ConstantTimeCompare(s.Bytes(), other.Bytes())
}

// Destroy zeroes and unlocks the secret. Safe to call more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}
	Wipe(s.data)
	if s.locked {
		unlockMemory(s.data)
		s.locked = false
	}
	s.data = nil
}

// Wipe overwrites data with zeros.
func Wipe(data []byte) {
	clear(data)
	runtime.KeepAlive(data)
}

// ConstantTimeCompare reports whether a and b are equal without leaking where
// they differ.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
