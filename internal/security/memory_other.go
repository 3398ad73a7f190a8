//go:build !unix

package security

// Memory locking is unavailable; secrets are still wiped on Destroy.

func lockMemory(b []byte) error { return nil }

func unlockMemory(b []byte) {}
