// Package keycode holds the closed set of symbolic key identifiers and their
// USB HID usage codes as understood by the keyfile replay device.
package keycode

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKey is returned when a key identifier has no code.
var ErrUnknownKey = errors.New("keycode: unknown key identifier")

// Key is a symbolic key identifier such as "LEFTSHIFT" or "A".
type Key string

// Modifier keys referenced by the layout tables.
const (
	LeftCtrl   Key = "LEFTCTRL"
	LeftShift  Key = "LEFTSHIFT"
	LeftAlt    Key = "LEFTALT"
	LeftMeta   Key = "LEFTMETA"
	RightCtrl  Key = "RIGHTCTRL"
	RightShift Key = "RIGHTSHIFT"
	RightAlt   Key = "RIGHTALT"
	RightMeta  Key = "RIGHTMETA"
)

// UnknownKeyError reports a key identifier missing from a Table.
type UnknownKeyError struct {
	Key Key
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownKey, string(e.Key))
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// Table maps key identifiers to their one-byte codes.
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	codes map[Key]byte
	names map[byte]Key
}

// NewTable builds a table from the given mapping. When two identifiers share
// a code, Name returns the lexically smallest one.
func NewTable(codes map[Key]byte) *Table {
	t := &Table{
		codes: make(map[Key]byte, len(codes)),
		names: make(map[byte]Key, len(codes)),
	}
	for k, c := range codes {
		t.codes[k] = c
		if prev, ok := t.names[c]; !ok || k < prev {
			t.names[c] = k
		}
	}
	return t
}

// Code returns the code for k.
func (t *Table) Code(k Key) (byte, error) {
	c, ok := t.codes[k]
	if !ok {
		return 0, &UnknownKeyError{Key: k}
	}
	return c, nil
}

// Has reports whether k is in the table.
func (t *Table) Has(k Key) bool {
	_, ok := t.codes[k]
	return ok
}

// Name returns the identifier for code c.
func (t *Table) Name(c byte) (Key, bool) {
	k, ok := t.names[c]
	return k, ok
}

// Len returns the number of identifiers.
func (t *Table) Len() int {
	return len(t.codes)
}

// Keys returns all identifiers ordered by code.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.codes))
	for k := range t.codes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := t.codes[keys[i]], t.codes[keys[j]]
		if ci != cj {
			return ci < cj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// HID is the code table of the replay device.
var HID = NewTable(hidCodes)

// Code looks up k in the HID table.
func Code(k Key) (byte, error) {
	return HID.Code(k)
}
