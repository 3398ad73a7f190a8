// Package layout resolves characters to the key combinations a physical
// keyboard layout needs to produce them.
//
// Layouts are fixed tables. Each entry lists modifiers first and the base
// key last; that order is the press order used by the keyfile encoder.
// Characters a table does not list are rejected, never skipped.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"passkey/internal/keycode"
)

var (
	ErrUnsupportedCharacter = errors.New("layout: unsupported character")
	ErrUnknownLayout        = errors.New("layout: unknown layout")
	ErrInvalidTable         = errors.New("layout: invalid table")
)

const (
	shift = keycode.LeftShift
	altGr = keycode.RightAlt
	alt   = keycode.LeftAlt
)

// UnsupportedCharacterError reports a character with no table entry.
// Offset is the zero-based character position in the input, or -1 when
// the character was resolved on its own. Under NFC normalization it counts
// composed characters, so "o" plus U+0308 is one position.
type UnsupportedCharacterError struct {
	Char   rune
	Layout string
	Offset int
}

func (e *UnsupportedCharacterError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v %U", ErrUnsupportedCharacter, e.Char)
	if e.Layout != "" {
		fmt.Fprintf(&b, " in layout %q", e.Layout)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at position %d", e.Offset)
	}
	return b.String()
}

func (e *UnsupportedCharacterError) Unwrap() error {
	return ErrUnsupportedCharacter
}

// Table is an immutable character to key-sequence mapping.
type Table struct {
	name        string
	description string
	entries     map[rune][]keycode.Key
}

// Name returns the registry name of the table.
func (t *Table) Name() string { return t.name }

// Description returns a human readable label.
func (t *Table) Description() string { return t.description }

// Len returns the number of supported characters.
func (t *Table) Len() int { return len(t.entries) }

// Resolve returns the key sequence for r. The returned slice is a copy and
// may be modified by the caller.
func (t *Table) Resolve(r rune) ([]keycode.Key, error) {
	keys, ok := t.entries[r]
	if !ok {
		return nil, &UnsupportedCharacterError{Char: r, Layout: t.name, Offset: -1}
	}
	out := make([]keycode.Key, len(keys))
	copy(out, keys)
	return out, nil
}

// Supports reports whether r has an entry.
func (t *Table) Supports(r rune) bool {
	_, ok := t.entries[r]
	return ok
}

// Characters returns every supported character in ascending order.
func (t *Table) Characters() []rune {
	chars := make([]rune, 0, len(t.entries))
	for r := range t.entries {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// Validate checks that every entry is non-empty and that every key it
// references exists in codes. A failure means the tables were built wrong.
func (t *Table) Validate(codes *keycode.Table) error {
	var problems []string
	for _, r := range t.Characters() {
		keys := t.entries[r]
		if len(keys) == 0 {
			problems = append(problems, fmt.Sprintf("%U has no keys", r))
			continue
		}
		for _, k := range keys {
			if !codes.Has(k) {
				problems = append(problems, fmt.Sprintf("%U references %q", r, string(k)))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidTable, t.name, strings.Join(problems, "; "))
	}
	return nil
}

// Default is the layout used when none is configured.
const Default = "de"

var registry = map[string]*Table{
	"de": {name: "de", description: "German (ISO, T1)", entries: german},
	"us": {name: "us", description: "English (US, ANSI)", entries: usEnglish},
}

// Lookup returns the registered table called name.
func Lookup(name string) (*Table, error) {
	t, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLayout, name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the registered layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
