// Package keyfile encodes key combinations into the binary keyfile format
// replayed by the USB keyboard device, and decodes keyfiles for inspection.
//
// A keyfile is a flat sequence of 2-byte records with no header or trailer:
//
//	0x80 code   press
//	0x00 code   release
//	0x40 0x00   commit the current chord
//
// Each character becomes one burst: every key pressed in order, a commit,
// every key released in the same order, a commit.
package keyfile

import (
	"errors"
	"fmt"

	"passkey/internal/keycode"
)

// RecordSize is the encoded size of one Event.
const RecordSize = 2

// Action is the first byte of a record.
type Action byte

const (
	Release Action = 0x00
	Commit  Action = 0x40
	Press   Action = 0x80
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	case Commit:
		return "commit"
	default:
		return fmt.Sprintf("action(%#02x)", byte(a))
	}
}

// Valid reports whether a is one of the three known actions.
func (a Action) Valid() bool {
	return a == Press || a == Release || a == Commit
}

var (
	ErrUnknownKey = keycode.ErrUnknownKey
	ErrSinkWrite  = errors.New("keyfile: write failed")
	ErrTruncated  = errors.New("keyfile: truncated record")
	ErrBadAction  = errors.New("keyfile: invalid action byte")
	ErrEmptyChord = errors.New("keyfile: empty key combination")
)

// Event is one keyfile record.
type Event struct {
	Action Action
	Code   byte
}

// CommitEvent is the chord separator record.
var CommitEvent = Event{Action: Commit}

// MarshalBinary encodes e as action byte then code byte.
func (e Event) MarshalBinary() ([]byte, error) {
	return []byte{byte(e.Action), e.Code}, nil
}

// UnmarshalBinary decodes a single record.
func (e *Event) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrTruncated, len(data), RecordSize)
	}
	a := Action(data[0])
	if !a.Valid() {
		return fmt.Errorf("%w: %#02x", ErrBadAction, data[0])
	}
	e.Action = a
	e.Code = data[1]
	return nil
}

func (e Event) String() string {
	if e.Action == Commit {
		return "commit"
	}
	return fmt.Sprintf("%s %#02x", e.Action, e.Code)
}

// appendEvent appends the 2-byte encoding of e to buf.
func appendEvent(buf []byte, a Action, code byte) []byte {
	return append(buf, byte(a), code)
}
