package keyfile

import (
	"fmt"
	"io"

	"passkey/internal/keycode"
)

// EventCount is the number of records produced for an n-key combination.
func EventCount(n int) int {
	return 2 * (n + 1)
}

// Codes resolves every key to its code, failing on the first unknown one
// with a *keycode.UnknownKeyError.
func Codes(keys []keycode.Key, codes *keycode.Table) ([]byte, error) {
	out := make([]byte, len(keys))
	for i, k := range keys {
		c, err := codes.Code(k)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// AppendChord appends the press/commit/release/commit burst for keys to buf.
// Keys are released in press order. Nothing is appended on error.
func AppendChord(buf []byte, keys []keycode.Key, codes *keycode.Table) ([]byte, error) {
	if len(keys) == 0 {
		return buf, ErrEmptyChord
	}
	cs, err := Codes(keys, codes)
	if err != nil {
		return buf, err
	}
	for _, c := range cs {
		buf = appendEvent(buf, Press, c)
	}
	buf = appendEvent(buf, Commit, 0)
	for _, c := range cs {
		buf = appendEvent(buf, Release, c)
	}
	buf = appendEvent(buf, Commit, 0)
	return buf, nil
}

// Encode returns the burst for a single key combination.
func Encode(keys []keycode.Key, codes *keycode.Table) ([]byte, error) {
	return AppendChord(make([]byte, 0, EventCount(len(keys))*RecordSize), keys, codes)
}

// Writer streams key combinations to an underlying sink.
//
// Each combination is written with a single Write call, so a sink never sees
// half a burst from a successful call. Writer does not buffer across calls.
type Writer struct {
	w      io.Writer
	codes  *keycode.Table
	buf    []byte
	events int64
	bytes  int64
}

// NewWriter returns a Writer using the HID code table.
func NewWriter(w io.Writer) *Writer {
	return NewWriterWithCodes(w, keycode.HID)
}

// NewWriterWithCodes returns a Writer using codes.
func NewWriterWithCodes(w io.Writer, codes *keycode.Table) *Writer {
	return &Writer{
		w:     w,
		codes: codes,
		buf:   make([]byte, 0, 64),
	}
}

// WriteChord encodes keys and writes the burst. Unknown keys fail before any
// byte reaches the sink.
func (kw *Writer) WriteChord(keys []keycode.Key) error {
	buf, err := AppendChord(kw.buf[:0], keys, kw.codes)
	if err != nil {
		return err
	}
	kw.buf = buf

	n, err := kw.w.Write(buf)
	kw.bytes += int64(n)
	kw.events += int64(n / RecordSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	if n != len(buf) {
		return fmt.Errorf("%w: %w", ErrSinkWrite, io.ErrShortWrite)
	}
	return nil
}

// Events returns the number of complete records written.
func (kw *Writer) Events() int64 { return kw.events }

// Bytes returns the number of bytes written.
func (kw *Writer) Bytes() int64 { return kw.bytes }
