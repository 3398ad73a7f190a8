// Package convert turns a character stream into a keyfile.
//
// Convert is the only entry point. It reads characters in order, resolves
// each through a layout table and writes its key burst to the sink before
// reading the next one. Any error stops the conversion at once; the caller
// owns the sink and must discard what was written.
package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"passkey/internal/keycode"
	"passkey/internal/keyfile"
	"passkey/internal/layout"
)

// Stats summarizes a finished conversion.
type Stats struct {
	Characters int
	Events     int64
	Bytes      int64
}

// Converter holds the fixed tables used for a conversion.
type Converter struct {
	// Layout resolves characters to keys.
	Layout *layout.Table

	// Codes maps keys to codes. Nil means keycode.HID.
	Codes *keycode.Table

	// Normalize composes decomposed input (NFC) before lookup, so "o" followed
	// by U+0308 becomes "ö".
	Normalize bool
}

// New returns a Converter for the named layout.
func New(layoutName string) (*Converter, error) {
	tbl, err := layout.Lookup(layoutName)
	if err != nil {
		return nil, err
	}
	return &Converter{Layout: tbl, Codes: keycode.HID}, nil
}

// Convert reads every character from src and writes its keystroke burst to
// sink. ctx is checked between characters only; a burst is never split.
// With Normalize set, error offsets count composed characters.
func (c *Converter) Convert(ctx context.Context, src io.RuneReader, sink io.Writer) (stats Stats, err error) {
	if c.Layout == nil {
		return stats, fmt.Errorf("convert: no layout configured")
	}
	codes := c.Codes
	if codes == nil {
		codes = keycode.HID
	}
	if c.Normalize {
		src = bufio.NewReader(norm.NFC.Reader(runeReaderAsReader(src)))
	}

	w := keyfile.NewWriterWithCodes(sink, codes)
	defer func() {
		stats.Events = w.Events()
		stats.Bytes = w.Bytes()
	}()

	for pos := 0; ; pos++ {
		if cerr := ctx.Err(); cerr != nil {
			return stats, cerr
		}

		r, size, rerr := src.ReadRune()
		if rerr == io.EOF {
			return stats, nil
		}
		if rerr != nil {
			return stats, fmt.Errorf("read input: %w", rerr)
		}
		if r == utf8.RuneError && size == 1 {
			return stats, &layout.UnsupportedCharacterError{Char: r, Layout: c.Layout.Name(), Offset: pos}
		}

		keys, rerr := c.Layout.Resolve(r)
		if rerr != nil {
			return stats, &layout.UnsupportedCharacterError{Char: r, Layout: c.Layout.Name(), Offset: pos}
		}
		if werr := w.WriteChord(keys); werr != nil {
			return stats, fmt.Errorf("character %d (%U): %w", pos, r, werr)
		}
		stats.Characters++
	}
}

// ConvertString is Convert over an in-memory string.
func (c *Converter) ConvertString(ctx context.Context, s string, sink io.Writer) (Stats, error) {
	return c.Convert(ctx, strings.NewReader(s), sink)
}

// Convert converts src with the default layout.
func Convert(ctx context.Context, src io.RuneReader, sink io.Writer) (Stats, error) {
	c, err := New(layout.Default)
	if err != nil {
		return Stats{}, err
	}
	return c.Convert(ctx, src, sink)
}

// runeReaderAsReader exposes a RuneReader as UTF-8 bytes for the normalizer.
func runeReaderAsReader(rr io.RuneReader) io.Reader {
	if r, ok := rr.(io.Reader); ok {
		return r
	}
	return &runeBytes{rr: rr}
}

type runeBytes struct {
	rr      io.RuneReader
	pending []byte
}

func (b *runeBytes) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(b.pending) == 0 {
			r, _, err := b.rr.ReadRune()
			if err != nil {
				if n > 0 {
					return n, nil
				}
				return 0, err
			}
			b.pending = utf8.AppendRune(b.pending[:0], r)
		}
		m := copy(p[n:], b.pending)
		b.pending = b.pending[m:]
		n += m
	}
	return n, nil
}
