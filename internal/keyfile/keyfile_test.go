package keyfile

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkey/internal/keycode"
	"passkey/internal/layout"
)

func TestEncodeSingleKey(t *testing.T) {
	data, err := Encode([]keycode.Key{"1"}, keycode.HID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x1e, 0x40, 0x00, 0x00, 0x1e, 0x40, 0x00}, data)
}

func TestEncodeShifted(t *testing.T) {
	data, err := Encode([]keycode.Key{keycode.LeftShift, "1"}, keycode.HID)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x80, 0xe1, 0x80, 0x1e, 0x40, 0x00,
		0x00, 0xe1, 0x00, 0x1e, 0x40, 0x00,
	}, data)
}

func TestEncodeKeepsDuplicates(t *testing.T) {
	data, err := Encode([]keycode.Key{"A", "A"}, keycode.HID)
	require.NoError(t, err)
	assert.Len(t, data, EventCount(2)*RecordSize)
	assert.Equal(t, []byte{0x80, 0x04, 0x80, 0x04}, data[:4])
}

func TestEncodeUnknownKey(t *testing.T) {
	buf := []byte{0xaa}
	out, err := AppendChord(buf, []keycode.Key{keycode.RightAlt, "µ"}, keycode.HID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.Equal(t, []byte{0xaa}, out)

	var uk *keycode.UnknownKeyError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, keycode.Key("µ"), uk.Key)
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode(nil, keycode.HID)
	assert.ErrorIs(t, err, ErrEmptyChord)
}

func TestEncodeDeterministic(t *testing.T) {
	keys := []keycode.Key{keycode.RightAlt, "Q"}
	a, err := Encode(keys, keycode.HID)
	require.NoError(t, err)
	b, err := Encode(keys, keycode.HID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Every layout entry must survive an encode/decode cycle with the same key
// order in both halves.
func TestLayoutEntriesDecodeBack(t *testing.T) {
	for _, name := range layout.Names() {
		tbl, err := layout.Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for _, r := range tbl.Characters() {
				keys, err := tbl.Resolve(r)
				require.NoError(t, err)

				data, err := Encode(keys, keycode.HID)
				require.NoError(t, err)
				require.Len(t, data, EventCount(len(keys))*RecordSize, "%U", r)

				chords, err := ReadAll(bytes.NewReader(data))
				require.NoError(t, err)
				require.Len(t, chords, 1)

				want, err := Codes(keys, keycode.HID)
				require.NoError(t, err)
				assert.Equal(t, want, chords[0].Pressed, "%U", r)
				assert.Equal(t, want, chords[0].Released, "%U", r)
			}
		})
	}
}

func TestWriterStreamsBursts(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteChord([]keycode.Key{"1"}))
	require.NoError(t, w.WriteChord([]keycode.Key{keycode.LeftShift, "1"}))

	assert.Equal(t, []byte{
		0x80, 0x1e, 0x40, 0x00, 0x00, 0x1e, 0x40, 0x00,
		0x80, 0xe1, 0x80, 0x1e, 0x40, 0x00, 0x00, 0xe1, 0x00, 0x1e, 0x40, 0x00,
	}, buf.Bytes())
	assert.Equal(t, int64(10), w.Events())
	assert.Equal(t, int64(20), w.Bytes())
}

type countingWriter struct {
	calls int
	buf   bytes.Buffer
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.calls++
	return c.buf.Write(p)
}

func TestWriterSingleWritePerChord(t *testing.T) {
	cw := &countingWriter{}
	w := NewWriter(cw)
	require.NoError(t, w.WriteChord([]keycode.Key{keycode.LeftShift, keycode.RightAlt, "E"}))
	assert.Equal(t, 1, cw.calls)
	assert.Equal(t, 16, cw.buf.Len())
}

func TestWriterUnknownKeyWritesNothing(t *testing.T) {
	cw := &countingWriter{}
	w := NewWriter(cw)
	err := w.WriteChord([]keycode.Key{"NOPE"})
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Zero(t, cw.calls)
}

type failingWriter struct {
	n   int
	err error
}

func (f failingWriter) Write(p []byte) (int, error) {
	if f.n > len(p) {
		return len(p), f.err
	}
	return f.n, f.err
}

func TestWriterSinkFailure(t *testing.T) {
	diskFull := errors.New("disk full")
	w := NewWriter(failingWriter{n: 2, err: diskFull})

	err := w.WriteChord([]keycode.Key{"1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSinkWrite)
	assert.ErrorIs(t, err, diskFull)
	assert.Equal(t, int64(1), w.Events())
}

func TestWriterShortWrite(t *testing.T) {
	w := NewWriter(failingWriter{n: 3})
	err := w.WriteChord([]keycode.Key{"1"})
	assert.ErrorIs(t, err, ErrSinkWrite)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestEventBinary(t *testing.T) {
	data, err := Event{Action: Press, Code: 0x04}.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x04}, data)

	var e Event
	require.NoError(t, e.UnmarshalBinary([]byte{0x40, 0x00}))
	assert.Equal(t, CommitEvent, e)

	assert.ErrorIs(t, e.UnmarshalBinary([]byte{0x80}), ErrTruncated)
	assert.ErrorIs(t, e.UnmarshalBinary([]byte{0x81, 0x04}), ErrBadAction)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "press 0xe1", Event{Action: Press, Code: 0xe1}.String())
	assert.Equal(t, "release 0x1e", Event{Action: Release, Code: 0x1e}.String())
	assert.Equal(t, "commit", CommitEvent.String())
	assert.Equal(t, "action(0x7f)", Action(0x7f).String())
}

func TestDecoderErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"odd trailing byte", []byte{0x80, 0x1e, 0x40}, ErrTruncated},
		{"bad action", []byte{0x81, 0x1e}, ErrBadAction},
		{"release before commit", []byte{0x00, 0x1e, 0x40, 0x00}, ErrMalformedChord},
		{"press after commit", []byte{0x80, 0x1e, 0x40, 0x00, 0x80, 0x1e, 0x40, 0x00}, ErrMalformedChord},
		{"missing final commit", []byte{0x80, 0x1e, 0x40, 0x00, 0x00, 0x1e}, ErrMalformedChord},
		{"empty chord", []byte{0x40, 0x00, 0x40, 0x00}, ErrMalformedChord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAll(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecoderEmptyInput(t *testing.T) {
	chords, err := ReadAll(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, chords)
}

func TestDecoderOffset(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{0x80, 0x1e, 0x40, 0x00}))
	_, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.Offset())
	_, err = d.Next()
	require.NoError(t, err)
	_, err = d.Next()
	assert.Equal(t, io.EOF, err)
}

func FuzzDecoder(f *testing.F) {
	f.Add([]byte{0x80, 0x1e, 0x40, 0x00, 0x00, 0x1e, 0x40, 0x00})
	f.Add([]byte{0x80})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		chords, err := ReadAll(bytes.NewReader(data))
		if err != nil {
			return
		}
		var total int
		for _, c := range chords {
			total += len(c.Pressed) + len(c.Released) + 2
		}
		if total*RecordSize != len(data) {
			t.Fatalf("decoded %d records from %d bytes", total, len(data))
		}
	})
}
