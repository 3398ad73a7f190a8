package keyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedChord is returned when records do not follow the
// press/commit/release/commit shape.
var ErrMalformedChord = errors.New("keyfile: malformed chord")

// Chord is one decoded burst.
type Chord struct {
	Pressed  []byte
	Released []byte
}

// Decoder reads records from a keyfile.
type Decoder struct {
	r      *bufio.Reader
	offset int64
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Offset returns the byte offset of the next record.
func (d *Decoder) Offset() int64 { return d.offset }

// Next returns the next record, or io.EOF at a clean end of input.
func (d *Decoder) Next() (Event, error) {
	var rec [RecordSize]byte
	n, err := io.ReadFull(d.r, rec[:])
	switch {
	case err == io.EOF:
		return Event{}, io.EOF
	case err == io.ErrUnexpectedEOF:
		return Event{}, fmt.Errorf("%w: %d trailing byte(s) at offset %d", ErrTruncated, n, d.offset)
	case err != nil:
		return Event{}, err
	}

	var e Event
	if err := e.UnmarshalBinary(rec[:]); err != nil {
		return Event{}, fmt.Errorf("offset %d: %w", d.offset, err)
	}
	d.offset += RecordSize
	return e, nil
}

// NextChord reads one complete burst. It returns io.EOF only when the input
// ends exactly on a chord boundary.
func (d *Decoder) NextChord() (Chord, error) {
	var c Chord
	start := d.offset

	first := true
	for {
		e, err := d.Next()
		if err == io.EOF && first {
			return Chord{}, io.EOF
		}
		if err != nil {
			return Chord{}, d.chordErr(start, err)
		}
		first = false
		if e.Action == Commit {
			break
		}
		if e.Action != Press {
			return Chord{}, fmt.Errorf("%w at offset %d: %s before commit", ErrMalformedChord, start, e.Action)
		}
		c.Pressed = append(c.Pressed, e.Code)
	}

	for {
		e, err := d.Next()
		if err != nil {
			return Chord{}, d.chordErr(start, err)
		}
		if e.Action == Commit {
			break
		}
		if e.Action != Release {
			return Chord{}, fmt.Errorf("%w at offset %d: %s after commit", ErrMalformedChord, start, e.Action)
		}
		c.Released = append(c.Released, e.Code)
	}

	if len(c.Pressed) == 0 {
		return Chord{}, fmt.Errorf("%w at offset %d: no keys pressed", ErrMalformedChord, start)
	}
	return c, nil
}

func (d *Decoder) chordErr(start int64, err error) error {
	if err == io.EOF {
		return fmt.Errorf("%w at offset %d: %w", ErrMalformedChord, start, io.ErrUnexpectedEOF)
	}
	return err
}

// ReadAll decodes every chord in r.
func ReadAll(r io.Reader) ([]Chord, error) {
	d := NewDecoder(r)
	var chords []Chord
	for {
		c, err := d.NextChord()
		if err == io.EOF {
			return chords, nil
		}
		if err != nil {
			return chords, err
		}
		chords = append(chords, c)
	}
}
