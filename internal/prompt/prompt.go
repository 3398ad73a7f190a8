// Package prompt reads key sequences from the user without echoing them.
package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"passkey/internal/security"
)

// Prompt labels.
const (
	EnterLabel   = "Enter key sequence: "
	ConfirmLabel = "Enter sequence again to confirm: "
)

// Errors
var (
	ErrMismatch = errors.New("prompt: key sequences do not match")
	ErrNoInput  = errors.New("prompt: no input")
)

// Prompter reads secrets from in and writes labels to out. When in is a
// terminal, echo is disabled while the secret is typed.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	fd     int
	isTerm bool
	reader *bufio.Reader
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: in, out: out}
	if f, ok := in.(*os.File); ok {
		p.fd = int(f.Fd())
		p.isTerm = term.IsTerminal(p.fd)
	}
	return p
}

// IsTerminal reports whether input comes from a terminal.
func (p *Prompter) IsTerminal() bool {
	return p.isTerm
}

// ReadSecret writes label and reads one line. The line terminator is not
// part of the secret.
func (p *Prompter) ReadSecret(label string) (*security.SecureBytes, error) {
	if _, err := io.WriteString(p.out, label); err != nil {
		return nil, fmt.Errorf("prompt: write label: %w", err)
	}

	var line []byte
	var err error
	if p.isTerm {
		line, err = term.ReadPassword(p.fd)
		// The user's Enter was swallowed along with the echo.
		io.WriteString(p.out, "\n")
	} else {
		line, err = p.readLine()
	}
	if err != nil {
		security.Wipe(line)
		return nil, err
	}

	return security.FromBytes(line)
}

// ReadConfirmed asks for the key sequence twice and returns it only if both
// entries match. Both buffers are destroyed on mismatch.
func (p *Prompter) ReadConfirmed() (*security.SecureBytes, error) {
	first, err := p.ReadSecret(EnterLabel)
	if err != nil {
		return nil, err
	}

	second, err := p.ReadSecret(ConfirmLabel)
	if err != nil {
		first.Destroy()
		return nil, err
	}
	defer second.Destroy()

	if !first.Equal(second) {
		first.Destroy()
		return nil, ErrMismatch
	}
	return first, nil
}

func (p *Prompter) readLine() ([]byte, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	line, err := p.reader.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return trimNewline(line), nil
		}
		security.Wipe(line)
		if errors.Is(err, io.EOF) {
			return nil, ErrNoInput
		}
		return nil, fmt.Errorf("prompt: read: %w", err)
	}
	return trimNewline(line), nil
}

func trimNewline(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// ReadSecret reads a single secret from in.
func ReadSecret(in io.Reader, out io.Writer, label string) (*security.SecureBytes, error) {
	return New(in, out).ReadSecret(label)
}

// ReadConfirmed reads the key sequence twice from in and compares them.
func ReadConfirmed(in io.Reader, out io.Writer) (*security.SecureBytes, error) {
	return New(in, out).ReadConfirmed()
}
