package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"passkey/internal/config"
	"passkey/internal/convert"
	"passkey/internal/logging"
	"passkey/internal/prompt"
	"passkey/internal/security"
)

func (c *cli) cmdConvert(opts *options) error {
	cfg, err := c.loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := c.newLogger(cfg)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logger.Close()

	converter, err := convert.New(cfg.Layout)
	if err != nil {
		return err
	}
	converter.Normalize = cfg.Normalize

	src, cleanup, err := c.openSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// Installed after the prompt so Ctrl-C still interrupts typing.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithRunID(ctx, logging.NewRunID())
	log := logger.WithContext(ctx)

	log.Debug("converting", "layout", converter.Layout.Name(), "output", cfg.Output, "nfc", cfg.Normalize)

	out, err := security.NewSecureFileWriter(cfg.Output, security.PermSecretFile)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	stats, err := converter.Convert(ctx, src, out)
	if err != nil {
		out.Abort()
		log.Debug("conversion aborted", "output", cfg.Output)
		return err
	}
	if err := out.Commit(); err != nil {
		return fmt.Errorf("write keyfile: %w", err)
	}

	log.Info("keyfile written",
		"output", out.Path(),
		"layout", converter.Layout.Name(),
		"characters", stats.Characters,
		"events", stats.Events,
		"bytes", stats.Bytes,
	)
	return nil
}

// openSource returns the character source: the configured input file, or the
// sequence typed twice at the prompt. File input has its line endings
// translated to "\n".
func (c *cli) openSource(cfg *config.Config) (io.RuneReader, func(), error) {
	if cfg.Input != "" {
		path, err := security.DefaultPathValidator().ValidateInputFile(cfg.Input)
		if err != nil {
			return nil, nil, fmt.Errorf("input: %w", err)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		return &newlineReader{r: bufio.NewReader(f)}, func() { f.Close() }, nil
	}

	secret, err := prompt.ReadConfirmed(c.stdin, c.stderr)
	if err != nil {
		return nil, nil, err
	}
	return bytes.NewReader(secret.Bytes()), secret.Destroy, nil
}

// newlineReader turns "\r\n" and a lone "\r" into "\n".
type newlineReader struct {
	r *bufio.Reader
}

func (n *newlineReader) ReadRune() (rune, int, error) {
	r, size, err := n.r.ReadRune()
	if err != nil || r != '\r' {
		return r, size, err
	}
	next, _, err := n.r.ReadRune()
	switch {
	case err == nil && next != '\n':
		_ = n.r.UnreadRune()
	case err != nil && err != io.EOF:
		return 0, 0, err
	}
	return '\n', 1, nil
}
