package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"passkey/internal/keycode"
	"passkey/internal/keyfile"
	"passkey/internal/layout"
)

func (c *cli) cmdLayouts(opts *options) error {
	for _, name := range layout.Names() {
		tbl, err := layout.Lookup(name)
		if err != nil {
			return err
		}
		marker := ""
		if name == layout.Default {
			marker = " (default)"
		}
		fmt.Fprintf(c.stdout, "%s%s: %s, %d characters\n", name, marker, tbl.Description(), tbl.Len())
		fmt.Fprintf(c.stdout, "  %s\n", strconv.Quote(string(tbl.Characters())))
	}
	return nil
}

func (c *cli) cmdDump(opts *options, path string) error {
	layoutName := layout.Default
	if opts.set["layout"] {
		layoutName = opts.layout
	}
	tbl, err := layout.Lookup(layoutName)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open keyfile: %w", err)
	}
	defer f.Close()

	chords, err := keyfile.ReadAll(f)
	if err != nil {
		return err
	}

	chars := reverseLayout(tbl)
	for i, ch := range chords {
		char := "?"
		if rs, ok := chars[string(ch.Pressed)]; ok {
			char = quoteRunes(rs)
		}
		fmt.Fprintf(c.stdout, "%4d  %-10s %s", i+1, char, chordNames(ch.Pressed))
		if string(ch.Released) != string(ch.Pressed) {
			fmt.Fprintf(c.stdout, "  (release %s)", chordNames(ch.Released))
		}
		fmt.Fprintln(c.stdout)
	}
	fmt.Fprintf(c.stdout, "%d chords, %d events\n", len(chords), countEvents(chords))
	return nil
}

// reverseLayout maps encoded press codes back to the characters that produce
// them. Several characters may share one chord.
func reverseLayout(tbl *layout.Table) map[string][]rune {
	m := make(map[string][]rune)
	for _, r := range tbl.Characters() {
		keys, err := tbl.Resolve(r)
		if err != nil {
			continue
		}
		codes, err := keyfile.Codes(keys, keycode.HID)
		if err != nil {
			continue
		}
		m[string(codes)] = append(m[string(codes)], r)
	}
	return m
}

func chordNames(codes []byte) string {
	names := make([]string, len(codes))
	for i, code := range codes {
		if k, ok := keycode.HID.Name(code); ok {
			names[i] = string(k)
		} else {
			names[i] = fmt.Sprintf("0x%02x", code)
		}
	}
	return strings.Join(names, "+")
}

func quoteRunes(rs []rune) string {
	quoted := make([]string, len(rs))
	for i, r := range rs {
		quoted[i] = strconv.QuoteRune(r)
	}
	return strings.Join(quoted, "/")
}

func countEvents(chords []keyfile.Chord) int {
	n := 0
	for _, ch := range chords {
		n += len(ch.Pressed) + len(ch.Released) + 2
	}
	return n
}
