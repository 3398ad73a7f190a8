// pwconvert turns a typed key sequence into a keyfile of HID keystroke events.
//
//	pwconvert [options]            Convert -i FILE, or prompt for the sequence
//	pwconvert [options] layouts    List keyboard layouts
//	pwconvert [options] dump FILE  Decode a keyfile
//	pwconvert [-config PATH] init  Write a default config file
//	pwconvert help                 Show usage
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"passkey/internal/config"
	"passkey/internal/logging"
)

// options holds flags given on the command line. Only flags that were set
// override the loaded configuration.
type options struct {
	configPath string
	layout     string
	input      string
	output     string
	normalize  bool
	verbose    bool
	set        map[string]bool
}

// cli carries the process streams so commands can run under test.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	c := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(c.run(os.Args[1:]))
}

func (c *cli) run(args []string) int {
	opts, fs, err := c.parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cmd := fs.Arg(0)
	var runErr error
	switch cmd {
	case "", "convert":
		runErr = c.cmdConvert(opts)
	case "layouts":
		runErr = c.cmdLayouts(opts)
	case "dump":
		if fs.NArg() < 2 {
			fmt.Fprintln(c.stderr, "Usage: pwconvert dump <keyfile>")
			return 1
		}
		runErr = c.cmdDump(opts, fs.Arg(1))
	case "init":
		runErr = c.cmdInit(opts)
	case "help":
		c.usage()
		return 0
	default:
		fmt.Fprintf(c.stderr, "Unknown command: %s\n", cmd)
		c.usage()
		return 1
	}

	if runErr != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

func (c *cli) parseFlags(args []string) (*options, *flag.FlagSet, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("pwconvert", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = c.usage

	fs.StringVar(&opts.configPath, "config", "", "path to config file")
	fs.StringVar(&opts.layout, "layout", "", "keyboard layout")
	fs.StringVar(&opts.input, "input", "", "file to convert")
	fs.StringVar(&opts.input, "i", "", "file to convert (shorthand)")
	fs.StringVar(&opts.output, "output", "", "keyfile to generate")
	fs.StringVar(&opts.output, "o", "", "keyfile to generate (shorthand)")
	fs.BoolVar(&opts.normalize, "nfc", false, "normalize input to NFC before conversion")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			opts.set["input"] = true
		case "o":
			opts.set["output"] = true
		default:
			opts.set[f.Name] = true
		}
	})
	return opts, fs, nil
}

func (c *cli) usage() {
	fmt.Fprintln(c.stderr, `pwconvert - Convert a character sequence to a keyfile

Usage: pwconvert [options] [command] [args]

Commands:
  (none)          Convert the input file, or prompt for the key sequence
  layouts         List keyboard layouts and their characters
  dump <keyfile>  Decode a keyfile into keystroke chords
  init            Write a default config file (-config or the user config dir)
  help            Show this help message

Options:
  -i, -input <file>    File to convert (prompted if empty)
  -o, -output <file>   Keyfile to generate (default: out.key)
  -layout <name>       Keyboard layout (default: de)
  -nfc                 Normalize input to Unicode NFC first
  -config <path>       Path to config file
  -v                   Verbose logging`)
}

// loadConfig loads the configuration file and applies command-line overrides.
func (c *cli) loadConfig(opts *options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.set["layout"] {
		cfg.Layout = opts.layout
	}
	if opts.set["input"] {
		cfg.Input = opts.input
	}
	if opts.set["output"] {
		cfg.Output = opts.output
	}
	if opts.set["nfc"] {
		cfg.Normalize = opts.normalize
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *cli) cmdInit(opts *options) error {
	path := opts.configPath
	if path == "" {
		path = config.ConfigPath()
	}

	_, created, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(c.stdout, "Created config at %s\n", path)
	} else {
		fmt.Fprintf(c.stdout, "Config already exists at %s\n", path)
	}
	return nil
}

// newLogger builds the run logger from the logging section of cfg.
func (c *cli) newLogger(cfg *config.Config) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = format
	lc.Output = cfg.Logging.Output
	lc.FilePath = cfg.Logging.FilePath
	switch cfg.Logging.Output {
	case "stderr":
		lc.Writer = c.stderr
	case "stdout":
		lc.Writer = c.stdout
	}

	return logging.New(lc)
}
