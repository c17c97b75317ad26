// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jview validates JSON text and displays it as a tree or as
// pretty-printed text.
//
// Usage:
//
//	jview [flags] [FILE]
//
// If FILE is omitted, input is read from stdin. By default the tree is
// printed with only the root expanded; use --expand to open additional nodes
// by path (for example root.items[2]), or --expand-all to open everything.
// With --interactive, the document is shown in a terminal viewer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jview/clipboard"
	"github.com/creachadair/jview/document"
	"github.com/creachadair/jview/format"
	"github.com/creachadair/jview/internal/config"
	"github.com/creachadair/jview/internal/tui"
	"github.com/creachadair/jview/validate"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI defines the command-line flags.
type CLI struct {
	File string `arg:"" optional:"" type:"path" help:"Input JSON file. If omitted, read from stdin."`

	Expand      []string `short:"x" sep:"none" placeholder:"PATH" help:"Expand the node at PATH (repeatable)."`
	ExpandAll   bool     `short:"a" help:"Expand every array and object."`
	Formatted   bool     `short:"f" help:"Print pretty-printed JSON instead of the tree."`
	Copy        bool     `short:"c" help:"Copy pretty-printed JSON to the clipboard."`
	Stats       bool     `short:"s" help:"Print line, byte, and item counts."`
	Lenient     bool     `short:"l" help:"Accept comments and trailing commas."`
	Interactive bool     `short:"i" help:"Show the document in an interactive viewer."`
	Debug       bool     `short:"d" help:"Enable debug logging."`
	Config      string   `type:"path" placeholder:"FILE" help:"Configuration file (default: user config directory)."`
	SaveConfig  bool     `help:"Write the effective settings to the configuration file and exit."`
}

// errInvalid reports that the input is not valid JSON. The diagnostic has
// already been printed.
var errInvalid = errors.New("invalid input")

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("jview"),
		kong.Description("Validate and display JSON as a collapsible tree."),
		kong.UsageOnError(),
	)

	log, err := newLogger(cli.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jview: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	e := &env{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clipboard: clipboard.System{},
		log:       log,
		runTUI:    tui.Run,
	}
	if err := e.run(&cli); errors.Is(err, errInvalid) {
		os.Exit(1)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "jview: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a production logger at debug level if debug is set, or
// otherwise a logger that discards everything.
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return log, nil
}

// env carries the collaborators of a run.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	clipboard      clipboard.Writer
	log            *zap.Logger
	runTUI         func(tui.Model) error
}

func (e *env) run(cli *CLI) error {
	cfgPath := cli.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	e.log.Debug("loaded config", zap.String("path", cfgPath))

	// Flags override the config file.
	cfg.Lenient = cfg.Lenient || cli.Lenient
	cfg.ExpandAll = cfg.ExpandAll || cli.ExpandAll
	if cli.Formatted {
		cfg.View = config.ViewFormatted
	}
	if cli.SaveConfig {
		if err := cfg.Save(cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(e.stderr, "Saved settings to %s\n", cfgPath)
		e.log.Debug("saved config", zap.String("path", cfgPath))
		return nil
	}

	text, err := e.readInput(cli.File)
	if err != nil {
		return err
	}
	doc := document.Load(text, validate.Validator{Lenient: cfg.Lenient})
	e.log.Debug("loaded document",
		zap.Int("bytes", len(text)),
		zap.Stringer("status", doc.Status()),
		zap.Bool("lenient", cfg.Lenient))

	if cli.Interactive {
		return e.runTUI(tui.New(doc, tui.Options{
			Config:    cfg,
			Clipboard: e.clipboard,
			Logger:    e.log,
		}))
	}

	switch doc.Status() {
	case document.Empty:
		fmt.Fprintln(e.stdout, "no data")
		return nil
	case document.Invalid:
		fmt.Fprintln(e.stderr, doc.Err())
		return errInvalid
	}

	if cfg.View == config.ViewFormatted {
		v, _ := doc.Value()
		if err := format.Format(e.stdout, v); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintln(e.stdout)
	} else {
		tv, _ := doc.View()
		if cfg.ExpandAll {
			tv.ExpandAll()
		}
		for _, p := range cli.Expand {
			if tv.Expand(p) == 0 {
				fmt.Fprintf(e.stderr, "jview: %s does not name an array or object\n", p)
				e.log.Warn("ignored expand path", zap.String("path", p))
			}
		}
		io.WriteString(e.stdout, tv.String())
	}

	if cli.Stats {
		st, _ := doc.Stats()
		fmt.Fprintln(e.stdout, st)
	}
	if cli.Copy {
		text, _ := doc.Formatted()
		if clipboard.Copy(e.clipboard, text) {
			fmt.Fprintln(e.stderr, "Copied formatted JSON to clipboard")
		} else {
			fmt.Fprintln(e.stderr, "jview: failed to copy to clipboard")
			e.log.Warn("clipboard write failed")
		}
	}
	return nil
}

// readInput returns the contents of path, or of stdin if path is empty.
// Input from an interactive terminal is treated as empty.
func (e *env) readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	if f, ok := e.stdin.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
