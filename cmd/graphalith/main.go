package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/graphalith"
)

const (
	prompt = "Enter an expression string: "
	oops   = "Oops!  That was no valid string.  Try again..."
)

func main() {
	var (
		cfgname string
		verbose bool
		cfg     = defaultConfig()
	)
	flag.StringVar(&cfgname, "config", "", "YAML configuration file")
	flag.BoolVar(&cfg.Left, "left", cfg.Left, "group operator chains to the left")
	flag.IntVar(&cfg.MaxDepth, "maxdepth", cfg.MaxDepth, "maximum expression depth (0 for no limit)")
	flag.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump expression trees")
	flag.StringVar(&cfg.History, "history", cfg.History, "history file (empty for none)")
	flag.BoolVar(&verbose, "v", false, "log debugging information")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log = log.Level(zerolog.InfoLevel)
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	if cfgname != "" {
		f, err := loadConfig(cfgname)
		if err != nil {
			log.Fatal().Err(err).Str("config", cfgname).Msg("reading config")
		}
		// Flags given explicitly override the file.
		flag.Visit(func(fl *flag.Flag) { f.set(fl.Name, cfg) })
		cfg = f
	}
	if cfg.MaxDepth < 0 {
		log.Fatal().Int("maxdepth", cfg.MaxDepth).Msg("max depth must not be negative")
	}

	r := repl{out: os.Stdout, log: log, cfg: cfg}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			r.line(arg)
		}
		return
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	hist := expandHome(cfg.History)
	if hist != "" {
		if err := loadHistory(ln, hist); err != nil {
			log.Warn().Err(err).Str("history", hist).Msg("reading history")
		}
		defer func() {
			if err := saveHistory(ln, hist); err != nil {
				log.Warn().Err(err).Str("history", hist).Msg("writing history")
			}
		}()
	}
	r.loop(ln, ln)
}

// prompter reads a line of input. *liner.State is a prompter.
type prompter interface {
	Prompt(p string) (string, error)
}

// historian records successfully read lines. *liner.State is a historian.
type historian interface {
	AppendHistory(item string)
}

type repl struct {
	out io.Writer
	log zerolog.Logger
	cfg *config
}

// loop reads and evaluates lines until the input ends or the user aborts.
func (r *repl) loop(in prompter, hist historian) {
	for {
		s, err := in.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(r.out)
			return
		default:
			r.log.Debug().Err(err).Msg("prompt failed")
			fmt.Fprintln(r.out, oops)
			continue
		}
		if hist != nil && s != "" {
			hist.AppendHistory(s)
		}
		r.line(s)
	}
}

// line evaluates one line and prints the result.
func (r *repl) line(s string) {
	e := graphalith.New(s, r.cfg.options()...)
	r.log.Debug().
		Str("text", e.Text()).
		Stringer("kind", e.Kind()).
		Bool("valid", e.Valid()).
		Msg("expression")
	if err := e.Err(); err != nil {
		r.log.Debug().Err(err).Str("text", e.Text()).Msg("invalid expression")
	}
	if r.cfg.Dump {
		if n := e.Tree(); n != nil {
			fmt.Fprint(r.out, spew.Sdump(n.BFS()))
			fmt.Fprintln(r.out, n)
		}
	}
	fmt.Fprintln(r.out, e)
}

// historyFile reads and writes saved lines. *liner.State is a historyFile.
type historyFile interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// loadHistory reads the history file if it exists.
func loadHistory(h historyFile, name string) error {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrap(err, "opening history")
	}
	defer f.Close()
	if _, err := h.ReadHistory(f); err != nil {
		return errors.Wrap(err, "reading history")
	}
	return nil
}

// saveHistory replaces the history file with the current history.
func saveHistory(h historyFile, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "creating history")
	}
	if _, err := h.WriteHistory(f); err != nil {
		f.Close()
		return errors.Wrap(err, "writing history")
	}
	return errors.Wrap(f.Close(), "closing history")
}

// expandHome replaces a leading ~ in a path with the user's home directory.
func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, p[2:])
}
