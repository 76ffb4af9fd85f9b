package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/jcorbin/goforth/forth"
	"github.com/jcorbin/goforth/internal/config"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/panicerr"
)

func main() {
	var (
		configPath  string
		stackCap    int
		dictCap     int
		trace       bool
		prompt      string
		historyFile string
	)
	flag.StringVar(&configPath, "config", "", "load settings from a TOML file")
	flag.IntVar(&stackCap, "stack", config.DefaultStackCapacity, "stack capacity")
	flag.IntVar(&dictCap, "dict", config.DefaultDictCapacity, "dictionary capacity")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&prompt, "prompt", config.DefaultPrompt, "interactive prompt")
	flag.StringVar(&historyFile, "history", "", "interactive history file")
	flag.Parse()

	log := logio.NewLogger(os.Stderr)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	// flags given explicitly override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "stack":
			cfg.Engine.StackCapacity = stackCap
		case "dict":
			cfg.Engine.DictCapacity = dictCap
		case "trace":
			cfg.Engine.Trace = trace
		case "prompt":
			cfg.REPL.Prompt = prompt
		case "history":
			cfg.REPL.HistoryFile = historyFile
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	var opts = []forth.Option{
		forth.WithOutput(os.Stdout),
	}
	if cfg.Engine.Trace {
		opts = append(opts,
			forth.WithLogf(log.Leveledf("TRACE")),
			forth.WithTee(&logio.Writer{Logf: log.Leveledf("OUT")}),
		)
	}
	vm, err := forth.New(cfg.Engine.StackCapacity, cfg.Engine.DictCapacity, opts...)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	sh := shell{
		vm:     vm,
		out:    os.Stdout,
		log:    log,
		prompt: cfg.REPL.Prompt,
		hist:   cfg.REPL.HistoryFile,
	}

	args := flag.Args()
	interactive := len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd()))
	err = panicerr.Recover("repl", func() error {
		if interactive {
			return sh.interactive()
		}
		in, err := openInputs(args)
		if err != nil {
			return err
		}
		defer in.Close()
		return sh.batch(in)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
	os.Exit(log.ExitCode())
}

// openInputs queues the named files, "-" meaning stdin, or just stdin when
// none are named.
func openInputs(names []string) (*fileinput.Input, error) {
	var in fileinput.Input
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		if name == "-" {
			// the wrapper hides Close, leaving stdin open
			in.Queue = append(in.Queue, fileinput.NamedReader("<stdin>", os.Stdin))
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.Queue = append(in.Queue, f)
	}
	return &in, nil
}
