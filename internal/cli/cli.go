// Package cli implements the foil command line tool for NACA 4-digit
// sections and airfoil coordinate files.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/airfoil/internal/config"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cli'
func tracer() tracing.Trace {
	return tracing.Select("cli")
}

// Exit codes of Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// env is the environment a command runs in.
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	synopsis string
	run      func(e *env, args []string) error
}

var commands = map[string]command{
	"make": {"make [-s scale | -chord c] [-n points] [-w] [-g] [-o dir] (MAXCAMB POSCAMB THICK POINTS | NNNN)",
		runMake},
	"scale": {"scale [-s factor | -chord c] [-f degree] [-w] [-g] [-o dir] FILE",
		runScale},
	"analyze": {"analyze [-f degree] FILE",
		runAnalyze},
	"regen": {"regen [-n points] [-w] [-g] [-o dir] FILE",
		runRegen},
	"batch": {"batch [-n points] [-s scale | -chord c] [-o dir] NNNN...",
		runBatch},
}

// Run executes the foil command line args (without the program name) and
// returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("foil", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file (default $AIRFOIL_CONFIG)")
	level := fs.String("trace", "", "trace level: Error, Info or Debug")
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() == 0 {
		usage(stderr, fs)
		return ExitUsage
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "foil: unknown command %q\n", fs.Arg(0))
		usage(stderr, fs)
		return ExitUsage
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "foil: %v\n", err)
		return ExitUsage
	}
	if *level != "" {
		cfg.TraceLevel = *level
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "foil: %v\n", err)
			return ExitUsage
		}
	}
	installTracing(stderr, cfg.TraceLevel)
	e := &env{cfg: cfg, stdout: stdout, stderr: stderr}
	if err := cmd.run(e, fs.Args()[1:]); err != nil {
		var uerr *usageError
		switch {
		case errors.Is(err, flag.ErrHelp):
			return ExitOK
		case errors.As(err, &uerr):
			fmt.Fprintf(stderr, "foil %s: %v\nusage: foil %s\n", fs.Arg(0), err, cmd.synopsis)
			return ExitUsage
		}
		fmt.Fprintf(stderr, "foil %s: %v\n", fs.Arg(0), err)
		return ExitError
	}
	return ExitOK
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: foil [-config file] [-trace level] <command> [flags] args")
	fs.PrintDefaults()
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].synopsis)
	}
}

// newFlags creates the flag set of a command. Parse errors are returned, not
// printed twice.
func (e *env) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// scaleFlags registers -s and -chord on fs.
type scaleFlags struct {
	factor *float64
	chord  *float64
}

func (e *env) scaleFlags(fs *flag.FlagSet) scaleFlags {
	return scaleFlags{
		factor: fs.Float64("s", e.cfg.Scale, "scale factor"),
		chord:  fs.Float64("chord", 0, "target chord length, overrides -s"),
	}
}

// resolve returns the scale operation selected on the command line: -chord
// before -s, and the configured scale if neither is given.
func (sf scaleFlags) resolve(e *env, fs *flag.FlagSet) (airfoil.Scale, error) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	switch {
	case set["chord"] && set["s"]:
		return airfoil.Unit, usagef("-s and -chord are mutually exclusive")
	case set["chord"]:
		return airfoil.Scale{Mode: airfoil.ToChord, Value: *sf.chord}, nil
	case set["s"]:
		return airfoil.Scale{Mode: airfoil.Direct, Value: *sf.factor}, nil
	}
	return e.cfg.ScaleSpec()
}
