// Command binp is the BinP language driver: point it at a `.binp` source
// file and optional arguments to run it once, or invoke it with no source
// file for an interactive line-at-a-time session (spec.md §6).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/binplang/binp/internal/builtins"
	"github.com/binplang/binp/internal/config"
	"github.com/binplang/binp/internal/interpreter"
	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/program"
)

var (
	verbose bool
	log     = logrus.New()
)

func main() {
	os.Exit(run())
}

func run() int {
	exitCode := 0
	root := &cobra.Command{
		Use:                   "binp [source.binp] [args...]",
		Short:                 "Run or interactively evaluate a BinP program",
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		Args:                  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = dispatch(args)
			return nil
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log run details (run id, source file, line counts) to stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}
	return exitCode
}

func dispatch(args []string) int {
	runID := uuid.NewString()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	entry := log.WithField("run_id", runID)

	if len(args) == 0 {
		return repl(entry)
	}
	return runFile(entry, args[0], args[1:])
}

func runFile(entry *logrus.Entry, path string, progArgs []string) int {
	if !strings.HasSuffix(path, config.SourceFileExtension) {
		fmt.Fprintf(os.Stderr, "%s is not a %s file\n", path, config.SourceFileExtension)
		return 1
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	entry.WithField("file", path).Debug("loaded source file")

	rawLines, readErr := readLines(f)
	closeErr := f.Close()
	if combined := multierror.Append(nil, readErr, closeErr).ErrorOrNil(); combined != nil {
		fmt.Fprintln(os.Stderr, combined)
		return 1
	}

	prog := program.Load(rawLines)
	ns := namespace.New()
	builtins.Register(ns)
	builtins.RegisterArgs(ns, progArgs)

	interp := interpreter.New(os.Stdin, os.Stdout)
	entry.WithField("lines", len(prog)).Debug("starting run")
	if err := interp.Run(prog, ns); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}
	return 0
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// repl implements the interactive mode spec.md §6 and §7 describe: a
// prompt per line, nested prompts inside an open block, and per-line error
// recovery instead of terminating the session.
func repl(entry *logrus.Entry) int {
	rl, err := readline.New(config.InteractivePrompt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}
	defer rl.Close()

	ns := namespace.New()
	builtins.Register(ns)
	builtins.RegisterArgs(ns, nil)
	interp := interpreter.New(os.Stdin, os.Stdout)

	var stmt program.Program
	depth := 0

	for {
		prompt := config.InteractivePrompt
		if depth > 0 {
			prompt = config.InteractivePromptNested
		}
		rl.SetPrompt(prompt)

		raw, rerr := rl.Readline()
		if rerr == readline.ErrInterrupt {
			return 3
		}
		if rerr == io.EOF {
			return 0
		}
		if rerr != nil {
			fmt.Fprintln(os.Stderr, rerr)
			return 3
		}

		ln := program.LoadLine(raw)
		depth += blockDepthDelta(ln.Tokens)
		stmt = append(stmt, ln)

		if depth > 0 {
			continue
		}

		entry.WithField("lines", len(stmt)).Debug("evaluating buffered statement")
		if err := interp.Run(stmt, ns); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		stmt = stmt[:0]
	}
}

// blockDepthDelta reports how a line changes the REPL's open-block depth:
// +1 for a line that opens an if/while/function block, -1 for a bare or
// named `end`.
func blockDepthDelta(toks []string) int {
	if len(toks) == 0 {
		return 0
	}
	if len(toks) >= 1 && toks[0] == "end" {
		return -1
	}
	if len(toks) >= 4 && (toks[0] == "if" || toks[0] == "while") && toks[1] == "(" && toks[len(toks)-1] == "=>" {
		return 1
	}
	if len(toks) >= 2 && toks[0] == "var" && len(toks) >= 3 && toks[2] == "func" {
		return 1
	}
	return 0
}
