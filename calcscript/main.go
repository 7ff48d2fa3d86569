// Command calcscript runs a Starlark script against a calculator session and
// prints the final record and result.
//
// Usage:
//
//	calcscript [-v] [-timeout d] file.star
//	calcscript [-v] -e 'operand(2); press("+"); operand(3); press("=")'
//
// A file name of "-" reads the script from standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fjl/giocalc/internal/calcscript"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "log evaluator transitions")
		inline  = flag.String("e", "", "run the given script text instead of a file")
		timeout = flag.Duration("timeout", 10*time.Second, "abort the script after this time")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	name, src, err := readScript(*inline, flag.Args())
	if err != nil {
		logger.Error("Can't read script", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	s, err := calcscript.Run(ctx, name, src, calcscript.WithLogHandler(handler))
	if err != nil {
		logger.Error("Script failed", "script", name, "error", err)
		os.Exit(1)
	}
	printSession(os.Stdout, s)
}

var (
	errInlineAndFile = errors.New("-e and script file are mutually exclusive")
	errScriptCount   = errors.New("need exactly one script file")
)

func readScript(inline string, args []string) (name string, src []byte, err error) {
	switch {
	case inline != "":
		if len(args) > 0 {
			return "", nil, errInlineAndFile
		}
		return "<inline>", []byte(inline), nil
	case len(args) != 1:
		return "", nil, fmt.Errorf("%w, got %d arguments", errScriptCount, len(args))
	case args[0] == "-":
		src, err = io.ReadAll(os.Stdin)
		return "<stdin>", src, err
	default:
		src, err = os.ReadFile(args[0])
		return args[0], src, err
	}
}

func printSession(w io.Writer, s *calcscript.Session) {
	for _, line := range s.Output() {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "record: %s\n", s.Record())
	if v, ok := s.Result(); ok {
		fmt.Fprintf(w, "result: %s\n", strconv.FormatFloat(v, 'g', -1, 64))
	} else {
		fmt.Fprintln(w, "result: none")
	}
}
