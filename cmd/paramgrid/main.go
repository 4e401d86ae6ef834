package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/paramgrid/internal/cli"
)

// main is the entrypoint for the paramgrid command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	// Parameter collections can run arbitrary code while the tree is built;
	// anything that escapes is reported instead of crashing the process.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("paramgrid panicked: %v", r)
		}
	}()

	return cli.Execute(args, outW, os.Stderr)
}
