package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sftools/sferd/internal/cli"
	"github.com/sftools/sferd/pkg/sferd"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(sferd.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(sferd.ExitCodeForError(err))
	}
}
