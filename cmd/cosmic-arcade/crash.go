package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashHandler restores the terminal, prints the panic with its stack and exits
func crashHandler(screen tcell.Screen) func(r any) {
	return func(r any) {
		if r == nil {
			return
		}
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mCOSMIC-ARCADE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
