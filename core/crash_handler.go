package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores terminal state, satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashOut      io.Writer = os.Stderr
	exitFn                  = os.Exit
)

// RegisterTerminal sets the screen finalized before a crash report; nil clears it
func RegisterTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	out := crashOut
	crashMu.Unlock()

	// Terminal must leave raw mode before the report or the trace zig-zags
	if term != nil {
		term.Fini()
	}

	fmt.Fprintf(out, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", debug.Stack())

	exitFn(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
