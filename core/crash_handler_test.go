package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type fakeTerminal struct {
	mu     sync.Mutex
	closed int
}

func (f *fakeTerminal) Fini() {
	f.mu.Lock()
	f.closed++
	f.mu.Unlock()
}

// captureCrash swaps exit and output for the test duration
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	buf := &bytes.Buffer{}
	codes := make(chan int, 1)

	crashMu.Lock()
	prevOut, prevExit := crashOut, exitFn
	crashOut = buf
	exitFn = func(code int) { codes <- code }
	crashMu.Unlock()

	t.Cleanup(func() {
		crashMu.Lock()
		crashOut, exitFn = prevOut, prevExit
		crashTerminal = nil
		crashMu.Unlock()
	})
	return buf, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
	select {
	case c := <-codes:
		t.Errorf("Expected no exit, got code %d", c)
	default:
	}
}

func TestHandleCrashFinalizesTerminal(t *testing.T) {
	buf, codes := captureCrash(t)
	term := &fakeTerminal{}
	RegisterTerminal(term)

	HandleCrash("boom")

	if term.closed != 1 {
		t.Errorf("Expected terminal finalized once, got %d", term.closed)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected report to contain panic value, got %q", buf.String())
	}
	if c := <-codes; c != 1 {
		t.Errorf("Expected exit code 1, got %d", c)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	buf, codes := captureCrash(t)

	Go(func() { panic("worker failed") })

	if c := <-codes; c != 1 {
		t.Errorf("Expected exit code 1, got %d", c)
	}
	crashMu.Lock()
	out := buf.String()
	crashMu.Unlock()
	if !strings.Contains(out, "worker failed") {
		t.Errorf("Expected report to contain panic value, got %q", out)
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}
