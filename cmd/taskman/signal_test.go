package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestWatchInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		watchInterrupt(sigChan, cancel, &out)
		close(done)
	}()

	sigChan <- syscall.SIGINT

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watchInterrupt did not return after a signal")
	}

	if ctx.Err() == nil {
		t.Error("expected the session context to be cancelled")
	}
	if !strings.Contains(out.String(), "press Enter to leave") {
		t.Errorf("expected an interrupt notice, got %q", out.String())
	}
}
