package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

const interruptNotice = "\nInterrupted: press Enter to leave, or Ctrl-C again to quit now."

// watchInterrupt cancels the session on the first signal from sigChan.
// The console is usually blocked reading a line at that point, so a notice
// is written to w. Notification is then stopped, restoring the default
// handling: a second signal terminates the process.
func watchInterrupt(sigChan chan os.Signal, cancel context.CancelFunc, w io.Writer) {
	<-sigChan
	signal.Stop(sigChan)
	cancel()
	fmt.Fprintln(w, interruptNotice)
}
