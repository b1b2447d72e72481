// Package main is the entry point for the taskman console.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskman/internal/exitcode"

	// Import the command package to register the menu commands via init()
	_ "taskman/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go watchInterrupt(sigChan, cancel, os.Stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(exitcode.UserError)
	}
	os.Exit(sessionExit)
}
