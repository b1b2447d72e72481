// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"taskman/internal/config"
	"taskman/internal/prompt"
	"taskman/internal/service"
)

// ErrExit is returned by a command that ends the session.
var ErrExit = errors.New("exit requested")

// Env is what a command runs against.
type Env struct {
	// Cfg is always provided.
	Cfg *config.Config

	// Svc is the task store.
	Svc service.Service

	// Prompt reads answers from the user.
	Prompt *prompt.Prompter

	// Out receives all user-facing output.
	Out io.Writer

	Log zerolog.Logger
}

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the number the user types to select the command.
	Key() int

	// Name returns a short identifier used in logs.
	Name() string

	// Synopsis returns the menu label.
	Synopsis() string

	// Run executes the command.
	// Returns ErrExit to end the session, or a stream fault from the prompter.
	// Not-found outcomes are reported to the user, not returned.
	Run(ctx context.Context, env *Env) error
}
