// Package cli runs the interactive menu loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/output"
	"taskman/internal/prompt"
	"taskman/internal/service"
)

const (
	actionRetry   = "Please enter the number of action!"
	unknownAction = "Please enter the correct number of action!"
)

// Dispatcher reads menu choices and dispatches them to registered commands.
type Dispatcher struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
	log      zerolog.Logger
	banner   bool
}

// NewDispatcher creates a new dispatcher over the given registry and task service.
// The banner is off until enabled with ShowBanner.
func NewDispatcher(registry *commands.Registry, svc service.Service, cfg *config.Config, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
		log:      log.With().Str("component", "console").Logger(),
	}
}

// ShowBanner controls whether Run prints the welcome banner first.
func (d *Dispatcher) ShowBanner(show bool) {
	d.banner = show
}

// Run drives the session until the exit command, an input fault,
// or cancellation of ctx. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	p := prompt.New(in, out, d.log)
	env := &commands.Env{
		Cfg:    d.cfg,
		Svc:    d.svc,
		Prompt: p,
		Out:    out,
		Log:    d.log,
	}

	if d.banner {
		output.FormatBanner(out)
	}

	menu := output.Menu(d.menuEntries())
	for {
		if err := ctx.Err(); err != nil {
			d.log.Info().Err(err).Msg("session interrupted")
			return exitcode.Success
		}

		key, err := p.Int(ctx, menu, actionRetry)
		if err != nil {
			return d.end(out, err)
		}

		cmd, ok := d.registry.Find(key)
		if !ok {
			d.log.Debug().Int("key", key).Msg("no command for menu key")
			fmt.Fprintln(out, unknownAction)
			continue
		}

		d.log.Debug().Str("command", cmd.Name()).Msg("dispatch")
		err = cmd.Run(ctx, env)
		switch {
		case err == nil:
		case errors.Is(err, commands.ErrExit):
			return exitcode.Success
		default:
			return d.end(out, err)
		}
	}
}

// end finishes the session after a prompt failed.
// Cancellation ends it quietly; any other error is an input stream fault.
func (d *Dispatcher) end(out io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		d.log.Info().Msg("session interrupted")
		return exitcode.Success
	}
	d.log.Error().Err(err).Msg("input stream fault, ending session")
	fmt.Fprintf(out, "Unknown error: %v\n", err)
	return exitcode.Success
}

func (d *Dispatcher) menuEntries() []output.MenuEntry {
	cmds := d.registry.All()
	entries := make([]output.MenuEntry, len(cmds))
	for i, cmd := range cmds {
		entries[i] = output.MenuEntry{Key: cmd.Key(), Label: cmd.Synopsis()}
	}
	return entries
}
