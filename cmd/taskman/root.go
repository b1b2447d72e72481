package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"taskman/internal/backend/memory"
	"taskman/internal/cli"
	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/logger"
)

var (
	configPath string
	debug      bool
	quiet      bool

	// sessionExit is the exit code reported by the last session.
	sessionExit = exitcode.Success
)

var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "Manage a personal task list from the console",
	Long: `taskman keeps a prioritized task list for the length of one session.

Tasks are listed High first, then Medium, then Low. Nothing is saved:
the list is gone when you exit.

Menu actions:
  1  View tasks
  2  Add a task
  3  Edit a task's title or description
  4  Delete a task
  0  Exit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/taskman/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress the banner and hints")
}

func runSession(cmd *cobra.Command, args []string) error {
	errOut := cmd.ErrOrStderr()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return err
	}
	cfg.Debug = debug
	cfg.Quiet = quiet

	log, err := logger.New(errOut, logger.Options{
		Level:  cfg.EffectiveLogLevel(),
		Format: cfg.LogFormat,
	})
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return err
	}
	log.Debug().Str("config", cfg.Path).Msg("session starting")

	out := cmd.OutOrStdout()
	d := cli.NewDispatcher(commands.DefaultRegistry, memory.New(log), cfg, log)
	d.ShowBanner(cfg.ShowBanner() && isTerminal(out))

	sessionExit = d.Run(cmd.Context(), cmd.InOrStdin(), out)
	log.Debug().Int("code", sessionExit).Msg("session ended")
	return nil
}

// isTerminal reports whether w is a terminal. Only then is the banner printed.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
