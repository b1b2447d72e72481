package commands

import (
	"context"
	"fmt"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd ends the session.
type ExitCmd struct{}

func (c *ExitCmd) Key() int         { return ExitKey }
func (c *ExitCmd) Name() string     { return "exit" }
func (c *ExitCmd) Synopsis() string { return "Exit application" }

func (c *ExitCmd) Run(ctx context.Context, env *Env) error {
	fmt.Fprintln(env.Out, "Good Bye!")
	return ErrExit
}
