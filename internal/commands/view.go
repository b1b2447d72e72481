package commands

import (
	"context"

	"taskman/internal/output"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the view command.
type ViewCmd struct{}

func (c *ViewCmd) Key() int         { return 1 }
func (c *ViewCmd) Name() string     { return "view" }
func (c *ViewCmd) Synopsis() string { return "View Tasks" }

func (c *ViewCmd) Run(ctx context.Context, env *Env) error {
	tasks := env.Svc.List()
	if len(tasks) == 0 {
		if !env.Cfg.Quiet {
			output.FormatEmpty(env.Out)
		}
		return nil
	}
	output.FormatTasks(env.Out, tasks)
	return nil
}
