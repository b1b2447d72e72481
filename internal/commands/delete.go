package commands

import (
	"context"
	"fmt"

	"taskman/internal/output"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Key() int         { return 4 }
func (c *DeleteCmd) Name() string     { return "delete" }
func (c *DeleteCmd) Synopsis() string { return "Delete Task" }

func (c *DeleteCmd) Run(ctx context.Context, env *Env) error {
	output.FormatTasks(env.Out, env.Svc.List())

	id, err := askTaskID(ctx, env.Prompt)
	if err != nil {
		return err
	}
	if id <= 0 {
		return nil
	}

	if !env.Svc.Delete(id) {
		env.Log.Info().Int("id", id).Msg("delete: no such task")
		fmt.Fprintln(env.Out, "Task not found!")
		return nil
	}

	fmt.Fprintln(env.Out, "Task deleted!")
	return nil
}
