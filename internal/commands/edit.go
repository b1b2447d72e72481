package commands

import (
	"context"
	"fmt"

	"taskman/internal/output"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
// Only the title and description can change; priority is fixed at creation.
type EditCmd struct{}

func (c *EditCmd) Key() int         { return 3 }
func (c *EditCmd) Name() string     { return "edit" }
func (c *EditCmd) Synopsis() string { return "Edit Task" }

func (c *EditCmd) Run(ctx context.Context, env *Env) error {
	output.FormatTasks(env.Out, env.Svc.List())

	id, err := askTaskID(ctx, env.Prompt)
	if err != nil {
		return err
	}
	if id <= 0 {
		return nil
	}

	title, description, err := askTaskFields(ctx, env.Prompt)
	if err != nil {
		return err
	}

	if !env.Svc.Edit(id, title, description) {
		env.Log.Info().Int("id", id).Msg("edit: no such task")
		fmt.Fprintln(env.Out, "Task not found!")
		return nil
	}

	fmt.Fprintln(env.Out, "Task is changed!")
	return nil
}
