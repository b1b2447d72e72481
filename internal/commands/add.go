package commands

import (
	"context"
	"fmt"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Key() int         { return 2 }
func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Synopsis() string { return "Add Task" }

func (c *AddCmd) Run(ctx context.Context, env *Env) error {
	title, description, err := askTaskFields(ctx, env.Prompt)
	if err != nil {
		return err
	}

	priority, err := askPriority(ctx, env.Prompt)
	if err != nil {
		return err
	}

	task := env.Svc.Add(title, description, priority)
	env.Log.Info().Int("id", task.ID).Stringer("priority", task.Priority).Msg("task created")

	fmt.Fprintln(env.Out, "Task is added!")
	return nil
}
