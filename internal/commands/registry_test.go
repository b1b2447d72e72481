package commands_test

import (
	"context"
	"testing"

	"taskman/internal/commands"
)

type stubCmd struct {
	key  int
	name string
}

func (c stubCmd) Key() int                                         { return c.key }
func (c stubCmd) Name() string                                     { return c.name }
func (c stubCmd) Synopsis() string                                 { return c.name }
func (c stubCmd) Run(ctx context.Context, env *commands.Env) error { return nil }

func TestRegistry_DuplicateKey(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(stubCmd{1, "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(stubCmd{1, "b"}); err == nil {
		t.Error("expected error for duplicate key")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(stubCmd{1, "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(stubCmd{2, "a"}); err == nil {
		t.Error("expected error for duplicate name")
	}
}

func TestRegistry_Find(t *testing.T) {
	r := commands.NewRegistry()
	_ = r.Register(stubCmd{3, "c"})

	cmd, ok := r.Find(3)
	if !ok || cmd.Name() != "c" {
		t.Errorf("expected to find c, got %v %v", cmd, ok)
	}
	if _, ok := r.Find(9); ok {
		t.Error("expected key 9 to be missing")
	}
}

func TestRegistry_AllPutsExitLast(t *testing.T) {
	r := commands.NewRegistry()
	for _, c := range []stubCmd{{0, "exit"}, {3, "c"}, {1, "a"}, {2, "b"}} {
		if err := r.Register(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var got []int
	for _, c := range r.All() {
		got = append(got, c.Key())
	}
	want := []int{1, 2, 3, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDefaultRegistry_MenuCommands(t *testing.T) {
	want := map[int]string{
		0: "Exit application",
		1: "View Tasks",
		2: "Add Task",
		3: "Edit Task",
		4: "Delete Task",
	}
	for key, label := range want {
		cmd, ok := commands.DefaultRegistry.Find(key)
		if !ok {
			t.Errorf("key %d not registered", key)
			continue
		}
		if cmd.Synopsis() != label {
			t.Errorf("key %d: expected %q, got %q", key, label, cmd.Synopsis())
		}
	}
	if n := len(commands.DefaultRegistry.All()); n != len(want) {
		t.Errorf("expected %d commands, got %d", len(want), n)
	}
}
