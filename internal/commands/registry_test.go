package commands

import (
	"testing"
)

func TestRegistry_FindByNameAndAlias(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&ToggleCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"toggle", "done", "undo", "TOGGLE", "Done"} {
		cmd, ok := r.Find(name)
		if !ok {
			t.Errorf("expected %q to resolve", name)
			continue
		}
		if cmd.Name() != "toggle" {
			t.Errorf("expected %q to resolve to toggle, got %s", name, cmd.Name())
		}
	}

	if _, ok := r.Find("finish"); ok {
		t.Error("expected unknown name not to resolve")
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&RmCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Register(&RmCmd{})
	if err == nil {
		t.Fatal("expected error for duplicate command")
	}
	if err.Error() != "command name already registered: rm" {
		t.Errorf("unexpected error %q", err.Error())
	}
	if n := len(r.All()); n != 1 {
		t.Errorf("expected 1 command, got %d", n)
	}
}

func TestRegistry_AllSortedOnce(t *testing.T) {
	r := NewRegistry()
	for _, c := range []Command{&StatsCmd{}, &AddCmd{}, &ListCmd{}} {
		if err := r.Register(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var names []string
	for _, c := range r.All() {
		names = append(names, c.Name())
	}
	expected := []string{"add", "list", "stats"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, names)
			break
		}
	}
}

func TestDefaultRegistry_HasEveryCommand(t *testing.T) {
	for _, name := range []string{
		"add", "create", "toggle", "rm", "delete", "clear", "clear-completed",
		"markall", "complete-all", "unmarkall", "activate-all",
		"list", "ls", "stats", "help", "version",
	} {
		if _, ok := DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q to be registered", name)
		}
	}
}
