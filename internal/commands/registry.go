package commands

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps command names and aliases to commands.
// Lookups ignore case so shell input like "LIST" resolves.
type Registry struct {
	byName  map[string]Command
	primary []Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds c under its name and aliases.
// Fails without registering anything if any of them is taken.
func (r *Registry) Register(c Command) error {
	keys := append([]string{c.Name()}, c.Aliases()...)
	for i, k := range keys {
		k = strings.ToLower(k)
		if k == "" {
			return fmt.Errorf("command has an empty name or alias: %q", c.Name())
		}
		if _, taken := r.byName[k]; taken || slices.Contains(keys[:i], k) {
			return fmt.Errorf("command name already registered: %s", k)
		}
		keys[i] = k
	}

	for _, k := range keys {
		r.byName[k] = c
	}
	r.primary = append(r.primary, c)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// All returns each registered command once, sorted by name.
func (r *Registry) All() []Command {
	all := slices.Clone(r.primary)
	slices.SortFunc(all, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return all
}

// DefaultRegistry holds the commands registered by this package's init
// functions.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry and panics on a name clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
