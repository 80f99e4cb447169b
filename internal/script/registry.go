// Package script runs batches of gameplay commands against a scene.
//
// A script is a YAML list of steps. Each step names a command from a
// Registry; the built-in commands wrap the helpers in pkg/gameplay.
package script

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Faultbox/gameplay-utils/internal/config"
	"github.com/Faultbox/gameplay-utils/internal/entity"
)

var (
	// ErrUnknownCommand is returned for steps whose op is not registered.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a step lacks a required field.
	ErrMissingArgument = errors.New("missing argument")
)

// Env is what a command may read or change.
type Env struct {
	Scene  *entity.Manager
	Config *config.Config
}

// Handler executes one step.
type Handler func(ctx context.Context, env *Env, step Step) (Result, error)

// Command is a named handler.
type Command struct {
	Name string
	// Mutates marks commands that change the scene. They run alone, after
	// every earlier step has finished.
	Mutates bool
	Run     Handler
}

// Registry maps op names to commands. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd. Names must be unique.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" || cmd.Run == nil {
		return fmt.Errorf("command needs a name and a handler")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.commands[cmd.Name]; ok {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry returns a registry holding the built-in commands.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, cmd := range builtins() {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
	return r
}
