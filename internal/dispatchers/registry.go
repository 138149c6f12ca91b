package dispatchers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/footprint-tools/repl/internal/docs"
)

// Registry is the ordered set of commands of one dispatch target, followed
// by the built-in session commands.
type Registry struct {
	commands []*Command
	byName   map[string]*Command
}

var (
	registryCache   = make(map[string]*Registry)
	registryCacheMu sync.Mutex
)

// RegistryFor returns the registry for target, building it on first use.
// Registries are cached per owner for the life of the process. The cached
// actions belong to the first instance seen; use Bind before dispatching on
// behalf of another instance.
func RegistryFor(target Target) (*Registry, error) {
	key := target.Owner().FullName()

	registryCacheMu.Lock()
	defer registryCacheMu.Unlock()

	if reg, ok := registryCache[key]; ok {
		return reg, nil
	}

	reg, err := Build(target)
	if err != nil {
		return nil, err
	}
	registryCache[key] = reg
	return reg, nil
}

// Build collects the commands of target and the built-ins without caching.
// A blank name, blank description, missing action or duplicate name is an
// error.
func Build(target Target) (*Registry, error) {
	reg := &Registry{byName: make(map[string]*Command)}

	for _, t := range []Target{target, sessionTarget{}} {
		owner := t.Owner()
		for _, spec := range t.Commands() {
			if err := reg.add(owner, spec); err != nil {
				return nil, fmt.Errorf("register %s: %w", owner.FullName(), err)
			}
		}
	}
	return reg, nil
}

// Bind returns a copy of r whose actions come from target, so every
// instance of one owner runs its own handlers over the shared command set.
func (r *Registry) Bind(target Target) (*Registry, error) {
	actions := make(map[string]CommandFunc, len(r.commands))
	for _, t := range []Target{target, sessionTarget{}} {
		for _, spec := range t.Commands() {
			actions[strings.TrimSpace(spec.Name)] = spec.Action
		}
	}

	bound := &Registry{
		commands: make([]*Command, 0, len(r.commands)),
		byName:   make(map[string]*Command, len(r.commands)),
	}
	for _, cmd := range r.commands {
		action := actions[cmd.Name]
		if action == nil {
			return nil, fmt.Errorf("bind %s: command %q has no action", target.Owner().FullName(), cmd.Name)
		}
		c := *cmd
		c.Action = action
		bound.commands = append(bound.commands, &c)
		bound.byName[c.Name] = &c
	}
	return bound, nil
}

func (r *Registry) add(owner docs.TypeRef, spec CommandSpec) error {
	name := strings.TrimSpace(spec.Name)
	switch {
	case name == "" || strings.ContainsAny(name, " \t\r\n"):
		return fmt.Errorf("invalid command name %q", spec.Name)
	case strings.TrimSpace(spec.Description) == "":
		return fmt.Errorf("command %q has no description", name)
	case spec.Action == nil:
		return fmt.Errorf("command %q has no action", name)
	}
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("duplicate command %q", name)
	}

	member := spec.Member
	if member == "" {
		member = name
	}

	cmd := &Command{
		Name:        name,
		Member:      member,
		Owner:       owner,
		Params:      spec.Params,
		Description: strings.TrimSpace(spec.Description),
		LongHelp:    spec.LongHelp,
		ParamHelp:   spec.ParamHelp,
		Action:      spec.Action,
	}
	r.commands = append(r.commands, cmd)
	r.byName[name] = cmd
	return nil
}

// Resolve finds a command by exact, case-sensitive name.
func (r *Registry) Resolve(name string) (*Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Enumerate returns all commands in declaration order.
func (r *Registry) Enumerate() []*Command {
	return append([]*Command(nil), r.commands...)
}

// Names returns all command names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		names[i] = cmd.Name
	}
	return names
}
