// Package config holds the compositor's persisted policy: the keybinding
// modifier, the two binding tables, and decoration/input tuning. Builtin
// defaults may be overlaid by an optional YAML file; the merged result is
// frozen into immutable tables before the event loop starts.
package config

import (
	"fmt"

	"github.com/tidewl/tidewl/internal/platform"
)

// Action is a compositor keybinding action. Actions are dispatched through
// a single apply function rather than stored function pointers.
type Action int

const (
	ActionNone Action = iota
	ActionCycle
	ActionCloseFocused
	ActionTerminate
)

// String returns the config-file name of the action.
func (a Action) String() string {
	switch a {
	case ActionCycle:
		return "cycle"
	case ActionCloseFocused:
		return "close"
	case ActionTerminate:
		return "terminate"
	default:
		return "none"
	}
}

// ParseAction resolves a config-file action name.
func ParseAction(name string) (Action, error) {
	switch name {
	case "cycle":
		return ActionCycle, nil
	case "close":
		return ActionCloseFocused, nil
	case "terminate":
		return ActionTerminate, nil
	default:
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
}

// Config is the YAML-facing configuration shape. Keys in Programs and
// Actions are keysym names ("Return", "q", "XF86AudioMute").
type Config struct {
	Modifier    string            `yaml:"modifier"`
	BorderWidth int               `yaml:"border_width"`
	RepeatRate  int32             `yaml:"repeat_rate"`
	RepeatDelay int32             `yaml:"repeat_delay"`
	Programs    map[string]string `yaml:"programs"`
	Actions     map[string]string `yaml:"actions"`
}

// Bindings is the frozen, runtime form of a Config. It is read-only once
// built; the dispatcher never observes a mutation.
type Bindings struct {
	Modifier    platform.Modifiers
	Programs    map[platform.Keysym]string
	Actions     map[platform.Keysym]Action
	BorderWidth int
	RepeatRate  int32
	RepeatDelay int32
}

// Freeze resolves every name in the config and builds the runtime tables.
// Unknown keysym, modifier, or action names are errors: a half-working
// binding table is worse than refusing to start.
func (c *Config) Freeze() (*Bindings, error) {
	mod, err := platform.LookupModifier(c.Modifier)
	if err != nil {
		return nil, fmt.Errorf("modifier: %w", err)
	}

	b := &Bindings{
		Modifier:    mod,
		Programs:    make(map[platform.Keysym]string, len(c.Programs)),
		Actions:     make(map[platform.Keysym]Action, len(c.Actions)),
		BorderWidth: c.BorderWidth,
		RepeatRate:  c.RepeatRate,
		RepeatDelay: c.RepeatDelay,
	}

	for name, command := range c.Programs {
		sym, err := platform.LookupKeysym(name)
		if err != nil {
			return nil, fmt.Errorf("programs: %w", err)
		}
		b.Programs[sym] = command
	}

	for name, actionName := range c.Actions {
		sym, err := platform.LookupKeysym(name)
		if err != nil {
			return nil, fmt.Errorf("actions: %w", err)
		}
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("actions[%s]: %w", name, err)
		}
		b.Actions[sym] = action
	}

	return b, nil
}
