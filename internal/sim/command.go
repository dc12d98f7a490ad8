package sim

import (
	"fmt"
	"strings"
)

// Command is a user-issued control action.
type Command int

const (
	// CmdPlay starts automatic sweeps.
	CmdPlay Command = iota
	// CmdPause stops automatic sweeps.
	CmdPause
	// CmdStep runs one sweep while stopped.
	CmdStep
	// CmdClear kills every cell and resets the generation.
	CmdClear
	// CmdPlayPause is the single play/pause button.
	CmdPlayPause
)

var commandNames = map[Command]string{
	CmdPlay:      "play",
	CmdPause:     "pause",
	CmdStep:      "step",
	CmdClear:     "clear",
	CmdPlayPause: "playpause",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand maps a command name to its Command.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// Apply dispatches cmd. The boolean reports whether the command changed
// anything; commands that are invalid in the current state are no-ops.
func (s *Session) Apply(cmd Command) (bool, error) {
	switch cmd {
	case CmdPlay:
		return s.Play(), nil
	case CmdPause:
		return s.Pause(), nil
	case CmdStep:
		return s.Step(), nil
	case CmdClear:
		s.Clear()
		return true, nil
	case CmdPlayPause:
		s.Toggle()
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %v", cmd)
	}
}
