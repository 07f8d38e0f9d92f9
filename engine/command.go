package engine

import "strings"

// Command is a host action outside the per-tick input
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandPause:
		return "pause"
	case CommandReset:
		return "reset"
	default:
		return "none"
	}
}

// ParseCommand resolves a command name, CommandNone for unknown names
func ParseCommand(name string) Command {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quit":
		return CommandQuit
	case "pause":
		return CommandPause
	case "reset":
		return CommandReset
	default:
		return CommandNone
	}
}
