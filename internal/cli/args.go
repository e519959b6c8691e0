package cli

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// CommandKind selects what the binary does.
type CommandKind string

const (
	CommandRun     CommandKind = "run"
	CommandHelp    CommandKind = "help"
	CommandVersion CommandKind = "version"
)

// Command is a parsed invocation.
type Command struct {
	Kind CommandKind
	Exec string // binary name as invoked (first argument)
	// Input is the word list path for CommandRun; empty means stdin.
	Input string
}

// ErrExecMissing is returned when even the binary name is absent from args.
var ErrExecMissing = errors.New("cli: could not retrieve executable name")

// UnexpectedArgumentsError reports arguments left over after a command was identified.
type UnexpectedArgumentsError struct {
	Command   string
	Arguments []string
}

func (e *UnexpectedArgumentsError) Error() string {
	return fmt.Sprintf("Did not expect arguments `%s` for command `%s`.", strings.Join(e.Arguments, ","), e.Command)
}

// ParseArgs interprets os.Args-style arguments (binary name first).
//
//	exec                 play, reading words from stdin
//	exec help|--help|-h  help
//	exec version|--version|-v
//	exec <path>          play, reading words from path
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrExecMissing
	}
	exec := args[0]
	if len(args) == 1 {
		return Command{Kind: CommandRun, Exec: exec}, nil
	}

	first, rest := args[1], args[2:]
	var cmd Command
	var name string
	switch first {
	case "help", "--help", "-h":
		cmd, name = Command{Kind: CommandHelp, Exec: exec}, "help"
	case "version", "--version", "-v":
		cmd, name = Command{Kind: CommandVersion, Exec: exec}, "version"
	default:
		cmd, name = Command{Kind: CommandRun, Exec: exec, Input: first}, "input-file"
	}
	if len(rest) > 0 {
		return Command{}, &UnexpectedArgumentsError{Command: name, Arguments: append([]string(nil), rest...)}
	}
	return cmd, nil
}
