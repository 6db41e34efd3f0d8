// Package cli classifies the has command line and wires it to the report
// driver through a cobra root command.
package cli

import "strings"

// Action is what a command line asks has to do.
type Action int

const (
	ActionProbe Action = iota
	ActionNoArgs
	ActionHelp
	ActionVersion
	ActionUnknownOption
)

func (a Action) String() string {
	switch a {
	case ActionProbe:
		return "probe"
	case ActionNoArgs:
		return "no-args"
	case ActionHelp:
		return "help"
	case ActionVersion:
		return "version"
	case ActionUnknownOption:
		return "unknown-option"
	default:
		return "unknown"
	}
}

// Invocation is a classified command line.
type Invocation struct {
	Action Action
	// Names are the command names to probe (ActionProbe only).
	Names []string
	// Option is the offending token (ActionUnknownOption only).
	Option string
}

// Classify inspects only the first argument. Anything after it is either
// ignored (for -v/-h) or taken verbatim as a command name, even when it
// starts with "-".
func Classify(args []string) Invocation {
	if len(args) == 0 {
		return Invocation{Action: ActionNoArgs}
	}

	first := args[0]
	if !strings.HasPrefix(first, "-") {
		return Invocation{Action: ActionProbe, Names: args}
	}

	switch first {
	case "-v", "--version":
		return Invocation{Action: ActionVersion}
	case "-h", "--help":
		return Invocation{Action: ActionHelp}
	default:
		return Invocation{Action: ActionUnknownOption, Option: first}
	}
}
