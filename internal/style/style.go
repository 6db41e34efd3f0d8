// Package style holds the decorations used in the has report.
//
// A StyleSet is computed once at startup from a single "is stdout an
// interactive terminal" signal and is read-only afterwards.
package style

import (
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	CheckMark = "✓"
	CrossMark = "✗"
)

// StyleSet maps the symbolic decorations of a report line to literal strings.
type StyleSet struct {
	Pass        string
	Fail        string
	Interactive bool
}

// New builds the StyleSet for the given terminal signal. Marks are bold
// green/red on an interactive terminal and plain otherwise.
func New(interactive bool) StyleSet {
	pass := color.New(color.Bold, color.FgGreen)
	fail := color.New(color.Bold, color.FgRed)
	if interactive {
		pass.EnableColor()
		fail.EnableColor()
	} else {
		pass.DisableColor()
		fail.DisableColor()
	}
	return StyleSet{
		Pass:        pass.Sprint(CheckMark),
		Fail:        fail.Sprint(CrossMark),
		Interactive: interactive,
	}
}

// Plain is the StyleSet for non-terminal output.
func Plain() StyleSet {
	return New(false)
}

// IsInteractive reports whether fd is a terminal, including Cygwin/MSYS
// pseudo terminals.
func IsInteractive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
