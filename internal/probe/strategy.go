package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotApplicable marks a strategy that does not handle the given name.
	ErrNotApplicable = errors.New("strategy does not apply")
	// ErrEmptyOutput means the child exited cleanly but printed nothing usable.
	ErrEmptyOutput = errors.New("empty output")
	// ErrExitStatus means the child exited with a non-zero status.
	ErrExitStatus = errors.New("non-zero exit status")
	// ErrNotBuiltin means the shell did not describe the name as a builtin.
	ErrNotBuiltin = errors.New("not reported as a shell builtin")
)

// ShellBuiltinVersion is reported for names the shell implements itself.
const ShellBuiltinVersion = "shell builtin"

// AttemptError describes one version-probe attempt that produced no result.
type AttemptError struct {
	Argv []string
	Err  error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// evalArgs holds tools that report their version most reliably by
// evaluating an expression rather than through a flag. A zero exit ends the
// chain even when nothing was printed; the flags are only tried when the
// evaluation itself fails.
var evalArgs = map[string][]string{
	"node": {"-e", "console.log(process.version)"},
}

// versionFlags are tried one at a time, in this order, as the sole argument.
var versionFlags = [...]string{"--version", "-version", "-v", "version", "-V"}

// shellBuiltins lists bash builtins. A binary of the same name may also
// exist on PATH (echo, test, printf, kill), but the shell's copy is what
// scripts run.
var shellBuiltins = map[string]struct{}{
	"alias": {}, "bg": {}, "bind": {}, "break": {}, "builtin": {},
	"caller": {}, "cd": {}, "command": {}, "compgen": {}, "complete": {},
	"continue": {}, "declare": {}, "dirs": {}, "disown": {}, "echo": {},
	"enable": {}, "eval": {}, "exec": {}, "exit": {}, "export": {},
	"fc": {}, "fg": {}, "getopts": {}, "hash": {}, "help": {},
	"history": {}, "jobs": {}, "kill": {}, "let": {}, "local": {},
	"logout": {}, "mapfile": {}, "popd": {}, "printf": {}, "pushd": {},
	"pwd": {}, "read": {}, "readarray": {}, "readonly": {}, "return": {},
	"set": {}, "shift": {}, "shopt": {}, "source": {}, "suspend": {},
	"test": {}, "times": {}, "trap": {}, "type": {}, "typeset": {},
	"ulimit": {}, "umask": {}, "unalias": {}, "unset": {}, "wait": {},
}

// IsShellBuiltin reports whether name is in the fixed builtin set.
func IsShellBuiltin(name string) bool {
	_, ok := shellBuiltins[name]
	return ok
}

// attempt is one isolated way of extracting a version string. It returns
// the raw text on success; any error means "no result, try the next one".
type attempt struct {
	label string
	try   func(ctx context.Context) (string, error)
}

// attempts returns the ordered fallback chain for name.
func (p *Prober) attempts(name string) []attempt {
	chain := []attempt{
		{"eval", func(ctx context.Context) (string, error) { return p.evalVersion(ctx, name) }},
		{"builtin", func(ctx context.Context) (string, error) { return p.builtinVersion(ctx, name) }},
	}
	for _, flag := range versionFlags {
		chain = append(chain, attempt{flag, func(ctx context.Context) (string, error) {
			return p.flagVersion(ctx, name, flag)
		}})
	}
	return chain
}

func (p *Prober) evalVersion(ctx context.Context, name string) (string, error) {
	args, ok := evalArgs[name]
	if !ok {
		return "", ErrNotApplicable
	}
	stdout, err := p.run(ctx, name, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

func (p *Prober) builtinVersion(ctx context.Context, name string) (string, error) {
	if !IsShellBuiltin(name) {
		return "", ErrNotApplicable
	}
	args := []string{"-c", "type " + name}
	stdout, err := p.run(ctx, p.shell, args...)
	if err != nil {
		return "", err
	}
	if !strings.Contains(stdout, ShellBuiltinVersion) {
		return "", &AttemptError{Argv: argv(p.shell, args), Err: ErrNotBuiltin}
	}
	return ShellBuiltinVersion, nil
}

func (p *Prober) flagVersion(ctx context.Context, name, flag string) (string, error) {
	stdout, err := p.run(ctx, name, flag)
	if err != nil {
		return "", err
	}
	v := firstLine(stdout)
	if v == "" {
		return "", &AttemptError{Argv: argv(name, []string{flag}), Err: ErrEmptyOutput}
	}
	return v, nil
}

// run executes one attempt and returns stdout only for a zero exit status.
func (p *Prober) run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := p.runner.Run(ctx, p.timeout, name, args...)
	if err != nil {
		return "", &AttemptError{Argv: argv(name, args), Err: err}
	}
	if out.ExitCode != 0 {
		return "", &AttemptError{Argv: argv(name, args), Err: fmt.Errorf("%w %d", ErrExitStatus, out.ExitCode)}
	}
	return out.Stdout, nil
}

func argv(name string, args []string) []string {
	return append([]string{name}, args...)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
