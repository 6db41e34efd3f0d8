// Package probe decides whether a command is on the executable search path
// and, when it is, makes a best-effort attempt to read its version.
//
// Version extraction is an ordered fallback chain: an expression-evaluation
// special case (node), a shell-builtin special case, then a sweep over common
// version flags. Every attempt is bounded by a timeout and any failure is
// absorbed; a found command without a version is still a found command.
package probe

import (
	"context"
	"errors"
	"time"

	"github.com/CodexForgeBR/has/internal/config"
	"github.com/CodexForgeBR/has/internal/logging"
)

// Result is the outcome of probing one command name.
// Version is always empty when Found is false.
type Result struct {
	Name    string
	Found   bool
	Path    string
	Version string
}

// HasVersion reports whether a version string was extracted.
func (r Result) HasVersion() bool {
	return r.Found && r.Version != ""
}

// Prober runs the existence check and version strategies for command names.
// It holds no state between calls.
type Prober struct {
	runner   Runner
	timeout  time.Duration
	shell    string
	maxWidth int
}

// NewProber creates a Prober from cfg. A nil runner selects ExecRunner.
func NewProber(cfg *config.Config, runner Runner) *Prober {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Prober{
		runner:   runner,
		timeout:  cfg.Timeout,
		shell:    cfg.Shell,
		maxWidth: cfg.MaxVersionWidth,
	}
}

// Probe looks name up on the search path without executing it and, if it
// resolves, returns the first version string any strategy produces.
func (p *Prober) Probe(ctx context.Context, name string) Result {
	path, err := p.runner.LookPath(name)
	if err != nil {
		logging.Debugf("%s: lookup failed: %v", name, err)
		return Result{Name: name}
	}

	res := Result{Name: name, Found: true, Path: path}
	if raw, ok := p.rawVersion(ctx, name); ok {
		res.Version = Clean(name, raw, p.maxWidth)
	}
	return res
}

func (p *Prober) rawVersion(ctx context.Context, name string) (string, bool) {
	for _, a := range p.attempts(name) {
		v, err := a.try(ctx)
		if err == nil {
			logging.Debugf("%s: version from %s strategy", name, a.label)
			return v, true
		}
		if !errors.Is(err, ErrNotApplicable) {
			logging.Debugf("%s: %s strategy: %v", name, a.label, err)
		}
	}
	return "", false
}
