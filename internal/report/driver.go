// Package report probes a list of command names in order and prints one
// pass/fail line per name.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/CodexForgeBR/has/internal/exitcode"
	"github.com/CodexForgeBR/has/internal/probe"
	"github.com/CodexForgeBR/has/internal/style"
)

// Prober is the part of the probe engine the driver depends on.
type Prober interface {
	Probe(ctx context.Context, name string) probe.Result
}

// Driver writes the report for a run.
type Driver struct {
	Prober Prober
	Styles style.StyleSet
	Out    io.Writer
}

// Run probes names strictly one after another, in the order given, and
// returns the process exit status: the number of names not found, clamped
// to the valid exit-status range.
func (d *Driver) Run(ctx context.Context, names []string) int {
	failures := 0
	for _, name := range names {
		res := d.Prober.Probe(ctx, name)
		if !res.Found {
			failures++
		}
		fmt.Fprintln(d.Out, d.Line(res))
	}
	return exitcode.FromFailures(failures)
}

// Line formats a single report line for res.
func (d *Driver) Line(res probe.Result) string {
	switch {
	case !res.Found:
		return fmt.Sprintf("%s %s command not found", d.Styles.Fail, res.Name)
	case res.HasVersion():
		return fmt.Sprintf("%s %s %s", d.Styles.Pass, res.Name, res.Version)
	default:
		return fmt.Sprintf("%s %s", d.Styles.Pass, res.Name)
	}
}
