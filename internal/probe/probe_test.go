package probe

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/has/internal/config"
)

type fakeResponse struct {
	out Output
	err error
}

// fakeRunner resolves names from paths and answers Run calls keyed by the
// space-joined argv. Unknown argv exit 127.
type fakeRunner struct {
	paths     map[string]string
	responses map[string]fakeResponse
	calls     []string
	lookups   []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	f.lookups = append(f.lookups, name)
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", exec.ErrNotFound
}

func (f *fakeRunner) Run(_ context.Context, _ time.Duration, name string, args ...string) (Output, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	if r, ok := f.responses[key]; ok {
		return r.out, r.err
	}
	return Output{ExitCode: 127}, nil
}

func ok(stdout string) fakeResponse {
	return fakeResponse{out: Output{Stdout: stdout}}
}

func newTestProber(r Runner) *Prober {
	return NewProber(config.NewDefaultConfig(), r)
}

func TestProbe_NotFound(t *testing.T) {
	r := &fakeRunner{}
	res := newTestProber(r).Probe(context.Background(), "biggus-fakus")

	assert.False(t, res.Found)
	assert.Empty(t, res.Version)
	assert.False(t, res.HasVersion())
	assert.Equal(t, "biggus-fakus", res.Name)
	assert.Empty(t, r.calls, "a missing command must never be executed")
}

func TestProbe_FoundWithoutVersion(t *testing.T) {
	r := &fakeRunner{paths: map[string]string{"mute": "/usr/bin/mute"}}
	res := newTestProber(r).Probe(context.Background(), "mute")

	assert.True(t, res.Found)
	assert.Equal(t, "/usr/bin/mute", res.Path)
	assert.Empty(t, res.Version)
	assert.False(t, res.HasVersion())
	assert.Equal(t, []string{
		"mute --version",
		"mute -version",
		"mute -v",
		"mute version",
		"mute -V",
	}, r.calls)
}

func TestProbe_FlagSweepOrderAndFirstSuccessWins(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"tool": "/bin/tool"},
		responses: map[string]fakeResponse{
			"tool --version": {out: Output{Stdout: "usage: tool", ExitCode: 2}},
			"tool -version":  ok("   \n"),
			"tool -v":        ok("tool 1.2.3\nbuilt with love\n"),
			"tool version":   ok("should not be reached"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "tool")

	assert.True(t, res.Found)
	assert.Equal(t, "1.2.3", res.Version)
	assert.Equal(t, []string{"tool --version", "tool -version", "tool -v"}, r.calls)
}

func TestProbe_RunnerErrorsAreAbsorbed(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"hang": "/bin/hang"},
		responses: map[string]fakeResponse{
			"hang --version": {err: ErrTimeout},
			"hang -version":  {err: errors.New("exec format error")},
			"hang -V":        ok("hang version 0.9"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "hang")

	assert.True(t, res.Found)
	assert.Equal(t, "version 0.9", res.Version)
}

func TestProbe_NodeEvaluatesVersion(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"node": "/usr/bin/node"},
		responses: map[string]fakeResponse{
			"node -e console.log(process.version)": ok("v20.11.1\n"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "node")

	assert.Equal(t, "v20.11.1", res.Version)
	assert.Equal(t, []string{"node -e console.log(process.version)"}, r.calls)
}

func TestProbe_NodeFallsBackToFlags(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"node": "/usr/bin/node"},
		responses: map[string]fakeResponse{
			"node -e console.log(process.version)": {out: Output{ExitCode: 9}},
			"node --version":                       ok("v18.0.0\n"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "node")

	assert.Equal(t, "v18.0.0", res.Version)
	assert.Equal(t, []string{"node -e console.log(process.version)", "node --version"}, r.calls)
}

func TestProbe_ShellBuiltin(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"echo": "/bin/echo"},
		responses: map[string]fakeResponse{
			"bash -c type echo": ok("echo is a shell builtin\n"),
			"echo --version":    ok("echo (GNU coreutils) 9.1"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "echo")

	assert.Equal(t, "shell builtin", res.Version)
	assert.Equal(t, []string{"bash -c type echo"}, r.calls, "flag probing must be skipped for builtins")
}

func TestProbe_ShellBuiltinUsesConfiguredShell(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Shell = "zsh"
	r := &fakeRunner{
		paths: map[string]string{"pwd": "/bin/pwd"},
		responses: map[string]fakeResponse{
			"zsh -c type pwd": ok("pwd is a shell builtin\n"),
		},
	}
	res := NewProber(cfg, r).Probe(context.Background(), "pwd")

	assert.Equal(t, "shell builtin", res.Version)
}

func TestProbe_BuiltinNotConfirmedFallsBackToFlags(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"test": "/usr/bin/test"},
		responses: map[string]fakeResponse{
			"bash -c type test": ok("test is /usr/bin/test\n"),
			"test --version":    ok("test (GNU coreutils) 9.1\n"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "test")

	assert.Equal(t, "9.1", res.Version)
	assert.Equal(t, []string{"bash -c type test", "test --version"}, r.calls)
}

func TestProbe_MissingShellFallsBackToFlags(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"kill": "/bin/kill"},
		responses: map[string]fakeResponse{
			"bash -c type kill": {err: exec.ErrNotFound},
			"kill -V":           ok("kill from procps-ng 4.0.2"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "kill")

	assert.Equal(t, "from procps-ng 4.0.2", res.Version)
}

func TestProbe_TruncatesLongVersion(t *testing.T) {
	long := "tool " + strings.Repeat("x", 80)
	r := &fakeRunner{
		paths:     map[string]string{"tool": "/bin/tool"},
		responses: map[string]fakeResponse{"tool --version": ok(long)},
	}
	res := newTestProber(r).Probe(context.Background(), "tool")

	assert.Len(t, res.Version, 50)
	assert.Equal(t, strings.Repeat("x", 47)+"...", res.Version)
}

func TestProbe_VersionThatCleansToEmpty(t *testing.T) {
	r := &fakeRunner{
		paths:     map[string]string{"tool": "/bin/tool"},
		responses: map[string]fakeResponse{"tool --version": ok("tool\n")},
	}
	res := newTestProber(r).Probe(context.Background(), "tool")

	assert.True(t, res.Found)
	assert.False(t, res.HasVersion())
	assert.Equal(t, []string{"tool --version"}, r.calls, "first successful strategy ends the chain")
}

func TestResult_HasVersionRequiresFound(t *testing.T) {
	assert.False(t, Result{Version: "1.0"}.HasVersion())
	assert.True(t, Result{Found: true, Version: "1.0"}.HasVersion())
}

func TestIsShellBuiltin(t *testing.T) {
	for _, name := range []string{"cd", "echo", "export", "read", "set", "type", "wait", "ulimit"} {
		assert.True(t, IsShellBuiltin(name), name)
	}
	for _, name := range []string{"git", "ls", "Cd", "ECHO", "bash", ""} {
		assert.False(t, IsShellBuiltin(name), name)
	}
	assert.Len(t, shellBuiltins, 55)
}

func TestAttemptError(t *testing.T) {
	err := &AttemptError{Argv: []string{"git", "--version"}, Err: ErrTimeout}

	assert.Equal(t, "git --version: timed out", err.Error())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.0", "1.0"},
		{"  1.0  \n", "1.0"},
		{"\n\nfirst\nsecond\n", "first"},
		{"first\r\nsecond", "first"},
		{"  \n ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, firstLine(tt.in))
		})
	}
}

func TestNewProber_DefaultsToExecRunner(t *testing.T) {
	p := NewProber(config.NewDefaultConfig(), nil)
	require.NotNil(t, p)
	assert.IsType(t, ExecRunner{}, p.runner)
	assert.Equal(t, 2*time.Second, p.timeout)
}

func TestProbe_NodeEmptyOutputEndsChain(t *testing.T) {
	r := &fakeRunner{
		paths: map[string]string{"node": "/usr/bin/node"},
		responses: map[string]fakeResponse{
			"node -e console.log(process.version)": ok("  \n"),
			"node --version":                       ok("v18.0.0\n"),
		},
	}
	res := newTestProber(r).Probe(context.Background(), "node")

	assert.True(t, res.Found)
	assert.False(t, res.HasVersion())
	assert.Equal(t, []string{"node -e console.log(process.version)"}, r.calls)
}
