package shunt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCommand records its invocations so dispatch tests can assert on what
// reached the handler.
type stubCommand struct {
	help *HelpScreen
	err  error
	runs int
	last *Invocation
}

func (c *stubCommand) Process(inv *Invocation) error {
	c.runs++
	c.last = inv
	return c.err
}

func (c *stubCommand) Help() *HelpScreen {
	if c.help != nil {
		return c.help
	}
	return NewHelpScreen("Stub", "stub", "A stub command.")
}

func TestDispatchExecutesHandler(t *testing.T) {
	r := NewRouter()
	cmd := &stubCommand{}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"greet", "world", "--loud"}, &out, &errOut)

	assert.Equal(t, OutcomeExecuted, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Equal(t, 0, res.ExitCode())
	assert.Equal(t, 1, cmd.runs)
	require.NotNil(t, cmd.last)
	assert.Equal(t, "greet", cmd.last.Command)
	assert.Equal(t, []string{"world"}, cmd.last.Args)
	assert.True(t, cmd.last.HasFlag("--loud"))
	assert.Empty(t, errOut.String())
}

func TestDispatchViaAlias(t *testing.T) {
	r := NewRouter()
	cmd := &stubCommand{}
	r.MustRegister("greet", []string{"g"}, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"g", "world"}, &out, &errOut)

	assert.Equal(t, OutcomeExecuted, res.Outcome)
	require.NotNil(t, cmd.last)
	assert.Equal(t, "greet", cmd.last.Command, "alias invocations carry the canonical name")
	assert.Equal(t, []string{"world"}, cmd.last.Args)
}

func TestDispatchHandlerError(t *testing.T) {
	r := NewRouter()
	cmd := &stubCommand{err: NewError(ErrHandler, "Something broke", "Try again")}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"greet"}, &out, &errOut)

	assert.Equal(t, OutcomeHandlerError, res.Outcome)
	assert.Error(t, res.Err)
	assert.Equal(t, 1, res.ExitCode())
	assert.Contains(t, errOut.String(), "✗ Something broke")
	assert.Contains(t, errOut.String(), "Try again")
	assert.Empty(t, out.String())
}

func TestDispatchHandlerErrorPlain(t *testing.T) {
	r := NewRouter()
	r.MustRegister("greet", nil, nil, &stubCommand{err: errors.New("boom")})

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"greet"}, &out, &errOut)

	assert.Equal(t, OutcomeHandlerError, res.Outcome)
	assert.Equal(t, "✗ boom\n", errOut.String())
}

func TestDispatchVersionFlag(t *testing.T) {
	r := NewRouter()
	r.SetVersion("demo 0.1.0")
	cmd := &stubCommand{}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"-v"}, &out, &errOut)

	assert.Equal(t, OutcomeVersion, res.Outcome)
	assert.Equal(t, 0, res.ExitCode())
	assert.Equal(t, "demo 0.1.0\n", out.String())

	// The intercept wins at any position, even before a valid command
	out.Reset()
	res = r.Dispatch([]string{"greet", "--version"}, &out, &errOut)
	assert.Equal(t, OutcomeVersion, res.Outcome)
	assert.Equal(t, "demo 0.1.0\n", out.String())
	assert.Equal(t, 0, cmd.runs)
}

func TestDispatchVersionDisabledWithoutMessage(t *testing.T) {
	r := NewRouter()
	cmd := &stubCommand{}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"greet", "-v"}, &out, &errOut)

	assert.Equal(t, OutcomeExecuted, res.Outcome)
	require.NotNil(t, cmd.last)
	assert.True(t, cmd.last.HasFlag("-v"), "without a version message -v is an ordinary flag")
}

func TestDispatchEmptyArgsRendersIndex(t *testing.T) {
	r := NewRouter()
	r.MustRegister("greet", nil, nil, &stubCommand{})

	var out, errOut bytes.Buffer
	res := r.Dispatch(nil, &out, &errOut)

	assert.Equal(t, OutcomeHelpIndex, res.Outcome)
	assert.Equal(t, 0, res.ExitCode())
	assert.Contains(t, out.String(), "AVAILABLE COMMANDS")
}

func TestDispatchHelpKeyword(t *testing.T) {
	r := NewRouter()
	r.MustRegister("greet", []string{"g"}, nil, &stubCommand{})

	tests := []struct {
		name    string
		args    []string
		outcome Outcome
		wants   string
	}{
		{name: "bare help renders index", args: []string{"help"}, outcome: OutcomeHelpIndex, wants: "AVAILABLE COMMANDS"},
		{name: "dash h renders index", args: []string{"-h"}, outcome: OutcomeHelpIndex, wants: "AVAILABLE COMMANDS"},
		{name: "help with command", args: []string{"help", "greet"}, outcome: OutcomeHelpCommand, wants: "USAGE"},
		{name: "help with alias", args: []string{"help", "g"}, outcome: OutcomeHelpCommand, wants: "USAGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			res := r.Dispatch(tt.args, &out, &errOut)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Contains(t, out.String(), tt.wants)
		})
	}
}

func TestDispatchHelpPrefersCategory(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.AddCategory("greet", "Greetings", "Greeting commands"))
	r.MustRegister("greet", nil, nil, &stubCommand{})

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"help", "greet"}, &out, &errOut)

	assert.Equal(t, OutcomeHelpCategory, res.Outcome)
	assert.Contains(t, out.String(), "Greetings")
}

func TestDispatchHelpUnknownSuggests(t *testing.T) {
	r := NewRouter()
	r.MustRegister("greet", nil, nil, &stubCommand{})

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"help", "gret"}, &out, &errOut)

	assert.Equal(t, OutcomeSuggested, res.Outcome)
	assert.Contains(t, out.String(), "greet")
}

func TestDispatchSuggestsNearMiss(t *testing.T) {
	r := NewRouter()
	cmd := &stubCommand{}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"gret", "world"}, &out, &errOut)

	assert.Equal(t, OutcomeSuggested, res.Outcome)
	assert.Equal(t, 2, res.ExitCode())
	assert.Contains(t, out.String(), "Did you mean")
	assert.Contains(t, out.String(), "greet")
	assert.Equal(t, 0, cmd.runs, "suggestions are offered, never executed")
}

func TestDispatchNotFound(t *testing.T) {
	r := NewRouter()
	r.MustRegister("greet", nil, nil, &stubCommand{})

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"zzz"}, &out, &errOut)

	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.Equal(t, 2, res.ExitCode())
	assert.Contains(t, out.String(), "✗ Command 'zzz' not found")
	assert.Contains(t, out.String(), "AVAILABLE COMMANDS")
}

func TestDispatchGlobalFlags(t *testing.T) {
	r := NewRouter()
	r.Global("-V", "--verbose", false, "Enable verbose output")
	r.Global("-c", "--config", true, "Path to the inventory file")
	cmd := &stubCommand{}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"-c", "/tmp/fleet.yaml", "greet", "-V", "world"}, &out, &errOut)

	assert.Equal(t, OutcomeExecuted, res.Outcome)
	require.NotNil(t, cmd.last)
	assert.Equal(t, []string{"world"}, cmd.last.Args)

	// Both spellings report presence regardless of which one was typed
	assert.True(t, cmd.last.HasGlobal("-V"))
	assert.True(t, cmd.last.HasGlobal("--verbose"))

	v, ok := cmd.last.GlobalValue("--config")
	require.True(t, ok)
	assert.Equal(t, "/tmp/fleet.yaml", v)
	v, ok = cmd.last.GlobalValue("-c")
	require.True(t, ok)
	assert.Equal(t, "/tmp/fleet.yaml", v)
}

func TestDispatchIgnoredFlags(t *testing.T) {
	r := NewRouter()
	r.Ignore("--ci", false)
	r.Ignore("--log-file", true)
	cmd := &stubCommand{}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"--ci", "--log-file", "out.log", "greet", "world"}, &out, &errOut)

	assert.Equal(t, OutcomeExecuted, res.Outcome)
	require.NotNil(t, cmd.last)
	assert.Equal(t, []string{"world"}, cmd.last.Args)
	assert.Empty(t, cmd.last.Flags())
	assert.False(t, cmd.last.HasGlobal("--ci"))
}

func TestDispatchExtractsValueFlags(t *testing.T) {
	r := NewRouter()
	cmd := &stubCommand{}
	r.MustRegister("create", nil, []string{"--ip-address"}, cmd)

	var out, errOut bytes.Buffer
	res := r.Dispatch([]string{"create", "example.com", "--ip-address", "1.2.3.4", "--www"}, &out, &errOut)

	assert.Equal(t, OutcomeExecuted, res.Outcome)
	require.NotNil(t, cmd.last)
	assert.Equal(t, []string{"example.com"}, cmd.last.Args)
	v, ok := cmd.last.Value("--ip-address")
	require.True(t, ok)
	assert.Equal(t, "1.2.3.4", v)
	assert.True(t, cmd.last.HasFlag("--www"))
}

func TestDispatchDoesNotMutateRouter(t *testing.T) {
	r := NewRouter()
	cmd := &stubCommand{}
	r.MustRegister("greet", nil, nil, cmd)

	var out, errOut bytes.Buffer
	r.Dispatch([]string{"zzz"}, &out, &errOut)
	r.Dispatch([]string{"help", "greet"}, &out, &errOut)
	r.Dispatch([]string{"greet"}, &out, &errOut)

	assert.Equal(t, []string{"greet"}, r.Commands())

	res := r.Dispatch([]string{"greet"}, &out, &errOut)
	assert.Equal(t, OutcomeExecuted, res.Outcome)
	assert.Equal(t, 2, cmd.runs)
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeExecuted, "executed"},
		{OutcomeHandlerError, "handler-error"},
		{OutcomeHelpCommand, "help-command"},
		{OutcomeHelpCategory, "help-category"},
		{OutcomeHelpIndex, "help-index"},
		{OutcomeVersion, "version"},
		{OutcomeSuggested, "suggested"},
		{OutcomeNotFound, "not-found"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.String())
		})
	}
}

func TestResultExitCode(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    int
	}{
		{OutcomeExecuted, 0},
		{OutcomeHelpCommand, 0},
		{OutcomeHelpCategory, 0},
		{OutcomeHelpIndex, 0},
		{OutcomeVersion, 0},
		{OutcomeHandlerError, 1},
		{OutcomeSuggested, 2},
		{OutcomeNotFound, 2},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Result{Outcome: tt.outcome}.ExitCode())
		})
	}
}
