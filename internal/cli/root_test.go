package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shunt-cli/shunt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatch routes args through a fresh router, capturing help and error output.
func dispatch(t *testing.T, args ...string) (shunt.Result, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	res := NewRouter().Dispatch(args, &out, &errOut)
	return res, out.String(), errOut.String()
}

func TestNewRouterRegistersEveryCommand(t *testing.T) {
	r := NewRouter()

	names := []string{
		"host add",
		"host list",
		"host remove",
		"domain create",
		"domain list",
		"domain dns add",
		"domain dns list",
		"deploy",
		"auth set",
		"version",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			desc, ok := r.Describe(name)
			require.True(t, ok, "command %q must be registered", name)
			assert.Equal(t, name, desc.Name)
			require.NotNil(t, desc.Command.Help(), "every command describes itself")
		})
	}
}

func TestNewRouterAliases(t *testing.T) {
	r := NewRouter()

	aliases := map[string]string{
		"ha":    "host add",
		"hl":    "host list",
		"hosts": "host list",
		"hr":    "host remove",
		"dc":    "domain create",
		"dl":    "domain list",
	}

	for alias, canonical := range aliases {
		t.Run(alias, func(t *testing.T) {
			desc, ok := r.Describe(alias)
			require.True(t, ok)
			assert.Equal(t, canonical, desc.Name)
		})
	}
}

func TestNewRouterCategories(t *testing.T) {
	r := NewRouter()

	assert.Equal(t, []string{"host", "domain", "domain dns", "auth"}, r.Categories())
}

func TestHelpIndex(t *testing.T) {
	res, out, _ := dispatch(t, "help")

	assert.Equal(t, shunt.OutcomeHelpIndex, res.Outcome)
	assert.Equal(t, 0, res.ExitCode())
	assert.Contains(t, out, "fleet - Available Commands")
	assert.Contains(t, out, "domain dns")
}

func TestHelpCategory(t *testing.T) {
	res, out, _ := dispatch(t, "help", "host")

	assert.Equal(t, shunt.OutcomeHelpCategory, res.Outcome)
	assert.Contains(t, out, "Host Management")
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "remove")
}

func TestHelpScreensRenderForEveryCommand(t *testing.T) {
	r := NewRouter()

	for _, name := range r.Commands() {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			args := append([]string{"help"}, strings.Fields(name)...)
			res := r.Dispatch(args, &out, &errOut)

			assert.Equal(t, shunt.OutcomeHelpCommand, res.Outcome)
			assert.Contains(t, out.String(), "USAGE")
			assert.Contains(t, out.String(), "-- END --")
		})
	}
}

func TestVersionIntercept(t *testing.T) {
	res, out, _ := dispatch(t, "-v")

	assert.Equal(t, shunt.OutcomeVersion, res.Outcome)
	assert.Equal(t, 0, res.ExitCode())
	assert.Contains(t, out, "fleet")
}

func TestUnknownCommandSuggests(t *testing.T) {
	res, out, _ := dispatch(t, "doman", "create", "example.com")

	assert.Equal(t, shunt.OutcomeSuggested, res.Outcome)
	assert.Equal(t, 2, res.ExitCode())
	assert.Contains(t, out, "Did you mean")
	assert.Contains(t, out, "domain create")
}

func TestUnknownCommandNotFound(t *testing.T) {
	res, out, _ := dispatch(t, "zzzzzz")

	assert.Equal(t, shunt.OutcomeNotFound, res.Outcome)
	assert.Equal(t, 2, res.ExitCode())
	assert.Contains(t, out, "not found")
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v2.0.0", "v2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo("dev", "none", "unknown")

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "1.2.3", GetVersion())

	_, out, _ := dispatch(t, "-v")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
}
