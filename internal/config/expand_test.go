package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde slash", "~/projects/app", filepath.Join(home, "projects/app")},
		{"bare tilde", "~", home},
		{"absolute untouched", "/etc/fleet.yaml", "/etc/fleet.yaml"},
		{"relative untouched", "configs/fleet.yaml", "configs/fleet.yaml"},
		{"empty", "", ""},
		{"tilde user unsupported", "~deploy/app", "~deploy/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTilde(tt.path))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("USER", "casey")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"user", "${USER}", "casey"},
		{"user embedded", "login-${USER}", "login-casey"},
		{"home", "${HOME}/inventory", home + "/inventory"},
		{"both", "${HOME}/${USER}", home + "/casey"},
		{"no variables", "deploy", "deploy"},
		{"empty", "", ""},
		{"tilde not expanded", "~/app", "~/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.in))
		})
	}
}
