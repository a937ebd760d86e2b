package shunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupRouter() *Router {
	r := NewRouter()
	r.MustRegister("domain", nil, nil, &stubCommand{})
	r.MustRegister("domain create", nil, nil, &stubCommand{})
	r.MustRegister("host add", []string{"ha"}, nil, &stubCommand{})
	return r
}

func TestLookupExact(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantName string
		wantRest []string
	}{
		{
			name:     "longest registered prefix wins",
			tokens:   []string{"domain", "create", "example.com"},
			wantName: "domain create",
			wantRest: []string{"example.com"},
		},
		{
			name:     "shorter command when suffix is an argument",
			tokens:   []string{"domain", "example.com"},
			wantName: "domain",
			wantRest: []string{"example.com"},
		},
		{
			name:     "exact name with nothing left over",
			tokens:   []string{"domain", "create"},
			wantName: "domain create",
			wantRest: []string{},
		},
		{
			name:     "alias resolves to the command",
			tokens:   []string{"ha", "web-1"},
			wantName: "host add",
			wantRest: []string{"web-1"},
		},
		{
			name:     "matching is case-insensitive",
			tokens:   []string{"DOMAIN", "Create"},
			wantName: "domain create",
			wantRest: []string{},
		},
		{
			name:     "flag tokens are skipped and kept in rest",
			tokens:   []string{"domain", "--force", "create", "example.com"},
			wantName: "domain create",
			wantRest: []string{"--force", "example.com"},
		},
		{
			name:     "leading flag does not block matching",
			tokens:   []string{"--verbose", "domain"},
			wantName: "domain",
			wantRest: []string{"--verbose"},
		},
		{
			name:     "matching stops at the first unknown token",
			tokens:   []string{"domain", "example.com", "create"},
			wantName: "domain",
			wantRest: []string{"example.com", "create"},
		},
	}

	r := lookupRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, rest, ok := r.LookupExact(tt.tokens)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, desc.Name)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestLookupExactNoMatch(t *testing.T) {
	r := lookupRouter()

	desc, rest, ok := r.LookupExact([]string{"nothing", "here"})
	assert.False(t, ok)
	assert.Nil(t, desc)
	assert.Equal(t, []string{"nothing", "here"}, rest)
}

func TestLookupExactEmptyTokens(t *testing.T) {
	r := lookupRouter()

	_, _, ok := r.LookupExact(nil)
	assert.False(t, ok)
}
