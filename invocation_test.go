package shunt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvocationDefaults(t *testing.T) {
	inv := NewInvocation("deploy", nil, nil, nil)

	assert.Equal(t, "deploy", inv.Command)
	assert.Empty(t, inv.Args)
	assert.Empty(t, inv.Flags())
	_, ok := inv.Value("--out")
	assert.False(t, ok)
	assert.False(t, inv.HasGlobal("--verbose"))
}

func TestHasFlag(t *testing.T) {
	inv := NewInvocation("deploy", nil, []string{"--force"}, map[string]string{"--out": "dir"})

	assert.True(t, inv.HasFlag("--force"))
	assert.True(t, inv.HasFlag("--out"), "value flags count as present")
	assert.False(t, inv.HasFlag("--dry-run"))
}

func TestValueAndValueOr(t *testing.T) {
	inv := NewInvocation("deploy", nil, nil, map[string]string{"--out": "dir", "--tag": ""})

	v, ok := inv.Value("--out")
	require.True(t, ok)
	assert.Equal(t, "dir", v)

	// A flag given as the last token is present with an empty value
	v, ok = inv.Value("--tag")
	require.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = inv.Value("--missing")
	assert.False(t, ok)

	assert.Equal(t, "dir", inv.ValueOr("--out", "fallback"))
	assert.Equal(t, "fallback", inv.ValueOr("--tag", "fallback"), "empty value falls back")
	assert.Equal(t, "fallback", inv.ValueOr("--missing", "fallback"))
}

func TestGlobalsOnInvocation(t *testing.T) {
	inv := NewInvocation("deploy", nil, nil, nil)
	inv.globalPresent = map[string]bool{"-V": true, "--verbose": true}
	inv.globalValues = map[string]string{"-c": "fleet.yaml", "--config": "fleet.yaml"}

	assert.True(t, inv.HasGlobal("--verbose"))
	assert.True(t, inv.HasGlobal("-V"))
	assert.False(t, inv.HasGlobal("--no-color"))

	v, ok := inv.GlobalValue("--config")
	require.True(t, ok)
	assert.Equal(t, "fleet.yaml", v)
}

func TestRequireArgs(t *testing.T) {
	inv := NewInvocation("deploy", []string{"web-1"}, nil, nil)

	assert.NoError(t, inv.RequireArgs(1))

	err := inv.RequireArgs(2)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrMissingParams))
	assert.Contains(t, err.Error(), "expected at least 2, got 1")
	assert.Contains(t, err.Error(), "help deploy")
}

func TestRequireFlag(t *testing.T) {
	inv := NewInvocation("deploy", nil, []string{"--force"}, map[string]string{"--out": ""})

	assert.NoError(t, inv.RequireFlag("--force"))
	assert.NoError(t, inv.RequireFlag("--out"))

	err := inv.RequireFlag("--dry-run")
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrMissingFlag))
}

func TestRequireFlagValue(t *testing.T) {
	inv := NewInvocation("deploy", nil, nil, map[string]string{"--out": "dir", "--tag": ""})

	assert.NoError(t, inv.RequireFlagValue("--out"))

	err := inv.RequireFlagValue("--tag")
	require.Error(t, err, "a flag without a value counts as missing")
	assert.True(t, IsCode(err, ErrMissingFlag))

	err = inv.RequireFlagValue("--missing")
	require.Error(t, err)
}

func TestValidateArgs(t *testing.T) {
	inv := NewInvocation("host add", []string{"web-1", "2222"}, nil, nil)

	assert.NoError(t, inv.ValidateArgs(Any(), Int()))

	err := inv.ValidateArgs(Any(), Bool())
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrInvalidParam))
	assert.Contains(t, err.Error(), "position 1")

	err = inv.ValidateArgs(Any(), Int(), Int())
	require.Error(t, err, "more formats than arguments fails at the missing position")
	assert.Contains(t, err.Error(), "position 2")
}

func TestValidateFlag(t *testing.T) {
	inv := NewInvocation("host add", nil, nil, map[string]string{"--port": "2222"})

	assert.NoError(t, inv.ValidateFlag("--port", IntRange(1, 65536)))

	err := inv.ValidateFlag("--port", IntRange(1, 100))
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrInvalidParam))
	assert.Contains(t, err.Error(), "--port")

	err = inv.ValidateFlag("--missing", Any())
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrMissingFlag))
}

func TestFormats(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		value   string
		wantErr bool
	}{
		{name: "any accepts empty", format: Any(), value: ""},
		{name: "int accepts digits", format: Int(), value: "42"},
		{name: "int rejects text", format: Int(), value: "forty", wantErr: true},
		{name: "int rejects decimals", format: Int(), value: "4.2", wantErr: true},
		{name: "decimal accepts fraction", format: Decimal(), value: "4.2"},
		{name: "decimal rejects text", format: Decimal(), value: "x", wantErr: true},
		{name: "bool accepts true", format: Bool(), value: "true"},
		{name: "bool accepts yes", format: Bool(), value: "yes"},
		{name: "bool accepts one", format: Bool(), value: "1"},
		{name: "bool is case insensitive", format: Bool(), value: "TRUE"},
		{name: "bool rejects maybe", format: Bool(), value: "maybe", wantErr: true},
		{name: "email accepts address", format: Email(), value: "ops@example.com"},
		{name: "email rejects plain text", format: Email(), value: "nope", wantErr: true},
		{name: "url accepts absolute", format: URL(), value: "https://example.com/x"},
		{name: "url rejects relative text", format: URL(), value: "not a url", wantErr: true},
		{name: "string range lower bound", format: StringRange(1, 8), value: "a"},
		{name: "string range rejects empty", format: StringRange(1, 8), value: "", wantErr: true},
		{name: "string range upper bound is exclusive", format: StringRange(1, 8), value: "12345678", wantErr: true},
		{name: "string range counts runes", format: StringRange(1, 6), value: "héllo"},
		{name: "int range accepts port", format: IntRange(1, 65536), value: "2222"},
		{name: "int range rejects zero", format: IntRange(1, 65536), value: "0", wantErr: true},
		{name: "int range upper bound is exclusive", format: IntRange(1, 65536), value: "65536", wantErr: true},
		{name: "int range rejects text", format: IntRange(1, 65536), value: "abc", wantErr: true},
		{name: "decimal range accepts midpoint", format: DecimalRange(0, 1), value: "0.5"},
		{name: "decimal range upper bound is exclusive", format: DecimalRange(0, 1), value: "1", wantErr: true},
		{name: "one of accepts member", format: OneOf("a", "b"), value: "a"},
		{name: "one of rejects outsider", format: OneOf("a", "b"), value: "c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileAndDirFormats(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.NoError(t, File()(file))
	assert.Error(t, File()(dir), "directories are not files")
	assert.Error(t, File()(filepath.Join(dir, "missing.txt")))

	assert.NoError(t, Dir()(dir))
	assert.Error(t, Dir()(file), "files are not directories")
	assert.Error(t, Dir()(filepath.Join(dir, "missing")))
}
