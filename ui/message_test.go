package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "created host %q", "web-1")

	out := StripANSI(buf.String())
	assert.Equal(t, "✓ created host \"web-1\"\n", out)
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, "connection failed")

	out := StripANSI(buf.String())
	assert.Equal(t, "✗ connection failed\n", out)
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "config missing, using defaults")

	out := StripANSI(buf.String())
	assert.Equal(t, "! config missing, using defaults\n", out)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	Info(&buf, "%d hosts loaded", 3)

	out := StripANSI(buf.String())
	assert.Equal(t, "○ 3 hosts loaded\n", out)
}

func TestSuccessList(t *testing.T) {
	var buf bytes.Buffer
	SuccessList(&buf, "Deployed 2 manifests", []string{"web-1.yaml", "db-1.yaml"})

	out := StripANSI(buf.String())
	want := "✓ Deployed 2 manifests\n" +
		"    web-1.yaml\n" +
		"    db-1.yaml\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestSuccessListNoDetails(t *testing.T) {
	var buf bytes.Buffer
	SuccessList(&buf, "Nothing to do", nil)

	out := StripANSI(buf.String())
	assert.Equal(t, "✓ Nothing to do\n\n", out)
}

func TestStatusLinesEndWithNewline(t *testing.T) {
	writers := []func(*bytes.Buffer){
		func(b *bytes.Buffer) { Success(b, "ok") },
		func(b *bytes.Buffer) { Error(b, "bad") },
		func(b *bytes.Buffer) { Warn(b, "careful") },
		func(b *bytes.Buffer) { Info(b, "fyi") },
	}

	for _, write := range writers {
		var buf bytes.Buffer
		write(&buf)
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	}
}
