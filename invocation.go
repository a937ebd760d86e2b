package shunt

import (
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Invocation is the parsed form of a single command invocation: the matched
// canonical command name, positional arguments in order, boolean flags
// present, value flags with their values, and global flag results. Handlers
// receive an Invocation and never see raw tokens.
type Invocation struct {
	// Command is the canonical name of the matched command.
	Command string
	// Args holds the positional arguments in the order they appeared.
	Args []string

	flags         []string
	values        map[string]string
	globalPresent map[string]bool
	globalValues  map[string]string
}

// NewInvocation builds an Invocation from pre-extracted parts. The dispatcher
// constructs these during routing; exported so handler tests can build inputs
// without going through a Router.
func NewInvocation(command string, args, flags []string, values map[string]string) *Invocation {
	if values == nil {
		values = map[string]string{}
	}
	return &Invocation{
		Command:       command,
		Args:          args,
		flags:         flags,
		values:        values,
		globalPresent: map[string]bool{},
		globalValues:  map[string]string{},
	}
}

// Flags returns the boolean flags present, deduplicated, in first-seen order.
func (inv *Invocation) Flags() []string {
	return inv.flags
}

// HasFlag reports whether the flag was provided, either as a boolean flag or
// as a value flag.
func (inv *Invocation) HasFlag(name string) bool {
	for _, f := range inv.flags {
		if f == name {
			return true
		}
	}
	_, ok := inv.values[name]
	return ok
}

// Value returns the value supplied for a value flag. A value flag given as
// the final token reports ok with an empty string.
func (inv *Invocation) Value(name string) (string, bool) {
	v, ok := inv.values[name]
	return v, ok
}

// ValueOr returns the value supplied for a value flag, or fallback when the
// flag is absent or was given without a value.
func (inv *Invocation) ValueOr(name, fallback string) string {
	if v, ok := inv.values[name]; ok && v != "" {
		return v
	}
	return fallback
}

// HasGlobal reports whether a global flag was present anywhere in the raw
// arguments. Either spelling of the flag matches.
func (inv *Invocation) HasGlobal(name string) bool {
	return inv.globalPresent[name]
}

// GlobalValue returns the value supplied for a value-bearing global flag.
// Either spelling of the flag matches.
func (inv *Invocation) GlobalValue(name string) (string, bool) {
	v, ok := inv.globalValues[name]
	return v, ok
}

// RequireArgs ensures at least n positional arguments were provided.
func (inv *Invocation) RequireArgs(n int) error {
	if len(inv.Args) >= n {
		return nil
	}
	return NewError(ErrMissingParams,
		fmt.Sprintf("Missing required parameters: expected at least %d, got %d", n, len(inv.Args)),
		fmt.Sprintf("Run 'help %s' for usage", inv.Command))
}

// RequireFlag ensures the named flag was provided, with or without a value.
func (inv *Invocation) RequireFlag(name string) error {
	if inv.HasFlag(name) {
		return nil
	}
	return NewError(ErrMissingFlag,
		fmt.Sprintf("Missing required flag %s", name),
		fmt.Sprintf("Run 'help %s' for usage", inv.Command))
}

// RequireFlagValue ensures the named value flag was provided with a
// non-empty value. A trailing flag recorded with an empty value counts as
// missing.
func (inv *Invocation) RequireFlagValue(name string) error {
	if v, ok := inv.values[name]; ok && v != "" {
		return nil
	}
	return NewError(ErrMissingFlag,
		fmt.Sprintf("Missing required flag %s (a value is required)", name),
		fmt.Sprintf("Run 'help %s' for usage", inv.Command))
}

// ValidateArgs checks positional arguments against one format per position.
// A position with no argument fails, as does the first argument that fails
// its format.
func (inv *Invocation) ValidateArgs(formats ...Format) error {
	for pos, format := range formats {
		if pos >= len(inv.Args) {
			return NewError(ErrInvalidParam,
				fmt.Sprintf("Invalid parameter at position %d: expected a parameter", pos), "")
		}
		if err := format(inv.Args[pos]); err != nil {
			return NewError(ErrInvalidParam,
				fmt.Sprintf("Invalid parameter at position %d: %s", pos, err), "")
		}
	}
	return nil
}

// ValidateFlag checks a value flag's value against a format. Fails when the
// flag is absent.
func (inv *Invocation) ValidateFlag(name string, format Format) error {
	v, ok := inv.values[name]
	if !ok {
		return NewError(ErrMissingFlag,
			fmt.Sprintf("Missing required flag %s", name),
			fmt.Sprintf("Run 'help %s' for usage", inv.Command))
	}
	if err := format(v); err != nil {
		return NewError(ErrInvalidParam,
			fmt.Sprintf("Invalid value for flag %s: %s", name, err), "")
	}
	return nil
}

// Format validates a single argument or flag value. Formats are applied by
// ValidateArgs and ValidateFlag; a nil return means the value is acceptable.
type Format func(value string) error

// Any accepts any value.
func Any() Format {
	return func(string) error { return nil }
}

// Int requires a base-10 integer.
func Int() Format {
	return func(v string) error {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("expected integer, got '%s'", v)
		}
		return nil
	}
}

// Decimal requires a decimal number.
func Decimal() Format {
	return func(v string) error {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("expected decimal number, got '%s'", v)
		}
		return nil
	}
}

// Bool requires a boolean literal: true/false, yes/no, or 1/0.
func Bool() Format {
	return func(v string) error {
		switch strings.ToLower(v) {
		case "true", "false", "1", "0", "yes", "no":
			return nil
		}
		return fmt.Errorf("expected boolean (true/false/yes/no/1/0), got '%s'", v)
	}
}

// Email requires a parseable email address.
func Email() Format {
	return func(v string) error {
		if _, err := mail.ParseAddress(v); err != nil {
			return fmt.Errorf("expected valid email, got '%s'", v)
		}
		return nil
	}
}

// URL requires an absolute URL.
func URL() Format {
	return func(v string) error {
		if _, err := url.ParseRequestURI(v); err != nil {
			return fmt.Errorf("expected valid URL, got '%s'", v)
		}
		return nil
	}
}

// StringRange requires the value's rune length to be in [lo, hi).
func StringRange(lo, hi int) Format {
	return func(v string) error {
		n := len([]rune(v))
		if n < lo || n >= hi {
			return fmt.Errorf("string length must be between %d and %d, got length %d", lo, hi, n)
		}
		return nil
	}
}

// IntRange requires an integer in [lo, hi).
func IntRange(lo, hi int64) Format {
	return func(v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("expected integer, got '%s'", v)
		}
		if n < lo || n >= hi {
			return fmt.Errorf("integer must be between %d and %d, got %d", lo, hi, n)
		}
		return nil
	}
}

// DecimalRange requires a decimal number in [lo, hi).
func DecimalRange(lo, hi float64) Format {
	return func(v string) error {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("expected decimal, got '%s'", v)
		}
		if n < lo || n >= hi {
			return fmt.Errorf("decimal must be between %v and %v, got %v", lo, hi, n)
		}
		return nil
	}
}

// OneOf requires the value to equal one of the options.
func OneOf(options ...string) Format {
	return func(v string) error {
		for _, o := range options {
			if v == o {
				return nil
			}
		}
		return fmt.Errorf("expected one of (%s), got '%s'", strings.Join(options, " / "), v)
	}
}

// File requires a path to an existing regular file.
func File() Format {
	return func(v string) error {
		info, err := os.Stat(v)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("file does not exist, '%s'", v)
		}
		return nil
	}
}

// Dir requires a path to an existing directory.
func Dir() Format {
	return func(v string) error {
		info, err := os.Stat(v)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("directory does not exist, '%s'", v)
		}
		return nil
	}
}
