package shunt

import "strings"

// Extract separates raw tokens into positional arguments, boolean flags, and
// value-bearing flags. valueFlags is the set of flag names declared to consume
// the token that follows them; names match exactly, leading dashes included.
// Policies, fixed and tested:
//   - a repeated value flag keeps its last value;
//   - a value flag as the final token is recorded with an empty value, so
//     callers can tell "given without value" from "absent";
//   - boolean flags are deduplicated, first occurrence order preserved;
//   - a single-dash token that is not a declared value flag is split into
//     per-character short flags (-abc becomes -a -b -c), a double-dash token
//     stays whole;
//   - positional argument order is preserved.
//
// Pure function of its inputs.
func Extract(tokens, valueFlags []string) (args, flags []string, values map[string]string) {
	valued := make(map[string]bool, len(valueFlags))
	for _, f := range valueFlags {
		valued[f] = true
	}

	values = map[string]string{}
	seen := map[string]bool{}
	addFlag := func(f string) {
		if !seen[f] {
			seen[f] = true
			flags = append(flags, f)
		}
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case strings.HasPrefix(t, "-") && valued[t]:
			if i+1 < len(tokens) {
				values[t] = tokens[i+1]
				i++
			} else {
				values[t] = ""
			}
		case strings.HasPrefix(t, "--"):
			addFlag(t)
		case t == "-":
			addFlag(t)
		case strings.HasPrefix(t, "-"):
			for _, c := range t[1:] {
				addFlag("-" + string(c))
			}
		default:
			args = append(args, t)
		}
	}

	return args, flags, values
}

// nonFlagTokens returns the tokens that do not start with a dash, in order.
func nonFlagTokens(tokens []string) []string {
	var words []string
	for _, t := range tokens {
		if !strings.HasPrefix(t, "-") {
			words = append(words, t)
		}
	}
	return words
}
