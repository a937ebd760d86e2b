package shunt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Outcome classifies how a dispatch run terminated.
type Outcome int

const (
	// OutcomeExecuted means a handler ran and returned nil.
	OutcomeExecuted Outcome = iota
	// OutcomeHandlerError means a handler ran and reported an error.
	OutcomeHandlerError
	// OutcomeHelpCommand means a single command's help screen was rendered.
	OutcomeHelpCommand
	// OutcomeHelpCategory means a category listing was rendered.
	OutcomeHelpCategory
	// OutcomeHelpIndex means the root listing was rendered.
	OutcomeHelpIndex
	// OutcomeVersion means the version message was printed.
	OutcomeVersion
	// OutcomeSuggested means no command resolved but near misses were offered.
	OutcomeSuggested
	// OutcomeNotFound means no command resolved and nothing was close.
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExecuted:
		return "executed"
	case OutcomeHandlerError:
		return "handler-error"
	case OutcomeHelpCommand:
		return "help-command"
	case OutcomeHelpCategory:
		return "help-category"
	case OutcomeHelpIndex:
		return "help-index"
	case OutcomeVersion:
		return "version"
	case OutcomeSuggested:
		return "suggested"
	case OutcomeNotFound:
		return "not-found"
	}
	return "unknown"
}

// Result is the terminal state of one dispatch run.
type Result struct {
	Outcome Outcome
	Err     error
}

// ExitCode maps the outcome to the process exit convention: 0 for success
// and every help path, 1 for handler errors, 2 for unresolved commands.
func (res Result) ExitCode() int {
	switch res.Outcome {
	case OutcomeHandlerError:
		return 1
	case OutcomeSuggested, OutcomeNotFound:
		return 2
	default:
		return 0
	}
}

// globalSet carries global flag results for one invocation. Results live
// here rather than on the Router, which stays read-only during dispatch.
type globalSet struct {
	present map[string]bool
	values  map[string]string
	version bool
}

// Dispatch routes a single invocation: ignored and global flags are stripped
// at intake, the version intercept and help keyword are handled, then the
// command is resolved, its flags extracted, and its handler run. Help output
// goes to stdout, handler errors to stderr. The Router is not mutated.
func (r *Router) Dispatch(args []string, stdout, stderr io.Writer) Result {
	tokens, globals := r.intake(args)

	if globals.version {
		fmt.Fprintln(stdout, r.version)
		return Result{Outcome: OutcomeVersion}
	}

	if len(tokens) == 0 {
		r.RenderIndex(stdout)
		return Result{Outcome: OutcomeHelpIndex}
	}

	if tokens[0] == "help" || tokens[0] == "-h" {
		return r.dispatchHelp(tokens[1:], stdout)
	}

	desc, rest, ok := r.LookupExact(tokens)
	if !ok {
		attempted := strings.Join(nonFlagTokens(tokens), " ")
		if suggestions := r.Suggest(tokens); len(suggestions) > 0 {
			r.log.Debug("no exact match for %q, suggesting %v", attempted, suggestions)
			r.RenderSuggestions(stdout, attempted, suggestions)
			return Result{Outcome: OutcomeSuggested}
		}
		r.log.Debug("no match for %q", attempted)
		r.RenderNotFound(stdout, attempted)
		return Result{Outcome: OutcomeNotFound}
	}

	posArgs, flags, values := Extract(rest, desc.ValueFlags)
	inv := NewInvocation(desc.Name, posArgs, flags, values)
	inv.globalPresent = globals.present
	inv.globalValues = globals.values

	r.log.Debug("executing %q args=%v flags=%v", desc.Name, inv.Args, flags)
	if err := desc.Command.Process(inv); err != nil {
		fmt.Fprint(stderr, formatRunError(err))
		return Result{Outcome: OutcomeHandlerError, Err: err}
	}
	return Result{Outcome: OutcomeExecuted}
}

// dispatchHelp resolves the tokens after the help keyword. Categories are
// checked before commands, so "help domain" lists the category even when a
// bare "domain" command exists.
func (r *Router) dispatchHelp(tokens []string, stdout io.Writer) Result {
	if len(tokens) == 0 {
		r.RenderIndex(stdout)
		return Result{Outcome: OutcomeHelpIndex}
	}

	path := normalizeName(strings.Join(nonFlagTokens(tokens), " "))
	if cat, ok := r.CategoryAt(path); ok {
		r.RenderCategoryHelp(stdout, cat)
		return Result{Outcome: OutcomeHelpCategory}
	}
	if desc, ok := r.Describe(path); ok {
		r.RenderCommandHelp(stdout, desc)
		return Result{Outcome: OutcomeHelpCommand}
	}

	if suggestions := r.Suggest(tokens); len(suggestions) > 0 {
		r.RenderSuggestions(stdout, path, suggestions)
		return Result{Outcome: OutcomeSuggested}
	}
	r.RenderNotFound(stdout, path)
	return Result{Outcome: OutcomeNotFound}
}

// Run dispatches against os.Stdout and os.Stderr, returning the exit code.
func (r *Router) Run(args []string) int {
	return r.Dispatch(args, os.Stdout, os.Stderr).ExitCode()
}

// Execute routes os.Args and exits the process with the resulting code.
// Call it from main once every command is registered.
func (r *Router) Execute() {
	os.Exit(r.Run(os.Args[1:]))
}

// intake filters raw tokens before routing: ignored flags vanish, global
// flags are collected into the returned set, and -v/--version trips the
// version intercept when a version message is registered. Value-bearing
// ignored and global flags consume the token after them. Everything else
// passes through untouched.
func (r *Router) intake(args []string) ([]string, *globalSet) {
	g := &globalSet{present: map[string]bool{}, values: map[string]string{}}
	var tokens []string

	for i := 0; i < len(args); i++ {
		t := args[i]

		if r.version != "" && (t == "-v" || t == "--version") {
			g.version = true
			continue
		}
		if takesValue, ok := r.ignored[t]; ok {
			if takesValue && i+1 < len(args) {
				i++
			}
			continue
		}
		if gf, ok := r.globalFor(t); ok {
			g.present[gf.Short] = true
			g.present[gf.Long] = true
			if gf.TakesValue {
				v := ""
				if i+1 < len(args) {
					v = args[i+1]
					i++
				}
				g.values[gf.Short] = v
				g.values[gf.Long] = v
			}
			continue
		}
		tokens = append(tokens, t)
	}

	return tokens, g
}

func (r *Router) globalFor(token string) (GlobalFlag, bool) {
	for _, gf := range r.globals {
		if token == gf.Short || token == gf.Long {
			return gf, true
		}
	}
	return GlobalFlag{}, false
}

func formatRunError(err error) string {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Error()
	}
	return fmt.Sprintf("✗ %v\n", err)
}
