package shunt

import (
	"fmt"
	"strings"
)

// Command is the contract the router requires from command implementations:
// process the parsed invocation, and describe itself for help output.
type Command interface {
	Process(inv *Invocation) error
	Help() *HelpScreen
}

// Descriptor binds a registered command to its canonical name, declared
// aliases, and declared value flags. Created at registration time and never
// mutated afterwards.
type Descriptor struct {
	Name       string
	Aliases    []string
	ValueFlags []string
	Command    Command
}

// GlobalFlag is a flag recognized at any argument position and stripped from
// the tokens before per-command flag extraction.
type GlobalFlag struct {
	Short       string
	Long        string
	TakesValue  bool
	Description string
}

// Router is the registration table: commands with aliases and value flags,
// categories organizing help output, global flags, and ignored flags. Build
// one at startup, register everything, then dispatch against it. The table
// is read-only once dispatching begins, so no locking discipline is needed.
// Construct explicit instances rather than sharing a process-wide one; tests
// rely on isolated routers.
type Router struct {
	name    string
	version string

	commands   map[string]*Descriptor
	names      []string
	aliasOf    map[string]string
	aliasNames []string
	root       *node

	categories map[string]*Category
	catOrder   []string

	globals []GlobalFlag
	ignored map[string]bool

	log Logger
}

// NewRouter returns an empty routing table.
func NewRouter() *Router {
	return &Router{
		commands:   map[string]*Descriptor{},
		aliasOf:    map[string]string{},
		root:       newNode(),
		categories: map[string]*Category{},
		ignored:    map[string]bool{},
		log:        NoopLogger(),
	}
}

// SetName sets the program name shown in help output.
func (r *Router) SetName(name string) {
	r.name = name
}

// SetVersion sets the message printed when -v or --version appears anywhere
// in the arguments. Empty disables the intercept.
func (r *Router) SetVersion(message string) {
	r.version = message
}

// SetLogger replaces the router's logger. The default discards everything.
func (r *Router) SetLogger(l Logger) {
	if l != nil {
		r.log = l
	}
}

// Register adds a command under its canonical name. The name and every alias
// must be unique across all previously registered names and aliases; any
// collision fails with ErrDuplicateCommand and leaves the table unchanged.
// Names are normalized to lowercase with single spaces between tokens.
func (r *Router) Register(name string, aliases, valueFlags []string, cmd Command) error {
	canonical := normalizeName(name)

	entries := append([]string{canonical}, normalizeNames(aliases)...)
	seen := map[string]bool{}
	for _, entry := range entries {
		if r.taken(entry) || seen[entry] {
			return NewError(ErrDuplicateCommand,
				fmt.Sprintf("Command or alias '%s' is already registered", entry),
				"Choose a unique name for every command and alias")
		}
		seen[entry] = true
	}

	desc := &Descriptor{
		Name:       canonical,
		Aliases:    entries[1:],
		ValueFlags: valueFlags,
		Command:    cmd,
	}

	r.commands[canonical] = desc
	r.names = append(r.names, canonical)
	r.insert(canonical, desc)
	for _, alias := range desc.Aliases {
		r.aliasOf[alias] = canonical
		r.aliasNames = append(r.aliasNames, alias)
		r.insert(alias, desc)
	}

	r.log.Debug("registered command %q (aliases %v)", canonical, desc.Aliases)
	return nil
}

// MustRegister is Register that panics on error. Registration failures are
// programming mistakes caught at startup.
func (r *Router) MustRegister(name string, aliases, valueFlags []string, cmd Command) {
	if err := r.Register(name, aliases, valueFlags, cmd); err != nil {
		panic(err)
	}
}

// Describe returns the descriptor registered under the canonical name or
// alias.
func (r *Router) Describe(name string) (*Descriptor, bool) {
	key := normalizeName(name)
	if canonical, ok := r.aliasOf[key]; ok {
		key = canonical
	}
	d, ok := r.commands[key]
	return d, ok
}

// Commands returns every canonical name in registration order.
func (r *Router) Commands() []string {
	return r.names
}

// AddCategory registers a root category for organizing help output.
func (r *Router) AddCategory(name, title, description string) error {
	return r.addCategory("", name, title, description)
}

// AddSubcategory registers a category under an existing parent. Fails with
// ErrUnknownParent when the parent has not been registered yet, which also
// keeps the tree cycle-free.
func (r *Router) AddSubcategory(parent, name, title, description string) error {
	p := normalizeName(parent)
	if _, ok := r.categories[p]; !ok {
		return NewError(ErrUnknownParent,
			fmt.Sprintf("Unknown parent category '%s'", parent),
			"Register the parent category before its subcategories")
	}
	return r.addCategory(p, name, title, description)
}

func (r *Router) addCategory(parent, name, title, description string) error {
	n := normalizeName(name)
	path := n
	if parent != "" {
		path = parent + " " + n
	}
	if _, exists := r.categories[path]; exists {
		return NewError(ErrDuplicateCategory,
			fmt.Sprintf("Category '%s' is already registered", path), "")
	}

	segments := strings.Fields(path)
	cat := &Category{
		Name:        segments[len(segments)-1],
		Path:        path,
		Title:       title,
		Description: description,
		parent:      parent,
	}
	r.categories[path] = cat
	r.catOrder = append(r.catOrder, path)
	if parent != "" {
		r.categories[parent].subs = append(r.categories[parent].subs, path)
	}

	r.log.Debug("registered category %q", path)
	return nil
}

// Global registers a flag recognized at any argument position. Both
// spellings are stripped during intake; a value-bearing global consumes the
// token after it. Results are carried on the Invocation, never stored on the
// Router.
func (r *Router) Global(short, long string, takesValue bool, description string) {
	r.globals = append(r.globals, GlobalFlag{
		Short:       short,
		Long:        long,
		TakesValue:  takesValue,
		Description: description,
	})
}

// Globals returns the registered global flags in registration order.
func (r *Router) Globals() []GlobalFlag {
	return r.globals
}

// Ignore registers a flag stripped during intake without being recorded
// anywhere. takesValue also strips the token after it.
func (r *Router) Ignore(flag string, takesValue bool) {
	r.ignored[flag] = takesValue
}

// taken reports whether a name is already a canonical name or an alias.
func (r *Router) taken(name string) bool {
	if _, ok := r.commands[name]; ok {
		return true
	}
	_, ok := r.aliasOf[name]
	return ok
}

// normalizeName lowercases a command or category name and collapses
// whitespace to single spaces.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, normalizeName(n))
	}
	return out
}
