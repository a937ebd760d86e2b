package shunt

import (
	"sort"
	"strings"
)

// Category is a named grouping used only to organize help output. Categories
// carry no routing authority: removing every category changes nothing about
// which handler a given command resolves to.
type Category struct {
	// Name is the last path segment, e.g. "dns".
	Name string
	// Path is the full space-joined path, e.g. "domain dns".
	Path string
	// Title is the one-line display title.
	Title string
	// Description is the longer help text.
	Description string

	parent string
	subs   []string
}

// Listing holds a category's children for help output: immediate
// subcategories in registration order, and the commands registered under the
// category path sorted by canonical name. Sorting keeps listings stable when
// command registration order changes.
type Listing struct {
	Subcategories []*Category
	Commands      []*Descriptor
}

// CategoryAt returns the category registered at the given space-joined path.
func (r *Router) CategoryAt(path string) (*Category, bool) {
	c, ok := r.categories[strings.ToLower(path)]
	return c, ok
}

// Categories returns every registered category path in registration order.
func (r *Router) Categories() []string {
	return r.catOrder
}

// ChildrenOf returns the listing for the category at path. A category with
// no subcategories and no commands yields an empty listing, not an error.
func (r *Router) ChildrenOf(path string) (*Listing, bool) {
	cat, ok := r.CategoryAt(path)
	if !ok {
		return nil, false
	}

	listing := &Listing{}
	for _, sub := range cat.subs {
		listing.Subcategories = append(listing.Subcategories, r.categories[sub])
	}

	prefix := cat.Path + " "
	for _, name := range r.names {
		if strings.HasPrefix(name, prefix) {
			listing.Commands = append(listing.Commands, r.commands[name])
		}
	}
	sort.Slice(listing.Commands, func(i, j int) bool {
		return listing.Commands[i].Name < listing.Commands[j].Name
	})

	return listing, true
}
