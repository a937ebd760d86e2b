package shunt

import "strings"

// node is one level of the command-name token trie. Every registered
// canonical name and alias contributes a path from the root; nodes that end
// a name point at the descriptor.
type node struct {
	children map[string]*node
	terminal *Descriptor
}

func newNode() *node {
	return &node{children: map[string]*node{}}
}

func (r *Router) insert(name string, desc *Descriptor) {
	cur := r.root
	for _, tok := range strings.Fields(name) {
		next, ok := cur.children[tok]
		if !ok {
			next = newNode()
			cur.children[tok] = next
		}
		cur = next
	}
	cur.terminal = desc
}

// LookupExact resolves tokens to the descriptor whose canonical name or
// alias equals the longest matching prefix of the non-flag tokens, so
// "domain create x" resolves to "domain create" with "x" left over rather
// than failing. Flag-looking tokens are skipped during matching and are
// never consumed as name segments. rest holds every unconsumed token in
// original order, ready for flag extraction.
func (r *Router) LookupExact(tokens []string) (desc *Descriptor, rest []string, ok bool) {
	cur := r.root
	var matched []int
	var winner []int

	for i, t := range tokens {
		if strings.HasPrefix(t, "-") {
			continue
		}
		next, found := cur.children[strings.ToLower(t)]
		if !found {
			break
		}
		matched = append(matched, i)
		cur = next
		if cur.terminal != nil {
			desc = cur.terminal
			winner = append(winner[:0], matched...)
		}
	}

	if desc == nil {
		return nil, tokens, false
	}

	drop := make(map[int]bool, len(winner))
	for _, i := range winner {
		drop[i] = true
	}
	rest = make([]string, 0, len(tokens)-len(winner))
	for i, t := range tokens {
		if !drop[i] {
			rest = append(rest, t)
		}
	}
	return desc, rest, true
}
