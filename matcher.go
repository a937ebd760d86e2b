package shunt

import "strings"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions needed
// to transform a into b. Classic two-row dynamic programming over runes,
// case-sensitive.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := 0; j <= len(br); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

// SuggestSimilar returns the candidates whose case-insensitive edit distance
// from input is strictly below maxDistance, preserving candidate order.
// Returns nil when nothing is close enough.
func SuggestSimilar(input string, candidates []string, maxDistance int) []string {
	var similar []string
	lower := strings.ToLower(input)
	for _, c := range candidates {
		if Levenshtein(lower, strings.ToLower(c)) < maxDistance {
			similar = append(similar, c)
		}
	}
	return similar
}

// suggestionThreshold is the largest edit distance at which a candidate is
// still considered a plausible correction for the given pair. Scales with
// the shorter string so short names don't produce false positives.
func suggestionThreshold(a, b string) int {
	n := len([]rune(a))
	if m := len([]rune(b)); m < n {
		n = m
	}
	t := n / 4
	if t < 1 {
		t = 1
	}
	return t
}

// Suggest returns the canonical names closest to the leading non-flag tokens
// of args, all tied at the minimum observed edit distance within threshold.
// Matching is case-insensitive, like exact lookup. Canonical names are scored
// first; aliases are consulted only when no canonical name qualifies, and
// matches map back to their canonical names. Suggestions are only ever
// offered to the user, never executed.
func (r *Router) Suggest(args []string) []string {
	words := nonFlagTokens(args)
	if len(words) == 0 {
		return nil
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	if names := closest(words, r.names, nil); len(names) > 0 {
		return names
	}
	return closest(words, r.aliasNames, r.aliasOf)
}

// closest scores every candidate against as many leading input words as the
// candidate itself has, keeping all candidates tied at the minimum distance
// within threshold. canonical maps candidates back to canonical names and is
// nil when the candidates already are canonical.
func closest(words, candidates []string, canonical map[string]string) []string {
	best := -1
	var matches []string
	seen := map[string]bool{}

	for _, cand := range candidates {
		n := len(strings.Fields(cand))
		if n > len(words) {
			n = len(words)
		}
		attempt := strings.Join(words[:n], " ")

		d := Levenshtein(cand, attempt)
		if d > suggestionThreshold(cand, attempt) {
			continue
		}

		name := cand
		if canonical != nil {
			name = canonical[cand]
		}
		if best == -1 || d < best {
			best = d
			matches = matches[:0]
			seen = map[string]bool{}
		}
		if d == best && !seen[name] {
			seen[name] = true
			matches = append(matches, name)
		}
	}

	return matches
}
