package discovery

import "sort"

// FromWordlist returns a copy of the configured wordlist.
func FromWordlist(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Candidates unions the sources, drops exact duplicates and sorts the result
// so identical inputs always produce the same probe order.
func Candidates(sources ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, src := range sources {
		for _, name := range src {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
