// README: Station name resolution — exact then substring matching over the known-station set.
package stations

import (
	"sort"
	"strings"
)

// Resolver maps free-text station input to a canonical station name. The
// candidate list is kept lexicographically sorted so that "first substring
// match wins" is reproducible.
type Resolver struct {
	names []string
}

func NewResolver(names []string) *Resolver {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return &Resolver{names: sorted}
}

// Resolve returns the canonical name for input, or false when the input is
// blank or matches nothing. Resolving an already-canonical name returns it
// unchanged.
func (r *Resolver) Resolve(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	for _, name := range r.names {
		if strings.ToLower(name) == in {
			return name, true
		}
	}

	for _, name := range r.names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, in) || strings.Contains(in, lower) {
			return name, true
		}
	}

	return "", false
}
