package discovery

import (
	"fmt"
	"net/url"
	"strings"
)

// FromURL returns the query keys of target in order of first appearance.
// Values are ignored, so repeated and blank-valued keys each yield one name.
// Pairs that url.ParseQuery would reject are skipped here as well, since the
// removal probe could never send them.
func FromURL(target string) ([]string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid target URL: %w", err)
	}

	var names []string
	seen := make(map[string]struct{})
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" || strings.Contains(pair, ";") {
			continue
		}
		key := pair
		if i := strings.Index(pair, "="); i >= 0 {
			key = pair[:i]
		}
		decoded, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		if _, ok := seen[decoded]; ok {
			continue
		}
		seen[decoded] = struct{}{}
		names = append(names, decoded)
	}
	return names, nil
}
