package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/options"
)

// Search returns the zones containing query, case-insensitively. Prefix
// matches sort ahead of substring matches. An empty query yields nothing
// unless cfg.ListOnEmpty is set.
func Search(zones []string, query string, limit int, cfg Config) []string {
	limit = cfg.clampLimit(limit)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if !cfg.ListOnEmpty {
			return nil
		}
		if len(zones) > limit {
			zones = zones[:limit]
		}
		return append([]string{}, zones...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lowerZone := strings.ToLower(zone)
		if !strings.Contains(lowerZone, q) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lowerZone, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// SearchOptions runs Search and renders the matches as option descriptors,
// marking selected ones the same way a select field would.
func SearchOptions(zones []string, query string, selected any, limit int, cfg Config) []model.OptionDescriptor {
	results := Search(zones, query, limit, cfg)
	if len(results) == 0 {
		return nil
	}
	return options.Collect(Source(results), selected)
}

type matchedZone struct {
	name     string
	isPrefix bool
}
