package controller

import (
	"slices"
	"strings"

	"github.com/pietro1412/fantacontratti/model"
)

// CategoryGroup is one bucket of the overview: a watchlist category and
// the tracked players filed under it.
type CategoryGroup struct {
	Category string
	Players  []DisplayPlayer
}

// Overview groups categorized players for the summary view. It ignores
// the list filters entirely; the overview scope is not part of the
// sortable-list contract. Groups come back alphabetically, players
// within a group in role order.
func (c *controller) Overview() []CategoryGroup {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := includeScope(c.owned, c.unowned, c.memberID, model.ScopeAll)
	all = dedupeByID(all)

	buckets := make(map[string][]DisplayPlayer)
	for _, p := range all {
		category := p.Strategy.CategoryValue()
		if category == "" {
			continue
		}
		if e, ok := c.drafts[p.ID]; ok {
			p.Draft = e.draft
		}
		buckets[category] = append(buckets[category], p)
	}

	groups := make([]CategoryGroup, 0, len(buckets))
	for category, players := range buckets {
		sortPlayers(players, model.SortRole, model.SortAsc)
		groups = append(groups, CategoryGroup{Category: category, Players: players})
	}
	slices.SortFunc(groups, func(a, b CategoryGroup) int {
		return strings.Compare(a.Category, b.Category)
	})
	return groups
}
