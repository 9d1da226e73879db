package controller

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/pietro1412/fantacontratti/model"
)

// DisplayPlayer is one row of the composed list: the cached player record
// tagged with its origin, plus the live draft and its save status.
type DisplayPlayer struct {
	model.Player
	Origin    model.Origin
	Draft     model.Draft
	SaveError string
}

// Players composes the display list for the current view state. The
// whole composition runs under the lock: save goroutines replace records
// in the cached collections, so rows must be copied out before the lock
// is released. Merges swap Strategy pointers and never mutate a struct a
// composed row may still reference, so returned rows stay consistent.
func (c *controller) Players() []DisplayPlayer {
	c.mu.Lock()
	defer c.mu.Unlock()

	drafts := make(map[string]model.Draft, len(c.drafts))
	for id, e := range c.drafts {
		drafts[id] = e.draft
	}
	saveErrs := make(map[string]string, len(c.saveErrs))
	for id, msg := range c.saveErrs {
		saveErrs[id] = msg
	}

	return composeView(c.owned, c.unowned, c.memberID, c.view, drafts, saveErrs)
}

func composeView(owned, unowned []model.Player, memberID string, view model.ViewState, drafts map[string]model.Draft, saveErrs map[string]string) []DisplayPlayer {
	if view.Scope == model.ScopeOverview {
		return nil
	}

	list := includeScope(owned, unowned, memberID, view.Scope)
	list = dedupeByID(list)

	// Drafts go on before filtering: the tracked-only predicate reads the
	// live buffer, not just server-confirmed records.
	for i := range list {
		list[i].Draft = drafts[list[i].ID]
		list[i].SaveError = saveErrs[list[i].ID]
	}

	list = applyFilters(list, view)
	sortPlayers(list, view.Sort, view.Direction)
	return list
}

func includeScope(owned, unowned []model.Player, memberID string, scope model.Scope) []DisplayPlayer {
	list := make([]DisplayPlayer, 0, len(owned)+len(unowned))

	if scope == model.ScopeMine || scope == model.ScopeOthers || scope == model.ScopeAll {
		for _, p := range owned {
			mine := p.OwnedBy(memberID)
			if scope == model.ScopeMine && !mine {
				continue
			}
			if scope == model.ScopeOthers && mine {
				continue
			}
			origin := model.OriginOther
			if mine {
				origin = model.OriginMine
			}
			list = append(list, DisplayPlayer{Player: p, Origin: origin})
		}
	}

	if scope == model.ScopeFree || scope == model.ScopeAll {
		for _, p := range unowned {
			list = append(list, DisplayPlayer{Player: p, Origin: model.OriginUnowned})
		}
	}

	return list
}

// dedupeByID drops later occurrences of an id already in the list. The
// two collections are fetched independently, so a player mid-transfer
// can briefly show up in both; the owned row wins because it comes first.
func dedupeByID(list []DisplayPlayer) []DisplayPlayer {
	seen := make(map[string]bool, len(list))
	result := list[:0]
	for _, p := range list {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		result = append(result, p)
	}
	return result
}

// applyFilters runs the per-field predicates in a fixed order: position,
// team, owner, free-text search, tracked-only.
func applyFilters(list []DisplayPlayer, view model.ViewState) []DisplayPlayer {
	result := list[:0]
	query := strings.ToLower(strings.TrimSpace(view.Search))

	for _, p := range list {
		if view.Position != model.POS_UNKNOWN && p.Position != view.Position {
			continue
		}
		if view.Team != nil && p.Team != view.Team {
			continue
		}
		if view.OwnerID != "" {
			if p.Owner != nil && p.Owner.MemberID != view.OwnerID {
				continue
			}
			// An active owner filter combined with the all scope hides
			// unowned players instead of ignoring them.
			if p.Owner == nil && view.Scope == model.ScopeAll {
				continue
			}
		}
		if query != "" && !matchesSearch(&p, query) {
			continue
		}
		if view.OnlyTracked && !p.Draft.HasAnnotation() && p.Strategy.CategoryValue() == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}

// matchesSearch is a case-insensitive substring match against the name,
// the club, and for owned players the owner's username and team name.
// Any single field containing the query is a match.
func matchesSearch(p *DisplayPlayer, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if p.Team != nil {
		if strings.Contains(strings.ToLower(p.Team.String()), query) ||
			strings.Contains(strings.ToLower(p.Team.Friendly()), query) {
			return true
		}
	}
	if p.Owner != nil {
		if strings.Contains(strings.ToLower(p.Owner.Username), query) ||
			strings.Contains(strings.ToLower(p.Owner.TeamName), query) {
			return true
		}
	}
	return false
}

// turnOrderSentinel sorts owners without an assigned rubata turn after
// everyone who has one.
const turnOrderSentinel = math.MaxInt32

func sortPlayers(list []DisplayPlayer, mode model.SortMode, dir model.SortDirection) {
	flip := 1
	if dir == model.SortDesc {
		flip = -1
	}

	slices.SortFunc(list, func(a, b DisplayPlayer) int {
		// The direction flips only the mode's primary key; tie-break
		// levels keep a fixed order so the output is deterministic.
		switch mode {
		case model.SortManager:
			// Unowned players sort after owned ones regardless of
			// direction.
			if r := cmp.Compare(ownedRank(&a), ownedRank(&b)); r != 0 {
				return r
			}
			if r := flip * strings.Compare(managerKey(&a), managerKey(&b)); r != 0 {
				return r
			}
		case model.SortRubata:
			if r := cmp.Compare(turnRank(&a), turnRank(&b)); r != 0 {
				return r
			}
			if r := flip * cmp.Compare(turnOrder(&a), turnOrder(&b)); r != 0 {
				return r
			}
		default: // SortRole
			if r := flip * cmp.Compare(a.Position.Order(), b.Position.Order()); r != 0 {
				return r
			}
		}

		if mode != model.SortRole {
			if r := cmp.Compare(a.Position.Order(), b.Position.Order()); r != 0 {
				return r
			}
		}
		if r := strings.Compare(a.Name, b.Name); r != 0 {
			return r
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func ownedRank(p *DisplayPlayer) int {
	if p.Owner == nil {
		return 1
	}
	return 0
}

func managerKey(p *DisplayPlayer) string {
	if p.Owner == nil {
		return ""
	}
	return strings.ToLower(p.Owner.DisplayName())
}

func turnRank(p *DisplayPlayer) int {
	if turnOrder(p) == turnOrderSentinel {
		return 1
	}
	return 0
}

func turnOrder(p *DisplayPlayer) int {
	if p.Owner == nil || p.Owner.TurnOrder <= 0 {
		return turnOrderSentinel
	}
	return p.Owner.TurnOrder
}
