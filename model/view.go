package model

import (
	"strings"
)

// Scope selects which player sub-collections a view includes.
type Scope string

const (
	ScopeMine     Scope = "mine"     // players owned by the configured member
	ScopeOthers   Scope = "others"   // players owned by any other member
	ScopeFree     Scope = "free"     // unowned players
	ScopeAll      Scope = "all"      // union of the three, origin tags preserved
	ScopeOverview Scope = "overview" // category summary, not a sortable list
)

func ParseScope(s string) Scope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mine":
		return ScopeMine
	case "others":
		return ScopeOthers
	case "free", "svincolati":
		return ScopeFree
	case "overview":
		return ScopeOverview
	default:
		return ScopeAll
	}
}

// Origin tags a display row with which sub-collection it came from.
type Origin string

const (
	OriginMine    Origin = "mine"
	OriginOther   Origin = "owned-by-other"
	OriginUnowned Origin = "unowned"
)

type SortMode string

const (
	// SortRole orders by position then name.
	SortRole SortMode = "role"
	// SortManager orders by owner display name, with unowned players
	// always after owned ones, then position, then name.
	SortManager SortMode = "manager"
	// SortRubata orders by the owner's auction turn order; owners without
	// one sort last. Then position, then name.
	SortRubata SortMode = "rubata"
)

func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manager":
		return SortManager
	case "rubata":
		return SortRubata
	default:
		return SortRole
	}
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewState is the full scope/filter/sort selection for the player list.
// It is transient; Reset puts it back to the defaults and is idempotent.
type ViewState struct {
	Scope       Scope
	Position    Position // POS_UNKNOWN passes everything through
	Search      string
	OwnerID     string      // member id, "" passes everything through
	Team        *SerieATeam // nil passes everything through
	OnlyTracked bool
	Sort        SortMode
	Direction   SortDirection
}

func DefaultViewState() ViewState {
	return ViewState{
		Scope:     ScopeAll,
		Position:  POS_UNKNOWN,
		Sort:      SortRole,
		Direction: SortAsc,
	}
}

func (v *ViewState) Reset() {
	*v = DefaultViewState()
}
