package model

import (
	"strconv"
	"strings"
)

// Strategy is the server-confirmed annotation a member keeps on a player:
// the bid ceiling, a 0-5 priority, a free-text note, and an optional
// watchlist category. A player with no record and a player whose record
// has every field cleared are treated the same everywhere.
type Strategy struct {
	ID       string
	MemberID string
	MaxBid   *int
	Priority *int // 1-5, nil or 0 means unset
	Notes    *string
	Tracked  bool
	Category *string
}

// PriorityValue returns the priority as a plain int with 0 meaning unset.
func (s *Strategy) PriorityValue() int {
	if s == nil || s.Priority == nil {
		return 0
	}
	return *s.Priority
}

func (s *Strategy) NotesValue() string {
	if s == nil || s.Notes == nil {
		return ""
	}
	return *s.Notes
}

func (s *Strategy) MaxBidValue() string {
	if s == nil || s.MaxBid == nil {
		return ""
	}
	return strconv.Itoa(*s.MaxBid)
}

func (s *Strategy) CategoryValue() string {
	if s == nil || s.Category == nil {
		return ""
	}
	return *s.Category
}

// Apply replaces the bid fields with the values from a confirmed update.
// Only the fields the update carries are touched; the category is not
// part of a bid update and is left alone.
func (s *Strategy) Apply(u StrategyUpdate) {
	s.MaxBid = u.MaxBid
	s.Priority = u.Priority
	s.Notes = u.Notes
	s.Tracked = u.Tracked
}

// StrategyUpdate is the patch sent to the strategy-write endpoint when a
// draft is flushed. It replaces maxBid, priority and notes wholesale;
// Tracked is derived, never set directly by the user.
type StrategyUpdate struct {
	MaxBid   *int
	Priority *int
	Notes    *string
	Tracked  bool
}

// DraftState is the per-player edit lifecycle. A draft moves
// clean -> dirty on an edit, dirty -> saving when a flush picks it up,
// saving -> clean on a confirmed save or saving -> dirty when the save
// fails or a new edit lands while the call is in flight.
type DraftState int

const (
	DraftClean DraftState = iota
	DraftDirty
	DraftSaving
)

func (s DraftState) String() string {
	switch s {
	case DraftClean:
		return "clean"
	case DraftDirty:
		return "dirty"
	case DraftSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// Draft is the locally buffered, possibly unsaved value of a player's
// strategy fields. MaxBid stays a raw string so in-progress or invalid
// typing is never lost; it is only coerced to a number when building the
// update to send.
type Draft struct {
	MaxBid   string
	Priority int // 0 means unset
	Notes    string
	State    DraftState
}

func (d Draft) IsDirty() bool {
	return d.State == DraftDirty
}

func (d Draft) IsSaving() bool {
	return d.State == DraftSaving
}

// HasAnnotation reports whether any bid field is set. The tracked-only
// view filter reads this from the live draft, so unsaved edits count
// immediately.
func (d Draft) HasAnnotation() bool {
	return strings.TrimSpace(d.MaxBid) != "" || d.Priority != 0 || strings.TrimSpace(d.Notes) != ""
}

// Update converts the draft into the patch sent to the server. An empty,
// unparsable, zero or negative maxBid becomes nil (no ceiling) rather
// than an error: a bid of zero credits is not a ceiling, so "0" counts
// as unset. A zero priority becomes nil, and notes are trimmed with
// empty going to nil. categorySet marks a player tracked even when every
// bid field is empty.
func (d Draft) Update(categorySet bool) StrategyUpdate {
	u := StrategyUpdate{}

	if bid, err := strconv.Atoi(strings.TrimSpace(d.MaxBid)); err == nil && bid > 0 {
		u.MaxBid = &bid
	}
	if d.Priority != 0 {
		p := d.Priority
		u.Priority = &p
	}
	if n := strings.TrimSpace(d.Notes); n != "" {
		u.Notes = &n
	}

	u.Tracked = u.MaxBid != nil || u.Priority != nil || u.Notes != nil || categorySet
	return u
}

// FromStrategy seeds a clean draft from a server-confirmed record.
func FromStrategy(s *Strategy) Draft {
	return Draft{
		MaxBid:   s.MaxBidValue(),
		Priority: s.PriorityValue(),
		Notes:    s.NotesValue(),
		State:    DraftClean,
	}
}
