package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/pietro1412/fantacontratti/model"
)

const saveTimeout = 30 * time.Second

// flush is the debounce-timer path: it runs on the timer goroutine with
// a fresh context, because the edit that armed it is long finished.
func (c *controller) flush(playerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	// The timer fires and forgets; the outcome lives in the draft state,
	// LastSaveError and the log.
	_ = c.FlushNow(ctx, playerID)
}

// FlushNow sends the current draft for a player to the strategy-write
// endpoint. The draft is re-read under the lock at call time, never from
// a value captured when the timer was armed, so the last edit in a burst
// is always what gets sent. If the draft is not dirty this is a no-op.
func (c *controller) FlushNow(ctx context.Context, playerID string) error {
	c.mu.Lock()
	e, ok := c.drafts[playerID]
	if !ok || !e.draft.IsDirty() {
		// Already saved or saving; a stray timer or manual retry after
		// a concurrent flush lands here.
		c.mu.Unlock()
		return nil
	}
	gen := e.gen
	update := e.draft.Update(c.categorySetLocked(playerID))
	e.draft.State = model.DraftSaving
	c.mu.Unlock()

	start := c.clock.Now()
	err := c.lega.SetStrategy(ctx, c.leagueID, playerID, update)
	c.metrics.SaveLatency.Observe(c.clock.Since(start).Seconds())

	c.mu.Lock()
	defer c.mu.Unlock()

	e = c.ensureDraftLocked(playerID)
	if err != nil {
		// The typed values stay buffered and dirty; a later edit re-arms
		// the timer and a manual retry can resend as-is.
		if e.draft.State == model.DraftSaving {
			e.draft.State = model.DraftDirty
		}
		c.saveErrs[playerID] = err.Error()
		c.metrics.SavesTotal.WithLabelValues("error").Inc()
		c.metrics.DirtyDrafts.Set(float64(c.countDirtyLocked()))
		c.logger.Warn("strategy save failed", "player", playerID, "err", err)
		return fmt.Errorf("error saving strategy for player %s: %w", playerID, err)
	}

	delete(c.saveErrs, playerID)
	// Clean only if no edit bumped the generation while the call was in
	// flight; otherwise the newer value stays dirty and pending.
	if e.gen == gen && e.draft.State == model.DraftSaving {
		e.draft.State = model.DraftClean
	}
	c.mergeStrategyLocked(playerID, update)
	c.metrics.SavesTotal.WithLabelValues("ok").Inc()
	c.metrics.DirtyDrafts.Set(float64(c.countDirtyLocked()))
	return nil
}

// SetWatchlistCategory bypasses the debounce entirely: a category pick is
// a discrete selection, not a keystroke stream, and should feel
// instantaneous. Success merges into both collections, since the same
// player id can surface in either view.
func (c *controller) SetWatchlistCategory(ctx context.Context, playerID string, category *string) error {
	err := c.lega.SetWatchlistCategory(ctx, c.leagueID, playerID, category)
	if err != nil {
		c.metrics.CategoryWrites.WithLabelValues("error").Inc()
		c.logger.Warn("category save failed", "player", playerID, "err", err)
		return fmt.Errorf("error saving category for player %s: %w", playerID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.mergeCategoryLocked(playerID, category)
	c.metrics.CategoryWrites.WithLabelValues("ok").Inc()
	return nil
}

// categorySetLocked reports whether the player currently carries a
// watchlist category in either collection; a category alone keeps a
// strategy record tracked even with every bid field empty.
func (c *controller) categorySetLocked(playerID string) bool {
	for _, list := range [][]model.Player{c.owned, c.unowned} {
		for i := range list {
			if list[i].ID == playerID {
				if list[i].Strategy.CategoryValue() != "" {
					return true
				}
			}
		}
	}
	return false
}

// mergeStrategyLocked applies a confirmed bid update to every collection
// that contains the player. Only the fields the update carries are
// replaced; the category is untouched. Collections are never reordered.
// Merges are copy-on-write: the record pointer is swapped, never mutated
// in place, so rows composed earlier keep the Strategy they were built
// with.
func (c *controller) mergeStrategyLocked(playerID string, u model.StrategyUpdate) {
	for _, list := range [][]model.Player{c.owned, c.unowned} {
		for i := range list {
			if list[i].ID != playerID {
				continue
			}
			s := model.Strategy{MemberID: c.memberID}
			if list[i].Strategy != nil {
				s = *list[i].Strategy
			}
			s.Apply(u)
			list[i].Strategy = &s
		}
	}
}

func (c *controller) mergeCategoryLocked(playerID string, category *string) {
	for _, list := range [][]model.Player{c.owned, c.unowned} {
		for i := range list {
			if list[i].ID != playerID {
				continue
			}
			s := model.Strategy{MemberID: c.memberID}
			if list[i].Strategy != nil {
				s = *list[i].Strategy
			}
			s.Category = category
			s.Tracked = s.MaxBid != nil || s.PriorityValue() != 0 || s.NotesValue() != "" || category != nil
			list[i].Strategy = &s
		}
	}
}
