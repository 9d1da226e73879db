package controller

import (
	"github.com/pietro1412/fantacontratti/model"
)

// draftEntry pairs a draft with a generation counter. Every edit bumps
// the generation; a save acknowledgement only cleans the draft when the
// generation it read is still current, so an edit that lands while a
// save is in flight is never silently dropped.
type draftEntry struct {
	draft model.Draft
	gen   uint64
}

// Draft returns the buffered draft for a player, or the zero-value
// default when the player was never edited or loaded. Never fails.
func (c *controller) Draft(playerID string) model.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draftLocked(playerID)
}

func (c *controller) draftLocked(playerID string) model.Draft {
	if e, ok := c.drafts[playerID]; ok {
		return e.draft
	}
	return model.Draft{}
}

func (c *controller) LastSaveError(playerID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveErrs[playerID]
}

func (c *controller) EditMaxBid(playerID, raw string) {
	c.edit(playerID, func(d *model.Draft) { d.MaxBid = raw })
}

func (c *controller) EditPriority(playerID string, priority int) {
	if priority < 0 {
		priority = 0
	}
	if priority > 5 {
		priority = 5
	}
	c.edit(playerID, func(d *model.Draft) { d.Priority = priority })
}

func (c *controller) EditNotes(playerID, notes string) {
	c.edit(playerID, func(d *model.Draft) { d.Notes = notes })
}

// edit is the single mutation entry point during editing: it replaces
// one field, marks the draft dirty, bumps the generation and (re)arms
// the player's debounce timer.
func (c *controller) edit(playerID string, set func(*model.Draft)) {
	c.mu.Lock()
	e := c.ensureDraftLocked(playerID)
	set(&e.draft)
	e.draft.State = model.DraftDirty
	e.gen++
	c.metrics.DirtyDrafts.Set(float64(c.countDirtyLocked()))
	c.mu.Unlock()

	c.metrics.DebounceArmed.Inc()
	c.timers.Schedule(playerID, func() {
		c.flush(playerID)
	})
}

func (c *controller) ensureDraftLocked(playerID string) *draftEntry {
	e, ok := c.drafts[playerID]
	if !ok {
		e = &draftEntry{}
		c.drafts[playerID] = e
	}
	return e
}

func (c *controller) countDirtyLocked() int {
	n := 0
	for _, e := range c.drafts {
		if e.draft.State != model.DraftClean {
			n++
		}
	}
	return n
}
