package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pietro1412/fantacontratti/model"
)

// Load fetches the owned and unowned collections in parallel and swaps
// them into the read-model cache. Server-confirmed strategy seeds a clean
// draft for each player, so filters and edit fields start from what the
// server knows. A draft with unsaved edits is left completely alone.
func (c *controller) Load(ctx context.Context) error {
	var (
		wg      sync.WaitGroup
		owned   []model.Player
		unowned []model.Player
		errO    error
		errU    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		owned, errO = c.lega.FetchOwned(ctx, c.leagueID)
	}()
	go func() {
		defer wg.Done()
		unowned, errU = c.lega.FetchUnowned(ctx, c.leagueID)
	}()
	wg.Wait()

	if err := errors.Join(errO, errU); err != nil {
		// Previous collections stay in place; a fresh Load retries.
		c.metrics.LoadsTotal.WithLabelValues("error").Inc()
		c.logger.Error("player load failed", "league", c.leagueID, "err", err)
		return fmt.Errorf("error loading players for league %s: %w", c.leagueID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.owned = owned
	c.unowned = unowned
	for i := range owned {
		c.seedDraftLocked(&owned[i])
	}
	for i := range unowned {
		c.seedDraftLocked(&unowned[i])
	}

	c.metrics.LoadsTotal.WithLabelValues("ok").Inc()
	c.metrics.PlayersCached.Set(float64(len(owned) + len(unowned)))
	c.logger.Info("players loaded", "league", c.leagueID, "owned", len(owned), "unowned", len(unowned))
	return nil
}

func (c *controller) seedDraftLocked(p *model.Player) {
	e, ok := c.drafts[p.ID]
	if ok && e.draft.State != model.DraftClean {
		// In-flight edits win over a background reload.
		return
	}

	seeded := model.FromStrategy(p.Strategy)
	if !ok {
		if !seeded.HasAnnotation() {
			// No record and nothing buffered; the zero-value default
			// from Draft() covers this player.
			return
		}
		e = &draftEntry{}
		c.drafts[p.ID] = e
	}
	e.draft = seeded
}
