package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pietro1412/fantacontratti/model"
	"github.com/pietro1412/fantacontratti/testutils"
	"github.com/stretchr/testify/mock"
)

func testRoster() ([]model.Player, []model.Player) {
	me := testutils.Manager("m1", "pietro", "Vecchia Signora FC", 2)
	other := testutils.Manager("m2", "marco", "Bauscia United", 1)

	owned := []model.Player{
		testutils.OwnedPlayer("p100", "Rossi", model.TEAM_JUV, model.POS_D, me),
		testutils.OwnedPlayer("p200", "Rossini", model.TEAM_INT, model.POS_C, other),
	}
	unowned := []model.Player{
		testutils.FreePlayer("p300", "Verdi", model.TEAM_NAP, model.POS_A),
	}
	return owned, unowned
}

func TestFlushSendsLastEditAfterQuietPeriod(t *testing.T) {
	c, m, mockClock := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	var sent model.StrategyUpdate
	m.On("SetStrategy", mock.Anything, testLeagueID, "p300", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(3).(model.StrategyUpdate)
		}).
		Return(nil).
		Once()

	// A typing burst: only the final value may reach the server.
	c.EditMaxBid("p300", "1")
	mockClock.Add(500 * time.Millisecond)
	c.EditMaxBid("p300", "15")
	mockClock.Add(500 * time.Millisecond)
	c.EditMaxBid("p300", "15")

	mockClock.Add(2000 * time.Millisecond)

	m.AssertNumberOfCalls(t, "SetStrategy", 1)
	if sent.MaxBid == nil || *sent.MaxBid != 15 {
		t.Errorf("maxBid = %v, wanted 15", sent.MaxBid)
	}
	if sent.Priority != nil {
		t.Errorf("priority = %v, wanted nil", sent.Priority)
	}
	if sent.Notes != nil {
		t.Errorf("notes = %v, wanted nil", sent.Notes)
	}
	if !sent.Tracked {
		t.Errorf("tracked should be true when a max bid is set")
	}

	d := c.Draft("p300")
	if d.IsDirty() || d.IsSaving() {
		t.Errorf("draft should be clean after a confirmed save, was %v", d.State)
	}
	if d.MaxBid != "15" {
		t.Errorf("draft value changed by the save: %q", d.MaxBid)
	}
}

func TestFlushMergesBackIntoReadModel(t *testing.T) {
	c, m, mockClock := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	m.On("SetStrategy", mock.Anything, testLeagueID, "p100", mock.Anything).Return(nil).Once()

	c.EditMaxBid("p100", "25")
	c.EditPriority("p100", 3)
	mockClock.Add(2000 * time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.owned[0].Strategy
	if s == nil {
		t.Fatalf("strategy not merged into the read model")
	}
	if s.MaxBid == nil || *s.MaxBid != 25 {
		t.Errorf("merged maxBid = %v, wanted 25", s.MaxBid)
	}
	if s.Priority == nil || *s.Priority != 3 {
		t.Errorf("merged priority = %v, wanted 3", s.Priority)
	}
	if s.Notes != nil {
		t.Errorf("merged notes = %v, wanted nil", s.Notes)
	}
	if !s.Tracked {
		t.Errorf("merged record should be tracked")
	}
}

func TestFlushFailurePreservesDraft(t *testing.T) {
	c, m, mockClock := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	m.On("SetStrategy", mock.Anything, testLeagueID, "p300", mock.Anything).
		Return(errors.New("network down")).
		Once()

	c.EditNotes("p300", "da non perdere")
	mockClock.Add(2000 * time.Millisecond)

	d := c.Draft("p300")
	if !d.IsDirty() {
		t.Errorf("draft must stay dirty after a failed save, was %v", d.State)
	}
	if d.Notes != "da non perdere" {
		t.Errorf("typed value was lost: %q", d.Notes)
	}
	if c.LastSaveError("p300") == "" {
		t.Errorf("expected a recorded save error")
	}

	// No automatic retry.
	mockClock.Add(1 * time.Minute)
	m.AssertNumberOfCalls(t, "SetStrategy", 1)

	// A manual retry resends the same draft and recovers.
	m.On("SetStrategy", mock.Anything, testLeagueID, "p300", mock.Anything).Return(nil).Once()
	if err := c.FlushNow(context.Background(), "p300"); err != nil {
		t.Fatalf("manual retry failed: %v", err)
	}
	if c.Draft("p300").IsDirty() {
		t.Errorf("draft should be clean after the retry succeeded")
	}
	if c.LastSaveError("p300") != "" {
		t.Errorf("save error should clear on success")
	}
}

func TestFlushNowIsNoOpWhenClean(t *testing.T) {
	c, m, _ := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	if err := c.FlushNow(context.Background(), "p100"); err != nil {
		t.Fatalf("error was not nil: %v", err)
	}
	m.AssertNotCalled(t, "SetStrategy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEditDuringInFlightSaveStaysDirty(t *testing.T) {
	c, m, mockClock := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	// While the first save is on the wire, another edit lands. The stale
	// acknowledgement must not clean the newer value.
	m.On("SetStrategy", mock.Anything, testLeagueID, "p300", mock.Anything).
		Run(func(args mock.Arguments) {
			c.EditNotes("p300", "secondo pensiero")
		}).
		Return(nil).
		Once()

	c.EditNotes("p300", "primo pensiero")
	mockClock.Add(2000 * time.Millisecond)

	d := c.Draft("p300")
	if !d.IsDirty() {
		t.Fatalf("newer edit was marked clean by a stale acknowledgement")
	}
	if d.Notes != "secondo pensiero" {
		t.Errorf("draft notes = %q, wanted the newer edit", d.Notes)
	}

	// The rearmed timer flushes the newer value.
	var sent model.StrategyUpdate
	m.On("SetStrategy", mock.Anything, testLeagueID, "p300", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(3).(model.StrategyUpdate)
		}).
		Return(nil).
		Once()
	mockClock.Add(2000 * time.Millisecond)

	if sent.Notes == nil || *sent.Notes != "secondo pensiero" {
		t.Errorf("second flush sent %v, wanted the newer notes", sent.Notes)
	}
	if c.Draft("p300").IsDirty() {
		t.Errorf("draft should be clean once the newer value is confirmed")
	}
}

func TestSetWatchlistCategoryBypassesDebounce(t *testing.T) {
	c, m, _ := newTestController(t)

	// The same player cached in both collections: the merge must reach
	// every copy.
	shared := testutils.FreePlayer("p400", "Colombo", model.TEAM_GEN, model.POS_D)
	owned := []model.Player{shared}
	unowned := []model.Player{shared}
	loadTestRoster(t, c, m, owned, unowned)

	category := "rubate"
	m.On("SetWatchlistCategory", mock.Anything, testLeagueID, "p400", &category).Return(nil).Once()

	if err := c.SetWatchlistCategory(context.Background(), "p400", &category); err != nil {
		t.Fatalf("error was not nil: %v", err)
	}
	if c.timers.pending() != 0 {
		t.Errorf("category write must not arm a debounce timer")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, list := range [][]model.Player{c.owned, c.unowned} {
		s := list[0].Strategy
		if s == nil || s.CategoryValue() != "rubate" {
			t.Errorf("category not merged into collection: %+v", s)
		}
		if !s.Tracked {
			t.Errorf("a category alone must mark the record tracked")
		}
	}
}

func TestSetWatchlistCategoryFailure(t *testing.T) {
	c, m, _ := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	m.On("SetWatchlistCategory", mock.Anything, testLeagueID, "p300", (*string)(nil)).
		Return(errors.New("rejected")).
		Once()

	if err := c.SetWatchlistCategory(context.Background(), "p300", nil); err == nil {
		t.Fatalf("expected an error")
	}

	// Nothing merged on failure.
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unowned[0].Strategy != nil {
		t.Errorf("category merged despite failure: %+v", c.unowned[0].Strategy)
	}
}

func TestComposedRowsKeepStrategyAfterMerge(t *testing.T) {
	c, m, _ := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	category := "rubate"
	m.On("SetWatchlistCategory", mock.Anything, testLeagueID, "p300", &category).Return(nil).Once()

	before := c.Players()
	if err := c.SetWatchlistCategory(context.Background(), "p300", &category); err != nil {
		t.Fatalf("error was not nil: %v", err)
	}

	// The merge swaps the cached record; a row composed before the save
	// must still read what it was composed with.
	for _, p := range before {
		if p.ID == "p300" && p.Strategy.CategoryValue() != "" {
			t.Errorf("merge mutated a previously composed row: %+v", p.Strategy)
		}
	}
	for _, p := range c.Players() {
		if p.ID == "p300" && p.Strategy.CategoryValue() != "rubate" {
			t.Errorf("fresh composition missing the merge: %+v", p.Strategy)
		}
	}
}

func TestPlayersConcurrentWithCategoryWrites(t *testing.T) {
	c, m, _ := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)
	c.SetOnlyTracked(true)

	m.On("SetWatchlistCategory", mock.Anything, testLeagueID, "p300", mock.Anything).Return(nil)

	// Readers hammer the composer while saves merge into the cache; the
	// race detector flags any unserialized access to the collections.
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			for _, p := range c.Players() {
				_ = p.Strategy.CategoryValue()
			}
			c.Overview()
		}
	}()

	for i := 0; i < 50; i++ {
		category := fmt.Sprintf("giro-%d", i)
		if err := c.SetWatchlistCategory(context.Background(), "p300", &category); err != nil {
			t.Fatalf("error was not nil: %v", err)
		}
	}
	close(done)
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if got := c.unowned[0].Strategy.CategoryValue(); got != "giro-49" {
		t.Errorf("final category = %q", got)
	}
}

func TestClearingEveryFieldSendsUntracked(t *testing.T) {
	c, m, mockClock := newTestController(t)
	owned, unowned := testRoster()
	loadTestRoster(t, c, m, owned, unowned)

	var sent model.StrategyUpdate
	m.On("SetStrategy", mock.Anything, testLeagueID, "p300", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(3).(model.StrategyUpdate)
		}).
		Return(nil).
		Once()

	// The player had nothing saved; typing and deleting again must not
	// error, it just persists an empty record.
	c.EditMaxBid("p300", "9")
	c.EditMaxBid("p300", "")
	mockClock.Add(2000 * time.Millisecond)

	if sent.MaxBid != nil || sent.Priority != nil || sent.Notes != nil {
		t.Errorf("expected an all-null update, got %+v", sent)
	}
	if sent.Tracked {
		t.Errorf("record with no fields and no category must be untracked")
	}
}
