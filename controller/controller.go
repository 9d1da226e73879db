package controller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/pietro1412/fantacontratti/metrics"
	"github.com/pietro1412/fantacontratti/model"
	"github.com/pietro1412/fantacontratti/platforms/lega"
)

// DefaultDebounceDelay is the quiet period after the last edit before a
// draft is flushed to the server.
const DefaultDebounceDelay = 2000 * time.Millisecond

// C encapsulates the strategy engine without worrying about any web layers.
type C interface {
	// Load fetches both player collections and seeds clean drafts from
	// any server-confirmed strategy. A dirty draft is never overwritten.
	Load(ctx context.Context) error

	// Players returns the composed display list for the current view
	// state. For the overview scope it returns nil; use Overview instead.
	Players() []DisplayPlayer
	Overview() []CategoryGroup
	ViewState() model.ViewState

	SetScope(s model.Scope)
	SetPositionFilter(p model.Position)
	SetSearch(q string)
	SetOwnerFilter(memberID string)
	SetTeamFilter(t *model.SerieATeam)
	SetOnlyTracked(only bool)
	SetSort(mode model.SortMode, dir model.SortDirection)
	ResetView()

	// Edit* buffer a single field of a player's draft and (re)arm the
	// debounce timer. They never fail; all persistence outcomes surface
	// through the draft state and LastSaveError.
	EditMaxBid(playerID, raw string)
	EditPriority(playerID string, priority int)
	EditNotes(playerID, notes string)
	Draft(playerID string) model.Draft
	LastSaveError(playerID string) string

	// FlushNow sends a dirty draft immediately, bypassing the debounce.
	// It is the manual-retry path after a failed save.
	FlushNow(ctx context.Context, playerID string) error

	// SetWatchlistCategory writes the category immediately; a discrete
	// selection should not wait out a typing debounce.
	SetWatchlistCategory(ctx context.Context, playerID string, category *string) error

	ToggleCompare(playerID string)
	ClearCompare()
	ComparisonPlayers() []DisplayPlayer

	GetMembershipRole(ctx context.Context) (string, error)

	// Close cancels every outstanding debounce timer. Saves already
	// dispatched still complete and merge back.
	Close()
}

type controller struct {
	clock   clock.Clock
	lega    lega.Client
	logger  *slog.Logger
	metrics *metrics.Metrics

	leagueID string
	memberID string

	timers *debouncer

	// mu guards everything below. Timer callbacks run on their own
	// goroutines, so the single-logical-thread invariants are enforced
	// with a mutex.
	mu       sync.Mutex
	owned    []model.Player
	unowned  []model.Player
	drafts   map[string]*draftEntry
	saveErrs map[string]string
	view     model.ViewState
	compare  []string
	role     string
}

func New(clk clock.Clock, legaClient lega.Client, logger *slog.Logger, m *metrics.Metrics, leagueID, memberID string, delay time.Duration) (C, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.New()
	}
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	c := &controller{
		clock:    clk,
		lega:     legaClient,
		logger:   logger,
		metrics:  m,
		leagueID: leagueID,
		memberID: memberID,
		timers:   newDebouncer(clk, delay),
		drafts:   make(map[string]*draftEntry),
		saveErrs: make(map[string]string),
		view:     model.DefaultViewState(),
	}
	return c, nil
}

func (c *controller) Close() {
	c.timers.CancelAll()
}

func (c *controller) ViewState() model.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *controller) SetScope(s model.Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Scope = s
}

func (c *controller) SetPositionFilter(p model.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Position = p
}

func (c *controller) SetSearch(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Search = q
}

func (c *controller) SetOwnerFilter(memberID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.OwnerID = memberID
}

func (c *controller) SetTeamFilter(t *model.SerieATeam) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Team = t
}

func (c *controller) SetOnlyTracked(only bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.OnlyTracked = only
}

func (c *controller) SetSort(mode model.SortMode, dir model.SortDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Sort = mode
	if dir != model.SortDesc {
		dir = model.SortAsc
	}
	c.view.Direction = dir
}

func (c *controller) ResetView() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Reset()
}

func (c *controller) GetMembershipRole(ctx context.Context) (string, error) {
	c.mu.Lock()
	cached := c.role
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	role, err := c.lega.GetMembershipRole(ctx, c.leagueID)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.role = role
	c.mu.Unlock()
	return role, nil
}
