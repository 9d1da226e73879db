package mockcontroller

import (
	"context"

	"github.com/pietro1412/fantacontratti/controller"
	"github.com/pietro1412/fantacontratti/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Load(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) Players() []controller.DisplayPlayer {
	args := c.Called()

	var p []controller.DisplayPlayer
	if args.Get(0) != nil {
		p = args.Get(0).([]controller.DisplayPlayer)
	}
	return p
}

func (c *C) Overview() []controller.CategoryGroup {
	args := c.Called()

	var g []controller.CategoryGroup
	if args.Get(0) != nil {
		g = args.Get(0).([]controller.CategoryGroup)
	}
	return g
}

func (c *C) ViewState() model.ViewState {
	args := c.Called()
	return args.Get(0).(model.ViewState)
}

func (c *C) SetScope(s model.Scope)                               { c.Called(s) }
func (c *C) SetPositionFilter(p model.Position)                   { c.Called(p) }
func (c *C) SetSearch(q string)                                   { c.Called(q) }
func (c *C) SetOwnerFilter(memberID string)                       { c.Called(memberID) }
func (c *C) SetTeamFilter(t *model.SerieATeam)                    { c.Called(t) }
func (c *C) SetOnlyTracked(only bool)                             { c.Called(only) }
func (c *C) SetSort(mode model.SortMode, dir model.SortDirection) { c.Called(mode, dir) }
func (c *C) ResetView()                                           { c.Called() }

func (c *C) EditMaxBid(playerID, raw string)                { c.Called(playerID, raw) }
func (c *C) EditPriority(playerID string, priority int)     { c.Called(playerID, priority) }
func (c *C) EditNotes(playerID, notes string)               { c.Called(playerID, notes) }

func (c *C) Draft(playerID string) model.Draft {
	args := c.Called(playerID)
	return args.Get(0).(model.Draft)
}

func (c *C) LastSaveError(playerID string) string {
	args := c.Called(playerID)
	return args.String(0)
}

func (c *C) FlushNow(ctx context.Context, playerID string) error {
	args := c.Called(ctx, playerID)
	return args.Error(0)
}

func (c *C) SetWatchlistCategory(ctx context.Context, playerID string, category *string) error {
	args := c.Called(ctx, playerID, category)
	return args.Error(0)
}

func (c *C) ToggleCompare(playerID string) { c.Called(playerID) }
func (c *C) ClearCompare()                 { c.Called() }

func (c *C) ComparisonPlayers() []controller.DisplayPlayer {
	args := c.Called()

	var p []controller.DisplayPlayer
	if args.Get(0) != nil {
		p = args.Get(0).([]controller.DisplayPlayer)
	}
	return p
}

func (c *C) GetMembershipRole(ctx context.Context) (string, error) {
	args := c.Called(ctx)
	return args.String(0), args.Error(1)
}

func (c *C) Close() { c.Called() }
