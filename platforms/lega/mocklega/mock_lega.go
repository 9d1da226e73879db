package mocklega

import (
	"context"

	"github.com/pietro1412/fantacontratti/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) FetchOwned(ctx context.Context, leagueID string) ([]model.Player, error) {
	args := c.Called(ctx, leagueID)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (c *Client) FetchUnowned(ctx context.Context, leagueID string) ([]model.Player, error) {
	args := c.Called(ctx, leagueID)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (c *Client) SetStrategy(ctx context.Context, leagueID, playerID string, u model.StrategyUpdate) error {
	args := c.Called(ctx, leagueID, playerID, u)
	return args.Error(0)
}

func (c *Client) SetWatchlistCategory(ctx context.Context, leagueID, playerID string, category *string) error {
	args := c.Called(ctx, leagueID, playerID, category)
	return args.Error(0)
}

func (c *Client) GetMembershipRole(ctx context.Context, leagueID string) (string, error) {
	args := c.Called(ctx, leagueID)
	return args.String(0), args.Error(1)
}
