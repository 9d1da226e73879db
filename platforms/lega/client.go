package lega

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pietro1412/fantacontratti/model"
	"github.com/pietro1412/fantacontratti/platforms/lega/internal"
	"golang.org/x/oauth2"
)

const LegaURL = "https://api.fantacontratti.it"

var ErrNotFound = errors.New("not found")

// Client is the surface the engine consumes from the hosted league
// platform: the player-record provider, the strategy-write endpoint and
// the membership lookup.
type Client interface {
	FetchOwned(ctx context.Context, leagueID string) ([]model.Player, error)
	FetchUnowned(ctx context.Context, leagueID string) ([]model.Player, error)
	// SetStrategy replaces maxBid, priority and notes for one player.
	SetStrategy(ctx context.Context, leagueID, playerID string, u model.StrategyUpdate) error
	// SetWatchlistCategory replaces only the category. nil clears it.
	SetWatchlistCategory(ctx context.Context, leagueID, playerID string, category *string) error
	GetMembershipRole(ctx context.Context, leagueID string) (string, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

// New creates a client for the given base URL; empty means the
// production API. When a token source is given every request carries the
// bearer token.
func New(baseURL string, ts oauth2.TokenSource) (Client, error) {
	if baseURL == "" {
		baseURL = LegaURL
	}

	httpClient := &http.Client{Timeout: 1 * time.Minute}
	if ts != nil {
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = 1 * time.Minute
	}

	c := &client{
		url:        baseURL,
		httpClient: httpClient,
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) FetchOwned(ctx context.Context, leagueID string) ([]model.Player, error) {
	return c.fetchPlayers(ctx, fmt.Sprintf("%s/v1/leagues/%s/players/owned", c.url, leagueID))
}

func (c *client) FetchUnowned(ctx context.Context, leagueID string) ([]model.Player, error) {
	return c.fetchPlayers(ctx, fmt.Sprintf("%s/v1/leagues/%s/players/free", c.url, leagueID))
}

func (c *client) fetchPlayers(ctx context.Context, url string) ([]model.Player, error) {
	env, err := c.request(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var parsed []internal.Player
	if err := json.Unmarshal(env.Data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing players response: %w", err)
	}

	result := make([]model.Player, 0, len(parsed))
	for _, p := range parsed {
		result = append(result, toPlayer(&p))
	}
	return result, nil
}

func (c *client) SetStrategy(ctx context.Context, leagueID, playerID string, u model.StrategyUpdate) error {
	body := internal.StrategyWrite{
		MaxBid:   u.MaxBid,
		Priority: u.Priority,
		Notes:    u.Notes,
		Tracked:  u.Tracked,
	}

	url := fmt.Sprintf("%s/v1/leagues/%s/players/%s/strategy", c.url, leagueID, playerID)
	_, err := c.request(ctx, http.MethodPut, url, &body)
	return err
}

func (c *client) SetWatchlistCategory(ctx context.Context, leagueID, playerID string, category *string) error {
	body := internal.CategoryWrite{Category: category}
	if category == nil {
		body.ClearCategory = true
	}

	url := fmt.Sprintf("%s/v1/leagues/%s/players/%s/strategy", c.url, leagueID, playerID)
	_, err := c.request(ctx, http.MethodPut, url, &body)
	return err
}

func (c *client) GetMembershipRole(ctx context.Context, leagueID string) (string, error) {
	url := fmt.Sprintf("%s/v1/leagues/%s/membership", c.url, leagueID)
	env, err := c.request(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	var m internal.Membership
	if err := json.Unmarshal(env.Data, &m); err != nil {
		return "", fmt.Errorf("error parsing membership response: %w", err)
	}
	if m.Role == "" {
		return "", errors.New("membership has no role")
	}
	return m.Role, nil
}

func (c *client) request(ctx context.Context, method, url string, body any) (*internal.Envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var env internal.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}
	if !env.Success {
		if env.Message == "" {
			env.Message = "request failed"
		}
		return nil, errors.New(env.Message)
	}

	return &env, nil
}

func toPlayer(p *internal.Player) model.Player {
	result := model.Player{
		ID:        p.ID,
		Name:      p.Name,
		Team:      model.ParseTeam(p.Team),
		Position:  model.ParsePosition(p.Position),
		Age:       p.Age,
		Quotation: p.Quotation,
	}

	if p.Contract != nil {
		result.Contract = &model.Contract{
			Salary:      p.Contract.Salary,
			Years:       p.Contract.Years,
			ClausePrice: p.Contract.ClausePrice,
		}
	}
	if p.Owner != nil {
		result.Owner = &model.Manager{
			MemberID:  p.Owner.MemberID,
			Username:  p.Owner.Username,
			TeamName:  p.Owner.TeamName,
			TurnOrder: p.Owner.TurnOrder,
		}
	}
	if p.Strategy != nil {
		result.Strategy = &model.Strategy{
			ID:       p.Strategy.ID,
			MemberID: p.Strategy.MemberID,
			MaxBid:   p.Strategy.MaxBid,
			Priority: p.Strategy.Priority,
			Notes:    p.Strategy.Notes,
			Tracked:  p.Strategy.Tracked,
			Category: p.Strategy.Category,
		}
	}

	return result
}
