package testutils

import (
	"github.com/pietro1412/fantacontratti/model"
)

// CurrentMemberID is the member the test fixtures treat as "me".
const CurrentMemberID = "m1"

func Manager(memberID, username, teamName string, turnOrder int) *model.Manager {
	return &model.Manager{
		MemberID:  memberID,
		Username:  username,
		TeamName:  teamName,
		TurnOrder: turnOrder,
	}
}

// OwnedPlayer builds an owned player with a minimal contract.
func OwnedPlayer(id, name string, team *model.SerieATeam, pos model.Position, owner *model.Manager) model.Player {
	return model.Player{
		ID:       id,
		Name:     name,
		Team:     team,
		Position: pos,
		Contract: &model.Contract{Salary: 1, Years: 1, ClausePrice: 10},
		Owner:    owner,
	}
}

func FreePlayer(id, name string, team *model.SerieATeam, pos model.Position) model.Player {
	return model.Player{
		ID:       id,
		Name:     name,
		Team:     team,
		Position: pos,
	}
}

// WithStrategy attaches a server-confirmed strategy to a player copy.
func WithStrategy(p model.Player, maxBid, priority int, notes, category string) model.Player {
	s := &model.Strategy{MemberID: CurrentMemberID}
	if maxBid != 0 {
		s.MaxBid = &maxBid
	}
	if priority != 0 {
		s.Priority = &priority
	}
	if notes != "" {
		s.Notes = &notes
	}
	if category != "" {
		s.Category = &category
	}
	s.Tracked = s.MaxBid != nil || s.Priority != nil || s.Notes != nil || s.Category != nil
	p.Strategy = s
	return p
}
