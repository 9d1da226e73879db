package model

import (
	"fmt"
)

// Player is a single row of a player collection as returned by the Lega
// platform. Records are replaced wholesale on every fetch; the only field
// ever patched in place is Strategy, after a confirmed save.
type Player struct {
	ID        string
	Name      string
	Team      *SerieATeam
	Position  Position
	Age       int
	Quotation int // The listino value in credits

	// Contract and Owner are set only for owned players.
	Contract *Contract
	Owner    *Manager

	// Strategy is the server-confirmed annotation for the configured
	// member, nil if the member never set anything for this player.
	Strategy *Strategy
}

func (p *Player) IsOwned() bool {
	return p.Owner != nil
}

// OwnedBy reports whether the player belongs to the given member.
func (p *Player) OwnedBy(memberID string) bool {
	return p.Owner != nil && p.Owner.MemberID == memberID
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s %s)", p.Name, p.Position, p.Team)
}

// Contract holds the terms a player is owned under.
type Contract struct {
	Salary      int
	Years       int
	ClausePrice int // The buy-out price derived from the rescission clause
}

// Manager is a league member that can own players.
type Manager struct {
	MemberID string
	Username string
	TeamName string
	// TurnOrder is the member's position in the rubata phase.
	// 0 means not assigned yet.
	TurnOrder int
}

// DisplayName is the name shown in manager-sorted views: the fantasy team
// name when one is set, the username otherwise.
func (m *Manager) DisplayName() string {
	if m.TeamName != "" {
		return m.TeamName
	}
	return m.Username
}
