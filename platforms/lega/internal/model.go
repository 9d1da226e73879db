package internal

import (
	"encoding/json"
)

// Envelope is the standard Lega API response wrapper.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Position  string    `json:"position"`
	Age       int       `json:"age"`
	Quotation int       `json:"quotation"`
	Contract  *Contract `json:"contract,omitempty"`
	Owner     *Owner    `json:"owner,omitempty"`
	Strategy  *Strategy `json:"strategy,omitempty"`
}

type Contract struct {
	Salary      int `json:"salary"`
	Years       int `json:"years"`
	ClausePrice int `json:"clause_price"`
}

type Owner struct {
	MemberID  string `json:"member_id"`
	Username  string `json:"username"`
	TeamName  string `json:"team_name,omitempty"`
	TurnOrder int    `json:"turn_order,omitempty"`
}

type Strategy struct {
	ID       string  `json:"id"`
	MemberID string  `json:"member_id"`
	MaxBid   *int    `json:"max_bid"`
	Priority *int    `json:"priority"`
	Notes    *string `json:"notes"`
	Tracked  bool    `json:"tracked"`
	Category *string `json:"category"`
}

// StrategyWrite is the body of a bid flush. The four fields are always
// serialized: an explicit null clears the stored value server-side, so a
// draft whose fields were emptied actually empties the record. The
// category is not part of a bid write and stays untouched.
type StrategyWrite struct {
	MaxBid   *int    `json:"max_bid"`
	Priority *int    `json:"priority"`
	Notes    *string `json:"notes"`
	Tracked  bool    `json:"tracked"`
}

// CategoryWrite is the body of a category assignment. Omitted fields are
// left unchanged server-side; ClearCategory forces category to null,
// since omitempty cannot tell "unset" from "clear".
type CategoryWrite struct {
	Category      *string `json:"category,omitempty"`
	ClearCategory bool    `json:"clear_category,omitempty"`
}

type Membership struct {
	Role string `json:"role"`
}
