package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pietro1412/fantacontratti/controller"
	"github.com/pietro1412/fantacontratti/model"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := ctrl.GetMembershipRole(r.Context())
		if err != nil {
			// The role only gates admin UI; the console works without it.
			role = "unknown"
		}
		render.JSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"role":   role,
		})
	}
}

func playersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, toPlayerRows(ctrl.Players()))
	}
}

// viewUpdate carries a partial view-state change; only the fields present
// in the body are applied.
type viewUpdate struct {
	Scope       *string `json:"scope"`
	Position    *string `json:"position"`
	Search      *string `json:"search"`
	Owner       *string `json:"owner"`
	Team        *string `json:"team"`
	OnlyTracked *bool   `json:"onlyTracked"`
	Sort        *string `json:"sort"`
	Direction   *string `json:"direction"`
}

func updateViewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u viewUpdate
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if u.Scope != nil {
			ctrl.SetScope(model.ParseScope(*u.Scope))
		}
		if u.Position != nil {
			ctrl.SetPositionFilter(model.ParsePosition(*u.Position))
		}
		if u.Search != nil {
			ctrl.SetSearch(*u.Search)
		}
		if u.Owner != nil {
			ctrl.SetOwnerFilter(*u.Owner)
		}
		if u.Team != nil {
			if *u.Team == "" {
				ctrl.SetTeamFilter(nil)
			} else {
				ctrl.SetTeamFilter(model.ParseTeam(*u.Team))
			}
		}
		if u.OnlyTracked != nil {
			ctrl.SetOnlyTracked(*u.OnlyTracked)
		}
		if u.Sort != nil || u.Direction != nil {
			state := ctrl.ViewState()
			mode := state.Sort
			dir := state.Direction
			if u.Sort != nil {
				mode = model.ParseSortMode(*u.Sort)
			}
			if u.Direction != nil && *u.Direction == "desc" {
				dir = model.SortDesc
			} else if u.Direction != nil {
				dir = model.SortAsc
			}
			ctrl.SetSort(mode, dir)
		}

		render.JSON(w, http.StatusOK, toPlayerRows(ctrl.Players()))
	}
}

func resetViewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl.ResetView()
		render.JSON(w, http.StatusOK, toPlayerRows(ctrl.Players()))
	}
}

type strategyEdit struct {
	Field    string `json:"field"` // maxBid | priority | notes
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

func editStrategyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		var edit strategyEdit
		if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		switch edit.Field {
		case "maxBid":
			ctrl.EditMaxBid(playerID, edit.Value)
		case "priority":
			ctrl.EditPriority(playerID, edit.Priority)
		case "notes":
			ctrl.EditNotes(playerID, edit.Value)
		default:
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown field: %s", edit.Field)})
			return
		}

		render.JSON(w, http.StatusOK, toDraftJSON(playerID, ctrl))
	}
}

func flushHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		if err := ctrl.FlushNow(r.Context(), playerID); err != nil {
			// The draft keeps its dirty value; this is a toast, not a 500.
			render.JSON(w, http.StatusOK, map[string]any{
				"saved": false,
				"error": err.Error(),
				"draft": toDraftJSON(playerID, ctrl),
			})
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"saved": true,
			"draft": toDraftJSON(playerID, ctrl),
		})
	}
}

type categoryEdit struct {
	Category *string `json:"category"`
}

func categoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		var edit categoryEdit
		if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.SetWatchlistCategory(r.Context(), playerID, edit.Category); err != nil {
			render.JSON(w, http.StatusOK, map[string]any{"saved": false, "error": err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"saved": true})
	}
}

func overviewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups := ctrl.Overview()
		resp := make([]map[string]any, 0, len(groups))
		for _, g := range groups {
			resp = append(resp, map[string]any{
				"category": g.Category,
				"players":  toPlayerRows(g.Players),
			})
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

func compareListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, toPlayerRows(ctrl.ComparisonPlayers()))
	}
}

func compareToggleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl.ToggleCompare(chi.URLParam(r, "playerID"))
		render.JSON(w, http.StatusOK, toPlayerRows(ctrl.ComparisonPlayers()))
	}
}

func compareClearHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl.ClearCompare()
		render.JSON(w, http.StatusOK, []any{})
	}
}

func reloadHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.Load(r.Context()); err != nil {
			render.JSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, toPlayerRows(ctrl.Players()))
	}
}

// playerRow is the JSON shape of a display-list row. The model types keep
// their fields tag-free for the engine; the web layer owns the wire shape.
type playerRow struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Team      string       `json:"team"`
	Position  string       `json:"position"`
	Age       int          `json:"age"`
	Quotation int          `json:"quotation"`
	Origin    string       `json:"origin"`
	Owner     *ownerJSON   `json:"owner,omitempty"`
	Contract  *contractRow `json:"contract,omitempty"`
	Category  string       `json:"category,omitempty"`
	Draft     draftJSON    `json:"draft"`
	SaveError string       `json:"saveError,omitempty"`
}

type ownerJSON struct {
	MemberID  string `json:"memberId"`
	Name      string `json:"name"`
	TurnOrder int    `json:"turnOrder,omitempty"`
}

type contractRow struct {
	Salary      int `json:"salary"`
	Years       int `json:"years"`
	ClausePrice int `json:"clausePrice"`
}

type draftJSON struct {
	MaxBid   string `json:"maxBid"`
	Priority int    `json:"priority"`
	Notes    string `json:"notes"`
	Dirty    bool   `json:"dirty"`
	Saving   bool   `json:"saving"`
}

func toPlayerRows(players []controller.DisplayPlayer) []playerRow {
	rows := make([]playerRow, 0, len(players))
	for _, p := range players {
		team := ""
		if p.Team != nil {
			team = p.Team.String()
		}
		row := playerRow{
			ID:        p.ID,
			Name:      p.Name,
			Team:      team,
			Position:  string(p.Position),
			Age:       p.Age,
			Quotation: p.Quotation,
			Origin:    string(p.Origin),
			Category:  p.Strategy.CategoryValue(),
			SaveError: p.SaveError,
			Draft: draftJSON{
				MaxBid:   p.Draft.MaxBid,
				Priority: p.Draft.Priority,
				Notes:    p.Draft.Notes,
				Dirty:    p.Draft.IsDirty(),
				Saving:   p.Draft.IsSaving(),
			},
		}
		if p.Owner != nil {
			row.Owner = &ownerJSON{
				MemberID:  p.Owner.MemberID,
				Name:      p.Owner.DisplayName(),
				TurnOrder: p.Owner.TurnOrder,
			}
		}
		if p.Contract != nil {
			row.Contract = &contractRow{
				Salary:      p.Contract.Salary,
				Years:       p.Contract.Years,
				ClausePrice: p.Contract.ClausePrice,
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func toDraftJSON(playerID string, ctrl controller.C) draftJSON {
	d := ctrl.Draft(playerID)
	return draftJSON{
		MaxBid:   d.MaxBid,
		Priority: d.Priority,
		Notes:    d.Notes,
		Dirty:    d.IsDirty(),
		Saving:   d.IsSaving(),
	}
}
