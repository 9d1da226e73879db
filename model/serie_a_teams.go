package model

import (
	"strings"
)

// SerieATeam is a real-world club a player belongs to. Instances are
// package-level singletons so they can be compared by pointer.
type SerieATeam struct {
	code string
	city string
	nick []string // Other names used for the club, e.g. Viola for FIO
}

func (t *SerieATeam) String() string {
	return t.code
}

func (t *SerieATeam) Friendly() string {
	if t.city == "" {
		return t.code
	}
	return t.city
}

var (
	TEAM_SVINC *SerieATeam = &SerieATeam{code: "SVINC", nick: []string{"svincolato"}}

	TEAM_ATA *SerieATeam = &SerieATeam{code: "ATA", city: "Atalanta", nick: []string{"Dea"}}
	TEAM_BOL *SerieATeam = &SerieATeam{code: "BOL", city: "Bologna"}
	TEAM_CAG *SerieATeam = &SerieATeam{code: "CAG", city: "Cagliari"}
	TEAM_COM *SerieATeam = &SerieATeam{code: "COM", city: "Como"}
	TEAM_EMP *SerieATeam = &SerieATeam{code: "EMP", city: "Empoli"}
	TEAM_FIO *SerieATeam = &SerieATeam{code: "FIO", city: "Fiorentina", nick: []string{"Viola"}}
	TEAM_GEN *SerieATeam = &SerieATeam{code: "GEN", city: "Genoa", nick: []string{"Grifone"}}
	TEAM_INT *SerieATeam = &SerieATeam{code: "INT", city: "Inter", nick: []string{"Nerazzurri"}}
	TEAM_JUV *SerieATeam = &SerieATeam{code: "JUV", city: "Juventus", nick: []string{"Juve", "Bianconeri"}}
	TEAM_LAZ *SerieATeam = &SerieATeam{code: "LAZ", city: "Lazio"}
	TEAM_LEC *SerieATeam = &SerieATeam{code: "LEC", city: "Lecce"}
	TEAM_MIL *SerieATeam = &SerieATeam{code: "MIL", city: "Milan", nick: []string{"Rossoneri"}}
	TEAM_MON *SerieATeam = &SerieATeam{code: "MON", city: "Monza"}
	TEAM_NAP *SerieATeam = &SerieATeam{code: "NAP", city: "Napoli", nick: []string{"Partenopei"}}
	TEAM_PAR *SerieATeam = &SerieATeam{code: "PAR", city: "Parma"}
	TEAM_ROM *SerieATeam = &SerieATeam{code: "ROM", city: "Roma", nick: []string{"Giallorossi"}}
	TEAM_TOR *SerieATeam = &SerieATeam{code: "TOR", city: "Torino", nick: []string{"Toro"}}
	TEAM_UDI *SerieATeam = &SerieATeam{code: "UDI", city: "Udinese"}
	TEAM_VEN *SerieATeam = &SerieATeam{code: "VEN", city: "Venezia"}
	TEAM_VER *SerieATeam = &SerieATeam{code: "VER", city: "Verona", nick: []string{"Hellas"}}

	teamMap map[string]*SerieATeam = buildTeamMap()
)

// ParseTeam looks a club up by code, city, or nickname. Anything
// unrecognized maps to TEAM_SVINC (free agent).
func ParseTeam(name string) *SerieATeam {
	t := teamMap[strings.ToLower(name)]
	if t == nil {
		return TEAM_SVINC
	}
	return t
}

func buildTeamMap() map[string]*SerieATeam {
	teams := []*SerieATeam{
		TEAM_ATA, TEAM_BOL, TEAM_CAG, TEAM_COM, TEAM_EMP, TEAM_FIO, TEAM_GEN,
		TEAM_INT, TEAM_JUV, TEAM_LAZ, TEAM_LEC, TEAM_MIL, TEAM_MON, TEAM_NAP,
		TEAM_PAR, TEAM_ROM, TEAM_TOR, TEAM_UDI, TEAM_VEN, TEAM_VER,
		// Other
		TEAM_SVINC,
	}

	teamMap := make(map[string]*SerieATeam)
	for _, t := range teams {
		teamMap[strings.ToLower(t.code)] = t

		if t.city != "" {
			teamMap[strings.ToLower(t.city)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	return teamMap
}
