package teams

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// Team is the normalized shape of one club from the upstream directory.
// ID is an opaque identifier string and is never parsed numerically.
type Team struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FranchiseName string `json:"franchiseName"`
	ClubName      string `json:"clubName"`
	Abbreviation  string `json:"abbreviation"`
}

func (t Team) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Abbreviation)
}

// MatchesName reports whether the query names this team by its full name,
// franchise name, or club name. Both sides are title-cased before comparing,
// so "oakland athletics" matches "Oakland Athletics".
func (t Team) MatchesName(query string) bool {
	q := titleCaser.String(strings.ToLower(query))
	return q == t.Name || q == t.FranchiseName || q == t.ClubName
}

// Directory indexes teams by id for O(1) cross-referencing of schedule
// payloads against the team listing.
type Directory struct {
	teams []Team
	byID  map[string]Team
}

// NewDirectory builds a Directory preserving upstream listing order.
func NewDirectory(list []Team) *Directory {
	byID := make(map[string]Team, len(list))
	for _, t := range list {
		byID[t.ID] = t
	}
	return &Directory{teams: list, byID: byID}
}

// ByID looks a team up by its opaque id.
func (d *Directory) ByID(id string) (Team, bool) {
	t, ok := d.byID[id]
	return t, ok
}

// ByName returns the first team (in upstream listing order) matching the
// query by any of its three name fields.
func (d *Directory) ByName(query string) (Team, bool) {
	for _, t := range d.teams {
		if t.MatchesName(query) {
			return t, true
		}
	}
	return Team{}, false
}

// Len returns the number of teams in the directory.
func (d *Directory) Len() int {
	return len(d.teams)
}
