package statsapi

import "mlb-pitch-sim/internal/domain/pitches"

const providerName = "statsapi"

// Wire shapes for the three statsapi endpoints. Optional scores are pointers
// so a missing score is distinguishable from 0-0.

type teamsResponse struct {
	Teams []teamRecord `json:"teams"`
}

type teamRecord struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	FranchiseName string `json:"franchiseName"`
	ClubName      string `json:"clubName"`
	Abbreviation  string `json:"abbreviation"`
}

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	Link         string        `json:"link"`
	OfficialDate string        `json:"officialDate"`
	Teams        scheduleTeams `json:"teams"`
}

type scheduleTeams struct {
	Away scheduleSide `json:"away"`
	Home scheduleSide `json:"home"`
}

type scheduleSide struct {
	Score *int    `json:"score"`
	Team  teamRef `json:"team"`
}

type teamRef struct {
	ID int `json:"id"`
}

// Live feed. The nested levels are pointers so a structural mismatch is
// detectable instead of silently decoding to empty values.

type feedResponse struct {
	LiveData *liveData `json:"liveData"`
}

type liveData struct {
	Plays *playList `json:"plays"`
}

type playList struct {
	AllPlays *[]play `json:"allPlays"`
}

type play struct {
	Result     playResult  `json:"result"`
	About      playAbout   `json:"about"`
	Matchup    playMatchup `json:"matchup"`
	PlayEvents []playEvent `json:"playEvents"`
}

type playResult struct {
	Type      string `json:"type"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
}

type playAbout struct {
	HalfInning string `json:"halfInning"`
	Inning     int    `json:"inning"`
}

type playMatchup struct {
	Batter    personRef `json:"batter"`
	Pitcher   personRef `json:"pitcher"`
	BatSide   codeRef   `json:"batSide"`
	PitchHand codeRef   `json:"pitchHand"`
}

type personRef struct {
	FullName string `json:"fullName"`
}

type codeRef struct {
	Code string `json:"code"`
}

type playEvent struct {
	IsPitch   bool         `json:"isPitch"`
	Details   eventDetails `json:"details"`
	Count     eventCount   `json:"count"`
	PitchData pitches.Data `json:"pitchData"`
}

type eventDetails struct {
	Call descriptionRef `json:"call"`
	Type descriptionRef `json:"type"`
}

type descriptionRef struct {
	Description string `json:"description"`
}

type eventCount struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
	Outs    int `json:"outs"`
}
