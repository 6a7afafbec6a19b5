package pitches

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Data is the open-ended bag of raw physical measurements recorded for one
// pitch. The upstream schema adds and omits keys independently of this
// program, so it is not modeled as a fixed struct. Accessors report absence
// explicitly; a missing key is never a zero.
type Data map[string]any

// Float64 returns the numeric value at key. JSON numbers decode as float64.
func (d Data) Float64(key string) (float64, bool) {
	if d == nil {
		return 0, false
	}
	v, ok := d[key].(float64)
	return v, ok
}

// Sub returns the nested object at key, e.g. "coordinates" or "breaks".
func (d Data) Sub(key string) (Data, bool) {
	if d == nil {
		return nil, false
	}
	switch v := d[key].(type) {
	case Data:
		return v, true
	case map[string]any:
		return Data(v), true
	default:
		return nil, false
	}
}

var halfCaser = cases.Title(language.AmericanEnglish)

// Pitch flattens one pitch-level event with its at-bat context. The *Before
// fields hold the count and score as they stood before this pitch was thrown.
type Pitch struct {
	PitcherName      string `json:"pitcherName"`
	PitcherHand      string `json:"pitcherHand"`
	BatterName       string `json:"batterName"`
	BatterHand       string `json:"batterHand"`
	Result           string `json:"result"`
	PitchType        string `json:"pitchType"`
	BallsBefore      int    `json:"ballsBefore"`
	StrikesBefore    int    `json:"strikesBefore"`
	OutsBefore       int    `json:"outsBefore"`
	Data             Data   `json:"pitchData"`
	HalfInning       string `json:"halfInning"`
	Inning           int    `json:"inning"`
	HomeScoreBefore  int    `json:"homeScoreBefore"`
	AwayScoreBefore  int    `json:"awayScoreBefore"`
	HomeAbbreviation string `json:"homeAbbreviation"`
	AwayAbbreviation string `json:"awayAbbreviation"`
}

// StartSpeedMPH returns the pitch's release speed rounded to the nearest MPH.
func (p Pitch) StartSpeedMPH() (int, bool) {
	speed, ok := p.Data.Float64("startSpeed")
	if !ok {
		return 0, false
	}
	return int(math.Round(speed)), true
}

// HalfDisplay renders the half inning as "Top" or "Bot".
func (p Pitch) HalfDisplay() string {
	titled := halfCaser.String(p.HalfInning)
	if len(titled) > 3 {
		titled = titled[:3]
	}
	return titled
}

func (p Pitch) String() string {
	speed := "?"
	if mph, ok := p.StartSpeedMPH(); ok {
		speed = fmt.Sprintf("%d", mph)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d | ", p.HalfDisplay(), p.Inning)
	fmt.Fprintf(&b, "%s %d - %s %d | ", p.HomeAbbreviation, p.HomeScoreBefore, p.AwayAbbreviation, p.AwayScoreBefore)
	fmt.Fprintf(&b, "%d Outs | ", p.OutsBefore)
	fmt.Fprintf(&b, "%d-%d Count | ", p.BallsBefore, p.StrikesBefore)
	fmt.Fprintf(&b, "%s (%s MPH) | %s | ", p.PitchType, speed, p.Result)
	fmt.Fprintf(&b, "%s (%sHP) vs %s (%sHB)", p.PitcherName, p.PitcherHand, p.BatterName, p.BatterHand)
	return b.String()
}
