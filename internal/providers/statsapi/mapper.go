package statsapi

import (
	"strconv"

	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
	"mlb-pitch-sim/internal/domain/teams"
)

func mapTeam(t teamRecord) teams.Team {
	return teams.Team{
		ID:            strconv.Itoa(t.ID),
		Name:          t.Name,
		FranchiseName: t.FranchiseName,
		ClubName:      t.ClubName,
		Abbreviation:  t.Abbreviation,
	}
}

func mapTeams(records []teamRecord) []teams.Team {
	out := make([]teams.Team, 0, len(records))
	for _, r := range records {
		out = append(out, mapTeam(r))
	}
	return out
}

// mapPitches flattens the play list into pitch records. The running
// score-before values update only at at-bat boundaries: every pitch of at-bat
// k carries the post-score of at-bat k-1, seeded at 0-0 for the first.
func mapPitches(plays []play, game games.Game) []pitches.Pitch {
	var out []pitches.Pitch
	homeBefore, awayBefore := 0, 0

	for _, p := range plays {
		if p.Result.Type != atBatPlayType {
			continue
		}

		for _, ev := range p.PlayEvents {
			if !ev.IsPitch {
				continue
			}
			out = append(out, pitches.Pitch{
				PitcherName:      p.Matchup.Pitcher.FullName,
				PitcherHand:      p.Matchup.PitchHand.Code,
				BatterName:       p.Matchup.Batter.FullName,
				BatterHand:       p.Matchup.BatSide.Code,
				Result:           ev.Details.Call.Description,
				PitchType:        ev.Details.Type.Description,
				BallsBefore:      ev.Count.Balls,
				StrikesBefore:    ev.Count.Strikes,
				OutsBefore:       ev.Count.Outs,
				Data:             ev.PitchData,
				HalfInning:       p.About.HalfInning,
				Inning:           p.About.Inning,
				HomeScoreBefore:  homeBefore,
				AwayScoreBefore:  awayBefore,
				HomeAbbreviation: game.HomeTeam.Abbreviation,
				AwayAbbreviation: game.AwayTeam.Abbreviation,
			})
		}

		if p.Result.HomeScore != nil {
			homeBefore = *p.Result.HomeScore
		}
		if p.Result.AwayScore != nil {
			awayBefore = *p.Result.AwayScore
		}
	}

	return out
}
