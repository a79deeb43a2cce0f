package console

import (
	"strconv"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/team"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
)

var (
	teamHeaders   = []string{"team_id", "name", "country"}
	playerHeaders = []string{"player_id", "name", "surname", "birth_date", "country", "position", "team_id", "team_name"}
	matchHeaders  = []string{"match_id", "team_1_id", "team_2_id", "team_1_name", "team_2_name", "team_1_goals", "team_2_goals", "match_date", "tournament"}
)

func teamTable(items ...team.Team) Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Name,
			item.Country,
		})
	}
	return Table{Headers: teamHeaders, Rows: rows}
}

func playerTable(items ...player.Player) Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Name,
			item.Surname,
			item.BirthDate.Format(validation.DateLayout),
			item.Country,
			string(item.Position),
			formatID(item.TeamID),
			item.TeamName,
		})
	}
	return Table{Headers: playerHeaders, Rows: rows}
}

func matchTable(items ...match.Match) Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			formatID(item.Team1ID),
			formatID(item.Team2ID),
			item.Team1Name,
			item.Team2Name,
			strconv.Itoa(item.Team1Goals),
			strconv.Itoa(item.Team2Goals),
			item.MatchDate.Format(validation.DateLayout),
			item.Tournament,
		})
	}
	return Table{Headers: matchHeaders, Rows: rows}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
