package usecase

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/team"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
)

// isBlank reports whether a raw field was left unset by the caller.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func keep(candidate, stored string) string {
	if isBlank(candidate) {
		return stored
	}
	return candidate
}

func mergeTeamInput(in TeamInput, stored team.Team) TeamInput {
	return TeamInput{
		Name:    keep(in.Name, stored.Name),
		Country: keep(in.Country, stored.Country),
	}
}

func mergePlayerInput(in PlayerInput, stored player.Player) PlayerInput {
	return PlayerInput{
		Name:      keep(in.Name, stored.Name),
		Surname:   keep(in.Surname, stored.Surname),
		BirthDate: keep(in.BirthDate, stored.BirthDate.Format(validation.DateLayout)),
		Country:   keep(in.Country, stored.Country),
		Position:  keep(in.Position, string(stored.Position)),
		TeamID:    keep(in.TeamID, strconv.FormatInt(stored.TeamID, 10)),
	}
}

// mergeMatchInput keeps "0" goals as a supplied value; only blank inherits.
func mergeMatchInput(in MatchInput, stored match.Match) MatchInput {
	return MatchInput{
		Team1ID:    keep(in.Team1ID, strconv.FormatInt(stored.Team1ID, 10)),
		Team2ID:    keep(in.Team2ID, strconv.FormatInt(stored.Team2ID, 10)),
		Team1Goals: keep(in.Team1Goals, strconv.Itoa(stored.Team1Goals)),
		Team2Goals: keep(in.Team2Goals, strconv.Itoa(stored.Team2Goals)),
		MatchDate:  keep(in.MatchDate, stored.MatchDate.Format(validation.DateLayout)),
		Tournament: keep(in.Tournament, stored.Tournament),
	}
}
