package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/football-registry/internal/usecase"
)

// seedPlayer and seedMatch name their teams by position in seedTeams.
type seedPlayer struct {
	team  int
	input usecase.PlayerInput
}

type seedMatch struct {
	team1, team2 int
	input        usecase.MatchInput
}

var seedTeams = []usecase.TeamInput{
	{Name: "Real Madrid", Country: "Spain"},
	{Name: "Barcelona", Country: "Spain"},
	{Name: "Зенит", Country: "Россия"},
	{Name: "Спартак Москва", Country: "Россия"},
	{Name: "Ajax", Country: "Netherlands"},
	{Name: "Schalke 04", Country: "Germany"},
}

var seedPlayers = []seedPlayer{
	{0, usecase.PlayerInput{Name: "Thibaut", Surname: "Courtois", BirthDate: "1992-05-11", Country: "Belgium", Position: "Goalkeeper"}},
	{0, usecase.PlayerInput{Name: "Antonio", Surname: "Rudiger", BirthDate: "1993-03-03", Country: "Germany", Position: "Defender"}},
	{1, usecase.PlayerInput{Name: "Frenkie", Surname: "De Jong", BirthDate: "1997-05-12", Country: "Netherlands", Position: "Midfielder"}},
	{1, usecase.PlayerInput{Name: "Robert", Surname: "Lewandowski", BirthDate: "1988-08-21", Country: "Poland", Position: "Forward"}},
	{2, usecase.PlayerInput{Name: "Вячеслав", Surname: "Караваев", BirthDate: "1995-05-20", Country: "Россия", Position: "Defender"}},
	{3, usecase.PlayerInput{Name: "Александр", Surname: "Соболев", BirthDate: "1997-03-07", Country: "Россия", Position: "Forward"}},
	{4, usecase.PlayerInput{Name: "Jordan", Surname: "Henderson", BirthDate: "1990-06-17", Country: "England", Position: "Midfielder"}},
	{5, usecase.PlayerInput{Name: "Ralf", Surname: "Fahrmann", BirthDate: "1988-09-27", Country: "Germany", Position: "Goalkeeper"}},
}

var seedMatches = []seedMatch{
	{0, 1, usecase.MatchInput{Team1Goals: "3", Team2Goals: "2", MatchDate: "2024-04-21", Tournament: "La Liga"}},
	{1, 0, usecase.MatchInput{Team1Goals: "4", Team2Goals: "0", MatchDate: "2024-10-26", Tournament: "La Liga"}},
	{2, 3, usecase.MatchInput{Team1Goals: "1", Team2Goals: "1", MatchDate: "2024-08-04", Tournament: "Премьер-лига"}},
	{4, 5, usecase.MatchInput{Team1Goals: "2", Team2Goals: "0", MatchDate: "2023-07-15", Tournament: "Club Friendly 23"}},
}

// seedDemoData loads the demo data set through the services when no team is
// stored yet, so every record passes the same checks as typed input.
func seedDemoData(ctx context.Context, services usecaseServices) error {
	existing, err := services.teams.List(ctx)
	if err != nil {
		return fmt.Errorf("list teams for seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	teamIDs := make([]string, 0, len(seedTeams))
	for _, in := range seedTeams {
		created, err := services.teams.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed team %s: %w", in.Name, err)
		}
		teamIDs = append(teamIDs, strconv.FormatInt(created.ID, 10))
	}

	for _, p := range seedPlayers {
		in := p.input
		in.TeamID = teamIDs[p.team]
		if _, err := services.players.Create(ctx, in); err != nil {
			return fmt.Errorf("seed player %s %s: %w", in.Name, in.Surname, err)
		}
	}

	for _, m := range seedMatches {
		in := m.input
		in.Team1ID = teamIDs[m.team1]
		in.Team2ID = teamIDs[m.team2]
		if _, err := services.matches.Create(ctx, in); err != nil {
			return fmt.Errorf("seed match %s: %w", in.Tournament, err)
		}
	}

	return nil
}

type usecaseServices struct {
	teams   *usecase.TeamService
	players *usecase.PlayerService
	matches *usecase.MatchService
}
