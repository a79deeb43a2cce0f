package usecase

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/riskibarqy/football-registry/internal/domain/validation"
)

// Values the postgres columns cannot hold must be rejected as input, not
// surface later as storage failures.
func TestCreate_RejectsValuesOutsideColumnLimits(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Real Madrid", "Spain")
	otherID := svc.mustCreateTeam(t, "Barcelona", "Spain")
	tooLong := strings.Repeat("A", validation.MaxNameLength+1)

	tests := []struct {
		name string
		run  func() error
	}{
		{"team country", func() error {
			_, err := svc.teams.Create(t.Context(), TeamInput{Name: "Ajax", Country: tooLong})
			return err
		}},
		{"player name", func() error {
			_, err := svc.players.Create(t.Context(), PlayerInput{
				Name: tooLong, Surname: "Modric", BirthDate: "1985-09-09", Country: "Croatia",
				Position: "Midfielder", TeamID: strconv.FormatInt(teamID, 10),
			})
			return err
		}},
		{"player surname", func() error {
			_, err := svc.players.Create(t.Context(), PlayerInput{
				Name: "Luka", Surname: tooLong, BirthDate: "1985-09-09", Country: "Croatia",
				Position: "Midfielder", TeamID: strconv.FormatInt(teamID, 10),
			})
			return err
		}},
		{"match date year zero", func() error {
			_, err := svc.matches.Create(t.Context(), MatchInput{
				Team1ID: strconv.FormatInt(teamID, 10), Team2ID: strconv.FormatInt(otherID, 10),
				MatchDate: "0000-01-01", Tournament: "La Liga",
			})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if errors.Is(err, ErrStorage) {
				t.Fatalf("expected no storage failure, got %v", err)
			}
		})
	}

	teams, err := svc.teams.List(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected rejected team to stay unstored, got %d teams", len(teams))
	}
}
