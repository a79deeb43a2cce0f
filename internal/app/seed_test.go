package app

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
	"github.com/riskibarqy/football-registry/internal/usecase"
)

func newSeedServices() usecaseServices {
	store := memory.NewStore()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))
	checker := validation.NewChecker(clock, validation.WithLocation(time.UTC))
	logger := logging.NewNop()

	return usecaseServices{
		teams:   usecase.NewTeamService(store, checker, logger),
		players: usecase.NewPlayerService(store, checker, logger),
		matches: usecase.NewMatchService(store, checker, logger),
	}
}

func TestSeedDemoData_IsIdempotent(t *testing.T) {
	svc := newSeedServices()

	if err := seedDemoData(t.Context(), svc); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := seedDemoData(t.Context(), svc); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	teams, _ := svc.teams.List(t.Context())
	players, _ := svc.players.List(t.Context())
	matches, _ := svc.matches.List(t.Context())
	if len(teams) != len(seedTeams) || len(players) != len(seedPlayers) || len(matches) != len(seedMatches) {
		t.Fatalf("unexpected seed sizes: teams=%d players=%d matches=%d", len(teams), len(players), len(matches))
	}

	for _, p := range players {
		if p.TeamName == "" {
			t.Fatalf("expected seeded player %s %s to reference a stored team", p.Name, p.Surname)
		}
	}
}

func TestSeedDemoData_SkipsNonEmptyStore(t *testing.T) {
	svc := newSeedServices()
	if _, err := svc.teams.Create(t.Context(), usecase.TeamInput{Name: "Ajax", Country: "Netherlands"}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	if err := seedDemoData(t.Context(), svc); err != nil {
		t.Fatalf("seed: %v", err)
	}

	teams, _ := svc.teams.List(t.Context())
	if len(teams) != 1 {
		t.Fatalf("expected existing data to be left alone, got %d teams", len(teams))
	}
}

// A seed record that fails validation aborts the seed with the service's
// input error instead of being written unchecked.
func TestSeedDemoData_ValidatesRecords(t *testing.T) {
	saved := seedTeams
	t.Cleanup(func() { seedTeams = saved })
	seedTeams = []usecase.TeamInput{{Name: "Ajax", Country: "Nether1ands"}}

	err := seedDemoData(t.Context(), newSeedServices())
	if err == nil {
		t.Fatalf("expected invalid seed team to be rejected")
	}
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
