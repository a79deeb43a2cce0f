package usecase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type services struct {
	store   *memory.Store
	teams   *TeamService
	players *PlayerService
	matches *MatchService
}

func newServices(t *testing.T) services {
	t.Helper()

	store := memory.NewStore()
	checker := validation.NewChecker(clockwork.NewFakeClockAt(testNow), validation.WithLocation(time.UTC))
	logger := logging.NewNop()

	return services{
		store:   store,
		teams:   NewTeamService(store, checker, logger),
		players: NewPlayerService(store, checker, logger),
		matches: NewMatchService(store, checker, logger),
	}
}

func newChecker() *validation.Checker {
	return validation.NewChecker(clockwork.NewFakeClockAt(testNow), validation.WithLocation(time.UTC))
}

func (s services) mustCreateTeam(t *testing.T, name, country string) int64 {
	t.Helper()
	created, err := s.teams.Create(t.Context(), TeamInput{Name: name, Country: country})
	if err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return created.ID
}
