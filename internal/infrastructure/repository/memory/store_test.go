package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/team"
)

func mustInsertTeam(t *testing.T, store *Store, name string) int64 {
	t.Helper()
	id, err := store.Teams().Insert(context.Background(), team.Team{Name: name, Country: "Spain"})
	if err != nil {
		t.Fatalf("insert team %s: %v", name, err)
	}
	return id
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	mustInsertTeam(t, store, "Real Madrid")

	failure := errors.New("abort")
	err := store.WithinTx(ctx, func(tx storage.Store) error {
		if _, err := tx.Teams().Insert(ctx, team.Team{Name: "Barcelona", Country: "Spain"}); err != nil {
			t.Fatalf("insert inside tx: %v", err)
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected tx error to surface, got %v", err)
	}

	teams, err := store.Teams().List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Real Madrid" {
		t.Fatalf("expected rollback to keep one team, got %+v", teams)
	}

	id := mustInsertTeam(t, store, "Valencia")
	if id != 2 {
		t.Fatalf("expected id sequence to be restored, got %d", id)
	}
}

func TestWithinTx_NestedReusesTransaction(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.WithinTx(ctx, func(tx storage.Store) error {
		return tx.WithinTx(ctx, func(inner storage.Store) error {
			_, err := inner.Teams().Insert(ctx, team.Team{Name: "Ajax", Country: "Netherlands"})
			return err
		})
	})
	if err != nil {
		t.Fatalf("nested tx: %v", err)
	}

	count, err := store.Teams().CountByID(ctx, 1)
	if err != nil || count != 1 {
		t.Fatalf("expected committed team, got count=%d err=%v", count, err)
	}
}

func TestPlayerRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	teamID := mustInsertTeam(t, store, "Real Madrid")

	item := player.Player{
		Name:      "Luka",
		Surname:   "Modric",
		BirthDate: time.Date(1985, time.September, 9, 0, 0, 0, 0, time.UTC),
		Country:   "Croatia",
		Position:  player.PositionMidfielder,
		TeamID:    teamID,
	}
	id, err := store.Players().Insert(ctx, item)
	if err != nil {
		t.Fatalf("insert player: %v", err)
	}

	upper := item
	upper.Name, upper.Surname, upper.Country = "LUKA", "MODRIC", "croatia"
	if _, err := store.Players().Insert(ctx, upper); !errors.Is(err, player.ErrDuplicate) {
		t.Fatalf("expected case-insensitive duplicate, got %v", err)
	}

	count, err := store.Players().CountDuplicates(ctx, upper.Identity(), 0)
	if err != nil || count != 1 {
		t.Fatalf("expected one duplicate, got count=%d err=%v", count, err)
	}
	count, err = store.Players().CountDuplicates(ctx, upper.Identity(), id)
	if err != nil || count != 0 {
		t.Fatalf("expected self to be excluded, got count=%d err=%v", count, err)
	}

	orphan := item
	orphan.Surname = "Other"
	orphan.TeamID = 99
	if _, err := store.Players().Insert(ctx, orphan); !errors.Is(err, player.ErrUnknownTeam) {
		t.Fatalf("expected unknown team, got %v", err)
	}

	got, ok, err := store.Players().GetByID(ctx, id)
	if err != nil || !ok {
		t.Fatalf("get player: ok=%v err=%v", ok, err)
	}
	if got.TeamName != "Real Madrid" {
		t.Fatalf("expected joined team name, got %q", got.TeamName)
	}
}

func TestFoldIdentity_Cyrillic(t *testing.T) {
	born := time.Date(1995, time.May, 20, 0, 0, 0, 0, time.UTC)
	a := foldIdentity(player.Identity{Name: "Вячеслав", Surname: "Караваев", Country: "Россия", BirthDate: born})
	b := foldIdentity(player.Identity{Name: "ВЯЧЕСЛАВ", Surname: "караваев", Country: "РОССИЯ", BirthDate: born})
	if a != b {
		t.Fatalf("expected folded identities to match: %+v vs %+v", a, b)
	}
}

func TestMatchRepository_OverlapIgnoresOrientation(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	a := mustInsertTeam(t, store, "Real Madrid")
	b := mustInsertTeam(t, store, "Barcelona")
	played := time.Date(2024, time.April, 21, 0, 0, 0, 0, time.UTC)

	id, err := store.Matches().Insert(ctx, match.Match{Team1ID: a, Team2ID: b, MatchDate: played, Tournament: "La Liga"})
	if err != nil {
		t.Fatalf("insert match: %v", err)
	}

	reversed := match.Match{Team1ID: b, Team2ID: a, MatchDate: played, Tournament: "Cup"}
	if _, err := store.Matches().Insert(ctx, reversed); !errors.Is(err, match.ErrDuplicate) {
		t.Fatalf("expected reversed pairing to be a duplicate, got %v", err)
	}

	count, err := store.Matches().CountOverlapping(ctx, reversed.Pairing(), 0)
	if err != nil || count != 1 {
		t.Fatalf("expected one overlap, got count=%d err=%v", count, err)
	}
	count, err = store.Matches().CountOverlapping(ctx, reversed.Pairing(), id)
	if err != nil || count != 0 {
		t.Fatalf("expected self to be excluded, got count=%d err=%v", count, err)
	}

	nextDay := reversed
	nextDay.MatchDate = played.AddDate(0, 0, 1)
	if _, err := store.Matches().Insert(ctx, nextDay); err != nil {
		t.Fatalf("expected a different date to be accepted, got %v", err)
	}

	got, ok, err := store.Matches().GetByID(ctx, id)
	if err != nil || !ok {
		t.Fatalf("get match: ok=%v err=%v", ok, err)
	}
	if got.Team1Name != "Real Madrid" || got.Team2Name != "Barcelona" {
		t.Fatalf("unexpected joined names: %q %q", got.Team1Name, got.Team2Name)
	}
}

func TestTeamRepository_DeleteRestrictedWhenReferenced(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	a := mustInsertTeam(t, store, "Real Madrid")
	b := mustInsertTeam(t, store, "Barcelona")
	c := mustInsertTeam(t, store, "Valencia")

	if _, err := store.Matches().Insert(ctx, match.Match{
		Team1ID:    a,
		Team2ID:    b,
		MatchDate:  time.Date(2024, time.April, 21, 0, 0, 0, 0, time.UTC),
		Tournament: "La Liga",
	}); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	if err := store.Teams().DeleteByIDs(ctx, []int64{c, b}); !errors.Is(err, team.ErrStillReferenced) {
		t.Fatalf("expected still referenced, got %v", err)
	}
	if count, _ := store.Teams().CountByID(ctx, c); count != 1 {
		t.Fatalf("expected refused batch to delete nothing")
	}

	if err := store.Teams().DeleteByID(ctx, c); err != nil {
		t.Fatalf("delete unreferenced team: %v", err)
	}
}

func TestInsert_RejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	if _, err := store.Teams().Insert(ctx, team.Team{Name: " ", Country: "Spain"}); err == nil {
		t.Fatalf("expected blank team name to be rejected")
	}
	teamID := mustInsertTeam(t, store, "Real Madrid")

	if _, err := store.Players().Insert(ctx, player.Player{
		Name:      "Luka",
		Surname:   "Modric",
		BirthDate: time.Date(1985, time.September, 9, 0, 0, 0, 0, time.UTC),
		Country:   "Croatia",
		Position:  player.Position("Striker"),
		TeamID:    teamID,
	}); err == nil {
		t.Fatalf("expected unknown position to be rejected")
	}

	if _, err := store.Matches().Insert(ctx, match.Match{
		Team1ID:    teamID,
		Team2ID:    teamID,
		MatchDate:  time.Date(2024, time.April, 21, 0, 0, 0, 0, time.UTC),
		Tournament: "La Liga",
	}); err == nil {
		t.Fatalf("expected a team playing itself to be rejected")
	}

	if id := mustInsertTeam(t, store, "Barcelona"); id != 2 {
		t.Fatalf("expected rejected inserts not to consume ids, got %d", id)
	}
}
