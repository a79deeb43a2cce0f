package usecase

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
	storagemock "github.com/riskibarqy/football-registry/internal/mocks/domain/storage"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

func validPlayerInput(teamID int64) PlayerInput {
	return PlayerInput{
		Name:      "Luka",
		Surname:   "Modric",
		BirthDate: "1985-09-09",
		Country:   "Croatia",
		Position:  "Midfielder",
		TeamID:    strconv.FormatInt(teamID, 10),
	}
}

func TestPlayerService_CreateThenGet(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Real Madrid", "Spain")

	created, err := svc.players.Create(t.Context(), validPlayerInput(teamID))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	got, err := svc.players.Get(t.Context(), strconv.FormatInt(created.ID, 10))
	if err != nil {
		t.Fatalf("get player: %v", err)
	}

	want := player.Player{
		ID:        created.ID,
		Name:      "Luka",
		Surname:   "Modric",
		BirthDate: time.Date(1985, time.September, 9, 0, 0, 0, 0, time.UTC),
		Country:   "Croatia",
		Position:  player.PositionMidfielder,
		TeamID:    teamID,
		TeamName:  "Real Madrid",
	}
	if !got.BirthDate.Equal(want.BirthDate) {
		t.Fatalf("unexpected birth date: got=%v want=%v", got.BirthDate, want.BirthDate)
	}
	got.BirthDate = want.BirthDate
	if got != want {
		t.Fatalf("unexpected player:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestPlayerService_CreateDuplicateIgnoresCase(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Real Madrid", "Spain")

	if _, err := svc.players.Create(t.Context(), validPlayerInput(teamID)); err != nil {
		t.Fatalf("create player: %v", err)
	}

	swapped := validPlayerInput(teamID)
	swapped.Name, swapped.Surname, swapped.Country = "LUKA", "modric", "CROATIA"
	swapped.Position = "Forward"
	if _, err := svc.players.Create(t.Context(), swapped); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	otherBirthday := validPlayerInput(teamID)
	otherBirthday.BirthDate = "1985-09-10"
	if _, err := svc.players.Create(t.Context(), otherBirthday); err != nil {
		t.Fatalf("expected different birth date to be accepted, got %v", err)
	}
}

func TestPlayerService_CreateUnknownTeam(t *testing.T) {
	svc := newServices(t)

	_, err := svc.players.Create(t.Context(), validPlayerInput(77))
	if !errors.Is(err, ErrReference) {
		t.Fatalf("expected ErrReference, got %v", err)
	}
}

func TestPlayerService_InvalidFieldsNeverReachStorage(t *testing.T) {
	store := storagemock.NewStore(t)
	service := NewPlayerService(store, newChecker(), logging.NewNop())

	tests := []struct {
		name   string
		mutate func(*PlayerInput)
		field  string
	}{
		{name: "team id not numeric", mutate: func(in *PlayerInput) { in.TeamID = "12a" }, field: "team id"},
		{name: "position lower case", mutate: func(in *PlayerInput) { in.Position = "forward" }, field: "position"},
		{name: "name with digit", mutate: func(in *PlayerInput) { in.Name = "Luka7" }, field: "name"},
		{name: "surname leading space", mutate: func(in *PlayerInput) { in.Surname = " Modric" }, field: "surname"},
		{name: "birth date not a date", mutate: func(in *PlayerInput) { in.BirthDate = "2001-02-30" }, field: "birth date"},
		{name: "too young", mutate: func(in *PlayerInput) { in.BirthDate = "2010-10-17" }, field: "birth date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validPlayerInput(1)
			tc.mutate(&in)

			_, err := service.Create(t.Context(), in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var fieldErr *validation.FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != tc.field {
				t.Fatalf("expected field error on %q, got %v", tc.field, err)
			}
		})
	}
}

func TestPlayerService_MinimumAgeBoundary(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Ajax", "Netherlands")

	in := validPlayerInput(teamID)
	in.Name, in.Surname, in.BirthDate = "Jorrel", "Hato", "2010-10-16"
	if _, err := svc.players.Create(t.Context(), in); err != nil {
		t.Fatalf("expected player turning sixteen today to be accepted, got %v", err)
	}
}

func TestPlayerService_UpdateSingleField(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Real Madrid", "Spain")
	otherTeamID := svc.mustCreateTeam(t, "Dinamo Zagreb", "Croatia")

	created, err := svc.players.Create(t.Context(), validPlayerInput(teamID))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	rawID := strconv.FormatInt(created.ID, 10)

	updated, err := svc.players.Update(t.Context(), rawID, PlayerInput{TeamID: strconv.FormatInt(otherTeamID, 10)})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}

	want := created
	want.TeamID = otherTeamID
	want.TeamName = "Dinamo Zagreb"
	if updated != want {
		t.Fatalf("unexpected merged player:\n got=%+v\nwant=%+v", updated, want)
	}

	if _, err := svc.players.Update(t.Context(), rawID, PlayerInput{}); err != nil {
		t.Fatalf("expected all-blank update to keep record valid, got %v", err)
	}
}

func TestPlayerService_UpdateRevalidatesMergedRecord(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Real Madrid", "Spain")

	first, err := svc.players.Create(t.Context(), validPlayerInput(teamID))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	second := validPlayerInput(teamID)
	second.Name = "Toni"
	second.Surname = "Kroos"
	created, err := svc.players.Create(t.Context(), second)
	if err != nil {
		t.Fatalf("create second player: %v", err)
	}

	_, err = svc.players.Update(t.Context(), strconv.FormatInt(created.ID, 10), PlayerInput{Name: "luka", Surname: "MODRIC"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict when colliding with another player, got %v", err)
	}

	got, err := svc.players.Get(t.Context(), strconv.FormatInt(created.ID, 10))
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Name != "Toni" {
		t.Fatalf("expected rejected update to leave record untouched, got %+v", got)
	}

	if _, err := svc.players.Update(t.Context(), strconv.FormatInt(first.ID, 10), PlayerInput{Country: "Croatia"}); err != nil {
		t.Fatalf("expected self update not to conflict, got %v", err)
	}

	_, err = svc.players.Update(t.Context(), strconv.FormatInt(first.ID, 10), PlayerInput{TeamID: "999"})
	if !errors.Is(err, ErrReference) {
		t.Fatalf("expected ErrReference, got %v", err)
	}
}

func TestPlayerService_DeleteMany(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Real Madrid", "Spain")
	created, err := svc.players.Create(t.Context(), validPlayerInput(teamID))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	result, err := svc.players.DeleteMany(t.Context(), []string{strconv.FormatInt(created.ID, 10), "5"})
	if err != nil {
		t.Fatalf("delete many: %v", err)
	}
	if len(result.Deleted) != 1 || result.Deleted[0] != created.ID {
		t.Fatalf("unexpected deleted ids: %+v", result.Deleted)
	}
	if len(result.NotFound) != 1 || result.NotFound[0] != "5" {
		t.Fatalf("unexpected not found ids: %+v", result.NotFound)
	}
}
