package usecase

import (
	"errors"
	"strconv"
	"testing"

	"github.com/riskibarqy/football-registry/internal/domain/validation"
)

func TestTeamService_CreateThenGet(t *testing.T) {
	svc := newServices(t)

	created, err := svc.teams.Create(t.Context(), TeamInput{Name: "Schalke 04", Country: "Germany"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected generated id, got %d", created.ID)
	}

	got, err := svc.teams.Get(t.Context(), strconv.FormatInt(created.ID, 10))
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got != created {
		t.Fatalf("unexpected team: got=%+v want=%+v", got, created)
	}
}

func TestTeamService_CreateRejectsInvalidFields(t *testing.T) {
	svc := newServices(t)

	tests := []struct {
		name  string
		input TeamInput
		field string
	}{
		{name: "empty name", input: TeamInput{Name: "", Country: "Spain"}, field: "team name"},
		{name: "digits only", input: TeamInput{Name: "1860", Country: "Germany"}, field: "team name"},
		{name: "country with digit", input: TeamInput{Name: "Ajax", Country: "Holland2"}, field: "country"},
		{name: "country trailing space", input: TeamInput{Name: "Ajax", Country: "Netherlands "}, field: "country"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.teams.Create(t.Context(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var fieldErr *validation.FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != tc.field {
				t.Fatalf("expected field error on %q, got %v", tc.field, err)
			}
		})
	}

	teams, err := svc.teams.List(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no teams to be stored, got %d", len(teams))
	}
}

func TestTeamService_UpdateMergesBlankFields(t *testing.T) {
	svc := newServices(t)
	id := svc.mustCreateTeam(t, "Zenit", "Russia")

	updated, err := svc.teams.Update(t.Context(), strconv.FormatInt(id, 10), TeamInput{Name: "  ", Country: "Россия"})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated.Name != "Zenit" || updated.Country != "Россия" || updated.ID != id {
		t.Fatalf("unexpected merged team: %+v", updated)
	}
}

func TestTeamService_UpdateMissingTeam(t *testing.T) {
	svc := newServices(t)

	if _, err := svc.teams.Update(t.Context(), "42", TeamInput{Name: "Ajax"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_GetMalformedIDIsNotFound(t *testing.T) {
	svc := newServices(t)

	for _, raw := range []string{"abc", "1.5", "-3", "0", ""} {
		if _, err := svc.teams.Get(t.Context(), raw); !errors.Is(err, ErrNotFound) {
			t.Fatalf("id %q: expected ErrNotFound, got %v", raw, err)
		}
	}
}

func TestTeamService_DeleteReferencedTeam(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Real Madrid", "Spain")
	rawTeamID := strconv.FormatInt(teamID, 10)

	if _, err := svc.players.Create(t.Context(), PlayerInput{
		Name:      "Luka",
		Surname:   "Modric",
		BirthDate: "1985-09-09",
		Country:   "Croatia",
		Position:  "Midfielder",
		TeamID:    rawTeamID,
	}); err != nil {
		t.Fatalf("create player: %v", err)
	}

	if err := svc.teams.Delete(t.Context(), rawTeamID); !errors.Is(err, ErrReference) {
		t.Fatalf("expected ErrReference, got %v", err)
	}

	exists, err := svc.teams.TeamExists(t.Context(), teamID)
	if err != nil || !exists {
		t.Fatalf("expected team to survive refused delete: exists=%v err=%v", exists, err)
	}
}

func TestTeamService_DeleteAndExists(t *testing.T) {
	svc := newServices(t)
	teamID := svc.mustCreateTeam(t, "Ajax", "Netherlands")

	if err := svc.teams.Delete(t.Context(), strconv.FormatInt(teamID, 10)); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	exists, err := svc.teams.TeamExists(t.Context(), teamID)
	if err != nil || exists {
		t.Fatalf("expected team to be gone: exists=%v err=%v", exists, err)
	}
	if err := svc.teams.Delete(t.Context(), strconv.FormatInt(teamID, 10)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTeamService_DeleteManyPartitions(t *testing.T) {
	svc := newServices(t)
	a := svc.mustCreateTeam(t, "Ajax", "Netherlands")
	b := svc.mustCreateTeam(t, "Valencia", "Spain")

	result, err := svc.teams.DeleteMany(t.Context(), []string{
		strconv.FormatInt(a, 10),
		" 99 ",
		"x1",
		strconv.FormatInt(a, 10),
		strconv.FormatInt(b, 10),
	})
	if err != nil {
		t.Fatalf("delete many: %v", err)
	}
	if len(result.Deleted) != 2 || result.Deleted[0] != a || result.Deleted[1] != b {
		t.Fatalf("unexpected deleted ids: %+v", result.Deleted)
	}
	if len(result.NotFound) != 2 || result.NotFound[0] != "99" || result.NotFound[1] != "x1" {
		t.Fatalf("unexpected not found ids: %+v", result.NotFound)
	}

	teams, _ := svc.teams.List(t.Context())
	if len(teams) != 0 {
		t.Fatalf("expected all teams deleted, got %+v", teams)
	}
}
