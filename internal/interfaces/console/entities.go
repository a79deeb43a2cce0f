package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/usecase"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldTeamRef
	fieldPosition
)

// field is one prompted attribute. check runs on every typed value before the
// form moves on; the service still validates the whole record on submit.
type field struct {
	name   string
	format string
	kind   fieldKind
	check  func(value string) error
}

func (f field) label(current string, updating bool) string {
	hints := make([]string, 0, 2)
	if f.format != "" {
		hints = append(hints, f.format)
	}
	if f.kind == fieldTeamRef {
		hints = append(hints, "or '?' to list teams")
	}

	if !updating {
		if len(hints) == 0 {
			return "Enter " + f.name + ": "
		}
		return "Enter " + f.name + " (" + strings.Join(hints, ", ") + "): "
	}

	hints = append(hints, "leave empty to keep current: "+current)
	return "Enter new " + f.name + " (" + strings.Join(hints, ", ") + "): "
}

// entity binds one service to the generic menu actions.
type entity struct {
	singular   string
	plural     string
	fields     []field
	create     func(ctx context.Context, values []string) (Table, error)
	update     func(ctx context.Context, id string, values []string) (Table, error)
	get        func(ctx context.Context, id string) (Table, []string, error)
	list       func(ctx context.Context) (Table, error)
	delete     func(ctx context.Context, id string) error
	deleteMany func(ctx context.Context, ids []string) (usecase.BatchDeleteResult, error)
}

func (s *Session) teamEntity() entity {
	svc := s.services.Teams
	checker := s.services.Checker
	toInput := func(values []string) usecase.TeamInput {
		return usecase.TeamInput{Name: values[0], Country: values[1]}
	}

	return entity{
		singular: "Team",
		plural:   "Teams",
		fields: []field{
			{name: "team name", check: checker.TeamName},
			{name: "team country", check: nameLike(checker, "country")},
		},
		create: func(ctx context.Context, values []string) (Table, error) {
			item, err := svc.Create(ctx, toInput(values))
			return teamTable(item), err
		},
		update: func(ctx context.Context, id string, values []string) (Table, error) {
			item, err := svc.Update(ctx, id, toInput(values))
			return teamTable(item), err
		},
		get: func(ctx context.Context, id string) (Table, []string, error) {
			item, err := svc.Get(ctx, id)
			return teamTable(item), []string{item.Name, item.Country}, err
		},
		list: func(ctx context.Context) (Table, error) {
			items, err := svc.List(ctx)
			return teamTable(items...), err
		},
		delete:     svc.Delete,
		deleteMany: svc.DeleteMany,
	}
}

func (s *Session) playerEntity() entity {
	svc := s.services.Players
	checker := s.services.Checker
	toInput := func(values []string) usecase.PlayerInput {
		return usecase.PlayerInput{
			Name:      values[0],
			Surname:   values[1],
			BirthDate: values[2],
			Country:   values[3],
			Position:  values[4],
			TeamID:    values[5],
		}
	}

	return entity{
		singular: "Player",
		plural:   "Players",
		fields: []field{
			{name: "player name", check: nameLike(checker, "name")},
			{name: "player surname", check: nameLike(checker, "surname")},
			{name: "player birth date", format: "YYYY-MM-DD", check: func(value string) error {
				_, err := checker.BirthDate(strings.TrimSpace(value))
				return err
			}},
			{name: "player country", check: nameLike(checker, "country")},
			{name: "player position", kind: fieldPosition},
			{name: "team ID", kind: fieldTeamRef},
		},
		create: func(ctx context.Context, values []string) (Table, error) {
			item, err := svc.Create(ctx, toInput(values))
			return playerTable(item), err
		},
		update: func(ctx context.Context, id string, values []string) (Table, error) {
			item, err := svc.Update(ctx, id, toInput(values))
			return playerTable(item), err
		},
		get: func(ctx context.Context, id string) (Table, []string, error) {
			item, err := svc.Get(ctx, id)
			return playerTable(item), []string{
				item.Name,
				item.Surname,
				item.BirthDate.Format(validation.DateLayout),
				item.Country,
				string(item.Position),
				formatID(item.TeamID),
			}, err
		},
		list: func(ctx context.Context) (Table, error) {
			items, err := svc.List(ctx)
			return playerTable(items...), err
		},
		delete:     svc.Delete,
		deleteMany: svc.DeleteMany,
	}
}

func (s *Session) matchEntity() entity {
	svc := s.services.Matches
	checker := s.services.Checker
	toInput := func(values []string) usecase.MatchInput {
		return usecase.MatchInput{
			Team1ID:    values[0],
			Team2ID:    values[1],
			Team1Goals: values[2],
			Team2Goals: values[3],
			MatchDate:  values[4],
			Tournament: values[5],
		}
	}
	goals := func(name string) func(string) error {
		return func(value string) error {
			_, err := checker.Goals(name, strings.TrimSpace(value))
			return err
		}
	}

	return entity{
		singular: "Match",
		plural:   "Matches",
		fields: []field{
			{name: "team 1 ID", kind: fieldTeamRef},
			{name: "team 2 ID", kind: fieldTeamRef},
			{name: "team 1 goals", format: "default: 0", check: goals("team 1 goals")},
			{name: "team 2 goals", format: "default: 0", check: goals("team 2 goals")},
			{name: "match date", format: "YYYY-MM-DD", check: func(value string) error {
				_, err := checker.Date("match date", strings.TrimSpace(value))
				return err
			}},
			{name: "tournament name", check: checker.Tournament},
		},
		create: func(ctx context.Context, values []string) (Table, error) {
			item, err := svc.Create(ctx, toInput(values))
			return matchTable(item), err
		},
		update: func(ctx context.Context, id string, values []string) (Table, error) {
			item, err := svc.Update(ctx, id, toInput(values))
			return matchTable(item), err
		},
		get: func(ctx context.Context, id string) (Table, []string, error) {
			item, err := svc.Get(ctx, id)
			return matchTable(item), []string{
				formatID(item.Team1ID),
				formatID(item.Team2ID),
				strconv.Itoa(item.Team1Goals),
				strconv.Itoa(item.Team2Goals),
				item.MatchDate.Format(validation.DateLayout),
				item.Tournament,
			}, err
		},
		list: func(ctx context.Context) (Table, error) {
			items, err := svc.List(ctx)
			return matchTable(items...), err
		},
		delete:     svc.Delete,
		deleteMany: svc.DeleteMany,
	}
}

func nameLike(checker *validation.Checker, name string) func(string) error {
	return func(value string) error {
		return checker.NameLike(name, value)
	}
}
