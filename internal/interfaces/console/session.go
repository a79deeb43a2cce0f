package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
	"github.com/riskibarqy/football-registry/internal/usecase"
)

const defaultOperationTimeout = 10 * time.Second

// Services are the collaborators a session drives.
type Services struct {
	Teams   *usecase.TeamService
	Players *usecase.PlayerService
	Matches *usecase.MatchService
	Checker *validation.Checker
}

// Session is one interactive console conversation over a line-oriented input.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	services Services
	renderer Renderer
	timeout  time.Duration
	logger   *logging.Logger
}

type Option func(*Session)

func WithRenderer(renderer Renderer) Option {
	return func(s *Session) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithOperationTimeout bounds every service call made on behalf of one menu action.
func WithOperationTimeout(timeout time.Duration) Option {
	return func(s *Session) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSession(in io.Reader, out io.Writer, services Services, opts ...Option) *Session {
	s := &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		services: services,
		renderer: TableRenderer{},
		timeout:  defaultOperationTimeout,
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "console")

	return s
}

// Run serves the main menu until the user exits or the input ends. It only
// returns an error when reading input fails or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	entities := []entity{s.teamEntity(), s.playerEntity(), s.matchEntity()}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("\n1. Teams\n2. Players\n3. Matches\n4. Exit\n")
		choice, err := s.ask("Choose an option: ")
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1", "2", "3":
			idx, _ := strconv.Atoi(strings.TrimSpace(choice))
			if err := s.entityMenu(ctx, entities[idx-1]); err != nil {
				return s.finish(err)
			}
		case "4":
			return nil
		default:
			s.printf("Invalid choice.\n")
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.printf("\n")
		return nil
	}
	return err
}

func (s *Session) entityMenu(ctx context.Context, e entity) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("\n1. Create %[1]s\n2. Retrieve All %[2]s\n3. Retrieve %[1]s\n4. Update %[1]s\n5. Delete %[1]s\n6. Delete Many %[2]s\n7. Back\n",
			e.singular, e.plural)
		choice, err := s.ask("Choose an option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.create(ctx, e)
		case "2":
			err = s.list(ctx, e)
		case "3":
			err = s.get(ctx, e)
		case "4":
			err = s.update(ctx, e)
		case "5":
			err = s.delete(ctx, e)
		case "6":
			err = s.deleteMany(ctx, e)
		case "7":
			return nil
		default:
			s.printf("Invalid choice.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) create(ctx context.Context, e entity) error {
	for {
		values, err := s.fill(ctx, e.fields, nil)
		if err != nil {
			return err
		}

		var table Table
		err = s.call(ctx, func(ctx context.Context) error {
			table, err = e.create(ctx, values)
			return err
		})
		if err == nil {
			s.printf("%s created successfully.\n", e.singular)
			s.render(table)
			return nil
		}

		s.report(err)
		again, err := s.confirm()
		if err != nil {
			return err
		}
		if !again {
			s.printf("Creation canceled.\n")
			return nil
		}
	}
}

func (s *Session) list(ctx context.Context, e entity) error {
	var table Table
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		table, err = e.list(ctx)
		return err
	})
	if err != nil {
		s.report(err)
		return nil
	}

	s.render(table)
	return nil
}

func (s *Session) get(ctx context.Context, e entity) error {
	id, err := s.ask(fmt.Sprintf("Enter %s ID: ", strings.ToLower(e.singular)))
	if err != nil {
		return err
	}

	var table Table
	err = s.call(ctx, func(ctx context.Context) error {
		table, _, err = e.get(ctx, id)
		return err
	})
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		s.printf("\n%s not found.\n", e.singular)
	case err != nil:
		s.report(err)
	default:
		s.render(table)
	}

	return nil
}

func (s *Session) update(ctx context.Context, e entity) error {
	id, err := s.ask(fmt.Sprintf("Enter %s ID to update: ", strings.ToLower(e.singular)))
	if err != nil {
		return err
	}

	var (
		table   Table
		current []string
	)
	err = s.call(ctx, func(ctx context.Context) error {
		table, current, err = e.get(ctx, id)
		return err
	})
	if errors.Is(err, usecase.ErrNotFound) {
		s.printf("%s not found.\n", e.singular)
		return nil
	}
	if err != nil {
		s.report(err)
		return nil
	}
	s.render(table)

	for {
		values, err := s.fill(ctx, e.fields, current)
		if err != nil {
			return err
		}

		err = s.call(ctx, func(ctx context.Context) error {
			table, err = e.update(ctx, id, values)
			return err
		})
		if err == nil {
			s.printf("%s updated successfully.\n", e.singular)
			s.render(table)
			return nil
		}

		s.report(err)
		again, err := s.confirm()
		if err != nil {
			return err
		}
		if !again {
			s.printf("Update canceled.\n")
			return nil
		}
	}
}

func (s *Session) delete(ctx context.Context, e entity) error {
	id, err := s.ask(fmt.Sprintf("Enter %s ID to delete: ", strings.ToLower(e.singular)))
	if err != nil {
		return err
	}

	err = s.call(ctx, func(ctx context.Context) error {
		return e.delete(ctx, id)
	})
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		s.printf("%s not found.\n", e.singular)
	case err != nil:
		s.report(err)
	default:
		s.printf("%s deleted.\n", e.singular)
	}

	return nil
}

func (s *Session) deleteMany(ctx context.Context, e entity) error {
	raw, err := s.ask("Enter IDs separated by commas: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		s.printf("No IDs provided.\n")
		return nil
	}

	var result usecase.BatchDeleteResult
	err = s.call(ctx, func(ctx context.Context) error {
		result, err = e.deleteMany(ctx, strings.Split(raw, ","))
		return err
	})
	if err != nil {
		s.report(err)
		return nil
	}

	if len(result.Deleted) == 0 {
		s.printf("No %s found with the given IDs.\n", strings.ToLower(e.plural))
		return nil
	}
	if len(result.NotFound) > 0 {
		s.printf("The following IDs were not found: %s\n", strings.Join(result.NotFound, ", "))
	}

	deleted := make([]string, 0, len(result.Deleted))
	for _, id := range result.Deleted {
		deleted = append(deleted, formatID(id))
	}
	s.printf("%s with IDs %s have been deleted.\n", e.plural, strings.Join(deleted, ", "))
	return nil
}

// fill asks for every field in order. With current set the session is
// updating: blank answers keep the stored value and are returned as "".
func (s *Session) fill(ctx context.Context, fields []field, current []string) ([]string, error) {
	values := make([]string, len(fields))
	for i, f := range fields {
		var (
			value string
			err   error
		)
		if current == nil {
			value, err = s.fillField(ctx, f, "", false)
		} else {
			value, err = s.fillField(ctx, f, current[i], true)
		}
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func (s *Session) fillField(ctx context.Context, f field, current string, updating bool) (string, error) {
	if f.kind == fieldPosition {
		return s.choosePosition(current, updating)
	}

	label := f.label(current, updating)
	for {
		value, err := s.ask(label)
		if err != nil {
			return "", err
		}
		if updating && strings.TrimSpace(value) == "" {
			return "", nil
		}

		if f.kind == fieldTeamRef {
			if strings.TrimSpace(value) == "?" {
				s.listTeams(ctx)
				continue
			}
			if s.teamExists(ctx, value) {
				return value, nil
			}
			s.printf("Invalid team ID. Try again or type '?' to list teams.\n")
			continue
		}

		if f.check != nil {
			if err := f.check(value); err != nil {
				s.printf("Error: %v\n", err)
				continue
			}
		}
		return value, nil
	}
}

func (s *Session) choosePosition(current string, updating bool) (string, error) {
	s.printf("\nSelect player position:\n")
	for i, position := range player.Positions {
		s.printf("%d. %s\n", i+1, position)
	}

	label := fmt.Sprintf("Enter position number (1-%d): ", len(player.Positions))
	if updating {
		label = fmt.Sprintf("Enter position number (1-%d, leave empty to keep current: %s): ", len(player.Positions), current)
	}

	for {
		value, err := s.ask(label)
		if err != nil {
			return "", err
		}
		value = strings.TrimSpace(value)
		if updating && value == "" {
			return "", nil
		}

		choice, err := strconv.Atoi(value)
		if err == nil && choice >= 1 && choice <= len(player.Positions) {
			return string(player.Positions[choice-1]), nil
		}
		s.printf("Invalid input. Please enter a number between 1 and %d.\n", len(player.Positions))
	}
}

func (s *Session) listTeams(ctx context.Context) {
	var table Table
	err := s.call(ctx, func(ctx context.Context) error {
		items, err := s.services.Teams.List(ctx)
		table = teamTable(items...)
		return err
	})
	if err != nil {
		s.report(err)
		return
	}
	if table.empty() {
		s.printf("%s\n", noDataMessage)
		return
	}

	s.printf("\nAvailable teams:\n")
	for _, row := range table.Rows {
		s.printf("ID: %s - Name: %s\n", row[0], row[1])
	}
	s.printf("\n")
}

func (s *Session) teamExists(ctx context.Context, raw string) bool {
	id, err := s.services.Checker.ForeignKey("team id", strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	var ok bool
	err = s.call(ctx, func(ctx context.Context) error {
		ok, err = s.services.Teams.TeamExists(ctx, id)
		return err
	})
	if err != nil {
		s.report(err)
		return false
	}
	return ok
}

func (s *Session) confirm() (bool, error) {
	answer, err := s.ask("Do you want to try again? (yes/no): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func (s *Session) call(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return fn(ctx)
}

func (s *Session) ask(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Session) render(table Table) {
	if err := s.renderer.Render(s.out, table); err != nil {
		s.logger.Warn("render output failed", "error", err)
	}
}

func (s *Session) report(err error) {
	s.printf("Error: %v\n", err)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
