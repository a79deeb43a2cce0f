package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/team"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

// TeamInput carries raw team fields as typed by the caller.
type TeamInput struct {
	Name    string
	Country string
}

type TeamService struct {
	store   storage.Store
	checker *validation.Checker
	logger  *logging.Logger
}

func NewTeamService(store storage.Store, checker *validation.Checker, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		store:   store,
		checker: checker,
		logger:  logger.With("entity", "team"),
	}
}

func (s *TeamService) Create(ctx context.Context, in TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item, err := s.parse(in)
	if err != nil {
		return team.Team{}, s.fail(ctx, "create team", err)
	}

	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		id, err := tx.Teams().Insert(ctx, item)
		if err != nil {
			return err
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return team.Team{}, s.fail(ctx, "create team", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", item.ID)
	return item, nil
}

// Update merges in over the stored team; blank fields keep their stored value.
func (s *TeamService) Update(ctx context.Context, rawID string, in TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	id, err := targetID(s.checker, "team", rawID)
	if err != nil {
		return team.Team{}, s.fail(ctx, "update team", err)
	}

	var updated team.Team
	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		stored, err := s.get(ctx, tx, id)
		if err != nil {
			return err
		}

		item, err := s.parse(mergeTeamInput(in, stored))
		if err != nil {
			return err
		}
		item.ID = id

		if err := tx.Teams().Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return team.Team{}, s.fail(ctx, "update team", err)
	}

	s.logger.InfoContext(ctx, "team updated", "team_id", id)
	return updated, nil
}

func (s *TeamService) Get(ctx context.Context, rawID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	id, err := targetID(s.checker, "team", rawID)
	if err != nil {
		return team.Team{}, s.fail(ctx, "get team", err)
	}

	item, err := s.get(ctx, s.store, id)
	if err != nil {
		return team.Team{}, s.fail(ctx, "get team", err)
	}

	return item, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.store.Teams().List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list teams", err)
	}

	return items, nil
}

// Delete removes one team. Teams still referenced by players or matches are
// refused with ErrReference.
func (s *TeamService) Delete(ctx context.Context, rawID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	id, err := targetID(s.checker, "team", rawID)
	if err != nil {
		return s.fail(ctx, "delete team", err)
	}

	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		if _, err := s.get(ctx, tx, id); err != nil {
			return err
		}
		return tx.Teams().DeleteByID(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete team", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", id)
	return nil
}

func (s *TeamService) DeleteMany(ctx context.Context, rawIDs []string) (BatchDeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteMany")
	defer span.End()

	result, err := deleteMany(ctx, s.store, s.checker, rawIDs, batchDeleter{
		exists: func(ctx context.Context, tx storage.Store, id int64) (bool, error) {
			return teamExists(ctx, tx.Teams(), id)
		},
		delete: func(ctx context.Context, tx storage.Store, ids []int64) error {
			return tx.Teams().DeleteByIDs(ctx, ids)
		},
	})
	if err != nil {
		return BatchDeleteResult{}, s.fail(ctx, "delete teams", err)
	}

	if len(result.Deleted) > 0 {
		s.logger.InfoContext(ctx, "teams deleted", "team_ids", result.Deleted)
	}
	return result, nil
}

// TeamExists answers whether a team with id is stored.
func (s *TeamService) TeamExists(ctx context.Context, id int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.TeamExists")
	defer span.End()

	ok, err := teamExists(ctx, s.store.Teams(), id)
	if err != nil {
		return false, s.fail(ctx, "team exists", err)
	}
	return ok, nil
}

func (s *TeamService) get(ctx context.Context, store storage.Store, id int64) (team.Team, error) {
	item, ok, err := store.Teams().GetByID(ctx, id)
	if err != nil {
		return team.Team{}, storageFailure("get team", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *TeamService) parse(in TeamInput) (team.Team, error) {
	if err := s.checker.TeamName(in.Name); err != nil {
		return team.Team{}, invalidInput(err)
	}
	if err := s.checker.NameLike("country", in.Country); err != nil {
		return team.Team{}, invalidInput(err)
	}

	return team.Team{Name: in.Name, Country: in.Country}, nil
}

func (s *TeamService) fail(ctx context.Context, op string, err error) error {
	err = classify(op, err)
	logFailure(ctx, s.logger, op, err)
	return err
}

// targetID parses the id an operation targets. Malformed ids cannot name a
// stored record, so they report as not found.
func targetID(checker *validation.Checker, entity, rawID string) (int64, error) {
	id, err := checker.Identifier(strings.TrimSpace(rawID))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrNotFound, entity, strings.TrimSpace(rawID), err)
	}
	return id, nil
}
