package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

// MatchInput carries raw match fields as typed by the caller. Blank goals
// mean zero on create.
type MatchInput struct {
	Team1ID    string
	Team2ID    string
	Team1Goals string
	Team2Goals string
	MatchDate  string
	Tournament string
}

type MatchService struct {
	store   storage.Store
	checker *validation.Checker
	logger  *logging.Logger
}

func NewMatchService(store storage.Store, checker *validation.Checker, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		store:   store,
		checker: checker,
		logger:  logger.With("entity", "match"),
	}
}

func (s *MatchService) Create(ctx context.Context, in MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	item, err := s.parse(in)
	if err != nil {
		return match.Match{}, s.fail(ctx, "create match", err)
	}

	var created match.Match
	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		if err := s.admit(ctx, tx, item); err != nil {
			return err
		}

		id, err := tx.Matches().Insert(ctx, item)
		if err != nil {
			return err
		}

		created, err = s.get(ctx, tx, id)
		return err
	})
	if err != nil {
		return match.Match{}, s.fail(ctx, "create match", err)
	}

	s.logger.InfoContext(ctx, "match created", "match_id", created.ID)
	return created, nil
}

// Update merges in over the stored match. The match itself is left out of the
// overlap search, so unchanged teams and date do not conflict.
func (s *MatchService) Update(ctx context.Context, rawID string, in MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	id, err := targetID(s.checker, "match", rawID)
	if err != nil {
		return match.Match{}, s.fail(ctx, "update match", err)
	}

	var updated match.Match
	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		stored, err := s.get(ctx, tx, id)
		if err != nil {
			return err
		}

		item, err := s.parse(mergeMatchInput(in, stored))
		if err != nil {
			return err
		}
		item.ID = id

		if err := s.admit(ctx, tx, item); err != nil {
			return err
		}
		if err := tx.Matches().Update(ctx, item); err != nil {
			return err
		}

		updated, err = s.get(ctx, tx, id)
		return err
	})
	if err != nil {
		return match.Match{}, s.fail(ctx, "update match", err)
	}

	s.logger.InfoContext(ctx, "match updated", "match_id", id)
	return updated, nil
}

func (s *MatchService) Get(ctx context.Context, rawID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	id, err := targetID(s.checker, "match", rawID)
	if err != nil {
		return match.Match{}, s.fail(ctx, "get match", err)
	}

	item, err := s.get(ctx, s.store, id)
	if err != nil {
		return match.Match{}, s.fail(ctx, "get match", err)
	}

	return item, nil
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.store.Matches().List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list matches", err)
	}

	return items, nil
}

func (s *MatchService) Delete(ctx context.Context, rawID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	id, err := targetID(s.checker, "match", rawID)
	if err != nil {
		return s.fail(ctx, "delete match", err)
	}

	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		if _, err := s.get(ctx, tx, id); err != nil {
			return err
		}
		return tx.Matches().DeleteByID(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete match", err)
	}

	s.logger.InfoContext(ctx, "match deleted", "match_id", id)
	return nil
}

func (s *MatchService) DeleteMany(ctx context.Context, rawIDs []string) (BatchDeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMany")
	defer span.End()

	result, err := deleteMany(ctx, s.store, s.checker, rawIDs, batchDeleter{
		exists: func(ctx context.Context, tx storage.Store, id int64) (bool, error) {
			_, ok, err := tx.Matches().GetByID(ctx, id)
			return ok, err
		},
		delete: func(ctx context.Context, tx storage.Store, ids []int64) error {
			return tx.Matches().DeleteByIDs(ctx, ids)
		},
	})
	if err != nil {
		return BatchDeleteResult{}, s.fail(ctx, "delete matches", err)
	}

	if len(result.Deleted) > 0 {
		s.logger.InfoContext(ctx, "matches deleted", "match_ids", result.Deleted)
	}
	return result, nil
}

func (s *MatchService) admit(ctx context.Context, tx storage.Store, item match.Match) error {
	if err := requireTeam(ctx, tx.Teams(), "team 1 id", item.Team1ID); err != nil {
		return err
	}
	if err := requireTeam(ctx, tx.Teams(), "team 2 id", item.Team2ID); err != nil {
		return err
	}
	return checkMatchUnique(ctx, tx.Matches(), item)
}

func (s *MatchService) get(ctx context.Context, store storage.Store, id int64) (match.Match, error) {
	item, ok, err := store.Matches().GetByID(ctx, id)
	if err != nil {
		return match.Match{}, storageFailure("get match", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *MatchService) parse(in MatchInput) (match.Match, error) {
	c := s.checker
	team1ID, err := c.ForeignKey("team 1 id", strings.TrimSpace(in.Team1ID))
	if err != nil {
		return match.Match{}, invalidInput(err)
	}
	team2ID, err := c.ForeignKey("team 2 id", strings.TrimSpace(in.Team2ID))
	if err != nil {
		return match.Match{}, invalidInput(err)
	}
	if err := c.DistinctTeams(team1ID, team2ID); err != nil {
		return match.Match{}, invalidInput(err)
	}
	team1Goals, err := c.Goals("team 1 goals", strings.TrimSpace(in.Team1Goals))
	if err != nil {
		return match.Match{}, invalidInput(err)
	}
	team2Goals, err := c.Goals("team 2 goals", strings.TrimSpace(in.Team2Goals))
	if err != nil {
		return match.Match{}, invalidInput(err)
	}
	played, err := c.Date("match date", strings.TrimSpace(in.MatchDate))
	if err != nil {
		return match.Match{}, invalidInput(err)
	}
	if err := c.Tournament(in.Tournament); err != nil {
		return match.Match{}, invalidInput(err)
	}

	return match.Match{
		Team1ID:    team1ID,
		Team2ID:    team2ID,
		Team1Goals: team1Goals,
		Team2Goals: team2Goals,
		MatchDate:  played,
		Tournament: strings.TrimSpace(in.Tournament),
	}, nil
}

func (s *MatchService) fail(ctx context.Context, op string, err error) error {
	err = classify(op, err)
	logFailure(ctx, s.logger, op, err)
	return err
}
