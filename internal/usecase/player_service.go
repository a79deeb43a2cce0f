package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

// PlayerInput carries raw player fields as typed by the caller.
type PlayerInput struct {
	Name      string
	Surname   string
	BirthDate string
	Country   string
	Position  string
	TeamID    string
}

type PlayerService struct {
	store   storage.Store
	checker *validation.Checker
	logger  *logging.Logger
}

func NewPlayerService(store storage.Store, checker *validation.Checker, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		store:   store,
		checker: checker,
		logger:  logger.With("entity", "player"),
	}
}

func (s *PlayerService) Create(ctx context.Context, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	item, err := s.parse(in)
	if err != nil {
		return player.Player{}, s.fail(ctx, "create player", err)
	}

	var created player.Player
	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		if err := s.admit(ctx, tx, item); err != nil {
			return err
		}

		id, err := tx.Players().Insert(ctx, item)
		if err != nil {
			return err
		}

		created, err = s.get(ctx, tx, id)
		return err
	})
	if err != nil {
		return player.Player{}, s.fail(ctx, "create player", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID, "team_id", created.TeamID)
	return created, nil
}

// Update merges in over the stored player and re-validates the whole record.
func (s *PlayerService) Update(ctx context.Context, rawID string, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	id, err := targetID(s.checker, "player", rawID)
	if err != nil {
		return player.Player{}, s.fail(ctx, "update player", err)
	}

	var updated player.Player
	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		stored, err := s.get(ctx, tx, id)
		if err != nil {
			return err
		}

		item, err := s.parse(mergePlayerInput(in, stored))
		if err != nil {
			return err
		}
		item.ID = id

		if err := s.admit(ctx, tx, item); err != nil {
			return err
		}
		if err := tx.Players().Update(ctx, item); err != nil {
			return err
		}

		updated, err = s.get(ctx, tx, id)
		return err
	})
	if err != nil {
		return player.Player{}, s.fail(ctx, "update player", err)
	}

	s.logger.InfoContext(ctx, "player updated", "player_id", id)
	return updated, nil
}

func (s *PlayerService) Get(ctx context.Context, rawID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	id, err := targetID(s.checker, "player", rawID)
	if err != nil {
		return player.Player{}, s.fail(ctx, "get player", err)
	}

	item, err := s.get(ctx, s.store, id)
	if err != nil {
		return player.Player{}, s.fail(ctx, "get player", err)
	}

	return item, nil
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.store.Players().List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list players", err)
	}

	return items, nil
}

func (s *PlayerService) Delete(ctx context.Context, rawID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	id, err := targetID(s.checker, "player", rawID)
	if err != nil {
		return s.fail(ctx, "delete player", err)
	}

	err = s.store.WithinTx(ctx, func(tx storage.Store) error {
		if _, err := s.get(ctx, tx, id); err != nil {
			return err
		}
		return tx.Players().DeleteByID(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete player", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", id)
	return nil
}

func (s *PlayerService) DeleteMany(ctx context.Context, rawIDs []string) (BatchDeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeleteMany")
	defer span.End()

	result, err := deleteMany(ctx, s.store, s.checker, rawIDs, batchDeleter{
		exists: func(ctx context.Context, tx storage.Store, id int64) (bool, error) {
			_, ok, err := tx.Players().GetByID(ctx, id)
			return ok, err
		},
		delete: func(ctx context.Context, tx storage.Store, ids []int64) error {
			return tx.Players().DeleteByIDs(ctx, ids)
		},
	})
	if err != nil {
		return BatchDeleteResult{}, s.fail(ctx, "delete players", err)
	}

	if len(result.Deleted) > 0 {
		s.logger.InfoContext(ctx, "players deleted", "player_ids", result.Deleted)
	}
	return result, nil
}

// admit runs the storage-backed checks: the team must exist and the identity
// must be free.
func (s *PlayerService) admit(ctx context.Context, tx storage.Store, item player.Player) error {
	if err := requireTeam(ctx, tx.Teams(), "team id", item.TeamID); err != nil {
		return err
	}
	return checkPlayerUnique(ctx, tx.Players(), item)
}

func (s *PlayerService) get(ctx context.Context, store storage.Store, id int64) (player.Player, error) {
	item, ok, err := store.Players().GetByID(ctx, id)
	if err != nil {
		return player.Player{}, storageFailure("get player", err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player %d", ErrNotFound, id)
	}
	return item, nil
}

// parse validates fields in form order and stops at the first violation.
// Name-like fields are checked untrimmed so stray spaces are reported.
func (s *PlayerService) parse(in PlayerInput) (player.Player, error) {
	c := s.checker
	if err := c.NameLike("name", in.Name); err != nil {
		return player.Player{}, invalidInput(err)
	}
	if err := c.NameLike("surname", in.Surname); err != nil {
		return player.Player{}, invalidInput(err)
	}
	born, err := c.BirthDate(strings.TrimSpace(in.BirthDate))
	if err != nil {
		return player.Player{}, invalidInput(err)
	}
	if err := c.NameLike("country", in.Country); err != nil {
		return player.Player{}, invalidInput(err)
	}
	position := strings.TrimSpace(in.Position)
	if err := c.Position(position); err != nil {
		return player.Player{}, invalidInput(err)
	}
	teamID, err := c.ForeignKey("team id", strings.TrimSpace(in.TeamID))
	if err != nil {
		return player.Player{}, invalidInput(err)
	}

	return player.Player{
		Name:      in.Name,
		Surname:   in.Surname,
		BirthDate: born,
		Country:   in.Country,
		Position:  player.Position(position),
		TeamID:    teamID,
	}, nil
}

func (s *PlayerService) fail(ctx context.Context, op string, err error) error {
	err = classify(op, err)
	logFailure(ctx, s.logger, op, err)
	return err
}
