package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/team"
)

// Store hands out repositories bound either to the pool or to one open
// transaction.
type Store struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

var _ storage.Store = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ext() sqlx.ExtContext {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *Store) Teams() team.Repository {
	return NewTeamRepository(s.ext())
}

func (s *Store) Players() player.Repository {
	return NewPlayerRepository(s.ext())
}

func (s *Store) Matches() match.Repository {
	return NewMatchRepository(s.ext())
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&Store{db: s.db, tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit tx")
	}

	return nil
}
