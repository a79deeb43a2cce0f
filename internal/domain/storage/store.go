package storage

import (
	"context"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/team"
)

// Store groups the entity repositories behind one transaction boundary.
type Store interface {
	Teams() team.Repository
	Players() player.Repository
	Matches() match.Repository
	// WithinTx runs fn against a store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	// Calling WithinTx on a transactional store reuses the open transaction.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
