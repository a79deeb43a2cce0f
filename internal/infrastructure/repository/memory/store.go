package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/team"
)

// dataset is the shared state behind every Store handle. Writes outside a
// transaction and whole transactions are serialized by txMu, so a rollback
// never discards somebody else's write.
type dataset struct {
	txMu sync.Mutex

	mu           sync.RWMutex
	teams        map[int64]team.Team
	players      map[int64]player.Player
	matches      map[int64]match.Match
	nextTeamID   int64
	nextPlayerID int64
	nextMatchID  int64
}

type snapshot struct {
	teams        map[int64]team.Team
	players      map[int64]player.Player
	matches      map[int64]match.Match
	nextTeamID   int64
	nextPlayerID int64
	nextMatchID  int64
}

func (d *dataset) snapshot() snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return snapshot{
		teams:        cloneMap(d.teams),
		players:      cloneMap(d.players),
		matches:      cloneMap(d.matches),
		nextTeamID:   d.nextTeamID,
		nextPlayerID: d.nextPlayerID,
		nextMatchID:  d.nextMatchID,
	}
}

func (d *dataset) restore(s snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.teams = s.teams
	d.players = s.players
	d.matches = s.matches
	d.nextTeamID = s.nextTeamID
	d.nextPlayerID = s.nextPlayerID
	d.nextMatchID = s.nextMatchID
}

// write runs fn under the data lock. Outside a transaction it also takes txMu.
func (d *dataset) write(inTx bool, fn func() error) error {
	if !inTx {
		d.txMu.Lock()
		defer d.txMu.Unlock()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return fn()
}

func (d *dataset) read(fn func()) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fn()
}

// Store is an in-process storage.Store used by tests and the demo driver.
type Store struct {
	data *dataset
	inTx bool
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: &dataset{
		teams:   make(map[int64]team.Team),
		players: make(map[int64]player.Player),
		matches: make(map[int64]match.Match),
	}}
}

func (s *Store) Teams() team.Repository {
	return &TeamRepository{data: s.data, inTx: s.inTx}
}

func (s *Store) Players() player.Repository {
	return &PlayerRepository{data: s.data, inTx: s.inTx}
}

func (s *Store) Matches() match.Repository {
	return &MatchRepository{data: s.data, inTx: s.inTx}
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.data.txMu.Lock()
	defer s.data.txMu.Unlock()

	saved := s.data.snapshot()
	if err := fn(&Store{data: s.data, inTx: true}); err != nil {
		s.data.restore(saved)
		return err
	}

	return nil
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
