package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/football-registry/internal/domain/player"
	"golang.org/x/text/cases"
)

type PlayerRepository struct {
	data *dataset
	inTx bool
}

func (r *PlayerRepository) Insert(_ context.Context, item player.Player) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validate player: %w", err)
	}

	var id int64
	err := r.data.write(r.inTx, func() error {
		if err := r.data.checkPlayer(item, 0); err != nil {
			return err
		}
		r.data.nextPlayerID++
		id = r.data.nextPlayerID
		item.ID = id
		item.TeamName = ""
		r.data.players[id] = item
		return nil
	})
	return id, err
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	var (
		item player.Player
		ok   bool
	)
	r.data.read(func() {
		item, ok = r.data.players[id]
		if ok {
			item.TeamName = r.data.teams[item.TeamID].Name
		}
	})
	return item, ok, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	var out []player.Player
	r.data.read(func() {
		out = make([]player.Player, 0, len(r.data.players))
		for _, item := range r.data.players {
			item.TeamName = r.data.teams[item.TeamID].Name
			out = append(out, item)
		}
	})
	slices.SortFunc(out, func(a, b player.Player) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate player: %w", err)
	}

	return r.data.write(r.inTx, func() error {
		if _, ok := r.data.players[item.ID]; !ok {
			return nil
		}
		if err := r.data.checkPlayer(item, item.ID); err != nil {
			return err
		}
		item.TeamName = ""
		r.data.players[item.ID] = item
		return nil
	})
}

func (r *PlayerRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteByIDs(ctx, []int64{id})
}

func (r *PlayerRepository) DeleteByIDs(_ context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	return r.data.write(r.inTx, func() error {
		for _, id := range ids {
			delete(r.data.players, id)
		}
		return nil
	})
}

func (r *PlayerRepository) CountDuplicates(_ context.Context, identity player.Identity, excludeID int64) (int, error) {
	key := foldIdentity(identity)
	count := 0
	r.data.read(func() {
		for id, item := range r.data.players {
			if id != excludeID && foldIdentity(item.Identity()) == key {
				count++
			}
		}
	})
	return count, nil
}

// checkPlayer mirrors the players table constraints. Must be called with
// d.mu held.
func (d *dataset) checkPlayer(item player.Player, selfID int64) error {
	if _, ok := d.teams[item.TeamID]; !ok {
		return player.ErrUnknownTeam
	}

	key := foldIdentity(item.Identity())
	for id, other := range d.players {
		if id != selfID && foldIdentity(other.Identity()) == key {
			return player.ErrDuplicate
		}
	}

	return nil
}

type identityKey struct {
	name, surname, country string
	birthDate              string
}

func foldIdentity(identity player.Identity) identityKey {
	fold := cases.Fold()
	return identityKey{
		name:      fold.String(identity.Name),
		surname:   fold.String(identity.Surname),
		country:   fold.String(identity.Country),
		birthDate: identity.BirthDate.Format("2006-01-02"),
	}
}
