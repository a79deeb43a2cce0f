package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/football-registry/internal/domain/match"
)

type MatchRepository struct {
	data *dataset
	inTx bool
}

func (r *MatchRepository) Insert(_ context.Context, item match.Match) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validate match: %w", err)
	}

	var id int64
	err := r.data.write(r.inTx, func() error {
		if err := r.data.checkMatch(item, 0); err != nil {
			return err
		}
		r.data.nextMatchID++
		id = r.data.nextMatchID
		item.ID = id
		r.data.matches[id] = stripMatchNames(item)
		return nil
	})
	return id, err
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	var (
		item match.Match
		ok   bool
	)
	r.data.read(func() {
		item, ok = r.data.matches[id]
		if ok {
			item = r.data.withMatchNames(item)
		}
	})
	return item, ok, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	var out []match.Match
	r.data.read(func() {
		out = make([]match.Match, 0, len(r.data.matches))
		for _, item := range r.data.matches {
			out = append(out, r.data.withMatchNames(item))
		}
	})
	slices.SortFunc(out, func(a, b match.Match) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate match: %w", err)
	}

	return r.data.write(r.inTx, func() error {
		if _, ok := r.data.matches[item.ID]; !ok {
			return nil
		}
		if err := r.data.checkMatch(item, item.ID); err != nil {
			return err
		}
		r.data.matches[item.ID] = stripMatchNames(item)
		return nil
	})
}

func (r *MatchRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteByIDs(ctx, []int64{id})
}

func (r *MatchRepository) DeleteByIDs(_ context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	return r.data.write(r.inTx, func() error {
		for _, id := range ids {
			delete(r.data.matches, id)
		}
		return nil
	})
}

func (r *MatchRepository) CountOverlapping(_ context.Context, pairing match.Pairing, excludeID int64) (int, error) {
	key := pairing.Normalize()
	count := 0
	r.data.read(func() {
		for id, item := range r.data.matches {
			if id != excludeID && item.Pairing().Normalize() == key {
				count++
			}
		}
	})
	return count, nil
}

// checkMatch mirrors the matches table constraints. Must be called with d.mu
// held.
func (d *dataset) checkMatch(item match.Match, selfID int64) error {
	if _, ok := d.teams[item.Team1ID]; !ok {
		return match.ErrUnknownTeam
	}
	if _, ok := d.teams[item.Team2ID]; !ok {
		return match.ErrUnknownTeam
	}

	key := item.Pairing().Normalize()
	for id, other := range d.matches {
		if id != selfID && other.Pairing().Normalize() == key {
			return match.ErrDuplicate
		}
	}

	return nil
}

func (d *dataset) withMatchNames(item match.Match) match.Match {
	item.Team1Name = d.teams[item.Team1ID].Name
	item.Team2Name = d.teams[item.Team2ID].Name
	return item
}

func stripMatchNames(item match.Match) match.Match {
	item.Team1Name = ""
	item.Team2Name = ""
	return item
}
