package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/football-registry/internal/domain/team"
)

type TeamRepository struct {
	data *dataset
	inTx bool
}

func (r *TeamRepository) Insert(_ context.Context, item team.Team) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validate team: %w", err)
	}

	var id int64
	err := r.data.write(r.inTx, func() error {
		r.data.nextTeamID++
		id = r.data.nextTeamID
		item.ID = id
		r.data.teams[id] = item
		return nil
	})
	return id, err
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	var (
		item team.Team
		ok   bool
	)
	r.data.read(func() {
		item, ok = r.data.teams[id]
	})
	return item, ok, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	var out []team.Team
	r.data.read(func() {
		out = make([]team.Team, 0, len(r.data.teams))
		for _, item := range r.data.teams {
			out = append(out, item)
		}
	})
	slices.SortFunc(out, func(a, b team.Team) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate team: %w", err)
	}

	return r.data.write(r.inTx, func() error {
		if _, ok := r.data.teams[item.ID]; !ok {
			return nil
		}
		r.data.teams[item.ID] = item
		return nil
	})
}

func (r *TeamRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteByIDs(ctx, []int64{id})
}

// DeleteByIDs refuses the whole batch if any team is still referenced.
func (r *TeamRepository) DeleteByIDs(_ context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	return r.data.write(r.inTx, func() error {
		for _, id := range ids {
			if r.data.teamReferenced(id) {
				return team.ErrStillReferenced
			}
		}
		for _, id := range ids {
			delete(r.data.teams, id)
		}
		return nil
	})
}

func (r *TeamRepository) CountByID(_ context.Context, id int64) (int, error) {
	count := 0
	r.data.read(func() {
		if _, ok := r.data.teams[id]; ok {
			count = 1
		}
	})
	return count, nil
}

// teamReferenced must be called with d.mu held.
func (d *dataset) teamReferenced(id int64) bool {
	for _, p := range d.players {
		if p.TeamID == id {
			return true
		}
	}
	for _, m := range d.matches {
		if m.Team1ID == id || m.Team2ID == id {
			return true
		}
	}
	return false
}
