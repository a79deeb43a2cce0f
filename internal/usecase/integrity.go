package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/team"
)

func teamExists(ctx context.Context, teams team.Repository, id int64) (bool, error) {
	count, err := teams.CountByID(ctx, id)
	if err != nil {
		return false, storageFailure("count team", err)
	}
	return count > 0, nil
}

// requireTeam fails with ErrReference when the team behind field is missing.
func requireTeam(ctx context.Context, teams team.Repository, field string, id int64) error {
	ok, err := teamExists(ctx, teams, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: team does not exist (%s %d)", ErrReference, field, id)
	}
	return nil
}

func checkPlayerUnique(ctx context.Context, players player.Repository, item player.Player) error {
	count, err := players.CountDuplicates(ctx, item.Identity(), item.ID)
	if err != nil {
		return storageFailure("count duplicate players", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %w", ErrConflict, player.ErrDuplicate)
	}
	return nil
}

func checkMatchUnique(ctx context.Context, matches match.Repository, item match.Match) error {
	count, err := matches.CountOverlapping(ctx, item.Pairing(), item.ID)
	if err != nil {
		return storageFailure("count overlapping matches", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %w", ErrConflict, match.ErrDuplicate)
	}
	return nil
}
