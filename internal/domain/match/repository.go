package match

import (
	"context"
	"errors"
)

var (
	// ErrDuplicate is returned by storage when the pairing already exists on that date.
	ErrDuplicate = errors.New("a match between these teams on this date already exists")
	// ErrUnknownTeam is returned by storage when one of the team ids points nowhere.
	ErrUnknownTeam = errors.New("match team does not exist")
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Match) (int64, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	Update(ctx context.Context, item Match) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	// CountOverlapping counts matches on the same date between the same two
	// teams in either orientation, ignoring excludeID (0 excludes nothing).
	CountOverlapping(ctx context.Context, pairing Pairing, excludeID int64) (int, error)
}
