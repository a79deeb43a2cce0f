package team

import (
	"context"
	"errors"
)

// ErrStillReferenced is returned when a team cannot be removed because players
// or matches point at it.
var ErrStillReferenced = errors.New("team is still referenced by players or matches")

// Repository describes team persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Team) (int64, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, item Team) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	CountByID(ctx context.Context, id int64) (int, error)
}
