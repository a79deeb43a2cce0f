package player

import (
	"context"
	"errors"
)

var (
	// ErrDuplicate is returned by storage when the identity tuple is already taken.
	ErrDuplicate = errors.New("player with the same name, surname, birth date and country already exists")
	// ErrUnknownTeam is returned by storage when team_id points nowhere.
	ErrUnknownTeam = errors.New("player team does not exist")
)

// Repository describes player persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Player) (int64, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
	Update(ctx context.Context, item Player) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	// CountDuplicates counts players sharing identity case-insensitively,
	// ignoring excludeID (0 excludes nothing).
	CountDuplicates(ctx context.Context, identity Identity, excludeID int64) (int, error)
}
