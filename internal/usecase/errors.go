package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/team"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrReference    = errors.New("reference error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("resource not found")
	ErrStorage      = errors.New("storage failure")
)

var errorKinds = []error{ErrInvalidInput, ErrReference, ErrConflict, ErrNotFound, ErrStorage}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// classify assigns an error kind to err. Errors that already carry a kind are
// returned as is; storage constraint sentinels map to conflict or reference.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return err
		}
	}

	switch {
	case errors.Is(err, player.ErrDuplicate), errors.Is(err, match.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, player.ErrUnknownTeam),
		errors.Is(err, match.ErrUnknownTeam),
		errors.Is(err, team.ErrStillReferenced):
		return fmt.Errorf("%w: %w", ErrReference, err)
	default:
		return storageFailure(op, err)
	}
}

// logFailure records a failed operation. Rejected input is routine; storage
// failures are not.
func logFailure(ctx context.Context, logger *logging.Logger, op string, err error) {
	if errors.Is(err, ErrStorage) {
		logger.ErrorContext(ctx, "operation failed", "op", op, "error", err)
		return
	}
	logger.DebugContext(ctx, "operation rejected", "op", op, "error", err)
}
