package postgres

import (
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

const dateLayout = time.DateOnly

const (
	uniqueViolation     = "unique_violation"
	foreignKeyViolation = "foreign_key_violation"
)

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

// constraintSentinels tells mapConstraintError which domain error a violated
// constraint class stands for. Nil leaves that class untranslated.
type constraintSentinels struct {
	unique     error
	foreignKey error
}

// mapConstraintError turns a postgres constraint violation into the matching
// domain sentinel, keeping the driver error as secondary context.
func mapConstraintError(err error, sentinels constraintSentinels) error {
	var pqErr *pq.Error
	if !crerr.As(err, &pqErr) {
		return err
	}

	var sentinel error
	switch pqErr.Code.Name() {
	case uniqueViolation:
		sentinel = sentinels.unique
	case foreignKeyViolation:
		sentinel = sentinels.foreignKey
	}
	if sentinel == nil {
		return err
	}

	return crerr.WithSecondaryError(crerr.Wrapf(sentinel, "constraint %s", pqErr.Constraint), err)
}

func int64SliceToAny(items []int64) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
