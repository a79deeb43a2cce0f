package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
)

// BatchDeleteResult reports a batch delete. NotFound keeps the raw ids as the
// caller typed them, including malformed ones.
type BatchDeleteResult struct {
	Deleted  []int64
	NotFound []string
}

type batchDeleter struct {
	exists func(ctx context.Context, tx storage.Store, id int64) (bool, error)
	delete func(ctx context.Context, tx storage.Store, ids []int64) error
}

// dedupeRawIDs trims ids and drops blanks and repeats, first occurrence wins.
func dedupeRawIDs(rawIDs []string) []string {
	seen := make(map[string]struct{}, len(rawIDs))
	out := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}
		out = append(out, raw)
	}
	return out
}

func deleteMany(
	ctx context.Context,
	store storage.Store,
	checker *validation.Checker,
	rawIDs []string,
	d batchDeleter,
) (BatchDeleteResult, error) {
	requested := dedupeRawIDs(rawIDs)
	missing := make(map[string]struct{}, len(requested))

	type candidate struct {
		raw string
		id  int64
	}
	candidates := make([]candidate, 0, len(requested))
	seenIDs := make(map[int64]struct{}, len(requested))
	for _, raw := range requested {
		id, err := checker.Identifier(raw)
		if err != nil {
			missing[raw] = struct{}{}
			continue
		}
		if _, ok := seenIDs[id]; ok {
			continue
		}
		seenIDs[id] = struct{}{}
		candidates = append(candidates, candidate{raw: raw, id: id})
	}

	deleted := []int64{}
	if len(candidates) > 0 {
		err := store.WithinTx(ctx, func(tx storage.Store) error {
			found := make([]int64, 0, len(candidates))
			for _, c := range candidates {
				ok, err := d.exists(ctx, tx, c.id)
				if err != nil {
					return storageFailure("lookup before delete", err)
				}
				if !ok {
					missing[c.raw] = struct{}{}
					continue
				}
				found = append(found, c.id)
			}

			if len(found) > 0 {
				if err := d.delete(ctx, tx, found); err != nil {
					return err
				}
			}
			deleted = found
			return nil
		})
		if err != nil {
			return BatchDeleteResult{}, err
		}
	}

	notFound := make([]string, 0, len(missing))
	for _, raw := range requested {
		if _, ok := missing[raw]; ok {
			notFound = append(notFound, raw)
		}
	}

	return BatchDeleteResult{Deleted: deleted, NotFound: notFound}, nil
}
