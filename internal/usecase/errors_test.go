package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/football-registry/internal/domain/match"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	"github.com/riskibarqy/football-registry/internal/domain/team"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "player duplicate", err: fmt.Errorf("insert player: %w", player.ErrDuplicate), want: ErrConflict},
		{name: "match duplicate", err: match.ErrDuplicate, want: ErrConflict},
		{name: "unknown player team", err: player.ErrUnknownTeam, want: ErrReference},
		{name: "unknown match team", err: match.ErrUnknownTeam, want: ErrReference},
		{name: "team still referenced", err: team.ErrStillReferenced, want: ErrReference},
		{name: "already classified", err: fmt.Errorf("%w: team 4", ErrNotFound), want: ErrNotFound},
		{name: "driver failure", err: errors.New("connection refused"), want: ErrStorage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify("op", tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("expected underlying error to stay in chain, got %v", got)
			}
		})
	}

	if classify("op", nil) != nil {
		t.Fatalf("expected nil to stay nil")
	}
}
