package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-registry/internal/domain/match"
	qb "github.com/riskibarqy/football-registry/internal/platform/querybuilder"
)

type MatchRepository struct {
	db sqlx.ExtContext
}

const matchSource = "matches m " +
	"JOIN teams t1 ON t1.team_id = m.team_1_id " +
	"JOIN teams t2 ON t2.team_id = m.team_2_id"

var matchSelectColumns = []string{
	"m.match_id",
	"m.team_1_id",
	"m.team_2_id",
	"t1.name AS team_1_name",
	"t2.name AS team_2_name",
	"m.team_1_goals",
	"m.team_2_goals",
	"m.match_date",
	"m.tournament",
}

var matchWriteSentinels = constraintSentinels{
	unique:     match.ErrDuplicate,
	foreignKey: match.ErrUnknownTeam,
}

func NewMatchRepository(db sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validate match: %w", err)
	}

	query, args, err := qb.InsertModel("matches", matchWriteModelFrom(item), "RETURNING match_id")
	if err != nil {
		return 0, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.db, &id, query, args...); err != nil {
		return 0, mapConstraintError(crerr.Wrap(err, "insert match"), matchWriteSentinels)
	}

	return id, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From(matchSource).
		Where(qb.Eq("m.match_id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "select match %d", id)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From(matchSource).
		OrderBy("m.match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate match: %w", err)
	}

	row := matchWriteModelFrom(item)
	query, args, err := qb.Update("matches").
		Set("team_1_id", row.Team1ID).
		Set("team_2_id", row.Team2ID).
		Set("team_1_goals", row.Team1Goals).
		Set("team_2_goals", row.Team2Goals).
		Set("match_date", row.MatchDate).
		Set("tournament", row.Tournament).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("match_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapConstraintError(crerr.Wrapf(err, "update match %d", item.ID), matchWriteSentinels)
	}

	return nil
}

func (r *MatchRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteByIDs(ctx, []int64{id})
}

func (r *MatchRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.DeleteFrom("matches").
		Where(qb.In("match_id", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete matches query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "delete matches")
	}

	return nil
}

func (r *MatchRepository) CountOverlapping(ctx context.Context, pairing match.Pairing, excludeID int64) (int, error) {
	p := pairing.Normalize()
	conditions := []qb.Condition{
		qb.Eq("match_date", p.MatchDate.Format(dateLayout)),
		qb.Or(
			qb.And(qb.Eq("team_1_id", p.Team1ID), qb.Eq("team_2_id", p.Team2ID)),
			qb.And(qb.Eq("team_1_id", p.Team2ID), qb.Eq("team_2_id", p.Team1ID)),
		),
	}
	if excludeID > 0 {
		conditions = append(conditions, qb.Ne("match_id", excludeID))
	}

	query, args, err := qb.Select("COUNT(1)").From("matches").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count overlapping matches query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, crerr.Wrap(err, "count overlapping matches")
	}

	return count, nil
}

func matchWriteModelFrom(item match.Match) matchWriteModel {
	return matchWriteModel{
		Team1ID:    item.Team1ID,
		Team2ID:    item.Team2ID,
		Team1Goals: item.Team1Goals,
		Team2Goals: item.Team2Goals,
		MatchDate:  item.MatchDate.Format(dateLayout),
		Tournament: item.Tournament,
	}
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		Team1ID:    row.Team1ID,
		Team2ID:    row.Team2ID,
		Team1Name:  row.Team1Name,
		Team2Name:  row.Team2Name,
		Team1Goals: row.Team1Goals,
		Team2Goals: row.Team2Goals,
		MatchDate:  match.DateOnly(row.MatchDate),
		Tournament: row.Tournament,
	}
}
