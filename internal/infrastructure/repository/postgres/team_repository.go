package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-registry/internal/domain/team"
	qb "github.com/riskibarqy/football-registry/internal/platform/querybuilder"
)

type TeamRepository struct {
	db sqlx.ExtContext
}

var teamSelectColumns = []string{
	"team_id",
	"name",
	"country",
	"created_at",
	"updated_at",
}

var teamDeleteSentinels = constraintSentinels{foreignKey: team.ErrStillReferenced}

func NewTeamRepository(db sqlx.ExtContext) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validate team: %w", err)
	}

	query, args, err := qb.InsertModel("teams", teamInsertModel{
		Name:    item.Name,
		Country: item.Country,
	}, "RETURNING team_id")
	if err != nil {
		return 0, fmt.Errorf("build insert team query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.db, &id, query, args...); err != nil {
		return 0, crerr.Wrap(err, "insert team")
	}

	return id, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("team_id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrapf(err, "select team %d", id)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate team: %w", err)
	}

	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("country", item.Country).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("team_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "update team %d", item.ID)
	}

	return nil
}

func (r *TeamRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteByIDs(ctx, []int64{id})
}

func (r *TeamRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.DeleteFrom("teams").
		Where(qb.In("team_id", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete teams query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapConstraintError(crerr.Wrap(err, "delete teams"), teamDeleteSentinels)
	}

	return nil
}

func (r *TeamRepository) CountByID(ctx context.Context, id int64) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("teams").
		Where(qb.Eq("team_id", id)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count team query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, crerr.Wrapf(err, "count team %d", id)
	}

	return count, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:      row.ID,
		Name:    row.Name,
		Country: row.Country,
	}
}
