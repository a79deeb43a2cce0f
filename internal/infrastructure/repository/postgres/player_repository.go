package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-registry/internal/domain/player"
	qb "github.com/riskibarqy/football-registry/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExtContext
}

const playerSource = "players p JOIN teams t ON t.team_id = p.team_id"

var playerSelectColumns = []string{
	"p.player_id",
	"p.name",
	"p.surname",
	"p.birth_date",
	"p.country",
	"p.position",
	"p.team_id",
	"t.name AS team_name",
}

var playerWriteSentinels = constraintSentinels{
	unique:     player.ErrDuplicate,
	foreignKey: player.ErrUnknownTeam,
}

func NewPlayerRepository(db sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validate player: %w", err)
	}

	query, args, err := qb.InsertModel("players", playerWriteModelFrom(item), "RETURNING player_id")
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.db, &id, query, args...); err != nil {
		return 0, mapConstraintError(crerr.Wrap(err, "insert player"), playerWriteSentinels)
	}

	return id, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playerSource).
		Where(qb.Eq("p.player_id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrapf(err, "select player %d", id)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playerSource).
		OrderBy("p.player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate player: %w", err)
	}

	row := playerWriteModelFrom(item)
	query, args, err := qb.Update("players").
		Set("name", row.Name).
		Set("surname", row.Surname).
		Set("birth_date", row.BirthDate).
		Set("country", row.Country).
		Set("position", row.Position).
		Set("team_id", row.TeamID).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("player_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapConstraintError(crerr.Wrapf(err, "update player %d", item.ID), playerWriteSentinels)
	}

	return nil
}

func (r *PlayerRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteByIDs(ctx, []int64{id})
}

func (r *PlayerRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.DeleteFrom("players").
		Where(qb.In("player_id", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete players query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "delete players")
	}

	return nil
}

func (r *PlayerRepository) CountDuplicates(ctx context.Context, identity player.Identity, excludeID int64) (int, error) {
	conditions := []qb.Condition{
		qb.Expr("LOWER(name) = LOWER(?)", identity.Name),
		qb.Expr("LOWER(surname) = LOWER(?)", identity.Surname),
		qb.Eq("birth_date", identity.BirthDate.Format(dateLayout)),
		qb.Expr("LOWER(country) = LOWER(?)", identity.Country),
	}
	if excludeID > 0 {
		conditions = append(conditions, qb.Ne("player_id", excludeID))
	}

	query, args, err := qb.Select("COUNT(1)").From("players").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count duplicate players query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, crerr.Wrap(err, "count duplicate players")
	}

	return count, nil
}

func playerWriteModelFrom(item player.Player) playerWriteModel {
	return playerWriteModel{
		Name:      item.Name,
		Surname:   item.Surname,
		BirthDate: item.BirthDate.Format(dateLayout),
		Country:   item.Country,
		Position:  string(item.Position),
		TeamID:    item.TeamID,
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		Name:      row.Name,
		Surname:   row.Surname,
		BirthDate: dateOnly(row.BirthDate),
		Country:   row.Country,
		Position:  player.Position(row.Position),
		TeamID:    row.TeamID,
		TeamName:  row.TeamName,
	}
}
