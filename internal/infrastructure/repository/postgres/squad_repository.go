package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gafferhq/gaffer/internal/domain/squad"
	qb "github.com/gafferhq/gaffer/internal/platform/querybuilder"
)

type SquadRepository struct {
	db *sqlx.DB
}

var squadSelectColumns = []string{
	"id",
	"public_id",
	"team_public_id",
	"name",
	"player_ids",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) Create(ctx context.Context, s squad.Squad) (squad.Squad, error) {
	playerIDs, err := jsonbValue(nonNil(s.PlayerIDs))
	if err != nil {
		return squad.Squad{}, err
	}

	query, args, err := qb.InsertModel("squads", squadInsertModel{
		PublicID:  s.ID,
		TeamID:    s.TeamID,
		Name:      s.Name,
		PlayerIDs: playerIDs,
	}, "")
	if err != nil {
		return squad.Squad{}, fmt.Errorf("build insert squad query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return squad.Squad{}, fmt.Errorf("insert squad: %w", err)
	}
	return s, nil
}

func (r *SquadRepository) GetByID(ctx context.Context, squadID string) (squad.Squad, bool, error) {
	query, args, err := qb.Select(squadSelectColumns...).From("squads").
		Where(
			qb.Eq("public_id", squadID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return squad.Squad{}, false, fmt.Errorf("build select squad query: %w", err)
	}

	var row squadTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return squad.Squad{}, false, nil
		}
		return squad.Squad{}, false, fmt.Errorf("select squad: %w", err)
	}

	s, err := squadFromRow(row)
	if err != nil {
		return squad.Squad{}, false, err
	}
	return s, true, nil
}

func (r *SquadRepository) ListByTeam(ctx context.Context, teamID string) ([]squad.Squad, error) {
	query, args, err := qb.Select(squadSelectColumns...).From("squads").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select squads by team query: %w", err)
	}

	var rows []squadTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select squads by team: %w", err)
	}

	out := make([]squad.Squad, 0, len(rows))
	for _, row := range rows {
		s, err := squadFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SquadRepository) Update(ctx context.Context, s squad.Squad) error {
	playerIDs, err := jsonbValue(nonNil(s.PlayerIDs))
	if err != nil {
		return err
	}

	query, args, err := qb.Update("squads").
		Set("name", s.Name).
		Set("player_ids", playerIDs).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", s.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update squad query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update squad: %w", err)
	}
	return nil
}

func (r *SquadRepository) Delete(ctx context.Context, squadID string) error {
	query, args, err := qb.Update("squads").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", squadID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete squad query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete squad: %w", err)
	}
	return nil
}

func squadFromRow(row squadTableModel) (squad.Squad, error) {
	s := squad.Squad{
		ID:     row.PublicID,
		TeamID: row.TeamID,
		Name:   row.Name,
	}
	if err := fromJSONB(row.PlayerIDs, &s.PlayerIDs); err != nil {
		return squad.Squad{}, err
	}
	return s, nil
}
