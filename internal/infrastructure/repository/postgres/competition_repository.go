package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gafferhq/gaffer/internal/domain/competition"
	qb "github.com/gafferhq/gaffer/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

var competitionSelectColumns = []string{
	"id",
	"public_id",
	"team_public_id",
	"name",
	"season",
	"format",
	"standings",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) Create(ctx context.Context, c competition.Competition) (competition.Competition, error) {
	table, err := jsonbValue(nonNil(c.Table))
	if err != nil {
		return competition.Competition{}, err
	}

	query, args, err := qb.InsertModel("competitions", competitionInsertModel{
		PublicID: c.ID,
		TeamID:   c.TeamID,
		Name:     c.Name,
		Season:   c.Season,
		Format:   string(c.Format),
		Table:    table,
	}, "")
	if err != nil {
		return competition.Competition{}, fmt.Errorf("build insert competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return competition.Competition{}, fmt.Errorf("insert competition: %w", err)
	}
	return c, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	query, args, err := qb.Select(competitionSelectColumns...).From("competitions").
		Where(
			qb.Eq("public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build select competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("select competition: %w", err)
	}

	c, err := competitionFromRow(row)
	if err != nil {
		return competition.Competition{}, false, err
	}
	return c, true, nil
}

func (r *CompetitionRepository) ListByTeam(ctx context.Context, teamID string) ([]competition.Competition, error) {
	query, args, err := qb.Select(competitionSelectColumns...).From("competitions").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitions by team query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions by team: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		c, err := competitionFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CompetitionRepository) Update(ctx context.Context, c competition.Competition) error {
	table, err := jsonbValue(nonNil(c.Table))
	if err != nil {
		return err
	}

	query, args, err := qb.Update("competitions").
		Set("name", c.Name).
		Set("season", c.Season).
		Set("format", string(c.Format)).
		Set("standings", table).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", c.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update competition: %w", err)
	}
	return nil
}

func (r *CompetitionRepository) Delete(ctx context.Context, competitionID string) error {
	query, args, err := qb.Update("competitions").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete competition: %w", err)
	}
	return nil
}

func competitionFromRow(row competitionTableModel) (competition.Competition, error) {
	c := competition.Competition{
		ID:     row.PublicID,
		TeamID: row.TeamID,
		Name:   row.Name,
		Season: row.Season,
		Format: competition.Format(row.Format),
	}
	if err := fromJSONB(row.Table, &c.Table); err != nil {
		return competition.Competition{}, err
	}
	return c, nil
}
