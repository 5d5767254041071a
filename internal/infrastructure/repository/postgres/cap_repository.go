package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gafferhq/gaffer/internal/domain/cap"
	"github.com/gafferhq/gaffer/internal/domain/player"
	qb "github.com/gafferhq/gaffer/internal/platform/querybuilder"
)

type CapRepository struct {
	db *sqlx.DB
}

var capSelectColumns = []string{
	"id",
	"public_id",
	"match_public_id",
	"player_public_id",
	"player_name",
	"position",
	"start_minute",
	"stop_minute",
	"kit_no",
	"ovr",
	"num_goals",
	"num_own_goals",
	"num_assists",
	"num_yellow_cards",
	"num_red_cards",
	"clean_sheet",
	"rating",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewCapRepository(db *sqlx.DB) *CapRepository {
	return &CapRepository{db: db}
}

func (r *CapRepository) Create(ctx context.Context, c cap.Cap) (cap.Cap, error) {
	query, args, err := qb.InsertModel("caps", capInsertFromDomain(c), "")
	if err != nil {
		return cap.Cap{}, fmt.Errorf("build insert cap query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return cap.Cap{}, fmt.Errorf("insert cap: %w", err)
	}
	return c, nil
}

func (r *CapRepository) GetByID(ctx context.Context, capID string) (cap.Cap, bool, error) {
	query, args, err := qb.Select(capSelectColumns...).From("caps").
		Where(
			qb.Eq("public_id", capID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return cap.Cap{}, false, fmt.Errorf("build select cap query: %w", err)
	}

	var row capTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return cap.Cap{}, false, nil
		}
		return cap.Cap{}, false, fmt.Errorf("select cap: %w", err)
	}
	return capFromRow(row), true, nil
}

func (r *CapRepository) ListByMatch(ctx context.Context, matchID string) ([]cap.Cap, error) {
	query, args, err := qb.Select(capSelectColumns...).From("caps").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select caps by match query: %w", err)
	}
	return r.selectCaps(ctx, query, args)
}

func (r *CapRepository) ListByPlayer(ctx context.Context, playerID string) ([]cap.Cap, error) {
	query, args, err := qb.Select(capSelectColumns...).From("caps").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select caps by player query: %w", err)
	}
	return r.selectCaps(ctx, query, args)
}

func (r *CapRepository) selectCaps(ctx context.Context, query string, args []any) ([]cap.Cap, error) {
	var rows []capTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select caps: %w", err)
	}

	out := make([]cap.Cap, 0, len(rows))
	for _, row := range rows {
		out = append(out, capFromRow(row))
	}
	return out, nil
}

func (r *CapRepository) Update(ctx context.Context, c cap.Cap) error {
	model := capInsertFromDomain(c)
	query, args, err := qb.Update("caps").
		Set("player_public_id", model.PlayerID).
		Set("player_name", model.PlayerName).
		Set("position", model.Position).
		Set("start_minute", model.StartMinute).
		Set("stop_minute", model.StopMinute).
		Set("kit_no", model.KitNo).
		Set("ovr", model.OVR).
		Set("num_goals", model.NumGoals).
		Set("num_own_goals", model.NumOwnGoals).
		Set("num_assists", model.NumAssists).
		Set("num_yellow_cards", model.NumYellowCards).
		Set("num_red_cards", model.NumRedCards).
		Set("clean_sheet", model.CleanSheet).
		Set("rating", model.Rating).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", c.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update cap query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update cap: %w", err)
	}
	return nil
}

func (r *CapRepository) Delete(ctx context.Context, capID string) error {
	query, args, err := qb.Update("caps").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", capID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete cap query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete cap: %w", err)
	}
	return nil
}

func (r *CapRepository) DeleteSubstituteCaps(ctx context.Context, matchID string) error {
	query, args, err := qb.Update("caps").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.Expr("start_minute > ?", 0),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete substitute caps query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete substitute caps: %w", err)
	}
	return nil
}

func capInsertFromDomain(c cap.Cap) capInsertModel {
	return capInsertModel{
		PublicID:       c.ID,
		MatchID:        c.MatchID,
		PlayerID:       c.PlayerID,
		PlayerName:     c.PlayerName,
		Position:       string(c.Pos),
		StartMinute:    c.StartMinute,
		StopMinute:     c.StopMinute,
		KitNo:          c.KitNo,
		OVR:            c.OVR,
		NumGoals:       c.NumGoals,
		NumOwnGoals:    c.NumOwnGoals,
		NumAssists:     c.NumAssists,
		NumYellowCards: c.NumYellowCards,
		NumRedCards:    c.NumRedCards,
		CleanSheet:     c.CleanSheet,
		Rating:         c.Rating,
	}
}

func capFromRow(row capTableModel) cap.Cap {
	return cap.Cap{
		ID:             row.PublicID,
		MatchID:        row.MatchID,
		PlayerID:       row.PlayerID,
		PlayerName:     row.PlayerName,
		Pos:            player.Position(row.Position),
		StartMinute:    row.StartMinute,
		StopMinute:     row.StopMinute,
		KitNo:          row.KitNo,
		OVR:            row.OVR,
		NumGoals:       row.NumGoals,
		NumOwnGoals:    row.NumOwnGoals,
		NumAssists:     row.NumAssists,
		NumYellowCards: row.NumYellowCards,
		NumRedCards:    row.NumRedCards,
		CleanSheet:     row.CleanSheet,
		Rating:         row.Rating,
	}
}
