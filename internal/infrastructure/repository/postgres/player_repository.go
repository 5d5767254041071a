package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gafferhq/gaffer/internal/domain/player"
	qb "github.com/gafferhq/gaffer/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"team_public_id",
	"name",
	"nationality",
	"position",
	"secondary_positions",
	"kit_no",
	"ovr",
	"value",
	"birth_year",
	"status",
	"contracts",
	"injuries",
	"loans",
	"transfers",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	model, err := playerInsertFromDomain(p)
	if err != nil {
		return player.Player{}, err
	}

	query, args, err := qb.InsertModel("players", model, "")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return p, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	p, err := playerFromRow(row)
	if err != nil {
		return player.Player{}, false, err
	}
	return p, true, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	model, err := playerInsertFromDomain(p)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("players").
		Set("name", model.Name).
		Set("nationality", model.Nationality).
		Set("position", model.Position).
		Set("secondary_positions", model.SecondaryPos).
		Set("kit_no", model.KitNo).
		Set("ovr", model.OVR).
		Set("value", model.Value).
		Set("birth_year", model.BirthYear).
		Set("status", model.Status).
		Set("contracts", model.Contracts).
		Set("injuries", model.Injuries).
		Set("loans", model.Loans).
		Set("transfers", model.Transfers).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", p.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) UpdateStatus(ctx context.Context, playerID string, status player.Status, clearKit bool) error {
	builder := qb.Update("players").
		Set("status", string(status)).
		SetExpr("updated_at", "NOW()")
	if clearKit {
		builder = builder.SetExpr("kit_no", "NULL")
	}

	query, args, err := builder.
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player status query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player status: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete player: %w", err)
	}
	return nil
}

func playerInsertFromDomain(p player.Player) (playerInsertModel, error) {
	secondary, err := jsonbValue(nonNil(p.SecondaryPos))
	if err != nil {
		return playerInsertModel{}, err
	}
	contracts, err := jsonbValue(nonNil(p.Contracts))
	if err != nil {
		return playerInsertModel{}, err
	}
	injuries, err := jsonbValue(nonNil(p.Injuries))
	if err != nil {
		return playerInsertModel{}, err
	}
	loans, err := jsonbValue(nonNil(p.Loans))
	if err != nil {
		return playerInsertModel{}, err
	}
	transfers, err := jsonbValue(nonNil(p.Transfers))
	if err != nil {
		return playerInsertModel{}, err
	}

	return playerInsertModel{
		PublicID:     p.ID,
		TeamID:       p.TeamID,
		Name:         p.Name,
		Nationality:  p.Nationality,
		Position:     string(p.Pos),
		SecondaryPos: secondary,
		KitNo:        p.KitNo,
		OVR:          p.OVR,
		Value:        p.Value,
		BirthYear:    p.BirthYear,
		Status:       string(p.Status),
		Contracts:    contracts,
		Injuries:     injuries,
		Loans:        loans,
		Transfers:    transfers,
	}, nil
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	p := player.Player{
		ID:          row.PublicID,
		TeamID:      row.TeamID,
		Name:        row.Name,
		Nationality: row.Nationality,
		Pos:         player.Position(row.Position),
		KitNo:       row.KitNo,
		OVR:         row.OVR,
		Value:       row.Value,
		BirthYear:   row.BirthYear,
		Status:      player.Status(row.Status),
	}
	if err := fromJSONB(row.SecondaryPos, &p.SecondaryPos); err != nil {
		return player.Player{}, err
	}
	if err := fromJSONB(row.Contracts, &p.Contracts); err != nil {
		return player.Player{}, err
	}
	if err := fromJSONB(row.Injuries, &p.Injuries); err != nil {
		return player.Player{}, err
	}
	if err := fromJSONB(row.Loans, &p.Loans); err != nil {
		return player.Player{}, err
	}
	if err := fromJSONB(row.Transfers, &p.Transfers); err != nil {
		return player.Player{}, err
	}
	return p, nil
}

// nonNil normalizes nil slices so jsonb columns always hold an array.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
