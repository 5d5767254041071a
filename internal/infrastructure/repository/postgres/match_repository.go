package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gafferhq/gaffer/internal/domain/match"
	qb "github.com/gafferhq/gaffer/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id",
	"public_id",
	"team_public_id",
	"competition_public_id",
	"home_team",
	"away_team",
	"occurred_on",
	"extra_time",
	"home_score",
	"away_score",
	"home_pen_score",
	"away_pen_score",
	"home_possession",
	"away_possession",
	"home_xg",
	"away_xg",
	"attendance",
	"goals",
	"bookings",
	"changes",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	model, err := matchInsertFromDomain(m)
	if err != nil {
		return match.Match{}, err
	}

	query, args, err := qb.InsertModel("matches", model, "")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return m, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}

	m, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return m, true, nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("occurred_on", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by team query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListByTeamBetween(ctx context.Context, teamID string, from, to time.Time) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Expr("occurred_on >= ?", from),
			qb.Expr("occurred_on < ?", to),
			qb.IsNull("deleted_at"),
		).
		OrderBy("occurred_on", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches between query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	model, err := matchInsertFromDomain(m)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("matches").
		Set("competition_public_id", model.CompetitionID).
		Set("home_team", model.HomeTeam).
		Set("away_team", model.AwayTeam).
		Set("occurred_on", model.OccurredOn).
		Set("extra_time", model.ExtraTime).
		Set("home_score", model.HomeScore).
		Set("away_score", model.AwayScore).
		Set("home_pen_score", model.HomePenScore).
		Set("away_pen_score", model.AwayPenScore).
		Set("home_possession", model.HomePossession).
		Set("away_possession", model.AwayPossession).
		Set("home_xg", model.HomeXG).
		Set("away_xg", model.AwayXG).
		Set("attendance", model.Attendance).
		Set("goals", model.Goals).
		Set("bookings", model.Bookings).
		Set("changes", model.Changes).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", m.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete match: %w", err)
	}
	return nil
}

func matchInsertFromDomain(m match.Match) (matchInsertModel, error) {
	goals, err := jsonbValue(nonNil(m.Goals))
	if err != nil {
		return matchInsertModel{}, err
	}
	bookings, err := jsonbValue(nonNil(m.Bookings))
	if err != nil {
		return matchInsertModel{}, err
	}
	changes, err := jsonbValue(nonNil(m.Changes))
	if err != nil {
		return matchInsertModel{}, err
	}

	return matchInsertModel{
		PublicID:       m.ID,
		TeamID:         m.TeamID,
		CompetitionID:  m.CompetitionID,
		HomeTeam:       m.HomeTeam,
		AwayTeam:       m.AwayTeam,
		OccurredOn:     m.OccurredOn,
		ExtraTime:      m.ExtraTime,
		HomeScore:      m.HomeScore,
		AwayScore:      m.AwayScore,
		HomePenScore:   m.HomePenScore,
		AwayPenScore:   m.AwayPenScore,
		HomePossession: m.HomePossession,
		AwayPossession: m.AwayPossession,
		HomeXG:         m.HomeXG,
		AwayXG:         m.AwayXG,
		Attendance:     m.Attendance,
		Goals:          goals,
		Bookings:       bookings,
		Changes:        changes,
	}, nil
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	m := match.Match{
		ID:             row.PublicID,
		TeamID:         row.TeamID,
		CompetitionID:  row.CompetitionID,
		HomeTeam:       row.HomeTeam,
		AwayTeam:       row.AwayTeam,
		OccurredOn:     row.OccurredOn,
		ExtraTime:      row.ExtraTime,
		HomeScore:      row.HomeScore,
		AwayScore:      row.AwayScore,
		HomePenScore:   row.HomePenScore,
		AwayPenScore:   row.AwayPenScore,
		HomePossession: row.HomePossession,
		AwayPossession: row.AwayPossession,
		HomeXG:         row.HomeXG,
		AwayXG:         row.AwayXG,
		Attendance:     row.Attendance,
	}
	if err := fromJSONB(row.Goals, &m.Goals); err != nil {
		return match.Match{}, err
	}
	if err := fromJSONB(row.Bookings, &m.Bookings); err != nil {
		return match.Match{}, err
	}
	if err := fromJSONB(row.Changes, &m.Changes); err != nil {
		return match.Match{}, err
	}
	return m, nil
}
