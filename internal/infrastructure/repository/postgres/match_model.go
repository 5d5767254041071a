package postgres

import "time"

// matchTableModel mirrors the matches table. Goals, bookings, and
// substitutions are jsonb sequences stored wholesale with the row.
type matchTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	TeamID         string     `db:"team_public_id"`
	CompetitionID  string     `db:"competition_public_id"`
	HomeTeam       string     `db:"home_team"`
	AwayTeam       string     `db:"away_team"`
	OccurredOn     time.Time  `db:"occurred_on"`
	ExtraTime      bool       `db:"extra_time"`
	HomeScore      int        `db:"home_score"`
	AwayScore      int        `db:"away_score"`
	HomePenScore   *int       `db:"home_pen_score"`
	AwayPenScore   *int       `db:"away_pen_score"`
	HomePossession *int       `db:"home_possession"`
	AwayPossession *int       `db:"away_possession"`
	HomeXG         *float64   `db:"home_xg"`
	AwayXG         *float64   `db:"away_xg"`
	Attendance     *int       `db:"attendance"`
	Goals          []byte     `db:"goals"`
	Bookings       []byte     `db:"bookings"`
	Changes        []byte     `db:"changes"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID       string    `db:"public_id"`
	TeamID         string    `db:"team_public_id"`
	CompetitionID  string    `db:"competition_public_id"`
	HomeTeam       string    `db:"home_team"`
	AwayTeam       string    `db:"away_team"`
	OccurredOn     time.Time `db:"occurred_on"`
	ExtraTime      bool      `db:"extra_time"`
	HomeScore      int       `db:"home_score"`
	AwayScore      int       `db:"away_score"`
	HomePenScore   *int      `db:"home_pen_score"`
	AwayPenScore   *int      `db:"away_pen_score"`
	HomePossession *int      `db:"home_possession"`
	AwayPossession *int      `db:"away_possession"`
	HomeXG         *float64  `db:"home_xg"`
	AwayXG         *float64  `db:"away_xg"`
	Attendance     *int      `db:"attendance"`
	Goals          []byte    `db:"goals"`
	Bookings       []byte    `db:"bookings"`
	Changes        []byte    `db:"changes"`
}
