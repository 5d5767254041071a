package postgres

import "time"

// playerTableModel mirrors the players table. The lifecycle event
// sequences live in jsonb columns and travel with the row.
type playerTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	TeamID       string     `db:"team_public_id"`
	Name         string     `db:"name"`
	Nationality  string     `db:"nationality"`
	Position     string     `db:"position"`
	SecondaryPos []byte     `db:"secondary_positions"`
	KitNo        *int       `db:"kit_no"`
	OVR          int        `db:"ovr"`
	Value        int64      `db:"value"`
	BirthYear    int        `db:"birth_year"`
	Status       string     `db:"status"`
	Contracts    []byte     `db:"contracts"`
	Injuries     []byte     `db:"injuries"`
	Loans        []byte     `db:"loans"`
	Transfers    []byte     `db:"transfers"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID     string `db:"public_id"`
	TeamID       string `db:"team_public_id"`
	Name         string `db:"name"`
	Nationality  string `db:"nationality"`
	Position     string `db:"position"`
	SecondaryPos []byte `db:"secondary_positions"`
	KitNo        *int   `db:"kit_no"`
	OVR          int    `db:"ovr"`
	Value        int64  `db:"value"`
	BirthYear    int    `db:"birth_year"`
	Status       string `db:"status"`
	Contracts    []byte `db:"contracts"`
	Injuries     []byte `db:"injuries"`
	Loans        []byte `db:"loans"`
	Transfers    []byte `db:"transfers"`
}
