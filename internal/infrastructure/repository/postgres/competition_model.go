package postgres

import "time"

type competitionTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	TeamID    string     `db:"team_public_id"`
	Name      string     `db:"name"`
	Season    string     `db:"season"`
	Format    string     `db:"format"`
	Table     []byte     `db:"standings"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type competitionInsertModel struct {
	PublicID string `db:"public_id"`
	TeamID   string `db:"team_public_id"`
	Name     string `db:"name"`
	Season   string `db:"season"`
	Format   string `db:"format"`
	Table    []byte `db:"standings"`
}
