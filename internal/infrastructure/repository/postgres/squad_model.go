package postgres

import "time"

type squadTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	TeamID    string     `db:"team_public_id"`
	Name      string     `db:"name"`
	PlayerIDs []byte     `db:"player_ids"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type squadInsertModel struct {
	PublicID  string `db:"public_id"`
	TeamID    string `db:"team_public_id"`
	Name      string `db:"name"`
	PlayerIDs []byte `db:"player_ids"`
}
