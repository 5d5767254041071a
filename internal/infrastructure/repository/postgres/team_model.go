package postgres

import "time"

type teamTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	UserID      string     `db:"user_id"`
	Name        string     `db:"name"`
	StartedOn   time.Time  `db:"started_on"`
	CurrentlyOn time.Time  `db:"currently_on"`
	Currency    string     `db:"currency"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID    string    `db:"public_id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	StartedOn   time.Time `db:"started_on"`
	CurrentlyOn time.Time `db:"currently_on"`
	Currency    string    `db:"currency"`
}
