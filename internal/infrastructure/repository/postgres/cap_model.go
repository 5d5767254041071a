package postgres

import "time"

type capTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	MatchID        string     `db:"match_public_id"`
	PlayerID       string     `db:"player_public_id"`
	PlayerName     string     `db:"player_name"`
	Position       string     `db:"position"`
	StartMinute    int        `db:"start_minute"`
	StopMinute     int        `db:"stop_minute"`
	KitNo          *int       `db:"kit_no"`
	OVR            int        `db:"ovr"`
	NumGoals       int        `db:"num_goals"`
	NumOwnGoals    int        `db:"num_own_goals"`
	NumAssists     int        `db:"num_assists"`
	NumYellowCards int        `db:"num_yellow_cards"`
	NumRedCards    int        `db:"num_red_cards"`
	CleanSheet     bool       `db:"clean_sheet"`
	Rating         *int       `db:"rating"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type capInsertModel struct {
	PublicID       string `db:"public_id"`
	MatchID        string `db:"match_public_id"`
	PlayerID       string `db:"player_public_id"`
	PlayerName     string `db:"player_name"`
	Position       string `db:"position"`
	StartMinute    int    `db:"start_minute"`
	StopMinute     int    `db:"stop_minute"`
	KitNo          *int   `db:"kit_no"`
	OVR            int    `db:"ovr"`
	NumGoals       int    `db:"num_goals"`
	NumOwnGoals    int    `db:"num_own_goals"`
	NumAssists     int    `db:"num_assists"`
	NumYellowCards int    `db:"num_yellow_cards"`
	NumRedCards    int    `db:"num_red_cards"`
	CleanSheet     bool   `db:"clean_sheet"`
	Rating         *int   `db:"rating"`
}
