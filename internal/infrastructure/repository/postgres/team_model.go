package postgres

import "time"

type teamTableModel struct {
	ID        int64     `db:"team_id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamInsertModel struct {
	Name    string `db:"name"`
	Country string `db:"country"`
}
