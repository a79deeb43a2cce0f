package postgres

import "time"

type playerTableModel struct {
	ID        int64     `db:"player_id"`
	Name      string    `db:"name"`
	Surname   string    `db:"surname"`
	BirthDate time.Time `db:"birth_date"`
	Country   string    `db:"country"`
	Position  string    `db:"position"`
	TeamID    int64     `db:"team_id"`
	TeamName  string    `db:"team_name"`
}

type playerWriteModel struct {
	Name      string `db:"name"`
	Surname   string `db:"surname"`
	BirthDate string `db:"birth_date"`
	Country   string `db:"country"`
	Position  string `db:"position"`
	TeamID    int64  `db:"team_id"`
}
