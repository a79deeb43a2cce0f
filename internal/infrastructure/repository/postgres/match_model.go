package postgres

import "time"

type matchTableModel struct {
	ID         int64     `db:"match_id"`
	Team1ID    int64     `db:"team_1_id"`
	Team2ID    int64     `db:"team_2_id"`
	Team1Name  string    `db:"team_1_name"`
	Team2Name  string    `db:"team_2_name"`
	Team1Goals int       `db:"team_1_goals"`
	Team2Goals int       `db:"team_2_goals"`
	MatchDate  time.Time `db:"match_date"`
	Tournament string    `db:"tournament"`
}

type matchWriteModel struct {
	Team1ID    int64  `db:"team_1_id"`
	Team2ID    int64  `db:"team_2_id"`
	Team1Goals int    `db:"team_1_goals"`
	Team2Goals int    `db:"team_2_goals"`
	MatchDate  string `db:"match_date"`
	Tournament string `db:"tournament"`
}
