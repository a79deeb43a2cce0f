package match

import (
	"fmt"
	"strings"
	"time"
)

// Match is one game played between two teams on a calendar date.
// Team names are only populated on reads.
type Match struct {
	ID         int64
	Team1ID    int64
	Team2ID    int64
	Team1Name  string
	Team2Name  string
	Team1Goals int
	Team2Goals int
	MatchDate  time.Time
	Tournament string
}

// Pairing identifies a match regardless of which side is listed first.
type Pairing struct {
	Team1ID   int64
	Team2ID   int64
	MatchDate time.Time
}

func (m Match) Pairing() Pairing {
	return Pairing{
		Team1ID:   m.Team1ID,
		Team2ID:   m.Team2ID,
		MatchDate: m.MatchDate,
	}
}

// Normalize orders the pair so that equal pairings compare equal.
func (p Pairing) Normalize() Pairing {
	if p.Team2ID < p.Team1ID {
		p.Team1ID, p.Team2ID = p.Team2ID, p.Team1ID
	}
	p.MatchDate = DateOnly(p.MatchDate)
	return p
}

func (m Match) Validate() error {
	if m.ID < 0 {
		return fmt.Errorf("match id must not be negative")
	}
	if m.Team1ID <= 0 || m.Team2ID <= 0 {
		return fmt.Errorf("match team ids are required")
	}
	if m.Team1ID == m.Team2ID {
		return fmt.Errorf("match teams must be different")
	}
	if m.Team1Goals < 0 || m.Team2Goals < 0 {
		return fmt.Errorf("match goals must not be negative")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if strings.TrimSpace(m.Tournament) == "" {
		return fmt.Errorf("match tournament is required")
	}

	return nil
}

// DateOnly drops the clock part of t, keeping its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
