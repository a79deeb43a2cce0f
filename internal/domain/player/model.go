package player

import (
	"fmt"
	"strings"
	"time"
)

// Position represents the football position a player is registered at.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Positions lists the positions in menu order.
var Positions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a registered footballer. TeamName is only populated on reads.
type Player struct {
	ID        int64
	Name      string
	Surname   string
	BirthDate time.Time
	Country   string
	Position  Position
	TeamID    int64
	TeamName  string
}

// Identity is the tuple that must be unique across players.
type Identity struct {
	Name      string
	Surname   string
	BirthDate time.Time
	Country   string
}

func (p Player) Identity() Identity {
	return Identity{
		Name:      p.Name,
		Surname:   p.Surname,
		BirthDate: p.BirthDate,
		Country:   p.Country,
	}
}

func (p Player) Validate() error {
	if p.ID < 0 {
		return fmt.Errorf("player id must not be negative")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Surname) == "" {
		return fmt.Errorf("player surname is required")
	}
	if strings.TrimSpace(p.Country) == "" {
		return fmt.Errorf("player country is required")
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("player birth date is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}

	return nil
}
