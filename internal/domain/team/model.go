package team

import (
	"fmt"
	"strings"
)

// Team is a football club that players belong to and matches are played between.
type Team struct {
	ID      int64
	Name    string
	Country string
}

// Validate checks the invariants storage relies on. Field-level rules live in
// the validation package.
func (t Team) Validate() error {
	if t.ID < 0 {
		return fmt.Errorf("team id must not be negative")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Country) == "" {
		return fmt.Errorf("team country is required")
	}

	return nil
}
