package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-registry/internal/domain/player"
)

const (
	DateLayout          = "2006-01-02"
	MinPlayerAge        = 16
	MaxTournamentLength = 32
	MaxTeamNameLength   = 64
	MaxNameLength       = 100
)

// letters is the single alphabet accepted by every name-like field: Latin and
// Cyrillic.
const letters = `A-Za-zА-Яа-яЁё`

var (
	nameLikePattern  = regexp.MustCompile(`^[` + letters + `]+(?:[ -][` + letters + `]+)*$`)
	letterPattern    = regexp.MustCompile(`[` + letters + `]`)
	dateShapePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// FieldError is a rejected field value with a human readable reason.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func fail(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// Checker holds the field rules. Date rules evaluate "today" through clock in
// location.
type Checker struct {
	clock    clockwork.Clock
	location *time.Location
	validate *validator.Validate
	position string
}

type Option func(*Checker)

// WithLocation sets the time zone used to decide the current calendar date.
func WithLocation(loc *time.Location) Option {
	return func(c *Checker) {
		if loc != nil {
			c.location = loc
		}
	}
}

func NewChecker(clock clockwork.Clock, opts ...Option) *Checker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	names := make([]string, 0, len(player.Positions))
	for _, p := range player.Positions {
		names = append(names, string(p))
	}

	c := &Checker{
		clock:    clock,
		location: time.Local,
		validate: validator.New(),
		position: "oneof=" + strings.Join(names, " "),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Today returns the current calendar date as midnight UTC.
func (c *Checker) Today() time.Time {
	y, m, d := c.clock.Now().In(c.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NameLike validates person names, surnames and countries.
func (c *Checker) NameLike(field, value string) error {
	if value == "" {
		return fail(field, "cannot be empty")
	}
	if strings.ContainsAny(value, "0123456789") {
		return fail(field, "cannot contain numbers")
	}
	if value != strings.TrimSpace(value) {
		return fail(field, "cannot start or end with a space")
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return fail(field, "cannot exceed "+strconv.Itoa(MaxNameLength)+" characters")
	}
	if !nameLikePattern.MatchString(value) {
		return fail(field, "can only contain Latin or Cyrillic letters, single spaces or hyphens between words")
	}

	return nil
}

// TeamName allows digits ("Schalke 04") but still needs a letter.
func (c *Checker) TeamName(value string) error {
	const field = "team name"
	if strings.TrimSpace(value) == "" {
		return fail(field, "cannot be empty")
	}
	if value != strings.TrimSpace(value) {
		return fail(field, "cannot start or end with a space")
	}
	if utf8.RuneCountInString(value) > MaxTeamNameLength {
		return fail(field, "cannot exceed "+strconv.Itoa(MaxTeamNameLength)+" characters")
	}
	if !letterPattern.MatchString(value) {
		return fail(field, "must contain at least one letter")
	}

	return nil
}

// Date validates a YYYY-MM-DD calendar date that is not in the future.
func (c *Checker) Date(field, value string) (time.Time, error) {
	if !dateShapePattern.MatchString(value) {
		return time.Time{}, fail(field, "must be a date in YYYY-MM-DD format")
	}
	if err := c.validate.Var(value, "datetime="+DateLayout); err != nil {
		return time.Time{}, fail(field, "is not a valid calendar date")
	}

	parsed, err := time.Parse(DateLayout, value)
	if err != nil || parsed.Year() < 1 {
		return time.Time{}, fail(field, "is not a valid calendar date")
	}
	if parsed.After(c.Today()) {
		return time.Time{}, fail(field, "cannot be in the future")
	}

	return parsed, nil
}

// BirthDate applies the date rules plus the minimum player age.
func (c *Checker) BirthDate(value string) (time.Time, error) {
	const field = "birth date"
	born, err := c.Date(field, value)
	if err != nil {
		return time.Time{}, err
	}
	if wholeYears(born, c.Today()) < MinPlayerAge {
		return time.Time{}, fail(field, "makes the player younger than "+strconv.Itoa(MinPlayerAge))
	}

	return born, nil
}

// Goals parses an optional goal count. Empty means zero.
func (c *Checker) Goals(field, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	if err := c.validate.Var(value, "number"); err != nil {
		return 0, fail(field, "must be a non-negative integer")
	}

	goals, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fail(field, "is too large")
	}

	return int(goals), nil
}

// Tournament validates the trimmed tournament name.
func (c *Checker) Tournament(value string) error {
	const field = "tournament"
	value = strings.TrimSpace(value)
	if value == "" {
		return fail(field, "cannot be empty")
	}
	if err := c.validate.Var(value, "max="+strconv.Itoa(MaxTournamentLength)); err != nil {
		return fail(field, "cannot exceed "+strconv.Itoa(MaxTournamentLength)+" characters")
	}
	if !letterPattern.MatchString(value) {
		return fail(field, "cannot consist only of digits or special characters")
	}

	return nil
}

// Position requires one of the enumerated literals, matched exactly.
func (c *Checker) Position(value string) error {
	const field = "position"
	if value == "" {
		return fail(field, "cannot be empty")
	}
	if err := c.validate.Var(value, c.position); err != nil {
		return fail(field, "must be one of Goalkeeper, Defender, Midfielder, Forward")
	}

	return nil
}

// ForeignKey checks the shape of a referenced id before storage is consulted.
func (c *Checker) ForeignKey(field, value string) (int64, error) {
	if value == "" {
		return 0, fail(field, "cannot be empty")
	}
	if err := c.validate.Var(value, "number"); err != nil {
		return 0, fail(field, "must be a number")
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fail(field, "is out of range")
	}

	return id, nil
}

// Identifier checks the id an operation targets.
func (c *Checker) Identifier(value string) (int64, error) {
	id, err := c.ForeignKey("id", value)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fail("id", "must be a positive number")
	}

	return id, nil
}

// DistinctTeams rejects a match of a team against itself.
func (c *Checker) DistinctTeams(team1ID, team2ID int64) error {
	if team1ID == team2ID {
		return fail("team 2 id", "must differ from team 1 id")
	}
	return nil
}

func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
