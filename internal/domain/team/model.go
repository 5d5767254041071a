package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is one save slot: a club managed from a chosen epoch. CurrentlyOn
// is the simulated current date; advancing it drives every player-status
// derivation on the roster.
type Team struct {
	ID          string
	UserID      string
	Name        string
	StartedOn   time.Time
	CurrentlyOn time.Time
	Currency    string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return fmt.Errorf("team user id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.StartedOn.IsZero() {
		return fmt.Errorf("team start date is required")
	}
	if t.CurrentlyOn.Before(t.StartedOn) {
		return fmt.Errorf("team current date cannot precede the start date")
	}
	return nil
}

// SeasonRange returns the half-open [from, to) window of the season
// containing ref. Seasons are one-year windows anchored to the save's
// start-date anniversary, used to bucket competitions and transfers.
func (t Team) SeasonRange(ref time.Time) (time.Time, time.Time) {
	years := ref.Year() - t.StartedOn.Year()
	from := t.StartedOn.AddDate(years, 0, 0)
	if ref.Before(from) {
		from = t.StartedOn.AddDate(years-1, 0, 0)
	}
	return from, from.AddDate(1, 0, 0)
}

// SeasonLabel renders the season containing ref in "2024/25" form.
func (t Team) SeasonLabel(ref time.Time) string {
	from, to := t.SeasonRange(ref)
	last := to.AddDate(0, 0, -1)
	if from.Year() == last.Year() {
		return fmt.Sprintf("%d", from.Year())
	}
	return fmt.Sprintf("%d/%02d", from.Year(), last.Year()%100)
}
