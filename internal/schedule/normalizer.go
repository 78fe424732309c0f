package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// ErrUnknownTimezone возвращается при неизвестном имени IANA-зоны
var ErrUnknownTimezone = errors.New("schedule: unknown timezone")

// Normalizer converts between absolute instants and wall-clock values in the
// single platform operating timezone. Every calendar-day, hour-of-day and
// day-of-week decision in the engine goes through it, so the computation is
// independent of the server's own zone. Nothing here assumes the zone has no
// DST: local wall-clock math is done via the time package, not hour offsets.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer loads the IANA timezone by name
func NewNormalizer(tz string) (*Normalizer, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTimezone, tz, err)
	}
	return &Normalizer{loc: loc}, nil
}

// Location returns the operating timezone
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToLocal converts an instant to local wall-clock time.
// The instant itself is unchanged: ToInstant(ToLocal(x)) == x.
func (n *Normalizer) ToLocal(t time.Time) time.Time {
	return t.In(n.loc)
}

// ToInstant returns the absolute instant of a local wall-clock value
func (n *Normalizer) ToInstant(local time.Time) time.Time {
	return local.In(n.loc)
}

// FromDateAndTime builds the instant for a local calendar date plus "HH:MM"
func (n *Normalizer) FromDateAndTime(date time.Time, t types.TimeString) time.Time {
	local := n.ToLocal(date)
	minutes := t.MinutesOfDay()
	return time.Date(local.Year(), local.Month(), local.Day(), minutes/60, minutes%60, 0, 0, n.loc)
}

// LocalDate returns local midnight of the instant's calendar day
func (n *Normalizer) LocalDate(t time.Time) time.Time {
	local := n.ToLocal(t)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, n.loc)
}

// LocalTime returns the instant's local wall-clock time of day
func (n *Normalizer) LocalTime(t time.Time) types.TimeString {
	return types.NewTimeString(n.ToLocal(t))
}

// SameLocalDay compares local calendar dates only
func (n *Normalizer) SameLocalDay(a, b time.Time) bool {
	la, lb := n.ToLocal(a), n.ToLocal(b)
	y1, m1, d1 := la.Date()
	y2, m2, d2 := lb.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Weekday returns the local day of week of the instant
func (n *Normalizer) Weekday(t time.Time) time.Weekday {
	return n.ToLocal(t).Weekday()
}
