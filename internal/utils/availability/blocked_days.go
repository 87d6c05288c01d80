// Package availability derives the set of calendar days a workspace cannot be booked on.
package availability

import (
	"sort"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// DayFormat is the date picker format used for blocked day strings.
const DayFormat = "01/02/2006"

// Day is a calendar date reduced to a day number (days since 1970-01-01), independent of
// time of day and zone.
type Day int64

const secondsPerDay = 24 * 60 * 60

// DayOf returns the calendar day of t, read in t's own location.
// Midnight UTC is a whole multiple of secondsPerDay, so the division is exact on both sides of the epoch.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// String formats the day as MM/DD/YYYY.
func (d Day) String() string {
	return d.Time().Format(DayFormat)
}

// BlockedDays is a set of booked calendar days.
type BlockedDays map[Day]struct{}

// FromBookings walks every booking from its start date to its end date, both inclusive.
// Bookings with an end before their start contribute nothing.
func FromBookings(bookings []domain.Booking) BlockedDays {
	set := make(BlockedDays)
	for _, b := range bookings {
		start, end := DayOf(b.StartDate), DayOf(b.EndDate)
		for d := start; d <= end; d++ {
			set[d] = struct{}{}
		}
	}
	return set
}

// IsBlocked reports whether t falls on a booked day.
func (s BlockedDays) IsBlocked(t time.Time) bool {
	_, ok := s[DayOf(t)]
	return ok
}

// Len returns the number of blocked days.
func (s BlockedDays) Len() int { return len(s) }

// Strings returns the blocked days in ascending order, formatted with DayFormat.
func (s BlockedDays) Strings() []string {
	days := make([]Day, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}
