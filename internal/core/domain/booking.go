package domain

import "time"

// Booking is a reservation of a workspace for an inclusive date range by a renter.
type Booking struct {
	BookingID   int64     `json:"bookingID"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	UserID      int64     `json:"userID"`
	WorkspaceID int64     `json:"workspaceID"`
	AuditFields

	Workspace *Workspace `json:"workspace,omitempty"`
}

// Days returns the number of calendar days the booking covers (start and end inclusive).
// It returns 0 when the range is inverted.
func (b Booking) Days() int {
	start := time.Date(b.StartDate.Year(), b.StartDate.Month(), b.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.EndDate.Year(), b.EndDate.Month(), b.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether two inclusive date ranges share at least one day.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !b.EndDate.Before(start) && !end.Before(b.StartDate)
}
