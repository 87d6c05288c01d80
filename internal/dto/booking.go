package dto

import (
	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// CreateBookingRequest defines data for booking a workspace. Dates use YYYY-MM-DD.
type CreateBookingRequest struct {
	WorkspaceID int64  `json:"workspaceID" binding:"required,gt=0"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// BookingResponse defines data returned for a booking.
type BookingResponse struct {
	BookingID   int64              `json:"bookingID"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	UserID      int64              `json:"userID"`
	WorkspaceID int64              `json:"workspaceID"`
	Workspace   *WorkspaceResponse `json:"workspace,omitempty"`
}

// ToBookingResponse converts domain.Booking to DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		BookingID:   b.BookingID,
		StartDate:   b.StartDate.Format(domain.DateLayout),
		EndDate:     b.EndDate.Format(domain.DateLayout),
		UserID:      b.UserID,
		WorkspaceID: b.WorkspaceID,
	}
	if b.Workspace != nil {
		ws := ToWorkspaceResponse(b.Workspace)
		resp.Workspace = &ws
	}
	return resp
}

// ToBookingResponses converts bookings to a plain JSON array.
func ToBookingResponses(bs []domain.Booking) []BookingResponse {
	list := make([]BookingResponse, len(bs))
	for i := range bs {
		list[i] = ToBookingResponse(&bs[i])
	}
	return list
}

// BlockedDaysResponse lists the booked days of a workspace as MM/DD/YYYY.
type BlockedDaysResponse struct {
	WorkspaceID int64    `json:"workspaceID"`
	Days        []string `json:"days"`
}
