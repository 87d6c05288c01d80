package dto

import (
	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// SaveLocationRequest creates a location when LocationID is nil and updates it otherwise.
type SaveLocationRequest struct {
	LocationID *int64 `json:"locationID"`
	Addr1      string `json:"addr1" binding:"required,max=255"`
	Addr2      string `json:"addr2" binding:"max=255"`
	City       string `json:"city" binding:"required,max=100"`
	Province   string `json:"province" binding:"required,len=2"`
	PostalCode string `json:"postalCode" binding:"required,max=10"`
	Country    string `json:"country"`
}

// LocationResponse defines data returned for a location.
type LocationResponse struct {
	LocationID  int64  `json:"locationID"`
	Addr1       string `json:"addr1"`
	Addr2       string `json:"addr2"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	FullAddress string `json:"fullAddress"`
	OwnerID     int64  `json:"ownerID"`
}

// ToLocationResponse converts domain.WorkspaceLocation to DTO.
func ToLocationResponse(l *domain.WorkspaceLocation) LocationResponse {
	return LocationResponse{
		LocationID:  l.LocationID,
		Addr1:       l.Addr1,
		Addr2:       l.Addr2,
		City:        l.City,
		Province:    l.Province,
		PostalCode:  l.PostalCode,
		Country:     l.Country,
		FullAddress: l.FullAddress,
		OwnerID:     l.OwnerID,
	}
}

// ListLocationsResponse wraps a list of locations.
type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToListLocationsResponse converts a slice of locations to DTO.
func ToListLocationsResponse(ls []domain.WorkspaceLocation) ListLocationsResponse {
	list := make([]LocationResponse, len(ls))
	for i := range ls {
		list[i] = ToLocationResponse(&ls[i])
	}
	return ListLocationsResponse{Locations: list}
}
