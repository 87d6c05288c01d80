package dto

import "github.com/Sachin796/Worktopia/internal/core/domain"

// SearchParamsResponse holds the stored search values as the client edits them.
type SearchParamsResponse struct {
	Location     string `json:"location"`
	CheckinDate  string `json:"checkinDate"`
	CheckoutDate string `json:"checkoutDate"`
	Room         string `json:"room"`
	People       string `json:"people"`
}

// ToSearchParamsResponse maps raw stored values to the response.
func ToSearchParamsResponse(values map[string]string) SearchParamsResponse {
	return SearchParamsResponse{
		Location:     values[domain.KeyLocation],
		CheckinDate:  values[domain.KeyCheckinDate],
		CheckoutDate: values[domain.KeyCheckoutDate],
		Room:         values[domain.KeyRoom],
		People:       values[domain.KeyPeople],
	}
}

// UpdateSearchParamRequest sets one search value.
type UpdateSearchParamRequest struct {
	Key   string `json:"key" binding:"required,oneof=location checkinDate checkoutDate room people"`
	Value string `json:"value"`
}

// SubmitSearchRequest carries every search value. Values stay strings so they can be
// stored before they are validated.
type SubmitSearchRequest struct {
	Location     string `json:"location"`
	CheckinDate  string `json:"checkinDate"`
	CheckoutDate string `json:"checkoutDate"`
	Room         string `json:"room"`
	People       string `json:"people"`
}

// Values returns the request as a key/value map.
func (r SubmitSearchRequest) Values() map[string]string {
	return map[string]string{
		domain.KeyLocation:     r.Location,
		domain.KeyCheckinDate:  r.CheckinDate,
		domain.KeyCheckoutDate: r.CheckoutDate,
		domain.KeyRoom:         r.Room,
		domain.KeyPeople:       r.People,
	}
}

// SubmitSearchResponse tells the client where to navigate.
type SubmitSearchResponse struct {
	Redirect string `json:"redirect"`
}

// ValidationErrorResponse carries field-level messages.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ReviewResponse is the booking review page.
type ReviewResponse struct {
	Workspace    WorkspaceResponse     `json:"workspace"`
	CheckinDate  string                `json:"checkinDate"`
	CheckoutDate string                `json:"checkoutDate"`
	Room         int                   `json:"room"`
	People       int                   `json:"people"`
	Price        domain.PriceBreakdown `json:"price"`
	Center       domain.GeoPoint       `json:"center"`
	Pin          *domain.MapPin        `json:"pin,omitempty"`
}

// ToReviewResponse converts a domain review to DTO.
func ToReviewResponse(r *domain.WorkspaceReview) ReviewResponse {
	return ReviewResponse{
		Workspace:    ToWorkspaceResponse(&r.Workspace),
		CheckinDate:  r.Params.CheckinDate.Format(domain.DateLayout),
		CheckoutDate: r.Params.CheckoutDate.Format(domain.DateLayout),
		Room:         r.Params.Room,
		People:       r.Params.People,
		Price:        r.Price,
		Center:       r.Center,
		Pin:          r.Pin,
	}
}

// GeocodeResponse is a geocoded address.
type GeocodeResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// UploadResponse returns the stored file name.
type UploadResponse struct {
	SaveAs string `json:"saveAs"`
}
