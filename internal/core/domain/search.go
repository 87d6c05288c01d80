package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session keys persisted for the booking search view and the logged in user.
const (
	KeyLocation     = "location"
	KeyCheckinDate  = "checkinDate"
	KeyCheckoutDate = "checkoutDate"
	KeyRoom         = "room"
	KeyPeople       = "people"
	KeyUserID       = "UserId"
	KeyUserRole     = "UserRole"
)

// SearchParamKeys lists the keys a client may update through the search view.
var SearchParamKeys = []string{KeyLocation, KeyCheckinDate, KeyCheckoutDate, KeyRoom, KeyPeople}

// SearchResultsPath is where a valid search navigates to.
const SearchResultsPath = "/searchresults"

// SearchParams are the booking search inputs.
type SearchParams struct {
	Location     string    `json:"location" validate:"required"`
	CheckinDate  time.Time `json:"checkinDate" validate:"required"`
	CheckoutDate time.Time `json:"checkoutDate" validate:"required,gtefield=CheckinDate"`
	Room         int       `json:"room" validate:"gte=1"`
	People       int       `json:"people" validate:"gte=1"`
}

// Nights is the number of billable days between check-in and check-out, at least one.
func (p SearchParams) Nights() int {
	n := int(p.CheckoutDate.Sub(p.CheckinDate).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// PriceBreakdown is the cost summary shown on the review page.
type PriceBreakdown struct {
	DailyRate decimal.Decimal `json:"dailyRate"`
	Nights    int             `json:"nights"`
	Rooms     int             `json:"rooms"`
	Total     decimal.Decimal `json:"total"`
}

// NewPriceBreakdown computes rate x nights x rooms. Rooms below one are billed as one.
func NewPriceBreakdown(rate decimal.Decimal, nights, rooms int) PriceBreakdown {
	if rooms < 1 {
		rooms = 1
	}
	total := rate.Mul(decimal.NewFromInt(int64(nights))).Mul(decimal.NewFromInt(int64(rooms)))
	return PriceBreakdown{DailyRate: rate, Nights: nights, Rooms: rooms, Total: total.Round(2)}
}

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultMapCenter is used when an address cannot be geocoded (downtown Toronto).
var DefaultMapCenter = GeoPoint{Lat: 43.6532, Lng: -79.3832}

// MapPin is a labelled point on the review map.
type MapPin struct {
	Address string   `json:"address"`
	Point   GeoPoint `json:"point"`
}

// WorkspaceReview is the booking review page: one workspace, its price and its map pin.
type WorkspaceReview struct {
	Workspace Workspace      `json:"workspace"`
	Params    SearchParams   `json:"params"`
	Price     PriceBreakdown `json:"price"`
	Center    GeoPoint       `json:"center"`
	Pin       *MapPin        `json:"pin,omitempty"`
}
