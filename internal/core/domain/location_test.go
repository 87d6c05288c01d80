package domain_test

import (
	"testing"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWorkspaceLocation_BuildFullAddress(t *testing.T) {
	tests := []struct {
		name string
		loc  domain.WorkspaceLocation
		want string
	}{
		{
			name: "all parts",
			loc:  domain.WorkspaceLocation{Addr1: "1 King St W", Addr2: "Suite 400", City: "Toronto", Province: "ON", PostalCode: "M5H 1A1", Country: "Canada"},
			want: "1 King St W, Suite 400, Toronto, ON M5H 1A1, Canada",
		},
		{
			name: "no second line",
			loc:  domain.WorkspaceLocation{Addr1: "99 Bay St", City: "Toronto", Province: "ON", PostalCode: "M5J 2X2", Country: "Canada"},
			want: "99 Bay St, Toronto, ON M5J 2X2, Canada",
		},
		{
			name: "missing postal code",
			loc:  domain.WorkspaceLocation{Addr1: "5 Main", City: "Halifax", Province: "NS", Country: "Canada"},
			want: "5 Main, Halifax, NS, Canada",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.BuildFullAddress())
		})
	}
}

func TestBooking_Days(t *testing.T) {
	d := func(s string) time.Time {
		v, _ := time.Parse(domain.DateLayout, s)
		return v
	}
	assert.Equal(t, 1, domain.Booking{StartDate: d("2024-03-01"), EndDate: d("2024-03-01")}.Days())
	assert.Equal(t, 2, domain.Booking{StartDate: d("2024-03-01"), EndDate: d("2024-03-02")}.Days())
	assert.Equal(t, 0, domain.Booking{StartDate: d("2024-03-02"), EndDate: d("2024-03-01")}.Days())

	b := domain.Booking{StartDate: d("2024-03-05"), EndDate: d("2024-03-07")}
	assert.True(t, b.Overlaps(d("2024-03-07"), d("2024-03-09")))
	assert.True(t, b.Overlaps(d("2024-03-01"), d("2024-03-05")))
	assert.False(t, b.Overlaps(d("2024-03-08"), d("2024-03-09")))
}

func TestNewPriceBreakdown(t *testing.T) {
	p := domain.NewPriceBreakdown(decimal.RequireFromString("25.50"), 3, 2)
	assert.Equal(t, 3, p.Nights)
	assert.Equal(t, 2, p.Rooms)
	assert.True(t, decimal.RequireFromString("153.00").Equal(p.Total))

	p = domain.NewPriceBreakdown(decimal.NewFromInt(10), 1, 0)
	assert.Equal(t, 1, p.Rooms)
	assert.True(t, decimal.NewFromInt(10).Equal(p.Total))
}

func TestSearchParams_Nights(t *testing.T) {
	in := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, domain.SearchParams{CheckinDate: in, CheckoutDate: in}.Nights())
	assert.Equal(t, 4, domain.SearchParams{CheckinDate: in, CheckoutDate: in.AddDate(0, 0, 4)}.Nights())
}
