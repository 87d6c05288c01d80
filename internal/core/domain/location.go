package domain

import "strings"

// DefaultCountry is used when a location is saved without a country.
const DefaultCountry = "Canada"

// Provinces maps the Canadian province and territory codes accepted for a location to their names.
var Provinces = map[string]string{
	"AB": "Alberta",
	"BC": "British Columbia",
	"MB": "Manitoba",
	"NB": "New Brunswick",
	"NL": "Newfoundland and Labrador",
	"NT": "Northwest Territories",
	"NS": "Nova Scotia",
	"NU": "Nunavut",
	"ON": "Ontario",
	"PE": "Prince Edward Island",
	"QC": "Quebec",
	"SK": "Saskatchewan",
	"YT": "Yukon Territory",
}

// WorkspaceLocation is the physical address a workspace is attached to. It is owned by one user.
type WorkspaceLocation struct {
	LocationID  int64  `json:"locationID"`
	Addr1       string `json:"addr1"`
	Addr2       string `json:"addr2"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	FullAddress string `json:"fullAddress"`
	OwnerID     int64  `json:"ownerID"`
	AuditFields
}

// BuildFullAddress derives the stored full_address from the address parts.
// Empty parts are skipped, so "12 Main St, Toronto, ON M5V 1A1, Canada" has no dangling commas.
func (l WorkspaceLocation) BuildFullAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{l.Addr1, l.Addr2, l.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	region := strings.TrimSpace(strings.TrimSpace(l.Province) + " " + strings.TrimSpace(l.PostalCode))
	if region != "" {
		parts = append(parts, region)
	}
	if c := strings.TrimSpace(l.Country); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, ", ")
}
