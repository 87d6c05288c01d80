// Package geocoding resolves addresses through a MapQuest-compatible geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
)

// ErrNoCandidates is returned when the address did not resolve to any location.
var ErrNoCandidates = errors.New("geocoding returned no candidates")

// DefaultBaseURL is the public MapQuest endpoint.
const DefaultBaseURL = "https://www.mapquestapi.com"

// Client calls GET {baseURL}/geocoding/v1/address?key=...&location=...
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ portssvc.Geocoder = (*Client)(nil)

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type addressResponse struct {
	Results []struct {
		Locations []struct {
			LatLng struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
		} `json:"locations"`
	} `json:"results"`
}

// Geocode returns the first candidate for address.
func (c *Client) Geocode(ctx context.Context, address string) (*domain.GeoPoint, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrNoCandidates
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("location", address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocoding/v1/address?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding api returned non-200 status: %s", resp.Status)
	}

	var body addressResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(body.Results) == 0 || len(body.Results[0].Locations) == 0 {
		return nil, ErrNoCandidates
	}

	ll := body.Results[0].Locations[0].LatLng
	return &domain.GeoPoint{Lat: ll.Lat, Lng: ll.Lng}, nil
}
