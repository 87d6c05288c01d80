package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Geocode(t *testing.T) {
	var gotPath, gotKey, gotLocation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotLocation = r.URL.Query().Get("location")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results":[{"locations":[{"latLng":{"lat":43.6487,"lng":-79.3817}},{"latLng":{"lat":1,"lng":2}}]}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "secret")
	pt, err := c.Geocode(context.Background(), "1 King St W, Toronto, ON M5H 1A1, Canada")

	require.NoError(t, err)
	assert.Equal(t, "/geocoding/v1/address", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "1 King St W, Toronto, ON M5H 1A1, Canada", gotLocation)
	assert.InDelta(t, 43.6487, pt.Lat, 1e-9)
	assert.InDelta(t, -79.3817, pt.Lng, 1e-9)
}

func TestClient_Geocode_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"locations":[]}]}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k").Geocode(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = NewClient(srv.URL, "k").Geocode(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestClient_Geocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad").Geocode(context.Background(), "Toronto")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCandidates)
}
